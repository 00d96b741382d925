package engineering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decimalSamples walks [min, max] in roughly n steps, always including both
// ends and the values around zero.
func decimalSamples(spec ConversionSpec, n int64) []int64 {
	step := (spec.Max() - spec.Min()) / n
	samples := []int64{spec.Min(), spec.Max(), -2, -1, 0, 1, 2}
	for v := spec.Min(); v < spec.Max(); v += step {
		samples = append(samples, v)
	}
	return samples
}

func TestEveryBinaryStringRoundTrips(t *testing.T) {
	for v := Binary.Min(); v <= Binary.Max(); v++ {
		bin, err := DEC2BIN(NewNumberFromInt(v), Omitted())
		require.NoError(t, err, "DEC2BIN(%d)", v)

		dec, err := BIN2DEC(Text(bin))
		require.NoError(t, err, "BIN2DEC(%q)", bin)
		assert.Equal(t, v, dec, "BIN2DEC(%q)", bin)

		oct, err := BIN2OCT(Text(bin), Omitted())
		require.NoError(t, err, "BIN2OCT(%q)", bin)
		back, err := OCT2BIN(Text(oct), Omitted())
		require.NoError(t, err, "OCT2BIN(%q)", oct)
		assert.Equal(t, bin, back, "OCT2BIN(BIN2OCT(%q))", bin)

		hex, err := BIN2HEX(Text(bin), Omitted())
		require.NoError(t, err, "BIN2HEX(%q)", bin)
		back, err = HEX2BIN(Text(hex), Omitted())
		require.NoError(t, err, "HEX2BIN(%q)", hex)
		assert.Equal(t, bin, back, "HEX2BIN(BIN2HEX(%q))", bin)
	}
}

func TestOctalRoundTrips(t *testing.T) {
	for _, v := range decimalSamples(Octal, 4096) {
		oct, err := DEC2OCT(NewNumberFromInt(v), Omitted())
		require.NoError(t, err, "DEC2OCT(%d)", v)

		dec, err := OCT2DEC(Text(oct))
		require.NoError(t, err, "OCT2DEC(%q)", oct)
		assert.Equal(t, v, dec, "OCT2DEC(%q)", oct)

		hex, err := OCT2HEX(Text(oct), Omitted())
		require.NoError(t, err, "OCT2HEX(%q)", oct)
		back, err := HEX2OCT(Text(hex), Omitted())
		require.NoError(t, err, "HEX2OCT(%q)", hex)
		assert.Equal(t, oct, back, "HEX2OCT(OCT2HEX(%q))", oct)
	}
}

func TestHexadecimalRoundTrips(t *testing.T) {
	for _, v := range decimalSamples(Hexadecimal, 4096) {
		hex, err := DEC2HEX(NewNumberFromInt(v), Omitted())
		require.NoError(t, err, "DEC2HEX(%d)", v)

		dec, err := HEX2DEC(Text(hex))
		require.NoError(t, err, "HEX2DEC(%q)", hex)
		assert.Equal(t, v, dec, "HEX2DEC(%q)", hex)
	}
}

func TestPaddingRoundTrips(t *testing.T) {
	for v := int64(0); v <= Binary.Max(); v++ {
		bin, err := DEC2BIN(NewNumberFromInt(v), Supplied(NewNumberFromInt(10)))
		require.NoError(t, err)
		assert.Len(t, bin, 10)

		dec, err := BIN2DEC(Text(bin))
		require.NoError(t, err)
		assert.Equal(t, v, dec)
	}
}
