package engineering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		input   string
		str     string
		integer bool
	}{
		{"42", "42", true},
		{"-7", "-7", true},
		{"1.5", "1.5", false},
		{"10.0", "10.0", true},
		{"1e3", "1000", true},
		{"0", "0", true},
		{".5", "0.5", false},
	}
	for _, c := range cases {
		n, err := ParseNumber(c.input)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.str, n.String(), c.input)
		assert.Equal(t, c.integer, n.IsInteger(), c.input)
	}

	for _, bad := range []string{"", "abc", "1.2.3", "Infinity", "NaN"} {
		_, err := ParseNumber(bad)
		assert.Error(t, err, bad)
	}
}

func TestNumberIntegerText(t *testing.T) {
	n, err := ParseNumber("1e3")
	require.NoError(t, err)
	assert.Equal(t, "1000", n.IntegerText())

	n, err = ParseNumber("10.0")
	require.NoError(t, err)
	assert.Equal(t, "10", n.IntegerText())

	n, err = ParseNumber("-0")
	require.NoError(t, err)
	assert.Equal(t, "0", n.IntegerText())

	assert.Equal(t, "-12", NewNumberFromInt(-12).IntegerText())
	assert.Equal(t, "0", Number{}.IntegerText())
}

func TestNumberTruncate(t *testing.T) {
	cases := []struct {
		f    float64
		want int64
	}{
		{1.9, 1},
		{-1.9, -1},
		{-0.5, 0},
		{35, 35},
	}
	for _, c := range cases {
		n, err := NewNumberFromFloat(c.f)
		require.NoError(t, err)
		got, err := n.Truncate()
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%v", c.f)
	}

	n, err := NewNumberFromFloat(1e20)
	require.NoError(t, err)
	_, err = n.Truncate()
	assert.Error(t, err)
}

func TestNumberFromFloatIsExact(t *testing.T) {
	n, err := NewNumberFromFloat(0.1)
	require.NoError(t, err)
	assert.Equal(t, "0.1", n.String())
	assert.False(t, n.IsInteger())

	n, err = NewNumberFromFloat(1000000000)
	require.NoError(t, err)
	assert.True(t, n.IsInteger())
	assert.Equal(t, "1000000000", n.IntegerText())
}

func TestNumberSign(t *testing.T) {
	assert.False(t, Number{}.IsNegative())
	assert.True(t, NewNumberFromInt(-3).IsNegative())
	assert.False(t, NewNumberFromInt(3).IsNegative())
	assert.True(t, NewNumberFromInt(3).Neg().IsNegative())
	assert.Equal(t, 0, NewNumberFromInt(-3).Cmp(NewNumberFromInt(3).Neg()))
	assert.Equal(t, -1, NewNumberFromInt(2).Cmp(NewNumberFromInt(3)))

	zero, err := ParseNumber("-0")
	require.NoError(t, err)
	assert.False(t, zero.IsNegative())
}

func TestNumberDecimalIsACopy(t *testing.T) {
	n := NewNumberFromInt(5)
	d := n.Decimal()
	d.Neg(d)
	assert.Equal(t, "5", n.String())
}
