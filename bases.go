package engineering

import (
	"strconv"
	"strings"
)

// ConversionSpec describes one base family: how many bits are significant,
// the radix and which digits are allowed. Widths follow the documented
// limits of the spreadsheet application, all three families top out at ten
// digits.
type ConversionSpec struct {
	Name      string
	BitWidth  uint8
	Radix     uint8
	Digits    string // upper case
	MaxPlaces uint8
}

var (
	Binary      = ConversionSpec{Name: "binary", BitWidth: 10, Radix: 2, Digits: "01", MaxPlaces: 10}
	Octal       = ConversionSpec{Name: "octal", BitWidth: 30, Radix: 8, Digits: "01234567", MaxPlaces: 10}
	Hexadecimal = ConversionSpec{Name: "hexadecimal", BitWidth: 40, Radix: 16, Digits: "0123456789ABCDEF", MaxPlaces: 10}
)

// Min is the smallest signed value the family can hold, -2^(W-1)
func (cs ConversionSpec) Min() int64 {
	return -int64(cs.signBit())
}

// Max is the largest signed value the family can hold, 2^(W-1)-1
func (cs ConversionSpec) Max() int64 {
	return int64(cs.signBit()) - 1
}

// InRange reports whether v can be written in this family
func (cs ConversionSpec) InRange(v int64) bool {
	return v >= cs.Min() && v <= cs.Max()
}

func (cs ConversionSpec) signBit() uint64 {
	return 1 << (cs.BitWidth - 1)
}

func (cs ConversionSpec) modulus() uint64 {
	return 1 << cs.BitWidth
}

// IsDigit reports whether ch belongs to the alphabet, ignoring case
func (cs ConversionSpec) IsDigit(ch rune) bool {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	return strings.ContainsRune(cs.Digits, ch)
}

// Decode reads a two's-complement digit string. The top bit of the W-bit
// pattern is the sign, so for binary "1111111111" is -1 and "1000000000"
// is -512.
func (cs ConversionSpec) Decode(digits string) (int64, error) {
	if digits == "" {
		return 0, numError("empty %s number", cs.Name)
	}
	if len(digits) > int(cs.MaxPlaces) {
		return 0, numError("%s number %q has more than %d digits", cs.Name, digits, cs.MaxPlaces)
	}
	for _, ch := range digits {
		if !cs.IsDigit(ch) {
			return 0, numError("%q is not a valid %s number", digits, cs.Name)
		}
	}

	raw, err := strconv.ParseUint(digits, int(cs.Radix), 64)
	if err != nil || raw >= cs.modulus() {
		return 0, numError("%s number %q needs more than %d bits", cs.Name, digits, cs.BitWidth)
	}

	sign := cs.signBit()
	return int64(raw&^sign) - int64(raw&sign), nil
}

// Encode writes v as a W-bit two's-complement digit string, upper case, no
// prefix and no sign. Negative values always come out at full width.
func (cs ConversionSpec) Encode(v int64) (string, error) {
	if !cs.InRange(v) {
		return "", numError("%d is outside the %s range [%d, %d]", v, cs.Name, cs.Min(), cs.Max())
	}
	raw := uint64(v)
	if v < 0 {
		raw = uint64(v + int64(cs.modulus()))
	}
	return strings.ToUpper(strconv.FormatUint(raw, int(cs.Radix))), nil
}
