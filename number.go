package engineering

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Number is a numeric cell value. It keeps the exact decimal it was built
// from so that "is this integral" never goes through float64 rounding.
// A Number is immutable once built; the zero value is 0.
type Number struct {
	d *apd.Decimal
}

// NewNumberFromInt returns the Number for an integer
func NewNumberFromInt(i int64) Number {
	return Number{d: apd.New(i, 0)}
}

// NewNumberFromFloat returns the Number for f using its shortest decimal
// representation, so 0.1 is exactly 0.1.
func NewNumberFromFloat(f float64) (Number, error) {
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return Number{}, err
	}
	if d.Form != apd.Finite {
		return Number{}, fmt.Errorf("%v is not a finite number", f)
	}
	return Number{d: d}, nil
}

// ParseNumber parses decimal text such as "42", "-1.5" or "1e3"
func ParseNumber(s string) (Number, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Number{}, err
	}
	if d.Form != apd.Finite {
		return Number{}, fmt.Errorf("%q is not a finite number", s)
	}
	return Number{d: d}, nil
}

func (n Number) dec() *apd.Decimal {
	if n.d == nil {
		return apd.New(0, 0)
	}
	return n.d
}

// Decimal returns a copy of the underlying decimal
func (n Number) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(n.dec())
}

// split returns the integral part (truncated toward zero) and the fraction
func (n Number) split() (integ, frac apd.Decimal) {
	n.dec().Modf(&integ, &frac)
	return integ, frac
}

// IsInteger reports whether n has no fractional part
func (n Number) IsInteger() bool {
	_, frac := n.split()
	return frac.IsZero()
}

// IsNegative reports whether n is below zero. Negative zero is not.
func (n Number) IsNegative() bool {
	d := n.dec()
	return d.Negative && !d.IsZero()
}

// Neg returns -n
func (n Number) Neg() Number {
	return Number{d: new(apd.Decimal).Neg(n.dec())}
}

// Truncate returns the integral part of n as an int64. The error is set
// when that part does not fit.
func (n Number) Truncate() (int64, error) {
	integ, _ := n.split()
	return integ.Int64()
}

// IntegerText renders the integral part of n as plain decimal digits with
// a leading '-' when negative. 1E+3 renders as "1000", -0 as "0".
func (n Number) IntegerText() string {
	integ, _ := n.split()
	if integ.IsZero() {
		return "0"
	}
	return integ.Text('f')
}

// Cmp compares n and m, returning -1, 0 or 1
func (n Number) Cmp(m Number) int {
	return n.dec().Cmp(m.dec())
}

func (n Number) String() string {
	d := n.dec()
	if d.IsZero() {
		return "0"
	}
	return d.Text('f')
}
