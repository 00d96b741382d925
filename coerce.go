package engineering

import (
	"strings"
)

const (
	minPlaces = 1
	maxPlaces = 10
)

// coerceDigits turns the number argument of a *2DEC or base-to-base
// function into a digit string of the source family. Numbers are read as
// their decimal digits, so the number 1010 is the binary string "1010".
func coerceDigits(number Value, from ConversionSpec) (string, error) {
	var s string

	switch v := number.(type) {
	case *SpreadsheetError:
		return "", v
	case Boolean:
		return "", valueError("%s number cannot be a boolean", from.Name)
	case nil, Blank:
		return "0", nil
	case Number:
		if !v.IsInteger() {
			return "", numError("%s number %s is not an integer", from.Name, v)
		}
		s = v.IntegerText()
	case Text:
		s = string(v)
		if s == "" {
			return "0", nil
		}
	default:
		return "", valueError("unsupported argument %T", number)
	}

	if len(s) > int(from.MaxPlaces) {
		return "", numError("%s number %q has more than %d digits", from.Name, s, from.MaxPlaces)
	}
	for _, ch := range s {
		if !from.IsDigit(ch) {
			return "", numError("%q is not a valid %s number", s, from.Name)
		}
	}
	return strings.ToUpper(s), nil
}

// coerceDecimal turns the number argument of a DEC2* function into a signed
// integer. Numbers are truncated toward zero; text has to be an integer.
func coerceDecimal(number Value) (int64, error) {
	switch v := number.(type) {
	case *SpreadsheetError:
		return 0, v
	case Boolean:
		return 0, valueError("decimal number cannot be a boolean")
	case nil, Blank:
		return 0, nil
	case Number:
		i, err := v.Truncate()
		if err != nil {
			return 0, numError("decimal number %s is out of range", v)
		}
		return i, nil
	case Text:
		n, err := ParseNumber(strings.TrimSpace(string(v)))
		if err != nil {
			return 0, valueError("%q is not a number", string(v))
		}
		if !n.IsInteger() {
			return 0, valueError("%q is not an integer", string(v))
		}
		i, err := n.Truncate()
		if err != nil {
			return 0, numError("decimal number %s is out of range", n)
		}
		return i, nil
	default:
		return 0, valueError("unsupported argument %T", number)
	}
}

// coercePlaces validates the places argument. ok is false when places was
// omitted, meaning no padding. A blank places is zero and so out of range.
func coercePlaces(places Optional) (n int, ok bool, err error) {
	value, supplied := places.Get()
	if !supplied {
		return 0, false, nil
	}

	var i int64
	switch v := value.(type) {
	case *SpreadsheetError:
		return 0, false, v
	case Boolean:
		return 0, false, valueError("places cannot be a boolean")
	case nil, Blank:
		i = 0
	case Number:
		if i, err = v.Truncate(); err != nil {
			return 0, false, numError("places %s is out of range", v)
		}
	case Text:
		parsed, perr := ParseNumber(strings.TrimSpace(string(v)))
		if perr != nil {
			return 0, false, valueError("places %q is not a number", string(v))
		}
		if i, err = parsed.Truncate(); err != nil {
			return 0, false, numError("places %s is out of range", parsed)
		}
	default:
		return 0, false, valueError("unsupported argument %T", value)
	}

	if i < minPlaces || i > maxPlaces {
		return 0, false, numError("places must be between %d and %d, got %d", minPlaces, maxPlaces, i)
	}
	return int(i), true, nil
}
