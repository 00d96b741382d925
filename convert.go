package engineering

import "strings"

// Every conversion checks its arguments in the same order: places first
// (boolean, then range), then number (error value, boolean, coercion,
// digits, range), then padding. The first failure wins.

func DEC2BIN(number Value, places Optional) (string, error) {
	return fromDecimal(number, places, Binary)
}

func DEC2OCT(number Value, places Optional) (string, error) {
	return fromDecimal(number, places, Octal)
}

func DEC2HEX(number Value, places Optional) (string, error) {
	return fromDecimal(number, places, Hexadecimal)
}

func BIN2OCT(number Value, places Optional) (string, error) {
	return baseToBase(number, places, Binary, Octal)
}

func BIN2HEX(number Value, places Optional) (string, error) {
	return baseToBase(number, places, Binary, Hexadecimal)
}

func OCT2BIN(number Value, places Optional) (string, error) {
	return baseToBase(number, places, Octal, Binary)
}

func OCT2HEX(number Value, places Optional) (string, error) {
	return baseToBase(number, places, Octal, Hexadecimal)
}

func HEX2BIN(number Value, places Optional) (string, error) {
	return baseToBase(number, places, Hexadecimal, Binary)
}

func HEX2OCT(number Value, places Optional) (string, error) {
	return baseToBase(number, places, Hexadecimal, Octal)
}

// the *2DEC functions give a number, not a string, and take no places

func BIN2DEC(number Value) (int64, error) {
	return toDecimal(number, Binary)
}

func OCT2DEC(number Value) (int64, error) {
	return toDecimal(number, Octal)
}

func HEX2DEC(number Value) (int64, error) {
	return toDecimal(number, Hexadecimal)
}

func fromDecimal(number Value, places Optional, to ConversionSpec) (string, error) {
	width, padded, err := coercePlaces(places)
	if err != nil {
		return "", err
	}

	v, err := coerceDecimal(number)
	if err != nil {
		return "", err
	}

	digits, err := to.Encode(v)
	if err != nil {
		return "", err
	}
	return pad(digits, v < 0, width, padded)
}

func baseToBase(number Value, places Optional, from, to ConversionSpec) (string, error) {
	width, padded, err := coercePlaces(places)
	if err != nil {
		return "", err
	}

	digits, err := coerceDigits(number, from)
	if err != nil {
		return "", err
	}

	v, err := from.Decode(digits)
	if err != nil {
		return "", err
	}

	// binary sources are held to the binary range explicitly, whatever
	// the target width
	if from.Radix == Binary.Radix && !Binary.InRange(v) {
		return "", numError("%d is outside the binary range", v)
	}

	out, err := to.Encode(v)
	if err != nil {
		return "", err
	}
	return pad(out, v < 0, width, padded)
}

func toDecimal(number Value, from ConversionSpec) (int64, error) {
	digits, err := coerceDigits(number, from)
	if err != nil {
		return 0, err
	}
	return from.Decode(digits)
}

// pad applies the places policy. Negative results are already at full
// width and ignore places, which has still been range checked by then.
func pad(digits string, negative bool, places int, padded bool) (string, error) {
	if !padded || negative {
		return digits, nil
	}
	if len(digits) > places {
		return "", numError("%s needs %d places, only %d requested", digits, len(digits), places)
	}
	return strings.Repeat("0", places-len(digits)) + digits, nil
}
