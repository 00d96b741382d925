package engineering

import (
	"fmt"
	"math"
)

// Value represents a formula argument as classified by the surrounding
// evaluator. It is a closed set, every Value is exactly one of:
//   - Blank: no value supplied (an empty cell)
//   - Boolean: TRUE/FALSE
//   - Number: decimal value, integral or not
//   - Text: text values, taken verbatim
//   - *SpreadsheetError: error values (#NUM!, #VALUE!, etc.)
//
// Nothing is coerced when a Value is built, only when a function consumes it.
type Value interface {
	isValue()
}

// Blank is an empty cell. It is distinct from Number zero and from Text "".
type Blank struct{}

// Boolean is a TRUE/FALSE cell value
type Boolean bool

// Text is a string cell value
type Text string

func (Blank) isValue()             {}
func (Boolean) isValue()           {}
func (Text) isValue()              {}
func (Number) isValue()            {}
func (*SpreadsheetError) isValue() {}

// ErrorCode is the kind of a spreadsheet error. The conversions themselves
// only produce Num and Value; the rest arrive as argument values or come
// from dispatch.
type ErrorCode uint8

const (
	ErrorCodeNull  ErrorCode = 1 // #NULL!
	ErrorCodeDiv0  ErrorCode = 2 // #DIV/0!
	ErrorCodeValue ErrorCode = 3 // #VALUE! wrong kind of argument
	ErrorCodeRef   ErrorCode = 4 // #REF!
	ErrorCodeName  ErrorCode = 5 // #NAME? unknown function or name
	ErrorCodeNum   ErrorCode = 6 // #NUM! bad digits, out of range, bad places
	ErrorCodeNA    ErrorCode = 7 // #N/A wrong number of arguments
	ErrorCodeOther ErrorCode = 8 // #ERROR! anything else
)

// ErrorMapper holds the token each code displays as
var ErrorMapper = map[ErrorCode]string{
	ErrorCodeNull:  "#NULL!",
	ErrorCodeDiv0:  "#DIV/0!",
	ErrorCodeValue: "#VALUE!",
	ErrorCodeRef:   "#REF!",
	ErrorCodeName:  "#NAME?",
	ErrorCodeNum:   "#NUM!",
	ErrorCodeNA:    "#N/A",
	ErrorCodeOther: "#ERROR!",
}

func (c ErrorCode) String() string {
	if s, ok := ErrorMapper[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", uint8(c))
}

// sentinels for errors.Is, matched by code only
var (
	ErrNull  = &SpreadsheetError{ErrorCode: ErrorCodeNull}
	ErrDiv0  = &SpreadsheetError{ErrorCode: ErrorCodeDiv0}
	ErrValue = &SpreadsheetError{ErrorCode: ErrorCodeValue}
	ErrRef   = &SpreadsheetError{ErrorCode: ErrorCodeRef}
	ErrName  = &SpreadsheetError{ErrorCode: ErrorCodeName}
	ErrNum   = &SpreadsheetError{ErrorCode: ErrorCodeNum}
	ErrNA    = &SpreadsheetError{ErrorCode: ErrorCodeNA}
)

// SpreadsheetError is both a Go error and the error variant of Value
type SpreadsheetError struct {
	ErrorCode ErrorCode
	Message   string
}

func (e *SpreadsheetError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrorMapper[e.ErrorCode]
}

// Is reports whether target is a *SpreadsheetError with the same code.
func (e *SpreadsheetError) Is(target error) bool {
	t, ok := target.(*SpreadsheetError)
	return ok && t.ErrorCode == e.ErrorCode
}

func NewSpreadsheetError(code ErrorCode, message string) *SpreadsheetError {
	if message == "" {
		message = ErrorMapper[code]
	}
	return &SpreadsheetError{
		ErrorCode: code,
		Message:   message,
	}
}

func numError(format string, args ...any) *SpreadsheetError {
	return NewSpreadsheetError(ErrorCodeNum, fmt.Sprintf(format, args...))
}

func valueError(format string, args ...any) *SpreadsheetError {
	return NewSpreadsheetError(ErrorCodeValue, fmt.Sprintf(format, args...))
}

// CodeOf returns the error code carried by err, ErrorCodeOther when err is
// not a *SpreadsheetError and 0 when err is nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return 0
	}
	if se, ok := err.(*SpreadsheetError); ok {
		return se.ErrorCode
	}
	return ErrorCodeOther
}

// Optional is an argument the caller may leave out of the call entirely.
// The zero value is Omitted. Omitted() and Supplied(Blank{}) are different
// calls: =DEC2BIN(35) gives "100011" while =DEC2BIN(35, A1) with A1 empty
// gives #NUM!.
type Optional struct {
	value    Value
	supplied bool
}

// Omitted is the marker for an argument that was not written in the call
func Omitted() Optional {
	return Optional{}
}

// Supplied wraps an argument that was written in the call. A nil value is
// taken as Blank.
func Supplied(v Value) Optional {
	if v == nil {
		v = Blank{}
	}
	return Optional{value: v, supplied: true}
}

// Get returns the supplied value, or false when the argument was omitted
func (o Optional) Get() (Value, bool) {
	return o.value, o.supplied
}

// IsOmitted reports whether the argument was left out of the call
func (o Optional) IsOmitted() bool {
	return !o.supplied
}

// FromPrimitive classifies a plain Go value into a Value. nil is Blank,
// integers and floats become Number, error codes become error values.
// Unsupported types and non-finite floats are #VALUE! errors.
func FromPrimitive(p any) Value {
	switch v := p.(type) {
	case nil:
		return Blank{}
	case Value:
		return v
	case bool:
		return Boolean(v)
	case string:
		return Text(v)
	case int:
		return NewNumberFromInt(int64(v))
	case int64:
		return NewNumberFromInt(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewSpreadsheetError(ErrorCodeNum, "number is not finite")
		}
		n, err := NewNumberFromFloat(v)
		if err != nil {
			return NewSpreadsheetError(ErrorCodeValue, err.Error())
		}
		return n
	case ErrorCode:
		return NewSpreadsheetError(v, "")
	default:
		return NewSpreadsheetError(ErrorCodeValue, fmt.Sprintf("unsupported value type %T", p))
	}
}
