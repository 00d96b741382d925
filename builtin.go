package engineering

import (
	"fmt"
	"sort"
	"strings"
)

// FunctionInfo describes one registered conversion
type FunctionInfo struct {
	Name        string
	From        string // source family name, "decimal" for DEC2*
	To          string // target family name, "decimal" for *2DEC
	TakesPlaces bool
}

type placesFunc func(number Value, places Optional) (string, error)

type integerFunc func(number Value) (int64, error)

type builtin struct {
	info FunctionInfo
	call func(args []Value) (Value, error)
}

// builtins is the static dispatch table. Names are upper case.
var builtins = map[string]builtin{
	"DEC2BIN": withPlaces("DEC2BIN", "decimal", Binary.Name, DEC2BIN),
	"DEC2OCT": withPlaces("DEC2OCT", "decimal", Octal.Name, DEC2OCT),
	"DEC2HEX": withPlaces("DEC2HEX", "decimal", Hexadecimal.Name, DEC2HEX),
	"BIN2OCT": withPlaces("BIN2OCT", Binary.Name, Octal.Name, BIN2OCT),
	"BIN2HEX": withPlaces("BIN2HEX", Binary.Name, Hexadecimal.Name, BIN2HEX),
	"OCT2BIN": withPlaces("OCT2BIN", Octal.Name, Binary.Name, OCT2BIN),
	"OCT2HEX": withPlaces("OCT2HEX", Octal.Name, Hexadecimal.Name, OCT2HEX),
	"HEX2BIN": withPlaces("HEX2BIN", Hexadecimal.Name, Binary.Name, HEX2BIN),
	"HEX2OCT": withPlaces("HEX2OCT", Hexadecimal.Name, Octal.Name, HEX2OCT),
	"BIN2DEC": withoutPlaces("BIN2DEC", Binary.Name, BIN2DEC),
	"OCT2DEC": withoutPlaces("OCT2DEC", Octal.Name, OCT2DEC),
	"HEX2DEC": withoutPlaces("HEX2DEC", Hexadecimal.Name, HEX2DEC),
}

func withPlaces(name, from, to string, fn placesFunc) builtin {
	return builtin{
		info: FunctionInfo{Name: name, From: from, To: to, TakesPlaces: true},
		call: func(args []Value) (Value, error) {
			if len(args) < 1 || len(args) > 2 {
				return nil, NewSpreadsheetError(ErrorCodeNA, fmt.Sprintf("%s requires 1 or 2 arguments", name))
			}
			places := Omitted()
			if len(args) == 2 {
				places = Supplied(args[1])
			}
			s, err := fn(args[0], places)
			if err != nil {
				return nil, err
			}
			return Text(s), nil
		},
	}
}

func withoutPlaces(name, from string, fn integerFunc) builtin {
	return builtin{
		info: FunctionInfo{Name: name, From: from, To: "decimal"},
		call: func(args []Value) (Value, error) {
			if len(args) != 1 {
				return nil, NewSpreadsheetError(ErrorCodeNA, fmt.Sprintf("%s requires exactly 1 argument", name))
			}
			i, err := fn(args[0])
			if err != nil {
				return nil, err
			}
			return NewNumberFromInt(i), nil
		},
	}
}

// BuiltInFunctions contains the base conversion functions
type BuiltInFunctions struct {
	table map[string]builtin
}

// NewDefaultBuiltInFunctions creates a BuiltInFunctions holding all twelve
// conversions
func NewDefaultBuiltInFunctions() *BuiltInFunctions {
	return &BuiltInFunctions{table: builtins}
}

// checkForError returns the error if value is a *SpreadsheetError, nil otherwise
func checkForError(value Value) *SpreadsheetError {
	if err, ok := value.(*SpreadsheetError); ok {
		return err
	}
	return nil
}

// Call invokes a built-in function by name with the given arguments. A
// second argument present in args counts as supplied places, even when it
// is Blank.
func (bf *BuiltInFunctions) Call(name string, args ...Value) (Value, error) {
	fn, ok := bf.table[strings.ToUpper(name)]
	if !ok {
		return nil, NewSpreadsheetError(ErrorCodeName, fmt.Sprintf("Unknown function: %s", name))
	}

	// error arguments propagate left to right before any validation
	for _, arg := range args {
		if err := checkForError(arg); err != nil {
			return nil, err
		}
	}

	return fn.call(args)
}

// Lookup returns the description of a registered function
func (bf *BuiltInFunctions) Lookup(name string) (FunctionInfo, bool) {
	fn, ok := bf.table[strings.ToUpper(name)]
	return fn.info, ok
}

// Names returns the registered function names in sorted order
func (bf *BuiltInFunctions) Names() []string {
	names := make([]string, 0, len(bf.table))
	for name := range bf.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
