package options

import (
	"io"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

const usage = `basecalc

Usage:
  basecalc FUNCTION [ARGUMENTS...]
  basecalc -e FORMULA
  basecalc [-i] [-s] [--history=FILE]
  basecalc -h
  basecalc -v

Arguments:
  FUNCTION   Conversion to call, DEC2BIN through HEX2DEC.
  ARGUMENTS  Operands. An empty operand is a blank cell, TRUE and FALSE are
             booleans, numeric operands are numbers and "quoted" operands are
             text. Anything else is taken as text.

Options:
  -e, --eval=FORMULA  Evaluate one call expression, e.g. =DEC2BIN(35, 8).
  -i, --interactive   Invert interactive mode.
  -s, --stdin         Read call expressions from stdin, one per line.
  --history=FILE      Keep interactive history in FILE.
  -h, --help          Display this help.
  -v, --version       Print basecalc version.

If stdin is a TTY and basecalc was invoked with no function or formula,
call expressions are read interactively. Otherwise they are read from
stdin, one per line.
`

// Options is the parsed command line
type Options struct {
	Function    string
	Arguments   []string
	Formula     string
	Interactive bool
	History     string

	// Output is set instead of the fields above when -h or -v was given
	Output string
}

// UsageError is returned for a command line that does not match the usage
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return e.Usage
}

// IsTerminal reports whether r is a terminal
func IsTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Parse parses argv. terminal says whether stdin is a terminal and decides,
// with -i, whether expressions are read interactively.
func Parse(argv []string, terminal bool, version string) (*Options, error) {
	if argv == nil {
		// docopt falls back to os.Args on nil
		argv = []string{}
	}

	var output string
	parser := &docopt.Parser{
		HelpHandler: func(_ error, text string) {
			output = text
		},
		OptionsFirst: true,
	}

	opts, err := parser.ParseArgs(usage, argv, version)
	if err != nil {
		if _, ok := err.(*docopt.UserError); ok {
			return nil, &UsageError{Usage: output}
		}
		return nil, errors.Wrap(err, "parsing usage")
	}
	if opts == nil {
		return &Options{Output: output}, nil
	}

	if showVersion, _ := opts.Bool("--version"); showVersion {
		return &Options{Output: version}, nil
	}

	o := &Options{}
	o.Function, _ = opts.String("FUNCTION")
	o.Arguments, _ = opts["ARGUMENTS"].([]string)
	o.Formula, _ = opts.String("--eval")
	o.History, _ = opts.String("--history")

	fromStdin, _ := opts.Bool("--stdin")
	if o.Function == "" && o.Formula == "" && !fromStdin && terminal {
		o.Interactive = true
	}

	invertInteractive, _ := opts.Bool("--interactive")
	o.Interactive = o.Interactive != invertInteractive

	return o, nil
}
