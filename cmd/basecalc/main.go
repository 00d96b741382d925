package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/vogtb/go-spreadsheet/packages/engineering"
	"github.com/vogtb/go-spreadsheet/packages/engineering/internal/options"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := options.Parse(args, options.IsTerminal(stdin), version)
	if err != nil {
		var usageErr *options.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(stderr, usageErr.Usage)
		} else {
			fmt.Fprintf(stderr, "basecalc: %v\n", err)
		}
		return 2
	}

	if opts.Output != "" {
		fmt.Fprintln(stdout, opts.Output)
		return 0
	}

	bf := engineering.NewDefaultBuiltInFunctions()

	switch {
	case opts.Function != "":
		return callFunction(bf, opts.Function, opts.Arguments, stdout, stderr)
	case opts.Formula != "":
		result, err := bf.Evaluate(opts.Formula)
		return report(result, err, stdout, stderr)
	case opts.Interactive:
		if err := repl(bf, opts.History, stdout); err != nil {
			fmt.Fprintf(stderr, "basecalc: %v\n", err)
			return 1
		}
		return 0
	default:
		return evaluateLines(bf, stdin, stdout, stderr)
	}
}

// callFunction calls name with operands typed on the command line. Each
// operand is classified the way a cell would classify what was typed into it.
func callFunction(bf *engineering.BuiltInFunctions, name string, operands []string, stdout, stderr io.Writer) int {
	args := make([]engineering.Value, len(operands))
	for i, operand := range operands {
		args[i] = engineering.ParseLiteral(operand)
	}
	result, err := bf.Call(name, args...)
	return report(result, err, stdout, stderr)
}

// evaluateLines evaluates one call expression per line. Blank lines are
// skipped. The exit code is 1 if any line gave an error.
func evaluateLines(bf *engineering.BuiltInFunctions, stdin io.Reader, stdout, stderr io.Writer) int {
	code := 0
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := bf.Evaluate(line)
		if report(result, err, stdout, stderr) != 0 {
			code = 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "basecalc: %v\n", errors.Wrap(err, "reading stdin"))
		return 1
	}
	return code
}

// report prints the result, or the error token with the reason on stderr
func report(result engineering.Value, err error, stdout, stderr io.Writer) int {
	if err != nil {
		fmt.Fprintln(stdout, engineering.CodeOf(err))
		fmt.Fprintf(stderr, "basecalc: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, engineering.FormatResult(result))
	return 0
}
