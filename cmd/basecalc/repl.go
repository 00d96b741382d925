package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/vogtb/go-spreadsheet/packages/engineering"
)

const prompt = "> "

// repl reads call expressions from the terminal until EOF
func repl(bf *engineering.BuiltInFunctions, historyPath string, stdout io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	names := bf.Names()
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(names, line, pos)
	})

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = cli.ReadHistory(f)
			f.Close()
		}
	}

	for {
		line, err := cli.Prompt(prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Fprintln(stdout)
			return saveHistory(cli, historyPath)
		default:
			return errors.Wrap(err, "reading input")
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cli.AppendHistory(line)

		result, err := bf.Evaluate(line)
		if err != nil {
			fmt.Fprintf(stdout, "%s %v\n", engineering.CodeOf(err), err)
			continue
		}
		fmt.Fprintln(stdout, engineering.FormatResult(result))
	}
}

func saveHistory(cli *liner.State, historyPath string) error {
	if historyPath == "" {
		return nil
	}
	f, err := os.Create(historyPath)
	if err != nil {
		return errors.Wrap(err, "saving history")
	}
	defer f.Close()
	if _, err := cli.WriteHistory(f); err != nil {
		return errors.Wrapf(err, "writing history to %s", historyPath)
	}
	return nil
}

// complete completes the function name under the cursor. head is the line
// before the name, tail the line after the cursor.
func complete(names []string, line string, pos int) (head string, completions []string, tail string) {
	if pos > len(line) {
		pos = len(line)
	}
	start := strings.LastIndexAny(line[:pos], "=(, ") + 1
	head, word, tail := line[:start], line[start:pos], line[pos:]
	if word == "" {
		return head, nil, tail
	}

	prefix := strings.ToUpper(word)
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name+"(")
		}
	}
	return head, completions, tail
}
