// Package cli is the front end for the evaluator: a file-eval mode and
// a colorized, readline-driven REPL, grounded on the teacher's
// pkg/repl.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/leinonen/golisp/internal/eval"
	"github.com/leinonen/golisp/internal/reader"
	"github.com/leinonen/golisp/internal/value"
)

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgGreen)
)

// RunFile parses and evaluates src with *ARGS* bound to progArgs,
// printing the top-level result in debug form to stdout. Parse errors
// print with a "Parse error:" prefix, per spec §6 mode 1.
func RunFile(src string, progArgs []string) int {
	env, err := eval.NewRootEnvironment(progArgs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	prog, perr := reader.ReadAll(src)
	if perr != nil {
		fmt.Printf("Parse error: %s\n", perr)
		return 0
	}

	result, evalErr := eval.Eval(prog, env)
	if evalErr != nil {
		fmt.Println(value.Debug(evalErr.Value))
		return 0
	}
	fmt.Println(value.Debug(result))
	return 0
}

// REPL runs the interactive read-eval-print loop: prompt "> ", parse
// and evaluate each line against a persistent environment, print its
// debug form, and bind the result to `_`. A line reading `quit` ends the
// session (checked textually rather than as a built-in, the way the teacher's REPL checks for
// "quit"/"exit" before attempting to parse).
func REPL(in io.Reader, out io.Writer) int {
	env, err := eval.NewRootEnvironment(nil)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: "",
		Stdin:       io.NopCloser(in),
		Stdout:      out,
	})
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line == "" {
			continue
		}
		if line == "quit" {
			break
		}

		prog, perr := reader.ReadAll(line)
		if perr != nil {
			errorColor.Fprintf(out, "Parse error: %s\n", perr)
			continue
		}

		result, evalErr := eval.Eval(prog, env)
		if evalErr != nil {
			env.Set("_", evalErr.Value)
			errorColor.Fprintln(out, value.Debug(evalErr.Value))
			continue
		}
		env.Set("_", result)
		resultColor.Fprintln(out, value.Debug(result))
	}
	return 0
}
