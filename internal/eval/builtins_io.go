package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/leinonen/golisp/internal/value"
)

// Stdin/Stdout are overridable by the CLI front end for REPL testing;
// they default to the process streams.
var (
	Stdout io.Writer = os.Stdout
	Stdin  io.Reader = os.Stdin

	stdinReader *bufio.Reader
)

func builtinPrint(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.Display(a)
	}
	for i, p := range parts {
		if i > 0 {
			fmt.Fprint(Stdout, " ")
		}
		fmt.Fprint(Stdout, p)
	}
	fmt.Fprintln(Stdout)
	return value.SymNil, nil
}

func builtinInput(args []value.Value, _ *value.Environment) (value.Value, *value.EvalError) {
	if len(args) != 0 {
		return nil, value.NewError(InvalidArgs, value.NewList(args...))
	}
	if stdinReader == nil {
		stdinReader = bufio.NewReader(Stdin)
	}
	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return value.String(""), nil
	}
	return value.String(line), nil
}
