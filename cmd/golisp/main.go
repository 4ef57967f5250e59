package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leinonen/golisp/internal/cli"
)

func main() {
	var (
		evalExpr = flag.String("e", "", "evaluate an expression directly instead of reading from a file")
		filename = flag.String("f", "", "file to execute (legacy alias; prefer the positional form)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                    start the REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s script.lisp a b    run a file with *ARGS* bound to (\"a\" \"b\")\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -e '(+ 1 2 3)'     evaluate an expression and exit\n", os.Args[0])
	}

	flag.Parse()

	if *evalExpr != "" {
		os.Exit(cli.RunFile(*evalExpr, flag.Args()))
	}

	if *filename != "" {
		src, err := os.ReadFile(*filename)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(cli.RunFile(string(src), flag.Args()))
	}

	if args := flag.Args(); len(args) > 0 {
		src, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(cli.RunFile(string(src), args[1:]))
	}

	os.Exit(cli.REPL(os.Stdin, os.Stdout))
}
