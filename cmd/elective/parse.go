package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/elective-xyz/go-elective/parser"
)

func parse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: elective parse <expression>

Parse an expression in elective notation and print its canonical form.
The printed text always round-trips through the parser.

Notation:
  a..z       elective symbols
  0, 1       constants
  (1-expr)   negation
  xy         product by juxtaposition

Examples:
  elective parse "x(1-y)"
  elective parse "(1-(1-x)(1-y))"
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("expression required")
	}

	node, err := parser.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Println(node.String())
	return nil
}
