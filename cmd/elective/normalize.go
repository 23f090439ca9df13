package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/elective-xyz/go-elective/equation"
	"github.com/elective-xyz/go-elective/parser"
)

func normalize(args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	vars := fs.String("vars", "", "Variable letters in enumeration order, e.g. xyz")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: elective normalize --vars <letters> <lhs> <rhs>

Normalize the equation lhs = rhs into its canonical forbidden-term
form over the given variables. The variable order fixes the order of
the emitted terms.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # "All x are y": x = xy
  elective normalize --vars xy x xy

  # "No x are y": xy = 0
  elective normalize --vars xy xy 0
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("lhs and rhs expressions required")
	}
	variables := splitVars(*vars)
	if len(variables) == 0 {
		return fmt.Errorf("--vars is required")
	}

	lhs, err := parser.Parse(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("lhs: %w", err)
	}
	rhs, err := parser.Parse(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("rhs: %w", err)
	}

	eq, err := equation.Normalize(lhs, rhs, variables)
	if err != nil {
		return err
	}
	fmt.Println(eq.Render())
	return nil
}
