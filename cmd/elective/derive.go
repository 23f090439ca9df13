package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/elective-xyz/go-elective/cache"
	"github.com/elective-xyz/go-elective/syllogism"
)

func derive(args []string) error {
	fs := flag.NewFlagSet("derive", flag.ExitOnError)
	vars := fs.String("vars", "", "Variable letters in enumeration order, e.g. xyz")
	eliminate := fs.String("eliminate", "", "Middle-term letters to eliminate, in order")
	traceFile := fs.String("trace", "", "Write the derivation trace as JSONL to file")
	quiet := fs.Bool("quiet", false, "Print only the conclusion")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: elective derive [options] <lhs=rhs> [<lhs=rhs>...]

Run a full syllogistic derivation: each premise is normalized over the
variable scope, the premises are conjoined, and the middle terms are
eliminated. Prints each step and the rendered conclusion.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Barbara syllogism
  elective derive --vars xyz --eliminate y "y=xy" "z=yz"

  # Keep the step-by-step trace
  elective derive --vars xyz --eliminate y --trace steps.jsonl "y=xy" "z=yz"
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("at least one premise required")
	}
	variables := splitVars(*vars)
	if len(variables) == 0 {
		return fmt.Errorf("--vars is required")
	}

	arg := syllogism.New(variables...).WithCache(cache.NewNormalizeCache(0))
	for _, premise := range fs.Args() {
		lhs, rhs, ok := strings.Cut(premise, "=")
		if !ok {
			return fmt.Errorf("premise %q must have the form lhs=rhs", premise)
		}
		arg.Premise(strings.TrimSpace(lhs), strings.TrimSpace(rhs))
	}
	arg.EliminateSymbols(splitVars(*eliminate)...)

	d, err := arg.Derive()
	if err != nil {
		return err
	}

	if !*quiet {
		for _, step := range d.Steps {
			fmt.Printf("%-9s  %-16s  %s\n", step.Op, step.Detail, step.Rendered)
		}
	}
	fmt.Printf("conclusion: %s\n", d.Conclusion.Render())

	if *traceFile != "" {
		if err := d.WriteJSONLFile(*traceFile); err != nil {
			return err
		}
	}
	return nil
}
