package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "parse":
		if err := parse(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "normalize":
		if err := normalize(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "derive":
		if err := derive(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "prove":
		if err := prove(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("elective version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`elective - syllogistic reasoning over elective equations

Usage:
  elective <command> [options]

Commands:
  parse      Parse an expression and print its canonical form
  normalize  Normalize an equation to its forbidden-term form
  derive     Run a full derivation: normalize, conjoin, eliminate
  prove      Prove a secret assignment is consistent with premises
  help       Show this help message
  version    Show version information

Examples:
  # Canonical form of "All x are y"
  elective normalize --vars xy x xy

  # Barbara: all y are x, all z are y, therefore all z are x
  elective derive --vars xyz --eliminate y "y=xy" "z=yz"

  # Prove knowledge of an assignment consistent with the premises
  elective prove --vars xyz --assign 111 "y=xy" "z=yz"

For command-specific help, run:
  elective <command> --help`)
}

// splitVars expands a string of letters into one variable per letter.
func splitVars(s string) []string {
	var out []string
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
