package equation

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/elective-xyz/go-elective/elective"
)

// Normalize builds the canonical form of the equation lhs = rhs over
// the given variable list. All 2^n assignments are enumerated in
// ascending index order, the first variable varying slowest; an
// assignment is forbidden when the two sides evaluate to different
// values under it.
//
// The engine never infers scope from the expressions: a symbol used
// by either side but absent from the variable list surfaces as an
// ErrUnboundSymbol from evaluation.
func Normalize(lhs, rhs elective.Node, variables []string) (*Equation, error) {
	if err := checkVariables(variables); err != nil {
		return nil, err
	}

	n := len(variables)
	vars := make([]string, n)
	copy(vars, variables)

	mask := new(uint256.Int)
	bindings := make(map[string]int, n)
	for idx := 0; idx < 1<<n; idx++ {
		for j, name := range vars {
			bindings[name] = idx >> (n - 1 - j) & 1
		}
		left, err := elective.Eval(lhs, bindings)
		if err != nil {
			return nil, fmt.Errorf("left side: %w", err)
		}
		right, err := elective.Eval(rhs, bindings)
		if err != nil {
			return nil, fmt.Errorf("right side: %w", err)
		}
		if left-right != 0 {
			setBit(mask, idx)
		}
	}

	return &Equation{variables: vars, forbidden: mask}, nil
}

func checkVariables(variables []string) error {
	if len(variables) == 0 {
		return ErrNoVariables
	}
	if len(variables) > MaxVariables {
		return fmt.Errorf("%w: %d > %d", ErrTooManyVariables, len(variables), MaxVariables)
	}
	seen := make(map[string]bool, len(variables))
	for _, name := range variables {
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
		}
		seen[name] = true
	}
	return nil
}
