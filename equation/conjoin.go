package equation

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Conjoin merges two equations over the same variable list into one
// asserting both premises simultaneously: the forbidden sets union.
// Conjunction is commutative, associative and idempotent, and never
// un-forbids an assignment either input forbade.
func Conjoin(a, b *Equation) (*Equation, error) {
	if len(a.variables) != len(b.variables) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrVariableMismatch, a.variables, b.variables)
	}
	for i := range a.variables {
		if a.variables[i] != b.variables[i] {
			return nil, fmt.Errorf("%w: %v vs %v", ErrVariableMismatch, a.variables, b.variables)
		}
	}

	vars := make([]string, len(a.variables))
	copy(vars, a.variables)
	mask := new(uint256.Int).Or(a.forbidden, b.forbidden)
	return &Equation{variables: vars, forbidden: mask}, nil
}
