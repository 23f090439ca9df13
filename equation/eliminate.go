package equation

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Eliminate removes one variable from the equation's scope. A reduced
// assignment is forbidden only when both of its completions, with the
// symbol set to 0 and to 1, are forbidden in the source: universal
// quantification over the removed variable. The order of the
// remaining variables is preserved; eliminating the last variable
// leaves a zero-variable equation with a single table entry.
func Eliminate(eq *Equation, symbol string) (*Equation, error) {
	k := -1
	for i, name := range eq.variables {
		if name == symbol {
			k = i
			break
		}
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, symbol)
	}

	n := len(eq.variables)
	vars := make([]string, 0, n-1)
	for i, name := range eq.variables {
		if i != k {
			vars = append(vars, name)
		}
	}

	mask := new(uint256.Int)
	for ridx := 0; ridx < 1<<(n-1); ridx++ {
		zero := insertBit(ridx, n, k, 0)
		one := insertBit(ridx, n, k, 1)
		if bitSet(eq.forbidden, zero) && bitSet(eq.forbidden, one) {
			setBit(mask, ridx)
		}
	}
	return &Equation{variables: vars, forbidden: mask}, nil
}

// insertBit expands a reduced assignment index to a full one by
// inserting value at variable position k of an n-variable scope. The
// variable at position j contributes bit n-1-j of the index, so the
// variables before position k shift up by one and the rest keep
// their places.
func insertBit(ridx, n, k, value int) int {
	high := ridx >> (n - 1 - k) << (n - k)
	low := ridx & (1<<(n-1-k) - 1)
	return high | value<<(n-1-k) | low
}
