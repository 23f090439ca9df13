// Package equation implements the canonical form of elective
// equations: a complete table over every assignment of a fixed
// variable list, marking which assignments the equation forbids.
// Conjunction and elimination operate directly on that table.
package equation

import (
	"math/bits"
	"strings"

	"github.com/holiman/uint256"
)

// MaxVariables caps the scope of an equation so the full 2^n table
// fits in one 256-bit mask. Normalization over a larger scope fails
// fast rather than degrade.
const MaxVariables = 8

// Equation is an elective equation in canonical form. Bit i of the
// mask is set when the assignment with index i is forbidden, where an
// assignment's index reads its values as an n-bit number with the
// first variable as the most significant bit. Storing the table as a
// fixed-width mask makes totality structural: every index 0..2^n-1
// has exactly one bit, no missing or extra entries.
//
// Equations are created by Normalize and transformed, never mutated,
// by Conjoin and Eliminate.
type Equation struct {
	variables []string
	forbidden *uint256.Int
}

// Variables returns a copy of the equation's variable list in order.
func (e *Equation) Variables() []string {
	out := make([]string, len(e.variables))
	copy(out, e.variables)
	return out
}

// Size returns the number of variables in scope.
func (e *Equation) Size() int {
	return len(e.variables)
}

// Assignments returns the number of table entries, 2^Size.
func (e *Equation) Assignments() int {
	return 1 << len(e.variables)
}

// Forbidden reports whether the assignment with the given index is
// excluded by the equation.
func (e *Equation) Forbidden(index int) bool {
	return bitSet(e.forbidden, index)
}

// ForbiddenCount returns the number of forbidden assignments.
func (e *Equation) ForbiddenCount() int {
	count := 0
	for _, limb := range e.forbidden {
		count += bits.OnesCount64(limb)
	}
	return count
}

// Equal reports whether two equations have the same variable list and
// the same forbidden table.
func (e *Equation) Equal(other *Equation) bool {
	if len(e.variables) != len(other.variables) {
		return false
	}
	for i := range e.variables {
		if e.variables[i] != other.variables[i] {
			return false
		}
	}
	return e.forbidden.Eq(other.forbidden)
}

// Render emits the equation as a sum of forbidden terms set to zero.
// Terms appear in ascending assignment-index order; within a term,
// each variable contributes its bare letter when assigned 1 and
// "(1-letter)" when assigned 0, with no separator. An equation with
// no forbidden assignments renders as "0 = 0"; the empty-scope
// forbidden term renders as "1" (the empty product).
func (e *Equation) Render() string {
	n := len(e.variables)
	var terms []string
	for idx := 0; idx < e.Assignments(); idx++ {
		if !e.Forbidden(idx) {
			continue
		}
		var b strings.Builder
		for j, name := range e.variables {
			if idx>>(n-1-j)&1 == 1 {
				b.WriteString(name)
			} else {
				b.WriteString("(1-" + name + ")")
			}
		}
		if n == 0 {
			b.WriteString("1")
		}
		terms = append(terms, b.String())
	}
	if len(terms) == 0 {
		return "0 = 0"
	}
	return strings.Join(terms, " + ") + " = 0"
}

func (e *Equation) String() string {
	return e.Render()
}

// uint256.Int is four little-endian uint64 limbs, so bit i of the
// table lives at bit i%64 of limb i/64.

func bitSet(mask *uint256.Int, i int) bool {
	return mask[i/64]>>(uint(i)%64)&1 == 1
}

func setBit(mask *uint256.Int, i int) {
	mask[i/64] |= 1 << (uint(i) % 64)
}
