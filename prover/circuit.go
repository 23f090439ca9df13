// Package prover compiles canonical elective equations into gnark
// circuits and produces zero-knowledge proofs that a secret
// assignment is allowed: every forbidden term of the equation
// evaluates to zero, without revealing the assignment itself.
package prover

import (
	"fmt"

	"github.com/consensys/gnark/frontend"

	"github.com/elective-xyz/go-elective/equation"
)

// AssignmentCircuit proves knowledge of an allowed assignment for one
// equation. Values carries one secret witness per variable, in the
// equation's variable order; the forbidden rows are fixed into the
// circuit structure at compile time.
type AssignmentCircuit struct {
	Values []frontend.Variable

	// One row per forbidden assignment, one 0/1 entry per variable.
	// Circuit structure, not witness data.
	forbidden [][]int
}

// NewCircuit shapes a circuit for the given equation, suitable both
// as the compile-time template and as the base for witnesses.
func NewCircuit(eq *equation.Equation) *AssignmentCircuit {
	n := eq.Size()
	rows := make([][]int, 0, eq.ForbiddenCount())
	for idx := 0; idx < eq.Assignments(); idx++ {
		if !eq.Forbidden(idx) {
			continue
		}
		row := make([]int, n)
		for j := 0; j < n; j++ {
			row[j] = idx >> (n - 1 - j) & 1
		}
		rows = append(rows, row)
	}
	return &AssignmentCircuit{
		Values:    make([]frontend.Variable, n),
		forbidden: rows,
	}
}

// Witness builds the witness assignment for proving: one 0/1 value
// per variable in the equation's order.
func Witness(eq *equation.Equation, values []int) (*AssignmentCircuit, error) {
	if len(values) != eq.Size() {
		return nil, fmt.Errorf("prover: assignment has %d values, equation has %d variables", len(values), eq.Size())
	}
	c := NewCircuit(eq)
	for i, v := range values {
		c.Values[i] = v
	}
	return c, nil
}

// Define asserts every value boolean and every forbidden minterm's
// literal product equal to zero. A witness satisfies the circuit
// exactly when the equation allows the assignment.
func (c *AssignmentCircuit) Define(api frontend.API) error {
	for _, v := range c.Values {
		api.AssertIsBoolean(v)
	}
	for _, row := range c.forbidden {
		term := frontend.Variable(1)
		for j, bit := range row {
			if bit == 1 {
				term = api.Mul(term, c.Values[j])
			} else {
				term = api.Mul(term, api.Sub(1, c.Values[j]))
			}
		}
		api.AssertIsEqual(term, 0)
	}
	return nil
}
