// Package elective implements the expression algebra of elective
// (boolean-valued) symbols: constants, negation written as
// subtraction from one, and product written as juxtaposition.
package elective

// Node is an expression over elective symbols.
// Exactly four implementations exist: *Symbol, *Constant, *Negation
// and *Product. Nodes are immutable trees; sub-expressions belong to
// their parent node and are never shared.
type Node interface {
	// String renders the canonical text of the expression.
	String() string
}

// Symbol references one elective symbol by its letter.
type Symbol struct {
	Name string
}

func (s *Symbol) String() string {
	return s.Name
}

// Constant is a literal 0 or 1.
type Constant struct {
	Value int
}

func (c *Constant) String() string {
	if c.Value == 0 {
		return "0"
	}
	return "1"
}

// Negation is one minus the body.
type Negation struct {
	Body Node
}

func (n *Negation) String() string {
	return "(1-" + n.Body.String() + ")"
}

// Product multiplies two expressions, rendered as bare juxtaposition.
type Product struct {
	Left  Node
	Right Node
}

func (p *Product) String() string {
	return p.Left.String() + p.Right.String()
}
