package elective

import "fmt"

// Eval evaluates an expression under the given symbol bindings using
// ordinary integer arithmetic: negation is 1-x and product is x*y.
// Values are not constrained to {0,1}; the normalizer only ever binds
// symbols to 0 or 1, and that set is closed under both operations.
func Eval(node Node, bindings map[string]int) (int, error) {
	switch n := node.(type) {
	case *Symbol:
		v, ok := bindings[n.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnboundSymbol, n.Name)
		}
		return v, nil

	case *Constant:
		return n.Value, nil

	case *Negation:
		v, err := Eval(n.Body, bindings)
		if err != nil {
			return 0, err
		}
		return 1 - v, nil

	case *Product:
		left, err := Eval(n.Left, bindings)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right, bindings)
		if err != nil {
			return 0, err
		}
		return left * right, nil

	default:
		return 0, fmt.Errorf("elective: unknown node type: %T", node)
	}
}
