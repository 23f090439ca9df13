package elective

import (
	"errors"
	"testing"
)

func TestEval_Basic(t *testing.T) {
	bindings := map[string]int{"x": 1, "y": 0}

	tests := []struct {
		name string
		node Node
		want int
	}{
		{"symbol one", &Symbol{Name: "x"}, 1},
		{"symbol zero", &Symbol{Name: "y"}, 0},
		{"constant zero", &Constant{Value: 0}, 0},
		{"constant one", &Constant{Value: 1}, 1},
		{"negation of one", &Negation{Body: &Symbol{Name: "x"}}, 0},
		{"negation of zero", &Negation{Body: &Symbol{Name: "y"}}, 1},
		{"product both one", &Product{Left: &Symbol{Name: "x"}, Right: &Constant{Value: 1}}, 1},
		{"product with zero", &Product{Left: &Symbol{Name: "x"}, Right: &Symbol{Name: "y"}}, 0},
		{"nested", &Product{
			Left:  &Symbol{Name: "x"},
			Right: &Negation{Body: &Symbol{Name: "y"}},
		}, 1},
	}

	for _, tt := range tests {
		got, err := Eval(tt.node, bindings)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestEval_UnboundSymbol(t *testing.T) {
	node := &Product{Left: &Symbol{Name: "x"}, Right: &Symbol{Name: "q"}}
	_, err := Eval(node, map[string]int{"x": 1})
	if err == nil {
		t.Fatal("expected error for unbound symbol")
	}
	if !errors.Is(err, ErrUnboundSymbol) {
		t.Errorf("expected ErrUnboundSymbol, got %v", err)
	}
}

func TestString_Canonical(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Symbol{Name: "x"}, "x"},
		{&Constant{Value: 0}, "0"},
		{&Constant{Value: 1}, "1"},
		{&Negation{Body: &Symbol{Name: "y"}}, "(1-y)"},
		{&Product{Left: &Symbol{Name: "x"}, Right: &Symbol{Name: "y"}}, "xy"},
		{&Product{
			Left:  &Symbol{Name: "x"},
			Right: &Product{Left: &Negation{Body: &Symbol{Name: "y"}}, Right: &Symbol{Name: "z"}},
		}, "x(1-y)z"},
		{&Negation{Body: &Negation{Body: &Symbol{Name: "x"}}}, "(1-(1-x))"},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
