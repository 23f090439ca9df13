package parser

import (
	"errors"
	"testing"

	"github.com/elective-xyz/go-elective/elective"
)

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"x",
		"0",
		"1",
		"xy",
		"xyz",
		"(1-x)",
		"x(1-y)",
		"(1-x)y",
		"x(1-y)z",
		"(1-(1-x))",
		"(1-(1-x)(1-y))",
		"(1-xy)z0",
		"x(1-y(1-z))",
	}

	for _, input := range inputs {
		node, err := Parse(input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", input, err)
			continue
		}
		if got := node.String(); got != input {
			t.Errorf("Parse(%q).String() = %q, expected round-trip", input, got)
		}
	}
}

func TestParse_Structure(t *testing.T) {
	node, err := Parse("x(1-y)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prod, ok := node.(*elective.Product)
	if !ok {
		t.Fatalf("expected *Product, got %T", node)
	}
	sym, ok := prod.Left.(*elective.Symbol)
	if !ok || sym.Name != "x" {
		t.Errorf("expected left to be symbol x, got %#v", prod.Left)
	}
	neg, ok := prod.Right.(*elective.Negation)
	if !ok {
		t.Fatalf("expected right to be *Negation, got %T", prod.Right)
	}
	body, ok := neg.Body.(*elective.Symbol)
	if !ok || body.Name != "y" {
		t.Errorf("expected negation body to be symbol y, got %#v", neg.Body)
	}
}

func TestParse_ProductNesting(t *testing.T) {
	// A run of atoms combines as Product(first, rest).
	node, err := Parse("xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := node.(*elective.Product)
	if !ok {
		t.Fatalf("expected *Product, got %T", node)
	}
	if _, ok := outer.Left.(*elective.Symbol); !ok {
		t.Errorf("expected first factor to be a symbol, got %T", outer.Left)
	}
	if _, ok := outer.Right.(*elective.Product); !ok {
		t.Errorf("expected rest to parse as a product, got %T", outer.Right)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
	}{
		{"", 0},
		{"A", 0},
		{"x+y", 1},
		{"(2-x)", 0},
		{"(x)", 0},
		{"(1-x", 0},
		{"x)", 1},
		{"(1-)", 3},
		{"x(1-y", 1},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		if err == nil {
			t.Errorf("Parse(%q): expected error", tt.input)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): expected *ParseError, got %T", tt.input, err)
			continue
		}
		if perr.Pos != tt.pos {
			t.Errorf("Parse(%q): expected error at position %d, got %d (%v)", tt.input, tt.pos, perr.Pos, perr)
		}
	}
}

func TestParse_NeverPartial(t *testing.T) {
	// Trailing garbage after a valid prefix must fail, not truncate.
	if _, err := Parse("x("); err == nil {
		t.Error("expected error for trailing open parenthesis")
	}
	if _, err := Parse("(1-x)?"); err == nil {
		t.Error("expected error for trailing unrecognized character")
	}
}
