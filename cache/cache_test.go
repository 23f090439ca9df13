package cache

import (
	"testing"

	"github.com/elective-xyz/go-elective/elective"
	"github.com/elective-xyz/go-elective/parser"
)

func mustParse(t *testing.T, input string) elective.Node {
	t.Helper()
	node, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return node
}

func TestNormalizeCache_HitMiss(t *testing.T) {
	c := NewNormalizeCache(0)
	vars := []string{"x", "y"}
	lhs := mustParse(t, "x")
	rhs := mustParse(t, "xy")

	first, err := c.Normalize(lhs, rhs, vars)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	second, err := c.Normalize(lhs, rhs, vars)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if first != second {
		t.Error("expected the cached equation on the second call")
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("expected 1 hit / 1 miss, got %d / %d", stats.Hits, stats.Misses)
	}
	if stats.Size != 1 {
		t.Errorf("expected size 1, got %d", stats.Size)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("expected hit rate 0.5, got %f", stats.HitRate)
	}
}

func TestNormalizeCache_StructuralKey(t *testing.T) {
	// Separately parsed but identical premises share one entry.
	c := NewNormalizeCache(0)
	vars := []string{"x", "y"}

	if _, err := c.Normalize(mustParse(t, "x(1-y)"), mustParse(t, "0"), vars); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if _, err := c.Normalize(mustParse(t, "x(1-y)"), mustParse(t, "0"), vars); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if c.Size() != 1 {
		t.Errorf("expected one entry, got %d", c.Size())
	}
}

func TestNormalizeCache_ScopeInKey(t *testing.T) {
	// The same premise over a different variable list is a different
	// canonical form.
	c := NewNormalizeCache(0)
	lhs := mustParse(t, "x")
	rhs := mustParse(t, "xy")

	narrow, err := c.Normalize(lhs, rhs, []string{"x", "y"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	wide, err := c.Normalize(lhs, rhs, []string{"x", "y", "z"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if narrow.Size() == wide.Size() {
		t.Error("expected distinct equations for distinct scopes")
	}
	if c.Size() != 2 {
		t.Errorf("expected two entries, got %d", c.Size())
	}
}

func TestNormalizeCache_Eviction(t *testing.T) {
	c := NewNormalizeCache(1)
	vars := []string{"x", "y"}

	if _, err := c.Normalize(mustParse(t, "x"), mustParse(t, "xy"), vars); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if _, err := c.Normalize(mustParse(t, "y"), mustParse(t, "xy"), vars); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	stats := c.Stats()
	if stats.Size != 1 {
		t.Errorf("expected size 1 after eviction, got %d", stats.Size)
	}
	if stats.Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestNormalizeCache_Clear(t *testing.T) {
	c := NewNormalizeCache(0)
	if _, err := c.Normalize(mustParse(t, "x"), mustParse(t, "xy"), []string{"x", "y"}); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("expected empty cache after Clear, got %d", c.Size())
	}
}

func TestNormalizeCache_ErrorNotCached(t *testing.T) {
	c := NewNormalizeCache(0)
	if _, err := c.Normalize(mustParse(t, "x"), mustParse(t, "xy"), nil); err == nil {
		t.Fatal("expected scope error")
	}
	if c.Size() != 0 {
		t.Errorf("expected no entry for failed normalization, got %d", c.Size())
	}
}
