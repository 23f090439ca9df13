// Package cache provides memoization for equation normalization.
// Derivations over a shared premise set normalize the same equations
// repeatedly; caching skips the 2^n enumeration for premises already
// seen.
package cache

import (
	"crypto/sha256"
	"strings"
	"sync"

	"github.com/elective-xyz/go-elective/elective"
	"github.com/elective-xyz/go-elective/equation"
)

// NormalizeCache caches canonical equations keyed by a hash of the
// premise: both rendered sides plus the variable list.
type NormalizeCache struct {
	mu        sync.RWMutex
	cache     map[string]*equation.Equation
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewNormalizeCache creates a cache with the specified maximum size.
// When the cache is full, an arbitrary entry is evicted.
// Set maxSize to 0 for an unbounded cache.
func NewNormalizeCache(maxSize int) *NormalizeCache {
	return &NormalizeCache{
		cache:   make(map[string]*equation.Equation),
		maxSize: maxSize,
	}
}

// hashPremise creates a deterministic key from the rendered sides and
// the variable list. Rendering is canonical, so structurally equal
// premises share a key.
func hashPremise(lhs, rhs elective.Node, variables []string) string {
	h := sha256.New()
	h.Write([]byte(lhs.String()))
	h.Write([]byte{0})
	h.Write([]byte(rhs.String()))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(variables, ",")))
	return string(h.Sum(nil))
}

// Get retrieves a cached equation for the given premise.
// Returns nil if not found.
func (c *NormalizeCache) Get(lhs, rhs elective.Node, variables []string) *equation.Equation {
	key := hashPremise(lhs, rhs, variables)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if eq, ok := c.cache[key]; ok {
		c.hits++
		return eq
	}
	c.misses++
	return nil
}

// Put stores an equation in the cache.
func (c *NormalizeCache) Put(lhs, rhs elective.Node, variables []string, eq *equation.Equation) {
	key := hashPremise(lhs, rhs, variables)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			c.evictions++
			break
		}
	}

	c.cache[key] = eq
}

// Normalize retrieves the canonical form from the cache or computes
// and caches it. Equations are immutable, so sharing the cached value
// across callers is safe.
func (c *NormalizeCache) Normalize(lhs, rhs elective.Node, variables []string) (*equation.Equation, error) {
	if eq := c.Get(lhs, rhs, variables); eq != nil {
		return eq, nil
	}

	eq, err := equation.Normalize(lhs, rhs, variables)
	if err != nil {
		return nil, err
	}
	c.Put(lhs, rhs, variables, eq)
	return eq, nil
}

// Clear removes all entries from the cache.
func (c *NormalizeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*equation.Equation)
}

// Size returns the current number of cached entries.
func (c *NormalizeCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats returns cache statistics.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns cache statistics.
func (c *NormalizeCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Size:      len(c.cache),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}
