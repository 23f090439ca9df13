// Package syllogism drives the elective engine through complete
// derivations: premises are parsed and normalized over a shared
// variable list, conjoined into one equation, and projected through
// elimination of the middle terms. Every engine call is recorded as a
// trace step.
package syllogism

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elective-xyz/go-elective/cache"
	"github.com/elective-xyz/go-elective/elective"
	"github.com/elective-xyz/go-elective/equation"
	"github.com/elective-xyz/go-elective/parser"
)

// Premise is one asserted equality between two expression texts.
type Premise struct {
	LHS string
	RHS string
}

func (p Premise) String() string {
	return p.LHS + " = " + p.RHS
}

// Step records one engine call during a derivation.
type Step struct {
	ID       string    `json:"id"`
	Op       string    `json:"op"`       // "normalize", "conjoin" or "eliminate"
	Detail   string    `json:"detail"`   // premise text or eliminated symbol
	Rendered string    `json:"rendered"` // canonical form after the call
	Time     time.Time `json:"time"`
}

// Derivation holds the conclusion and the trace of how it was reached.
type Derivation struct {
	Conclusion *equation.Equation
	Steps      []Step
}

// Argument accumulates premises and middle terms for a derivation.
type Argument struct {
	variables []string
	premises  []Premise
	middles   []string
	cache     *cache.NormalizeCache
}

// New creates an argument over the given variable scope. The order of
// the variables fixes the enumeration order of every equation in the
// derivation.
func New(variables ...string) *Argument {
	return &Argument{variables: variables}
}

// Premise adds an asserted equality lhs = rhs.
func (a *Argument) Premise(lhs, rhs string) *Argument {
	a.premises = append(a.premises, Premise{LHS: lhs, RHS: rhs})
	return a
}

// EliminateSymbols schedules middle terms for elimination, in order.
func (a *Argument) EliminateSymbols(symbols ...string) *Argument {
	a.middles = append(a.middles, symbols...)
	return a
}

// WithCache routes normalization through the given cache.
func (a *Argument) WithCache(c *cache.NormalizeCache) *Argument {
	a.cache = c
	return a
}

// Derive runs the pipeline: parse and normalize each premise, conjoin
// them in order, then eliminate each scheduled middle term. Any
// engine failure aborts the derivation with no partial result.
func (a *Argument) Derive() (*Derivation, error) {
	if len(a.premises) == 0 {
		return nil, fmt.Errorf("syllogism: no premises")
	}

	d := &Derivation{}
	var combined *equation.Equation
	for _, p := range a.premises {
		lhs, err := parser.Parse(p.LHS)
		if err != nil {
			return nil, fmt.Errorf("premise %q: %w", p.String(), err)
		}
		rhs, err := parser.Parse(p.RHS)
		if err != nil {
			return nil, fmt.Errorf("premise %q: %w", p.String(), err)
		}
		eq, err := a.normalize(lhs, rhs)
		if err != nil {
			return nil, fmt.Errorf("premise %q: %w", p.String(), err)
		}
		d.record("normalize", p.String(), eq)

		if combined == nil {
			combined = eq
			continue
		}
		combined, err = equation.Conjoin(combined, eq)
		if err != nil {
			return nil, err
		}
		d.record("conjoin", p.String(), combined)
	}

	for _, symbol := range a.middles {
		var err error
		combined, err = equation.Eliminate(combined, symbol)
		if err != nil {
			return nil, err
		}
		d.record("eliminate", symbol, combined)
	}

	d.Conclusion = combined
	return d, nil
}

func (a *Argument) normalize(lhs, rhs elective.Node) (*equation.Equation, error) {
	if a.cache != nil {
		return a.cache.Normalize(lhs, rhs, a.variables)
	}
	return equation.Normalize(lhs, rhs, a.variables)
}

func (d *Derivation) record(op, detail string, eq *equation.Equation) {
	d.Steps = append(d.Steps, Step{
		ID:       uuid.New().String(),
		Op:       op,
		Detail:   detail,
		Rendered: eq.Render(),
		Time:     time.Now().UTC(),
	})
}
