package prover

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/elective-xyz/go-elective/equation"
)

// Prover manages circuit compilation, setup, and proof generation for
// canonical equations.
type Prover struct {
	mu       sync.RWMutex
	circuits map[string]*CompiledCircuit
	curve    ecc.ID
}

// CompiledCircuit holds a compiled equation circuit and its keys.
type CompiledCircuit struct {
	Name         string
	Equation     *equation.Equation
	CS           constraint.ConstraintSystem
	ProvingKey   groth16.ProvingKey
	VerifyingKey groth16.VerifyingKey
	Constraints  int
}

// ProofResult contains a generated proof and the data needed to
// verify it. The assignment itself stays secret; the public witness
// is empty apart from the constant wire.
type ProofResult struct {
	CircuitName string
	Proof       groth16.Proof
	Public      witness.Witness
	Constraints int
}

// New creates a prover on BN254.
func New() *Prover {
	return &Prover{
		circuits: make(map[string]*CompiledCircuit),
		curve:    ecc.BN254,
	}
}

// Register compiles the circuit for an equation and runs trusted
// setup, storing the result under the given name.
func (p *Prover) Register(name string, eq *equation.Equation) (*CompiledCircuit, error) {
	circuit := NewCircuit(eq)

	cs, err := frontend.Compile(p.curve.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	cc := &CompiledCircuit{
		Name:         name,
		Equation:     eq,
		CS:           cs,
		ProvingKey:   pk,
		VerifyingKey: vk,
		Constraints:  cs.GetNbConstraints(),
	}

	p.mu.Lock()
	p.circuits[name] = cc
	p.mu.Unlock()
	return cc, nil
}

// Circuit returns a registered circuit by name.
func (p *Prover) Circuit(name string) (*CompiledCircuit, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cc, ok := p.circuits[name]
	return cc, ok
}

// ListCircuits returns all registered circuit names.
func (p *Prover) ListCircuits() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.circuits))
	for name := range p.circuits {
		names = append(names, name)
	}
	return names
}

// Prove generates a proof that the assignment is allowed by the named
// equation. Proving fails for assignments the equation forbids: the
// witness cannot satisfy the zero constraint of its own minterm.
func (p *Prover) Prove(name string, values []int) (*ProofResult, error) {
	cc, ok := p.Circuit(name)
	if !ok {
		return nil, fmt.Errorf("prover: unknown circuit %q", name)
	}

	assignment, err := Witness(cc.Equation, values)
	if err != nil {
		return nil, err
	}

	fullWitness, err := frontend.NewWitness(assignment, p.curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness failed: %w", err)
	}

	proof, err := groth16.Prove(cc.CS, cc.ProvingKey, fullWitness)
	if err != nil {
		return nil, fmt.Errorf("prove failed: %w", err)
	}

	public, err := fullWitness.Public()
	if err != nil {
		return nil, fmt.Errorf("public witness failed: %w", err)
	}

	return &ProofResult{
		CircuitName: name,
		Proof:       proof,
		Public:      public,
		Constraints: cc.Constraints,
	}, nil
}

// Verify checks a proof against its circuit's verifying key.
func (p *Prover) Verify(result *ProofResult) error {
	cc, ok := p.Circuit(result.CircuitName)
	if !ok {
		return fmt.Errorf("prover: unknown circuit %q", result.CircuitName)
	}
	if err := groth16.Verify(result.Proof, cc.VerifyingKey, result.Public); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	return nil
}
