package polyring

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/util"
)

// Ideal is an immutable algebraic object identified by a finite generating
// set of polynomials in a fixed ring. Two Ideals with different generators
// may describe the same ideal; semantic equality is an external-engine
// capability, not a method here.
type Ideal struct {
	ring *Ring
	gens []*Polynomial
}

// NewIdeal returns the ideal generated by gens. Zero polynomials are
// dropped; an empty (or all-zero) generator list yields the zero ideal.
// Every generator must belong to the provided ring.
func NewIdeal(ring *Ring, gens []*Polynomial) (*Ideal, error) {
	if ring == nil {
		return nil, fmt.Errorf("NewIdeal: nil ring")
	}
	retVal := &Ideal{ring: ring}
	for i, gen := range gens {
		if gen == nil {
			return nil, fmt.Errorf("NewIdeal: generator %d is nil", i)
		}
		if !gen.Ring().Same(ring) {
			return nil, fmt.Errorf("NewIdeal: generator %d belongs to a different ring", i)
		}
		if !gen.IsZero() {
			retVal.gens = append(retVal.gens, gen)
		}
	}
	return retVal, nil
}

// Zero returns the zero ideal of ring.
func Zero(ring *Ring) (*Ideal, error) {
	return NewIdeal(ring, nil)
}

// Unit returns the unit ideal (the whole ring).
func Unit(ring *Ring) (*Ideal, error) {
	one, err := NewConstant(ring, big.NewRat(1, 1))
	if err != nil {
		return nil, fmt.Errorf("Unit: %s", err.Error())
	}
	return NewIdeal(ring, []*Polynomial{one})
}

// VariableIdeal returns the ideal generated by the variables indexed by
// vars. An empty index set yields the zero ideal.
func VariableIdeal(ring *Ring, vars []int) (*Ideal, error) {
	if err := util.ValidateIndexSet(ring.NumVars(), vars); err != nil {
		return nil, fmt.Errorf("VariableIdeal: %s", err.Error())
	}
	gens := make([]*Polynomial, 0, len(vars))
	for _, index := range util.SortedCopy(vars) {
		gen, err := NewVariable(ring, index)
		if err != nil {
			return nil, fmt.Errorf("VariableIdeal: %s", err.Error())
		}
		gens = append(gens, gen)
	}
	return NewIdeal(ring, gens)
}

// Ring returns the ring the ideal lives in.
func (id *Ideal) Ring() *Ring { return id.ring }

// NumGenerators returns the number of stored generators.
func (id *Ideal) NumGenerators() int { return len(id.gens) }

// Generators returns a copy of the generator list. The polynomials
// themselves are immutable and shared.
func (id *Ideal) Generators() []*Polynomial {
	retVal := make([]*Polynomial, len(id.gens))
	copy(retVal, id.gens)
	return retVal
}

// IsZero returns whether the stored generating set is empty, i.e. the
// ideal is syntactically the zero ideal.
func (id *Ideal) IsZero() bool { return len(id.gens) == 0 }

// HasUnitGenerator returns whether some generator is a nonzero constant,
// i.e. the ideal is syntactically the whole ring.
func (id *Ideal) HasUnitGenerator() bool {
	for _, gen := range id.gens {
		if gen.IsConstant() && !gen.IsZero() {
			return true
		}
	}
	return false
}

// IsMonomial returns whether every generator is a single term.
func (id *Ideal) IsMonomial() bool {
	for _, gen := range id.gens {
		if gen.NumTerms() != 1 {
			return false
		}
	}
	return true
}

// String renders the ideal as an angle-bracketed generator list.
func (id *Ideal) String() string {
	if len(id.gens) == 0 {
		return "<0>"
	}
	parts := make([]string, len(id.gens))
	for i, gen := range id.gens {
		parts[i] = gen.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}
