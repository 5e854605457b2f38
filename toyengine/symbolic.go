// Package toyengine provides reference implementations of the engine
// contracts for small worked examples and tests.
//
// The symbolic engine is exact only on a documented subclass of inputs:
// ideals whose supplied generators remain a canonical basis under
// coordinate substitution — principal ideals, monomial ideals, ideals of
// variables, and their sums as they arise in the worked examples. It is
// deliberately not a general Gröbner engine; production use plugs a real
// symbolic system in behind the same interface.
package toyengine

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/engine"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/polyring"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/util"
)

// Symbolic implements engine.Symbolic on the documented input subclass.
type Symbolic struct{}

// NewSymbolic returns a reference symbolic engine.
func NewSymbolic() *Symbolic { return &Symbolic{} }

var _ engine.Symbolic = (*Symbolic)(nil)

// ReducedBasis normalizes the generating set: zero generators dropped,
// each generator scaled monic in its leading coefficient, duplicates
// removed, and the result deterministically ordered. A nonzero constant
// generator collapses the ideal to the unit ideal.
func (s *Symbolic) ReducedBasis(ctx context.Context, ideal *polyring.Ideal) (*polyring.Ideal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return canonical(ideal)
}

// Sum returns the ideal generated by the union of the generators of a
// and b, normalized.
func (s *Symbolic) Sum(ctx context.Context, a, b *polyring.Ideal) (*polyring.Ideal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !a.Ring().Same(b.Ring()) {
		return nil, fmt.Errorf("Symbolic.Sum: ideals of different rings")
	}
	combined, err := polyring.NewIdeal(a.Ring(), append(a.Generators(), b.Generators()...))
	if err != nil {
		return nil, fmt.Errorf("Symbolic.Sum: %s", err.Error())
	}
	return canonical(combined)
}

// Intersect returns the intersection of a and b for the supported cases:
// one side the unit ideal, both sides equal, or both sides monomial
// ideals (pairwise least common multiples, minimalized). Anything else is
// outside the reference engine's subclass and is an error.
func (s *Symbolic) Intersect(ctx context.Context, a, b *polyring.Ideal) (*polyring.Ideal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !a.Ring().Same(b.Ring()) {
		return nil, fmt.Errorf("Symbolic.Intersect: ideals of different rings")
	}
	ca, err := canonical(a)
	if err != nil {
		return nil, err
	}
	cb, err := canonical(b)
	if err != nil {
		return nil, err
	}
	if ca.HasUnitGenerator() {
		return cb, nil
	}
	if cb.HasUnitGenerator() {
		return ca, nil
	}
	if sameGenerators(ca, cb) {
		return ca, nil
	}
	if ca.IsMonomial() && cb.IsMonomial() {
		return intersectMonomial(ca, cb)
	}
	return nil, fmt.Errorf(
		"Symbolic.Intersect: unsupported ideal pair %s and %s", ca.String(), cb.String(),
	)
}

// Eliminate substitutes zero for the dropped variables in every generator
// and discards the generators that vanish. On the supported subclass the
// substituted generators generate the elimination ideal.
func (s *Symbolic) Eliminate(ctx context.Context, ideal *polyring.Ideal, drop []int) (*polyring.Ideal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var gens []*polyring.Polynomial
	for _, gen := range ideal.Generators() {
		substituted, err := gen.SubstituteZero(drop)
		if err != nil {
			return nil, fmt.Errorf("Symbolic.Eliminate: %s", err.Error())
		}
		if !substituted.IsZero() {
			gens = append(gens, substituted)
		}
	}
	eliminated, err := polyring.NewIdeal(ideal.Ring(), gens)
	if err != nil {
		return nil, fmt.Errorf("Symbolic.Eliminate: %s", err.Error())
	}
	return canonical(eliminated)
}

// Contract keeps the generators supported inside keep and restricts them
// along the embedding of sub. On the supported subclass a generator whose
// support leaves the cell contributes nothing to the contraction.
func (s *Symbolic) Contract(ctx context.Context, ideal *polyring.Ideal, sub *polyring.Ring, keep []int) (*polyring.Ideal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := ideal.Ring().NumVars()
	if err := util.ValidateIndexSet(n, keep); err != nil {
		return nil, fmt.Errorf("Symbolic.Contract: %s", err.Error())
	}
	// Inverse of the embedding: parent variable keep[j] maps to subring
	// variable j, everything else maps nowhere.
	inverse := make([]int, n)
	for i := range inverse {
		inverse[i] = -1
	}
	for j, parentIndex := range keep {
		inverse[parentIndex] = j
	}
	var gens []*polyring.Polynomial
	for _, gen := range ideal.Generators() {
		if !util.IsSubset(gen.Support(), keep) {
			continue
		}
		restricted, err := gen.Embed(sub, inverse)
		if err != nil {
			return nil, fmt.Errorf("Symbolic.Contract: %s", err.Error())
		}
		gens = append(gens, restricted)
	}
	contraction, err := polyring.NewIdeal(sub, gens)
	if err != nil {
		return nil, fmt.Errorf("Symbolic.Contract: %s", err.Error())
	}
	return canonical(contraction)
}

// Equal compares reduced canonical bases.
func (s *Symbolic) Equal(ctx context.Context, a, b *polyring.Ideal) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !a.Ring().Same(b.Ring()) {
		return false, nil
	}
	ca, err := canonical(a)
	if err != nil {
		return false, err
	}
	cb, err := canonical(b)
	if err != nil {
		return false, err
	}
	return sameGenerators(ca, cb), nil
}

// Initial takes the initial form of every generator at w. On the
// supported subclass the initial forms of the generators generate the
// initial ideal.
func (s *Symbolic) Initial(ctx context.Context, ideal *polyring.Ideal, w []int64, val engine.Valuation) (*polyring.Ideal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(w) != ideal.Ring().NumVars() {
		return nil, fmt.Errorf(
			"Symbolic.Initial: weight has length %d but the ring has %d variables",
			len(w), ideal.Ring().NumVars(),
		)
	}
	effective := w
	if val == engine.MaxConvention {
		effective = util.NegateInt64(w)
	}
	var gens []*polyring.Polynomial
	for _, gen := range ideal.Generators() {
		form, err := gen.InitialForm(effective)
		if err != nil {
			return nil, fmt.Errorf("Symbolic.Initial: %s", err.Error())
		}
		gens = append(gens, form)
	}
	initial, err := polyring.NewIdeal(ideal.Ring(), gens)
	if err != nil {
		return nil, fmt.Errorf("Symbolic.Initial: %s", err.Error())
	}
	return canonical(initial)
}

// canonical produces the engine's normal form of an ideal: monic
// generators, duplicates removed, deterministic order, unit collapse.
func canonical(ideal *polyring.Ideal) (*polyring.Ideal, error) {
	if ideal.HasUnitGenerator() {
		unit, err := polyring.Unit(ideal.Ring())
		if err != nil {
			return nil, fmt.Errorf("canonical: %s", err.Error())
		}
		return unit, nil
	}
	seen := make(map[string]bool)
	var gens []*polyring.Polynomial
	for _, gen := range ideal.Generators() {
		monic, err := makeMonic(gen)
		if err != nil {
			return nil, err
		}
		key := monic.String()
		if !seen[key] {
			seen[key] = true
			gens = append(gens, monic)
		}
	}
	sort.Slice(gens, func(i, j int) bool { return gens[i].String() < gens[j].String() })
	retVal, err := polyring.NewIdeal(ideal.Ring(), gens)
	if err != nil {
		return nil, fmt.Errorf("canonical: %s", err.Error())
	}
	return retVal, nil
}

// makeMonic divides a nonzero polynomial by its leading coefficient.
func makeMonic(p *polyring.Polynomial) (*polyring.Polynomial, error) {
	terms := p.Terms()
	if len(terms) == 0 {
		return p, nil
	}
	lead := terms[0].Coeff
	for i := range terms {
		terms[i].Coeff = new(big.Rat).Quo(terms[i].Coeff, lead)
	}
	retVal, err := polyring.NewPolynomial(p.Ring(), terms)
	if err != nil {
		return nil, fmt.Errorf("makeMonic: %s", err.Error())
	}
	return retVal, nil
}

// sameGenerators compares two canonicalized ideals generator by
// generator.
func sameGenerators(a, b *polyring.Ideal) bool {
	aGens, bGens := a.Generators(), b.Generators()
	if len(aGens) != len(bGens) {
		return false
	}
	for i := range aGens {
		if !aGens[i].Equal(bGens[i]) {
			return false
		}
	}
	return true
}

// intersectMonomial intersects two monomial ideals: pairwise least common
// multiples of the generators, minimalized by divisibility.
func intersectMonomial(a, b *polyring.Ideal) (*polyring.Ideal, error) {
	ring := a.Ring()
	n := ring.NumVars()
	var exps [][]int
	for _, aGen := range a.Generators() {
		aExp := aGen.Terms()[0].Exp
		for _, bGen := range b.Generators() {
			bExp := bGen.Terms()[0].Exp
			lcm := make([]int, n)
			for k := 0; k < n; k++ {
				lcm[k] = aExp[k]
				if bExp[k] > lcm[k] {
					lcm[k] = bExp[k]
				}
			}
			exps = append(exps, lcm)
		}
	}
	minimal := minimalizeMonomials(exps)
	gens := make([]*polyring.Polynomial, 0, len(minimal))
	for _, exp := range minimal {
		gen, err := polyring.NewPolynomial(ring, []polyring.Term{polyring.NewTermInt64(1, exp)})
		if err != nil {
			return nil, fmt.Errorf("intersectMonomial: %s", err.Error())
		}
		gens = append(gens, gen)
	}
	retVal, err := polyring.NewIdeal(ring, gens)
	if err != nil {
		return nil, fmt.Errorf("intersectMonomial: %s", err.Error())
	}
	return canonical(retVal)
}

// minimalizeMonomials drops every exponent vector divisible by another.
func minimalizeMonomials(exps [][]int) [][]int {
	var retVal [][]int
	for i, candidate := range exps {
		redundant := false
		for j, other := range exps {
			if i == j {
				continue
			}
			if divides(other, candidate) && !(divides(candidate, other) && j > i) {
				redundant = true
				break
			}
		}
		if !redundant {
			retVal = append(retVal, candidate)
		}
	}
	return retVal
}

// divides reports whether the monomial with exponents a divides the one
// with exponents b.
func divides(a, b []int) bool {
	for k := range a {
		if a[k] > b[k] {
			return false
		}
	}
	return true
}
