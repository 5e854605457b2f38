package polyring

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/util"
)

// Term is one coefficient-monomial pair of a polynomial. Exp has one entry
// per ring variable.
type Term struct {
	Coeff *big.Rat
	Exp   []int
}

// NewTermInt64 builds a term with an integer coefficient. Convenient for
// worked examples and tests.
func NewTermInt64(coeff int64, exp []int) Term {
	expCopy := make([]int, len(exp))
	copy(expCopy, exp)
	return Term{Coeff: big.NewRat(coeff, 1), Exp: expCopy}
}

// Polynomial is an immutable polynomial of a fixed ring. Terms are kept in
// canonical form: like terms merged, zero terms dropped, and the remainder
// sorted by descending lexicographic exponent order, so the first term is
// the leading term.
type Polynomial struct {
	ring  *Ring
	terms []Term
}

// NewPolynomial returns the canonical polynomial with the provided terms.
// Every exponent vector must have one non-negative entry per ring variable.
func NewPolynomial(ring *Ring, terms []Term) (*Polynomial, error) {
	if ring == nil {
		return nil, fmt.Errorf("NewPolynomial: nil ring")
	}
	n := ring.NumVars()
	merged := make(map[string]*Term)
	var keys []string
	for i, term := range terms {
		if term.Coeff == nil {
			return nil, fmt.Errorf("NewPolynomial: term %d has a nil coefficient", i)
		}
		if len(term.Exp) != n {
			return nil, fmt.Errorf(
				"NewPolynomial: term %d has %d exponents but the ring has %d variables",
				i, len(term.Exp), n,
			)
		}
		for j, e := range term.Exp {
			if e < 0 {
				return nil, fmt.Errorf("NewPolynomial: term %d has negative exponent at variable %d", i, j)
			}
		}
		key := expKey(term.Exp)
		if existing, ok := merged[key]; ok {
			existing.Coeff.Add(existing.Coeff, term.Coeff)
			continue
		}
		expCopy := make([]int, n)
		copy(expCopy, term.Exp)
		merged[key] = &Term{Coeff: new(big.Rat).Set(term.Coeff), Exp: expCopy}
		keys = append(keys, key)
	}
	retVal := &Polynomial{ring: ring}
	for _, key := range keys {
		if merged[key].Coeff.Sign() != 0 {
			retVal.terms = append(retVal.terms, *merged[key])
		}
	}
	sort.Slice(retVal.terms, func(i, j int) bool {
		return cmpExp(retVal.terms[i].Exp, retVal.terms[j].Exp) > 0
	})
	return retVal, nil
}

// NewVariable returns the monomial consisting of variable i alone.
func NewVariable(ring *Ring, i int) (*Polynomial, error) {
	if ring == nil {
		return nil, fmt.Errorf("NewVariable: nil ring")
	}
	if i < 0 || ring.NumVars() <= i {
		return nil, fmt.Errorf("NewVariable: index %d out of range [0,%d)", i, ring.NumVars())
	}
	exp := make([]int, ring.NumVars())
	exp[i] = 1
	return NewPolynomial(ring, []Term{{Coeff: big.NewRat(1, 1), Exp: exp}})
}

// NewConstant returns the constant polynomial with the provided value.
func NewConstant(ring *Ring, value *big.Rat) (*Polynomial, error) {
	if ring == nil {
		return nil, fmt.Errorf("NewConstant: nil ring")
	}
	exp := make([]int, ring.NumVars())
	return NewPolynomial(ring, []Term{{Coeff: new(big.Rat).Set(value), Exp: exp}})
}

// Ring returns the ring p belongs to.
func (p *Polynomial) Ring() *Ring { return p.ring }

// NumTerms returns the number of (canonical) terms of p.
func (p *Polynomial) NumTerms() int { return len(p.terms) }

// Terms returns a deep copy of p's canonical terms, leading term first.
func (p *Polynomial) Terms() []Term {
	retVal := make([]Term, len(p.terms))
	for i, term := range p.terms {
		expCopy := make([]int, len(term.Exp))
		copy(expCopy, term.Exp)
		retVal[i] = Term{Coeff: new(big.Rat).Set(term.Coeff), Exp: expCopy}
	}
	return retVal
}

// IsZero returns whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// IsConstant returns whether p has no term involving a variable. The zero
// polynomial is constant.
func (p *Polynomial) IsConstant() bool {
	for _, term := range p.terms {
		for _, e := range term.Exp {
			if e != 0 {
				return false
			}
		}
	}
	return true
}

// Support returns the sorted set of variable indices that occur with a
// positive exponent somewhere in p.
func (p *Polynomial) Support() []int {
	occurs := make([]bool, p.ring.NumVars())
	for _, term := range p.terms {
		for j, e := range term.Exp {
			if e > 0 {
				occurs[j] = true
			}
		}
	}
	var retVal []int
	for j, present := range occurs {
		if present {
			retVal = append(retVal, j)
		}
	}
	return retVal
}

// InitialForm returns the polynomial of the terms of p with minimal weight
// under w, one weight entry per ring variable.
func (p *Polynomial) InitialForm(w []int64) (*Polynomial, error) {
	if len(w) != p.ring.NumVars() {
		return nil, fmt.Errorf(
			"Polynomial.InitialForm: weight has length %d but the ring has %d variables",
			len(w), p.ring.NumVars(),
		)
	}
	if len(p.terms) == 0 {
		return NewPolynomial(p.ring, nil)
	}
	minWeight := util.WeightOf(p.terms[0].Exp, w)
	for _, term := range p.terms[1:] {
		if weight := util.WeightOf(term.Exp, w); weight < minWeight {
			minWeight = weight
		}
	}
	var kept []Term
	for _, term := range p.terms {
		if util.WeightOf(term.Exp, w) == minWeight {
			kept = append(kept, term)
		}
	}
	return NewPolynomial(p.ring, kept)
}

// SubstituteZero returns p with every variable in vars set to zero: terms
// whose monomial involves any of those variables are dropped.
func (p *Polynomial) SubstituteZero(vars []int) (*Polynomial, error) {
	if err := util.ValidateIndexSet(p.ring.NumVars(), vars); err != nil {
		return nil, fmt.Errorf("Polynomial.SubstituteZero: %s", err.Error())
	}
	var kept []Term
	for _, term := range p.terms {
		uses := false
		for _, j := range vars {
			if term.Exp[j] > 0 {
				uses = true
				break
			}
		}
		if !uses {
			kept = append(kept, term)
		}
	}
	return NewPolynomial(p.ring, kept)
}

// Embed maps p into target along varMap: variable i of p's ring becomes
// variable varMap[i] of target. A variable that actually occurs in p must
// map somewhere, signalled by varMap[i] >= 0; variables that never occur
// may carry -1.
func (p *Polynomial) Embed(target *Ring, varMap []int) (*Polynomial, error) {
	if len(varMap) != p.ring.NumVars() {
		return nil, fmt.Errorf(
			"Polynomial.Embed: variable map has length %d but the ring has %d variables",
			len(varMap), p.ring.NumVars(),
		)
	}
	terms := make([]Term, 0, len(p.terms))
	for _, term := range p.terms {
		exp := make([]int, target.NumVars())
		for i, e := range term.Exp {
			if e == 0 {
				continue
			}
			j := varMap[i]
			if j < 0 || target.NumVars() <= j {
				name, _ := p.ring.Variable(i)
				return nil, fmt.Errorf(
					"Polynomial.Embed: variable %q occurs in the polynomial but maps to %d", name, j,
				)
			}
			exp[j] += e
		}
		terms = append(terms, Term{Coeff: term.Coeff, Exp: exp})
	}
	return NewPolynomial(target, terms)
}

// Equal returns whether p and q are the same polynomial of the same ring.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if !p.ring.Same(q.ring) || len(p.terms) != len(q.terms) {
		return false
	}
	for i, term := range p.terms {
		if term.Coeff.Cmp(q.terms[i].Coeff) != 0 || cmpExp(term.Exp, q.terms[i].Exp) != 0 {
			return false
		}
	}
	return true
}

// String renders p with explicit * between factors, e.g. "x1*x4 - x2*x3".
func (p *Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, term := range p.terms {
		coeff := term.Coeff
		negative := coeff.Sign() < 0
		abs := new(big.Rat).Abs(coeff)
		switch {
		case i == 0 && negative:
			sb.WriteString("-")
		case i > 0 && negative:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		monomial := p.monomialString(term.Exp)
		if monomial == "" {
			sb.WriteString(abs.RatString())
			continue
		}
		if abs.Cmp(big.NewRat(1, 1)) != 0 {
			sb.WriteString(abs.RatString())
			sb.WriteString("*")
		}
		sb.WriteString(monomial)
	}
	return sb.String()
}

// monomialString renders an exponent vector as a *-joined monomial, or ""
// for the constant monomial.
func (p *Polynomial) monomialString(exp []int) string {
	var parts []string
	for j, e := range exp {
		if e == 0 {
			continue
		}
		name := p.ring.vars[j]
		if e == 1 {
			parts = append(parts, name)
		} else {
			parts = append(parts, fmt.Sprintf("%s^%d", name, e))
		}
	}
	return strings.Join(parts, "*")
}

// cmpExp compares exponent vectors lexicographically.
func cmpExp(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// expKey builds a map key for an exponent vector.
func expKey(exp []int) string {
	var sb strings.Builder
	for _, e := range exp {
		fmt.Fprintf(&sb, "%d,", e)
	}
	return sb.String()
}
