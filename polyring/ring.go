// Package polyring models polynomial rings over the rationals, their
// polynomials, and finitely generated ideals.
//
// A Ring is an ordered list of variable names. The order is load-bearing:
// variable i of the ring corresponds to column i of any point configuration
// paired with an ideal of the ring, and nothing in this package ever
// re-sorts it. Polynomials and Ideals are immutable after construction.
package polyring

import (
	"fmt"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/util"
)

// Ring is an ordered set of symbolic variables over the rational field.
type Ring struct {
	vars []string
}

// NewRing returns a ring with the provided variable names, in the provided
// order. Names must be non-empty and pairwise distinct.
func NewRing(vars []string) (*Ring, error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("NewRing: a ring needs at least one variable")
	}
	seen := make(map[string]bool, len(vars))
	for i, name := range vars {
		if name == "" {
			return nil, fmt.Errorf("NewRing: variable %d has an empty name", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("NewRing: variable name %q repeats", name)
		}
		seen[name] = true
	}
	retVal := &Ring{vars: make([]string, len(vars))}
	copy(retVal.vars, vars)
	return retVal, nil
}

// NumVars returns the number of variables in r.
func (r *Ring) NumVars() int { return len(r.vars) }

// Variables returns a copy of r's variable names, in ring order.
func (r *Ring) Variables() []string {
	retVal := make([]string, len(r.vars))
	copy(retVal, r.vars)
	return retVal
}

// Variable returns the name of variable i.
func (r *Ring) Variable(i int) (string, error) {
	if i < 0 || len(r.vars) <= i {
		return "", fmt.Errorf("Ring.Variable: index %d out of range [0,%d)", i, len(r.vars))
	}
	return r.vars[i], nil
}

// Same returns whether r and other have identical variable names in
// identical order. Polynomials of two rings that are Same are
// interchangeable.
func (r *Ring) Same(other *Ring) bool {
	if other == nil || len(r.vars) != len(other.vars) {
		return false
	}
	for i, name := range r.vars {
		if other.vars[i] != name {
			return false
		}
	}
	return true
}

// Subring returns the ring on the variables indexed by keep, sorted by
// index, together with the map from subring variable positions to parent
// variable indices.
func (r *Ring) Subring(keep []int) (*Ring, []int, error) {
	if err := util.ValidateIndexSet(len(r.vars), keep); err != nil {
		return nil, nil, fmt.Errorf("Ring.Subring: %s", err.Error())
	}
	sorted := util.SortedCopy(keep)
	if len(sorted) == 0 {
		return nil, nil, fmt.Errorf("Ring.Subring: empty variable subset")
	}
	names := make([]string, len(sorted))
	for j, index := range sorted {
		names[j] = r.vars[index]
	}
	sub, err := NewRing(names)
	if err != nil {
		return nil, nil, fmt.Errorf("Ring.Subring: %s", err.Error())
	}
	return sub, sorted, nil
}
