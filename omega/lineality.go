// Package omega builds the combinatorial objects attached to an ideal: the
// lineality space of its canonical basis, the derived point configuration,
// stratum ideals of coordinate subspaces, and the lower- and upper-bound
// ideals of a regular subdivision.
//
// Gröbner-level operations and regular subdivisions are delegated to the
// engine contracts; this package contributes the exact linear algebra and
// the assembly logic.
package omega

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/engine"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/polyring"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
)

// LinealitySpaceHRep returns a spanning set for the orthogonal complement
// of the lineality space of ideal, as the rows of a row-reduced matrix
// with one column per ring variable.
//
// Two monomials of the same canonical-basis polynomial must receive equal
// value under any weight the ideal is homogeneous for, so the span of
// their exponent differences is exactly the set of linear functionals
// vanishing on the lineality space.
func LinealitySpaceHRep(ctx context.Context, sym engine.Symbolic, ideal *polyring.Ideal) (*ratmat.Matrix, error) {
	basis, err := sym.ReducedBasis(ctx, ideal)
	if err != nil {
		return nil, fmt.Errorf("LinealitySpaceHRep: symbolic engine: %w", err)
	}
	if basis.IsZero() {
		return nil, &DegenerateIdealError{Reason: "the zero ideal has no point configuration"}
	}
	if basis.HasUnitGenerator() {
		return nil, &DegenerateIdealError{Reason: "the whole ring has no point configuration"}
	}
	n := ideal.Ring().NumVars()
	var rows [][]*big.Rat
	for _, gen := range basis.Generators() {
		terms := gen.Terms()
		for i := 0; i < len(terms); i++ {
			for j := i + 1; j < len(terms); j++ {
				row := make([]*big.Rat, n)
				for k := 0; k < n; k++ {
					row[k] = big.NewRat(int64(terms[i].Exp[k]-terms[j].Exp[k]), 1)
				}
				rows = append(rows, row)
			}
		}
	}
	if len(rows) == 0 {
		empty, err := ratmat.NewEmpty(0, n)
		if err != nil {
			return nil, fmt.Errorf("LinealitySpaceHRep: %s", err.Error())
		}
		return empty, nil
	}
	differences, err := ratmat.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("LinealitySpaceHRep: %s", err.Error())
	}
	reduced, _ := differences.RowReduce()
	return reduced.NonzeroRows(), nil
}

// LinealitySpaceVRep returns the lineality space of ideal itself, as the
// rows of a row-reduced matrix: the right null space of the H-rep.
func LinealitySpaceVRep(ctx context.Context, sym engine.Symbolic, ideal *polyring.Ideal) (*ratmat.Matrix, error) {
	hRep, err := LinealitySpaceHRep(ctx, sym, ideal)
	if err != nil {
		return nil, err
	}
	kernel, err := hRep.Kernel()
	if err != nil {
		return nil, fmt.Errorf("LinealitySpaceVRep: %s", err.Error())
	}
	return kernel, nil
}

// PointConfiguration returns the point configuration Δ attached to ideal:
// the V-rep lineality matrix read column-wise, column i being the point of
// ring variable i. Pure; callers typically compute it once and cache it.
func PointConfiguration(ctx context.Context, sym engine.Symbolic, ideal *polyring.Ideal) (*ratmat.Matrix, error) {
	vRep, err := LinealitySpaceVRep(ctx, sym, ideal)
	if err != nil {
		return nil, err
	}
	if vRep.NumCols() != ideal.Ring().NumVars() {
		return nil, &InconsistentDimensionError{
			What: "lineality space",
			Got:  vRep.NumCols(),
			Want: ideal.Ring().NumVars(),
		}
	}
	return vRep, nil
}
