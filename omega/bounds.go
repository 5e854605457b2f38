package omega

import (
	"context"
	"fmt"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/engine"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/polyring"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/util"
)

// checkConfiguration validates delta and w against ideal before any engine
// call. delta may be nil, in which case it is derived from ideal.
func checkConfiguration(
	ctx context.Context, sym engine.Symbolic, ideal *polyring.Ideal, w []int64, delta *ratmat.Matrix,
) (*ratmat.Matrix, error) {
	if delta == nil {
		derived, err := PointConfiguration(ctx, sym, ideal)
		if err != nil {
			return nil, err
		}
		delta = derived
	}
	if delta.NumCols() != ideal.Ring().NumVars() {
		return nil, &InconsistentDimensionError{
			What: "point configuration",
			Got:  delta.NumCols(),
			Want: ideal.Ring().NumVars(),
		}
	}
	if len(w) != delta.NumCols() {
		return nil, &InconsistentDimensionError{
			What: "weight vector",
			Got:  len(w),
			Want: delta.NumCols(),
		}
	}
	return delta, nil
}

// IdealsOfMaxCells returns one stratum ideal per maximal cell of the
// regular subdivision of delta at w. delta may be nil to use the point
// configuration derived from ideal.
func IdealsOfMaxCells(
	ctx context.Context,
	sym engine.Symbolic,
	poly engine.Polyhedral,
	ideal *polyring.Ideal,
	w []int64,
	delta *ratmat.Matrix,
) ([]*polyring.Ideal, error) {
	delta, err := checkConfiguration(ctx, sym, ideal, w, delta)
	if err != nil {
		return nil, err
	}
	cells, err := poly.RegularSubdivision(ctx, delta, w)
	if err != nil {
		return nil, fmt.Errorf("IdealsOfMaxCells: polyhedral engine: %w", err)
	}
	retVal := make([]*polyring.Ideal, 0, len(cells))
	for _, cell := range cells {
		stratum, err := Stratum(ctx, sym, ideal, cell)
		if err != nil {
			return nil, err
		}
		retVal = append(retVal, stratum)
	}
	return retVal, nil
}

// IdealW returns the lower-bound ideal of ideal at w: the ideal sum of the
// stratum ideals over the maximal cells of the regular subdivision of
// delta at w. Vanishing on the union of strata requires vanishing on each
// stratum, which summation of generators enforces.
func IdealW(
	ctx context.Context,
	sym engine.Symbolic,
	poly engine.Polyhedral,
	ideal *polyring.Ideal,
	w []int64,
	delta *ratmat.Matrix,
) (*polyring.Ideal, error) {
	cellIdeals, err := IdealsOfMaxCells(ctx, sym, poly, ideal, w, delta)
	if err != nil {
		return nil, err
	}
	if len(cellIdeals) == 0 {
		return nil, fmt.Errorf("IdealW: subdivision produced no maximal cells")
	}
	retVal := cellIdeals[0]
	for _, cellIdeal := range cellIdeals[1:] {
		retVal, err = sym.Sum(ctx, retVal, cellIdeal)
		if err != nil {
			return nil, fmt.Errorf("IdealW: symbolic engine: %w", err)
		}
	}
	return retVal, nil
}

// IdealUpW returns the upper-bound ideal of ideal at w: the intersection,
// over the maximal cells of the regular subdivision of delta at w, of the
// cylinder ideals over the cells. The cylinder over a cell C is built by
// contracting ideal to the subring on C's variables (sorted by index),
// lifting the contraction's generators back, and adjoining the variables
// outside C as generators. The fold is seeded at the unit ideal, the
// neutral element of intersection.
func IdealUpW(
	ctx context.Context,
	sym engine.Symbolic,
	poly engine.Polyhedral,
	ideal *polyring.Ideal,
	w []int64,
	delta *ratmat.Matrix,
) (*polyring.Ideal, error) {
	delta, err := checkConfiguration(ctx, sym, ideal, w, delta)
	if err != nil {
		return nil, err
	}
	cells, err := poly.RegularSubdivision(ctx, delta, w)
	if err != nil {
		return nil, fmt.Errorf("IdealUpW: polyhedral engine: %w", err)
	}
	ring := ideal.Ring()
	retVal, err := polyring.Unit(ring)
	if err != nil {
		return nil, fmt.Errorf("IdealUpW: %s", err.Error())
	}
	for _, cell := range cells {
		cylinder, err := cylinderIdeal(ctx, sym, ideal, cell)
		if err != nil {
			return nil, err
		}
		retVal, err = sym.Intersect(ctx, retVal, cylinder)
		if err != nil {
			return nil, fmt.Errorf("IdealUpW: symbolic engine: %w", err)
		}
	}
	return retVal, nil
}

// cylinderIdeal builds the cylinder ideal over one maximal cell: the lift
// of the contraction of ideal to the cell's subring, plus the vanishing of
// every variable outside the cell.
func cylinderIdeal(
	ctx context.Context, sym engine.Symbolic, ideal *polyring.Ideal, cell []int,
) (*polyring.Ideal, error) {
	ring := ideal.Ring()
	n := ring.NumVars()
	if err := util.ValidateIndexSet(n, cell); err != nil {
		return nil, fmt.Errorf("cylinderIdeal: %s", err.Error())
	}
	sub, keep, err := ring.Subring(cell)
	if err != nil {
		return nil, fmt.Errorf("cylinderIdeal: %s", err.Error())
	}
	contraction, err := sym.Contract(ctx, ideal, sub, keep)
	if err != nil {
		return nil, fmt.Errorf("cylinderIdeal: symbolic engine: %w", err)
	}

	// Lift the contraction's generators back along the embedding that sent
	// subring variable j to ring variable keep[j].
	var gens []*polyring.Polynomial
	for _, gen := range contraction.Generators() {
		lifted, err := gen.Embed(ring, keep)
		if err != nil {
			return nil, fmt.Errorf("cylinderIdeal: %s", err.Error())
		}
		gens = append(gens, lifted)
	}
	for _, index := range util.Complement(n, keep) {
		variable, err := polyring.NewVariable(ring, index)
		if err != nil {
			return nil, fmt.Errorf("cylinderIdeal: %s", err.Error())
		}
		gens = append(gens, variable)
	}
	retVal, err := polyring.NewIdeal(ring, gens)
	if err != nil {
		return nil, fmt.Errorf("cylinderIdeal: %s", err.Error())
	}
	return retVal, nil
}
