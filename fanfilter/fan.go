// Package fanfilter tests every cone of a secondary fan for agreement
// between the initial ideal at an interior weight and a combinatorially
// constructed bound ideal, and reassembles the surviving (or excluded)
// cones.
//
// Two variants are implemented. Omega compares the initial ideal at the
// cone's weight w against the lower-bound ideal at w. OmegaStar compares
// the initial ideal at -w against the upper-bound ideal at w; the sign
// asymmetry is deliberate and contractual — the upper bound characterizes
// agreement at the original weight while the initial ideal probes the
// opposite direction, reflecting the upper bound's definition via the
// negated secondary fan.
//
// Each cone's test is a pure function of the ideal, the point
// configuration, and the cone's weight, so cones are evaluated
// independently and in parallel. Large secondary fans can contain
// intractable cones; a per-cone timeout together with the partial-results
// option turns those into recorded per-cone failures instead of aborting
// the run.
package fanfilter

import (
	"fmt"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
)

// Fan is a polyhedral fan given by rays, a cone-incidence matrix, and a
// lineality space shared by every cone. Rays are the rows of the ray
// matrix; incidence row i records which rays cone i contains. A Fan is a
// pure output and is never mutated; filtering always produces a new one.
type Fan struct {
	rays      *ratmat.Matrix
	cones     [][]bool
	lineality *ratmat.Matrix
}

// NewFan validates and assembles a fan. lineality may be nil for a fan
// with trivial lineality space; otherwise its column count must match the
// ray matrix.
func NewFan(rays *ratmat.Matrix, cones [][]bool, lineality *ratmat.Matrix) (*Fan, error) {
	if rays == nil {
		return nil, fmt.Errorf("NewFan: nil ray matrix")
	}
	for i, cone := range cones {
		if len(cone) != rays.NumRows() {
			return nil, fmt.Errorf(
				"NewFan: cone %d has %d incidence entries but there are %d rays",
				i, len(cone), rays.NumRows(),
			)
		}
	}
	if lineality == nil {
		empty, err := ratmat.NewEmpty(0, rays.NumCols())
		if err != nil {
			return nil, fmt.Errorf("NewFan: %s", err.Error())
		}
		lineality = empty
	}
	if lineality.NumRows() > 0 && lineality.NumCols() != rays.NumCols() {
		return nil, fmt.Errorf(
			"NewFan: lineality space has %d columns but rays have %d",
			lineality.NumCols(), rays.NumCols(),
		)
	}
	copied := make([][]bool, len(cones))
	for i, cone := range cones {
		copied[i] = make([]bool, len(cone))
		copy(copied[i], cone)
	}
	return &Fan{rays: rays.Copy(), cones: copied, lineality: lineality.Copy()}, nil
}

// Rays returns the ray matrix, one ray per row.
func (f *Fan) Rays() *ratmat.Matrix { return f.rays.Copy() }

// NumRays returns the number of rays.
func (f *Fan) NumRays() int { return f.rays.NumRows() }

// NumCones returns the number of cones.
func (f *Fan) NumCones() int { return len(f.cones) }

// Cones returns a copy of the cone-incidence matrix.
func (f *Fan) Cones() [][]bool {
	retVal := make([][]bool, len(f.cones))
	for i, cone := range f.cones {
		retVal[i] = make([]bool, len(cone))
		copy(retVal[i], cone)
	}
	return retVal
}

// ConeRayIndices returns the sorted ray indices of cone i.
func (f *Fan) ConeRayIndices(i int) ([]int, error) {
	if i < 0 || len(f.cones) <= i {
		return nil, fmt.Errorf("Fan.ConeRayIndices: cone %d out of range [0,%d)", i, len(f.cones))
	}
	var retVal []int
	for j, member := range f.cones[i] {
		if member {
			retVal = append(retVal, j)
		}
	}
	return retVal, nil
}

// Lineality returns the lineality space, one basis vector per row; a
// matrix with zero rows means the lineality space is trivial.
func (f *Fan) Lineality() *ratmat.Matrix { return f.lineality.Copy() }

// SecondaryInput is the tagged union of the two accepted descriptions of a
// secondary fan: a fully expanded fan object, or an explicit ray/incidence
// pair as produced when the fan was computed only up to a symmetry group
// and expanding it would be infeasible.
type SecondaryInput struct {
	fan   *Fan
	rays  *ratmat.Matrix
	cones [][]bool
}

// FromFan wraps an expanded fan.
func FromFan(f *Fan) SecondaryInput {
	return SecondaryInput{fan: f}
}

// FromPairs wraps an explicit (rays, cone-incidence) pair. The pair
// carries no lineality space; the filter recomputes it from the ideal.
func FromPairs(rays *ratmat.Matrix, cones [][]bool) SecondaryInput {
	return SecondaryInput{rays: rays, cones: cones}
}

// normalize reduces either variant to (rays, cones, lineality-or-nil).
func (s SecondaryInput) normalize() (*ratmat.Matrix, [][]bool, *ratmat.Matrix, error) {
	if s.fan != nil {
		return s.fan.rays, s.fan.cones, s.fan.lineality, nil
	}
	if s.rays == nil {
		return nil, nil, nil, fmt.Errorf("SecondaryInput: neither a fan nor a ray/cone pair was provided")
	}
	for i, cone := range s.cones {
		if len(cone) != s.rays.NumRows() {
			return nil, nil, nil, fmt.Errorf(
				"SecondaryInput: cone %d has %d incidence entries but there are %d rays",
				i, len(cone), s.rays.NumRows(),
			)
		}
	}
	return s.rays, s.cones, nil, nil
}
