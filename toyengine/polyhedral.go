package toyengine

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/engine"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
)

// Polyhedral implements engine.Polyhedral for small point configurations
// by exact enumeration: every affinely spanning subset of points is tested
// for supporting the lower envelope of the lift to heights w, and the
// cells are the equality sets of the supporting affine functionals. The
// cost is binomial in the number of points, which is fine for the handful
// of points the worked examples carry.
type Polyhedral struct{}

// NewPolyhedral returns a reference polyhedral engine.
func NewPolyhedral() *Polyhedral { return &Polyhedral{} }

var _ engine.Polyhedral = (*Polyhedral)(nil)

// RegularSubdivision returns the maximal cells of the lower-envelope
// regular subdivision of the columns of points at weight w.
func (p *Polyhedral) RegularSubdivision(ctx context.Context, points *ratmat.Matrix, w []int64) ([][]int, error) {
	n := points.NumCols()
	if n == 0 {
		return nil, fmt.Errorf("Polyhedral.RegularSubdivision: empty point configuration")
	}
	if len(w) != n {
		return nil, fmt.Errorf(
			"Polyhedral.RegularSubdivision: weight has length %d but there are %d points", len(w), n,
		)
	}

	// Homogenize: one row [p_j, 1] per point, so affine functionals on
	// the points become linear functionals on the rows.
	rows := make([][]*big.Rat, n)
	for j := 0; j < n; j++ {
		column, err := points.Column(j)
		if err != nil {
			return nil, fmt.Errorf("Polyhedral.RegularSubdivision: %s", err.Error())
		}
		rows[j] = append(column, big.NewRat(1, 1))
	}
	homogenized, err := ratmat.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Polyhedral.RegularSubdivision: %s", err.Error())
	}
	rank := homogenized.Rank()

	heights := make([]*big.Rat, n)
	for j, entry := range w {
		heights[j] = big.NewRat(entry, 1)
	}

	cells := make(map[string][]int)
	subset := make([]int, rank)
	var visit func(start, depth int) error
	visit = func(start, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if depth == rank {
			cell, err := p.supportedCell(homogenized, heights, subset)
			if err != nil {
				return err
			}
			if cell != nil {
				cells[indexKey(cell)] = cell
			}
			return nil
		}
		for j := start; j <= n-(rank-depth); j++ {
			subset[depth] = j
			if err := visit(j+1, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(0, 0); err != nil {
		return nil, fmt.Errorf("Polyhedral.RegularSubdivision: %w", err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("Polyhedral.RegularSubdivision: no supporting cell found")
	}

	retVal := make([][]int, 0, len(cells))
	for _, cell := range cells {
		retVal = append(retVal, cell)
	}
	sort.Slice(retVal, func(i, j int) bool { return lexLess(retVal[i], retVal[j]) })
	return retVal, nil
}

// supportedCell solves for the affine functional that matches the lift on
// the subset and, if the functional stays below the lift everywhere,
// returns its full equality set. A subset that is not affinely spanning,
// or whose functional climbs above some lifted point, yields nil.
func (p *Polyhedral) supportedCell(
	homogenized *ratmat.Matrix, heights []*big.Rat, subset []int,
) ([]int, error) {
	subRows := make([][]*big.Rat, len(subset))
	subHeights := make([]*big.Rat, len(subset))
	for i, j := range subset {
		row, err := homogenized.Row(j)
		if err != nil {
			return nil, err
		}
		subRows[i] = row
		subHeights[i] = heights[j]
	}
	system, err := ratmat.NewFromRows(subRows)
	if err != nil {
		return nil, err
	}
	if system.Rank() < len(subset) {
		return nil, nil
	}
	functional, ok, err := system.Solve(subHeights)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var cell []int
	for j := 0; j < homogenized.NumRows(); j++ {
		row, err := homogenized.Row(j)
		if err != nil {
			return nil, err
		}
		value := big.NewRat(0, 1)
		for k, entry := range row {
			value.Add(value, new(big.Rat).Mul(entry, functional[k]))
		}
		switch value.Cmp(heights[j]) {
		case 1:
			return nil, nil // the functional climbs above the lift here
		case 0:
			cell = append(cell, j)
		}
	}
	return cell, nil
}

// indexKey builds a map key for a sorted index slice.
func indexKey(indices []int) string {
	var sb strings.Builder
	for _, index := range indices {
		fmt.Fprintf(&sb, "%d,", index)
	}
	return sb.String()
}

// lexLess compares index slices lexicographically, shorter first on ties.
func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
