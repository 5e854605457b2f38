package omega

import (
	"context"
	"fmt"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/engine"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/polyring"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/util"
)

// Stratum returns the ideal of the coordinate stratum of ideal's variety
// on the variables indexed by keep: the complementary variables are
// adjoined as generators and then eliminated, and the result is the
// extension of the stratum's ideal in the full ring, supported on keep.
//
// Keeping every variable eliminates nothing, so Stratum(I, all) is I.
func Stratum(ctx context.Context, sym engine.Symbolic, ideal *polyring.Ideal, keep []int) (*polyring.Ideal, error) {
	n := ideal.Ring().NumVars()
	if err := util.ValidateIndexSet(n, keep); err != nil {
		return nil, fmt.Errorf("Stratum: %s", err.Error())
	}
	drop := util.Complement(n, keep)
	if len(drop) == 0 {
		return ideal, nil
	}
	varIdeal, err := polyring.VariableIdeal(ideal.Ring(), drop)
	if err != nil {
		return nil, fmt.Errorf("Stratum: %s", err.Error())
	}
	sum, err := sym.Sum(ctx, ideal, varIdeal)
	if err != nil {
		return nil, fmt.Errorf("Stratum: symbolic engine: %w", err)
	}
	eliminated, err := sym.Eliminate(ctx, sum, drop)
	if err != nil {
		return nil, fmt.Errorf("Stratum: symbolic engine: %w", err)
	}
	return eliminated, nil
}
