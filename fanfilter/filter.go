package fanfilter

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/engine"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/omega"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/polyring"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/util"
)

// Variant selects which agreement test the filter runs per cone.
type Variant int

const (
	// Omega tests initial(I, w) against the lower-bound ideal at w.
	Omega Variant = iota
	// OmegaStar tests initial(I, -w) against the upper-bound ideal at w.
	OmegaStar
)

// String returns the variant's name.
func (v Variant) String() string {
	if v == OmegaStar {
		return "omega-star"
	}
	return "omega"
}

// Options tune a filtering run. The zero value is valid: all cores, no
// per-cone timeout, abort on the first engine failure, no logging.
type Options struct {
	// Workers bounds the number of cones tested concurrently; <= 0 means
	// one worker per CPU.
	Workers int
	// ConeTimeout bounds the wall time of a single cone's test; 0 means
	// no bound.
	ConeTimeout time.Duration
	// Partial records per-cone engine failures (including timeouts) on
	// the cone's report and lets the run complete, instead of aborting
	// on the first failure.
	Partial bool
	// Logger receives per-cone progress; nil disables logging.
	Logger *zap.Logger
}

func (o *Options) withDefaults() Options {
	retVal := Options{}
	if o != nil {
		retVal = *o
	}
	if retVal.Workers <= 0 {
		retVal.Workers = runtime.NumCPU()
	}
	if retVal.Logger == nil {
		retVal.Logger = zap.NewNop()
	}
	return retVal
}

// ConeReport records the outcome of one cone's test.
type ConeReport struct {
	// Cone is the cone's index in the input fan.
	Cone int
	// Weight is the primitive interior representative weight used for
	// the test; all zeros for the lineality-space cone.
	Weight []int64
	// Inside reports whether the cone passed its agreement test.
	Inside bool
	// Err is the engine failure or timeout for this cone, recorded only
	// in partial mode. A cone with a non-nil Err is counted in neither
	// the inside nor the outside partition.
	Err error
}

// Result is the outcome of a filtering run. Reports always carries one
// entry per input cone, in input order. Exactly one of Fan (outside=false)
// or the Rays/Cones pair (outside=true) is populated.
type Result struct {
	Reports []ConeReport
	// Inside and Outside partition the tested cone indices, preserving
	// the input cone order.
	Inside  []int
	Outside []int
	// Incomplete counts cones whose test failed in partial mode.
	Incomplete int
	// Fan is the fan of passing cones, with the input rays and the
	// lineality space. Populated when outside=false.
	Fan *Fan
	// Rays and Cones are the raw combinatorial data of the failing
	// cones, with no lineality space attached: callers on this branch
	// want to inspect counterexamples, not reconstruct a fan object.
	// Populated when outside=true.
	Rays  *ratmat.Matrix
	Cones [][]bool
}

// OmegaFan filters sec for the cones whose weights satisfy
// initial(I, w) = IdealW(I, w, Δ).
func OmegaFan(
	ctx context.Context,
	sym engine.Symbolic,
	poly engine.Polyhedral,
	ideal *polyring.Ideal,
	delta *ratmat.Matrix,
	sec SecondaryInput,
	outside bool,
	opts *Options,
) (*Result, error) {
	return Filter(ctx, sym, poly, ideal, delta, sec, Omega, outside, opts)
}

// OmegaStarFan filters sec for the cones whose weights satisfy
// initial(I, -w) = IdealUpW(I, w, Δ).
func OmegaStarFan(
	ctx context.Context,
	sym engine.Symbolic,
	poly engine.Polyhedral,
	ideal *polyring.Ideal,
	delta *ratmat.Matrix,
	sec SecondaryInput,
	outside bool,
	opts *Options,
) (*Result, error) {
	return Filter(ctx, sym, poly, ideal, delta, sec, OmegaStar, outside, opts)
}

// Filter runs the per-cone agreement test of variant over every cone of
// sec and assembles the passing cones into a fan (outside=false) or the
// failing cones into a raw ray/incidence pair (outside=true). delta may be
// nil to use the point configuration derived from ideal.
func Filter(
	ctx context.Context,
	sym engine.Symbolic,
	poly engine.Polyhedral,
	ideal *polyring.Ideal,
	delta *ratmat.Matrix,
	sec SecondaryInput,
	variant Variant,
	outside bool,
	opts *Options,
) (*Result, error) {
	options := opts.withDefaults()
	rays, cones, lineality, err := sec.normalize()
	if err != nil {
		return nil, fmt.Errorf("Filter: %s", err.Error())
	}
	if delta == nil {
		delta, err = omega.PointConfiguration(ctx, sym, ideal)
		if err != nil {
			return nil, err
		}
	}
	if delta.NumCols() != ideal.Ring().NumVars() {
		return nil, &omega.InconsistentDimensionError{
			What: "point configuration",
			Got:  delta.NumCols(),
			Want: ideal.Ring().NumVars(),
		}
	}
	if rays.NumRows() > 0 && rays.NumCols() != delta.NumCols() {
		return nil, &omega.InconsistentDimensionError{
			What: "ray matrix",
			Got:  rays.NumCols(),
			Want: delta.NumCols(),
		}
	}

	reports := make([]ConeReport, len(cones))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(options.Workers)
	for i := range cones {
		i := i
		group.Go(func() error {
			started := time.Now()
			report, err := testCone(groupCtx, sym, poly, ideal, delta, rays, cones[i], i, variant, options)
			if err != nil {
				if !options.Partial {
					return err
				}
				report = ConeReport{Cone: i, Err: err}
			}
			reports[i] = report
			options.Logger.Debug("cone tested",
				zap.Int("cone", i),
				zap.String("variant", variant.String()),
				zap.Int64s("weight", report.Weight),
				zap.Bool("inside", report.Inside),
				zap.Bool("failed", report.Err != nil),
				zap.Duration("elapsed", time.Since(started)),
			)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("Filter: cone test: %w", err)
	}

	retVal := &Result{Reports: reports}
	for i := range reports {
		switch {
		case reports[i].Err != nil:
			retVal.Incomplete++
		case reports[i].Inside:
			retVal.Inside = append(retVal.Inside, i)
		default:
			retVal.Outside = append(retVal.Outside, i)
		}
	}
	options.Logger.Info("filtering finished",
		zap.String("variant", variant.String()),
		zap.Int("cones", len(cones)),
		zap.Int("inside", len(retVal.Inside)),
		zap.Int("outside", len(retVal.Outside)),
		zap.Int("incomplete", retVal.Incomplete),
	)

	if outside {
		retVal.Rays = rays.Copy()
		retVal.Cones = selectRows(cones, retVal.Outside)
		return retVal, nil
	}
	if lineality == nil {
		lineality, err = omega.LinealitySpaceVRep(ctx, sym, ideal)
		if err != nil {
			return nil, err
		}
	}
	retVal.Fan, err = NewFan(rays, selectRows(cones, retVal.Inside), lineality)
	if err != nil {
		return nil, fmt.Errorf("Filter: %s", err.Error())
	}
	return retVal, nil
}

// testCone evaluates one cone: representative weight, initial ideal, bound
// ideal, equality.
func testCone(
	ctx context.Context,
	sym engine.Symbolic,
	poly engine.Polyhedral,
	ideal *polyring.Ideal,
	delta *ratmat.Matrix,
	rays *ratmat.Matrix,
	cone []bool,
	index int,
	variant Variant,
	options Options,
) (ConeReport, error) {
	weight, err := coneWeight(rays, cone)
	if err != nil {
		return ConeReport{}, fmt.Errorf("cone %d: %s", index, err.Error())
	}
	if isZeroWeight(weight) {
		// The ray sum vanishes only for the lineality-space cone, where
		// the initial ideal and both bounds all reduce to the ideal
		// itself.
		return ConeReport{Cone: index, Weight: weight, Inside: true}, nil
	}
	if options.ConeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.ConeTimeout)
		defer cancel()
	}

	initialWeight := weight
	if variant == OmegaStar {
		initialWeight = util.NegateInt64(weight)
	}
	initialIdeal, err := sym.Initial(ctx, ideal, initialWeight, engine.MinConvention)
	if err != nil {
		return ConeReport{}, fmt.Errorf("cone %d: initial ideal: %w", index, err)
	}
	var bound *polyring.Ideal
	if variant == OmegaStar {
		bound, err = omega.IdealUpW(ctx, sym, poly, ideal, weight, delta)
	} else {
		bound, err = omega.IdealW(ctx, sym, poly, ideal, weight, delta)
	}
	if err != nil {
		return ConeReport{}, fmt.Errorf("cone %d: bound ideal: %w", index, err)
	}
	inside, err := sym.Equal(ctx, initialIdeal, bound)
	if err != nil {
		return ConeReport{}, fmt.Errorf("cone %d: ideal comparison: %w", index, err)
	}
	return ConeReport{Cone: index, Weight: weight, Inside: inside}, nil
}

// coneWeight returns the primitive integer scaling of the sum of the rays
// the cone contains.
func coneWeight(rays *ratmat.Matrix, cone []bool) ([]int64, error) {
	sum := make([]*big.Rat, rays.NumCols())
	for j := range sum {
		sum[j] = big.NewRat(0, 1)
	}
	for rayIndex, member := range cone {
		if !member {
			continue
		}
		ray, err := rays.Row(rayIndex)
		if err != nil {
			return nil, err
		}
		for j, entry := range ray {
			sum[j].Add(sum[j], entry)
		}
	}
	return ratmat.PrimitiveVector(sum)
}

func isZeroWeight(w []int64) bool {
	for _, entry := range w {
		if entry != 0 {
			return false
		}
	}
	return true
}

// selectRows copies the incidence rows at the provided indices, in order.
func selectRows(cones [][]bool, indices []int) [][]bool {
	retVal := make([][]bool, 0, len(indices))
	for _, i := range indices {
		row := make([]bool, len(cones[i]))
		copy(row, cones[i])
		retVal = append(retVal, row)
	}
	return retVal
}
