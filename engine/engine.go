// Package engine declares the contracts of the two external collaborators
// this module computes with: a symbolic engine for Gröbner-basis level
// operations on ideals, and a polyhedral engine for regular subdivisions.
//
// The module never reimplements these capabilities; it consumes them
// through the interfaces below. Engine calls are synchronous and can be
// expensive (seconds to hours on large inputs), so every method takes a
// context and is expected to honor cancellation where it can. Engine
// computations are deterministic: retrying identical input cannot change
// the outcome, so callers never retry — the legitimate mitigations are a
// larger timeout or a smaller input.
//
// The tropical valuation convention is an explicit argument of Initial,
// never ambient state, so no hidden configuration can leak into callers.
package engine

import (
	"context"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/polyring"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
)

// Valuation selects the tropical convention used when forming initial
// ideals.
type Valuation int

const (
	// MinConvention keeps the terms of minimal weight.
	MinConvention Valuation = iota
	// MaxConvention keeps the terms of maximal weight.
	MaxConvention
)

// String returns the conventional name of the valuation.
func (v Valuation) String() string {
	if v == MaxConvention {
		return "max"
	}
	return "min"
}

// Symbolic is the contract of the external symbolic engine.
//
// Implementations guarantee exactness over the rationals. Equality of
// ideals means equality of their reduced canonical bases, never syntactic
// equality of generators.
type Symbolic interface {
	// ReducedBasis returns the reduced canonical basis of ideal, as an
	// ideal with that basis as its generating set.
	ReducedBasis(ctx context.Context, ideal *polyring.Ideal) (*polyring.Ideal, error)

	// Sum returns the ideal sum a + b (union of generators, reduced).
	Sum(ctx context.Context, a, b *polyring.Ideal) (*polyring.Ideal, error)

	// Intersect returns the ideal intersection of a and b.
	Intersect(ctx context.Context, a, b *polyring.Ideal) (*polyring.Ideal, error)

	// Eliminate projects away the variables indexed by drop: it returns
	// the ideal of all elements of ideal not involving those variables,
	// re-embedded in the full ring.
	Eliminate(ctx context.Context, ideal *polyring.Ideal, drop []int) (*polyring.Ideal, error)

	// Contract returns the preimage of ideal under the embedding of sub
	// into ideal's ring that sends subring variable j to parent variable
	// keep[j]. keep is sorted ascending and pairs positionally with sub's
	// variables.
	Contract(ctx context.Context, ideal *polyring.Ideal, sub *polyring.Ring, keep []int) (*polyring.Ideal, error)

	// Equal reports whether a and b generate the same ideal.
	Equal(ctx context.Context, a, b *polyring.Ideal) (bool, error)

	// Initial returns the initial ideal of ideal at the integer weight w
	// under the provided valuation convention.
	Initial(ctx context.Context, ideal *polyring.Ideal, w []int64, val Valuation) (*polyring.Ideal, error)
}

// Polyhedral is the contract of the external polyhedral engine, scoped to
// the one operation the core consumes. Secondary fans are computed by the
// external tool ahead of time and enter as explicit ray/cone data.
type Polyhedral interface {
	// RegularSubdivision returns the maximal cells of the regular
	// subdivision of a point configuration at weight w, one sorted slice
	// of zero-based point indices per cell, under the lower-envelope
	// (min) convention. The points are the columns of the matrix; w has
	// one entry per column.
	RegularSubdivision(ctx context.Context, points *ratmat.Matrix, w []int64) ([][]int, error)
}
