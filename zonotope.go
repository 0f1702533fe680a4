// Package zonotope builds the boundary of zonotopes, the Minkowski sums of finitely
// many segments, in two and three dimensions.
//
// The generators are borrowed read-only: results are always freshly allocated and a
// caller editing its generators recomputes the whole structure from the new snapshot.
// The index of a generator in the input slice identifies it in the results (see
// facet.Facet.Generators).
//
// All predicates are exact sign tests on products of coordinates. Inputs that are
// nearly but not exactly parallel or coplanar, usually the result of rounding, can
// yield missing or duplicated facets. Integer or quantized inputs (see
// generators.Quantize) avoid this.
package zonotope

import (
	"slices"

	"github.com/akmonengine/zonotope/facet"
	"github.com/akmonengine/zonotope/pairwise"
	"github.com/akmonengine/zonotope/sweep"
	"github.com/akmonengine/zonotope/zonogon"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// Options selects the 3D enumeration algorithm.
type Options struct {
	// GeneralPosition selects the Θ(n² log n) sweep (package sweep). It handles
	// generators exactly parallel to each other but assumes no accidental coplanarity
	// beyond that. When false, the pairwise enumerator handles every degenerate input
	// in O(n³) worst case.
	GeneralPosition bool
	// Workers is the number of goroutines sharing the pivots of the sweep. Values
	// below 1 mean DEFAULT_WORKERS. The pairwise enumerator always runs sequentially.
	Workers int
}

// BuildZonogon returns the closed vertex list of the Minkowski sum of the segments
// [0, g]: 2n+1 vertices, the last repeating the first. Any number of generators,
// including none and zero vectors, is accepted.
func BuildZonogon(generators []mgl64.Vec2) ([]mgl64.Vec2, error) {
	if err := validate2(generators); err != nil {
		return nil, err
	}
	return zonogon.Build(generators), nil
}

// BuildSymmetricZonogon is BuildZonogon for the segments [-g, g]: the same polygon
// scaled by 2 and centered at the origin.
func BuildSymmetricZonogon(generators []mgl64.Vec2) ([]mgl64.Vec2, error) {
	if err := validate2(generators); err != nil {
		return nil, err
	}
	return zonogon.Symmetric(generators), nil
}

// BuildZonotope3 returns the facets of the 3D zonotope Σ[0, g], each exactly once.
//
// It fails with ErrInvalidInput for fewer than MinGenerators3 generators or non-finite
// coordinates and with ErrDegenerateGenerator for a zero generator.
func BuildZonotope3(generators []mgl64.Vec3, opts Options) ([]facet.Facet, error) {
	if err := validate3(generators); err != nil {
		return nil, err
	}

	if !opts.GeneralPosition {
		return pairwise.Facets(generators), nil
	}
	return sweepPivots(generators, max(DEFAULT_WORKERS, opts.Workers)), nil
}

// sweepPivots runs sweep.Pivot for every generator on workersCount goroutines. Each
// pivot writes its own slot and the slots are joined in pivot order, so the result does
// not depend on scheduling.
func sweepPivots(generators []mgl64.Vec3, workersCount int) []facet.Facet {
	center := facet.Center(generators)
	slots := make([][]facet.Facet, len(generators))

	pivots := make([]int, len(generators))
	for i := range pivots {
		pivots[i] = i
	}

	task(workersCount, pivots, func(i int) {
		slots[i] = sweep.Pivot(generators, i, center)
	})

	return slices.Concat(slots...)
}
