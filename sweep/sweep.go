// Package sweep enumerates the facets of a 3D zonotope with an angular sweep around
// every generator.
//
// For a pivot generator u, the other generators are projected on the plane orthogonal
// to u. Each projection w and its opposite -w become events, and sorting the events by
// angle walks the boundary of the projected zonogon: every group of consecutive events
// sharing a direction is one plane through u, hence one facet containing u.
//
// Generators exactly parallel to the pivot project on the origin. They belong to every
// facet of the pivot and are grouped with it; the whole bundle is processed once, under
// its smallest index. Beyond that exact parallelism, generators are assumed to be in
// general position: three of them sharing a plane is only detected when their
// projections are exactly parallel.
//
// Complexity: Θ(n² log n).
//
// Generators must be nonzero; the caller validates its input.
package sweep

import (
	"slices"
	"sync"

	"github.com/akmonengine/zonotope/facet"
	"github.com/akmonengine/zonotope/geom2"
	"github.com/akmonengine/zonotope/geom3"
	"github.com/go-gl/mathgl/mgl64"
)

// Event is the projection of a signed generator on the plane orthogonal to the pivot.
type Event struct {
	Direction mgl64.Vec2
	Label     int     // index of the generator
	Sign      float64 // +1 for the generator, -1 for its opposite
}

// Events is a reusable event buffer.
type Events struct {
	List []Event
}

// Reset empties the buffer and keeps its capacity.
func (e *Events) Reset() {
	e.List = e.List[:0]
}

// EventsPool recycles event buffers across pivots.
var EventsPool = sync.Pool{
	New: func() interface{} {
		return &Events{}
	},
}

// Facets returns every facet of the zonotope Σ[0, g] over generators, pivot by pivot.
func Facets(generators []mgl64.Vec3) []facet.Facet {
	center := facet.Center(generators)

	var facets []facet.Facet
	for i := range generators {
		facets = append(facets, Pivot(generators, i, center)...)
	}
	return facets
}

// Pivot returns the facets whose smallest spanning generator index is i.
//
// center is the center of the zonotope (facet.Center), passed in so that concurrent
// callers compute it once. Pivot only reads generators and may run concurrently for
// different values of i.
func Pivot(generators []mgl64.Vec3, i int, center mgl64.Vec3) []facet.Facet {
	u := generators[i]
	basis, ok := geom3.KernelBasis(u)
	if !ok {
		return nil
	}

	events := EventsPool.Get().(*Events)
	defer EventsPool.Put(events)
	events.Reset()

	// generators parallel to u, u included
	var parallel []int
	var offset mgl64.Vec3

	for j, v := range generators {
		w := geom3.Project(basis, v)
		if w[0] == 0 && w[1] == 0 {
			if j < i {
				// the bundle is handled under its smallest index
				return nil
			}
			parallel = append(parallel, j)
			continue
		}

		if geom2.LowerHalf(w) {
			offset = offset.Add(v)
		}
		events.List = append(events.List,
			Event{Direction: w, Label: j, Sign: 1},
			Event{Direction: geom2.Antipode(w), Label: j, Sign: -1},
		)
	}

	slices.SortStableFunc(events.List, func(p, q Event) int {
		return geom2.CompareByAngle(p.Direction, q.Direction)
	})

	var facets []facet.Facet
	for start := 0; start < len(events.List); {
		end := start + 1
		for end < len(events.List) && geom2.SameDirection(events.List[end-1].Direction, events.List[end].Direction) {
			end++
		}
		batch := events.List[start:end]
		start = end

		first := batch[0]
		members := slices.Clone(parallel)
		var positive, negative mgl64.Vec3

		for _, e := range batch {
			if e.Label < first.Label {
				first = e
			}
			v := generators[e.Label].Mul(e.Sign)
			if e.Sign > 0 {
				positive = positive.Add(v)
			} else {
				negative = negative.Add(v)
			}
			members = append(members, e.Label)
		}

		offset = offset.Add(negative)

		if i < first.Label {
			v := generators[first.Label].Mul(first.Sign)
			b := facet.Builder{
				Normal:     u.Cross(v),
				Basis:      [2]mgl64.Vec3{u, v},
				Offset:     offset,
				Generators: members,
			}
			facets = append(facets, b.Finalize(generators, center))
		}

		offset = offset.Add(positive)
	}

	return facets
}
