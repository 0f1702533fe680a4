// Package pairwise enumerates the facets of a 3D zonotope by testing every pair of
// generators against all the others.
//
// The enumeration does not assume general position: parallel generators, repeated
// generators and any number of generators sharing a plane are handled. A facet is
// spanned by all the generators parallel to its plane; it is emitted once, from the
// pair (i, j) where i is the smallest of these indices and j the first later index
// not parallel to generators[i].
//
// Complexity: O(n·m) where m is the number of facets, Θ(n³) in the worst case. Pairs
// proven to span an already emitted plane are remembered and skipped, which keeps the
// typical cost close to Θ(n²) for arrangements with many coplanar generators.
//
// Generators must be nonzero; the caller validates its input.
package pairwise

import (
	"github.com/akmonengine/zonotope/facet"
	"github.com/akmonengine/zonotope/geom3"
	"github.com/go-gl/mathgl/mgl64"
)

// Facets returns every facet of the zonotope Σ[0, g] over generators, each exactly once.
// Facets come in pairs of opposite planes, the one with normal generators[i] ×
// generators[j] first.
func Facets(generators []mgl64.Vec3) []facet.Facet {
	n := len(generators)
	center := facet.Center(generators)
	seen := newPairSet(n)

	var facets []facet.Facet
	for i := 0; i < n; i++ {
		u := generators[i]

		for j := i + 1; j < n; j++ {
			if seen.has(i, j) {
				continue
			}
			seen.add(i, j)

			v := generators[j]
			normal := u.Cross(v)
			if geom3.IsZero(normal) {
				// u and v are parallel, they span no plane
				continue
			}

			pos, neg, ok := split(generators, i, j, normal, seen)
			if !ok {
				continue
			}

			facets = append(facets,
				pos.Finalize(generators, center),
				neg.Finalize(generators, center),
			)
		}
	}

	return facets
}

// split classifies every generator against the plane spanned by generators i and j.
//
// Generators on the positive side of normal accumulate in pos.Offset, those on the
// negative side in neg.Offset and coplanar ones join both facets. Pairs made of a
// coplanar generator and one of i, j are added to seen when not parallel, as they span
// the same plane.
//
// ok is false when a coplanar generator has an index lower than i: (i, j) is not the
// canonical pair of this plane and the facets are emitted from another pair.
func split(generators []mgl64.Vec3, i, j int, normal mgl64.Vec3, seen *pairSet) (pos, neg facet.Builder, ok bool) {
	u, v := generators[i], generators[j]
	members := []int{i, j}

	pos = facet.Builder{Normal: normal, Basis: [2]mgl64.Vec3{u, v}}
	// the swapped basis keeps the cycle counter-clockwise around -normal
	neg = facet.Builder{Normal: geom3.Antipode(normal), Basis: [2]mgl64.Vec3{v, u}}

	for k, w := range generators {
		if k == i || k == j {
			continue
		}

		switch side := normal.Dot(w); {
		case side > 0:
			pos.Offset = pos.Offset.Add(w)
		case side < 0:
			neg.Offset = neg.Offset.Add(w)
		default:
			if k < i {
				return pos, neg, false
			}
			members = append(members, k)
			if !geom3.Parallel(u, w) {
				seen.add(i, k)
			}
			if !geom3.Parallel(v, w) {
				seen.add(j, k)
			}
		}
	}

	pos.Generators = members
	neg.Generators = members
	return pos, neg, true
}
