// Package facet implements the two construction phases of a zonotope facet.
//
// An enumerator first fills a Builder: the plane normal, a basis of the plane, the
// offset (sum of the generators lying strictly on the positive side of the supporting
// hyperplane) and the indices of the generators parallel to the plane. Finalize then
// traces the boundary cycle and orients the facet, producing an immutable Facet.
package facet

import (
	"slices"

	"github.com/akmonengine/zonotope/geom2"
	"github.com/akmonengine/zonotope/geom3"
	"github.com/go-gl/mathgl/mgl64"
)

// Builder is a facet whose vertices have not been traced yet.
type Builder struct {
	Normal     mgl64.Vec3    // nonzero, any length
	Basis      [2]mgl64.Vec3 // independent vectors spanning the plane orthogonal to Normal
	Offset     mgl64.Vec3    // sum of the generators strictly on the positive side
	Generators []int         // indices of the generators parallel to the plane
}

// Facet is a finalized face of a 3D zonotope.
type Facet struct {
	Normal     mgl64.Vec3    // unit length, pointing out of the zonotope
	Basis      [2]mgl64.Vec3 // basis the vertices were traced in
	Offset     mgl64.Vec3
	Generators []int
	Vertices   []mgl64.Vec3 // counter-clockwise seen from Normal, cycle left open
}

// edge is a projected edge direction together with the 3D vector it comes from.
type edge struct {
	direction mgl64.Vec2
	preimage  mgl64.Vec3
}

// Center returns the center of symmetry of the zonotope Σ[0, g], which is Σg/2.
func Center(generators []mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, g := range generators {
		sum = sum.Add(g)
	}
	return sum.Mul(0.5)
}

// Finalize traces the vertex cycle of the facet and orients it.
//
// The member generators are projected on the basis; each one yields the edge u and
// the edge -u. The cycle starts at Offset plus the members projecting in the lower
// half-plane, then follows the edges in geom2.CompareByAngle order. This is the
// zonogon walk of zonogon.Build carried out on the preimages, so the cycle is
// counter-clockwise seen from Basis[0] × Basis[1].
//
// Normal is normalized and, when it points towards center (the center of the
// zonotope, see Center), negated together with the vertex order.
//
// Complexity: O(k log k) with k = len(b.Generators).
func (b Builder) Finalize(generators []mgl64.Vec3, center mgl64.Vec3) Facet {
	edges := make([]edge, 0, 2*len(b.Generators))
	current := b.Offset

	for _, k := range b.Generators {
		u := generators[k]
		w := geom3.Project(b.Basis, u)
		if geom2.LowerHalf(w) {
			current = current.Add(u)
		}
		edges = append(edges,
			edge{direction: w, preimage: u},
			edge{direction: geom2.Antipode(w), preimage: geom3.Antipode(u)},
		)
	}
	slices.SortStableFunc(edges, func(p, q edge) int {
		return geom2.CompareByAngle(p.direction, q.direction)
	})

	vertices := make([]mgl64.Vec3, 0, len(edges))
	for _, e := range edges {
		vertices = append(vertices, current)
		current = current.Add(e.preimage)
	}

	f := Facet{
		Normal:     b.Normal.Normalize(),
		Basis:      b.Basis,
		Offset:     b.Offset,
		Generators: b.Generators,
		Vertices:   vertices,
	}
	if len(vertices) > 0 && vertices[0].Sub(center).Dot(f.Normal) < 0 {
		f.Normal = geom3.Antipode(f.Normal)
		slices.Reverse(f.Vertices)
	}

	return f
}

// Area returns the area of the facet polygon. It is negative when the vertex cycle
// turns clockwise around Normal.
func (f Facet) Area() float64 {
	var sum mgl64.Vec3
	for i, v := range f.Vertices {
		next := f.Vertices[(i+1)%len(f.Vertices)]
		sum = sum.Add(v.Cross(next))
	}
	return sum.Dot(f.Normal) / 2
}

// Centroid returns the mean of the facet vertices, which is the center of the facet
// polygon since facets of a zonotope are centrally symmetric.
func (f Facet) Centroid() mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, v := range f.Vertices {
		sum = sum.Add(v)
	}
	if len(f.Vertices) == 0 {
		return sum
	}
	return sum.Mul(1 / float64(len(f.Vertices)))
}
