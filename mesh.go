package zonotope

import (
	"github.com/akmonengine/zonotope/facet"
	"github.com/akmonengine/zonotope/geom3"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a triangle mesh of a zonotope boundary.
// Vertices shared by several facets are stored once.
type Mesh struct {
	Vertices  []mgl64.Vec3
	Triangles [][3]uint32  // counter-clockwise seen from outside
	Normals   []mgl64.Vec3 // one per triangle, the normal of its facet
}

// NewMesh triangulates every facet as a fan around its first corner and welds the
// vertices with equal coordinates. Vertices lying on a straight edge of their facet,
// produced by parallel generators, are not corners and are left out: the facet across
// that edge has the same two corners on it, so the mesh stays closed.
func NewMesh(facets []facet.Facet) *Mesh {
	m := &Mesh{}
	index := make(map[mgl64.Vec3]uint32)

	vertexIndex := func(v mgl64.Vec3) uint32 {
		if i, ok := index[v]; ok {
			return i
		}
		i := uint32(len(m.Vertices))
		index[v] = i
		m.Vertices = append(m.Vertices, v)
		return i
	}

	for _, f := range facets {
		c := corners(f.Vertices)
		for k := 2; k < len(c); k++ {
			m.Triangles = append(m.Triangles, [3]uint32{vertexIndex(c[0]), vertexIndex(c[k-1]), vertexIndex(c[k])})
			m.Normals = append(m.Normals, f.Normal)
		}
	}

	return m
}

// corners returns the vertices of the cycle that are not collinear with their two
// neighbours.
func corners(cycle []mgl64.Vec3) []mgl64.Vec3 {
	n := len(cycle)
	kept := make([]mgl64.Vec3, 0, n)
	for i, v := range cycle {
		prev, next := cycle[(i+n-1)%n], cycle[(i+1)%n]
		if geom3.Parallel(v.Sub(prev), next.Sub(v)) {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// VertexCount returns the number of distinct vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Triangle returns the corners of triangle i.
func (m *Mesh) Triangle(i int) [3]mgl64.Vec3 {
	t := m.Triangles[i]
	return [3]mgl64.Vec3{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}
}

// SurfaceArea returns the total area of the facets.
func SurfaceArea(facets []facet.Facet) float64 {
	var area float64
	for _, f := range facets {
		area += f.Area()
	}
	return area
}

// Volume returns the volume enclosed by the facets, summing the signed pyramids from
// the origin to each facet. It is zero for flat zonotopes.
func Volume(facets []facet.Facet) float64 {
	var volume float64
	for _, f := range facets {
		if len(f.Vertices) == 0 {
			continue
		}
		volume += f.Area() * f.Vertices[0].Dot(f.Normal) / 3
	}
	return volume
}
