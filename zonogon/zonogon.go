// Package zonogon builds planar zonotopes, the Minkowski sums of segments in the plane.
package zonogon

import (
	"slices"

	"github.com/akmonengine/zonotope/geom2"
	"github.com/go-gl/mathgl/mgl64"
)

// Build returns the closed boundary of the Minkowski sum of the segments [0, g].
//
// Every generator contributes the two edges g and -g. The edges are sorted with
// geom2.CompareByAngle and walked from the vertex at which the edge of angle 0 starts,
// which is the sum of the generators lying in the lower half-plane. The result always
// has 2n+1 vertices and, for n > 0, the last one repeats the first. Zero or parallel generators
// produce repeated or collinear vertices; nothing is filtered.
//
// Complexity: O(n log n).
func Build(generators []mgl64.Vec2) []mgl64.Vec2 {
	edges := make([]mgl64.Vec2, 0, 2*len(generators))
	var offset mgl64.Vec2

	for _, g := range generators {
		if geom2.LowerHalf(g) {
			offset = offset.Add(g)
		}
		edges = append(edges, g, geom2.Antipode(g))
	}
	slices.SortStableFunc(edges, geom2.CompareByAngle)

	if len(edges) == 0 {
		return []mgl64.Vec2{offset}
	}

	vertices := make([]mgl64.Vec2, 0, len(edges)+1)
	for _, e := range edges {
		vertices = append(vertices, offset)
		offset = offset.Add(e)
	}
	vertices = append(vertices, vertices[0])

	return vertices
}

// Symmetric returns the closed boundary of the Minkowski sum of the segments [-g, g],
// a polygon centered at the origin. It is Build scaled by 2 and translated by -Σg, so
// the vertex order and count are those of Build.
func Symmetric(generators []mgl64.Vec2) []mgl64.Vec2 {
	center := Center(generators)

	vertices := Build(generators)
	for i, v := range vertices {
		vertices[i] = v.Sub(center).Mul(2)
	}
	return vertices
}

// LeaveOneOut returns, for every k, the zonogon of the generators without generators[k].
// Overlaid, these polygons draw the threshold regions of the full generator set.
func LeaveOneOut(generators []mgl64.Vec2) [][]mgl64.Vec2 {
	polygons := make([][]mgl64.Vec2, len(generators))
	subset := make([]mgl64.Vec2, 0, len(generators))

	for k := range generators {
		subset = append(subset[:0], generators[:k]...)
		subset = append(subset, generators[k+1:]...)
		polygons[k] = Build(subset)
	}
	return polygons
}

// Area returns the signed shoelace area of a closed vertex list as returned by Build.
// Counter-clockwise polygons have a positive area.
func Area(vertices []mgl64.Vec2) float64 {
	var twice float64
	for i := 0; i+1 < len(vertices); i++ {
		p, q := vertices[i], vertices[i+1]
		twice += p[0]*q[1] - p[1]*q[0]
	}
	return twice / 2
}

// Center returns the center of symmetry of Build(generators), which is Σg/2.
func Center(generators []mgl64.Vec2) mgl64.Vec2 {
	var sum mgl64.Vec2
	for _, g := range generators {
		sum = sum.Add(g)
	}
	return sum.Mul(0.5)
}
