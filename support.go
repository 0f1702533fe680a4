package zonotope

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint reports whether point lies in the box, boundary included.
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if point[axis] < a.Min[axis] || point[axis] > a.Max[axis] {
			return false
		}
	}
	return true
}

// Size returns the extent of the box along each axis.
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Bounds returns the bounding box of the zonotope Σ[0, g]. Along each axis the
// minimum sums the negative coordinates and the maximum the positive ones.
func Bounds(generators []mgl64.Vec3) AABB {
	var box AABB
	for _, g := range generators {
		for axis := 0; axis < 3; axis++ {
			box.Min[axis] += math.Min(0, g[axis])
			box.Max[axis] += math.Max(0, g[axis])
		}
	}
	return box
}

// Support returns the point of the zonotope Σ[0, g] farthest along direction: the sum
// of the generators with a positive component along it. When direction is a facet
// normal, generators orthogonal to it are left out and the result is the facet vertex
// where all of them are at 0.
func Support(generators []mgl64.Vec3, direction mgl64.Vec3) mgl64.Vec3 {
	var point mgl64.Vec3
	for _, g := range generators {
		if direction.Dot(g) > 0 {
			point = point.Add(g)
		}
	}
	return point
}
