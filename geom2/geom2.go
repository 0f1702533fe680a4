// Package geom2 holds the planar predicates shared by the zonogon builder and the
// facet tracer.
//
// Every predicate uses sign tests and products of coordinates only. No angle is ever
// computed, so integer and dyadic-rational inputs are ordered exactly. Inputs that are
// only approximately parallel are NOT detected as parallel; callers that need
// robustness must quantize their generators first (see generators.Quantize).
package geom2

import "github.com/go-gl/mathgl/mgl64"

// Antipode returns -p.
func Antipode(p mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-p[0], -p[1]}
}

// Parallel reports whether p and q are parallel, using an exact cross product test.
// The zero vector is parallel to everything.
func Parallel(p, q mgl64.Vec2) bool {
	return p[0]*q[1] == p[1]*q[0]
}

// SameDirection reports whether p and q are parallel and point the same way.
func SameDirection(p, q mgl64.Vec2) bool {
	return Parallel(p, q) && p.Dot(q) > 0
}

// LowerHalf reports whether p lies in the half-open lower half-plane:
// y < 0, or y == 0 and x < 0. Exactly one of p and -p is in it unless p is zero.
func LowerHalf(p mgl64.Vec2) bool {
	return p[1] < 0 || (p[1] == 0 && p[0] < 0)
}

// CompareByAngle orders vectors by polar angle in [0, 2π), starting from the positive
// x-axis and turning counter-clockwise. Vectors sharing a direction are ordered by
// length, so the result is a strict total order and only equal vectors compare 0.
// The zero vector sorts first.
func CompareByAngle(p, q mgl64.Vec2) int {
	if p == q {
		return 0
	}

	pHalf, qHalf := halfOf(p), halfOf(q)
	if pHalf != qHalf {
		if pHalf < qHalf {
			return -1
		}
		return 1
	}

	// Same half-plane: the cross product decides.
	if p[1]*q[0] < p[0]*q[1] {
		return -1
	}
	if p[1]*q[0] > p[0]*q[1] {
		return 1
	}

	// Same direction
	if p.Dot(p) < q.Dot(q) {
		return -1
	}
	return 1
}

// halfOf splits the plane in three ordered groups:
// 0 the closed positive x-axis (origin included), 1 the open upper half-plane with the
// negative x-axis, 2 the open lower half-plane.
func halfOf(p mgl64.Vec2) int {
	switch {
	case p[1] == 0 && p[0] >= 0:
		return 0
	case p[1] >= 0:
		return 1
	default:
		return 2
	}
}
