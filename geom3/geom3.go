// Package geom3 holds the 3D helpers used by the zonotope enumerators.
package geom3

import "github.com/go-gl/mathgl/mgl64"

var standardBasis = [3]mgl64.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Antipode returns -p.
func Antipode(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{-p[0], -p[1], -p[2]}
}

// IsZero reports whether every coordinate of p is exactly zero.
func IsZero(p mgl64.Vec3) bool {
	return p[0] == 0 && p[1] == 0 && p[2] == 0
}

// Parallel reports whether p and q are parallel (exact test, zero is parallel to everything).
func Parallel(p, q mgl64.Vec3) bool {
	return IsZero(p.Cross(q))
}

// KernelBasis returns two linearly independent vectors spanning the plane orthogonal to u.
//
// The basis is built by elimination, not Gram-Schmidt: the last standard basis vector
// with a nonzero component along u is used as pivot and its contribution is removed
// from the two others with b_i := x_pivot*b_i - x_i*b_pivot. Integer inputs therefore
// give integer bases. The vectors are neither normalized nor mutually orthogonal.
//
// ok is false when u is the zero vector, which has no orthogonal complement of
// dimension 2; the first two standard basis vectors are returned in that case and
// must not be used.
func KernelBasis(u mgl64.Vec3) (basis [2]mgl64.Vec3, ok bool) {
	b := standardBasis
	var x [3]float64

	pivot := -1
	for i := range 3 {
		x[i] = b[i].Dot(u)
		if x[i] != 0 {
			pivot = i
		}
	}
	if pivot == -1 {
		return [2]mgl64.Vec3{b[0], b[1]}, false
	}

	x[2], x[pivot] = x[pivot], x[2]
	b[2], b[pivot] = b[pivot], b[2]

	for i := range 2 {
		b[i] = b[i].Mul(x[2]).Sub(b[2].Mul(x[i]))
	}

	return [2]mgl64.Vec3{b[0], b[1]}, true
}

// Project maps v onto the plane coordinates given by basis: (basis[0]·v, basis[1]·v).
func Project(basis [2]mgl64.Vec3, v mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{basis[0].Dot(v), basis[1].Dot(v)}
}
