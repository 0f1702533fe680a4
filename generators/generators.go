// Package generators produces zonotope inputs: random samples, quantized copies and
// generator files.
package generators

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Random2 returns n vectors with coordinates drawn uniformly in [lo, hi).
func Random2(rng *rand.Rand, n int, lo, hi float64) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, n)
	for k := range out {
		out[k] = mgl64.Vec2{uniform(rng, lo, hi), uniform(rng, lo, hi)}
	}
	return out
}

// Random3 returns n vectors with coordinates drawn uniformly in [lo, hi).
func Random3(rng *rand.Rand, n int, lo, hi float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, n)
	for k := range out {
		out[k] = mgl64.Vec3{uniform(rng, lo, hi), uniform(rng, lo, hi), uniform(rng, lo, hi)}
	}
	return out
}

// RandomInteger3 returns n nonzero vectors with integer coordinates in [-bound, bound].
// Integer generators keep every predicate of the enumerators exact.
func RandomInteger3(rng *rand.Rand, n, bound int) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, n)
	for len(out) < n {
		v := mgl64.Vec3{
			float64(rng.Intn(2*bound+1) - bound),
			float64(rng.Intn(2*bound+1) - bound),
			float64(rng.Intn(2*bound+1) - bound),
		}
		if v == (mgl64.Vec3{}) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Quantize2 rounds every coordinate to the nearest multiple of step.
func Quantize2(generators []mgl64.Vec2, step float64) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(generators))
	for k, g := range generators {
		out[k] = mgl64.Vec2{quantize(g[0], step), quantize(g[1], step)}
	}
	return out
}

// Quantize3 rounds every coordinate to the nearest multiple of step. With step a power
// of two and moderate magnitudes, the products computed by the enumerators are exact.
func Quantize3(generators []mgl64.Vec3, step float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(generators))
	for k, g := range generators {
		out[k] = mgl64.Vec3{quantize(g[0], step), quantize(g[1], step), quantize(g[2], step)}
	}
	return out
}

// GeneralPosition reports whether no two generators are parallel and no three share a
// plane through the origin, the precondition of the sweep enumerator for producing
// n(n-1) facets. It costs Θ(n³).
func GeneralPosition(generators []mgl64.Vec3) bool {
	n := len(generators)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			normal := generators[i].Cross(generators[j])
			if normal == (mgl64.Vec3{}) {
				return false
			}
			for k := j + 1; k < n; k++ {
				if normal.Dot(generators[k]) == 0 {
					return false
				}
			}
		}
	}
	return true
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func quantize(x, step float64) float64 {
	return math.Round(x/step) * step
}
