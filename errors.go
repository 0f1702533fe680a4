package zonotope

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput is returned when the generator list cannot describe the
	// requested zonotope: too few generators, NaN or infinite coordinates.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateGenerator is returned when a 3D generator is the zero vector. A zero
	// generator adds no edge and has no orthogonal plane to sweep around.
	ErrDegenerateGenerator = errors.New("degenerate generator")
)

// MinGenerators3 is the smallest number of generators BuildZonotope3 accepts.
const MinGenerators3 = 2

func validate2(generators []mgl64.Vec2) error {
	for k, g := range generators {
		if !finite(g[0]) || !finite(g[1]) {
			return errors.Wrapf(ErrInvalidInput, "generator %d has a non-finite coordinate: %v", k, g)
		}
	}
	return nil
}

func validate3(generators []mgl64.Vec3) error {
	if len(generators) < MinGenerators3 {
		return errors.Wrapf(ErrInvalidInput, "a 3D zonotope needs at least %d generators, got %d",
			MinGenerators3, len(generators))
	}
	for k, g := range generators {
		if !finite(g[0]) || !finite(g[1]) || !finite(g[2]) {
			return errors.Wrapf(ErrInvalidInput, "generator %d has a non-finite coordinate: %v", k, g)
		}
		if g[0] == 0 && g[1] == 0 && g[2] == 0 {
			return errors.Wrapf(ErrDegenerateGenerator, "generator %d is the zero vector", k)
		}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
