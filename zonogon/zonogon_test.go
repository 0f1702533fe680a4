package zonogon

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		generators []mgl64.Vec2
		expected   []mgl64.Vec2
	}{
		{
			name:       "no generators",
			generators: nil,
			expected:   []mgl64.Vec2{{0, 0}},
		},
		{
			name:       "single generator",
			generators: []mgl64.Vec2{{1, 2}},
			expected:   []mgl64.Vec2{{0, 0}, {1, 2}, {0, 0}},
		},
		{
			name:       "single generator in the lower half-plane",
			generators: []mgl64.Vec2{{1, -2}},
			expected:   []mgl64.Vec2{{1, -2}, {0, 0}, {1, -2}},
		},
		{
			name:       "unit square",
			generators: []mgl64.Vec2{{1, 0}, {0, 1}},
			expected:   []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
		},
		{
			name:       "unit square, reversed input",
			generators: []mgl64.Vec2{{0, 1}, {1, 0}},
			expected:   []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
		},
		{
			name:       "negative generators",
			generators: []mgl64.Vec2{{-1, 0}, {0, -1}},
			expected:   []mgl64.Vec2{{-1, -1}, {0, -1}, {0, 0}, {-1, 0}, {-1, -1}},
		},
		{
			name:       "hexagon",
			generators: []mgl64.Vec2{{1, 0}, {0, 1}, {-1, 1}},
			expected: []mgl64.Vec2{
				{0, 0}, {1, 0}, {1, 1}, {0, 2}, {-1, 2}, {-1, 1}, {0, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Build(tt.generators))
		})
	}
}

func TestBuildDoesNotModifyGenerators(t *testing.T) {
	generators := []mgl64.Vec2{{3, -1}, {-2, 2}, {0, 1}}
	snapshot := append([]mgl64.Vec2(nil), generators...)

	Build(generators)
	Symmetric(generators)
	LeaveOneOut(generators)

	assert.Equal(t, snapshot, generators)
}

func TestSymmetric(t *testing.T) {
	vertices := Symmetric([]mgl64.Vec2{{1, 0}, {0, 1}})
	expected := []mgl64.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	assert.Equal(t, expected, vertices)
	assert.Equal(t, 4.0, Area(vertices))
}

func TestBuildRandomGenerators(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 20; run++ {
		n := 1 + rng.Intn(12)
		generators := make([]mgl64.Vec2, n)
		for k := range generators {
			// nonzero integer coordinates keep every sum exact
			for generators[k] == (mgl64.Vec2{}) {
				generators[k] = mgl64.Vec2{float64(rng.Intn(21) - 10), float64(rng.Intn(21) - 10)}
			}
		}

		vertices := Build(generators)
		require.Len(t, vertices, 2*n+1)
		assert.Equal(t, vertices[0], vertices[len(vertices)-1], "closed cycle")

		// central symmetry: v[k] + v[k+n] = Σg
		sum := Center(generators).Mul(2)
		for k := 0; k < n; k++ {
			assert.Equal(t, sum, vertices[k].Add(vertices[k+n]), "vertex %d of %v", k, generators)
		}

		// the area of a zonogon is Σ|det(g_i, g_j)| over pairs
		var expected float64
		for i := range generators {
			for j := i + 1; j < n; j++ {
				p, q := generators[i], generators[j]
				expected += math.Abs(p[0]*q[1] - p[1]*q[0])
			}
		}
		assert.Equal(t, expected, Area(vertices), "area of %v", generators)

		// counter-clockwise: every turn is to the left or straight
		for k := 0; k+2 < len(vertices); k++ {
			a, b := vertices[k+1].Sub(vertices[k]), vertices[k+2].Sub(vertices[k+1])
			assert.GreaterOrEqual(t, a[0]*b[1]-a[1]*b[0], 0.0, "turn at vertex %d of %v", k+1, generators)
		}
	}
}

func TestBuildZeroGenerator(t *testing.T) {
	vertices := Build([]mgl64.Vec2{{1, 0}, {0, 0}, {0, 1}})
	require.Len(t, vertices, 7)
	assert.Equal(t, 1.0, Area(vertices))
}

func TestLeaveOneOut(t *testing.T) {
	generators := []mgl64.Vec2{{1, 0}, {0, 1}, {-1, 1}}
	polygons := LeaveOneOut(generators)
	require.Len(t, polygons, 3)

	assert.Equal(t, Build([]mgl64.Vec2{{0, 1}, {-1, 1}}), polygons[0])
	assert.Equal(t, Build([]mgl64.Vec2{{1, 0}, {-1, 1}}), polygons[1])
	assert.Equal(t, Build([]mgl64.Vec2{{1, 0}, {0, 1}}), polygons[2])
	for _, p := range polygons {
		assert.Len(t, p, 5)
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, mgl64.Vec2{}, Center(nil))
	assert.Equal(t, mgl64.Vec2{0, 1}, Center([]mgl64.Vec2{{1, 0}, {0, 1}, {-1, 1}}))
}
