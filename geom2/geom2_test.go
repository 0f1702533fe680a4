package geom2

import (
	"math"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareByAngle(t *testing.T) {
	tests := []struct {
		name     string
		p, q     mgl64.Vec2
		expected int
	}{
		{"equal vectors", mgl64.Vec2{1, 2}, mgl64.Vec2{1, 2}, 0},
		{"equal zero vectors", mgl64.Vec2{}, mgl64.Vec2{}, 0},
		{"positive x-axis before upper half", mgl64.Vec2{1, 0}, mgl64.Vec2{1, 1}, -1},
		{"upper half after positive x-axis", mgl64.Vec2{1, 1}, mgl64.Vec2{1, 0}, 1},
		{"positive x-axis before negative x-axis", mgl64.Vec2{3, 0}, mgl64.Vec2{-1, 0}, -1},
		{"upper half before negative x-axis", mgl64.Vec2{-5, 1}, mgl64.Vec2{-1, 0}, -1},
		{"negative x-axis before lower half", mgl64.Vec2{-1, 0}, mgl64.Vec2{-1, -1}, -1},
		{"lower half after negative x-axis", mgl64.Vec2{1, -1}, mgl64.Vec2{-1, 0}, 1},
		{"upper before lower", mgl64.Vec2{-1, 1}, mgl64.Vec2{1, -1}, -1},
		{"lower after upper", mgl64.Vec2{1, -1}, mgl64.Vec2{-1, 1}, 1},
		{"same half, smaller angle first", mgl64.Vec2{2, 1}, mgl64.Vec2{1, 2}, -1},
		{"same half, larger angle last", mgl64.Vec2{1, 2}, mgl64.Vec2{2, 1}, 1},
		{"lower half, counter-clockwise order", mgl64.Vec2{-2, -1}, mgl64.Vec2{1, -2}, -1},
		{"same direction, shorter first", mgl64.Vec2{1, 0}, mgl64.Vec2{2, 0}, -1},
		{"same direction, longer last", mgl64.Vec2{2, 4}, mgl64.Vec2{1, 2}, 1},
		{"zero before positive x-axis", mgl64.Vec2{}, mgl64.Vec2{1, 0}, -1},
		{"zero before lower half", mgl64.Vec2{}, mgl64.Vec2{0, -1}, -1},
		{"negative zero is zero", mgl64.Vec2{1, 0}, mgl64.Vec2{1, math.Copysign(0, -1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareByAngle(tt.p, tt.q))
		})
	}
}

func TestCompareByAngleIsATotalOrder(t *testing.T) {
	var vectors []mgl64.Vec2
	for x := -2.0; x <= 2; x++ {
		for y := -2.0; y <= 2; y++ {
			vectors = append(vectors, mgl64.Vec2{x, y})
		}
	}

	for _, p := range vectors {
		for _, q := range vectors {
			pq, qp := CompareByAngle(p, q), CompareByAngle(q, p)
			require.Equal(t, -pq, qp, "antisymmetry for %v, %v", p, q)
			if p != q {
				require.NotZero(t, pq, "distinct vectors %v, %v compare equal", p, q)
			}
			for _, r := range vectors {
				if pq < 0 && CompareByAngle(q, r) < 0 {
					require.Negative(t, CompareByAngle(p, r), "transitivity for %v < %v < %v", p, q, r)
				}
			}
		}
	}
}

func TestCompareByAngleSortsCounterClockwise(t *testing.T) {
	sorted := []mgl64.Vec2{
		{1, 0}, {2, 1}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0},
		{-1, -1}, {0, -1}, {1, -1}, {2, -1},
	}
	shuffled := []mgl64.Vec2{
		{-1, -1}, {0, 1}, {2, -1}, {1, 0}, {-1, 0},
		{1, 1}, {0, -1}, {2, 1}, {1, -1}, {-1, 1},
	}

	slices.SortFunc(shuffled, CompareByAngle)
	assert.Equal(t, sorted, shuffled)
}

func TestParallel(t *testing.T) {
	tests := []struct {
		name     string
		p, q     mgl64.Vec2
		expected bool
	}{
		{"same direction", mgl64.Vec2{1, 2}, mgl64.Vec2{2, 4}, true},
		{"opposite direction", mgl64.Vec2{1, 2}, mgl64.Vec2{-3, -6}, true},
		{"zero is parallel to everything", mgl64.Vec2{}, mgl64.Vec2{3, 7}, true},
		{"orthogonal", mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}, false},
		{"nearly parallel", mgl64.Vec2{1, 2}, mgl64.Vec2{1, 2.000001}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parallel(tt.p, tt.q))
			assert.Equal(t, tt.expected, Parallel(tt.q, tt.p))
		})
	}
}

func TestSameDirection(t *testing.T) {
	assert.True(t, SameDirection(mgl64.Vec2{1, 2}, mgl64.Vec2{2, 4}))
	assert.False(t, SameDirection(mgl64.Vec2{1, 2}, mgl64.Vec2{-1, -2}))
	assert.False(t, SameDirection(mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}))
	assert.False(t, SameDirection(mgl64.Vec2{}, mgl64.Vec2{0, 1}))
}

func TestLowerHalf(t *testing.T) {
	tests := []struct {
		p        mgl64.Vec2
		expected bool
	}{
		{mgl64.Vec2{0, -1}, true},
		{mgl64.Vec2{5, -0.5}, true},
		{mgl64.Vec2{-1, 0}, true},
		{mgl64.Vec2{1, 0}, false},
		{mgl64.Vec2{0, 1}, false},
		{mgl64.Vec2{}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LowerHalf(tt.p), "LowerHalf(%v)", tt.p)
		if tt.p != (mgl64.Vec2{}) {
			assert.NotEqual(t, LowerHalf(tt.p), LowerHalf(Antipode(tt.p)), "exactly one of %v and its antipode", tt.p)
		}
	}
}
