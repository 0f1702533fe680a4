package geom3

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelBasis(t *testing.T) {
	tests := []struct {
		name     string
		u        mgl64.Vec3
		expected [2]mgl64.Vec3
	}{
		{"x axis", mgl64.Vec3{1, 0, 0}, [2]mgl64.Vec3{{0, 0, 1}, {0, 1, 0}}},
		{"y axis", mgl64.Vec3{0, 2, 0}, [2]mgl64.Vec3{{2, 0, 0}, {0, 0, 2}}},
		{"z axis", mgl64.Vec3{0, 0, -1}, [2]mgl64.Vec3{{-1, 0, 0}, {0, -1, 0}}},
		{"generic", mgl64.Vec3{1, 2, 3}, [2]mgl64.Vec3{{3, 0, -1}, {0, 3, -2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basis, ok := KernelBasis(tt.u)
			require.True(t, ok)
			assert.Equal(t, tt.expected, basis)
		})
	}
}

func TestKernelBasisSpansTheOrthogonalPlane(t *testing.T) {
	vectors := []mgl64.Vec3{
		{1, 1, 1}, {-3, 2, 7}, {0, 5, -2}, {4, 0, 0}, {0.375, -2e5, 3},
		{0.5, 0.25, -0.125}, {-1, -1, 0},
	}

	for _, u := range vectors {
		basis, ok := KernelBasis(u)
		require.True(t, ok, "u = %v", u)

		assert.Zero(t, basis[0].Dot(u), "b0 · %v", u)
		assert.Zero(t, basis[1].Dot(u), "b1 · %v", u)
		assert.False(t, IsZero(basis[0].Cross(basis[1])), "basis of %v is not independent", u)
	}
}

func TestKernelBasisOfZero(t *testing.T) {
	basis, ok := KernelBasis(mgl64.Vec3{})
	assert.False(t, ok)
	assert.Equal(t, [2]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}}, basis)
}

func TestParallel(t *testing.T) {
	assert.True(t, Parallel(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{-2, -4, -6}))
	assert.True(t, Parallel(mgl64.Vec3{}, mgl64.Vec3{1, 2, 3}))
	assert.False(t, Parallel(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 0}))
	// Only the x and y coordinates agree
	assert.False(t, Parallel(mgl64.Vec3{1, 2, 0}, mgl64.Vec3{2, 4, 1}))
}

func TestProject(t *testing.T) {
	basis := [2]mgl64.Vec3{{1, 0, 0}, {0, 1, 1}}
	assert.Equal(t, mgl64.Vec2{2, 7}, Project(basis, mgl64.Vec3{2, 3, 4}))
	assert.Equal(t, mgl64.Vec3{-1, 2, -3}, Antipode(mgl64.Vec3{1, -2, 3}))
}
