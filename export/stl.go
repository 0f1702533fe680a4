// Package export writes zonotope results in exchange formats: STL meshes, SVG drawings
// of zonogons and GeoJSON polygons.
package export

import (
	"github.com/akmonengine/zonotope"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Triangles converts the mesh to sdfx triangles, keeping the outward winding.
func Triangles(m *zonotope.Mesh) []*sdf.Triangle3 {
	triangles := make([]*sdf.Triangle3, 0, m.TriangleCount())
	for i := range m.Triangles {
		corners := m.Triangle(i)
		triangles = append(triangles, &sdf.Triangle3{
			toV3(corners[0]),
			toV3(corners[1]),
			toV3(corners[2]),
		})
	}
	return triangles
}

// SaveSTL writes the mesh to path as a binary STL file.
func SaveSTL(path string, m *zonotope.Mesh) error {
	if m.TriangleCount() == 0 {
		return errors.New("empty mesh")
	}
	return errors.Wrapf(render.SaveSTL(path, Triangles(m)), "writing %s", path)
}

func toV3(v mgl64.Vec3) v3.Vec {
	return v3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
