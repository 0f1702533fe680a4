package generators

import (
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a generator list:
//
//	generators:
//	  - [1, 0, 0]
//	  - [0, 1, 0]
//
// JSON documents with the same shape are accepted.
type File struct {
	Generators [][]float64 `yaml:"generators" json:"generators"`
}

// Parse decodes a YAML or JSON generator document.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, errors.Wrap(err, "decoding generators")
	}
	return f, nil
}

// Load reads and decodes a generator file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return f, nil
}

// Dimension returns the common length of the generators, or an error if they differ.
func (f *File) Dimension() (int, error) {
	if len(f.Generators) == 0 {
		return 0, errors.New("no generators")
	}
	d := len(f.Generators[0])
	for k, g := range f.Generators {
		if len(g) != d {
			return 0, errors.Errorf("generator %d has %d coordinates, generator 0 has %d", k, len(g), d)
		}
	}
	return d, nil
}

// Vec2 returns the generators as planar vectors.
func (f *File) Vec2() ([]mgl64.Vec2, error) {
	out := make([]mgl64.Vec2, len(f.Generators))
	for k, g := range f.Generators {
		if len(g) != 2 {
			return nil, errors.Errorf("generator %d: want 2 coordinates, got %d", k, len(g))
		}
		out[k] = mgl64.Vec2{g[0], g[1]}
	}
	return out, nil
}

// Vec3 returns the generators as 3D vectors.
func (f *File) Vec3() ([]mgl64.Vec3, error) {
	out := make([]mgl64.Vec3, len(f.Generators))
	for k, g := range f.Generators {
		if len(g) != 3 {
			return nil, errors.Errorf("generator %d: want 3 coordinates, got %d", k, len(g))
		}
		out[k] = mgl64.Vec3{g[0], g[1], g[2]}
	}
	return out, nil
}

// FromVec2 builds a File holding generators.
func FromVec2(generators []mgl64.Vec2) *File {
	f := &File{Generators: make([][]float64, len(generators))}
	for k, g := range generators {
		f.Generators[k] = []float64{g[0], g[1]}
	}
	return f
}

// FromVec3 builds a File holding generators.
func FromVec3(generators []mgl64.Vec3) *File {
	f := &File{Generators: make([][]float64, len(generators))}
	for k, g := range generators {
		f.Generators[k] = []float64{g[0], g[1], g[2]}
	}
	return f
}

// Marshal encodes the file as YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}
