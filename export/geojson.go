package export

import (
	"io"

	"github.com/akmonengine/zonotope/facet"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// ZonogonPolygon converts a closed vertex list (as returned by zonogon.Build) to a
// polygon with a single exterior ring.
func ZonogonPolygon(vertices []mgl64.Vec2) (*geom.Polygon, error) {
	ring := make([]geom.Coord, len(vertices))
	for i, v := range vertices {
		ring[i] = geom.Coord{v[0], v[1]}
	}
	return geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{ring})
}

// FacetsMultiPolygon converts facets to a 3D multipolygon, one closed ring per facet.
func FacetsMultiPolygon(facets []facet.Facet) (*geom.MultiPolygon, error) {
	polygons := make([][][]geom.Coord, len(facets))
	for i, f := range facets {
		ring := make([]geom.Coord, 0, len(f.Vertices)+1)
		for _, v := range f.Vertices {
			ring = append(ring, geom.Coord{v[0], v[1], v[2]})
		}
		if len(f.Vertices) > 0 {
			v := f.Vertices[0]
			ring = append(ring, geom.Coord{v[0], v[1], v[2]})
		}
		polygons[i] = [][]geom.Coord{ring}
	}
	return geom.NewMultiPolygon(geom.XYZ).SetCoords(polygons)
}

// WriteGeoJSON encodes g as a GeoJSON geometry.
func WriteGeoJSON(w io.Writer, g geom.T) error {
	data, err := geojson.Marshal(g)
	if err != nil {
		return errors.Wrap(err, "encoding geojson")
	}
	_, err = w.Write(data)
	return err
}
