package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/akmonengine/zonotope"
	"github.com/akmonengine/zonotope/export"
	"github.com/akmonengine/zonotope/facet"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var Zonotope3 SubCommand

func init() {
	Zonotope3.Cmd = &cobra.Command{
		Use:   "zonotope",
		Short: "Enumerate the facets of the zonotope of 3D generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZonotope3(Zonotope3.Conf, cmd.OutOrStdout())
		},
	}
	Zonotope3.EnvPrefix = "ZONOTOPE_ZONOTOPE"

	addInputFlags(Zonotope3.Cmd)
	f := Zonotope3.Cmd.Flags()
	f.Bool("general_position", false,
		"Use the Θ(n² log n) sweep, which assumes no three generators share a plane.")
	f.Int("workers", zonotope.DEFAULT_WORKERS, "Goroutines sharing the sweep pivots.")
	f.String("format", "yaml", "Facet list format on stdout, one of [yaml, json, none].")
	f.String("stl", "", "Write a triangle mesh of the boundary to this STL file.")
	f.String("geojson", "", "Write the facets as a GeoJSON MultiPolygon to this file.")
}

// facetRecord is the serialized form of a facet.
type facetRecord struct {
	Normal     [3]float64   `yaml:"normal" json:"normal"`
	Generators []int        `yaml:"generators" json:"generators"`
	Vertices   [][3]float64 `yaml:"vertices" json:"vertices"`
	Area       float64      `yaml:"area" json:"area"`
}

type zonotopeRecord struct {
	Bounds      [2][3]float64 `yaml:"bounds" json:"bounds"`
	Facets      []facetRecord `yaml:"facets" json:"facets"`
	SurfaceArea float64       `yaml:"surface_area" json:"surface_area"`
	Volume      float64       `yaml:"volume" json:"volume"`
}

func newZonotopeRecord(gens []mgl64.Vec3, facets []facet.Facet) zonotopeRecord {
	bounds := zonotope.Bounds(gens)
	r := zonotopeRecord{
		Bounds:      [2][3]float64{bounds.Min, bounds.Max},
		Facets:      make([]facetRecord, len(facets)),
		SurfaceArea: zonotope.SurfaceArea(facets),
		Volume:      zonotope.Volume(facets),
	}
	for i, f := range facets {
		fr := facetRecord{
			Normal:     f.Normal,
			Generators: f.Generators,
			Vertices:   make([][3]float64, len(f.Vertices)),
			Area:       f.Area(),
		}
		for k, v := range f.Vertices {
			fr.Vertices[k] = v
			if !bounds.ContainsPoint(v) {
				glog.Warningf("Vertex %v of facet %v lies outside the bounds %v", v, f.Generators, bounds)
			}
		}
		r.Facets[i] = fr
	}
	return r
}

func runZonotope3(conf *viper.Viper, stdout io.Writer) error {
	gens, err := input3(conf)
	if err != nil {
		return err
	}

	opts := zonotope.Options{
		GeneralPosition: conf.GetBool("general_position"),
		Workers:         conf.GetInt("workers"),
	}
	facets, err := zonotope.BuildZonotope3(gens, opts)
	if err != nil {
		return err
	}
	glog.V(1).Infof("Zonotope of %d generators (general position: %v): %d facets",
		len(gens), opts.GeneralPosition, len(facets))

	var g errgroup.Group
	if path := conf.GetString("stl"); path != "" {
		g.Go(func() error {
			mesh := zonotope.NewMesh(facets)
			glog.V(1).Infof("Mesh: %d vertices, %d triangles", mesh.VertexCount(), mesh.TriangleCount())
			if err := export.SaveSTL(path, mesh); err != nil {
				return err
			}
			glog.Infof("Wrote %s", path)
			return nil
		})
	}
	if path := conf.GetString("geojson"); path != "" {
		g.Go(func() error {
			mp, err := export.FacetsMultiPolygon(facets)
			if err != nil {
				return errors.Wrap(err, "building multipolygon")
			}
			return writeFile(path, func(f *os.File) error {
				return export.WriteGeoJSON(f, mp)
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return writeRecord(stdout, conf.GetString("format"), newZonotopeRecord(gens, facets))
}

func writeRecord(w io.Writer, format string, record interface{}) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(record); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(record), "encoding json")
	case "none":
		return nil
	default:
		return errors.Errorf("unknown format %q, want one of [yaml, json, none]", format)
	}
}
