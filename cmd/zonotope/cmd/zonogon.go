package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/zonotope"
	"github.com/akmonengine/zonotope/export"
	"github.com/akmonengine/zonotope/zonogon"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Zonogon SubCommand

func init() {
	Zonogon.Cmd = &cobra.Command{
		Use:   "zonogon",
		Short: "Build the zonogon of planar generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runZonogon(Zonogon.Conf, cmd.OutOrStdout())
		},
	}
	Zonogon.EnvPrefix = "ZONOTOPE_ZONOGON"

	addInputFlags(Zonogon.Cmd)
	f := Zonogon.Cmd.Flags()
	f.Bool("symmetric", false, "Sum the segments [-g, g] instead of [0, g].")
	f.Bool("threshold", false, "Also draw the zonogons with one generator left out.")
	f.String("svg", "", "Write an SVG drawing to this file.")
	f.Int("width", export.DefaultSVGOptions.Width, "SVG width in pixels.")
	f.Int("height", export.DefaultSVGOptions.Height, "SVG height in pixels.")
	f.Float64("scale", 100, "SVG pixels per unit.")
	f.String("geojson", "", "Write the polygon as GeoJSON to this file.")
}

func runZonogon(conf *viper.Viper, stdout io.Writer) error {
	gens, err := input2(conf)
	if err != nil {
		return err
	}

	build := zonotope.BuildZonogon
	if conf.GetBool("symmetric") {
		build = zonotope.BuildSymmetricZonogon
	}
	vertices, err := build(gens)
	if err != nil {
		return err
	}
	glog.V(1).Infof("Zonogon of %d generators: %d vertices", len(gens), len(vertices))

	for _, v := range vertices {
		fmt.Fprintf(stdout, "%g %g\n", v[0], v[1])
	}
	glog.Infof("Zonogon area: %g", zonogon.Area(vertices))

	if path := conf.GetString("svg"); path != "" {
		polygons := [][]mgl64.Vec2{vertices}
		if conf.GetBool("threshold") {
			polygons = append(zonogon.LeaveOneOut(gens), vertices)
		}
		opts := export.DefaultSVGOptions
		opts.Width = conf.GetInt("width")
		opts.Height = conf.GetInt("height")
		opts.Scale = conf.GetFloat64("scale")
		if err := writeFile(path, func(f *os.File) error {
			return export.WriteZonogonSVG(f, polygons, gens, opts)
		}); err != nil {
			return err
		}
	}

	if path := conf.GetString("geojson"); path != "" {
		polygon, err := export.ZonogonPolygon(vertices)
		if err != nil {
			return errors.Wrap(err, "building polygon")
		}
		if err := writeFile(path, func(f *os.File) error {
			return export.WriteGeoJSON(f, polygon)
		}); err != nil {
			return err
		}
	}

	return nil
}

// writeFile creates path, runs write on it and closes it.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	glog.Infof("Wrote %s", path)
	return nil
}
