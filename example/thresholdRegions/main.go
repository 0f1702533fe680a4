package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/akmonengine/zonotope"
	"github.com/akmonengine/zonotope/export"
	"github.com/akmonengine/zonotope/generators"
	"github.com/akmonengine/zonotope/zonogon"
	"github.com/go-gl/mathgl/mgl64"
)

// ThresholdRegions draws the zonogon of n random generators together with the n
// zonogons obtained by leaving one generator out.
func ThresholdRegions(n int, path string) error {
	rng := rand.New(rand.NewSource(42))
	gens := generators.Quantize2(generators.Random2(rng, n, -40, 40), 1)

	fmt.Printf("Generators (%d):\n", len(gens))
	for k, g := range gens {
		fmt.Printf("  %2d: %v (len=%.3f)\n", k, g, g.Len())
	}

	full, err := zonotope.BuildZonogon(gens)
	if err != nil {
		return err
	}
	subsets := zonogon.LeaveOneOut(gens)

	fmt.Printf("Full zonogon: %d vertices, area %.1f\n", len(full), zonogon.Area(full))
	for k, polygon := range subsets {
		fmt.Printf("  without %2d: area %.1f\n", k, zonogon.Area(polygon))
	}

	opts := export.DefaultSVGOptions
	opts.PolygonStyle = fmt.Sprintf("fill:#eee;fill-opacity:%.3f;stroke:black;stroke-width:0.8", 1.5/float64(n+1))

	// Center the drawing on the zonogon rather than on the generators' origin.
	center := zonogon.Center(gens)
	polygons := make([][]mgl64.Vec2, 0, len(subsets)+1)
	for _, polygon := range append(subsets, full) {
		shifted := make([]mgl64.Vec2, len(polygon))
		for i, v := range polygon {
			shifted[i] = v.Sub(center)
		}
		polygons = append(polygons, shifted)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteZonogonSVG(f, polygons, nil, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func main() {
	if err := ThresholdRegions(30, "threshold-regions.svg"); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
