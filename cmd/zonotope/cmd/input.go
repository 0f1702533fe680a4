package cmd

import (
	"math/rand"

	"github.com/akmonengine/zonotope/generators"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// addInputFlags registers the flags selecting where generators come from.
func addInputFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringP("generators", "g", "", "YAML or JSON generator file.")
	f.Int("random", 0, "Use this many random generators instead of a file.")
	f.Int64("seed", 1, "Seed of the random generators.")
	f.Float64("lo", -1, "Lower bound of random coordinates.")
	f.Float64("hi", 1, "Upper bound of random coordinates.")
	f.Float64("quantize", 0, "Round generator coordinates to multiples of this step (0 keeps them).")
}

func randomSource(conf *viper.Viper) *rand.Rand {
	return rand.New(rand.NewSource(conf.GetInt64("seed")))
}

func loadFile(conf *viper.Viper) (*generators.File, error) {
	path := conf.GetString("generators")
	if path == "" {
		return nil, errors.New("one of --generators or --random is required")
	}
	glog.V(1).Infof("Reading generators from %s", path)
	return generators.Load(path)
}

func input2(conf *viper.Viper) ([]mgl64.Vec2, error) {
	var gens []mgl64.Vec2
	if n := conf.GetInt("random"); n > 0 {
		gens = generators.Random2(randomSource(conf), n, conf.GetFloat64("lo"), conf.GetFloat64("hi"))
	} else {
		f, err := loadFile(conf)
		if err != nil {
			return nil, err
		}
		if gens, err = f.Vec2(); err != nil {
			return nil, err
		}
	}
	if step := conf.GetFloat64("quantize"); step > 0 {
		gens = generators.Quantize2(gens, step)
	}
	return gens, nil
}

func input3(conf *viper.Viper) ([]mgl64.Vec3, error) {
	var gens []mgl64.Vec3
	if n := conf.GetInt("random"); n > 0 {
		gens = generators.Random3(randomSource(conf), n, conf.GetFloat64("lo"), conf.GetFloat64("hi"))
	} else {
		f, err := loadFile(conf)
		if err != nil {
			return nil, err
		}
		if gens, err = f.Vec3(); err != nil {
			return nil, err
		}
	}
	if step := conf.GetFloat64("quantize"); step > 0 {
		gens = generators.Quantize3(gens, step)
	}
	return gens, nil
}
