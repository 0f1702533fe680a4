package cmd

import (
	"io"

	"github.com/akmonengine/zonotope/generators"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Random SubCommand

func init() {
	Random.Cmd = &cobra.Command{
		Use:   "random",
		Short: "Write a random generator file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRandom(Random.Conf, cmd.OutOrStdout())
		},
	}
	Random.EnvPrefix = "ZONOTOPE_RANDOM"

	f := Random.Cmd.Flags()
	f.IntP("dimension", "d", 3, "Dimension of the generators, 2 or 3.")
	f.IntP("count", "n", 6, "Number of generators.")
	f.Int64("seed", 1, "Random seed.")
	f.Float64("lo", -1, "Lower bound of the coordinates.")
	f.Float64("hi", 1, "Upper bound of the coordinates.")
	f.Int("integer", 0, "Draw nonzero integer 3D generators in [-integer, integer] instead.")
	f.Float64("quantize", 0, "Round coordinates to multiples of this step (0 keeps them).")
}

func runRandom(conf *viper.Viper, stdout io.Writer) error {
	rng := randomSource(conf)
	n := conf.GetInt("count")
	lo, hi := conf.GetFloat64("lo"), conf.GetFloat64("hi")
	step := conf.GetFloat64("quantize")

	var file *generators.File
	switch d := conf.GetInt("dimension"); {
	case d == 3 && conf.GetInt("integer") > 0:
		file = generators.FromVec3(generators.RandomInteger3(rng, n, conf.GetInt("integer")))
	case d == 3:
		gens := generators.Random3(rng, n, lo, hi)
		if step > 0 {
			gens = generators.Quantize3(gens, step)
		}
		file = generators.FromVec3(gens)
	case d == 2:
		gens := generators.Random2(rng, n, lo, hi)
		if step > 0 {
			gens = generators.Quantize2(gens, step)
		}
		file = generators.FromVec2(gens)
	default:
		return errors.Errorf("unsupported dimension %d, want 2 or 3", d)
	}

	data, err := file.Marshal()
	if err != nil {
		return errors.Wrap(err, "encoding generators")
	}
	_, err = stdout.Write(data)
	return err
}
