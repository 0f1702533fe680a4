// Package cmd implements the zonotope command line: building zonogons and 3D zonotopes
// from generator files and exporting them.
package cmd

import (
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SubCommand is a cobra command with its own configuration. Flags, environment variables
// (prefixed with EnvPrefix) and the --config file all land in Conf.
type SubCommand struct {
	Cmd       *cobra.Command
	Conf      *viper.Viper
	EnvPrefix string
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "zonotope",
	Short: "Build zonogons and 3D zonotopes from their generators",
	Long: `
zonotope computes the boundary of the Minkowski sum of a set of segments.
In the plane the result is a centrally symmetric polygon (a zonogon); in space it
is a list of planar facets, which can be exported as STL, GeoJSON or YAML.
`,
	SilenceUsage: true,
}

var rootConf = viper.New()

var subcommands = []*SubCommand{&Zonogon, &Zonotope3, &Random}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	bindSubcommands()
	goflag.Parse()
	if err := RootCmd.Execute(); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	glog.Flush()
}

func init() {
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	if err := rootConf.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		glog.Fatalf("binding root flags: %v", err)
	}

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
}

// bindSubcommands attaches every subcommand to RootCmd and gives it a configuration
// reading its flags, its environment prefix and the --config file.
func bindSubcommands() {
	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		if err := sc.Conf.BindPFlags(sc.Cmd.Flags()); err != nil {
			glog.Fatalf("binding %s flags: %v", sc.Cmd.Name(), err)
		}
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
		sc.Conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		sc.Conf.AutomaticEnv()
	}

	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				glog.Fatalf("%v", errors.Wrapf(err, "reading config %s", cfg))
			}
		}
	})
}
