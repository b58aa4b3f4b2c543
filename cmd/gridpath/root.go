package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridpath/scenario"
)

// app carries per-invocation configuration shared by subcommands.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Shortest routes on occupancy grids",
		Long:          "gridpath loads a grid scenario (YAML, HCL or HCL-JSON) and searches it with A*.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file with flag defaults (yaml, toml, json)")
	root.PersistentFlags().String("scenario", "", "scenario file (default: built-in 8x8 reference map)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newFindCmd(a), newComponentsCmd(a))
	return root
}

// initConfig binds flags, GRIDPATH_* environment variables and the optional config file.
func (a *app) initConfig(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix("gridpath")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	return nil
}

func (a *app) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func (a *app) scenario() (*scenario.Scenario, error) {
	path := a.v.GetString("scenario")
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.Load(path)
}
