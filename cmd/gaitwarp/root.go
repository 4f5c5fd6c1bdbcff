package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gaitwarp/internal/config"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		level   string
	)
	a := &app{}
	root := &cobra.Command{
		Use:           "gaitwarp",
		Short:         "Dynamic Time Warping for gait signals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if level != "" {
				cfg.Log.Level = level
			}
			lvl, err := zerolog.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("%w: log level %q", config.ErrInvalidConfig, cfg.Log.Level)
			}
			a.cfg = cfg
			a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(lvl).
				With().Timestamp().
				Str("run", uuid.NewString()).
				Str("cmd", cmd.Name()).
				Logger()

			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&level, "log-level", "", "log level: trace|debug|info|warn|error (overrides config)")

	root.AddCommand(newAlignCmd(a), newCasesCmd(a), newStressCmd(a))

	return root
}
