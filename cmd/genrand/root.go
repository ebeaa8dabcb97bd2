package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/emrzvv/genrand/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgPath  string
	seed     int32
	outDir   string
	logLevel string
	noPlots  bool

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "genrand",
		Short: "Deterministic subtractive random generator tools.",
		Long: `Sample, benchmark and analyse the subtractive (Knuth / System.Random style) generator.
For example:
  genrand sample --kind int64 -n 5 --seed 42
  genrand bench --config ./config/default.yaml --out ./results
  genrand analyze --kind float32
  genrand simulate --seed 1`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgPath, "config", "c", "", "path to yaml config (defaults are used when empty)")
	flags.Int32VarP(&opts.seed, "seed", "s", config.DefaultSeed, "generator seed, overrides the config")
	flags.StringVarP(&opts.outDir, "out", "o", "", "output directory, overrides the config")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noPlots, "no-plots", false, "skip png plots")

	rootCmd.AddCommand(
		newSampleCmd(opts),
		newBenchCmd(opts),
		newAnalyzeCmd(opts),
		newSimulateCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	lvl, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("bad --log-level: %w", err)
	}
	o.log = newLogger(cmd.ErrOrStderr(), lvl)

	if o.cfgPath == "" {
		o.cfg = config.Default()
	} else {
		o.cfg, err = config.Load(o.cfgPath)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || o.cfgPath == "" {
		o.cfg.SetSeed(o.seed)
	}
	if flags.Changed("out") {
		o.cfg.Output.Dir = o.outDir
	}
	if o.noPlots {
		o.cfg.Output.Plots = false
	} else if o.cfgPath == "" {
		o.cfg.Output.Plots = true
	}

	o.log.Debug().
		Str("config", o.cfgPath).
		Int32("seed", o.cfg.Seed()).
		Str("out", o.cfg.Output.Dir).
		Msg("configured")
	return nil
}

func (o *rootOptions) ensureOut() error {
	return os.MkdirAll(o.cfg.Output.Dir, 0o755)
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
