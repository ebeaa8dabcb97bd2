package main

import (
	"path/filepath"

	"github.com/emrzvv/genrand/internal/export"
	"github.com/emrzvv/genrand/internal/plots"
	"github.com/emrzvv/genrand/internal/simulator"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var seconds float64
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a queue simulation driven by the generator",
		Long: `Run a single-server queue whose arrivals and service times all come from one
seeded generator, and export its trace. Equal seeds give identical traces.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("time") {
				cfg.Simulation.TimeSeconds = seconds
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			trace, queue := simulator.Run(cfg, opts.log)
			if waits := trace.Waits(); len(waits) > 0 {
				opts.log.Info().
					Float64("mean_wait_s", stat.Mean(waits, nil)).
					Float64("p95_wait_s", quantile(0.95, waits)).
					Msg("waits")
			}

			dir := filepath.Join(cfg.Output.Dir, "sim")
			if err := export.ToCSV(dir, trace, queue); err != nil {
				return err
			}
			if cfg.Output.Plots {
				if err := plots.Queue(queue, filepath.Join(dir, "queue.png")); err != nil {
					return err
				}
			}
			opts.log.Info().Str("dir", dir).Msg("simulation results saved")
			return nil
		},
	}
	cmd.Flags().Float64Var(&seconds, "time", 600, "simulated seconds")
	return cmd
}
