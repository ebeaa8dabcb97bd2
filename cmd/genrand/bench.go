package main

import (
	"path/filepath"

	"github.com/emrzvv/genrand/internal/bench"
	"github.com/emrzvv/genrand/internal/export"
	"github.com/emrzvv/genrand/internal/plots"
	"github.com/spf13/cobra"
)

func newBenchCmd(opts *rootOptions) *cobra.Command {
	var (
		iterations int
		rounds     int
		kinds      []string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the generator against math/rand/v2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			flags := cmd.Flags()
			if flags.Changed("iterations") {
				cfg.Bench.Iterations = iterations
			}
			if flags.Changed("rounds") {
				cfg.Bench.Rounds = rounds
			}
			if flags.Changed("kinds") {
				cfg.Bench.Kinds = kinds
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			results, err := bench.Run(cfg, opts.log)
			if err != nil {
				return err
			}
			aggs := bench.Summarize(results)
			for _, a := range aggs {
				opts.log.Info().
					Str("target", a.Target).
					Str("kind", a.Kind).
					Float64("ns_op", a.MeanNsOp).
					Float64("stddev", a.StdDevNsOp).
					Msg("bench")
			}

			if err := opts.ensureOut(); err != nil {
				return err
			}
			dir := cfg.Output.Dir
			if err := export.WriteBench(filepath.Join(dir, "bench.csv"), results); err != nil {
				return err
			}
			if err := export.WriteBenchSummary(filepath.Join(dir, "bench_summary.csv"), aggs); err != nil {
				return err
			}
			if cfg.Output.Plots {
				if err := plots.Bench(aggs, filepath.Join(dir, "bench.png")); err != nil {
					return err
				}
			}
			opts.log.Info().Str("dir", dir).Msg("bench results saved")
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&iterations, "iterations", 100_000, "values per round")
	flags.IntVar(&rounds, "rounds", 5, "rounds per target and kind")
	flags.StringSliceVar(&kinds, "kinds", nil, "kinds to run (int32,int16,uint8,float64,int64,bytes)")
	return cmd
}
