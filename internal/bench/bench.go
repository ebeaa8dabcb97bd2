package bench

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/emrzvv/genrand/internal/config"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

type Result struct {
	Target     string
	Kind       string
	Round      int
	Iterations int
	Elapsed    time.Duration
	Checksum   uint64
}

func (r *Result) NsPerOp() float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Iterations)
}

// Aggregate is the per-(target, kind) view over all rounds.
type Aggregate struct {
	Target     string
	Kind       string
	MeanNsOp   float64
	StdDevNsOp float64
	Rounds     int
}

// Run times every configured kind against every target. Each target owns one
// generator for the whole run, so rounds continue the same stream.
func Run(cfg *config.Config, log zerolog.Logger) ([]*Result, error) {
	var results []*Result
	for _, name := range Targets {
		target, err := NewTarget(name, cfg.Seed())
		if err != nil {
			return nil, err
		}
		for _, kind := range cfg.Bench.Kinds {
			for round := 1; round <= cfg.Bench.Rounds; round++ {
				start := time.Now()
				checksum, err := target.Run(kind, cfg.Bench.Iterations)
				elapsed := time.Since(start)
				if err != nil {
					return nil, fmt.Errorf("bench %s/%s: %w", name, kind, err)
				}
				r := &Result{
					Target:     name,
					Kind:       kind,
					Round:      round,
					Iterations: cfg.Bench.Iterations,
					Elapsed:    elapsed,
					Checksum:   checksum,
				}
				log.Debug().
					Str("target", name).
					Str("kind", kind).
					Int("round", round).
					Float64("ns_op", r.NsPerOp()).
					Uint64("checksum", checksum).
					Msg("round done")
				results = append(results, r)
			}
		}
	}
	return results, nil
}

func Summarize(results []*Result) []*Aggregate {
	type key struct{ target, kind string }
	groups := make(map[key][]float64)
	var order []key
	for _, r := range results {
		k := key{r.Target, r.Kind}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r.NsPerOp())
	}

	kinds := kindOrder(results)
	out := make([]*Aggregate, 0, len(order))
	for _, k := range order {
		ns := groups[k]
		mean, variance := stat.MeanVariance(ns, nil)
		if len(ns) < 2 {
			variance = 0
		}
		out = append(out, &Aggregate{
			Target:     k.target,
			Kind:       k.kind,
			MeanNsOp:   mean,
			StdDevNsOp: math.Sqrt(variance),
			Rounds:     len(ns),
		})
	}
	slices.SortStableFunc(out, func(a, b *Aggregate) int {
		if a.Kind != b.Kind {
			return slices.Index(kinds, a.Kind) - slices.Index(kinds, b.Kind)
		}
		return slices.Index(Targets, a.Target) - slices.Index(Targets, b.Target)
	})
	return out
}

func kindOrder(results []*Result) []string {
	var kinds []string
	for _, r := range results {
		if !slices.Contains(kinds, r.Kind) {
			kinds = append(kinds, r.Kind)
		}
	}
	return kinds
}

func floatSum(buf []float64) uint64 {
	var s uint64
	for _, v := range buf {
		s += math.Float64bits(v)
	}
	return s
}
