package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os/signal"
	"slices"
	"strconv"
	"syscall"

	"github.com/emrzvv/genrand"
	"github.com/emrzvv/genrand/internal/export"
	"github.com/spf13/cobra"
)

type formatter func(g *genrand.Generator) string

func formatInt[T genrand.Int](g *genrand.Generator) string {
	return strconv.FormatInt(int64(genrand.Sample[T](g)), 10)
}

func formatUint[T genrand.Uint](g *genrand.Generator) string {
	return strconv.FormatUint(uint64(genrand.Sample[T](g)), 10)
}

var formatters = map[string]formatter{
	"raw":     func(g *genrand.Generator) string { return strconv.FormatInt(int64(g.Next()), 10) },
	"float32": func(g *genrand.Generator) string { return strconv.FormatFloat(float64(g.Float32()), 'g', -1, 32) },
	"float64": func(g *genrand.Generator) string { return strconv.FormatFloat(g.Float64(), 'g', -1, 64) },
	"decimal": func(g *genrand.Generator) string { return g.Decimal().String() },
	"int8":    formatInt[int8],
	"int16":   formatInt[int16],
	"int32":   formatInt[int32],
	"int64":   formatInt[int64],
	"uint8":   formatUint[uint8],
	"uint16":  formatUint[uint16],
	"uint32":  formatUint[uint32],
	"uint64":  formatUint[uint64],
}

func kinds() []string {
	names := make([]string, 0, len(formatters)+1)
	for name := range formatters {
		names = append(names, name)
	}
	names = append(names, "bytes")
	slices.Sort(names)
	return names
}

func newFormatter(kind string, size int) (formatter, error) {
	if kind == "bytes" {
		if size < 0 {
			return nil, fmt.Errorf("--size must be >= 0, got %d", size)
		}
		return func(g *genrand.Generator) string {
			buf := make([]byte, size)
			_, _ = g.Read(buf)
			return hex.EncodeToString(buf)
		}, nil
	}
	f, ok := formatters[kind]
	if !ok {
		return nil, fmt.Errorf("%w: kind %q (want one of %v)", genrand.ErrUnsupportedType, kind, kinds())
	}
	return f, nil
}

func newSampleCmd(opts *rootOptions) *cobra.Command {
	var (
		kind    string
		count   int
		size    int
		csvPath string
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print values drawn from the generator",
		Long: `Print values of one kind, one per line, or stream them into a csv file. For example:
  genrand sample --kind float64 -n 3
  genrand sample --kind bytes --size 16 -n 2
  genrand sample --kind uint64 -n 1000000 --csv ./results/samples.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("-n must be >= 0, got %d", count)
			}
			format, err := newFormatter(kind, size)
			if err != nil {
				return err
			}
			g := genrand.New(opts.cfg.Seed())

			if csvPath == "" {
				out := cmd.OutOrStdout()
				for i := 0; i < count; i++ {
					fmt.Fprintln(out, format(g))
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return streamSamples(ctx, opts, csvPath, count, func() string { return format(g) })
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&kind, "kind", "k", "raw", fmt.Sprintf("value kind %v", kinds()))
	flags.IntVarP(&count, "count", "n", 10, "number of values")
	flags.IntVar(&size, "size", 8, "bytes per value for --kind bytes")
	flags.StringVar(&csvPath, "csv", "", "stream values into this csv file instead of stdout")
	return cmd
}

func streamSamples(ctx context.Context, opts *rootOptions, path string, count int, next func() string) error {
	rows := make(chan []string, 1024)
	go func() {
		defer close(rows)
		for i := 0; i < count; i++ {
			select {
			case rows <- []string{strconv.Itoa(i), next()}:
			case <-ctx.Done():
				return
			}
		}
	}()

	n, err := export.Stream(ctx, opts.log, path, []string{"index", "value"}, rows)
	if err != nil {
		return fmt.Errorf("streaming samples: %w", err)
	}
	opts.log.Info().Str("path", path).Int("rows", n).Msg("samples written")
	return nil
}
