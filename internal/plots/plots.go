package plots

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/emrzvv/genrand/internal/bench"
	"github.com/emrzvv/genrand/internal/model"
	"github.com/emrzvv/genrand/internal/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	width  = 20 * vg.Centimeter
	height = 10 * vg.Centimeter
)

// Histogram plots bin counts of a [0, 1) sample with the expected uniform
// count as a reference line.
func Histogram(s *stats.Summary, file string) error {
	bins := len(s.Counts)
	if bins == 0 {
		return errors.New("empty histogram")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Samples per bin (n=%d, chi2=%.1f, p=%.3f)", s.N, s.ChiSquare, s.PValue)
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Count"

	xys := make(plotter.XYs, bins)
	for i, c := range s.Counts {
		xys[i].X = (s.Dividers[i] + s.Dividers[i+1]) / 2
		xys[i].Y = c
	}
	hist, err := plotter.NewHistogram(xys, bins)
	if err != nil {
		return err
	}
	p.Add(hist)

	expected := float64(s.N) / float64(bins)
	ref, err := plotter.NewLine(plotter.XYs{{X: 0, Y: expected}, {X: 1, Y: expected}})
	if err != nil {
		return err
	}
	ref.Color = color.RGBA{R: 200, A: 255}
	p.Add(ref)
	return p.Save(width, height, file)
}

// Bench draws one bar group per target with a bar per kind.
func Bench(aggs []*bench.Aggregate, file string) error {
	var kinds []string
	for _, a := range aggs {
		if !slices.Contains(kinds, a.Kind) {
			kinds = append(kinds, a.Kind)
		}
	}
	if len(kinds) == 0 {
		return errors.New("no bench results")
	}

	p := plot.New()
	p.Title.Text = "Time per value"
	p.Y.Label.Text = "ns/op"

	barWidth := vg.Points(14)
	for i, target := range bench.Targets {
		values := make(plotter.Values, len(kinds))
		for _, a := range aggs {
			if a.Target == target {
				values[slices.Index(kinds, a.Kind)] = a.MeanNsOp
			}
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(float64(i)-float64(len(bench.Targets)-1)/2) * barWidth
		p.Add(bars)
		p.Legend.Add(target, bars)
	}
	p.Legend.Top = true
	p.NominalX(kinds...)
	return p.Save(width, height, file)
}

// Queue plots the queue length over simulated time.
func Queue(queue *model.Queue, file string) error {
	pts := make(plotter.XYs, len(queue.Snapshots))
	for i, snap := range queue.Snapshots {
		pts[i].X = snap.T
		pts[i].Y = float64(snap.Length)
	}
	p := plot.New()
	p.Title.Text = "Jobs in system"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Jobs"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(width, height, file)
}
