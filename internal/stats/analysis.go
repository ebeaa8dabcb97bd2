package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary describes a sample drawn from [0, 1).
type Summary struct {
	N         int
	Mean      float64
	Variance  float64
	StdDev    float64
	Min       float64
	Max       float64
	Dividers  []float64 // bins+1 bin edges
	Counts    []float64
	ChiSquare float64
	PValue    float64 // P(X >= ChiSquare) for bins-1 degrees of freedom
}

var (
	ErrEmptySample = errors.New("empty sample")
	ErrOutOfRange  = errors.New("sample outside [0, 1)")
)

// Summarize computes moments and a chi-square test against the uniform
// distribution on [0, 1) with the given number of equal-width bins.
func Summarize(values []float64, bins int) (*Summary, error) {
	if len(values) == 0 {
		return nil, ErrEmptySample
	}
	if bins < 2 {
		return nil, errors.New("need at least 2 bins")
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if sorted[0] < 0 || sorted[len(sorted)-1] >= 1 {
		return nil, ErrOutOfRange
	}

	mean, variance := stat.MeanVariance(sorted, nil)
	dividers := floats.Span(make([]float64, bins+1), 0, 1)
	counts := stat.Histogram(nil, dividers, sorted, nil)

	expected := float64(len(sorted)) / float64(bins)
	exp := make([]float64, bins)
	for i := range exp {
		exp[i] = expected
	}
	chi := stat.ChiSquare(counts, exp)

	return &Summary{
		N:         len(sorted),
		Mean:      mean,
		Variance:  variance,
		StdDev:    math.Sqrt(variance),
		Min:       sorted[0],
		Max:       sorted[len(sorted)-1],
		Dividers:  dividers,
		Counts:    counts,
		ChiSquare: chi,
		PValue:    distuv.ChiSquared{K: float64(bins - 1)}.Survival(chi),
	}, nil
}
