package main

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

func quantile(p float64, values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}
