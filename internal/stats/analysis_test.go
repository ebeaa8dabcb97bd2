package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/emrzvv/genrand"
	"gonum.org/v1/gonum/floats"
)

func TestSummarizeUniform(t *testing.T) {
	g := genrand.New(783247234)
	values := make([]float64, 200_000)
	genrand.Fill(g, values)

	s, err := Summarize(values, 50)
	if err != nil {
		t.Fatal(err)
	}
	if s.N != len(values) || len(s.Counts) != 50 || len(s.Dividers) != 51 {
		t.Fatalf("shape: N=%d counts=%d dividers=%d", s.N, len(s.Counts), len(s.Dividers))
	}
	if got := floats.Sum(s.Counts); got != float64(len(values)) {
		t.Fatalf("histogram holds %v values", got)
	}
	if math.Abs(s.Mean-0.5) > 0.005 {
		t.Errorf("mean = %v", s.Mean)
	}
	if math.Abs(s.Variance-1.0/12) > 0.002 {
		t.Errorf("variance = %v", s.Variance)
	}
	if s.Min < 0 || s.Max >= 1 {
		t.Errorf("min=%v max=%v", s.Min, s.Max)
	}
	if s.PValue < 1e-4 {
		t.Errorf("uniformity rejected: chi2=%v p=%v", s.ChiSquare, s.PValue)
	}
}

func TestSummarizeSkewed(t *testing.T) {
	values := make([]float64, 10_000)
	for i := range values {
		values[i] = float64(i%100) / 1000 // all in [0, 0.1)
	}
	s, err := Summarize(values, 10)
	if err != nil {
		t.Fatal(err)
	}
	if s.PValue > 1e-6 {
		t.Fatalf("skewed sample accepted: p=%v", s.PValue)
	}
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := Summarize(nil, 10); !errors.Is(err, ErrEmptySample) {
		t.Errorf("empty: %v", err)
	}
	if _, err := Summarize([]float64{0.5, 1}, 10); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("out of range: %v", err)
	}
	if _, err := Summarize([]float64{0.5}, 1); err == nil {
		t.Errorf("one bin accepted")
	}
}

func TestTraceWaits(t *testing.T) {
	tr := NewTrace()
	tr.AddJob(&JobEvent{JobID: 1, Arrival: 1, Start: 1, End: 2})
	tr.AddJob(&JobEvent{JobID: 2, Arrival: 1.5, Start: 2, End: 3})
	w := tr.Waits()
	if len(w) != 2 || w[0] != 0 || w[1] != 0.5 {
		t.Fatalf("waits = %v", w)
	}
}
