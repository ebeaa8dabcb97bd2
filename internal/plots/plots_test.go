package plots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emrzvv/genrand"
	"github.com/emrzvv/genrand/internal/bench"
	"github.com/emrzvv/genrand/internal/model"
	"github.com/emrzvv/genrand/internal/stats"
)

func assertFile(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestHistogram(t *testing.T) {
	values := make([]float64, 10_000)
	genrand.Fill(genrand.New(1), values)
	s, err := stats.Summarize(values, 20)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "histogram.png")
	if err := Histogram(s, path); err != nil {
		t.Fatal(err)
	}
	assertFile(t, path)
}

func TestBench(t *testing.T) {
	aggs := []*bench.Aggregate{
		{Target: bench.TargetGenrand, Kind: "int32", MeanNsOp: 3},
		{Target: bench.TargetBaseline, Kind: "int32", MeanNsOp: 2},
		{Target: bench.TargetGenrand, Kind: "int64", MeanNsOp: 6},
		{Target: bench.TargetBaseline, Kind: "int64", MeanNsOp: 4},
	}
	path := filepath.Join(t.TempDir(), "bench.png")
	if err := Bench(aggs, path); err != nil {
		t.Fatal(err)
	}
	assertFile(t, path)

	if err := Bench(nil, path); err == nil {
		t.Fatal("empty results accepted")
	}
}

func TestQueue(t *testing.T) {
	q := model.NewQueue()
	for i := 1; i <= 5; i++ {
		q.Admit(float64(i), 0.5)
		q.AddSnapshot(float64(i))
	}
	path := filepath.Join(t.TempDir(), "queue.png")
	if err := Queue(q, path); err != nil {
		t.Fatal(err)
	}
	assertFile(t, path)
}
