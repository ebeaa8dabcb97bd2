package common

import (
	"sort"
	"sync"
	"testing"

	"github.com/emrzvv/genrand"
	"github.com/google/go-cmp/cmp"
)

func TestRNGMatchesGenerator(t *testing.T) {
	r := NewRNG(42)
	g := genrand.New(42)
	if r.Next() != g.Next() || r.Uint64() != genrand.SourceOf(g).Uint64() || r.Float64() != g.Float64() {
		t.Fatal("RNG diverged from the bare generator")
	}
	buf := make([]float64, 10)
	want := make([]float64, 10)
	r.Float64s(buf)
	genrand.Fill(g, want)
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("Float64s (-want +got):\n%s", diff)
	}
}

// Concurrent callers must see each draw exactly once.
func TestRNGConcurrent(t *testing.T) {
	const workers, per = 8, 2000
	r := NewRNG(7)
	out := make(chan int32, workers*per)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < per; j++ {
				out <- r.Next()
			}
		}()
	}
	wg.Wait()
	close(out)

	var got []int32
	for v := range out {
		got = append(got, v)
	}
	want := make([]int32, workers*per)
	g := genrand.New(7)
	for i := range want {
		want[i] = g.Next()
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("draws lost or duplicated:\n%s", diff)
	}
}
