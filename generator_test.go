package genrand

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const benchSeed = 783247234

func draws(g *Generator, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

func TestGolden(t *testing.T) {
	tests := []struct {
		seed int32
		want []int32
	}{
		{benchSeed, []int32{78302791, 963883979, 1951649188, 1194141038, 145524512, 948499343}},
		{0, []int32{1559595546, 1755192844, 1649316166, 1198642031, 442452829, 1200195957}},
		{1, []int32{534011718, 237820880, 1002897798, 1657007234, 1412011072, 929393559}},
		{42, []int32{1434747710, 302596119, 269548474, 1122627734, 361709742, 563913476}},
		{math.MinInt32, []int32{1559595546, 1755192844, 1649316172, 1198642031, 442452829, 1200195955}},
	}
	for _, tt := range tests {
		got := draws(New(tt.seed), len(tt.want))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("seed %d (-want +got):\n%s", tt.seed, diff)
		}
	}
}

func TestGoldenFarOut(t *testing.T) {
	got := draws(New(benchSeed), 10_000)
	if got[9999] != 488720737 {
		t.Fatalf("draw 10000 = %d, want 488720737", got[9999])
	}
}

func TestSignIgnored(t *testing.T) {
	if diff := cmp.Diff(draws(New(1), 100), draws(New(-1), 100)); diff != "" {
		t.Fatalf("seeds 1 and -1 differ:\n%s", diff)
	}
}

func TestDeterminism(t *testing.T) {
	for _, seed := range []int32{benchSeed, 0, -7, math.MaxInt32, math.MinInt32} {
		a, b := New(seed), New(seed)
		for i := 0; i < 10_000; i++ {
			if x, y := a.Next(), b.Next(); x != y {
				t.Fatalf("seed %d: draw %d differs: %d != %d", seed, i, x, y)
			}
		}
	}
}

func checkState(t *testing.T, g *Generator) {
	t.Helper()
	for i := 1; i < stateLen; i++ {
		if v := g.seedArray[i]; v < 0 || v >= MaxInt {
			t.Fatalf("seedArray[%d] = %d out of range", i, v)
		}
	}
	if g.seedArray[0] != 0 {
		t.Fatalf("slot 0 touched: %d", g.seedArray[0])
	}
	if d := (g.inextp - g.inext + 55) % 55; d != lag {
		t.Fatalf("cursor distance %d (inext=%d inextp=%d)", d, g.inext, g.inextp)
	}
}

func TestRangeAndState(t *testing.T) {
	seeds := []int32{benchSeed, 0, 1, -1, mseed, -mseed, math.MaxInt32, math.MinInt32}
	for _, seed := range seeds {
		g := New(seed)
		checkState(t, g)
		for i := 0; i < 100_000; i++ {
			if v := g.Next(); v < 0 || v >= MaxInt {
				t.Fatalf("seed %d: draw %d = %d out of range", seed, i, v)
			}
			if i%997 == 0 {
				checkState(t, g)
			}
		}
		checkState(t, g)
	}
}

func TestCursorWrap(t *testing.T) {
	g := New(benchSeed)
	for i := 0; i < 55; i++ {
		g.Next()
	}
	if g.inext != 55 || g.inextp != 21 {
		t.Fatalf("after 55 draws: inext=%d inextp=%d", g.inext, g.inextp)
	}
	g.Next()
	if g.inext != 1 || g.inextp != 22 {
		t.Fatalf("after 56 draws: inext=%d inextp=%d", g.inext, g.inextp)
	}
}
