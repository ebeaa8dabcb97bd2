package genrand

import (
	"math/rand/v2"
	"testing"
)

const benchIterations = 100_000

func BenchmarkInt32(b *testing.B) {
	g := New(benchSeed)
	buf := make([]int32, benchIterations)
	for i := 0; i < b.N; i++ {
		Fill(g, buf)
	}
}

func BenchmarkInt16(b *testing.B) {
	g := New(benchSeed)
	buf := make([]int16, benchIterations)
	for i := 0; i < b.N; i++ {
		Fill(g, buf)
	}
}

func BenchmarkUint8(b *testing.B) {
	g := New(benchSeed)
	buf := make([]uint8, benchIterations)
	for i := 0; i < b.N; i++ {
		Fill(g, buf)
	}
}

func BenchmarkFloat64(b *testing.B) {
	g := New(benchSeed)
	buf := make([]float64, benchIterations)
	for i := 0; i < b.N; i++ {
		Fill(g, buf)
	}
}

func BenchmarkInt64(b *testing.B) {
	g := New(benchSeed)
	buf := make([]int64, benchIterations)
	for i := 0; i < b.N; i++ {
		Fill(g, buf)
	}
}

func BenchmarkRead(b *testing.B) {
	g := New(benchSeed)
	buf := make([]byte, benchIterations)
	b.SetBytes(benchIterations)
	for i := 0; i < b.N; i++ {
		_, _ = g.Read(buf)
	}
}

func BenchmarkPCGInt64(b *testing.B) {
	r := rand.New(rand.NewPCG(benchSeed, 0))
	buf := make([]int64, benchIterations)
	for i := 0; i < b.N; i++ {
		for j := range buf {
			buf[j] = r.Int64()
		}
	}
}
