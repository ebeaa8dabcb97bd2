package bench

import (
	"fmt"
	"math/rand/v2"

	"github.com/emrzvv/genrand"
)

// Target produces one workload of n values of a kind and returns a checksum
// of what it produced, so the work cannot be skipped.
type Target interface {
	Name() string
	Run(kind string, n int) (uint64, error)
}

const (
	TargetGenrand  = "genrand"
	TargetBaseline = "baseline"
)

var Targets = []string{TargetGenrand, TargetBaseline}

func NewTarget(name string, seed int32) (Target, error) {
	switch name {
	case TargetGenrand:
		return &genrandTarget{g: genrand.New(seed), bufs: &buffers{}}, nil
	case TargetBaseline:
		return &baselineTarget{
			r:    rand.New(rand.NewPCG(uint64(uint32(seed)), 0)),
			bufs: &buffers{},
		}, nil
	default:
		return nil, fmt.Errorf("unknown target %q", name)
	}
}

type buffers struct {
	ints    []int32
	shorts  []int16
	bytes   []uint8
	doubles []float64
	longs   []int64
}

func grow[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}

func sum[T int8 | int16 | int32 | int64 | uint8](buf []T) uint64 {
	var s uint64
	for _, v := range buf {
		s += uint64(v)
	}
	return s
}

type genrandTarget struct {
	g    *genrand.Generator
	bufs *buffers
}

func (t *genrandTarget) Name() string { return TargetGenrand }

func (t *genrandTarget) Run(kind string, n int) (uint64, error) {
	b := t.bufs
	switch kind {
	case "int32":
		b.ints = grow(b.ints, n)
		genrand.Fill(t.g, b.ints)
		return sum(b.ints), nil
	case "int16":
		b.shorts = grow(b.shorts, n)
		genrand.Fill(t.g, b.shorts)
		return sum(b.shorts), nil
	case "uint8":
		b.bytes = grow(b.bytes, n)
		genrand.Fill(t.g, b.bytes)
		return sum(b.bytes), nil
	case "float64":
		b.doubles = grow(b.doubles, n)
		genrand.Fill(t.g, b.doubles)
		return floatSum(b.doubles), nil
	case "int64":
		b.longs = grow(b.longs, n)
		genrand.Fill(t.g, b.longs)
		return sum(b.longs), nil
	case "bytes":
		b.bytes = grow(b.bytes, n)
		_, _ = t.g.Read(b.bytes)
		return sum(b.bytes), nil
	default:
		return 0, fmt.Errorf("unknown kind %q", kind)
	}
}

// baselineTarget converts the standard library stream the way a caller
// without a generic API would: truncating casts and manual 64-bit assembly.
type baselineTarget struct {
	r    *rand.Rand
	bufs *buffers
}

func (t *baselineTarget) Name() string { return TargetBaseline }

func (t *baselineTarget) Run(kind string, n int) (uint64, error) {
	b := t.bufs
	switch kind {
	case "int32":
		b.ints = grow(b.ints, n)
		for i := range b.ints {
			b.ints[i] = t.r.Int32()
		}
		return sum(b.ints), nil
	case "int16":
		b.shorts = grow(b.shorts, n)
		for i := range b.shorts {
			b.shorts[i] = int16(t.r.Int32())
		}
		return sum(b.shorts), nil
	case "uint8":
		b.bytes = grow(b.bytes, n)
		for i := range b.bytes {
			b.bytes[i] = uint8(t.r.Int32())
		}
		return sum(b.bytes), nil
	case "float64":
		b.doubles = grow(b.doubles, n)
		for i := range b.doubles {
			b.doubles[i] = t.r.Float64()
		}
		return floatSum(b.doubles), nil
	case "int64":
		b.longs = grow(b.longs, n)
		for i := range b.longs {
			lo := t.r.Int32()
			hi := t.r.Int32()
			b.longs[i] = int64(hi)<<32 | int64(uint32(lo))
		}
		return sum(b.longs), nil
	case "bytes":
		b.bytes = grow(b.bytes, n)
		for i := range b.bytes {
			b.bytes[i] = uint8(t.r.Uint32())
		}
		return sum(b.bytes), nil
	default:
		return 0, fmt.Errorf("unknown kind %q", kind)
	}
}
