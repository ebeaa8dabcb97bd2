package genrand

import "math"

type (
	Float interface{ float32 | float64 }
	Int   interface{ int8 | int16 | int32 | int64 }
	Uint  interface{ uint8 | uint16 | uint32 | uint64 }
)

// Scalar lists the types with a dedicated conversion from the raw stream.
type Scalar interface {
	Float | Int | Uint
}

// Sampler is implemented by anything that can produce a T from a generator.
type Sampler[T any] interface {
	Sample(g *Generator) T
}

// ScalarSampler is the Sampler for a Scalar type.
type ScalarSampler[T Scalar] struct{}

func (ScalarSampler[T]) Sample(g *Generator) T { return Sample[T](g) }

const invMax = 1.0 / MaxInt

// Float64 returns a value in [0, 1) scaled from one draw.
func (g *Generator) Float64() float64 {
	return float64(g.Next()) * invMax
}

// Float32 returns a value in [0, 1) scaled from one draw.
func (g *Generator) Float32() float32 {
	return float32FromDraw(g.Next())
}

// single precision rounds draws close to MaxInt up to 1
func float32FromDraw(v int32) float32 {
	f := float32(v) * float32(invMax)
	if f >= 1 {
		return math.Nextafter32(1, 0)
	}
	return f
}

// Uint64 assembles two draws: the first forms the low 32 bits, the second
// the high 32 bits.
func (g *Generator) Uint64() uint64 {
	lo := uint32(g.Next())
	hi := uint32(g.Next())
	return uint64(hi)<<32 | uint64(lo)
}

func (g *Generator) Int64() int64 { return int64(g.Uint64()) }

// The narrow integer accessors keep the low bits of a single draw. They do
// not rescale, so Int32 and Uint32 never have the top bit set.

func (g *Generator) Int32() int32   { return g.Next() }
func (g *Generator) Uint32() uint32 { return uint32(g.Next()) }
func (g *Generator) Int16() int16   { return int16(g.Next() & 0xffff) }
func (g *Generator) Uint16() uint16 { return uint16(g.Next() & 0xffff) }
func (g *Generator) Int8() int8     { return int8(g.Next() & 0xff) }
func (g *Generator) Uint8() uint8   { return uint8(g.Next() & 0xff) }

// Sample returns one value of type T.
func Sample[T Scalar](g *Generator) T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = g.Float32()
	case *float64:
		*p = g.Float64()
	case *int64:
		*p = g.Int64()
	case *uint64:
		*p = g.Uint64()
	case *int32:
		*p = g.Int32()
	case *uint32:
		*p = g.Uint32()
	case *int16:
		*p = g.Int16()
	case *uint16:
		*p = g.Uint16()
	case *int8:
		*p = g.Int8()
	case *uint8:
		*p = g.Uint8()
	}
	return v
}

// Fill samples buf in index order. An empty buf draws nothing.
func Fill[T Scalar](g *Generator, buf []T) {
	for i := range buf {
		buf[i] = Sample[T](g)
	}
}

// Read fills p with packed draws: every draw contributes the four
// little-endian bytes of its value, and a trailing partial word takes the
// low bytes of one more draw. len(p) bytes cost ceil(len(p)/4) draws.
// Read never fails.
func (g *Generator) Read(p []byte) (int, error) {
	n := len(p)
	i := 0
	for ; i+4 <= n; i += 4 {
		v := uint32(g.Next())
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = byte(v >> 16)
		p[i+3] = byte(v >> 24)
	}
	if i < n {
		v := uint32(g.Next())
		for ; i < n; i++ {
			p[i] = byte(v)
			v >>= 8
		}
	}
	return n, nil
}
