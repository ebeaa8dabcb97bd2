// Package genrand is a deterministic subtractive (lagged-Fibonacci) generator
// in the form popularised by Knuth's Algorithm 3.6 and the .NET System.Random
// class, with a generic layer that turns its 31-bit stream into values of any
// fixed-size type.
//
// The generator is not cryptographically secure and is not safe for
// concurrent use: a *Generator must be owned by one goroutine at a time.
package genrand

import "math"

const (
	// MaxInt is the exclusive upper bound of every draw.
	MaxInt = math.MaxInt32

	mseed = 161803398

	stateLen = 56
	lag      = 21
)

// Generator holds the 55-slot subtractive state and its two cursors. The
// zero value is not seeded; use New. A Generator is not safe for concurrent
// use (see internal/common.RNG for a locked wrapper).
type Generator struct {
	seedArray [stateLen]int32 // slot 0 is never used
	inext     int
	inextp    int
}

// New seeds a generator. Equal seeds give equal streams.
func New(seed int32) *Generator {
	g := &Generator{}
	g.seed(seed)
	return g
}

func (g *Generator) seed(seed int32) {
	var subtraction int32
	switch {
	case seed == math.MinInt32:
		subtraction = math.MaxInt32
	case seed < 0:
		subtraction = -seed
	default:
		subtraction = seed
	}

	// int32 arithmetic wraps here exactly as in the reference generator
	mj := mseed - subtraction
	g.seedArray[55] = mj
	mk := int32(1)
	ii := 0
	for i := 1; i < 55; i++ {
		ii += lag
		if ii >= 55 {
			ii -= 55
		}
		g.seedArray[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += MaxInt
		}
		mj = g.seedArray[ii]
	}

	for k := 1; k < 5; k++ {
		for i := 1; i < stateLen; i++ {
			n := i + 30
			if n >= 55 {
				n -= 55
			}
			g.seedArray[i] -= g.seedArray[1+n]
			if g.seedArray[i] < 0 {
				g.seedArray[i] += MaxInt
			}
		}
	}

	g.inext = 0
	g.inextp = lag
}

// Next draws the next raw value in [0, MaxInt).
func (g *Generator) Next() int32 {
	inext := g.inext + 1
	if inext >= stateLen {
		inext = 1
	}
	inextp := g.inextp + 1
	if inextp >= stateLen {
		inextp = 1
	}

	v := g.seedArray[inext] - g.seedArray[inextp]
	if v == MaxInt {
		v--
	}
	if v < 0 {
		v += MaxInt
	}

	g.seedArray[inext] = v
	g.inext = inext
	g.inextp = inextp
	return v
}
