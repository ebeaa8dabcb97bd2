package genrand

import "math/rand/v2"

var _ rand.Source = (*Source)(nil)

// Source adapts a generator to math/rand/v2. A rand.Source must return 64
// uniformly random bits, which Generator.Uint64 does not (bits 31 and 63 of
// its two-draw value are always zero), so Source spends three draws per
// value: bits 0-30, 31-61, and the low two bits of the third draw for 62-63.
type Source struct {
	g *Generator
}

// NewSource seeds a new generator and wraps it.
func NewSource(seed int32) *Source {
	return &Source{g: New(seed)}
}

// SourceOf wraps an existing generator. The Source shares its state.
func SourceOf(g *Generator) *Source {
	return &Source{g: g}
}

func (s *Source) Uint64() uint64 {
	a := uint64(s.g.Next())
	b := uint64(s.g.Next())
	c := uint64(s.g.Next())
	return a | b<<31 | c<<62
}

// NewRand wraps a seeded generator in a *rand.Rand.
func NewRand(seed int32) *rand.Rand {
	return rand.New(NewSource(seed))
}
