package common

import (
	"math/rand/v2"
	"sync"

	"github.com/emrzvv/genrand"
)

// RNG guards one generator stream with a mutex. The generator itself is
// single-owner; RNG is the external locking callers need when several
// goroutines consume the same stream.
type RNG struct {
	g   *genrand.Generator
	src *genrand.Source
	mu  sync.Mutex
}

var _ rand.Source = (*RNG)(nil)

func NewRNG(seed int32) *RNG {
	g := genrand.New(seed)
	return &RNG{g: g, src: genrand.SourceOf(g)}
}

/* потокобезопасные обёртки */

func (r *RNG) Next() int32 {
	r.mu.Lock()
	v := r.g.Next()
	r.mu.Unlock()
	return v
}
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	v := r.g.Float64()
	r.mu.Unlock()
	return v
}
// Uint64 is the rand.Source view: 64 random bits from three draws.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	v := r.src.Uint64()
	r.mu.Unlock()
	return v
}
func (r *RNG) Read(p []byte) (int, error) {
	r.mu.Lock()
	n, err := r.g.Read(p)
	r.mu.Unlock()
	return n, err
}

// Float64s fills buf under a single lock acquisition.
func (r *RNG) Float64s(buf []float64) {
	r.mu.Lock()
	genrand.Fill(r.g, buf)
	r.mu.Unlock()
}
