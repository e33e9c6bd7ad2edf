// Package rng defines the random source injected into the coefficient
// generators. The source is the only piece of state shared between
// concurrently running coding sessions, so the provided implementation is
// internally synchronized rather than relying on a hidden process-wide
// singleton.
package rng

import (
	"math/rand"
	"sync"
)

// Source yields the uniform draws needed by the coefficient generators.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64

	// Intn returns a uniform draw in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// lockedSource guards a math/rand generator with a mutex so that several
// sessions can draw from it concurrently.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLocked returns an internally synchronized Source seeded with seed.
func NewLocked(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}
