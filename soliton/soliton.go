// Package soliton implements the Robust Soliton Distribution over encoding
// degrees and an inverse-CDF sampler for it. The distribution starts from
// the Ideal Soliton mass, adds a corrective spike near k/r, and normalizes,
// trading decodability against redundancy.
package soliton

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidParams is returned for out-of-range distribution parameters.
	ErrInvalidParams = errors.New("invalid distribution parameters")

	// ErrInvalidCDF is returned when a cumulative distribution handed to the
	// sampler is empty, does not end at exactly 1.0, or is not strictly
	// increasing.
	ErrInvalidCDF = errors.New("invalid cumulative distribution")
)

// Spike returns the degree at which the robust correction concentrates its
// mass, k/r clamped into [1, k].
func Spike(k int, r float64) int {
	m := int(float64(k) / r)
	if m < 1 {
		m = 1
	}
	if m > k {
		m = k
	}
	return m
}

// RobustCDF builds the cumulative Robust Soliton Distribution for k source
// symbols. Entry i holds the cumulative probability of degree i+1; the last
// entry is forced to exactly 1.0 so that every uniform draw maps to a degree.
func RobustCDF(k int, r, delta float64) ([]float64, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be at least 1, got %d: %w", k, ErrInvalidParams)
	}
	if r < 1 {
		return nil, fmt.Errorf("r must be at least 1, got %g: %w", r, ErrInvalidParams)
	}
	if delta <= 0 || delta >= 1 {
		return nil, fmt.Errorf("delta must be in (0, 1), got %g: %w", delta, ErrInvalidParams)
	}

	// Ideal Soliton mass: rho(1) = 1/k, rho(i) = 1/(i(i-1)).
	rho := make([]float64, k+1)
	rho[1] = 1 / float64(k)
	for i := 2; i <= k; i++ {
		rho[i] = 1 / (float64(i) * float64(i-1))
	}

	// Robust correction: tau(i) = r/(ik) below the spike, a concentrated
	// term r*ln(r/delta)/k at the spike, zero above it.
	tau := make([]float64, k+1)
	spike := Spike(k, r)
	for i := 1; i < spike; i++ {
		tau[i] = r / (float64(i) * float64(k))
	}
	tau[spike] = r * math.Log(r/delta) / float64(k)

	beta := 0.0
	for i := 1; i <= k; i++ {
		beta += rho[i] + tau[i]
	}

	cdf := make([]float64, k)
	sum := 0.0
	for i := 1; i <= k; i++ {
		sum += (rho[i] + tau[i]) / beta
		cdf[i-1] = sum
	}
	// Force the final entry despite rounding, so sampling can never fall
	// off the end.
	cdf[k-1] = 1.0
	return cdf, nil
}

// Sampler draws degrees from a cumulative distribution by binary search,
// the standard inverse-CDF method.
type Sampler struct {
	cdf []float64
}

// NewSampler validates the cumulative distribution and wraps it in a
// Sampler. The CDF must be non-empty, strictly increasing, and end at
// exactly 1.0.
func NewSampler(cdf []float64) (*Sampler, error) {
	if len(cdf) == 0 {
		return nil, fmt.Errorf("empty cdf: %w", ErrInvalidCDF)
	}
	if cdf[len(cdf)-1] != 1.0 {
		return nil, fmt.Errorf("cdf ends at %g, want exactly 1.0: %w",
			cdf[len(cdf)-1], ErrInvalidCDF)
	}
	prev := 0.0
	for i, v := range cdf {
		if v <= prev {
			return nil, fmt.Errorf("cdf not strictly increasing at entry %d: %w",
				i, ErrInvalidCDF)
		}
		prev = v
	}
	own := make([]float64, len(cdf))
	copy(own, cdf)
	return &Sampler{cdf: own}, nil
}

// Sample maps a uniform draw in [0, 1) to a degree in [1, len(cdf)]: the
// smallest index whose cumulative value is at least the draw, plus one.
func (s *Sampler) Sample(draw float64) int {
	idx := sort.SearchFloat64s(s.cdf, draw)
	if idx >= len(s.cdf) {
		idx = len(s.cdf) - 1
	}
	return idx + 1
}

// Degrees returns the number of degrees the sampler can produce.
func (s *Sampler) Degrees() int {
	return len(s.cdf)
}
