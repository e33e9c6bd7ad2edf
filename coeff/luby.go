package coeff

import (
	"github.com/ppopth/fountain/ops"
	"github.com/ppopth/fountain/rng"
	"github.com/ppopth/fountain/soliton"
	"github.com/ppopth/fountain/symbol"
)

// LubyTransform samples the encoding degree from the Robust Soliton
// Distribution and spreads the chosen positions uniformly with a
// Fisher-Yates permutation. This is the classic LT fountain construction.
type LubyTransform struct {
	k       int
	sampler *soliton.Sampler
	rand    rng.Source
	counter *ops.Counter
}

// NewLubyTransform returns an LT generator over k source symbols with
// Robust Soliton parameters r and delta fixed at construction.
func NewLubyTransform(k int, r, delta float64, src rng.Source, counter *ops.Counter) (*LubyTransform, error) {
	if err := checkNumSymbols(k); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errNilSource()
	}
	cdf, err := soliton.RobustCDF(k, r, delta)
	if err != nil {
		return nil, err
	}
	sampler, err := soliton.NewSampler(cdf)
	if err != nil {
		return nil, err
	}
	return &LubyTransform{k: k, sampler: sampler, rand: src, counter: counter}, nil
}

// NumSymbols returns k.
func (g *LubyTransform) NumSymbols() int {
	return g.k
}

// Generate samples a degree, sets that many leading bits, and permutes the
// mask uniformly. The packet index is ignored.
func (g *LubyTransform) Generate(packetIndex int) (symbol.Mask, error) {
	degree := g.sampler.Sample(g.rand.Float64())
	return permutedMask(g.k, degree, g.rand, g.counter), nil
}

// SpecialLubyTransform fixes the degree at k/r, forced odd: a system whose
// equations each combine an even number of source symbols cannot, in
// general, be solved, so an even degree is incremented by one.
type SpecialLubyTransform struct {
	k       int
	degree  int
	rand    rng.Source
	counter *ops.Counter
}

// NewSpecialLubyTransform returns a fixed-degree LT generator over k source
// symbols with degree k/r made odd.
func NewSpecialLubyTransform(k int, r float64, src rng.Source, counter *ops.Counter) (*SpecialLubyTransform, error) {
	if err := checkNumSymbols(k); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errNilSource()
	}
	if r < 1 {
		return nil, errInvalidRatio(r)
	}
	degree := int(float64(k) / r)
	if degree < 1 {
		degree = 1
	}
	if degree%2 == 0 {
		degree++
	}
	if degree > k {
		// Forcing oddness can overshoot k by one; fall back to the largest
		// odd degree that fits.
		degree = k
		if degree%2 == 0 {
			degree--
		}
	}
	return &SpecialLubyTransform{k: k, degree: degree, rand: src, counter: counter}, nil
}

// NumSymbols returns k.
func (g *SpecialLubyTransform) NumSymbols() int {
	return g.k
}

// Degree returns the fixed odd degree used for every mask.
func (g *SpecialLubyTransform) Degree() int {
	return g.degree
}

// Generate sets the fixed number of leading bits and permutes the mask
// uniformly. The packet index is ignored.
func (g *SpecialLubyTransform) Generate(packetIndex int) (symbol.Mask, error) {
	return permutedMask(g.k, g.degree, g.rand, g.counter), nil
}

// permutedMask builds a mask with the first degree bits set and applies a
// uniform permutation so that the chosen positions are uniformly
// distributed over the k source symbols.
func permutedMask(k, degree int, src rng.Source, counter *ops.Counter) symbol.Mask {
	mask := symbol.NewMask(k)
	for i := 0; i < degree && i < k; i++ {
		mask[i] = true
	}
	counter.Add(uint64(degree))
	fisherYates(mask, src, counter)
	return mask
}
