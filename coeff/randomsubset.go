package coeff

import (
	"github.com/ppopth/fountain/ops"
	"github.com/ppopth/fountain/rng"
	"github.com/ppopth/fountain/symbol"
)

// RandomSubset includes every source symbol independently with probability
// 1/2. Encoding symbols must never be empty, so an all-zero draw gets one
// uniformly chosen bit forced to true.
type RandomSubset struct {
	k       int
	rand    rng.Source
	counter *ops.Counter
}

// NewRandomSubset returns a random-subset generator over k source symbols
// drawing from src.
func NewRandomSubset(k int, src rng.Source, counter *ops.Counter) (*RandomSubset, error) {
	if err := checkNumSymbols(k); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errNilSource()
	}
	return &RandomSubset{k: k, rand: src, counter: counter}, nil
}

// NumSymbols returns k.
func (g *RandomSubset) NumSymbols() int {
	return g.k
}

// Generate returns a uniformly random non-empty subset mask. The packet
// index is ignored.
func (g *RandomSubset) Generate(packetIndex int) (symbol.Mask, error) {
	mask := symbol.NewMask(g.k)
	ones := 0
	for i := range mask {
		if g.rand.Float64() < 0.5 {
			mask[i] = true
			ones++
		}
	}
	if ones == 0 {
		mask[g.rand.Intn(g.k)] = true
	}
	g.counter.Add(uint64(g.k))
	return mask, nil
}
