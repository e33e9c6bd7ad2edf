package coeff

import (
	"fmt"

	"github.com/ppopth/fountain/field"
	"github.com/ppopth/fountain/ops"
	"github.com/ppopth/fountain/symbol"
)

// SophisticatedCarousel walks the multiplicative group of GF(2^k): it keeps
// a running polynomial, multiplies it by x and reduces modulo the primitive
// polynomial for k on every step, and emits the coefficient vector as the
// mask. The masks for any k consecutive packet indices are k consecutive
// nonzero elements of a cyclic group of order 2^k - 1 and therefore span the
// field's vector space, so any k consecutive packets suffice to decode.
type SophisticatedCarousel struct {
	k         int
	primitive field.Polynomial
	running   field.Polynomial
	lastIndex int
	counter   *ops.Counter
}

// NewSophisticatedCarousel returns a structured carousel over k source
// symbols. Construction fails when no primitive polynomial is tabulated
// for k.
func NewSophisticatedCarousel(k int, counter *ops.Counter) (*SophisticatedCarousel, error) {
	if err := checkNumSymbols(k); err != nil {
		return nil, err
	}
	primitive, err := field.Primitive(k)
	if err != nil {
		return nil, err
	}
	return &SophisticatedCarousel{
		k:         k,
		primitive: primitive,
		running:   field.One(),
		lastIndex: -1,
		counter:   counter,
	}, nil
}

// NumSymbols returns k.
func (g *SophisticatedCarousel) NumSymbols() int {
	return g.k
}

// Generate returns the mask for the given packet index. Sequential access
// (index == last + 1) costs one multiply-step; any other index recomputes
// the running polynomial from the identity, which is correct but costs
// index multiply-steps instead.
func (g *SophisticatedCarousel) Generate(packetIndex int) (symbol.Mask, error) {
	if packetIndex < 0 {
		return nil, fmt.Errorf("negative packet index %d: %w", packetIndex, ErrInvalidArgument)
	}
	if packetIndex != g.lastIndex+1 {
		g.running = field.One()
		for i := 0; i < packetIndex; i++ {
			if err := g.step(); err != nil {
				return nil, err
			}
		}
	}
	if err := g.step(); err != nil {
		return nil, err
	}
	g.lastIndex = packetIndex

	bits, err := g.running.Bits(g.k)
	if err != nil {
		return nil, err
	}
	g.counter.Add(uint64(g.k))
	return symbol.Mask(bits), nil
}

// step advances the running polynomial by one finite-field multiply-step.
func (g *SophisticatedCarousel) step() error {
	next, err := field.MulMod(g.running, field.X(), g.primitive)
	if err != nil {
		return err
	}
	g.running = next
	g.counter.Add(uint64(g.k))
	return nil
}
