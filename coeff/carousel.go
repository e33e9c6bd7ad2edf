package coeff

import (
	"github.com/ppopth/fountain/ops"
	"github.com/ppopth/fountain/symbol"
)

// Carousel is the simplest strategy: packet index i selects exactly source
// symbol i mod k. It is deterministic and stateless, and a receiver needs
// every one of k consecutive packets to decode, so it tolerates no loss.
type Carousel struct {
	k       int
	counter *ops.Counter
}

// NewCarousel returns a carousel generator over k source symbols.
func NewCarousel(k int, counter *ops.Counter) (*Carousel, error) {
	if err := checkNumSymbols(k); err != nil {
		return nil, err
	}
	return &Carousel{k: k, counter: counter}, nil
}

// NumSymbols returns k.
func (c *Carousel) NumSymbols() int {
	return c.k
}

// Generate returns the mask with only bit packetIndex mod k set.
func (c *Carousel) Generate(packetIndex int) (symbol.Mask, error) {
	pos := packetIndex % c.k
	if pos < 0 {
		pos += c.k
	}
	mask := symbol.NewMask(c.k)
	mask[pos] = true
	c.counter.Add(uint64(c.k))
	return mask, nil
}
