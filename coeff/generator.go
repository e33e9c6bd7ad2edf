// Package coeff implements the family of coefficient-generation strategies
// of the fountain code. A generator maps a monotonically increasing packet
// index to a boolean selection mask over the k source symbols; which source
// symbols get combined into each encoding symbol, and with what statistics,
// is entirely decided here.
//
// The five strategies form a closed set behind one interface: the plain and
// the sophisticated carousel, a uniform random subset, the Luby transform
// driven by the Robust Soliton sampler, and a degenerate Luby transform with
// a fixed odd degree.
package coeff

import (
	"errors"
	"fmt"

	"github.com/ppopth/fountain/ops"
	"github.com/ppopth/fountain/rng"
	"github.com/ppopth/fountain/symbol"
)

// ErrInvalidArgument is returned for out-of-range construction parameters.
var ErrInvalidArgument = errors.New("invalid generator argument")

// Generator produces one coefficient mask per packet index. Implementations
// accept any non-negative index; for all strategies except the sophisticated
// carousel the index has no semantic effect on the output and exists for
// interface uniformity.
type Generator interface {
	// NumSymbols returns k, the number of source symbols the masks cover.
	NumSymbols() int

	// Generate returns the coefficient mask for the given packet index.
	Generate(packetIndex int) (symbol.Mask, error)
}

func errNilSource() error {
	return fmt.Errorf("nil random source: %w", ErrInvalidArgument)
}

func errInvalidRatio(r float64) error {
	return fmt.Errorf("r must be at least 1, got %g: %w", r, ErrInvalidArgument)
}

// checkNumSymbols validates the shared k parameter.
func checkNumSymbols(k int) error {
	if k < 1 {
		return fmt.Errorf("number of symbols must be at least 1, got %d: %w",
			k, ErrInvalidArgument)
	}
	return nil
}

// fisherYates applies a uniform random permutation to the mask in place and
// records one elementary operation per swap.
func fisherYates(mask symbol.Mask, src rng.Source, counter *ops.Counter) {
	for i := len(mask) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		mask[i], mask[j] = mask[j], mask[i]
		counter.Add(1)
	}
}
