package fountain

import (
	"errors"
	"fmt"

	"github.com/ppopth/fountain/ops"
	"github.com/ppopth/fountain/symbol"
)

// ReceiverOption configures a Receiver during construction.
type ReceiverOption func(*Receiver) error

// WithOverhead sets the number of extra unique equations collected beyond k
// before the first decode attempt, absorbing rank-deficient equation sets.
func WithOverhead(overhead int) ReceiverOption {
	return func(r *Receiver) error {
		if overhead < 0 {
			return fmt.Errorf("overhead must not be negative, got %d: %w",
				overhead, symbol.ErrDimensionMismatch)
		}
		r.overhead = overhead
		return nil
	}
}

// WithReceiverOps directs the receiver's elementary-operation counts into
// counter. The same counter is handed to the solvers the receiver creates.
func WithReceiverOps(counter *ops.Counter) ReceiverOption {
	return func(r *Receiver) error {
		r.counter = counter
		return nil
	}
}

// Receiver accumulates received equations for one message and decodes once
// enough unique ones have arrived. Equations are keyed by the value of
// their mask; a second equation with an already-seen mask overwrites the
// stored payload (last-seen-wins, the documented duplicate policy).
type Receiver struct {
	k        int
	overhead int

	payloads map[string]symbol.Symbol
	masks    map[string]symbol.Mask
	order    []string // unique mask keys in arrival order

	length      int // shared payload length, -1 until the first packet
	lastAttempt int // unique-equation count at the last elimination attempt
	decoded     []symbol.Symbol
	counter     *ops.Counter
}

// NewReceiver builds a receiver for a message of k source symbols.
func NewReceiver(k int, opts ...ReceiverOption) (*Receiver, error) {
	if k < 1 {
		return nil, fmt.Errorf("number of symbols must be at least 1, got %d: %w",
			k, symbol.ErrDimensionMismatch)
	}
	r := &Receiver{
		k:        k,
		payloads: make(map[string]symbol.Symbol),
		masks:    make(map[string]symbol.Mask),
		length:   -1,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NumSymbols returns k.
func (r *Receiver) NumSymbols() int {
	return r.k
}

// Equations returns the number of unique equations stored so far.
func (r *Receiver) Equations() int {
	return len(r.order)
}

// Decoded returns the decoded source symbols, or nil while undecoded.
func (r *Receiver) Decoded() []symbol.Symbol {
	if r.decoded == nil {
		return nil
	}
	out := make([]symbol.Symbol, len(r.decoded))
	for i, s := range r.decoded {
		out[i] = s.Clone()
	}
	return out
}

// Solve stores one received equation and attempts a decode when the unique
// equation count newly crosses k plus the configured overhead. It returns
// ErrNotDecoded until the system becomes solvable; an unsolvable system is
// not an error but a request for more packets.
func (r *Receiver) Solve(mask symbol.Mask, payload symbol.Symbol) ([]symbol.Symbol, error) {
	if r.decoded != nil {
		return r.Decoded(), nil
	}
	if len(mask) != r.k {
		return nil, fmt.Errorf("mask has length %d, expected %d: %w",
			len(mask), r.k, symbol.ErrDimensionMismatch)
	}
	if r.length >= 0 && len(payload) != r.length {
		return nil, fmt.Errorf("payload has length %d, session uses %d: %w",
			len(payload), r.length, symbol.ErrLengthMismatch)
	}
	if r.length < 0 {
		r.length = len(payload)
	}

	key := mask.Key()
	if _, seen := r.payloads[key]; !seen {
		r.masks[key] = mask.Clone()
		r.order = append(r.order, key)
	} else {
		log.Debugw("duplicate mask, overwriting stored payload", "mask", mask.String())
	}
	r.payloads[key] = payload.Clone()
	r.counter.Add(uint64(r.k))

	n := len(r.order)
	if n < r.k+r.overhead || n <= r.lastAttempt {
		return nil, ErrNotDecoded
	}
	r.lastAttempt = n

	matrix := make([][]bool, n)
	rhs := make([]symbol.Symbol, n)
	for i, key := range r.order {
		matrix[i] = r.masks[key]
		rhs[i] = r.payloads[key]
	}
	solver, err := NewSolver(matrix, WithSolverOps(r.counter))
	if errors.Is(err, ErrUnsolvable) {
		log.Debugw("elimination unsolvable, waiting for more packets",
			"equations", n, "symbols", r.k)
		return nil, ErrNotDecoded
	}
	if err != nil {
		return nil, err
	}
	decoded, err := solver.Solve(rhs)
	if err != nil {
		return nil, err
	}
	r.decoded = decoded
	log.Debugw("message decoded", "symbols", r.k, "equations", n)
	return r.Decoded(), nil
}
