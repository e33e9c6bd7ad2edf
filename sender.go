package fountain

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/ppopth/fountain/coeff"
	"github.com/ppopth/fountain/ops"
	"github.com/ppopth/fountain/symbol"
)

var log = logging.Logger("fountain")

// SenderOption configures a Sender during construction.
type SenderOption func(*Sender) error

// WithSenderOps directs the sender's elementary-operation counts into
// counter.
func WithSenderOps(counter *ops.Counter) SenderOption {
	return func(s *Sender) error {
		s.counter = counter
		return nil
	}
}

// Sender produces the unbounded encoding stream for one message. Its only
// mutation per packet is the advance of the monotonic packet counter.
type Sender struct {
	source  []symbol.Symbol
	length  int
	gen     coeff.Generator
	next    int
	counter *ops.Counter
}

// NewSender builds a sender over the given source symbols. The symbols must
// share one length and the generator's arity must equal their count; the
// symbols are copied, so later packets never alias caller storage.
func NewSender(source []symbol.Symbol, gen coeff.Generator, opts ...SenderOption) (*Sender, error) {
	length, err := symbol.UniformLength(source)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, fmt.Errorf("nil generator: %w", coeff.ErrInvalidArgument)
	}
	if gen.NumSymbols() != len(source) {
		return nil, fmt.Errorf("generator covers %d symbols, have %d: %w",
			gen.NumSymbols(), len(source), symbol.ErrDimensionMismatch)
	}
	own := make([]symbol.Symbol, len(source))
	for i, s := range source {
		own[i] = s.Clone()
	}
	sender := &Sender{source: own, length: length, gen: gen}
	for _, opt := range opts {
		if err := opt(sender); err != nil {
			return nil, err
		}
	}
	return sender, nil
}

// NumSymbols returns k, the number of source symbols.
func (s *Sender) NumSymbols() int {
	return len(s.source)
}

// NextIndex returns the packet index the next GenerateNext call will use.
func (s *Sender) NextIndex() int {
	return s.next
}

// GenerateNext requests the next mask from the generator and folds the
// selected source symbols into a fresh encoding symbol.
func (s *Sender) GenerateNext() (Packet, error) {
	mask, err := s.gen.Generate(s.next)
	if err != nil {
		return Packet{}, err
	}
	s.next++
	if len(mask) != len(s.source) {
		return Packet{}, fmt.Errorf("generator produced mask of length %d for %d symbols: %w",
			len(mask), len(s.source), symbol.ErrDimensionMismatch)
	}
	payload := symbol.Zero(s.length)
	for i, set := range mask {
		if !set {
			continue
		}
		if err := symbol.XorInto(payload, s.source[i]); err != nil {
			return Packet{}, err
		}
		s.counter.Add(uint64(s.length))
	}
	return Packet{Mask: mask, Payload: payload}, nil
}
