// Package symbol implements the symbol algebra of the fountain code. A
// symbol is a fixed-length byte vector; XOR is the only operation, and all
// symbols within one coding session share a single length.
package symbol

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when two vectors that must agree in
	// length do not.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrLengthMismatch is returned when a set of symbols that must share one
	// length contains differing lengths.
	ErrLengthMismatch = errors.New("symbols have differing lengths")
)

// Symbol is an ordered fixed-length sequence of bytes.
type Symbol []byte

// Zero returns a fresh all-zero symbol of the given length.
func Zero(length int) Symbol {
	return make(Symbol, length)
}

// Clone returns an independent copy of s.
func (s Symbol) Clone() Symbol {
	out := make(Symbol, len(s))
	copy(out, s)
	return out
}

// Equal reports whether s and t have identical length and content.
func (s Symbol) Equal(t Symbol) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

// Xor returns the componentwise XOR of a and b as a fresh symbol. XOR is
// commutative, associative and self-inverse: Xor(a, a) is the zero symbol.
func Xor(a, b Symbol) (Symbol, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("cannot xor symbols of lengths %d and %d: %w",
			len(a), len(b), ErrDimensionMismatch)
	}
	out := make(Symbol, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// XorInto folds src into dst in place: dst[i] ^= src[i].
func XorInto(dst, src Symbol) error {
	if len(dst) != len(src) {
		return fmt.Errorf("cannot xor symbols of lengths %d and %d: %w",
			len(dst), len(src), ErrDimensionMismatch)
	}
	for i := range src {
		dst[i] ^= src[i]
	}
	return nil
}

// UniformLength returns the common length of the given symbols. It fails if
// the set is empty or if any two symbols differ in length.
func UniformLength(symbols []Symbol) (int, error) {
	if len(symbols) == 0 {
		return 0, fmt.Errorf("no symbols given: %w", ErrLengthMismatch)
	}
	length := len(symbols[0])
	for i, s := range symbols {
		if len(s) != length {
			return 0, fmt.Errorf("symbol %d has length %d, expected %d: %w",
				i, len(s), length, ErrLengthMismatch)
		}
	}
	return length, nil
}
