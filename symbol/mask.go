package symbol

import "strings"

// Mask is a boolean selection vector over the k source symbols of a session.
// It serves both as one row of the linear system and, through Key, as the
// value-equality key used to deduplicate received equations.
type Mask []bool

// NewMask returns an all-false mask of length k.
func NewMask(k int) Mask {
	return make(Mask, k)
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	out := make(Mask, len(m))
	copy(out, m)
	return out
}

// Ones returns the number of set positions, i.e. the degree of the equation.
func (m Mask) Ones() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

// Key returns the bit-packed byte-string form of m. Two masks of equal length
// have equal keys exactly when they are equal element-wise, which makes the
// key usable as a map key with value semantics.
func (m Mask) Key() string {
	packed := make([]byte, (len(m)+7)/8)
	for i, b := range m {
		if b {
			packed[i/8] |= 1 << (7 - i%8)
		}
	}
	return string(packed)
}

// Equal reports whether m and o have identical length and content.
func (m Mask) Equal(o Mask) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// String renders the mask as a bit string, e.g. "01101".
func (m Mask) String() string {
	var sb strings.Builder
	sb.Grow(len(m))
	for _, b := range m {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
