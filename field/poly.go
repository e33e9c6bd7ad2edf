// Package field implements exact polynomial arithmetic over GF(2) and the
// primitive-polynomial table that drives the structured carousel generator.
// An element of GF(2^m) is represented as a polynomial of degree below m;
// multiplication modulo a primitive polynomial of degree m walks the full
// multiplicative group of the field.
package field

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidPolynomial is returned for malformed polynomial inputs, such as
// a zero modulus or a bit width too small to hold a polynomial.
var ErrInvalidPolynomial = errors.New("invalid polynomial")

// Polynomial is a GF(2)-coefficient polynomial. Coefficients are stored
// smallest-degree-first and canonicalized: the slice never ends in a false
// entry, so the zero polynomial has an empty coefficient slice.
type Polynomial struct {
	coeffs []bool
}

// Zero returns the zero polynomial (degree -1).
func Zero() Polynomial {
	return Polynomial{}
}

// One returns the multiplicative identity (degree 0).
func One() Polynomial {
	return Polynomial{coeffs: []bool{true}}
}

// X returns the generator element x (degree 1).
func X() Polynomial {
	return Polynomial{coeffs: []bool{false, true}}
}

// FromCoefficients builds a polynomial from a smallest-degree-first
// coefficient vector. The input is copied and canonicalized.
func FromCoefficients(coeffs []bool) Polynomial {
	deg := -1
	for i, c := range coeffs {
		if c {
			deg = i
		}
	}
	out := make([]bool, deg+1)
	copy(out, coeffs[:deg+1])
	return Polynomial{coeffs: out}
}

// FromBigInt builds a polynomial from an unsigned big integer: bit i of v is
// the coefficient of x^i. Negative values are rejected.
func FromBigInt(v *big.Int) (Polynomial, error) {
	if v.Sign() < 0 {
		return Polynomial{}, fmt.Errorf("negative seed %s: %w", v, ErrInvalidPolynomial)
	}
	coeffs := make([]bool, v.BitLen())
	for i := 0; i < v.BitLen(); i++ {
		coeffs[i] = v.Bit(i) == 1
	}
	return Polynomial{coeffs: coeffs}, nil
}

// fromExponents builds a polynomial with ones exactly at the given exponents.
func fromExponents(exps []int) Polynomial {
	deg := 0
	for _, e := range exps {
		if e > deg {
			deg = e
		}
	}
	coeffs := make([]bool, deg+1)
	for _, e := range exps {
		coeffs[e] = true
	}
	return Polynomial{coeffs: coeffs}
}

// Degree returns the degree of p: -1 for the zero polynomial, 0 for one.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coefficient returns the coefficient of x^i, false beyond the degree.
func (p Polynomial) Coefficient(i int) bool {
	if i < 0 || i >= len(p.coeffs) {
		return false
	}
	return p.coeffs[i]
}

// Coefficients returns a copy of the canonical coefficient vector.
func (p Polynomial) Coefficients() []bool {
	out := make([]bool, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Bits returns the coefficient vector zero-extended to exactly n entries.
// It fails if the polynomial does not fit in n coefficients.
func (p Polynomial) Bits(n int) ([]bool, error) {
	if p.Degree() >= n {
		return nil, fmt.Errorf("degree %d does not fit in %d bits: %w",
			p.Degree(), n, ErrInvalidPolynomial)
	}
	out := make([]bool, n)
	copy(out, p.coeffs)
	return out, nil
}

// BigInt returns the integer whose bit i is the coefficient of x^i.
func (p Polynomial) BigInt() *big.Int {
	v := new(big.Int)
	for i, c := range p.coeffs {
		if c {
			v.SetBit(v, i, 1)
		}
	}
	return v
}

// Equal reports whether p and q are the same polynomial.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

// String renders p in the usual textbook form, e.g. "x^4 + x + 1".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if !p.coeffs[i] {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", i))
		}
	}
	return strings.Join(terms, " + ")
}

// Add returns a + b. Addition over GF(2) is coefficientwise XOR, so the
// shorter vector is folded into the longer one.
func Add(a, b Polynomial) Polynomial {
	long, short := a.coeffs, b.coeffs
	if len(short) > len(long) {
		long, short = short, long
	}
	out := make([]bool, len(long))
	copy(out, long)
	for i, c := range short {
		if c {
			out[i] = !out[i]
		}
	}
	return FromCoefficients(out)
}

// Mul returns the full product a*b without reduction: a convolution with XOR
// accumulation, of degree deg(a)+deg(b).
func Mul(a, b Polynomial) Polynomial {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	out := make([]bool, a.Degree()+b.Degree()+1)
	for i, ca := range a.coeffs {
		if !ca {
			continue
		}
		for j, cb := range b.coeffs {
			if cb {
				out[i+j] = !out[i+j]
			}
		}
	}
	return Polynomial{coeffs: out}
}

// Mod returns a modulo modulus by bit-polynomial long division: while the
// remainder's degree reaches the modulus degree, the modulus is XORed into
// the remainder's high-order end.
func Mod(a, modulus Polynomial) (Polynomial, error) {
	if modulus.IsZero() {
		return Polynomial{}, fmt.Errorf("zero modulus: %w", ErrInvalidPolynomial)
	}
	rem := make([]bool, len(a.coeffs))
	copy(rem, a.coeffs)
	remDeg := a.Degree()
	modDeg := modulus.Degree()
	for remDeg >= modDeg {
		shift := remDeg - modDeg
		for i, c := range modulus.coeffs {
			if c {
				rem[shift+i] = !rem[shift+i]
			}
		}
		remDeg = -1
		for i := shift + modDeg; i >= 0; i-- {
			if rem[i] {
				remDeg = i
				break
			}
		}
	}
	return FromCoefficients(rem), nil
}

// MulMod returns a*b reduced modulo modulus, one finite-field multiply-step.
func MulMod(a, b, modulus Polynomial) (Polynomial, error) {
	return Mod(Mul(a, b), modulus)
}

// Inverse returns the multiplicative inverse of a in the field defined by
// modulus: a raised to 2^deg(modulus)-2, the finite analogue of Fermat's
// little theorem, evaluated by square-and-multiply with reduction after
// every product.
func Inverse(a, modulus Polynomial) (Polynomial, error) {
	if modulus.Degree() < 1 {
		return Polynomial{}, fmt.Errorf("modulus degree %d below 1: %w",
			modulus.Degree(), ErrInvalidPolynomial)
	}
	reduced, err := Mod(a, modulus)
	if err != nil {
		return Polynomial{}, err
	}
	if reduced.IsZero() {
		return Polynomial{}, fmt.Errorf("zero has no inverse: %w", ErrInvalidPolynomial)
	}
	// exponent = 2^m - 2
	exp := new(big.Int).Lsh(big.NewInt(1), uint(modulus.Degree()))
	exp.Sub(exp, big.NewInt(2))

	result := One()
	base := reduced
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			if result, err = MulMod(result, base, modulus); err != nil {
				return Polynomial{}, err
			}
		}
		if base, err = MulMod(base, base, modulus); err != nil {
			return Polynomial{}, err
		}
	}
	return result, nil
}
