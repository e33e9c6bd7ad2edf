package field

import (
	"fmt"
	"math/big"
)

// Discrete-log conversions between the ordinary (decimal) value of a field
// element and its index relative to a primitive polynomial. These are
// diagnostic helpers, not part of the hot encode path: IndexForm walks the
// power sequence of x and may take up to 2^m - 1 steps.

// IndexForm returns the discrete-log index i such that x^i equals the
// element with the given decimal value, modulo the primitive polynomial.
func IndexForm(value *big.Int, primitive Polynomial) (int, error) {
	target, err := FromBigInt(value)
	if err != nil {
		return 0, err
	}
	if target, err = Mod(target, primitive); err != nil {
		return 0, err
	}
	if target.IsZero() {
		return 0, fmt.Errorf("zero element has no index form: %w", ErrInvalidPolynomial)
	}
	m := primitive.Degree()
	if m > 62 {
		return 0, fmt.Errorf("field GF(2^%d) too large for index search: %w",
			m, ErrInvalidPolynomial)
	}
	order := (int64(1) << uint(m)) - 1
	running := One()
	for i := int64(0); i < order; i++ {
		if running.Equal(target) {
			return int(i), nil
		}
		if running, err = MulMod(running, X(), primitive); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("element %s not in multiplicative group of %s: %w",
		value, primitive, ErrInvalidPolynomial)
}

// DecimalForm returns the decimal value of x^index modulo the primitive
// polynomial, the inverse of IndexForm.
func DecimalForm(index int, primitive Polynomial) (*big.Int, error) {
	if index < 0 {
		return nil, fmt.Errorf("negative index %d: %w", index, ErrInvalidPolynomial)
	}
	running := One()
	var err error
	for i := 0; i < index; i++ {
		if running, err = MulMod(running, X(), primitive); err != nil {
			return nil, err
		}
	}
	return running.BigInt(), nil
}
