package fraction

import (
	"fmt"
	"math/bits"
)

// Add returns f+g over the least common multiple of both denominators.
// The result is not simplified.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	n1, n2, cd, err := f.common(g)
	if err != nil {
		return Fraction{}, opError(f, '+', g, err)
	}
	sum := n1 + n2
	if (sum > n1) != (n2 > 0) {
		return Fraction{}, opError(f, '+', g, ErrOverflow)
	}
	r, err := New(sum, cd)
	if err != nil {
		return Fraction{}, opError(f, '+', g, err)
	}
	return r, nil
}

// Sub returns f-g over the least common multiple of both denominators.
// The result is not simplified.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	n1, n2, cd, err := f.common(g)
	if err != nil {
		return Fraction{}, opError(f, '-', g, err)
	}
	diff := n1 - n2
	if (diff < n1) != (n2 > 0) {
		return Fraction{}, opError(f, '-', g, ErrOverflow)
	}
	r, err := New(diff, cd)
	if err != nil {
		return Fraction{}, opError(f, '-', g, err)
	}
	return r, nil
}

// Mul returns f*g as the product of numerators over the product of
// denominators. The result is not simplified.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	mag, ok := mulUint(abs(f.Numerator), abs(g.Numerator))
	if !ok {
		return Fraction{}, opError(f, '*', g, ErrOverflow)
	}
	num, ok := signed((f.Numerator < 0) != (g.Numerator < 0), mag)
	if !ok {
		return Fraction{}, opError(f, '*', g, ErrOverflow)
	}
	den, ok := mulUint(f.Denominator, g.Denominator)
	if !ok {
		return Fraction{}, opError(f, '*', g, ErrOverflow)
	}
	r, err := New(num, den)
	if err != nil {
		return Fraction{}, opError(f, '*', g, err)
	}
	return r, nil
}

// Div returns f/g. The numerator is f.Numerator*g.Denominator and the
// denominator is f.Denominator*|g.Numerator|, with the sign of g moved onto
// the numerator. The result is not simplified. Dividing by a zero fraction
// returns ErrZeroDenominator.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	den, ok := mulUint(f.Denominator, abs(g.Numerator))
	if !ok {
		return Fraction{}, opError(f, '/', g, ErrOverflow)
	}
	r, err := New(0, den)
	if err != nil {
		return Fraction{}, opError(f, '/', g, err)
	}
	mag, ok := mulUint(abs(f.Numerator), g.Denominator)
	if !ok {
		return Fraction{}, opError(f, '/', g, ErrOverflow)
	}
	r.Numerator, ok = signed((f.Numerator < 0) != (g.Numerator < 0), mag)
	if !ok {
		return Fraction{}, opError(f, '/', g, ErrOverflow)
	}
	return r, nil
}

// common returns the numerators of f and g scaled to their least common
// denominator cd.
func (f Fraction) common(g Fraction) (n1, n2 int, cd uint, err error) {
	cd, ok := lcm(f.Denominator, g.Denominator)
	if !ok {
		return 0, 0, 0, ErrOverflow
	}
	if cd == 0 {
		return 0, 0, 0, ErrZeroDenominator
	}
	n1, ok = scale(f.Numerator, cd/f.Denominator)
	if !ok {
		return 0, 0, 0, ErrOverflow
	}
	n2, ok = scale(g.Numerator, cd/g.Denominator)
	if !ok {
		return 0, 0, 0, ErrOverflow
	}
	return n1, n2, cd, nil
}

// scale returns n*k.
func scale(n int, k uint) (int, bool) {
	mag, ok := mulUint(abs(n), k)
	if !ok {
		return 0, false
	}
	return signed(n < 0, mag)
}

// mulUint returns a*b and whether the product fit in a uint.
func mulUint(a, b uint) (uint, bool) {
	hi, lo := bits.Mul(a, b)
	return lo, hi == 0
}

func opError(f Fraction, op byte, g Fraction, err error) error {
	return fmt.Errorf("fraction: %s %c %s: %w", f, op, g, err)
}
