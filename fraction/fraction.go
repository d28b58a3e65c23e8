// Package fraction implements exact rational numbers on machine-width integers.
//
// A Fraction holds a signed numerator and an unsigned, non-zero denominator.
// The sign of the value is always carried by the numerator. Fractions are not
// kept in lowest terms: call Simplify to reduce one explicitly.
//
// Arithmetic never aborts. Results that would need a zero denominator fail
// with ErrZeroDenominator and results that do not fit in int/uint fail with
// ErrOverflow.
package fraction

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrZeroDenominator = errors.New("denominator cannot be zero")
	ErrOverflow        = errors.New("integer overflow")
	ErrShortBuffer     = errors.New("buffer too short")
)

// Fraction is a rational number Numerator/Denominator.
// The zero value is not a valid Fraction; use New.
type Fraction struct {
	Numerator   int
	Denominator uint
}

// New returns numerator/denominator as given. It does not simplify.
// It returns ErrZeroDenominator if denominator is zero.
func New(numerator int, denominator uint) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return Fraction{Numerator: numerator, Denominator: denominator}, nil
}

// GCD returns the greatest common divisor of a and b. GCD(a, 0) is a.
func GCD(a, b uint) uint {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// The product wraps on overflow.
func LCM(a, b uint) uint {
	l, _ := lcm(a, b)
	return l
}

// lcm is LCM which also reports whether the result fit in a uint.
func lcm(a, b uint) (uint, bool) {
	g := GCD(a, b)
	if g == 0 {
		return 0, true // a == b == 0.
	}
	return mulUint(a, b/g)
}

// Reciprocal returns 1/f with the sign kept on the numerator.
// It returns ErrZeroDenominator if f is zero.
func (f Fraction) Reciprocal() (Fraction, error) {
	r, err := New(0, abs(f.Numerator))
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: reciprocal of %s: %w", f, err)
	}
	num, ok := signed(f.Numerator < 0, f.Denominator)
	if !ok {
		return Fraction{}, fmt.Errorf("fraction: reciprocal of %s: %w", f, ErrOverflow)
	}
	r.Numerator = num
	return r, nil
}

// Simplify reduces f to lowest terms in place. A zero fraction becomes 0/1.
func (f *Fraction) Simplify() {
	g := GCD(abs(f.Numerator), f.Denominator)
	if g <= 1 {
		return
	}
	// Dividing a magnitude by g>1 always fits back into an int.
	f.Numerator, _ = signed(f.Numerator < 0, abs(f.Numerator)/g)
	f.Denominator /= g
}

// Float returns the value of f as a float64.
func (f Fraction) Float() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

// Fraction returns the numerator and denominator of f. Denominators above
// math.MaxInt are clamped to math.MaxInt, so the returned ratio can differ
// from f. Read the fields directly when the exact value is needed.
func (f Fraction) Fraction() (numerator, denominator int) {
	if f.Denominator > math.MaxInt {
		return f.Numerator, math.MaxInt
	}
	return f.Numerator, int(f.Denominator)
}

// String returns f as "numerator/denominator" without simplifying.
func (f Fraction) String() string {
	return strconv.Itoa(f.Numerator) + "/" + strconv.FormatUint(uint64(f.Denominator), 10)
}

// abs returns |n| as a uint. abs(math.MinInt) is 1<<(bits-1).
func abs(n int) uint {
	if n < 0 {
		return uint(-n)
	}
	return uint(n)
}

// signed returns the int with magnitude mag and the given sign.
func signed(neg bool, mag uint) (int, bool) {
	if neg {
		if mag > math.MaxInt+1 {
			return 0, false
		}
		return -int(mag), true
	}
	if mag > math.MaxInt {
		return 0, false
	}
	return int(mag), true
}
