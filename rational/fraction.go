package rational

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/fracmath/fraction"
)

// ToFraction returns u as a fraction.Fraction.
func (u U64) ToFraction() (fraction.Fraction, error) {
	return fromInt64s(int64(u.num), int64(u.denMinusOne)+1)
}

// ToFraction returns i as a fraction.Fraction. A negative denominator has
// its sign moved to the numerator.
func (i I64) ToFraction() (fraction.Fraction, error) {
	return fromInt64s(int64(i.num), int64(i.denMinusOne+1))
}

// U64FromFraction narrows f to an unsigned EXIF rational. If f does not fit
// as given it is reduced to lowest terms and tried again.
func U64FromFraction(f fraction.Fraction) (U64, error) {
	if f.Numerator < 0 {
		return U64{}, fmt.Errorf("rational: negative fraction %s: %w", f, ErrOutOfRange)
	}
	u, err := TryU64(uint(f.Numerator), f.Denominator)
	if errors.Is(err, ErrOutOfRange) {
		f.Simplify()
		u, err = TryU64(uint(f.Numerator), f.Denominator)
	}
	if err != nil {
		return U64{}, fmt.Errorf("rational: %s: %w", f, err)
	}
	return u, nil
}

// I64FromFraction narrows f to a signed EXIF rational. If f does not fit as
// given it is reduced to lowest terms and tried again.
func I64FromFraction(f fraction.Fraction) (I64, error) {
	i, err := tryI64(f)
	if errors.Is(err, ErrOutOfRange) {
		f.Simplify()
		i, err = tryI64(f)
	}
	if err != nil {
		return I64{}, fmt.Errorf("rational: %s: %w", f, err)
	}
	return i, nil
}

func tryI64(f fraction.Fraction) (I64, error) {
	if f.Denominator > math.MaxInt32 {
		return I64{}, ErrOutOfRange
	}
	return TryI64(f.Numerator, int(f.Denominator))
}

func fromInt64s(num, den int64) (fraction.Fraction, error) {
	if den < 0 {
		if num == math.MinInt64 || den == math.MinInt64 {
			return fraction.Fraction{}, fmt.Errorf("rational: %d/%d: %w", num, den, fraction.ErrOverflow)
		}
		num, den = -num, -den
	}
	if num < math.MinInt || num > math.MaxInt || uint64(den) > math.MaxUint {
		return fraction.Fraction{}, fmt.Errorf("rational: %d/%d: %w", num, den, fraction.ErrOverflow)
	}
	return fraction.New(int(num), uint(den))
}
