// Package rational implements the 32-bit rational types found in EXIF and
// TIFF metadata and converts them to and from fraction.Fraction.
package rational

import (
	"encoding/binary"
	"errors"
	"math"
	"strconv"

	"github.com/soypat/fracmath/fraction"
)

// Rational is implemented by rational numbers in this package and by
// fraction.Fraction.
type Rational interface {
	Fraction() (numerator, denominator int)
}

var (
	ErrZeroDenominator = fraction.ErrZeroDenominator
	ErrShortBuffer     = fraction.ErrShortBuffer
	ErrOutOfRange      = errors.New("value does not fit in 32 bits")
)

// NewI64 is like TryI64 but panics on error.
func NewI64(numerator, denominator int) I64 {
	r, err := TryI64(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return r
}

// NewU64 is like TryU64 but panics on error.
func NewU64(numerator, denominator uint) U64 {
	r, err := TryU64(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return r
}

// TryI64 returns the signed rational numerator/denominator. Both values must
// fit in an int32 and denominator must not be zero.
func TryI64(numerator, denominator int) (I64, error) {
	if denominator == 0 {
		return I64{}, ErrZeroDenominator
	}
	if numerator < math.MinInt32 || numerator > math.MaxInt32 ||
		denominator < math.MinInt32 || denominator > math.MaxInt32 {
		return I64{}, ErrOutOfRange
	}
	return I64{num: int32(numerator), denMinusOne: int32(denominator) - 1}, nil
}

// TryU64 returns the unsigned rational numerator/denominator. Both values must
// fit in a uint32 and denominator must not be zero.
func TryU64(numerator, denominator uint) (U64, error) {
	if denominator == 0 {
		return U64{}, ErrZeroDenominator
	}
	if numerator > math.MaxUint32 || denominator > math.MaxUint32 {
		return U64{}, ErrOutOfRange
	}
	return U64{num: uint32(numerator), denMinusOne: uint32(denominator) - 1}, nil
}

// I64 is the EXIF SRATIONAL type: two int32 values. The zero value is 0/1.
// Unlike fraction.Fraction the denominator may be negative.
type I64 struct {
	num         int32
	denMinusOne int32
}

// U64 is the EXIF RATIONAL type: two uint32 values. The zero value is 0/1.
type U64 struct {
	num         uint32
	denMinusOne uint32
}

func (u U64) Float() float64 {
	return float64(u.num) / float64(u.denMinusOne+1)
}

func (i I64) Float() float64 {
	return float64(i.num) / float64(i.denMinusOne+1)
}

func DecodeU64(order binary.ByteOrder, b []byte) (U64, error) {
	if len(b) < 8 {
		return U64{}, ErrShortBuffer
	}
	denominator := order.Uint32(b[4:])
	if denominator == 0 {
		return U64{}, ErrZeroDenominator
	}
	numerator := order.Uint32(b)
	return U64{denMinusOne: denominator - 1, num: numerator}, nil
}

func DecodeI64(order binary.ByteOrder, b []byte) (I64, error) {
	if len(b) < 8 {
		return I64{}, ErrShortBuffer
	}
	denominator := int32(order.Uint32(b[4:]))
	if denominator == 0 {
		return I64{}, ErrZeroDenominator
	}
	numerator := int32(order.Uint32(b))
	return I64{denMinusOne: denominator - 1, num: numerator}, nil
}

// AppendBinary appends the 8 byte EXIF encoding of u to dst.
func (u U64) AppendBinary(order binary.ByteOrder, dst []byte) []byte {
	var buf [8]byte
	order.PutUint32(buf[:4], u.num)
	order.PutUint32(buf[4:], u.denMinusOne+1)
	return append(dst, buf[:]...)
}

// AppendBinary appends the 8 byte EXIF encoding of i to dst.
func (i I64) AppendBinary(order binary.ByteOrder, dst []byte) []byte {
	var buf [8]byte
	order.PutUint32(buf[:4], uint32(i.num))
	order.PutUint32(buf[4:], uint32(i.denMinusOne+1))
	return append(dst, buf[:]...)
}

func (i I64) Fraction() (numerator, denominator int) {
	return int(i.num), int(i.denMinusOne + 1)
}

func (u U64) Fraction() (numerator, denominator int) {
	return int(u.num), int(u.denMinusOne + 1)
}

func (i I64) String() string {
	num, den := i.Fraction()
	return strconv.Itoa(num) + "/" + strconv.Itoa(den)
}

func (u U64) String() string {
	return strconv.FormatUint(uint64(u.num), 10) + "/" + strconv.FormatUint(uint64(u.denMinusOne+1), 10)
}
