package fraction

import (
	"encoding/binary"
	"fmt"
	"math"
)

// binarySize is the length of an encoded Fraction: an int64 numerator
// followed by a uint64 denominator.
const binarySize = 16

// AppendBinary appends the 16 byte encoding of f to dst.
func (f Fraction) AppendBinary(order binary.ByteOrder, dst []byte) []byte {
	var buf [binarySize]byte
	order.PutUint64(buf[:8], uint64(int64(f.Numerator)))
	order.PutUint64(buf[8:], uint64(f.Denominator))
	return append(dst, buf[:]...)
}

// Decode reads a Fraction encoded by AppendBinary from the start of b.
func Decode(order binary.ByteOrder, b []byte) (Fraction, error) {
	if len(b) < binarySize {
		return Fraction{}, ErrShortBuffer
	}
	num := int64(order.Uint64(b[:8]))
	den := order.Uint64(b[8:16])
	if num < math.MinInt || num > math.MaxInt || den > math.MaxUint {
		return Fraction{}, fmt.Errorf("fraction: decoding %d/%d: %w", num, den, ErrOverflow)
	}
	return New(int(num), uint(den))
}

// MarshalBinary implements encoding.BinaryMarshaler using big endian order.
func (f Fraction) MarshalBinary() ([]byte, error) {
	if f.Denominator == 0 {
		return nil, ErrZeroDenominator
	}
	return f.AppendBinary(binary.BigEndian, make([]byte, 0, binarySize)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Fraction) UnmarshalBinary(data []byte) error {
	if len(data) > binarySize {
		return fmt.Errorf("fraction: %d trailing bytes after encoded fraction", len(data)-binarySize)
	}
	v, err := Decode(binary.BigEndian, data)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
