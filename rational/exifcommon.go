package rational

import (
	"encoding/binary"
	"fmt"

	exifcommon "github.com/dsoprea/go-exif/v3/common"
	"github.com/soypat/fracmath/fraction"
)

// rationalSize is the encoded size of a RATIONAL or SRATIONAL value.
const rationalSize = 8

// EXIF returns u in the representation used by github.com/dsoprea/go-exif.
func (u U64) EXIF() exifcommon.Rational {
	return exifcommon.Rational{Numerator: u.num, Denominator: u.denMinusOne + 1}
}

// EXIF returns i in the representation used by github.com/dsoprea/go-exif.
func (i I64) EXIF() exifcommon.SignedRational {
	return exifcommon.SignedRational{Numerator: i.num, Denominator: i.denMinusOne + 1}
}

func FromEXIFRational(r exifcommon.Rational) (U64, error) {
	return TryU64(uint(r.Numerator), uint(r.Denominator))
}

func FromEXIFSignedRational(r exifcommon.SignedRational) (I64, error) {
	return TryI64(int(r.Numerator), int(r.Denominator))
}

// EncodeFractions encodes fracs as consecutive EXIF SRATIONAL values in the
// given byte order. Fractions that do not fit in 32 bits even after
// simplification return an error.
func EncodeFractions(order binary.ByteOrder, fracs []fraction.Fraction) ([]byte, error) {
	if len(fracs) == 0 {
		return nil, nil
	}
	srats := make([]exifcommon.SignedRational, len(fracs))
	for i, f := range fracs {
		r, err := I64FromFraction(f)
		if err != nil {
			return nil, fmt.Errorf("rational: value %d: %w", i, err)
		}
		srats[i] = r.EXIF()
	}
	ed, err := exifcommon.NewValueEncoder(order).Encode(srats)
	if err != nil {
		return nil, fmt.Errorf("rational: exif encoding: %w", err)
	}
	return ed.Encoded, nil
}

// ParseFractions decodes consecutive EXIF RATIONAL values, or SRATIONAL values
// if signed is true, from data.
func ParseFractions(order binary.ByteOrder, data []byte, signed bool) ([]fraction.Fraction, error) {
	if len(data)%rationalSize != 0 {
		return nil, fmt.Errorf("rational: %d bytes is not a multiple of %d: %w", len(data), rationalSize, ErrShortBuffer)
	}
	count := uint32(len(data) / rationalSize)
	if count == 0 {
		return nil, nil
	}
	var parser exifcommon.Parser
	fracs := make([]fraction.Fraction, 0, count)
	if signed {
		srats, err := parser.ParseSignedRationals(data, count, order)
		if err != nil {
			return nil, fmt.Errorf("rational: exif parsing: %w", err)
		}
		for i, sr := range srats {
			r, err := FromEXIFSignedRational(sr)
			if err != nil {
				return nil, fmt.Errorf("rational: value %d: %w", i, err)
			}
			f, err := r.ToFraction()
			if err != nil {
				return nil, fmt.Errorf("rational: value %d: %w", i, err)
			}
			fracs = append(fracs, f)
		}
		return fracs, nil
	}
	rats, err := parser.ParseRationals(data, count, order)
	if err != nil {
		return nil, fmt.Errorf("rational: exif parsing: %w", err)
	}
	for i, ur := range rats {
		r, err := FromEXIFRational(ur)
		if err != nil {
			return nil, fmt.Errorf("rational: value %d: %w", i, err)
		}
		f, err := r.ToFraction()
		if err != nil {
			return nil, fmt.Errorf("rational: value %d: %w", i, err)
		}
		fracs = append(fracs, f)
	}
	return fracs, nil
}
