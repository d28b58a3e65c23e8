package rational

import (
	"bytes"
	"encoding/binary"
	"testing"

	exifcommon "github.com/dsoprea/go-exif/v3/common"
	"github.com/rwcarlsen/goexif/tiff"
	"github.com/soypat/fracmath/fraction"
	"github.com/stretchr/testify/require"
)

func TestEXIFConversion(t *testing.T) {
	u := NewU64(2000000, 10000)
	require.Equal(t, exifcommon.Rational{Numerator: 2000000, Denominator: 10000}, u.EXIF())
	back, err := FromEXIFRational(u.EXIF())
	require.NoError(t, err)
	require.Equal(t, u, back)

	i := NewI64(-7, 3)
	require.Equal(t, exifcommon.SignedRational{Numerator: -7, Denominator: 3}, i.EXIF())
	backI, err := FromEXIFSignedRational(i.EXIF())
	require.NoError(t, err)
	require.Equal(t, i, backI)

	_, err = FromEXIFRational(exifcommon.Rational{Numerator: 1})
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestEncodeParseFractions(t *testing.T) {
	fracs := []fraction.Fraction{
		{Numerator: 1, Denominator: 2},
		{Numerator: -3, Denominator: 4},
		{Numerator: 1 << 40, Denominator: 1 << 41}, // Simplified to 1/2 on encoding.
	}
	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		data, err := EncodeFractions(order, fracs)
		require.NoError(t, err)
		require.Len(t, data, len(fracs)*rationalSize)

		got, err := ParseFractions(order, data, true)
		require.NoError(t, err)
		require.Equal(t, []fraction.Fraction{
			{Numerator: 1, Denominator: 2},
			{Numerator: -3, Denominator: 4},
			{Numerator: 1, Denominator: 2},
		}, got)

		// Agrees with this package's own decoder.
		for k := range fracs {
			r, err := DecodeI64(order, data[k*rationalSize:])
			require.NoError(t, err)
			f, err := r.ToFraction()
			require.NoError(t, err)
			require.Equal(t, got[k], f)
		}
	}
}

func TestParseFractionsUnsigned(t *testing.T) {
	var data []byte
	data = NewU64(72, 1).AppendBinary(binary.BigEndian, data)
	data = NewU64(math32Max, 3).AppendBinary(binary.BigEndian, data)
	got, err := ParseFractions(binary.BigEndian, data, false)
	require.NoError(t, err)
	require.Equal(t, []fraction.Fraction{
		{Numerator: 72, Denominator: 1},
		{Numerator: math32Max, Denominator: 3},
	}, got)
}

func TestParseFractionsErrors(t *testing.T) {
	_, err := ParseFractions(binary.BigEndian, make([]byte, 7), false)
	require.ErrorIs(t, err, ErrShortBuffer)

	// 5/0 is not a fraction.
	_, err = ParseFractions(binary.BigEndian, []byte{0, 0, 0, 5, 0, 0, 0, 0}, false)
	require.ErrorIs(t, err, ErrZeroDenominator)

	got, err := ParseFractions(binary.BigEndian, nil, true)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = EncodeFractions(binary.BigEndian, []fraction.Fraction{{Numerator: 1, Denominator: 2}, {Numerator: 1, Denominator: 1<<32 + 1}})
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorContains(t, err, "rational: value 1:")
}

const math32Max = 1<<32 - 1

type testTag struct {
	id   uint16
	typ  tiff.DataType
	vals [][2]uint32
}

// buildTIFF returns a single-IFD TIFF. Each pair in vals is written as
// two consecutive uint32 at the tag's value offset.
func buildTIFF(order binary.ByteOrder, tags []testTag) []byte {
	var buf bytes.Buffer
	if order == binary.LittleEndian {
		buf.WriteString("II")
	} else {
		buf.WriteString("MM")
	}
	binary.Write(&buf, order, uint16(42))
	binary.Write(&buf, order, uint32(8))
	binary.Write(&buf, order, uint16(len(tags)))
	dataOffset := uint32(8 + 2 + 12*len(tags) + 4)
	var data bytes.Buffer
	for _, tag := range tags {
		binary.Write(&buf, order, tag.id)
		binary.Write(&buf, order, uint16(tag.typ))
		binary.Write(&buf, order, uint32(len(tag.vals)))
		binary.Write(&buf, order, dataOffset+uint32(data.Len()))
		for _, v := range tag.vals {
			binary.Write(&data, order, v[0])
			binary.Write(&data, order, v[1])
		}
	}
	binary.Write(&buf, order, uint32(0)) // No next IFD.
	buf.Write(data.Bytes())
	return buf.Bytes()
}

func TestTagFractions(t *testing.T) {
	minusOne := uint32(0xffffffff)
	raw := buildTIFF(binary.LittleEndian, []testTag{
		{id: 0x011a, typ: tiff.DTRational, vals: [][2]uint32{{72, 1}}},
		{id: 0x011b, typ: tiff.DTRational, vals: [][2]uint32{{0, 0}}},
		{id: 0x9204, typ: tiff.DTSRational, vals: [][2]uint32{{minusOne, 3}, {2, 4}}},
	})
	tf, err := tiff.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, tf.Dirs, 1)

	got, err := TagFractions(tf)
	require.ErrorIs(t, err, ErrZeroDenominator)
	require.Equal(t, []TagFraction{
		{Dir: 0, ID: 0x011a, Index: 0, Value: fraction.Fraction{Numerator: 72, Denominator: 1}},
		{Dir: 0, ID: 0x9204, Index: 0, Value: fraction.Fraction{Numerator: -1, Denominator: 3}},
		{Dir: 0, ID: 0x9204, Index: 1, Value: fraction.Fraction{Numerator: 2, Denominator: 4}},
	}, got)

	tag := tf.Dirs[0].Tags[2]
	_, err = FromTag(tag, 2)
	require.Error(t, err)
	_, err = FromTag(tag, -1)
	require.Error(t, err)
}

func TestFromTagWrongType(t *testing.T) {
	raw := buildTIFF(binary.BigEndian, []testTag{
		{id: 0x0100, typ: tiff.DTLong, vals: [][2]uint32{{640, 0}}},
	})
	tf, err := tiff.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	_, err = FromTag(tf.Dirs[0].Tags[0], 0)
	require.ErrorContains(t, err, "rational: tag 0x0100 has non-rational type")
	got, err := TagFractions(tf)
	require.NoError(t, err)
	require.Empty(t, got)
}
