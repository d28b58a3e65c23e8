package fraction

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestBinaryRoundTrip(t *testing.T) {
	testCases := []struct {
		desc  string
		f     Fraction
		order binary.ByteOrder
	}{
		{desc: "little endian", f: Fraction{-3, 7}, order: binary.LittleEndian},
		{desc: "big endian", f: Fraction{2, 4}, order: binary.BigEndian},
		{desc: "min int", f: Fraction{math.MinInt, math.MaxUint}, order: binary.LittleEndian},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			b := tC.f.AppendBinary(tC.order, []byte{0xff})
			if len(b) != 1+binarySize {
				t.Fatalf("got %d bytes, want %d", len(b), 1+binarySize)
			}
			got, err := Decode(tC.order, b[1:])
			if err != nil {
				t.Fatal(err)
			}
			if got != tC.f {
				t.Errorf("got %s, want %s", got, tC.f)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(binary.BigEndian, make([]byte, binarySize-1))
	if !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short buffer: got %v, want %v", err, ErrShortBuffer)
	}
	// Numerator 5, denominator 0.
	b := []byte{0, 0, 0, 0, 0, 0, 0, 5, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err = Decode(binary.BigEndian, b)
	if !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("zero denominator: got %v, want %v", err, ErrZeroDenominator)
	}
}

func TestMarshalBinary(t *testing.T) {
	f := Fraction{-9, 12}
	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xf7,
		0, 0, 0, 0, 0, 0, 0, 12,
	}
	if string(data) != string(want) {
		t.Errorf("got %x, want %x", data, want)
	}
	var got Fraction
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if got != f {
		t.Errorf("got %s, want %s", got, f)
	}
	if err := got.UnmarshalBinary(append(data, 0)); err == nil {
		t.Error("expected error for trailing data")
	}
	if _, err := (Fraction{}).MarshalBinary(); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("marshal 0/0: got %v, want %v", err, ErrZeroDenominator)
	}
}
