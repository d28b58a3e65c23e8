package rational

import (
	"errors"
	"fmt"

	"github.com/rwcarlsen/goexif/tiff"
	"github.com/soypat/fracmath/fraction"
)

// TagFraction is a single rational value found in a TIFF directory.
type TagFraction struct {
	Dir   int    // Index of the IFD in the file.
	ID    uint16 // TIFF tag ID.
	Index int    // Position of the value within the tag.
	Value fraction.Fraction
}

// FromTag returns the i'th value of a RATIONAL or SRATIONAL tag decoded by
// github.com/rwcarlsen/goexif/tiff.
func FromTag(tag *tiff.Tag, i int) (fraction.Fraction, error) {
	if tag.Type != tiff.DTRational && tag.Type != tiff.DTSRational {
		return fraction.Fraction{}, fmt.Errorf("rational: tag %#04x has non-rational type %d", tag.Id, tag.Type)
	}
	if i < 0 || uint32(i) >= tag.Count {
		return fraction.Fraction{}, fmt.Errorf("rational: index %d out of range for tag %#04x with %d values", i, tag.Id, tag.Count)
	}
	num, den, err := tag.Rat2(i)
	if err != nil {
		return fraction.Fraction{}, fmt.Errorf("rational: tag %#04x: %w", tag.Id, err)
	}
	f, err := fromInt64s(num, den)
	if err != nil {
		return fraction.Fraction{}, fmt.Errorf("rational: tag %#04x value %d: %w", tag.Id, i, err)
	}
	return f, nil
}

// TagFractions collects every rational value in t. Values that are not valid
// fractions, such as 0/0 placeholders, are skipped and reported in the
// returned error alongside the valid values.
func TagFractions(t *tiff.Tiff) ([]TagFraction, error) {
	var (
		fracs []TagFraction
		errs  []error
	)
	for dir, d := range t.Dirs {
		for _, tag := range d.Tags {
			if tag.Type != tiff.DTRational && tag.Type != tiff.DTSRational {
				continue
			}
			for i := 0; i < int(tag.Count); i++ {
				f, err := FromTag(tag, i)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				fracs = append(fracs, TagFraction{Dir: dir, ID: tag.Id, Index: i, Value: f})
			}
		}
	}
	return fracs, errors.Join(errs...)
}
