// Package geometry provides closed-form area, perimeter and circumference
// formulas for basic plane shapes.
//
// Functions accept any integer or floating point type. Arguments are
// converted to float64, the formula is evaluated and the result is converted
// back to the argument type. Integer results are truncated toward zero.
// A result that has no representation in the argument type, such as a NaN
// or an out of range value, is reported as ErrNotRepresentable.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is a constraint for the types geometry functions can handle.
type Number interface {
	constraints.Integer | constraints.Float
}

var ErrNotRepresentable = errors.New("result not representable in argument type")

// fromFloat converts v to T, truncating toward zero for integer types.
func fromFloat[T Number](v float64) (T, error) {
	half := 0.5
	if T(half) != 0 {
		// Floating point type.
		result := T(v)
		if math.IsInf(float64(result), 0) && !math.IsInf(v, 0) {
			return 0, fmt.Errorf("geometry: %v overflows %T: %w", v, result, ErrNotRepresentable)
		}
		return result, nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("geometry: %v as %T: %w", v, T(0), ErrNotRepresentable)
	}
	trunc := math.Trunc(v)
	result := T(trunc)
	if float64(result) != trunc {
		return 0, fmt.Errorf("geometry: %v out of range for %T: %w", v, result, ErrNotRepresentable)
	}
	return result, nil
}
