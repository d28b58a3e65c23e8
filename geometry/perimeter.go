package geometry

import "math"

// Circumference returns 2π·r.
func Circumference[T Number](radius T) (T, error) {
	return fromFloat[T](2 * math.Pi * float64(radius))
}

func PerimeterParallelogram[T Number](adjacent1, adjacent2 T) (T, error) {
	return fromFloat[T](2*float64(adjacent1) + 2*float64(adjacent2))
}

func PerimeterRectangle[T Number](length, width T) (T, error) {
	return fromFloat[T](2*float64(length) + 2*float64(width))
}

func PerimeterSquare[T Number](side T) (T, error) {
	return fromFloat[T](4 * float64(side))
}

func PerimeterTrapezoid[T Number](base1, base2, leg1, leg2 T) (T, error) {
	return fromFloat[T](float64(base1) + float64(base2) + float64(leg1) + float64(leg2))
}

func PerimeterTriangle[T Number](a, b, c T) (T, error) {
	return fromFloat[T](float64(a) + float64(b) + float64(c))
}
