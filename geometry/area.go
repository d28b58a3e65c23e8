package geometry

import "math"

// AreaCircle returns π·r².
func AreaCircle[T Number](radius T) (T, error) {
	r := float64(radius)
	return fromFloat[T](math.Pi * (r * r))
}

// AreaParallelogram returns base·height computed directly in T.
// Unlike the other functions it reports no error: integer results that
// overflow T wrap around.
func AreaParallelogram[T Number](base, height T) T {
	return base * height
}

// AreaRectangle returns length·width computed directly in T.
// Integer results that overflow T wrap around.
func AreaRectangle[T Number](length, width T) T {
	return length * width
}

// AreaSquare returns side².
func AreaSquare[T Number](side T) (T, error) {
	s := float64(side)
	return fromFloat[T](s * s)
}

// AreaTrapezoid returns ½·(base1+base2)·height.
func AreaTrapezoid[T Number](base1, base2, height T) (T, error) {
	return fromFloat[T](0.5 * (float64(base1) + float64(base2)) * float64(height))
}

// AreaTriangle returns ½·base·height.
func AreaTriangle[T Number](base, height T) (T, error) {
	return fromFloat[T](0.5 * float64(base) * float64(height))
}

// AreaTriangleRight returns the area of a right triangle with legs
// adjacent and opposite.
func AreaTriangleRight[T Number](adjacent, opposite T) (T, error) {
	return fromFloat[T](0.5 * float64(adjacent) * float64(opposite))
}
