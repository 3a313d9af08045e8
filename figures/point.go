package figures

import (
	"fmt"
	"strconv"

	"github.com/unixpickle/model3d/model2d"
)

// A Point is a 2-D coordinate. Points are values and are always copied.
type Point[T Scalar] struct {
	X T
	Y T
}

// XY creates a Point from its coordinates.
func XY[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add computes p+p1.
func (p Point[T]) Add(p1 Point[T]) Point[T] {
	return Point[T]{X: p.X + p1.X, Y: p.Y + p1.Y}
}

// Sub computes p-p1.
func (p Point[T]) Sub(p1 Point[T]) Point[T] {
	return Point[T]{X: p.X - p1.X, Y: p.Y - p1.Y}
}

// Scale multiplies both coordinates by s.
func (p Point[T]) Scale(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// Div divides both coordinates by s.
//
// The division is done in float64 and converted back to T, so integer
// points are truncated toward zero after an exact division rather than
// by integer division. Dividing by zero is not checked.
func (p Point[T]) Div(s T) Point[T] {
	d := float64(s)
	return Point[T]{
		X: T(float64(p.X) / d),
		Y: T(float64(p.Y) / d),
	}
}

// Coord converts p to a model2d coordinate.
func (p Point[T]) Coord() model2d.Coord {
	return model2d.XY(float64(p.X), float64(p.Y))
}

func (p Point[T]) String() string {
	return "(" + formatScalar(p.X) + ", " + formatScalar(p.Y) + ")"
}

// formatScalar prints floats with six significant digits and no trailing
// zeros, and integers in full.
func formatScalar[T Scalar](x T) string {
	bits := floatBits[T]()
	if bits == 0 {
		return fmt.Sprint(x)
	}
	return strconv.FormatFloat(float64(x), 'g', 6, bits)
}
