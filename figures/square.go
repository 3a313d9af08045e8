package figures

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// A Square is an axis-aligned square.
type Square[T Scalar] struct {
	vertices [4]Point[T]
}

// NewSquare creates a square around center. The vertices are ordered
// bottom-left, bottom-right, top-right, top-left.
func NewSquare[T Scalar](center Point[T], side T) (*Square[T], error) {
	if !isFinite(side) || side <= 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "square side must be positive")
	}
	half := float64(side) / 2
	vertices := axisAlignedCorners(center, half, half)
	if err := checkFinite("square", vertices[:]...); err != nil {
		return nil, err
	}
	return &Square[T]{vertices: vertices}, nil
}

func (s *Square[T]) Name() string {
	return "Square"
}

func (s *Square[T]) Vertices() []Point[T] {
	return s.polygon().Vertices()
}

func (s *Square[T]) Center() Point[T] {
	return s.polygon().Center()
}

func (s *Square[T]) Area() float64 {
	return s.polygon().Area()
}

func (s *Square[T]) Print(w io.Writer) error {
	return s.polygon().Print(w, s.Name())
}

func (s *Square[T]) String() string {
	return s.polygon().Format(s.Name())
}

func (s *Square[T]) Float64() float64 {
	return s.Area()
}

func (s *Square[T]) Clone() Figure[T] {
	res := *s
	return &res
}

func (s *Square[T]) Equal(other Figure[T]) bool {
	s1, ok := other.(*Square[T])
	return ok && s1 != nil && s.polygon().Equal(s1.polygon())
}

// Side measures the edge between the first two vertices.
func (s *Square[T]) Side() float64 {
	return dist(s.vertices[0], s.vertices[1])
}

func (s *Square[T]) InscribedCircleRadius() float64 {
	return s.Side() / math.Sqrt2
}

func (s *Square[T]) polygon() polygon[T] {
	return s.vertices[:]
}

// axisAlignedCorners computes the corners of a box in counter-clockwise
// order starting at the bottom-left.
func axisAlignedCorners[T Scalar](center Point[T], halfWidth, halfHeight float64) [4]Point[T] {
	cx := float64(center.X)
	cy := float64(center.Y)
	return [4]Point[T]{
		{X: T(cx - halfWidth), Y: T(cy - halfHeight)},
		{X: T(cx + halfWidth), Y: T(cy - halfHeight)},
		{X: T(cx + halfWidth), Y: T(cy + halfHeight)},
		{X: T(cx - halfWidth), Y: T(cy + halfHeight)},
	}
}
