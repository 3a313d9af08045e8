package figures

import (
	"io"

	"github.com/pkg/errors"
)

// A Rectangle is an axis-aligned rectangle.
type Rectangle[T Scalar] struct {
	vertices [4]Point[T]
}

// NewRectangle creates a rectangle around center, with vertices in the
// same order as NewSquare.
func NewRectangle[T Scalar](center Point[T], width, height T) (*Rectangle[T], error) {
	if !isFinite(width) || !isFinite(height) || width <= 0 || height <= 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "rectangle sides must be positive")
	}
	vertices := axisAlignedCorners(center, float64(width)/2, float64(height)/2)
	if err := checkFinite("rectangle", vertices[:]...); err != nil {
		return nil, err
	}
	return &Rectangle[T]{vertices: vertices}, nil
}

func (r *Rectangle[T]) Name() string {
	return "Rectangle"
}

func (r *Rectangle[T]) Vertices() []Point[T] {
	return r.polygon().Vertices()
}

func (r *Rectangle[T]) Center() Point[T] {
	return r.polygon().Center()
}

func (r *Rectangle[T]) Area() float64 {
	return r.polygon().Area()
}

func (r *Rectangle[T]) Print(w io.Writer) error {
	return r.polygon().Print(w, r.Name())
}

func (r *Rectangle[T]) String() string {
	return r.polygon().Format(r.Name())
}

func (r *Rectangle[T]) Float64() float64 {
	return r.Area()
}

func (r *Rectangle[T]) Clone() Figure[T] {
	res := *r
	return &res
}

func (r *Rectangle[T]) Equal(other Figure[T]) bool {
	r1, ok := other.(*Rectangle[T])
	return ok && r1 != nil && r.polygon().Equal(r1.polygon())
}

// Diagonal is the distance between opposite corners.
func (r *Rectangle[T]) Diagonal() float64 {
	return dist(r.vertices[0], r.vertices[2])
}

func (r *Rectangle[T]) CircumscribedCircleRadius() float64 {
	return r.Diagonal() / 2
}

func (r *Rectangle[T]) polygon() polygon[T] {
	return r.vertices[:]
}
