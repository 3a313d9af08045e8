package figures

import (
	"io"

	"github.com/pkg/errors"
)

// A Triangle is an isosceles triangle. Its vertices are stored as the
// apex followed by the left and right ends of the base.
type Triangle[T Scalar] struct {
	vertices [3]Point[T]
}

// NewTriangle creates a triangle from explicit vertices.
//
// The apex must be (approximately) equidistant from both base vertices.
func NewTriangle[T Scalar](apex, baseLeft, baseRight Point[T]) (*Triangle[T], error) {
	if err := checkFinite("triangle", apex, baseLeft, baseRight); err != nil {
		return nil, err
	}
	left := squaredDist(apex, baseLeft)
	right := squaredDist(apex, baseRight)
	if !approxEqualFloat(left, right, machineEpsilon[float64]()) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"triangle must be isosceles (squared sides %g and %g)", left, right)
	}
	return &Triangle[T]{vertices: [3]Point[T]{apex, baseLeft, baseRight}}, nil
}

// NewTriangleCentered creates an isosceles triangle with a horizontal base
// whose centroid is center.
func NewTriangleCentered[T Scalar](center Point[T], base, height T) (*Triangle[T], error) {
	if !isFinite(base) || !isFinite(height) || base <= 0 || height <= 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "triangle dimensions must be positive")
	}
	halfBase := float64(base) / 2
	h := float64(height)
	cx := float64(center.X)
	cy := float64(center.Y)
	vertices := [3]Point[T]{
		{X: T(cx), Y: T(cy + h*2/3)},
		{X: T(cx - halfBase), Y: T(cy - h/3)},
		{X: T(cx + halfBase), Y: T(cy - h/3)},
	}
	if err := checkFinite("triangle", vertices[:]...); err != nil {
		return nil, err
	}
	return &Triangle[T]{vertices: vertices}, nil
}

func (t *Triangle[T]) Name() string {
	return "Triangle"
}

func (t *Triangle[T]) Vertices() []Point[T] {
	return t.polygon().Vertices()
}

func (t *Triangle[T]) Center() Point[T] {
	return t.polygon().Center()
}

func (t *Triangle[T]) Area() float64 {
	return t.polygon().Area()
}

func (t *Triangle[T]) Print(w io.Writer) error {
	return t.polygon().Print(w, t.Name())
}

func (t *Triangle[T]) String() string {
	return t.polygon().Format(t.Name())
}

func (t *Triangle[T]) Float64() float64 {
	return t.Area()
}

func (t *Triangle[T]) Clone() Figure[T] {
	res := *t
	return &res
}

func (t *Triangle[T]) Equal(other Figure[T]) bool {
	t1, ok := other.(*Triangle[T])
	return ok && t1 != nil && t.polygon().Equal(t1.polygon())
}

// Base returns the length of the edge opposite the apex.
func (t *Triangle[T]) Base() float64 {
	return dist(t.vertices[1], t.vertices[2])
}

// Height returns the distance from the apex to the midpoint of the base.
func (t *Triangle[T]) Height() float64 {
	apex, left, right := t.vertices[0], t.vertices[1], t.vertices[2]
	mid := XY((float64(left.X)+float64(right.X))/2, (float64(left.Y)+float64(right.Y))/2)
	return dist(mid, XY(float64(apex.X), float64(apex.Y)))
}

func (t *Triangle[T]) polygon() polygon[T] {
	return t.vertices[:]
}
