package figures

import (
	"io"

	"github.com/unixpickle/model3d/model2d"
)

// A Figure is a closed 2-D shape with a fixed set of vertices.
//
// Figures are immutable after construction. They are shared by pointer,
// so the same figure may be held by an Array and by the code that built
// it at the same time.
type Figure[T Scalar] interface {
	// Name is the human-readable name of the concrete shape.
	Name() string

	// Vertices returns a copy of the vertices in winding order.
	Vertices() []Point[T]

	// Center returns the mean of the vertices.
	Center() Point[T]

	// Area returns the (non-negative) enclosed area.
	Area() float64

	// Print writes the same text as String() to w.
	Print(w io.Writer) error

	// Clone creates an independent copy of the same concrete type.
	Clone() Figure[T]

	// Equal checks if other is the same kind of shape with approximately
	// the same vertices.
	Equal(other Figure[T]) bool

	// Float64 converts the figure to a number, which is its area.
	Float64() float64

	String() string
}

// TotalArea sums the areas of the figures in a, skipping nil entries.
func TotalArea[T Scalar](a *Array[Figure[T]]) float64 {
	var total float64
	for _, f := range a.All() {
		if f != nil {
			total += f.Area()
		}
	}
	return total
}

// Outline creates a closed mesh of segments along the edges of f.
func Outline[T Scalar](f Figure[T]) *model2d.Mesh {
	if f == nil {
		panic("cannot outline a nil figure")
	}
	vertices := f.Vertices()
	mesh := model2d.NewMesh()
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		mesh.Add(&model2d.Segment{v.Coord(), next.Coord()})
	}
	return mesh
}
