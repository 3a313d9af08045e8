package figures

import (
	"bytes"
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestTriangleCentered(t *testing.T) {
	tri := mustFigure(NewTriangleCentered(XY(0.0, 0.0), 6, 4))
	mustNear(t, "area", 12.0, tri.Area())
	mustNear(t, "center x", 0.0, tri.Center().X)
	mustNear(t, "center y", 0.0, tri.Center().Y)
	mustNear(t, "base", 6.0, tri.Base())
	mustNear(t, "height", 4.0, tri.Height())

	vs := tri.Vertices()
	mustNear(t, "apex y", 8.0/3, vs[0].Y)
	mustNear(t, "left x", -3.0, vs[1].X)
	mustNear(t, "right x", 3.0, vs[2].X)
}

func TestTriangleCenteredInteger(t *testing.T) {
	tri := mustFigure(NewTriangleCentered(XY(0, 0), 4, 6))
	expected := []Point[int]{XY(0, 4), XY(-2, -2), XY(2, -2)}
	for i, v := range tri.Vertices() {
		if v != expected[i] {
			t.Errorf("vertex %d: expected %v but got %v", i, expected[i], v)
		}
	}
	if tri.Area() != 12 {
		t.Errorf("expected area 12 but got %f", tri.Area())
	}
	if c := tri.Center(); c != XY(0, 0) {
		t.Errorf("expected center (0, 0) but got %v", c)
	}
}

func TestTriangleValidation(t *testing.T) {
	_, err := NewTriangle(XY(0.0, 3.0), XY(-2.0, 0.0), XY(5.0, 0.0))
	mustInvalid(t, err)

	tri := mustFigure(NewTriangle(XY(0.0, 3.0), XY(-2.0, 0.0), XY(2.0, 0.0)))
	mustNear(t, "area", 6.0, tri.Area())

	// Isosceles check tolerates rounding error in the inputs.
	_, err = NewTriangle(XY(0.1+0.2, 1.0), XY(0.0, 0.0), XY(0.6, 0.0))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, dims := range [][2]float64{{0, 1}, {1, 0}, {-1, 1}, {1, -2}} {
		tri, err := NewTriangleCentered(XY(0.0, 0.0), dims[0], dims[1])
		mustInvalid(t, err)
		if tri != nil {
			t.Errorf("failed construction should not return a triangle: %v", tri)
		}
	}
}

func TestSquare(t *testing.T) {
	sq := mustFigure(NewSquare(XY(1.0, 1.0), 4))
	mustNear(t, "area", 16.0, sq.Area())
	mustNear(t, "center x", 1.0, sq.Center().X)
	mustNear(t, "center y", 1.0, sq.Center().Y)

	expected := []Point[float64]{XY(-1.0, -1.0), XY(3.0, -1.0), XY(3.0, 3.0), XY(-1.0, 3.0)}
	for i, v := range sq.Vertices() {
		if v != expected[i] {
			t.Errorf("vertex %d: expected %v but got %v", i, expected[i], v)
		}
	}

	small := mustFigure(NewSquare(XY(0.0, 0.0), 2))
	mustNear(t, "inscribed radius", math.Sqrt2, small.InscribedCircleRadius())

	// The side is measured from the stored vertices.
	clone := small.Clone().(*Square[float64])
	mustNear(t, "clone inscribed radius", math.Sqrt2, clone.InscribedCircleRadius())
	vs := sq.Vertices()
	mustNear(t, "side", vs[0].Coord().Dist(vs[1].Coord()), sq.Side())

	for _, side := range []float64{0, -3} {
		_, err := NewSquare(XY(0.0, 0.0), side)
		mustInvalid(t, err)
	}
}

func TestRectangle(t *testing.T) {
	rect := mustFigure(NewRectangle(XY(2.0, -2.0), 6, 4))
	mustNear(t, "area", 24.0, rect.Area())
	mustNear(t, "center x", 2.0, rect.Center().X)
	mustNear(t, "center y", -2.0, rect.Center().Y)

	rect = mustFigure(NewRectangle(XY(0.0, 0.0), 6, 4))
	mustNear(t, "diagonal", math.Sqrt(52), rect.Diagonal())
	mustNear(t, "circumradius", math.Sqrt(52)/2, rect.CircumscribedCircleRadius())

	for _, dims := range [][2]float64{{0, 1}, {1, 0}, {-1, -1}} {
		_, err := NewRectangle(XY(0.0, 0.0), dims[0], dims[1])
		mustInvalid(t, err)
	}
}

func TestFigureEquality(t *testing.T) {
	reference := mustFigure(NewSquare(XY(0.0, 0.0), 4))
	identical := mustFigure(NewSquare(XY(0.0, 0.0), 4))
	if !reference.Equal(identical) {
		t.Error("squares with the same center and side should be equal")
	}
	for _, offset := range []Point[float64]{XY(1.0, 1.0), XY(0.0, 1e-3), XY(-1e-6, 0.0)} {
		translated := mustFigure(NewSquare(offset, 4))
		if reference.Equal(translated) {
			t.Errorf("translating by %v should break equality", offset)
		}
	}

	// Same vertices, different shape.
	rect := mustFigure(NewRectangle(XY(0.0, 0.0), 4, 4))
	if reference.Equal(rect) || rect.Equal(reference) {
		t.Error("a square should never equal a rectangle")
	}
	var nilSquare *Square[float64]
	if reference.Equal(nilSquare) || reference.Equal(nil) {
		t.Error("a square should not equal nil")
	}
}

func TestFigureClone(t *testing.T) {
	figures := []Figure[float64]{
		mustFigure(NewTriangleCentered(XY(1.0, 1.0), 8, 6)),
		mustFigure(NewSquare(XY(-1.0, 2.0), 3)),
		mustFigure(NewRectangle(XY(0.5, 0.5), 1, 7)),
	}
	for _, f := range figures {
		c := f.Clone()
		if c == f {
			t.Errorf("%s: clone should be a new instance", f.Name())
		}
		if !f.Equal(c) || !c.Equal(f) {
			t.Errorf("%s: clone should equal the original", f.Name())
		}
		if c.Name() != f.Name() {
			t.Errorf("clone name %s does not match %s", c.Name(), f.Name())
		}
	}

	// Removing the original from an array leaves the clone alone.
	arr := NewArrayValues(figures...)
	clone := figures[1].Clone()
	if err := arr.Erase(1); err != nil {
		t.Fatal(err)
	}
	if !clone.Equal(figures[1]) {
		t.Error("clone changed after erasing the original")
	}
	if arr.Len() != 2 {
		t.Errorf("expected 2 figures but got %d", arr.Len())
	}
}

func TestFigureVerticesAreCopies(t *testing.T) {
	sq := mustFigure(NewSquare(XY(0, 0), 2))
	vs := sq.Vertices()
	vs[0] = XY(100, 100)
	if sq.Vertices()[0] == vs[0] {
		t.Error("modifying returned vertices changed the figure")
	}
}

func TestFigurePrint(t *testing.T) {
	sq := mustFigure(NewSquare(XY(0.0, 0.0), 2))
	expected := "Square: vertices=[(-1, -1), (1, -1), (1, 1), (-1, 1)], center=(0, 0), area=4.000"
	var buf bytes.Buffer
	if err := sq.Print(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != expected {
		t.Errorf("expected %q but got %q", expected, buf.String())
	}
	if sq.String() != expected {
		t.Errorf("expected %q but got %q", expected, sq.String())
	}

	tri := mustFigure(NewTriangleCentered(XY(0, 0), 4, 6))
	expected = "Triangle: vertices=[(0, 4), (-2, -2), (2, -2)], center=(0, 0), area=12.000"
	if tri.String() != expected {
		t.Errorf("expected %q but got %q", expected, tri.String())
	}

	rect := mustFigure(NewRectangle(XY(0.0, 0.0), 1, 1.0/3))
	expected = "Rectangle: vertices=[(-0.5, -0.166667), (0.5, -0.166667), (0.5, 0.166667), " +
		"(-0.5, 0.166667)], center=(0, 0), area=0.333"
	if rect.String() != expected {
		t.Errorf("expected %q but got %q", expected, rect.String())
	}
}

func TestFigureFloat64(t *testing.T) {
	var f Figure[float64] = mustFigure(NewSquare(XY(0.0, 0.0), 3))
	mustNear(t, "conversion", 9.0, f.Float64())
	if f.Float64() != f.Area() {
		t.Errorf("conversion %f should match area %f", f.Float64(), f.Area())
	}
}

func TestTotalArea(t *testing.T) {
	var figures Array[Figure[float64]]
	figures.PushBack(mustFigure(NewSquare(XY(0.0, 0.0), 2)))
	figures.PushBack(mustFigure(NewRectangle(XY(0.0, 0.0), 2, 4)))
	figures.PushBack(nil)
	mustNear(t, "total area", 12.0, TotalArea(&figures))

	var sum float64
	for _, f := range figures.All() {
		if f != nil {
			sum += f.Float64()
		}
	}
	mustNear(t, "converted sum", 12.0, sum)
}

func TestOutline(t *testing.T) {
	sq := mustFigure(NewSquare(XY(1.0, 1.0), 4))
	mesh := Outline[float64](sq)
	if n := len(mesh.SegmentSlice()); n != 4 {
		t.Fatalf("expected 4 segments but got %d", n)
	}
	min, max := mesh.Min(), mesh.Max()
	if min.X != -1 || min.Y != -1 || max.X != 3 || max.Y != 3 {
		t.Errorf("unexpected bounds %v %v", min, max)
	}

	tri := mustFigure(NewTriangleCentered(XY(0.0, 0.0), 6, 4))
	if n := len(Outline[float64](tri).SegmentSlice()); n != 3 {
		t.Errorf("expected 3 segments but got %d", n)
	}
}

func TestShoelaceWinding(t *testing.T) {
	// Area does not depend on orientation.
	cw := polygon[float64]{XY(0.0, 0.0), XY(0.0, 2.0), XY(3.0, 2.0), XY(3.0, 0.0)}
	ccw := polygon[float64]{XY(0.0, 0.0), XY(3.0, 0.0), XY(3.0, 2.0), XY(0.0, 2.0)}
	mustNear(t, "cw", 6.0, cw.Area())
	mustNear(t, "ccw", 6.0, ccw.Area())

	// Large integer coordinates are multiplied without overflow.
	big := polygon[int64]{XY[int64](0, 0), XY[int64](1<<40, 0), XY[int64](1<<40, 1<<30)}
	if a := big.Area(); a != math.Ldexp(1, 69) {
		t.Errorf("expected 2^69 but got %g", a)
	}
}

func TestShoelacePrecision(t *testing.T) {
	// These coordinates round to different values in float64.
	const n = int64(1) << 53
	p := polygon[int64]{XY(n+1, 0), XY(n+3, 0), XY(n+1, 2)}
	if a := p.Area(); a != 2 {
		t.Errorf("expected 2 but got %g", a)
	}
}

func TestShoelaceNonFinite(t *testing.T) {
	for _, p := range []polygon[float64]{
		{XY(0.0, 0.0), XY(math.Inf(1), 0.0), XY(0.0, 1.0)},
		{XY(0.0, 0.0), XY(1.0, math.NaN()), XY(0.0, 1.0)},
		{XY(0.0, 0.0), XY(math.Inf(1), 0.0), XY(math.Inf(1), 1.0), XY(0.0, 1.0)},
	} {
		if a := p.Area(); !math.IsNaN(a) && !math.IsInf(a, 0) {
			t.Errorf("%v: expected a non-finite area but got %g", p, a)
		}
	}
}

func TestNonFiniteInput(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	for _, value := range []float64{nan, inf, math.Inf(-1)} {
		_, err := NewSquare(XY(0.0, 0.0), value)
		mustInvalid(t, err)
		_, err = NewSquare(XY(value, 0.0), 1)
		mustInvalid(t, err)

		_, err = NewRectangle(XY(0.0, 0.0), value, 1)
		mustInvalid(t, err)
		_, err = NewRectangle(XY(0.0, 0.0), 1, value)
		mustInvalid(t, err)
		_, err = NewRectangle(XY(0.0, value), 1, 1)
		mustInvalid(t, err)

		_, err = NewTriangleCentered(XY(0.0, 0.0), value, 1)
		mustInvalid(t, err)
		_, err = NewTriangleCentered(XY(0.0, 0.0), 1, value)
		mustInvalid(t, err)
		_, err = NewTriangleCentered(XY(value, value), 1, 1)
		mustInvalid(t, err)

		_, err = NewTriangle(XY(0.0, value), XY(-1.0, 0.0), XY(1.0, 0.0))
		mustInvalid(t, err)
	}

	// Vertices that overflow while being placed.
	_, err := NewSquare(XY(math.MaxFloat64, 0.0), math.MaxFloat64)
	mustInvalid(t, err)
	_, err = NewRectangle(XY(0.0, -math.MaxFloat64), 1, math.MaxFloat64)
	mustInvalid(t, err)
	_, err = NewTriangleCentered(XY(0.0, math.MaxFloat64), 1, math.MaxFloat64)
	mustInvalid(t, err)
}

func TestTriangleFloat32(t *testing.T) {
	tri := mustFigure(NewTriangle(XY[float32](0, 3), XY[float32](-2, 0), XY[float32](2, 0)))
	mustNear(t, "area", 6.0, tri.Area())
	mustNear(t, "base", 4, tri.Base())

	_, err := NewTriangle(XY[float32](0, 3), XY[float32](-2, 0), XY[float32](2.5, 0))
	mustInvalid(t, err)

	_, err = NewTriangle(XY[float32](0.3, 1), XY[float32](0, 0), XY[float32](0.6, 0))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	intTri := mustFigure(NewTriangle(XY(0, 3), XY(-2, 0), XY(2, 0)))
	if intTri.Area() != 6 {
		t.Errorf("expected area 6 but got %f", intTri.Area())
	}
	_, err = NewTriangle(XY(0, 3), XY(-2, 0), XY(3, 0))
	mustInvalid(t, err)
}

func mustFigure[F any](f F, err error) F {
	if err != nil {
		panic(err)
	}
	return f
}

func mustInvalid(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument error but got %v", err)
	}
}
