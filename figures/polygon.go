package figures

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// areaPrecision is the mantissa size used to accumulate the shoelace sum,
// matching IEEE quadruple precision.
const areaPrecision = 113

// A polygon holds the shared behavior of every Figure. Concrete shapes
// store their vertices in a fixed-size array and view it as a polygon.
type polygon[T Scalar] []Point[T]

func (p polygon[T]) Vertices() []Point[T] {
	return slices.Clone([]Point[T](p))
}

func (p polygon[T]) Center() Point[T] {
	var sumX, sumY float64
	for _, v := range p {
		sumX += float64(v.X)
		sumY += float64(v.Y)
	}
	n := float64(len(p))
	return Point[T]{X: T(sumX / n), Y: T(sumY / n)}
}

// Area computes the shoelace formula over consecutive vertex pairs,
// including the edge from the last vertex back to the first.
//
// Polygons with a NaN or infinite coordinate are summed in float64, so
// the result is NaN or infinite rather than a panic.
func (p polygon[T]) Area() float64 {
	if !p.finite() {
		return p.floatArea()
	}
	sum := new(big.Float).SetPrec(areaPrecision)
	term := new(big.Float).SetPrec(areaPrecision)
	for i, cur := range p {
		next := p[(i+1)%len(p)]
		sum.Add(sum, term.Mul(bigScalar(cur.X), bigScalar(next.Y)))
		sum.Sub(sum, term.Mul(bigScalar(cur.Y), bigScalar(next.X)))
	}
	res, _ := sum.Float64()
	return math.Abs(res * 0.5)
}

func (p polygon[T]) floatArea() float64 {
	var sum float64
	for i, cur := range p {
		next := p[(i+1)%len(p)]
		sum += float64(cur.X)*float64(next.Y) - float64(cur.Y)*float64(next.X)
	}
	return math.Abs(sum * 0.5)
}

func (p polygon[T]) finite() bool {
	for _, v := range p {
		if !isFinite(v.X) || !isFinite(v.Y) {
			return false
		}
	}
	return true
}

func (p polygon[T]) Format(name string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(": vertices=[")
	for i, v := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	fmt.Fprintf(&b, "], center=%s, area=%.3f", p.Center(), p.Area())
	return b.String()
}

func (p polygon[T]) Print(w io.Writer, name string) error {
	_, err := io.WriteString(w, p.Format(name))
	return err
}

// Equal compares vertices pairwise with a relative tolerance.
func (p polygon[T]) Equal(p1 polygon[T]) bool {
	if len(p) != len(p1) {
		return false
	}
	for i, v := range p {
		v1 := p1[i]
		if !almostEqual(v.X, v1.X) || !almostEqual(v.Y, v1.Y) {
			return false
		}
	}
	return true
}

// bigScalar converts x exactly, including 64-bit integers that do not fit
// in a float64 mantissa.
func bigScalar[T Scalar](x T) *big.Float {
	res := new(big.Float).SetPrec(areaPrecision)
	v := reflect.ValueOf(x)
	switch {
	case v.CanInt():
		return res.SetInt64(v.Int())
	case v.CanUint():
		return res.SetUint64(v.Uint())
	default:
		return res.SetFloat64(v.Float())
	}
}

// checkFinite rejects vertices with NaN or infinite coordinates, which
// come from non-finite inputs or from overflow while placing vertices.
func checkFinite[T Scalar](shape string, vertices ...Point[T]) error {
	if !polygon[T](vertices).finite() {
		return errors.Wrapf(ErrInvalidArgument, "%s coordinates must be finite", shape)
	}
	return nil
}

// dist computes the Euclidean distance between two points in float64.
func dist[T Scalar](p1, p2 Point[T]) float64 {
	return math.Sqrt(squaredDist(p1, p2))
}

func squaredDist[T Scalar](p1, p2 Point[T]) float64 {
	dx := float64(p1.X) - float64(p2.X)
	dy := float64(p1.Y) - float64(p2.Y)
	return dx*dx + dy*dy
}
