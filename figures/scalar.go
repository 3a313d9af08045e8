package figures

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// toleranceScale is the multiple of machine epsilon allowed between two
// coordinates that are considered equal.
const toleranceScale = 16

// A Scalar is any numeric type usable as a coordinate.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// floatBits returns 32 or 64 for floating-point types and 0 for integers.
func floatBits[T Scalar]() int {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32:
		return 32
	case reflect.Float64:
		return 64
	default:
		return 0
	}
}

// isFinite checks that x is neither NaN nor infinite.
func isFinite[T Scalar](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// machineEpsilon returns the epsilon of T, or 0 if T is an integer type.
func machineEpsilon[T Scalar]() float64 {
	switch floatBits[T]() {
	case 32:
		return float64(math.Nextafter32(1, 2) - 1)
	case 64:
		return math.Nextafter(1, 2) - 1
	default:
		return 0
	}
}

// almostEqual compares two scalars with a tolerance relative to their
// magnitude. Integers must match exactly.
func almostEqual[T Scalar](a, b T) bool {
	eps := machineEpsilon[T]()
	if eps == 0 {
		return a == b
	}
	return approxEqualFloat(float64(a), float64(b), eps)
}

func approxEqualFloat(a, b, eps float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Max(math.Abs(a), math.Abs(b)), 1)
	return diff <= toleranceScale*eps*scale
}
