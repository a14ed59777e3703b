package umath

import (
	"math"
)

// Epsilon is the absolute tolerance used by every fuzzy comparison in this package.
const Epsilon float32 = 0.000001

func FloatMin(l, r float32) float32 {
	if l > r {
		return r
	} else {
		return l
	}
}

func FloatMax(l, r float32) float32 {
	if l > r {
		return l
	} else {
		return r
	}
}

func FloatAbs(d float32) float32 {
	return float32(math.Abs(float64(d)))
}

// FuzzyCompare reports whether a and b are within Epsilon of each other.
func FuzzyCompare(a, b float32) bool {
	return FloatAbs(a-b) <= Epsilon
}

func FuzzyZero(f float32) bool {
	return FuzzyCompare(f, 0)
}
