package foodsource

import (
	"math"
	"slices"
)

// Compare orders food sources by fitness, best first:
//
//	-1 if a is fitter than b, +1 if b is fitter, 0 if equal.
//
// Fitness values are compared exactly unless either side was built with
// WithFitnessTolerance; the larger of the two tolerances then applies, which
// keeps Compare(a,b) == -Compare(b,a).
//
// Complexity: O(1).
func Compare(a, b *FoodSource) int {
	tol := math.Max(a.cfg.tolerance, b.cfg.tolerance)
	d := a.fitness - b.fitness
	switch {
	case d > tol:
		return -1
	case d < -tol:
		return 1
	default:
		return 0
	}
}

// CompareTo is Compare(f, other).
func (f *FoodSource) CompareTo(other *FoodSource) int { return Compare(f, other) }

// SortBestFirst sorts sources in place by descending cached fitness.
// Sources comparing equal keep their relative order.
//
// Complexity: O(n log n).
func SortBestFirst(sources []*FoodSource) {
	slices.SortStableFunc(sources, Compare)
}
