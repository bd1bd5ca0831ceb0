// Package foodsource: distance and fitness evaluation.
//
// Two summations over consecutive route pairs:
//   - TotalDistanceStrict stops at the first zero-length pair and returns +Inf.
//     Remaining pairs are never visited on that path.
//   - TotalDistanceFull sums every pair unconditionally; it exists only to
//     display a finite total for degenerate routes.
//
// Fitness is 1/TotalDistanceStrict, so degenerate routes score exactly 0.
package foodsource

import (
	"math"

	"github.com/katalvlaran/abcvrp/node"
)

// TotalDistanceStrict returns the route length, or +Inf as soon as two
// consecutive positions are at distance 0.
//
// Complexity: O(len) worst case.
func (f *FoodSource) TotalDistanceStrict() float64 {
	var (
		sum float64
		d   float64
		i   int
	)
	for i = 0; i < len(f.route)-1; i++ {
		d = node.Distance(f.route[i], f.route[i+1])
		if d == 0 {
			return math.Inf(1)
		}
		sum += d
	}

	return sum
}

// TotalDistanceFull returns the plain sum of all consecutive distances.
//
// Complexity: O(len).
func (f *FoodSource) TotalDistanceFull() float64 {
	var sum float64
	for i := 0; i < len(f.route)-1; i++ {
		sum += node.Distance(f.route[i], f.route[i+1])
	}

	return sum
}

// ComputeFitness returns 1/TotalDistanceStrict without touching the cache.
// Larger is better; a degenerate route yields 0.
func (f *FoodSource) ComputeFitness() float64 {
	return 1 / f.TotalDistanceStrict()
}
