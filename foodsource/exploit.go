// Package foodsource: single-step local search.
//
// Neighbourhood: transposition of two interior positions (they may coincide).
// Acceptance:    keep the swap unless the fitness strictly drops; otherwise revert.
// Staleness:     reverted ⇒ trial+1; kept with a different fitness ⇒ trial=0;
// kept with an equal fitness ⇒ trial unchanged.
//
// The route after a step is either the swapped route or exactly the previous one.
package foodsource

import (
	"fmt"
	"math/rand"
)

// Exploit performs one hill-climbing step with two indices drawn uniformly from
// the interior [1, Len()-2], caches and returns the retained fitness.
// The returned fitness is never below the fitness of the route before the call.
//
// A nil rng selects the food source's own deterministic stream (see DeriveRand).
// A route without interior positions (one node, one vehicle) is left unchanged
// and reported as a neutral step.
//
// Complexity: O(len) for the two evaluations.
func (f *FoodSource) Exploit(rng *rand.Rand) float64 {
	span := len(f.route) - 2
	if span < 1 {
		old := f.ComputeFitness()
		f.fitness = old
		f.notify(Event{Kind: KindExploit, Outcome: OutcomeNeutral, OldFitness: old, Fitness: old})
		return old
	}

	r := f.randOrOwn(rng)
	i := 1 + r.Intn(span)
	j := 1 + r.Intn(span)

	return f.exploitPair(i, j)
}

// ExploitPair is the deterministic core of Exploit with caller-chosen indices.
// Both i and j must lie in the interior [1, Len()-2].
//
// Errors: ErrIndexOutOfRange (route, fitness and trial untouched).
//
// Complexity: O(len).
func (f *FoodSource) ExploitPair(i, j int) (float64, error) {
	if !f.interior(i) || !f.interior(j) {
		return f.fitness, fmt.Errorf("ExploitPair(%d,%d) len=%d: %w", i, j, len(f.route), ErrIndexOutOfRange)
	}
	return f.exploitPair(i, j), nil
}

// exploitPair swaps i and j, keeps or reverts, updates trial and the cache.
// i and j must be interior.
func (f *FoodSource) exploitPair(i, j int) float64 {
	old := f.ComputeFitness()
	f.swap(i, j)
	fit := f.ComputeFitness()

	outcome := OutcomeNeutral
	if old > fit {
		f.trial++
		f.swap(i, j)
		fit = old
		outcome = OutcomeRejected
	}
	if fit != old {
		f.trial = 0
		outcome = OutcomeImproved
	}
	f.fitness = fit

	f.notify(Event{Kind: KindExploit, Outcome: outcome, OldFitness: old, Fitness: fit})
	return fit
}
