package foodsource

import "math/rand"

// Randomize permutes the interior [1, Len()-2] in place; the anchors stay put.
//
// ShuffleBiased (default): for i = 1..Len()-2 swap route[i] with a position drawn
// uniformly from the whole interior, self-swaps included. The resulting
// permutation distribution is not uniform; colonies tuned against it rely on
// the exact procedure.
//
// ShuffleUniform: Fisher–Yates over the interior.
//
// The cached fitness is not refreshed; call Evaluate afterwards.
// A nil rng selects the food source's own deterministic stream.
//
// Complexity: O(len).
func (f *FoodSource) Randomize(rng *rand.Rand) {
	span := len(f.route) - 2
	if span >= 1 {
		r := f.randOrOwn(rng)
		switch f.cfg.shuffle {
		case ShuffleUniform:
			for k := span; k > 1; k-- {
				f.swap(k, 1+r.Intn(k))
			}
		default:
			for i := 1; i <= span; i++ {
				f.swap(i, 1+r.Intn(span))
			}
		}
	}

	f.notify(Event{Kind: KindRandomize, Fitness: f.fitness})
}
