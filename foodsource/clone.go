// File: clone.go
// Role: Copying food sources.
// Determinism:
//   - Clone and CopyFrom always allocate a fresh route container. Nodes are
//     shared (they are immutable), the slice holding them never is, so a swap
//     on a copy cannot reach the original.
//   - The derived nil-rng stream is not copied; a clone derives its own on demand.

package foodsource

// Clone returns an independent copy carrying the same id, totalNodes, trial,
// cached fitness, configuration and route contents.
//
// Complexity: O(len).
func (f *FoodSource) Clone() *FoodSource {
	return &FoodSource{
		route:      f.Route(),
		totalNodes: f.totalNodes,
		fitness:    f.fitness,
		trial:      f.trial,
		id:         f.id,
		cfg:        f.cfg,
	}
}

// CopyFrom overwrites f's id, totalNodes, trial, cached fitness and route with
// src's, keeping f's own configuration, and returns f.
//
// Complexity: O(len).
func (f *FoodSource) CopyFrom(src *FoodSource) *FoodSource {
	f.route = src.Route()
	f.totalNodes = src.totalNodes
	f.fitness = src.fitness
	f.trial = src.trial
	f.id = src.id

	return f
}
