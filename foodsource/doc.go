// Package foodsource implements the candidate solution ("food source") of an
// Artificial Bee Colony optimizer for the multi-vehicle routing problem.
//
// 🚀 What is a food source?
//
//	One full route assignment across all vehicles, encoded as a single closed
//	sequence of nodes in which depot occurrences separate per-vehicle tours:
//
//	  D 3 1 D 4 2 5 D
//	  │ └─┬─┘ │ └─┬─┘ │
//	  │  v1   │  v2   └ anchor end
//	  └ anchor start
//
//	For n nodes (depot included) and k vehicles the route has n+k positions.
//	route[0] and route[n+k-1] are the depot and never move; the interior
//	holds every customer plus k-1 separators and is the only region permuted.
//
// ✨ Key features:
//   - Strict evaluation: any zero-length adjacency (two adjacent separators,
//     a repeated node) makes the distance +Inf and the fitness exactly 0.
//   - Exploit: one random transposition of two interior positions, kept when
//     the fitness does not drop, reverted otherwise (greedy, no annealing).
//   - Staleness: a trial counter incremented on every reverted move and reset
//     on every strict improvement; IsExhausted reports trial > limit.
//   - Ordering: CompareTo sorts best fitness first.
//   - Clone allocates a fresh route container; clones never alias.
//
// ⚙️ Usage:
//
//	nodes := []*node.Node{
//	  node.NewDepot(0, 0, 0),
//	  node.NewCustomer(1, 0, 3),
//	  node.NewCustomer(2, 4, 3),
//	  node.NewCustomer(3, 4, 0),
//	}
//	fs, err := foodsource.New(nodes, 2, 7, foodsource.WithTrialLimit(20))
//	if err != nil {
//	  // ErrNoNodes, ErrNilNode, ErrDepotNotFirst, ErrBadVehicleCount
//	}
//	rng := foodsource.NewRand(42)
//	fs.Randomize(rng)
//	fs.Evaluate()
//	for !fs.IsExhausted() {
//	  fs.Exploit(rng)
//	}
//	fmt.Println(fs)
//
// Concurrency:
//
//	A FoodSource has no internal locking. Each instance must be mutated by at
//	most one goroutine at a time, and a *rand.Rand must not be shared across
//	goroutines; use DeriveRand to give every worker its own stream.
//
// Errors:
//
//	All failures are sentinel errors (see errors.go) checked with errors.Is.
//	Degenerate routes are not errors.
package foodsource
