// Package abcvrp holds the candidate-solution layer of an Artificial Bee
// Colony optimizer for the multi-vehicle routing problem.
//
// 🚀 What is abcvrp?
//
//	The building block a colony manipulates: a "food source", one complete
//	assignment of customers to vehicles encoded as a single depot-delimited
//	route, together with its fitness and staleness counter.
//		• Evaluation: strict Euclidean route length, fitness = 1/length
//		• Local search: greedy two-position swap with trial bookkeeping
//		• Randomization: interior shuffles that keep both depot anchors
//		• Ordering, cloning and multi-vehicle rendering
//
// ✨ Why abcvrp?
//
//   - Deterministic: every random step takes an explicit *rand.Rand
//   - Fail-fast: sentinel errors for malformed input, no panics on user data
//   - Observable: opt-in event hook with Prometheus and log observers
//
// Subpackages:
//
//	node/        customer and depot locations, Euclidean distance
//	foodsource/  the FoodSource type, exploit/randomize, compare, render
//	observe/     Prometheus collector, key=value logger, fan-out
//	config/      YAML and ABC_* environment settings → foodsource options
//	examples/    runnable colony scenarios
//
// Quick ASCII example (one depot D, three customers, two vehicles):
//
//	D 3 1 D 2 D
//	└─v1──┘└v2┘
//
// The colony itself (employed, onlooker and scout phases) is left to the
// caller; examples/ shows a minimal loop.
//
//	go get github.com/katalvlaran/abcvrp
package abcvrp
