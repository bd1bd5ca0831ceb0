package foodsource

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/abcvrp/node"
)

// FoodSource is one multi-vehicle route assignment together with its cached
// fitness and staleness counter.
//
// Invariants:
//   - len(route) == totalNodes + vehicleCount, fixed for the lifetime.
//   - route[0] and route[len-1] are depot nodes; no operation moves them.
//   - trial >= 0.
//
// The zero value is not usable; construct with New or Clone.
type FoodSource struct {
	route      []*node.Node
	totalNodes int
	fitness    float64
	trial      int
	id         int

	cfg settings
	rng *rand.Rand // lazily derived stream for nil-rng calls
}

// EventKind identifies the operation that produced an Event.
type EventKind uint8

const (
	// KindExploit is emitted by Exploit and ExploitPair.
	KindExploit EventKind = iota
	// KindRandomize is emitted by Randomize.
	KindRandomize
)

// String returns a lower-case label usable as a metric label value.
func (k EventKind) String() string {
	switch k {
	case KindExploit:
		return "exploit"
	case KindRandomize:
		return "randomize"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Outcome classifies a single exploitation step.
type Outcome uint8

const (
	// OutcomeNone is used for events that are not exploitation steps.
	OutcomeNone Outcome = iota
	// OutcomeImproved means the swap was kept and the fitness changed.
	OutcomeImproved
	// OutcomeNeutral means the swap was kept with unchanged fitness.
	OutcomeNeutral
	// OutcomeRejected means the swap worsened the fitness and was reverted.
	OutcomeRejected
)

// String returns a lower-case label usable as a metric label value.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeImproved:
		return "improved"
	case OutcomeNeutral:
		return "neutral"
	case OutcomeRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Event describes one completed mutation of a food source.
type Event struct {
	ID         int
	Kind       EventKind
	Outcome    Outcome
	OldFitness float64 // fitness recomputed before the step (exploit only)
	Fitness    float64 // cached fitness after the step
	Trial      int
	Exhausted  bool
}

// Observer receives Events synchronously on the mutating goroutine.
// Implementations must not call back into the food source.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// Observe calls fn(e).
func (fn ObserverFunc) Observe(e Event) { fn(e) }
