package foodsource

import (
	"fmt"
	"math"

	"github.com/katalvlaran/abcvrp/node"
)

// New builds a food source over allNodes for vehicleCount vehicles.
//
// The initial route is allNodes followed by vehicleCount copies of allNodes[0]
// (the depot). With one vehicle and nodes D,a,b,c the route is D a b c D.
// Call Randomize to scatter customers and separators across the interior.
//
// Contract:
//   - len(allNodes) >= 1, no nil entries, allNodes[0].Depot == true.
//   - vehicleCount >= 1.
//   - allNodes is not retained; the nodes themselves are shared.
//
// Errors: ErrNoNodes, ErrNilNode, ErrDepotNotFirst, ErrBadVehicleCount.
//
// Complexity: O(n + k).
func New(allNodes []*node.Node, vehicleCount, id int, opts ...Option) (*FoodSource, error) {
	if len(allNodes) == 0 {
		return nil, ErrNoNodes
	}
	if vehicleCount < 1 {
		return nil, fmt.Errorf("New(vehicleCount=%d): %w", vehicleCount, ErrBadVehicleCount)
	}
	for i, n := range allNodes {
		if n == nil {
			return nil, fmt.Errorf("New: node %d: %w", i, ErrNilNode)
		}
	}
	depot := allNodes[0]
	if !depot.IsDepot() {
		return nil, fmt.Errorf("New: %v: %w", depot, ErrDepotNotFirst)
	}

	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	total := len(allNodes)
	route := make([]*node.Node, total+vehicleCount)
	copy(route, allNodes)
	for i := total; i < len(route); i++ {
		route[i] = depot
	}

	return &FoodSource{
		route:      route,
		totalNodes: total,
		id:         id,
		cfg:        cfg,
	}, nil
}

// ID returns the identifier assigned by the owning colony.
func (f *FoodSource) ID() int { return f.id }

// SetID reassigns the identifier.
func (f *FoodSource) SetID(id int) { f.id = id }

// TotalNodes returns the number of nodes supplied at construction (depot included).
func (f *FoodSource) TotalNodes() int { return f.totalNodes }

// VehicleCount returns the number of vehicle sub-routes encoded in the route.
func (f *FoodSource) VehicleCount() int { return len(f.route) - f.totalNodes }

// Len returns the route length, totalNodes + vehicleCount.
func (f *FoodSource) Len() int { return len(f.route) }

// Fitness returns the cached fitness. It is refreshed by Exploit, ExploitPair
// and Evaluate, and overwritten by SetFitness; other mutations leave it stale.
func (f *FoodSource) Fitness() float64 { return f.fitness }

// SetFitness overwrites the cached fitness. NaN is stored as 0, the fitness of
// a degenerate route, so Compare keeps ranking the source.
func (f *FoodSource) SetFitness(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	f.fitness = v
}

// Evaluate recomputes the fitness from the current route, caches and returns it.
func (f *FoodSource) Evaluate() float64 {
	f.fitness = f.ComputeFitness()
	return f.fitness
}

func (f *FoodSource) notify(e Event) {
	if f.cfg.observer == nil {
		return
	}
	e.ID = f.id
	e.Trial = f.trial
	e.Exhausted = f.IsExhausted()
	f.cfg.observer.Observe(e)
}
