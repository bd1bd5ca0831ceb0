// Package foodsource: route access.
//
// The live route slice never leaves the package. Readers get snapshots;
// writers go through Swap (interior only) or SetRoute (fully validated),
// so the anchor positions cannot be displaced from outside.
package foodsource

import (
	"fmt"

	"github.com/katalvlaran/abcvrp/node"
)

// Route returns a fresh copy of the route. Mutating it does not affect f.
//
// Complexity: O(len).
func (f *FoodSource) Route() []*node.Node {
	out := make([]*node.Node, len(f.route))
	copy(out, f.route)
	return out
}

// At returns the node at position i.
//
// Errors: ErrIndexOutOfRange.
func (f *FoodSource) At(i int) (*node.Node, error) {
	if i < 0 || i >= len(f.route) {
		return nil, fmt.Errorf("At(%d) len=%d: %w", i, len(f.route), ErrIndexOutOfRange)
	}
	return f.route[i], nil
}

// Swap exchanges two interior positions. The cached fitness is not refreshed.
//
// Errors: ErrIndexOutOfRange when i or j is outside [1, Len()-2].
func (f *FoodSource) Swap(i, j int) error {
	if !f.interior(i) || !f.interior(j) {
		return fmt.Errorf("Swap(%d,%d) len=%d: %w", i, j, len(f.route), ErrIndexOutOfRange)
	}
	f.swap(i, j)
	return nil
}

// SetRoute replaces the route with a copy of route after validating it:
//   - non-empty (ErrEmptyRoute),
//   - no nil entries (ErrNilNode),
//   - same length as the current route (ErrLengthMismatch),
//   - depot at both anchors (ErrAnchorNotDepot).
//
// On error f is unchanged. The cached fitness is not refreshed.
//
// Complexity: O(len).
func (f *FoodSource) SetRoute(route []*node.Node) error {
	if len(route) == 0 {
		return ErrEmptyRoute
	}
	for i, n := range route {
		if n == nil {
			return fmt.Errorf("SetRoute: position %d: %w", i, ErrNilNode)
		}
	}
	if len(route) != len(f.route) {
		return fmt.Errorf("SetRoute: got %d positions, want %d: %w", len(route), len(f.route), ErrLengthMismatch)
	}
	last := len(route) - 1
	if !route[0].IsDepot() || !route[last].IsDepot() {
		return fmt.Errorf("SetRoute: anchors %v/%v: %w", route[0], route[last], ErrAnchorNotDepot)
	}

	f.route = make([]*node.Node, len(route))
	copy(f.route, route)
	return nil
}

// interior reports whether i lies in [1, len-2].
func (f *FoodSource) interior(i int) bool {
	return i >= 1 && i <= len(f.route)-2
}

// swap exchanges two positions without checks.
func (f *FoodSource) swap(i, j int) {
	f.route[i], f.route[j] = f.route[j], f.route[i]
}
