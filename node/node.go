// Package node defines the location abstraction consumed by food sources:
// a customer or depot placed on an integer 2-D grid.
//
// Nodes are plain values shared by pointer between routes. Nothing in this
// module mutates a Node after construction, so a single *Node may appear in
// many routes (and several times in one route, as the depot does).
//
// Distance:
//   - Euclidean over integer coordinate deltas, returned as float64.
//   - Two nodes at the same coordinates are at distance exactly 0; food sources
//     treat such an adjacency as degenerate.
package node

import (
	"fmt"
	"math"
)

// Node is a single location of a routing instance.
type Node struct {
	// ID identifies the node inside its instance. The depot is conventionally 0.
	ID int

	// X, Y are the grid coordinates.
	X, Y int

	// Depot marks the depot; depot occurrences separate vehicle sub-routes.
	Depot bool
}

// NewDepot returns the depot node at (x, y).
func NewDepot(id, x, y int) *Node {
	return &Node{ID: id, X: x, Y: y, Depot: true}
}

// NewCustomer returns a customer node at (x, y).
func NewCustomer(id, x, y int) *Node {
	return &Node{ID: id, X: x, Y: y}
}

// IsDepot reports whether n is the depot.
func (n *Node) IsDepot() bool { return n.Depot }

// String renders the node as "#<id>(x,y)"; the depot is prefixed with "D".
func (n *Node) String() string {
	if n.Depot {
		return fmt.Sprintf("D#%d(%d,%d)", n.ID, n.X, n.Y)
	}

	return fmt.Sprintf("#%d(%d,%d)", n.ID, n.X, n.Y)
}

// Distance returns the Euclidean distance between a and b.
// Deltas are taken on the integer grid and converted once, so the result is
// exact for Pythagorean triples (3-4-5 gives 5, not 4.999…).
//
// Complexity: O(1).
func Distance(a, b *Node) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	return math.Sqrt(float64(dx*dx + dy*dy))
}
