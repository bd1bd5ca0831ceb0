package foodsource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abcvrp/foodsource"
	"github.com/katalvlaran/abcvrp/node"
)

const seedDet = int64(42)

// squareNodes returns the depot at (0,0) and three customers on the corners
// of a 4×3 rectangle. The tour D→1→2→3→D has length 3+4+4+3 = 14.
func squareNodes() []*node.Node {
	return []*node.Node{
		node.NewDepot(0, 0, 0),
		node.NewCustomer(1, 0, 3),
		node.NewCustomer(2, 4, 3),
		node.NewCustomer(3, 4, 0),
	}
}

// gridNodes returns a depot plus n customers on distinct grid points.
func gridNodes(n int) []*node.Node {
	out := make([]*node.Node, 0, n+1)
	out = append(out, node.NewDepot(0, 0, 0))
	for i := 1; i <= n; i++ {
		out = append(out, node.NewCustomer(i, (i*7)%11+1, (i*5)%13+1))
	}
	return out
}

func mustNew(t *testing.T, nodes []*node.Node, vehicles, id int, opts ...foodsource.Option) *foodsource.FoodSource {
	t.Helper()
	fs, err := foodsource.New(nodes, vehicles, id, opts...)
	require.NoError(t, err)
	return fs
}

// counts returns how often each node pointer occurs in route.
func counts(route []*node.Node) map[*node.Node]int {
	m := make(map[*node.Node]int, len(route))
	for _, n := range route {
		m[n]++
	}
	return m
}

// recorder collects observed events.
type recorder struct{ events []foodsource.Event }

func (r *recorder) Observe(e foodsource.Event) { r.events = append(r.events, e) }
