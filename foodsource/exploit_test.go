package foodsource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abcvrp/foodsource"
	"github.com/katalvlaran/abcvrp/node"
)

// TestExploitPair_Sequence walks improve → reject → neutral on the rectangle.
func TestExploitPair_Sequence(t *testing.T) {
	nodes := squareNodes()
	d, n1, n2, n3 := nodes[0], nodes[1], nodes[2], nodes[3]
	fs := mustNew(t, nodes, 1, 1)
	require.NoError(t, fs.SetRoute([]*node.Node{d, n2, n1, n3, d}))
	require.Equal(t, 18.0, fs.TotalDistanceStrict())
	fs.SetTrial(4)

	// Improvement: back to the 14-unit tour, trial reset.
	fit, err := fs.ExploitPair(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0/14.0, fit)
	assert.Equal(t, 1.0/14.0, fs.Fitness())
	assert.Zero(t, fs.Trial())
	assert.Equal(t, []*node.Node{d, n1, n2, n3, d}, fs.Route())

	// Same swap again would worsen: reverted, trial+1.
	fit, err = fs.ExploitPair(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0/14.0, fit)
	assert.Equal(t, 1, fs.Trial())
	assert.Equal(t, []*node.Node{d, n1, n2, n3, d}, fs.Route())

	// Self-swap: equal fitness, trial unchanged.
	fit, err = fs.ExploitPair(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0/14.0, fit)
	assert.Equal(t, 1, fs.Trial())
}

// TestExploitPair_AllPairs checks the acceptance rule against a clone for every
// interior pair.
func TestExploitPair_AllPairs(t *testing.T) {
	base := mustNew(t, gridNodes(6), 1, 1)
	base.Randomize(foodsource.NewRand(seedDet))
	base.SetTrial(3)
	span := base.Len() - 2

	for i := 1; i <= span; i++ {
		for j := 1; j <= span; j++ {
			fs := base.Clone()
			old := fs.ComputeFitness()

			twin := fs.Clone()
			require.NoError(t, twin.Swap(i, j))
			swapped := twin.ComputeFitness()

			fit, err := fs.ExploitPair(i, j)
			require.NoError(t, err)
			require.GreaterOrEqual(t, fit, old, "(%d,%d) fitness must not drop", i, j)
			require.Equal(t, fit, fs.Fitness())

			switch {
			case swapped < old:
				require.Equal(t, base.Route(), fs.Route(), "(%d,%d) must revert", i, j)
				require.Equal(t, 4, fs.Trial())
			case swapped > old:
				require.Equal(t, twin.Route(), fs.Route())
				require.Zero(t, fs.Trial())
			default:
				require.Equal(t, twin.Route(), fs.Route())
				require.Equal(t, 3, fs.Trial())
			}
		}
	}
}

func TestExploitPair_OutOfRange(t *testing.T) {
	fs := mustNew(t, squareNodes(), 1, 1)
	fs.SetTrial(2)
	before := fs.Route()

	for _, p := range [][2]int{{0, 1}, {1, 4}, {-1, 2}, {2, 9}} {
		_, err := fs.ExploitPair(p[0], p[1])
		require.ErrorIs(t, err, foodsource.ErrIndexOutOfRange, "%v", p)
	}
	assert.Equal(t, before, fs.Route())
	assert.Equal(t, 2, fs.Trial())
	assert.Zero(t, fs.Fitness())
}

// TestExploit_Monotone runs many random steps; fitness never decreases and the
// anchors and node multiset are preserved.
func TestExploit_Monotone(t *testing.T) {
	fs := mustNew(t, gridNodes(9), 2, 1)
	fs.Randomize(foodsource.NewRand(seedDet))
	want := counts(fs.Route())
	rng := foodsource.NewRand(seedDet)

	prev := fs.ComputeFitness()
	for step := 0; step < 500; step++ {
		fit := fs.Exploit(rng)
		require.GreaterOrEqual(t, fit, prev, "step %d", step)
		prev = fit

		route := fs.Route()
		require.True(t, route[0].IsDepot())
		require.True(t, route[len(route)-1].IsDepot())
	}
	assert.Equal(t, want, counts(fs.Route()))
}

func TestExploit_Deterministic(t *testing.T) {
	run := func() []*node.Node {
		fs := mustNew(t, gridNodes(7), 1, 3)
		rng := foodsource.NewRand(seedDet)
		for k := 0; k < 50; k++ {
			fs.Exploit(rng)
		}
		return fs.Route()
	}
	assert.Equal(t, run(), run())
}

// TestExploit_NilRNG uses the per-id stream; equal ids replay equally.
func TestExploit_NilRNG(t *testing.T) {
	nodes := gridNodes(7)
	a := mustNew(t, nodes, 1, 5)
	b := mustNew(t, nodes, 1, 5)
	for k := 0; k < 30; k++ {
		a.Exploit(nil)
		b.Exploit(nil)
	}
	assert.Equal(t, a.Route(), b.Route())
	assert.Equal(t, a.Trial(), b.Trial())
}

// TestExploit_NoInterior: one node, one vehicle gives [D, D].
func TestExploit_NoInterior(t *testing.T) {
	rec := &recorder{}
	d := node.NewDepot(0, 0, 0)
	fs := mustNew(t, []*node.Node{d}, 1, 1, foodsource.WithObserver(rec))
	require.Equal(t, 2, fs.Len())

	fit := fs.Exploit(foodsource.NewRand(seedDet))
	assert.Equal(t, 0.0, fit, "[D, D] is degenerate")
	assert.Zero(t, fs.Trial())
	require.Len(t, rec.events, 1)
	assert.Equal(t, foodsource.OutcomeNeutral, rec.events[0].Outcome)

	fs.Randomize(nil)
	assert.Equal(t, []*node.Node{d, d}, fs.Route())
}

// TestExploit_DrawsThenSwaps replays Exploit as two interior draws followed by
// ExploitPair on a twin source.
func TestExploit_DrawsThenSwaps(t *testing.T) {
	a := mustNew(t, gridNodes(7), 2, 1)
	a.Randomize(foodsource.NewRand(seedDet))
	b := a.Clone()

	rng := foodsource.NewRand(seedDet)
	ref := foodsource.NewRand(seedDet)
	span := a.Len() - 2
	for k := 0; k < 40; k++ {
		got := a.Exploit(rng)
		i, j := 1+ref.Intn(span), 1+ref.Intn(span)
		want, err := b.ExploitPair(i, j)
		require.NoError(t, err)
		require.Equal(t, want, got, "step %d", k)
		require.Equal(t, b.Trial(), a.Trial(), "step %d", k)
	}
	assert.Equal(t, b.Route(), a.Route())
}

// TestExploit_OwnStreamIsKeyedByID: a nil rng behaves like DeriveRand(nil, id).
func TestExploit_OwnStreamIsKeyedByID(t *testing.T) {
	nodes := gridNodes(7)
	own := mustNew(t, nodes, 1, 12)
	explicit := mustNew(t, nodes, 1, 12)
	rng := foodsource.DeriveRand(nil, 12)

	for k := 0; k < 25; k++ {
		own.Exploit(nil)
		explicit.Exploit(rng)
	}
	assert.Equal(t, explicit.Route(), own.Route())
}
