package euler_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/dynconn/euler"
	"github.com/stretchr/testify/require"
)

func newForest(t *testing.T, nodes ...string) *euler.Forest[string] {
	t.Helper()
	f := euler.New[string](rand.New(rand.NewSource(7)))
	for _, n := range nodes {
		require.NoError(t, f.CreateVertex(n))
	}
	return f
}

func assertConnected(t *testing.T, f *euler.Forest[string], u, v string, want bool) {
	t.Helper()
	got, err := f.Connected(u, v)
	require.NoError(t, err)
	require.Equal(t, want, got, "Connected(%s, %s)", u, v)
}

func TestLinkConnectsAndSizes(t *testing.T) {
	f := newForest(t, "a", "b", "c")
	require.NoError(t, f.Link("a", "b"))

	assertConnected(t, f, "a", "b", true)
	assertConnected(t, f, "a", "c", false)

	size, err := f.ComponentSize("a")
	require.NoError(t, err)
	require.Equal(t, 2, size)

	require.NoError(t, f.Link("b", "c"))
	assertConnected(t, f, "a", "c", true)
	size, err = f.ComponentSize("c")
	require.NoError(t, err)
	require.Equal(t, 3, size)
}

func TestLinkRejectsSelfLoopAndCycle(t *testing.T) {
	f := newForest(t, "a", "b")
	require.ErrorIs(t, f.Link("a", "a"), euler.ErrSelfLoop)

	require.NoError(t, f.Link("a", "b"))
	require.ErrorIs(t, f.Link("a", "b"), euler.ErrAlreadyConnected)
}

func TestCutSplitsComponent(t *testing.T) {
	f := newForest(t, "a", "b", "c")
	require.NoError(t, f.Link("a", "b"))
	require.NoError(t, f.Link("b", "c"))
	assertConnected(t, f, "a", "c", true)

	require.NoError(t, f.Cut("b", "c"))
	assertConnected(t, f, "a", "b", true)
	assertConnected(t, f, "a", "c", false)
	assertConnected(t, f, "b", "c", false)

	size, err := f.ComponentSize("c")
	require.NoError(t, err)
	require.Equal(t, 1, size)
}

func TestCutNoSuchEdge(t *testing.T) {
	f := newForest(t, "a", "b")
	require.ErrorIs(t, f.Cut("a", "b"), euler.ErrNoSuchEdge)
}

func TestCutInAChainEveryPosition(t *testing.T) {
	// a-b-c-d-e chain; cutting any of its edges, end edges included, must
	// separate the chain into exactly the two expected halves.
	ids := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < len(ids)-1; i++ {
		f := newForest(t, ids...)
		for j := 0; j < len(ids)-1; j++ {
			require.NoError(t, f.Link(ids[j], ids[j+1]))
		}
		require.NoError(t, f.Cut(ids[i], ids[i+1]))

		for a := 0; a <= i; a++ {
			for b := 0; b <= i; b++ {
				assertConnected(t, f, ids[a], ids[b], true)
			}
		}
		for a := i + 1; a < len(ids); a++ {
			for b := i + 1; b < len(ids); b++ {
				assertConnected(t, f, ids[a], ids[b], true)
			}
		}
		for a := 0; a <= i; a++ {
			for b := i + 1; b < len(ids); b++ {
				assertConnected(t, f, ids[a], ids[b], false)
			}
		}
	}
}

func TestLinkCutRoundTrip(t *testing.T) {
	f := newForest(t, "a", "b")
	require.NoError(t, f.Link("a", "b"))
	require.NoError(t, f.Cut("a", "b"))
	assertConnected(t, f, "a", "b", false)
	require.NoError(t, f.Link("a", "b"))
	assertConnected(t, f, "a", "b", true)
}

func TestFourCycleStaysOneComponent(t *testing.T) {
	f := newForest(t, "a", "b", "c", "d")
	require.NoError(t, f.Link("a", "b"))
	require.NoError(t, f.Link("b", "c"))
	require.NoError(t, f.Link("c", "d"))
	// a and d are already connected: closing the cycle is rejected.
	require.ErrorIs(t, f.Link("d", "a"), euler.ErrAlreadyConnected)

	require.Equal(t, 1, f.NumComponents())
	size, err := f.ComponentSize("a")
	require.NoError(t, err)
	require.Equal(t, 4, size)
}

func TestNodesInComponent(t *testing.T) {
	f := newForest(t, "a", "b", "c", "d")
	require.NoError(t, f.Link("a", "b"))
	require.NoError(t, f.Link("b", "c"))

	got, err := f.NodesInComponent("a")
	require.NoError(t, err)
	sort.Strings(got)
	require.Equal(t, []string{"a", "b", "c"}, got)

	got, err = f.NodesInComponent("d")
	require.NoError(t, err)
	require.Equal(t, []string{"d"}, got)
}

func TestMakeRootPreservesConnectivity(t *testing.T) {
	f := newForest(t, "a", "b", "c", "d")
	require.NoError(t, f.Link("a", "b"))
	require.NoError(t, f.Link("b", "c"))
	require.NoError(t, f.Link("c", "d"))

	require.NoError(t, f.MakeRoot("c"))
	assertConnected(t, f, "a", "d", true)
	size, err := f.ComponentSize("b")
	require.NoError(t, err)
	require.Equal(t, 4, size)
}

func TestRemoveVertexRequiresSingleton(t *testing.T) {
	f := newForest(t, "a", "b")
	require.NoError(t, f.Link("a", "b"))
	require.ErrorIs(t, f.RemoveVertex("a"), euler.ErrNotSingleton)

	require.NoError(t, f.Cut("a", "b"))
	require.NoError(t, f.RemoveVertex("a"))
	require.False(t, f.HasVertex("a"))
}

func TestManyRandomLinksAndCutsMatchNumComponents(t *testing.T) {
	n := 20
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	f := newForest(t, ids...)
	require.Equal(t, n, f.NumComponents())

	rng := rand.New(rand.NewSource(42))
	components := n
	var linked [][2]string
	for i := 0; i < 100; i++ {
		u, v := ids[rng.Intn(n)], ids[rng.Intn(n)]
		if u == v {
			continue
		}
		connected, _ := f.Connected(u, v)
		if connected {
			continue
		}
		require.NoError(t, f.Link(u, v))
		linked = append(linked, [2]string{u, v})
		components--
		require.Equal(t, components, f.NumComponents())
	}

	for _, e := range linked {
		require.NoError(t, f.Cut(e[0], e[1]))
		components++
		require.Equal(t, components, f.NumComponents())
	}
	require.Equal(t, n, f.NumComponents())
}
