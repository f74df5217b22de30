package edgeset_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/dynconn/edgeset"
	"github.com/stretchr/testify/require"
)

func TestAddHasGetSymmetric(t *testing.T) {
	s := edgeset.New[string, string]()
	require.NoError(t, s.Add("a", "b", "fwd", "bwd"))

	require.True(t, s.Has("a", "b"))
	require.True(t, s.Has("b", "a"))

	fwd, ok := s.Get("a", "b")
	require.True(t, ok)
	require.Equal(t, "fwd", fwd)

	bwd, ok := s.Get("b", "a")
	require.True(t, ok)
	require.Equal(t, "bwd", bwd)
}

func TestAddRejectsSelfLoopAndDuplicate(t *testing.T) {
	s := edgeset.New[string, int]()
	require.ErrorIs(t, s.Add("a", "a", 1, 1), edgeset.ErrSelfLoop)

	require.NoError(t, s.Add("a", "b", 1, 2))
	require.ErrorIs(t, s.Add("a", "b", 3, 4), edgeset.ErrAlreadyPresent)
	require.ErrorIs(t, s.Add("b", "a", 3, 4), edgeset.ErrAlreadyPresent)
}

func TestDeleteRemovesBothDirections(t *testing.T) {
	s := edgeset.New[string, int]()
	require.NoError(t, s.Add("a", "b", 1, 2))
	s.Delete("a", "b")

	require.False(t, s.Has("a", "b"))
	require.False(t, s.Has("b", "a"))
	// Safe to re-add after deletion.
	require.NoError(t, s.Add("a", "b", 9, 10))
}

func TestIncidentNodes(t *testing.T) {
	s := edgeset.New[string, int]()
	s.AddNode("a")
	require.Empty(t, s.IncidentNodes("a"))

	require.NoError(t, s.Add("a", "b", 1, 1))
	require.NoError(t, s.Add("a", "c", 2, 2))

	got := s.IncidentNodes("a")
	sort.Strings(got)
	require.Equal(t, []string{"b", "c"}, got)
}

func TestEachVisitsBothDirections(t *testing.T) {
	s := edgeset.New[string, int]()
	require.NoError(t, s.Add("a", "b", 1, 2))

	var seen [][2]string
	s.Each(func(u, v string, val int) bool {
		seen = append(seen, [2]string{u, v})
		return true
	})
	require.Len(t, seen, 2)
}

func TestRemoveNode(t *testing.T) {
	s := edgeset.New[string, int]()
	s.AddNode("a")
	s.RemoveNode("a")
	require.Empty(t, s.IncidentNodes("a"))
}
