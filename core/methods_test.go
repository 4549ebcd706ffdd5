package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sixdegrees/core"
)

// TestGraph_AddVertexValidation verifies ID validation and idempotency.
func TestGraph_AddVertexValidation(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(core.Actor("")), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddVertex(core.NodeID{Name: "x"}), core.ErrBadKind)
	require.ErrorIs(t, g.AddVertex(core.NodeID{Kind: 9, Name: "x"}), core.ErrBadKind)

	require.NoError(t, g.AddVertex(core.Actor("Alice")))
	require.NoError(t, g.AddVertex(core.Actor("Alice")))
	require.Equal(t, 1, g.VertexCount())
	require.True(t, g.HasVertex(core.Actor("Alice")))
	require.False(t, g.HasVertex(core.Movie("Alice")))
}

// TestGraph_KindCollision ensures a title and a name sharing one string stay distinct.
func TestGraph_KindCollision(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(core.Movie("Heat"), core.Actor("Heat"))
	require.NoError(t, err)

	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, core.Stats{Movies: 1, Actors: 1, Edges: 1}, g.Stats())
	require.Equal(t, []string{"Heat"}, g.Names(core.KindMovie))
	require.Equal(t, []string{"Heat"}, g.Names(core.KindActor))
}

// TestGraph_AddEdgeConstraints covers same-kind rejection and idempotent inserts.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(core.Actor("A"), core.Actor("B"))
	require.ErrorIs(t, err, core.ErrSameKind)
	_, err = g.AddEdge(core.Movie("M"), core.Movie("M"))
	require.ErrorIs(t, err, core.ErrSameKind)
	_, err = g.AddEdge(core.Movie(""), core.Actor("B"))
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	require.Zero(t, g.VertexCount(), "failed inserts must not create vertices")

	added, err := g.AddEdge(core.Movie("M"), core.Actor("A"))
	require.NoError(t, err)
	require.True(t, added)

	// Repeat in both orientations: still a single edge.
	added, err = g.AddEdge(core.Movie("M"), core.Actor("A"))
	require.NoError(t, err)
	require.False(t, added)
	added, err = g.AddEdge(core.Actor("A"), core.Movie("M"))
	require.NoError(t, err)
	require.False(t, added)

	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge(core.Actor("A"), core.Movie("M")))
	require.True(t, g.HasEdge(core.Movie("M"), core.Actor("A")))
	require.False(t, g.HasEdge(core.Movie("M"), core.Actor("Z")))
}

// TestGraph_NeighborOrder checks deterministic neighbor ordering and errors.
func TestGraph_NeighborOrder(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"Carol", "Alice", "Bob"} {
		_, err := g.AddEdge(core.Movie("M"), core.Actor(name))
		require.NoError(t, err)
	}

	want := []core.NodeID{core.Actor("Alice"), core.Actor("Bob"), core.Actor("Carol")}
	got, err := g.NeighborIDs(core.Movie("M"))
	require.NoError(t, err)
	require.Equal(t, want, got)

	g.Freeze()
	got, err = g.NeighborIDs(core.Movie("M"))
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Caller owns the returned slice.
	got[0] = core.Actor("Mallory")
	again, _ := g.NeighborIDs(core.Movie("M"))
	require.Equal(t, want, again)

	_, err = g.NeighborIDs(core.Movie("missing"))
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(core.NodeID{Name: "M"})
	require.ErrorIs(t, err, core.ErrBadKind)
}

// TestGraph_RangeNeighborsStops verifies early termination.
func TestGraph_RangeNeighborsStops(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{"A", "B", "C"} {
		_, _ = g.AddEdge(core.Movie("M"), core.Actor(name))
	}

	var seen []string
	err := g.RangeNeighbors(core.Movie("M"), func(nbr core.NodeID) bool {
		seen = append(seen, nbr.Name)
		return len(seen) < 2
	})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, seen)
}

// TestGraph_Freeze ensures a frozen graph rejects every mutation.
func TestGraph_Freeze(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	_, _ = g.AddEdge(core.Movie("M"), core.Actor("A"))
	require.False(t, g.Frozen())

	g.Freeze()
	g.Freeze()
	require.True(t, g.Frozen())

	require.ErrorIs(t, g.AddVertex(core.Actor("B")), core.ErrFrozen)
	_, err := g.AddEdge(core.Movie("M"), core.Actor("B"))
	require.ErrorIs(t, err, core.ErrFrozen)
	// An existing edge is still rejected: the graph is sealed, not merely deduplicated.
	_, err = g.AddEdge(core.Movie("M"), core.Actor("A"))
	require.ErrorIs(t, err, core.ErrFrozen)
	require.Equal(t, 2, g.VertexCount())
}

// TestGraph_QueriesAndDegree covers Vertices, Names and Degree.
func TestGraph_QueriesAndDegree(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(core.Movie("M1"), core.Actor("B"))
	_, _ = g.AddEdge(core.Movie("M1"), core.Actor("A"))
	_, _ = g.AddEdge(core.Movie("M2"), core.Actor("A"))

	require.Equal(t, []core.NodeID{
		core.Movie("M1"), core.Movie("M2"), core.Actor("A"), core.Actor("B"),
	}, g.Vertices())
	require.Equal(t, []string{"A", "B"}, g.Names(core.KindActor))
	require.Equal(t, []string{"M1", "M2"}, g.Names(core.KindMovie))
	require.Empty(t, g.Names(core.Kind(0)))

	d, err := g.Degree(core.Actor("A"))
	require.NoError(t, err)
	require.Equal(t, 2, d)
	d, err = g.Degree(core.Movie("M1"))
	require.NoError(t, err)
	require.Equal(t, 2, d)
	_, err = g.Degree(core.Actor("Z"))
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestNodeID_Helpers covers Kind/NodeID formatting and ordering.
func TestNodeID_Helpers(t *testing.T) {
	require.Equal(t, "movie", core.KindMovie.String())
	require.Equal(t, "actor", core.KindActor.String())
	require.Equal(t, "unknown", core.Kind(0).String())
	require.Equal(t, "actor:Kevin Bacon", core.Actor("Kevin Bacon").String())
	require.True(t, core.Movie("x").IsMovie())
	require.True(t, core.Actor("x").IsActor())

	require.Negative(t, core.CompareNodeIDs(core.Movie("z"), core.Actor("a")))
	require.Positive(t, core.CompareNodeIDs(core.Actor("b"), core.Actor("a")))
	require.Zero(t, core.CompareNodeIDs(core.Actor("a"), core.Actor("a")))
}
