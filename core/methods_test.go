// Package core_test verifies vertex indexing, edge semantics and cloning of core.Graph.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleNetwork builds the four-node network used throughout the repo.
func sampleNetwork(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	links := []struct {
		a, b string
		d    float64
	}{
		{"A", "B", 3}, {"A", "C", 4}, {"A", "D", 3},
		{"B", "C", 2}, {"B", "D", 1}, {"C", "D", 3},
	}
	for _, l := range links {
		_, err := g.AddEdge(l.a, l.b, l.d)
		require.NoError(t, err)
	}

	return g
}

// TestAddVertex_IndicesDenseAndStable checks 1-based registration indices and idempotency.
func TestAddVertex_IndicesDenseAndStable(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	// Re-registering A must not shift anything.
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("C"))

	for want, id := range []string{"A", "B", "C"} {
		idx, err := g.IndexOf(id)
		require.NoError(t, err)
		assert.Equal(t, want+1, idx, "index of %s", id)
	}
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

// TestAddVertex_Errors covers empty and unknown IDs.
func TestAddVertex_Errors(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))

	_, err := g.IndexOf("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.IndexOf("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Vertex("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestAddEdge_RegistersEndpointsInOrder verifies auto-registration follows (from, to).
func TestAddEdge_RegistersEndpointsInOrder(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("X", "Y", 2.5)
	require.NoError(t, err)
	_, err = g.AddEdge("Z", "X", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"X", "Y", "Z"}, g.Vertices())
	v, err := g.Vertex("Z")
	require.NoError(t, err)
	assert.Equal(t, 3, v.Index)
	assert.Equal(t, "Z", v.ID)
}

// TestAddEdge_Validation rejects loops and non-positive or non-finite distances.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	for _, d := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = g.AddEdge("A", "B", d)
		assert.ErrorIs(t, err, core.ErrBadWeight, "distance %v", d)
	}
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.VertexCount(), "rejected edges must not register vertices")
}

// TestDistance_Symmetric checks mirrored lookups and missing connections.
func TestDistance_Symmetric(t *testing.T) {
	g := sampleNetwork(t)

	d1, err := g.Distance("B", "D")
	require.NoError(t, err)
	d2, err := g.Distance("D", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d1)
	assert.Equal(t, d1, d2)
	assert.True(t, g.HasEdge("C", "A"))

	require.NoError(t, g.AddVertex("E"))
	_, err = g.Distance("A", "E")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("A", "E"))
	_, err = g.Distance("", "A")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestAddEdge_OverwriteKeepsIdentity re-adds a pair in reverse orientation.
func TestAddEdge_OverwriteKeepsIdentity(t *testing.T) {
	g := core.NewGraph()
	id1, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)
	id2, err := g.AddEdge("B", "A", 7)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, g.EdgeCount())
	d, err := g.Distance("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 7.0, d)
}

// TestNeighbors_RegistrationOrder lists neighbors by vertex index, not insertion of edges.
func TestNeighbors_RegistrationOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, _ = g.AddEdge("A", "D", 1)
	_, _ = g.AddEdge("A", "B", 1)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, nbs)

	nbs, err = g.Neighbors("C")
	require.NoError(t, err)
	assert.Empty(t, nbs)

	_, err = g.Neighbors("Q")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestEdges_NumericOrder makes sure "e10" sorts after "e9".
func TestEdges_NumericOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)), float64(i+1))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 11)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e9", edges[8].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e11", edges[10].ID)
}
