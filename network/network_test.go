package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antroute/core"
	"github.com/katalvlaran/antroute/network"
)

func TestLoadAndBuild_Office(t *testing.T) {
	spec, err := network.Load("testdata/office.toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"relay"}, spec.Nodes)
	assert.Equal(t, 6.0, spec.Range)
	require.Len(t, spec.Positions, 4)
	assert.Equal(t, network.Position{ID: "ap2", X: 3, Y: 4}, spec.Positions[1])
	require.Len(t, spec.Links, 3)
	assert.Equal(t, network.Link{From: "relay", To: "ap4", Distance: 2.5}, spec.Links[0])

	g, err := network.Build(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"relay", "ap1", "ap2", "ap3", "ap4"}, g.Vertices())

	// Derived within range, explicit link overrides it.
	d, err := g.Distance("ap1", "ap2")
	require.NoError(t, err)
	assert.Equal(t, 4.5, d)
	d, err = g.Distance("ap3", "ap2")
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	// Out of range.
	assert.False(t, g.HasEdge("ap1", "ap3"))
	assert.False(t, g.HasEdge("ap2", "ap4"))
	assert.Equal(t, 4, g.EdgeCount())

	connected, err := network.Connected(g)
	require.NoError(t, err)
	assert.True(t, connected)
	assert.False(t, network.Complete(g))
	lb, err := network.LowerBound(g)
	require.NoError(t, err)
	assert.Equal(t, 19.0, lb)
}

func TestLoad_Errors(t *testing.T) {
	_, err := network.Load("testdata/missing.toml")
	require.Error(t, err)

	_, err = network.Load("testdata/broken.toml")
	require.Error(t, err)
}

func TestBuild_Sample(t *testing.T) {
	g, err := network.Build(network.Sample())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, network.Complete(g))
	connected, err := network.Connected(g)
	require.NoError(t, err)
	assert.True(t, connected)

	d, err := g.Distance("D", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	// B-D, B-C and one of the 3-links: the optimum route costs the same.
	lb, err := network.LowerBound(g)
	require.NoError(t, err)
	assert.Equal(t, 6.0, lb)

	leaves, err := network.Leaves(g)
	require.NoError(t, err)
	assert.Empty(t, leaves)
}

func TestBuild_AllPairsWithoutRange(t *testing.T) {
	g, err := network.Build(network.Spec{Positions: []network.Position{
		{ID: "a", X: 0, Y: 0}, {ID: "b", X: 100, Y: 0}, {ID: "c", X: 0, Y: 1},
	}})
	require.NoError(t, err)
	assert.True(t, network.Complete(g))
	d, err := g.Distance("b", "c")
	require.NoError(t, err)
	assert.InDelta(t, math.Hypot(100, 1), d, 1e-12)
}

func TestBuild_Errors(t *testing.T) {
	_, err := network.Build(network.Spec{Range: -1})
	require.ErrorIs(t, err, network.ErrInvalidSpec)

	_, err = network.Build(network.Spec{Range: math.NaN()})
	require.ErrorIs(t, err, network.ErrInvalidSpec)

	_, err = network.Build(network.Spec{Positions: []network.Position{{ID: "a"}, {ID: "a", X: 1}}})
	require.ErrorIs(t, err, network.ErrInvalidSpec)

	// Coincident positions would need a zero distance.
	_, err = network.Build(network.Spec{Positions: []network.Position{{ID: "a"}, {ID: "b"}}})
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = network.Build(network.Spec{Links: []network.Link{{From: "a", To: "a", Distance: 1}}})
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = network.Build(network.Spec{Links: []network.Link{{From: "a", To: "b", Distance: -2}}})
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = network.Build(network.Spec{Nodes: []string{""}})
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestComponents(t *testing.T) {
	g, err := network.Build(network.Spec{
		Nodes: []string{"x", "a", "y", "b", "lonely"},
		Links: []network.Link{
			{From: "b", To: "a", Distance: 1},
			{From: "y", To: "x", Distance: 2},
		},
	})
	require.NoError(t, err)

	comps, err := network.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "y"}, {"a", "b"}, {"lonely"}}, comps)
	connected, err := network.Connected(g)
	require.NoError(t, err)
	assert.False(t, connected)
	assert.False(t, network.Complete(g))

	empty := core.NewGraph()
	comps, err = network.Components(empty)
	require.NoError(t, err)
	assert.Nil(t, comps)
	connected, err = network.Connected(empty)
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestLeaves(t *testing.T) {
	// Star: the hub links three leaves, so no route can visit them all.
	g, err := network.Build(network.Spec{
		Links: []network.Link{
			{From: "hub", To: "l1", Distance: 1},
			{From: "hub", To: "l2", Distance: 1},
			{From: "l3", To: "hub", Distance: 1},
		},
	})
	require.NoError(t, err)
	leaves, err := network.Leaves(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2", "l3"}, leaves)

	connected, err := network.Connected(g)
	require.NoError(t, err)
	assert.True(t, connected)
	lb, err := network.LowerBound(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, lb)
}
