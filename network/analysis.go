package network

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/antroute/core"
)

// toGonum mirrors g as a gonum weighted undirected graph. Node IDs are the
// core indices.
func toGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, error) {
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		wg.AddNode(simple.Node(v.Index))
	}
	for _, e := range g.Edges() {
		from, err := g.IndexOf(e.From)
		if err != nil {
			return nil, err
		}
		to, err := g.IndexOf(e.To)
		if err != nil {
			return nil, err
		}
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(from), simple.Node(to), e.Weight))
	}

	return wg, nil
}

// Components returns the connected components of g. Each component lists its
// nodes in registration order; components are ordered by their first node.
func Components(g *core.Graph) ([][]string, error) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, nil
	}
	wg, err := toGonum(g)
	if err != nil {
		return nil, err
	}

	cc := topo.ConnectedComponents(wg)
	byIndex := make([][]int, 0, len(cc))
	for _, comp := range cc {
		idx := make([]int, len(comp))
		for k, n := range comp {
			idx[k] = int(n.ID())
		}
		sort.Ints(idx)
		byIndex = append(byIndex, idx)
	}
	sort.Slice(byIndex, func(a, b int) bool { return byIndex[a][0] < byIndex[b][0] })

	out := make([][]string, 0, len(byIndex))
	for _, idx := range byIndex {
		names := make([]string, len(idx))
		for k, i := range idx {
			names[k] = ids[i-1]
		}
		out = append(out, names)
	}

	return out, nil
}

// Connected reports whether g has exactly one connected component.
// A graph with at least two components has no Hamiltonian path.
func Connected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) == 1, nil
}

// Complete reports whether every pair of distinct nodes is linked.
func Complete(g *core.Graph) bool {
	n := g.VertexCount()
	return g.EdgeCount() == n*(n-1)/2
}

// Leaves returns the nodes with exactly one link, in registration order.
// A leaf can only be the first or last stop of a route, so more than two
// leaves rule out any Hamiltonian path.
//
// Complexity: O(V²).
func Leaves(g *core.Graph) ([]string, error) {
	var out []string
	for _, id := range g.Vertices() {
		nbs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("network: leaves: %w", err)
		}
		if len(nbs) == 1 {
			out = append(out, id)
		}
	}

	return out, nil
}

// LowerBound returns the weight of a minimum spanning tree (forest, when g is
// disconnected). Every Hamiltonian path is a spanning tree, so no route over g
// can be cheaper.
//
// Complexity: O(E log E).
func LowerBound(g *core.Graph) (float64, error) {
	wg, err := toGonum(g)
	if err != nil {
		return 0, err
	}

	return path.Kruskal(simple.NewWeightedUndirectedGraph(0, 0), wg), nil
}
