// Package aco_test - shared fixtures for the colony tests.
package aco_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/antroute/core"
	"github.com/stretchr/testify/require"
)

// link is one undirected connection of a fixture graph.
type link struct {
	a, b string
	d    float64
}

// sampleLinks is the four-node wireless network: best path A-D-B-C (cost 6).
var sampleLinks = []link{
	{"A", "B", 3}, {"A", "C", 4}, {"A", "D", 3},
	{"B", "C", 2}, {"B", "D", 1}, {"C", "D", 3},
}

// buildGraph registers ids first (fixing their order) and then links.
func buildGraph(t testing.TB, ids []string, links []link) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
	for _, l := range links {
		_, err := g.AddEdge(l.a, l.b, l.d)
		require.NoError(t, err)
	}

	return g
}

func sampleGraph(t testing.TB) *core.Graph {
	return buildGraph(t, []string{"A", "B", "C", "D"}, sampleLinks)
}

// requireHamiltonian asserts that path visits every id exactly once.
func requireHamiltonian(t *testing.T, ids, path []string) {
	t.Helper()
	require.Len(t, path, len(ids))
	require.ElementsMatch(t, ids, path)
}

// stubGraph is a hand-written Graph for contract violations.
type stubGraph struct {
	ids   []string
	index map[string]int
	dist  func(a, b string) (float64, error)
}

func (s stubGraph) Vertices() []string { return append([]string(nil), s.ids...) }

func (s stubGraph) IndexOf(id string) (int, error) {
	idx, ok := s.index[id]
	if !ok {
		return 0, core.ErrVertexNotFound
	}
	return idx, nil
}

func (s stubGraph) Distance(a, b string) (float64, error) { return s.dist(a, b) }

// circleGraph is a complete graph over n points on a slightly rippled circle,
// with Euclidean distances.
func circleGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	ids := make([]string, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("n%02d", i)
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + 0.05*float64(i%3)
		xs[i], ys[i] = r*math.Cos(th), r*math.Sin(th)
	}
	var links []link
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			links = append(links, link{ids[i], ids[j], math.Hypot(xs[i]-xs[j], ys[i]-ys[j])})
		}
	}

	return buildGraph(t, ids, links)
}
