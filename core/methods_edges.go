// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Distance/Neighbors/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric edge sequence ("e2" before "e10").
//   - Neighbors() follows vertex registration order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge connects from and to with the given distance and returns the edge ID.
//
// Steps:
//  1. Validate IDs, loops and distance (finite, > 0).
//  2. Ensure endpoints via AddVertex (registration order: from, then to).
//  3. Lock muEdgeAdj; if the pair is already connected, overwrite its distance
//     and return the existing ID.
//  4. Otherwise generate an ID, store the edge and mirror adjacency.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, distance float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance <= 0 {
		return "", fmt.Errorf("AddEdge(%q,%q,%g): %w", from, to, distance, ErrBadWeight)
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Existing connection: the latest distance wins, identity is kept.
	if eid, ok := g.adjacency[from][to]; ok {
		g.edges[eid].Weight = distance

		return eid, nil
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: distance}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether a and b are connected.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Distance returns the weight of the edge between a and b.
// The lookup is symmetric: Distance(a,b) == Distance(b,a).
// A missing connection yields an error wrapping ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Distance(a, b string) (float64, error) {
	if a == "" || b == "" {
		return 0, ErrEmptyVertexID
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[a][b]
	if !ok {
		return 0, fmt.Errorf("Distance(%q,%q): %w", a, b, ErrEdgeNotFound)
	}

	return g.edges[eid].Weight, nil
}

// Neighbors returns the IDs connected to id, in registration order.
// Returns ErrEmptyVertexID or a wrapped ErrVertexNotFound.
// Complexity: O(V).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	adj := g.adjacency[id]
	out := make([]string, 0, len(adj))
	for _, v := range g.order {
		if _, ok := adj[v]; ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// Edges returns all edges sorted by their numeric sequence.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	// "e" + decimal: shorter IDs are smaller numbers.
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID reserves the next textual edge ID ("e1","e2",...).
// Called under muEdgeAdj write lock.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
