// Package core provides a thread-safe, in-memory, weighted undirected Graph
// used as the connectivity model for route search.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only: a link between A and B is usable both ways.
//   - Real-valued, strictly positive weights (distances).
//   - No self-loops, no parallel edges (re-adding a pair updates its distance).
//   - Dense 1-based vertex indices assigned in registration order.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency.
//
// Vertex indices:
//
//	The first AddVertex("A") assigns index 1, the next new id index 2, and so on.
//	Registration is idempotent: adding an id that is already present is a no-op
//	and never shifts an index. Indices come from an explicit counter, never from
//	the current catalog size.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1), idempotent
//	HasVertex(id string) bool            // O(1)
//	IndexOf(id string) (int, error)      // O(1), 1-based
//	Vertex(id string) (*Vertex, error)   // O(1)
//	Vertices() []string                  // O(V), registration order
//	VertexCount() int                    // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, distance float64) (edgeID string, err error) // O(1)
//	HasEdge(a, b string) bool            // O(1)
//	Distance(a, b string) (float64, error)// O(1), symmetric
//	Neighbors(id string) ([]string, error)// O(V), registration order
//	Edges() []*Edge                      // O(E·log E), by numeric edge id
//	EdgeCount() int                      // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – no connection between two vertices
//	ErrBadWeight      – distance is not a finite positive number
//	ErrLoopNotAllowed – from == to
package core
