// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying
// weighted undirected graphs.
//
// This file declares Vertex, Edge, Graph, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that two vertices are not connected.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a distance that is not a finite positive number.
	ErrBadWeight = errors.New("core: distance must be finite and > 0")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Index is the dense 1-based registration position and never changes.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is assigned on first registration: 1 for the first vertex, 2 for the next, ...
	Index int
}

// Edge represents an undirected connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the endpoint given first to AddEdge.
	From string

	// To is the endpoint given second to AddEdge.
	To string

	// Weight is the distance between the endpoints.
	Weight float64
}

// Graph is the core in-memory graph data structure.
//
// muVert protects the vertex catalog and registration order;
// muEdgeAdj protects the edge catalog and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order, nextIndex
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextIndex  int                // last assigned vertex index
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // vertex IDs by Index-1
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[a][b] = edge ID, mirrored for b→a.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
