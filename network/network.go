// Package network describes a wireless network and turns it into a core.Graph.
//
// A description lists nodes and symmetric links explicitly, or gives node
// positions and a radio range: every pair of positioned nodes closer than the
// range is linked with their Euclidean distance. Explicit links win over
// derived ones.
//
// Descriptions are stored as TOML:
//
//	nodes = ["A", "B", "C"]
//	range = 0
//
//	[[links]]
//	from = "A"
//	to = "B"
//	distance = 3
//
//	[[positions]]
//	id = "C"
//	x = 1.5
//	y = 2
package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/antroute/core"
)

// ErrInvalidSpec is returned for descriptions Build cannot turn into a graph.
var ErrInvalidSpec = errors.New("network: invalid description")

// Spec is a network description.
type Spec struct {
	Nodes     []string   `koanf:"nodes"`
	Links     []Link     `koanf:"links"`
	Positions []Position `koanf:"positions"`

	// Range limits derived links to pairs at most Range apart; 0 links every
	// positioned pair.
	Range float64 `koanf:"range"`
}

// Link is a symmetric connection.
type Link struct {
	From     string  `koanf:"from"`
	To       string  `koanf:"to"`
	Distance float64 `koanf:"distance"`
}

// Position places a node in the plane.
type Position struct {
	ID string  `koanf:"id"`
	X  float64 `koanf:"x"`
	Y  float64 `koanf:"y"`
}

// Load reads a TOML description from path.
func Load(path string) (Spec, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Spec{}, fmt.Errorf("network: load %s: %w", path, err)
	}

	var s Spec
	if err := k.Unmarshal("", &s); err != nil {
		return Spec{}, fmt.Errorf("network: decode %s: %w", path, err)
	}

	return s, nil
}

// Build registers the nodes of s in listed order, then positioned nodes, then
// link endpoints in first-seen order, and adds every link.
//
// Errors: ErrInvalidSpec for a negative or non-finite range and duplicate
// positions; core errors (wrapped) for bad IDs, self-links or distances.
func Build(s Spec) (*core.Graph, error) {
	if math.IsNaN(s.Range) || math.IsInf(s.Range, 0) || s.Range < 0 {
		return nil, fmt.Errorf("%w: range %g", ErrInvalidSpec, s.Range)
	}

	g := core.NewGraph()
	for _, id := range s.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("network: node %q: %w", id, err)
		}
	}

	seen := make(map[string]bool, len(s.Positions))
	for _, p := range s.Positions {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: node %q positioned twice", ErrInvalidSpec, p.ID)
		}
		seen[p.ID] = true
		if err := g.AddVertex(p.ID); err != nil {
			return nil, fmt.Errorf("network: position %q: %w", p.ID, err)
		}
	}

	for i, a := range s.Positions {
		for _, b := range s.Positions[i+1:] {
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if s.Range > 0 && d > s.Range {
				continue
			}
			if _, err := g.AddEdge(a.ID, b.ID, d); err != nil {
				return nil, fmt.Errorf("network: derived link %q-%q: %w", a.ID, b.ID, err)
			}
		}
	}

	for _, l := range s.Links {
		if _, err := g.AddEdge(l.From, l.To, l.Distance); err != nil {
			return nil, fmt.Errorf("network: link %q-%q: %w", l.From, l.To, err)
		}
	}

	return g, nil
}

// Sample is the four-node network A-D used when no description is given.
func Sample() Spec {
	return Spec{
		Nodes: []string{"A", "B", "C", "D"},
		Links: []Link{
			{From: "A", To: "B", Distance: 3},
			{From: "A", To: "C", Distance: 4},
			{From: "A", To: "D", Distance: 3},
			{From: "B", To: "C", Distance: 2},
			{From: "B", To: "D", Distance: 1},
			{From: "C", To: "D", Distance: 3},
		},
	}
}
