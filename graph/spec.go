// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Spec is the declarative form of a graph. Its field tags are JSON tags;
// YAML documents are converted to JSON before decoding, so both formats
// share one schema.
type Spec struct {
	Vertices int            `json:"vertices"`
	Edges    []WeightedEdge `json:"edges"`
}

// Build constructs the graph described by s, adding edges in order.
func (s Spec) Build() (*Graph, error) {
	g, err := New(s.Vertices)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	for i, e := range s.Edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalidSpec, i, err)
		}
	}

	return g, nil
}

// Decode parses a YAML (or JSON) graph document and builds the graph.
// Every failure wraps ErrInvalidSpec.
func Decode(data []byte) (*Graph, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	return s.Build()
}

// Spec returns the declarative form of g. Building it yields a graph with the
// same Spec, though adjacency lists may interleave differently.
func (g *Graph) Spec() Spec {
	return Spec{Vertices: len(g.adj), Edges: g.Edges()}
}

// Encode renders g as a YAML document accepted by Decode.
func (g *Graph) Encode() ([]byte, error) {
	return yaml.Marshal(g.Spec())
}
