// Package document loads and persists declarative graph documents: node and
// edge specs in TOML or YAML, built into live graphs, with a SQLite store
// for documents and per-surface viewports.
package document

import (
	"github.com/lattice-viz/lattice/errors"
	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/graph"
)

// NodeSpec declares one node. Name is the document-scoped handle edges
// reference; it never leaves the document layer.
type NodeSpec struct {
	Name  string    `toml:"name" yaml:"name" json:"name"`
	Pos   geom.Vec2 `toml:"pos" yaml:"pos" json:"pos"`
	Label string    `toml:"label,omitempty" yaml:"label,omitempty" json:"label,omitempty"`
}

// EdgeSpec declares one edge between named nodes.
type EdgeSpec struct {
	From  string `toml:"from" yaml:"from" json:"from"`
	To    string `toml:"to" yaml:"to" json:"to"`
	Label string `toml:"label,omitempty" yaml:"label,omitempty" json:"label,omitempty"`
}

// Document is a declarative graph description.
type Document struct {
	Name     string     `toml:"name" yaml:"name" json:"name"`
	Directed bool       `toml:"directed" yaml:"directed" json:"directed"`
	Nodes    []NodeSpec `toml:"nodes" yaml:"nodes" json:"nodes"`
	Edges    []EdgeSpec `toml:"edges" yaml:"edges" json:"edges"`
}

// Build materializes the document into a graph. Node names must be unique
// and every edge endpoint must name a declared node.
func (d *Document) Build() (*graph.Graph, error) {
	g := graph.New(d.Directed)

	ids := make(map[string]graph.NodeID, len(d.Nodes))
	for _, spec := range d.Nodes {
		if spec.Name == "" {
			return nil, errors.WithMessage(errors.ErrInvalidDocument, "node with empty name")
		}
		if _, dup := ids[spec.Name]; dup {
			return nil, errors.WithMessagef(errors.ErrInvalidDocument, "duplicate node name %q", spec.Name)
		}
		ids[spec.Name] = g.AddNode(graph.NewNode(spec.Pos, spec.Label, nil))
	}

	for _, spec := range d.Edges {
		from, ok := ids[spec.From]
		if !ok {
			return nil, errors.WithMessagef(errors.ErrInvalidDocument, "edge references unknown node %q", spec.From)
		}
		to, ok := ids[spec.To]
		if !ok {
			return nil, errors.WithMessagef(errors.ErrInvalidDocument, "edge references unknown node %q", spec.To)
		}
		if _, ok := g.AddEdge(from, to, spec.Label, nil); !ok {
			return nil, errors.WithMessagef(errors.ErrInvalidDocument, "edge %q -> %q rejected", spec.From, spec.To)
		}
	}

	return g, nil
}
