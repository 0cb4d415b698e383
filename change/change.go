// Package change defines the notifications Lattice emits when interaction
// mutates graph data or the viewport, and the sink capability that carries
// them to subscribers.
//
// Every discrete mutation produces exactly one record; there is no
// batching, coalescing or filtering. Data mutations (selection, clicks,
// drags, moves) travel as Change records; viewport mutations (pan, zoom)
// travel as NavEvents and never touch node or edge data.
package change

import (
	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/graph"
)

// Kind tags the mutation a Change record describes.
type Kind int

const (
	// SelectionChanged: the node's selected flag flipped. Before/After are bools.
	SelectionChanged Kind = iota
	// Clicked: transient single-click on the node. No before/after values.
	Clicked
	// DoubleClicked: transient double-click on the node. No before/after values.
	// The first physical click of a double-click is delivered as an ordinary
	// Clicked beforehand; DoubleClicked is additional, never a replacement.
	DoubleClicked
	// DraggedChanged: the node's dragged flag flipped. Before/After are bools.
	DraggedChanged
	// LocationMoved: the node's position changed. Before/After are geom.Vec2.
	LocationMoved
)

func (k Kind) String() string {
	switch k {
	case SelectionChanged:
		return "selection_changed"
	case Clicked:
		return "clicked"
	case DoubleClicked:
		return "double_clicked"
	case DraggedChanged:
		return "dragged_changed"
	case LocationMoved:
		return "location_moved"
	default:
		return "unknown"
	}
}

// MarshalText makes Kind render as its name in JSON payloads.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Change is one discrete data mutation on a node.
type Change struct {
	Node   graph.NodeID `json:"node"`
	Kind   Kind         `json:"kind"`
	Before any          `json:"before,omitempty"`
	After  any          `json:"after,omitempty"`
}

// NewSelection builds a SelectionChanged record.
func NewSelection(id graph.NodeID, before, after bool) Change {
	return Change{Node: id, Kind: SelectionChanged, Before: before, After: after}
}

// NewClicked builds a Clicked record.
func NewClicked(id graph.NodeID) Change {
	return Change{Node: id, Kind: Clicked}
}

// NewDoubleClicked builds a DoubleClicked record.
func NewDoubleClicked(id graph.NodeID) Change {
	return Change{Node: id, Kind: DoubleClicked}
}

// NewDragged builds a DraggedChanged record.
func NewDragged(id graph.NodeID, before, after bool) Change {
	return Change{Node: id, Kind: DraggedChanged, Before: before, After: after}
}

// NewMoved builds a LocationMoved record.
func NewMoved(id graph.NodeID, before, after geom.Vec2) Change {
	return Change{Node: id, Kind: LocationMoved, Before: before, After: after}
}
