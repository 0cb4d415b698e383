package graph

import (
	"fmt"

	"github.com/lattice-viz/lattice/geom"
)

// NodeID identifies a node for the lifetime of a session. The generation
// field guards against slot reuse: removing a node tombstones its slot, and
// any id minted for a later occupant carries a higher generation, so a stale
// id fails lookup instead of aliasing the new node.
type NodeID struct {
	Index uint32 `json:"index"`
	Gen   uint32 `json:"gen"`
}

func (id NodeID) String() string {
	return fmt.Sprintf("n%d@%d", id.Index, id.Gen)
}

// EdgeID identifies an edge, with the same generation guarantee as NodeID.
type EdgeID struct {
	Index uint32 `json:"index"`
	Gen   uint32 `json:"gen"`
}

func (id EdgeID) String() string {
	return fmt.Sprintf("e%d@%d", id.Index, id.Gen)
}

// Node is a graph entity with a position in graph-space coordinates and an
// opaque client payload. The interaction flags are owned by the view
// controller; clients read them through Selected and Dragged.
type Node struct {
	Pos     geom.Vec2
	Label   string
	Payload any

	selected bool
	dragged  bool
}

// NewNode creates a node at the given graph-space position.
func NewNode(pos geom.Vec2, label string, payload any) Node {
	return Node{Pos: pos, Label: label, Payload: payload}
}

// Selected reports the persistent selection flag.
func (n Node) Selected() bool {
	return n.selected
}

// Dragged reports whether the node is currently being dragged.
func (n Node) Dragged() bool {
	return n.dragged
}

// Edge connects two nodes. The endpoint order is meaningful only when the
// owning graph is directed. Edges carry no interaction flags.
type Edge struct {
	From    NodeID
	To      NodeID
	Label   string
	Payload any
}
