// Package graph implements the arena-backed graph container Lattice
// operates on: nodes and edges with stable, generation-checked ids.
//
// Ids stay valid across structural mutation. Removing an entity tombstones
// its arena slot; the slot may later hold a new entity, but only under a
// higher generation, so lookups with a removed id return ok=false rather
// than aliasing. All lookup and mutation entry points are miss-tolerant:
// an unknown id is a no-op, never a panic.
package graph

import "github.com/lattice-viz/lattice/geom"

// Direction selects which incident edges to enumerate on a directed graph.
type Direction int

const (
	// Outgoing selects edges whose From endpoint is the node.
	Outgoing Direction = iota
	// Incoming selects edges whose To endpoint is the node.
	Incoming
)

type nodeSlot struct {
	node Node
	gen  uint32
	live bool
}

type edgeSlot struct {
	edge Edge
	gen  uint32
	live bool
}

// Graph is a mutable node/edge container. It is not safe for concurrent
// use; the frame model is strictly sequential (one owner per frame).
type Graph struct {
	directed bool

	nodes     []nodeSlot
	edges     []edgeSlot
	freeNodes []uint32
	freeEdges []uint32

	nodeCount int
	edgeCount int
}

// New creates an empty graph. directed controls edge endpoint semantics
// for Degree and EdgesDirected.
func New(directed bool) *Graph {
	return &Graph{directed: directed}
}

// Directed reports whether edge endpoint order is meaningful.
func (g *Graph) Directed() bool {
	return g.directed
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	return g.nodeCount
}

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// AddNode inserts a node and returns its id. Tombstoned slots are reused
// under a bumped generation.
func (g *Graph) AddNode(n Node) NodeID {
	if k := len(g.freeNodes); k > 0 {
		idx := g.freeNodes[k-1]
		g.freeNodes = g.freeNodes[:k-1]
		slot := &g.nodes[idx]
		slot.gen++
		slot.node = n
		slot.live = true
		g.nodeCount++
		return NodeID{Index: idx, Gen: slot.gen}
	}
	g.nodes = append(g.nodes, nodeSlot{node: n, live: true})
	g.nodeCount++
	return NodeID{Index: uint32(len(g.nodes) - 1)}
}

// AddEdge inserts an edge between two existing nodes. Returns ok=false if
// either endpoint is unknown.
func (g *Graph) AddEdge(from, to NodeID, label string, payload any) (EdgeID, bool) {
	if g.nodeSlot(from) == nil || g.nodeSlot(to) == nil {
		return EdgeID{}, false
	}
	e := Edge{From: from, To: to, Label: label, Payload: payload}
	if k := len(g.freeEdges); k > 0 {
		idx := g.freeEdges[k-1]
		g.freeEdges = g.freeEdges[:k-1]
		slot := &g.edges[idx]
		slot.gen++
		slot.edge = e
		slot.live = true
		g.edgeCount++
		return EdgeID{Index: idx, Gen: slot.gen}, true
	}
	g.edges = append(g.edges, edgeSlot{edge: e, live: true})
	g.edgeCount++
	return EdgeID{Index: uint32(len(g.edges) - 1)}, true
}

// RemoveNode tombstones a node and every edge incident to it.
func (g *Graph) RemoveNode(id NodeID) bool {
	slot := g.nodeSlot(id)
	if slot == nil {
		return false
	}
	for i := range g.edges {
		es := &g.edges[i]
		if es.live && (es.edge.From == id || es.edge.To == id) {
			es.live = false
			g.freeEdges = append(g.freeEdges, uint32(i))
			g.edgeCount--
		}
	}
	slot.live = false
	g.freeNodes = append(g.freeNodes, id.Index)
	g.nodeCount--
	return true
}

// RemoveEdge tombstones an edge.
func (g *Graph) RemoveEdge(id EdgeID) bool {
	slot := g.edgeSlot(id)
	if slot == nil {
		return false
	}
	slot.live = false
	g.freeEdges = append(g.freeEdges, id.Index)
	g.edgeCount--
	return true
}

// Node fetches a node by id. ok=false when the id is stale or unknown.
func (g *Graph) Node(id NodeID) (Node, bool) {
	slot := g.nodeSlot(id)
	if slot == nil {
		return Node{}, false
	}
	return slot.node, true
}

// Edge fetches an edge by id. ok=false when the id is stale or unknown.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	slot := g.edgeSlot(id)
	if slot == nil {
		return Edge{}, false
	}
	return slot.edge, true
}

// Endpoints returns the ordered endpoint pair of an edge.
func (g *Graph) Endpoints(id EdgeID) (from, to NodeID, ok bool) {
	slot := g.edgeSlot(id)
	if slot == nil {
		return NodeID{}, NodeID{}, false
	}
	return slot.edge.From, slot.edge.To, true
}

// EachNode visits every live node. The visit order is consistent within a
// single traversal but carries no meaning across frames. Returning false
// from fn stops the traversal.
func (g *Graph) EachNode(fn func(NodeID, Node) bool) {
	for i := range g.nodes {
		slot := &g.nodes[i]
		if !slot.live {
			continue
		}
		if !fn(NodeID{Index: uint32(i), Gen: slot.gen}, slot.node) {
			return
		}
	}
}

// EachEdge visits every live edge. Same ordering contract as EachNode.
func (g *Graph) EachEdge(fn func(EdgeID, Edge) bool) {
	for i := range g.edges {
		slot := &g.edges[i]
		if !slot.live {
			continue
		}
		if !fn(EdgeID{Index: uint32(i), Gen: slot.gen}, slot.edge) {
			return
		}
	}
}

// Degree counts edges incident to a node. On a directed graph incoming and
// outgoing edges are summed, so a self-loop counts twice; on an undirected
// graph every incident edge counts once.
func (g *Graph) Degree(id NodeID) int {
	if g.nodeSlot(id) == nil {
		return 0
	}
	count := 0
	for i := range g.edges {
		es := &g.edges[i]
		if !es.live {
			continue
		}
		if g.directed {
			if es.edge.From == id {
				count++
			}
			if es.edge.To == id {
				count++
			}
			continue
		}
		if es.edge.From == id || es.edge.To == id {
			count++
		}
	}
	return count
}

// EdgesDirected returns the ids of edges incident to a node in the given
// direction. On an undirected graph both directions yield all incident
// edges.
func (g *Graph) EdgesDirected(id NodeID, dir Direction) []EdgeID {
	if g.nodeSlot(id) == nil {
		return nil
	}
	var out []EdgeID
	for i := range g.edges {
		es := &g.edges[i]
		if !es.live {
			continue
		}
		match := false
		if g.directed {
			switch dir {
			case Outgoing:
				match = es.edge.From == id
			case Incoming:
				match = es.edge.To == id
			}
		} else {
			match = es.edge.From == id || es.edge.To == id
		}
		if match {
			out = append(out, EdgeID{Index: uint32(i), Gen: es.gen})
		}
	}
	return out
}

// SetNodePos moves a node to a new graph-space position.
func (g *Graph) SetNodePos(id NodeID, pos geom.Vec2) bool {
	slot := g.nodeSlot(id)
	if slot == nil {
		return false
	}
	slot.node.Pos = pos
	return true
}

// SetNodeSelected sets the persistent selection flag.
func (g *Graph) SetNodeSelected(id NodeID, selected bool) bool {
	slot := g.nodeSlot(id)
	if slot == nil {
		return false
	}
	slot.node.selected = selected
	return true
}

// SetNodeDragged sets the drag flag. The at-most-one-dragged invariant is
// maintained by the view controller, not here.
func (g *Graph) SetNodeDragged(id NodeID, dragged bool) bool {
	slot := g.nodeSlot(id)
	if slot == nil {
		return false
	}
	slot.node.dragged = dragged
	return true
}

func (g *Graph) nodeSlot(id NodeID) *nodeSlot {
	if int(id.Index) >= len(g.nodes) {
		return nil
	}
	slot := &g.nodes[id.Index]
	if !slot.live || slot.gen != id.Gen {
		return nil
	}
	return slot
}

func (g *Graph) edgeSlot(id EdgeID) *edgeSlot {
	if int(id.Index) >= len(g.edges) {
		return nil
	}
	slot := &g.edges[id.Index]
	if !slot.live || slot.gen != id.Gen {
		return nil
	}
	return slot
}
