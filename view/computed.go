package view

import (
	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/graph"
)

// Computed is the ephemeral per-frame state derived from the graph: node
// radii, the aggregate bounding box, the selected set and the (at most
// one) dragged node. It is rebuilt from scratch every frame because the
// graph may have been mutated externally since the last one.
type Computed struct {
	radii map[graph.NodeID]float64

	bounds    geom.Rect
	boundsSet bool

	// Selected holds the ids of every node with the selected flag, in
	// traversal order.
	Selected []graph.NodeID

	// Dragged is the node being dragged, valid only when HasDragged.
	Dragged    graph.NodeID
	HasDragged bool
}

// Compute derives the frame state in two passes: geometry (radius and
// bounding box), then interaction flags (selected set, dragged id).
func Compute(g *graph.Graph, style SettingsStyle) *Computed {
	c := &Computed{radii: make(map[graph.NodeID]float64, g.NodeCount())}

	g.EachNode(func(id graph.NodeID, n graph.Node) bool {
		r := style.NodeRadius + style.EdgeRadiusWeight*float64(g.Degree(id))
		c.radii[id] = r

		box := geom.Rect{Min: n.Pos, Max: n.Pos}.Expand(r)
		if style.LabelsVisible {
			box.Max.X += style.LabelCharWidth * float64(len(n.Label))
		}
		if !c.boundsSet {
			c.bounds = box
			c.boundsSet = true
		} else {
			c.bounds = c.bounds.Union(box)
		}
		return true
	})

	g.EachNode(func(id graph.NodeID, n graph.Node) bool {
		if n.Selected() {
			c.Selected = append(c.Selected, id)
		}
		if n.Dragged() && !c.HasDragged {
			c.Dragged = id
			c.HasDragged = true
		}
		return true
	})

	return c
}

// Radius returns the frame radius computed for a node; zero for ids not
// seen this frame.
func (c *Computed) Radius(id graph.NodeID) float64 {
	return c.radii[id]
}

// GraphBounds returns the bounding box over all node positions inflated by
// radius (and label extent when visible). For an empty graph it is the
// degenerate zero rect; fit-to-screen substitutes a fallback extent.
func (c *Computed) GraphBounds() geom.Rect {
	return c.bounds
}
