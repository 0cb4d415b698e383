package graph

import "github.com/lattice-viz/lattice/geom"

// NodeAt locates the node whose rendered circle contains the given
// graph-space point. radiusOf supplies the per-node radius computed for the
// current frame. When several circles overlap the point, the node whose
// center is closest wins. ok=false on a miss.
func (g *Graph) NodeAt(p geom.Vec2, radiusOf func(NodeID) float64) (NodeID, bool) {
	var (
		best     NodeID
		bestDist float64
		found    bool
	)
	g.EachNode(func(id NodeID, n Node) bool {
		dist := n.Pos.Sub(p).Len()
		if dist > radiusOf(id) {
			return true
		}
		if !found || dist < bestDist {
			best = id
			bestDist = dist
			found = true
		}
		return true
	})
	return best, found
}
