package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/graph"
)

func fixedRadius(r float64) func(graph.NodeID) float64 {
	return func(graph.NodeID) float64 { return r }
}

func TestNodeAtHitAndMiss(t *testing.T) {
	g := graph.New(false)
	a := g.AddNode(graph.NewNode(geom.V(0, 0), "a", nil))

	id, ok := g.NodeAt(geom.V(3, 4), fixedRadius(5))
	require.True(t, ok, "point on the boundary hits")
	assert.Equal(t, a, id)

	_, ok = g.NodeAt(geom.V(3, 4.1), fixedRadius(5))
	assert.False(t, ok)
}

func TestNodeAtPrefersClosestCenter(t *testing.T) {
	g := graph.New(false)
	g.AddNode(graph.NewNode(geom.V(0, 0), "far", nil))
	near := g.AddNode(graph.NewNode(geom.V(6, 0), "near", nil))

	// Point (4,0) is inside both circles of radius 5
	id, ok := g.NodeAt(geom.V(4, 0), fixedRadius(5))
	require.True(t, ok)
	assert.Equal(t, near, id)
}

func TestNodeAtEmptyGraph(t *testing.T) {
	g := graph.New(false)
	_, ok := g.NodeAt(geom.V(0, 0), fixedRadius(100))
	assert.False(t, ok)
}

func TestNodeAtPerNodeRadius(t *testing.T) {
	g := graph.New(false)
	small := g.AddNode(graph.NewNode(geom.V(0, 0), "small", nil))
	big := g.AddNode(graph.NewNode(geom.V(100, 0), "big", nil))

	radii := map[graph.NodeID]float64{small: 2, big: 30}
	radiusOf := func(id graph.NodeID) float64 { return radii[id] }

	_, ok := g.NodeAt(geom.V(0, 3), radiusOf)
	assert.False(t, ok, "outside the small node's radius")

	id, ok := g.NodeAt(geom.V(120, 0), radiusOf)
	require.True(t, ok)
	assert.Equal(t, big, id)
}
