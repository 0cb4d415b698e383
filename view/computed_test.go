package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/graph"
)

func TestComputeRadiusGrowsWithDegree(t *testing.T) {
	g := graph.New(false)
	a := g.AddNode(graph.NewNode(geom.V(0, 0), "a", nil))
	b := g.AddNode(graph.NewNode(geom.V(10, 0), "b", nil))
	c := g.AddNode(graph.NewNode(geom.V(20, 0), "c", nil))
	_, ok := g.AddEdge(a, b, "", nil)
	require.True(t, ok)
	_, ok = g.AddEdge(a, c, "", nil)
	require.True(t, ok)

	comp := Compute(g, DefaultStyle())

	assert.Equal(t, 7.0, comp.Radius(a)) // 5 + 1*2
	assert.Equal(t, 6.0, comp.Radius(b))
	assert.Equal(t, 0.0, comp.Radius(graph.NodeID{Index: 99}))
}

func TestComputeBoundsSingleNode(t *testing.T) {
	g := graph.New(false)
	g.AddNode(graph.NewNode(geom.V(10, 20), "n", nil))

	comp := Compute(g, DefaultStyle())

	bounds := comp.GraphBounds()
	assert.Equal(t, geom.V(5, 15), bounds.Min)
	assert.Equal(t, geom.V(15, 25), bounds.Max)
}

func TestComputeBoundsIncludesLabels(t *testing.T) {
	g := graph.New(false)
	g.AddNode(graph.NewNode(geom.V(0, 0), "four", nil))

	style := DefaultStyle()
	style.LabelsVisible = true
	comp := Compute(g, style)

	// Max.X extends by LabelCharWidth per label character
	assert.Equal(t, 5.0+4*4, comp.GraphBounds().Max.X)
	assert.Equal(t, -5.0, comp.GraphBounds().Min.X)
}

func TestComputeBoundsUnion(t *testing.T) {
	g := graph.New(false)
	g.AddNode(graph.NewNode(geom.V(0, 0), "", nil))
	g.AddNode(graph.NewNode(geom.V(100, 50), "", nil))

	comp := Compute(g, DefaultStyle())

	bounds := comp.GraphBounds()
	assert.Equal(t, geom.V(-5, -5), bounds.Min)
	assert.Equal(t, geom.V(105, 55), bounds.Max)
}

func TestComputeEmptyGraph(t *testing.T) {
	comp := Compute(graph.New(false), DefaultStyle())

	assert.True(t, comp.GraphBounds().Size().IsZero())
	assert.Empty(t, comp.Selected)
	assert.False(t, comp.HasDragged)
}

func TestComputeCollectsFlags(t *testing.T) {
	g := graph.New(false)
	a := g.AddNode(graph.NewNode(geom.V(0, 0), "", nil))
	b := g.AddNode(graph.NewNode(geom.V(10, 0), "", nil))
	c := g.AddNode(graph.NewNode(geom.V(20, 0), "", nil))
	require.True(t, g.SetNodeSelected(a, true))
	require.True(t, g.SetNodeSelected(c, true))
	require.True(t, g.SetNodeDragged(b, true))

	comp := Compute(g, DefaultStyle())

	assert.Equal(t, []graph.NodeID{a, c}, comp.Selected)
	require.True(t, comp.HasDragged)
	assert.Equal(t, b, comp.Dragged)
}
