package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-viz/lattice/geom"
)

func TestNewViewportDefaults(t *testing.T) {
	vp := NewViewport()

	assert.True(t, vp.Pan.IsZero())
	assert.Equal(t, 1.0, vp.Zoom)
	assert.True(t, vp.FirstFrame)
}

func TestViewportReset(t *testing.T) {
	vp := NewViewport()
	vp.Pan = geom.V(42, -7)
	vp.Zoom = 3.5
	vp.FirstFrame = false

	vp.Reset()

	assert.True(t, vp.Pan.IsZero())
	assert.Equal(t, 1.0, vp.Zoom)
	assert.True(t, vp.FirstFrame)
}

func TestTransformRoundTrip(t *testing.T) {
	vp := &Viewport{Pan: geom.V(120, -45), Zoom: 2.5}

	points := []geom.Vec2{
		geom.V(0, 0),
		geom.V(10, 10),
		geom.V(-300, 77.5),
		geom.V(0.001, -0.001),
	}
	for _, p := range points {
		back := vp.ScreenToGraph(vp.GraphToScreen(p))
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestIdentityTransform(t *testing.T) {
	vp := NewViewport()

	p := geom.V(33, -17)
	require.Equal(t, p, vp.GraphToScreen(p))
	require.Equal(t, p, vp.ScreenToGraph(p))
}

func TestTransformAppliesZoomThenPan(t *testing.T) {
	vp := &Viewport{Pan: geom.V(100, 50), Zoom: 2}

	got := vp.GraphToScreen(geom.V(10, 10))
	assert.Equal(t, geom.V(120, 70), got)

	back := vp.ScreenToGraph(geom.V(120, 70))
	assert.Equal(t, geom.V(10, 10), back)
}
