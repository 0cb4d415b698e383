package view

import "github.com/lattice-viz/lattice/geom"

// Viewport is the state persisted across frames for one rendering surface:
// the pan translation, the zoom scale, and the first-frame marker. The host
// owns it between frames (keyed by surface identity) and passes it back
// into Update; nothing else about a frame survives.
//
// All screen coordinates are canvas-relative: the canvas origin maps to
// screen (0,0). The transform is
//
//	screen = graph*Zoom + Pan
//	graph  = (screen - Pan) / Zoom
//
// and is invertible whenever Zoom > 0, which every mutation path preserves.
type Viewport struct {
	Pan  geom.Vec2 `json:"pan"`
	Zoom float64   `json:"zoom"`
	// FirstFrame is true until the first fit-to-screen runs. Only Reset
	// sets it back.
	FirstFrame bool `json:"first_frame"`
}

// NewViewport returns a viewport at the identity transform, primed to
// fit-to-screen on its first frame.
func NewViewport() *Viewport {
	return &Viewport{Zoom: 1, FirstFrame: true}
}

// Reset restores the defaults: pan (0,0), zoom 1, first-frame true. It is
// callable independent of the frame loop.
func (v *Viewport) Reset() {
	v.Pan = geom.Vec2{}
	v.Zoom = 1
	v.FirstFrame = true
}

// GraphToScreen maps a graph-space point to canvas-relative screen space.
func (v *Viewport) GraphToScreen(p geom.Vec2) geom.Vec2 {
	return p.Mul(v.Zoom).Add(v.Pan)
}

// ScreenToGraph maps a canvas-relative screen point to graph space.
func (v *Viewport) ScreenToGraph(p geom.Vec2) geom.Vec2 {
	return p.Sub(v.Pan).Div(v.Zoom)
}
