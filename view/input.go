package view

import "github.com/lattice-viz/lattice/geom"

// Pointer is the cursor state the render surface reports for a frame.
// Present is false when the pointer is outside the surface; gesture flags
// arriving without a position violate the surface contract and the
// controller skips the interaction.
type Pointer struct {
	Pos     geom.Vec2 `json:"pos"`
	Present bool      `json:"present"`
}

// Input is one frame's report from the render surface: the allocated
// canvas and the pointer/gesture state. Positions and deltas are in
// canvas-relative screen units.
type Input struct {
	// Canvas is the rectangle allocated for drawing this frame. Only its
	// size participates in the math; the host translates when painting.
	Canvas geom.Rect `json:"canvas"`

	Pointer Pointer `json:"pointer"`

	// Clicked is set on a completed single click, DoubleClicked on a
	// completed double click. The surface reports the first physical click
	// of a double-click as an ordinary Clicked frame first.
	Clicked       bool `json:"clicked"`
	DoubleClicked bool `json:"double_clicked"`

	// DragStarted is set on the frame a drag begins, Dragging while it is
	// held, DragReleased on the frame it ends.
	DragStarted  bool      `json:"drag_started"`
	Dragging     bool      `json:"dragging"`
	DragReleased bool      `json:"drag_released"`
	DragDelta    geom.Vec2 `json:"drag_delta"`

	// ZoomDelta is the multiplicative pinch/wheel gesture delta; 1 means
	// no gesture.
	ZoomDelta float64 `json:"zoom_delta"`
}

// NewInput returns an idle input report for the given canvas.
func NewInput(canvas geom.Rect) Input {
	return Input{Canvas: canvas, ZoomDelta: 1}
}

// Surface is the capability a rendering host implements: allocate a canvas
// and report input, once per frame. The core only ever reads from it and
// never issues drawing commands.
type Surface interface {
	Frame() Input
}
