package server

import (
	"github.com/lattice-viz/lattice/change"
	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/graph"
	"github.com/lattice-viz/lattice/view"
)

// ClientMessage is the envelope for everything a client sends. Type selects
// the handler; the other fields are type-specific.
type ClientMessage struct {
	Type string `json:"type"`

	// SurfaceID keys persisted viewport state. Sent with "open".
	SurfaceID string `json:"surface_id,omitempty"`

	// Document names a stored document. Sent with "open" and "save".
	Document string `json:"document,omitempty"`

	// Frame carries one input report. Sent with "frame".
	Frame *view.Input `json:"frame,omitempty"`
}

// FrameResultMessage reports the computed state after one frame.
type FrameResultMessage struct {
	Type     string         `json:"type"` // "frame_result"
	Selected []graph.NodeID `json:"selected,omitempty"`
	Dragged  *graph.NodeID  `json:"dragged,omitempty"`
	Bounds   geom.Rect      `json:"bounds"`
	Viewport view.Viewport  `json:"viewport"`
}

// ChangeMessage forwards one data mutation record.
type ChangeMessage struct {
	Type   string        `json:"type"` // "change"
	Change change.Change `json:"change"`
}

// NavMessage forwards one viewport navigation event.
type NavMessage struct {
	Type string          `json:"type"` // "nav"
	Nav  change.NavEvent `json:"nav"`
}

// OpenedMessage acknowledges a successful open.
type OpenedMessage struct {
	Type     string `json:"type"` // "opened"
	Document string `json:"document"`
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`
}

// ErrorMessage reports a failed request back to the client.
type ErrorMessage struct {
	Type  string `json:"type"` // "error"
	Error string `json:"error"`
}

func newErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Type: "error", Error: err.Error()}
}
