package change

import "github.com/lattice-viz/lattice/geom"

// NavKind tags a viewport navigation event.
type NavKind int

const (
	// Pan: the viewport translation changed. PanDelta holds the applied delta.
	Pan NavKind = iota
	// Zoom: the viewport scale changed. ZoomDelta holds the applied delta.
	Zoom
)

func (k NavKind) String() string {
	switch k {
	case Pan:
		return "pan"
	case Zoom:
		return "zoom"
	default:
		return "unknown"
	}
}

// MarshalText makes NavKind render as its name in JSON payloads.
func (k NavKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// NavEvent is one pan or zoom applied to the viewport. Navigation never
// mutates node or edge data.
type NavEvent struct {
	Kind      NavKind   `json:"kind"`
	PanDelta  geom.Vec2 `json:"pan_delta,omitzero"`
	ZoomDelta float64   `json:"zoom_delta,omitempty"`
}

// NewPan builds a Pan event carrying the applied translation delta.
func NewPan(delta geom.Vec2) NavEvent {
	return NavEvent{Kind: Pan, PanDelta: delta}
}

// NewZoom builds a Zoom event carrying the applied scale delta.
func NewZoom(delta float64) NavEvent {
	return NavEvent{Kind: Zoom, ZoomDelta: delta}
}
