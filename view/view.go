// Package view implements the per-frame interaction engine: computed
// state, the persisted viewport transform, and the controller that turns
// render-surface input into graph mutations, viewport navigation and
// change records.
package view

import (
	"go.uber.org/zap"

	"github.com/lattice-viz/lattice/change"
	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/graph"
)

// fallbackExtent replaces a degenerate bounding box (empty or single-point
// graph) in fit-to-screen so the zoom division is always defined.
var fallbackExtent = geom.V(1, 100)

// View drives one graph's interaction. It owns no per-frame state itself;
// the host passes the persisted Viewport into every Update and keeps it
// between frames.
type View struct {
	g           *graph.Graph
	interaction SettingsInteraction
	navigation  SettingsNavigation
	style       SettingsStyle
	sink        change.Sink
	logger      *zap.SugaredLogger
}

// New creates a view over g with default navigation and style, all
// interactions disabled, and a no-op sink.
func New(g *graph.Graph, logger *zap.SugaredLogger) *View {
	return &View{
		g:          g,
		navigation: DefaultNavigation(),
		style:      DefaultStyle(),
		sink:       change.NopSink{},
		logger:     logger.Named("view"),
	}
}

// WithInteraction replaces the interaction settings.
func (v *View) WithInteraction(s SettingsInteraction) *View {
	v.interaction = s
	return v
}

// WithNavigation replaces the navigation settings.
func (v *View) WithNavigation(s SettingsNavigation) *View {
	v.navigation = s
	return v
}

// WithStyle replaces the style settings.
func (v *View) WithStyle(s SettingsStyle) *View {
	v.style = s
	return v
}

// WithSink routes every emitted record to sink. Pass change.NopSink{} to
// detach a subscriber.
func (v *View) WithSink(sink change.Sink) *View {
	v.sink = sink
	return v
}

// Graph returns the underlying container.
func (v *View) Graph() *graph.Graph {
	return v.g
}

// Update runs one frame: recompute derived state, then apply navigation
// and interaction in fixed order (fit-to-screen, zoom, pan, node drag,
// click). It is synchronous and always runs to completion. The returned
// Computed is valid until the next Update and is what the drawing layer
// should scale shapes from.
func (v *View) Update(vp *Viewport, in Input) *Computed {
	comp := Compute(v.g, v.style)

	v.handleFitToScreen(vp, in, comp)
	v.handleZoom(vp, in)
	v.handlePan(vp, in, comp)
	v.handleDrag(vp, in, comp)
	v.handleClick(vp, in, comp)

	return comp
}

// handleFitToScreen recomputes zoom and pan so the padded graph bounding
// box is centered and maximal inside the canvas. Runs on the first frame
// of a surface and every frame while the always-fit setting is on.
func (v *View) handleFitToScreen(vp *Viewport, in Input, comp *Computed) {
	if !vp.FirstFrame && !v.navigation.FitToScreenEnabled {
		return
	}

	bounds := comp.GraphBounds()
	diag := bounds.Size()
	if diag.IsZero() {
		diag = fallbackExtent
	}

	padded := diag.Mul(1 + v.navigation.ScreenPadding)
	canvas := in.Canvas.Size()

	zoomX := canvas.X / padded.X
	zoomY := canvas.Y / padded.Y
	newZoom := zoomX
	if zoomY < newZoom {
		newZoom = zoomY
	}

	// Center of the padded box equals the center of the raw box
	center := bounds.Center()
	newPan := canvas.Mul(0.5).Sub(center.Mul(newZoom))

	v.setZoom(vp, newZoom)
	v.setPan(vp, newPan)
	vp.FirstFrame = false
}

// handleZoom applies a pinch/wheel gesture, holding the graph point under
// the cursor fixed on screen.
func (v *View) handleZoom(vp *Viewport, in Input) {
	if !v.navigation.ZoomAndPanEnabled || in.ZoomDelta == 1 || in.ZoomDelta == 0 {
		return
	}

	// step = speed * sign(1 - delta)
	step := v.navigation.ZoomSpeed
	if in.ZoomDelta > 1 {
		step = -step
	}

	center := in.Canvas.Size().Mul(0.5)
	if in.Pointer.Present {
		center = in.Pointer.Pos
	}
	v.zoomAbout(vp, step, center)
}

// zoomAbout scales the viewport by (1+delta) keeping the graph point under
// screenPos stationary: the pan compensation is solved from
// screen = g*zoom + pan before and after.
func (v *View) zoomAbout(vp *Viewport, delta float64, screenPos geom.Vec2) {
	graphPos := vp.ScreenToGraph(screenPos)
	newZoom := vp.Zoom * (1 + delta)
	panDelta := graphPos.Mul(vp.Zoom - newZoom)

	v.setPan(vp, vp.Pan.Add(panDelta))
	v.setZoom(vp, newZoom)
}

// handlePan translates the viewport by an empty-canvas drag. A drag that
// started on a node belongs to handleDrag instead.
func (v *View) handlePan(vp *Viewport, in Input, comp *Computed) {
	if !v.navigation.ZoomAndPanEnabled {
		return
	}
	if in.Dragging && !comp.HasDragged && !in.DragDelta.IsZero() {
		v.setPan(vp, vp.Pan.Add(in.DragDelta))
	}
}

// handleDrag runs the node drag state machine: start on a hit, move while
// held, release. comp reflects the state computed at the top of the frame,
// so a drag started this frame begins moving on the next one.
func (v *View) handleDrag(vp *Viewport, in Input, comp *Computed) {
	if !v.interaction.DraggingEnabled {
		return
	}

	// A drag-start while another node is still held violates the surface
	// contract (no release was reported); skip it so at most one node is
	// ever dragged.
	if in.DragStarted && !comp.HasDragged {
		if id, ok := v.hitTest(vp, in, comp); ok {
			v.setDragged(id, true)
		}
	}

	if in.Dragging && comp.HasDragged && !in.DragDelta.IsZero() {
		delta := in.DragDelta.Div(vp.Zoom)
		v.moveNode(comp.Dragged, delta)
	}

	if in.DragReleased && comp.HasDragged {
		v.setDragged(comp.Dragged, false)
	}
}

// handleClick resolves completed clicks and double-clicks. A double-click
// arrives after its first physical click was already delivered as a single
// click; the single click's selection effects stand and DoubleClicked is
// emitted in addition.
func (v *View) handleClick(vp *Viewport, in Input, comp *Computed) {
	if !in.Clicked && !in.DoubleClicked {
		return
	}

	clickable := v.interaction.ClickingEnabled ||
		v.interaction.SelectionEnabled ||
		v.interaction.SelectionMultiEnabled
	if !clickable {
		return
	}

	id, ok := v.hitTest(vp, in, comp)
	if !ok {
		// Click on empty space deselects everything
		if v.interaction.SelectionEnabled || v.interaction.SelectionMultiEnabled {
			v.deselectAll(comp)
		}
		return
	}

	if in.DoubleClicked {
		if v.interaction.ClickingEnabled {
			v.sink.SendChange(change.NewDoubleClicked(id))
		}
		return
	}

	v.handleNodeClick(id, comp)
}

func (v *View) handleNodeClick(id graph.NodeID, comp *Computed) {
	if !v.interaction.ClickingEnabled && !v.interaction.SelectionEnabled {
		return
	}

	if v.interaction.ClickingEnabled {
		v.sink.SendChange(change.NewClicked(id))
	}

	if !v.interaction.SelectionEnabled {
		return
	}

	n, ok := v.g.Node(id)
	if !ok {
		return
	}
	if n.Selected() {
		v.toggleSelection(id)
		return
	}

	if !v.interaction.SelectionMultiEnabled {
		v.deselectAll(comp)
	}
	v.toggleSelection(id)
}

// hitTest maps the pointer to graph space and asks the graph for the node
// under it. A missing pointer position is a surface contract violation;
// the interaction is skipped rather than failed.
func (v *View) hitTest(vp *Viewport, in Input, comp *Computed) (graph.NodeID, bool) {
	if !in.Pointer.Present {
		v.logger.Debugw("Gesture reported without pointer position, skipping hit test")
		return graph.NodeID{}, false
	}
	return v.g.NodeAt(vp.ScreenToGraph(in.Pointer.Pos), comp.Radius)
}

func (v *View) deselectAll(comp *Computed) {
	for _, id := range comp.Selected {
		v.toggleSelection(id)
	}
}

func (v *View) toggleSelection(id graph.NodeID) {
	n, ok := v.g.Node(id)
	if !ok {
		return
	}
	old := n.Selected()
	v.g.SetNodeSelected(id, !old)
	v.sink.SendChange(change.NewSelection(id, old, !old))
}

func (v *View) setDragged(id graph.NodeID, val bool) {
	n, ok := v.g.Node(id)
	if !ok {
		return
	}
	old := n.Dragged()
	v.g.SetNodeDragged(id, val)
	v.sink.SendChange(change.NewDragged(id, old, val))
}

func (v *View) moveNode(id graph.NodeID, delta geom.Vec2) {
	n, ok := v.g.Node(id)
	if !ok {
		return
	}
	old := n.Pos
	moved := old.Add(delta)
	v.g.SetNodePos(id, moved)
	v.sink.SendChange(change.NewMoved(id, old, moved))
}

func (v *View) setPan(vp *Viewport, val geom.Vec2) {
	diff := val.Sub(vp.Pan)
	if diff.IsZero() {
		return
	}
	vp.Pan = val
	v.sink.SendNav(change.NewPan(diff))
}

func (v *View) setZoom(vp *Viewport, val float64) {
	diff := val - vp.Zoom
	if diff == 0 {
		return
	}
	vp.Zoom = val
	v.sink.SendNav(change.NewZoom(diff))
}
