package server

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lattice-viz/lattice/change"
	"github.com/lattice-viz/lattice/errors"
	"github.com/lattice-viz/lattice/graph"
	"github.com/lattice-viz/lattice/view"
)

// Session holds one client's interactive state: the graph built from its
// opened document, the view controller, and the persisted viewport. Frames
// run on the client's read pump, so the session is single-threaded except
// for teardown.
type Session struct {
	client *Client
	server *Server
	logger *zap.SugaredLogger

	mu        sync.Mutex
	surfaceID string
	docName   string
	graph     *graph.Graph
	view      *view.View
	viewport  *view.Viewport

	changes chan change.Change
	navs    chan change.NavEvent
	sink    *change.ChannelSink

	// navLimiter caps nav forwarding; zoom/pan gestures arrive per frame
	// and the client can redraw from frame_result anyway.
	navLimiter *rate.Limiter

	done      chan struct{}
	closeOnce sync.Once
}

func newSession(server *Server, client *Client) *Session {
	cfg := server.config()
	log := server.logger.Named("session").With("client_id", client.id)

	changes := make(chan change.Change, cfg.Emitter.Buffer)
	navs := make(chan change.NavEvent, cfg.Emitter.Buffer)

	s := &Session{
		client:     client,
		server:     server,
		logger:     log,
		graph:      graph.New(false),
		viewport:   view.NewViewport(),
		changes:    changes,
		navs:       navs,
		sink:       change.NewChannelSink(changes, navs, cfg.Emitter.SinkPolicy(), log),
		navLimiter: rate.NewLimiter(rate.Limit(cfg.Server.NavRatePerSec), int(cfg.Server.NavRatePerSec)+1),
		done:       make(chan struct{}),
	}
	s.view = s.newView(s.graph)

	server.wg.Add(1)
	go s.forwardRecords()

	return s
}

// newView builds a controller over g with the configured settings and the
// session sink.
func (s *Session) newView(g *graph.Graph) *view.View {
	cfg := s.server.config()
	return view.New(g, s.logger).
		WithInteraction(cfg.View.InteractionSettings()).
		WithNavigation(cfg.View.NavigationSettings()).
		WithStyle(cfg.View.StyleSettings()).
		WithSink(s.sink)
}

// route dispatches one inbound message.
func (s *Session) route(msg *ClientMessage) {
	switch msg.Type {
	case "open":
		s.handleOpen(msg)
	case "frame":
		s.handleFrame(msg)
	case "reset":
		s.handleReset()
	case "save":
		s.handleSave()
	case "ping":
		// Deadline already refreshed by the pong handler
	default:
		s.logger.Debugw("Unknown message type", "type", msg.Type)
	}
}

// handleOpen loads a stored document, builds its graph and restores the
// surface's persisted viewport.
func (s *Session) handleOpen(msg *ClientMessage) {
	if msg.Document == "" || msg.SurfaceID == "" {
		s.client.queue(newErrorMessage(
			errors.WithMessage(errors.ErrInvalidRequest, "open requires document and surface_id")))
		return
	}

	doc, err := s.server.store.LoadDocument(msg.Document)
	if err != nil {
		s.logger.Warnw("Failed to load document",
			"document", msg.Document,
			"error", err,
		)
		s.client.queue(newErrorMessage(err))
		return
	}

	g, err := doc.Build()
	if err != nil {
		s.logger.Warnw("Failed to build document graph",
			"document", msg.Document,
			"error", err,
		)
		s.client.queue(newErrorMessage(err))
		return
	}

	vp, err := s.server.store.LoadViewport(msg.SurfaceID)
	if errors.IsNotFoundError(err) {
		vp = view.NewViewport()
	} else if err != nil {
		s.client.queue(newErrorMessage(err))
		return
	}

	s.mu.Lock()
	s.surfaceID = msg.SurfaceID
	s.docName = msg.Document
	s.graph = g
	s.view = s.newView(g)
	s.viewport = vp
	s.mu.Unlock()

	s.logger.Infow("Document opened",
		"document", msg.Document,
		"surface_id", msg.SurfaceID,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
	)

	s.client.queue(OpenedMessage{
		Type:     "opened",
		Document: msg.Document,
		Nodes:    g.NodeCount(),
		Edges:    g.EdgeCount(),
	})
}

// handleFrame runs one frame through the view controller and reports the
// resulting computed state.
func (s *Session) handleFrame(msg *ClientMessage) {
	if msg.Frame == nil {
		s.client.queue(newErrorMessage(
			errors.WithMessage(errors.ErrInvalidRequest, "frame message without frame payload")))
		return
	}

	s.mu.Lock()
	comp := s.view.Update(s.viewport, *msg.Frame)
	result := FrameResultMessage{
		Type:     "frame_result",
		Selected: comp.Selected,
		Bounds:   comp.GraphBounds(),
		Viewport: *s.viewport,
	}
	if comp.HasDragged {
		dragged := comp.Dragged
		result.Dragged = &dragged
	}
	s.mu.Unlock()

	s.client.queue(result)
}

// handleReset restores the viewport defaults; the next frame re-fits.
func (s *Session) handleReset() {
	s.mu.Lock()
	s.viewport.Reset()
	s.mu.Unlock()

	s.logger.Debugw("Viewport reset")
}

// handleSave persists the viewport for the open surface.
func (s *Session) handleSave() {
	s.mu.Lock()
	surfaceID := s.surfaceID
	vp := *s.viewport
	s.mu.Unlock()

	if surfaceID == "" {
		s.client.queue(newErrorMessage(
			errors.WithMessage(errors.ErrInvalidRequest, "no surface open")))
		return
	}

	if err := s.server.store.SaveViewport(surfaceID, &vp); err != nil {
		s.logger.Errorw("Failed to save viewport",
			"surface_id", surfaceID,
			"error", err,
		)
		s.client.queue(newErrorMessage(err))
		return
	}
	s.logger.Debugw("Viewport saved", "surface_id", surfaceID)
}

// forwardRecords drains the sink channels to the client. Change records are
// always forwarded; nav events are rate limited.
func (s *Session) forwardRecords() {
	defer s.server.wg.Done()

	for {
		select {
		case <-s.done:
			return
		case <-s.server.ctx.Done():
			return
		case c := <-s.changes:
			s.client.queue(ChangeMessage{Type: "change", Change: c})
		case n := <-s.navs:
			if s.navLimiter.Allow() {
				s.client.queue(NavMessage{Type: "nav", Nav: n})
			}
		}
	}
}

// close stops forwarding and persists the viewport of an open surface.
func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.done)

		if err := s.sink.Err(); err != nil {
			s.logger.Warnw("Session sink dropped records", "error", err)
		}

		s.mu.Lock()
		surfaceID := s.surfaceID
		vp := *s.viewport
		s.mu.Unlock()

		if surfaceID == "" {
			return
		}
		if err := s.server.store.SaveViewport(surfaceID, &vp); err != nil {
			s.logger.Warnw("Failed to persist viewport on close",
				"surface_id", surfaceID,
				"error", err,
			)
		}
	})
}
