// Package server hosts interactive graph sessions over WebSocket. Each
// connected client gets its own Session with an isolated graph, view
// controller and viewport; change records stream back over the socket.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lattice-viz/lattice/config"
	"github.com/lattice-viz/lattice/document"
	"github.com/lattice-viz/lattice/version"
)

// Server is the WebSocket session host.
type Server struct {
	cfg   *config.Config
	store *document.Store

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	upgrader   websocket.Upgrader
	httpServer *http.Server

	logger *zap.SugaredLogger

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	sendDrops atomic.Int64
}

// New creates a session host backed by the given store.
func New(cfg *config.Config, store *document.Store, logger *zap.SugaredLogger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		cfg:        cfg,
		store:      store,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger.Named("server"),
		ctx:        ctx,
		cancel:     cancel,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// config returns the current configuration snapshot.
func (s *Server) config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// checkOrigin accepts requests without an Origin header (non-browser
// clients) and browser requests from the configured origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.config().GetServerAllowedOrigins() {
		if origin == allowed || strings.HasPrefix(origin, allowed+":") {
			return true
		}
	}
	s.logger.Warnw("Rejected WebSocket origin", "origin", origin)
	return false
}

// Run starts the hub event loop. It returns when the server shuts down.
func (s *Server) Run() {
	for {
		select {
		case <-s.ctx.Done():
			s.logger.Debugw("Server hub stopping due to context cancellation")
			return
		case client := <-s.register:
			s.handleClientRegister(client)
		case client := <-s.unregister:
			s.handleClientUnregister(client)
		}
	}
}

func (s *Server) handleClientRegister(client *Client) {
	s.mu.Lock()
	if len(s.clients) >= s.cfg.Server.MaxClients {
		s.mu.Unlock()
		s.logger.Warnw("Max clients reached, rejecting connection",
			"client_id", client.id,
			"max_clients", s.cfg.Server.MaxClients,
		)
		client.session.close()
		client.close()
		return
	}
	s.clients[client] = true
	totalClients := len(s.clients)
	s.mu.Unlock()

	s.logger.Infow("Client connected",
		"client_id", client.id,
		"total_clients", totalClients,
		"version", version.Get().Short(),
	)
}

func (s *Server) handleClientUnregister(client *Client) {
	s.mu.Lock()
	if _, ok := s.clients[client]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.clients, client)
	totalClients := len(s.clients)
	s.mu.Unlock()

	client.session.close()
	client.close()

	s.logger.Infow("Client disconnected",
		"client_id", client.id,
		"total_clients", totalClients,
	)
}

// HandleWS upgrades an HTTP request into a client connection.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnw("WebSocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		server: s,
		conn:   conn,
		send:   make(chan interface{}, sendQueueSize),
		id:     uuid.NewString(),
	}
	client.session = newSession(s, client)

	s.register <- client

	go client.writePump()
	go client.readPump()
}

// handleHealth reports liveness and basic counters.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	clients := len(s.clients)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","version":%q,"clients":%d,"send_drops":%d}`,
		version.Get().Short(), clients, s.sendDrops.Load())
}

// Start runs the hub and serves HTTP on the configured port. Blocks until
// the listener fails or Shutdown is called.
func (s *Server) Start() error {
	go s.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.HandleWS)
	mux.HandleFunc("/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.config().Server.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Infow("Session host listening",
		"addr", addr,
		"max_clients", s.config().Server.MaxClients,
	)

	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the HTTP listener, cancels all sessions and waits for
// background goroutines to drain.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("Session host shutting down")

	var httpErr error
	if s.httpServer != nil {
		httpErr = s.httpServer.Shutdown(ctx)
	}

	s.mu.Lock()
	for client := range s.clients {
		client.session.close()
		client.close()
	}
	s.clients = make(map[*Client]bool)
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	return httpErr
}

// SendDrops reports how many outbound messages were dropped on full client
// queues since startup.
func (s *Server) SendDrops() int64 {
	return s.sendDrops.Load()
}

// evictSlowClient schedules removal of a client whose send queue is full.
// Non-blocking: if the hub is saturated the next full queue retries.
func (s *Server) evictSlowClient(client *Client) {
	s.logger.Warnw("Client send queue full, evicting",
		"client_id", client.id,
		"total_drops", s.sendDrops.Load(),
	)
	select {
	case s.unregister <- client:
	case <-s.ctx.Done():
	default:
	}
}

// ApplyConfig swaps the configuration used for new sessions. Existing
// sessions keep the settings they were built with.
func (s *Server) ApplyConfig(cfg *config.Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	s.logger.Infow("Configuration applied",
		"max_clients", cfg.Server.MaxClients,
	)
}
