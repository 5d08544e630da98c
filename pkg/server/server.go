package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the demo index, rendered demo pages, the live-update
// WebSocket, and operational endpoints.
type Server struct {
	config     *ServerConfig
	registry   *Registry
	middleware []Middleware
	logger     *slog.Logger
	upgrader   websocket.Upgrader
	httpServer *http.Server
}

// New creates a Server. A nil config uses defaults; a nil registry uses
// the bundled demos.
func New(config *ServerConfig, registry *Registry) *Server {
	if registry == nil {
		registry = BuiltinRegistry()
	}
	return &Server{
		config:   config.withDefaults(),
		registry: registry,
		logger:   slog.Default().With("component", "server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Use appends middleware to the event-handling chain.
func (s *Server) Use(mw ...Middleware) {
	s.middleware = append(s.middleware, mw...)
}

// SetLogger replaces the server logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Handler returns the HTTP handler for the demo server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(noCache)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/demos/{name}", s.handleDemoPage)
	r.Get("/ws/{name}", s.handleWebSocket)

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.config.Address,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("demo server listening", "address", s.config.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// noCache disables caching on every response so a reload always fetches
// fresh demo code.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage(s.registry.List()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// handleDemoPage serves the initial server-rendered page for a demo. The
// page's thin client immediately reconnects over the WebSocket, which
// builds the session's own live instance.
func (s *Server) handleDemoPage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	demo, ok := s.registry.Get(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	inst := NewInstance()
	demo.Build(inst)

	fragment, err := newRenderer(s.config).RenderToString(inst.Root)
	if err != nil {
		s.logger.Error("render failed", "demo", name, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, demoPage(demo.Title, fragment, "/ws/"+name))
}

// handleWebSocket upgrades the connection and runs the session read loop
// on this goroutine until the client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	demo, ok := s.registry.Get(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sess := newSession(demo, conn, s.config, s.chain(), newRenderer(s.config), s.logger)
	sess.logger.Info("session connected")
	sess.ReadLoop()
	sess.logger.Info("session closed")
}

// chain composes the middleware around the instance dispatch.
func (s *Server) chain() EventHandler {
	handler := func(sess *Session, ev Event) error {
		return sess.Instance().Dispatch(ev)
	}
	for i := len(s.middleware) - 1; i >= 0; i-- {
		handler = s.middleware[i](handler)
	}
	return handler
}
