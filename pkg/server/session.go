package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/TheNexusGroup/simplistic/pkg/render"
)

// Session is one connected browser running one demo instance. Events from
// the socket dispatch into the instance's handlers; after each event the
// whole demo fragment is re-rendered and pushed back. All reactive
// mutation for a session happens on its read loop goroutine, satisfying
// the single-writer contract of the render tree.
type Session struct {
	id      string
	demo    Demo
	inst    *Instance
	conn    *websocket.Conn
	config  *ServerConfig
	handler EventHandler
	render  *render.Renderer
	logger  *slog.Logger

	writeMu sync.Mutex
}

// newSessionID returns a random 16-hex-char session identifier.
func newSessionID() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "s-fallback"
	}
	return hex.EncodeToString(buf[:])
}

func newSession(demo Demo, conn *websocket.Conn, config *ServerConfig, chain EventHandler, r *render.Renderer, logger *slog.Logger) *Session {
	s := &Session{
		id:      newSessionID(),
		demo:    demo,
		inst:    NewInstance(),
		conn:    conn,
		config:  config,
		handler: chain,
		render:  r,
	}
	s.logger = logger.With("session", s.id, "demo", demo.Name)
	demo.Build(s.inst)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// DemoName returns the name of the demo this session runs.
func (s *Session) DemoName() string { return s.demo.Name }

// Instance returns the session's live demo instance.
func (s *Session) Instance() *Instance { return s.inst }

// ReadLoop reads events until the connection closes. It blocks; the
// server runs it on the upgraded request's goroutine.
func (s *Session) ReadLoop() {
	defer s.conn.Close()

	// Initial frame so the client starts from the server's tree.
	if err := s.pushFragment(); err != nil {
		s.logger.Error("initial push failed", "error", err)
		return
	}

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				websocket.CloseAbnormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.logger.Error("event decode error", "error", err)
			continue
		}

		s.handleEvent(ev)

		if err := s.pushFragment(); err != nil {
			s.logger.Error("push failed", "error", err)
			return
		}
	}
}

// handleEvent runs the middleware chain around the instance dispatch.
// A panicking handler is contained to this event.
func (s *Session) handleEvent(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic", "event", ev.Type, "target", ev.Target, "panic", r)
		}
	}()

	if err := s.handler(s, ev); err != nil {
		s.logger.Warn("event not handled", "event", ev.Type, "target", ev.Target, "error", err)
	}
	s.inst.Prune()
}

// pushFragment renders the instance root and writes it as one text frame.
func (s *Session) pushFragment() error {
	html, err := s.render.RenderToString(s.inst.Root)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteMessage(websocket.TextMessage, []byte(html))
}
