package server

// Event is a client interaction forwarded over the WebSocket.
type Event struct {
	// Type is the interaction kind: "click", "input", "change", ...
	Type string `json:"type"`

	// Target is the data-sid of the node the event fired on.
	Target string `json:"target"`

	// Value carries the input value for value-bearing events.
	Value string `json:"value,omitempty"`
}

// EventHandler processes one client event for a session.
type EventHandler func(s *Session, ev Event) error

// Middleware wraps an EventHandler. Middleware runs in registration order
// around the dispatch to the demo's node handlers.
type Middleware func(next EventHandler) EventHandler
