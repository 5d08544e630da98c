package server

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/TheNexusGroup/simplistic/pkg/dom"
	"github.com/TheNexusGroup/simplistic/pkg/reactive"
)

// ErrNoHandler is returned by Dispatch when no mounted node handles the
// event target.
var ErrNoHandler = errors.New("server: no handler for event target")

// Demo describes one runnable demo.
type Demo struct {
	// Name is the URL slug (e.g. "counter").
	Name string

	// Title is the human-readable name shown on the index page.
	Title string

	// Build composes the demo's tree and registers its event handlers.
	// It is invoked once per instance: once per page render and once per
	// WebSocket session.
	Build func(in *Instance)
}

// Instance is one live instantiation of a demo: a root node, the scope
// composing into it, and the handler table for client events.
type Instance struct {
	Root  *dom.Node
	Scope *reactive.Scope

	handlers map[string]*handlerEntry
	nextSID  int
}

// handlerEntry keeps the node so Dispatch can refuse events for nodes
// that have since been unmounted.
type handlerEntry struct {
	node *dom.Node
	fns  map[string]func(Event)
}

// NewInstance creates an empty instance rooted at a detached <div id="app">.
func NewInstance() *Instance {
	root := dom.NewElement("div").SetAttr("id", "app")
	return &Instance{
		Root:     root,
		Scope:    reactive.NewScope(root),
		handlers: make(map[string]*handlerEntry),
	}
}

// OnEvent registers fn for the given event type on node. The node is
// tagged with a data-sid attribute the client echoes back in events.
func (in *Instance) OnEvent(node *dom.Node, eventType string, fn func(Event)) {
	sid := node.Attr("data-sid")
	if sid == "" {
		in.nextSID++
		sid = "s" + strconv.Itoa(in.nextSID)
		node.SetAttr("data-sid", sid)
	}

	entry := in.handlers[sid]
	if entry == nil {
		entry = &handlerEntry{node: node, fns: make(map[string]func(Event))}
		in.handlers[sid] = entry
	}
	entry.fns[eventType] = fn
}

// Dispatch routes an event to the handler registered for its target.
// Events for unmounted nodes return ErrNoHandler: a full list re-render
// replaces nodes wholesale, and stale targets from an outdated client
// frame must not fire.
func (in *Instance) Dispatch(ev Event) error {
	entry := in.handlers[ev.Target]
	if entry == nil || !in.attached(entry.node) {
		return fmt.Errorf("%w: %s %s", ErrNoHandler, ev.Type, ev.Target)
	}
	fn := entry.fns[ev.Type]
	if fn == nil {
		return fmt.Errorf("%w: %s %s", ErrNoHandler, ev.Type, ev.Target)
	}
	fn(ev)
	return nil
}

// Prune drops handler entries whose nodes have been unmounted. Sessions
// call this after each event so full list re-renders do not grow the
// handler table without bound.
func (in *Instance) Prune() {
	for sid, entry := range in.handlers {
		if !in.attached(entry.node) {
			delete(in.handlers, sid)
		}
	}
}

// attached walks parent links up to the instance root.
func (in *Instance) attached(node *dom.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == in.Root {
			return true
		}
	}
	return false
}

// Registry holds the set of registered demos in registration order.
type Registry struct {
	mu    sync.RWMutex
	demos map[string]Demo
	order []string
}

// NewRegistry creates an empty demo registry.
func NewRegistry() *Registry {
	return &Registry{demos: make(map[string]Demo)}
}

// Register adds a demo. Registering a duplicate name is an error.
func (r *Registry) Register(d Demo) error {
	if d.Name == "" || d.Build == nil {
		return errors.New("server: demo needs a name and a build func")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.demos[d.Name]; exists {
		return fmt.Errorf("server: demo %q already registered", d.Name)
	}
	r.demos[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Get returns the demo by name.
func (r *Registry) Get(name string) (Demo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.demos[name]
	return d, ok
}

// List returns all demos in registration order.
func (r *Registry) List() []Demo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Demo, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.demos[name])
	}
	return out
}
