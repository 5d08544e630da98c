package reactive

import "github.com/TheNexusGroup/simplistic/pkg/dom"

// Scope is an explicit insertion-point stack for composition. Nested
// container calls push themselves so that child factories know where to
// attach, and always pop on the way out — even when a child panics —
// so sibling rendering can never land in the wrong parent.
//
// A Scope is an ordinary value handed to composition calls; there is no
// global current scope, so independent trees can be built concurrently as
// long as each scope stays on one goroutine.
type Scope struct {
	stack []*dom.Node
}

// NewScope creates a scope rooted at the given node.
func NewScope(root *dom.Node) *Scope {
	return &Scope{stack: []*dom.Node{root}}
}

// Current returns the top of the stack: the node new children attach to.
func (s *Scope) Current() *dom.Node {
	return s.stack[len(s.stack)-1]
}

// Depth returns the nesting depth of active container calls.
func (s *Scope) Depth() int {
	return len(s.stack) - 1
}

func (s *Scope) push(n *dom.Node) {
	s.stack = append(s.stack, n)
}

func (s *Scope) pop() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Container appends node at the current insertion point, makes it the new
// insertion point, evaluates each child, and restores the previous point.
// The restore is deferred so a panicking child cannot unbalance the stack.
//
// Children may be:
//   - string: appended as a text node
//   - *dom.Node: appended directly
//   - []*dom.Node: each appended directly
//   - func(): invoked; its own composition calls attach into node
//   - nil: skipped
func (s *Scope) Container(node *dom.Node, children ...any) *dom.Node {
	dom.AppendChild(s.Current(), node)
	s.push(node)
	defer s.pop()

	for _, child := range children {
		s.appendAny(child)
	}
	return node
}

// Leaf appends node at the current insertion point without touching the
// stack.
func (s *Scope) Leaf(node *dom.Node) *dom.Node {
	dom.AppendChild(s.Current(), node)
	return node
}

// Text appends a text node at the current insertion point.
func (s *Scope) Text(text string) *dom.Node {
	return s.Leaf(dom.NewText(text))
}

func (s *Scope) appendAny(child any) {
	switch v := child.(type) {
	case nil:
	case string:
		s.Text(v)
	case *dom.Node:
		if v != nil {
			s.Leaf(v)
		}
	case []*dom.Node:
		for _, n := range v {
			if n != nil {
				s.Leaf(n)
			}
		}
	case func():
		v()
	}
}
