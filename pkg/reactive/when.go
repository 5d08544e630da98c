package reactive

import "github.com/TheNexusGroup/simplistic/pkg/dom"

// Binding mounts or unmounts a single rendered subtree based on a boolean
// condition over cell values. At any time the binding owns zero or one
// concrete node; an immovable comment placeholder keeps the insertion
// position stable across mount/unmount cycles.
type Binding struct {
	cond   func() bool
	render func() *dom.Node

	// parent is the insertion point captured when the binding was created.
	parent *dom.Node

	// marker never moves; the mounted node is inserted just before it.
	marker *dom.Node

	// mounted is the currently rendered node, nil when unmounted.
	mounted *dom.Node

	releases []func()
}

// When creates a conditional binding at the scope's current insertion
// point. The condition is evaluated once immediately — before any external
// mutation — and then re-evaluated from scratch on every notification from
// any listed source. True mounts the rendered node before the placeholder;
// false removes it. Unchanged outcomes touch nothing.
func When(sc *Scope, cond func() bool, render func() *dom.Node, sources ...Source) *Binding {
	b := &Binding{
		cond:   cond,
		render: render,
		parent: sc.Current(),
		marker: dom.NewComment("when"),
	}
	dom.AppendChild(b.parent, b.marker)

	b.apply()

	for _, s := range sources {
		if s != nil {
			b.releases = append(b.releases, s.Watch(b.apply))
		}
	}
	return b
}

// apply re-evaluates the condition and transitions if the outcome changed.
func (b *Binding) apply() {
	switch on := b.cond(); {
	case on && b.mounted == nil:
		node := b.render()
		dom.InsertBefore(b.parent, node, b.marker)
		b.mounted = node
	case !on && b.mounted != nil:
		dom.Remove(b.mounted)
		b.mounted = nil
	}
}

// Mounted reports whether the binding currently has a rendered node.
func (b *Binding) Mounted() bool {
	return b.mounted != nil
}

// Release unsubscribes the binding from all of its sources. The currently
// mounted node, if any, stays in the tree.
func (b *Binding) Release() {
	for _, release := range b.releases {
		release()
	}
	b.releases = nil
}
