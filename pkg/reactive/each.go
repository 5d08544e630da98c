package reactive

import "github.com/TheNexusGroup/simplistic/pkg/dom"

// ListBinding renders a collection into a container node. Every change
// notification tears down all mounted children and rebuilds them from a
// fresh snapshot of the source, so after any render the mounted nodes
// correspond one-to-one, in order, with the source items.
//
// Node identity is not preserved across re-renders: the full rebuild is a
// deliberate simplification, not an optimization. Callers must not hold
// references to mounted nodes across notifications.
type ListBinding struct {
	container *dom.Node
	mounted   []*dom.Node
	rerender  func()
	release   func()
}

// Each renders a static collection once into a new container element
// attached at the scope's current insertion point. Static sources register
// no subscription and never re-render.
func Each[T any](sc *Scope, items []T, render func(item T, index int) *dom.Node) *ListBinding {
	return EachInto(sc, dom.NewElement("div"), items, render)
}

// EachInto is Each with a caller-supplied container node, for when the
// surrounding markup dictates the container tag (a <ul>, say).
func EachInto[T any](sc *Scope, container *dom.Node, items []T, render func(item T, index int) *dom.Node) *ListBinding {
	lb := &ListBinding{container: container}
	sc.Leaf(container)
	renderAll(lb, items, render)
	return lb
}

// EachCell renders a cell-backed collection into a new container element
// and re-renders in full on every notification from the cell.
func EachCell[T any](sc *Scope, cell *Cell[[]T], render func(item T, index int) *dom.Node) *ListBinding {
	return EachCellInto(sc, dom.NewElement("div"), cell, render)
}

// EachCellInto is EachCell with a caller-supplied container node.
func EachCellInto[T any](sc *Scope, container *dom.Node, cell *Cell[[]T], render func(item T, index int) *dom.Node) *ListBinding {
	lb := &ListBinding{container: container}
	sc.Leaf(container)

	lb.rerender = func() {
		renderAll(lb, cell.Get(), render)
	}
	lb.rerender()
	lb.release = cell.Watch(lb.rerender)
	return lb
}

// EachList is EachCell for a ListCell source.
func EachList[T any](sc *Scope, list *ListCell[T], render func(item T, index int) *dom.Node) *ListBinding {
	return EachCell(sc, list.Cell, render)
}

// EachListInto is EachCellInto for a ListCell source.
func EachListInto[T any](sc *Scope, container *dom.Node, list *ListCell[T], render func(item T, index int) *dom.Node) *ListBinding {
	return EachCellInto(sc, container, list.Cell, render)
}

// renderAll tears down every mounted node and rebuilds from items.
func renderAll[T any](lb *ListBinding, items []T, render func(T, int) *dom.Node) {
	for _, n := range lb.mounted {
		dom.Remove(n)
	}
	lb.mounted = lb.mounted[:0]

	for i, item := range items {
		node := render(item, i)
		dom.AppendChild(lb.container, node)
		lb.mounted = append(lb.mounted, node)
	}
}

// Container returns the node the list renders into.
func (lb *ListBinding) Container() *dom.Node {
	return lb.container
}

// Len returns the number of currently mounted nodes.
func (lb *ListBinding) Len() int {
	return len(lb.mounted)
}

// Release unsubscribes the binding from its source. Static bindings have
// nothing to release.
func (lb *ListBinding) Release() {
	if lb.release != nil {
		lb.release()
		lb.release = nil
	}
}
