package reactive

import (
	"fmt"

	"github.com/TheNexusGroup/simplistic/pkg/dom"
)

// BindText returns a detached text node whose content tracks the cell,
// formatted with fmt.Sprint, plus a release func that severs the binding.
// Discarding the release func keeps the binding alive for as long as the
// cell lives; call it when the node leaves the tree.
func BindText[T any](c *Cell[T]) (*dom.Node, func()) {
	node := dom.NewText(fmt.Sprint(c.Get()))
	release := c.Watch(func() {
		node.SetText(fmt.Sprint(c.Get()))
	})
	return node, release
}

// BindComputedText is BindText for a computed source.
func BindComputedText[T any](c *Computed[T]) (*dom.Node, func()) {
	node := dom.NewText(fmt.Sprint(c.Get()))
	release := c.Watch(func() {
		node.SetText(fmt.Sprint(c.Get()))
	})
	return node, release
}
