// Package dom provides the live render tree that the reactive bindings
// mutate directly. Unlike a virtual DOM there is no diff pass: bindings
// insert and remove nodes in place, so every node keeps a parent link.
//
// The tree is single-writer. Callers must not mutate the same subtree from
// two goroutines; the reactive notify pass is synchronous, so in practice
// all mutation happens on one call stack.
package dom
