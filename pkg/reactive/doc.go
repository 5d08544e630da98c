// Package reactive implements Simplistic's reactive state layer: mutable
// value cells, eagerly-derived computed cells, and bindings that keep a
// live render tree in sync without a virtual-DOM diff pass.
//
// The model is push-based and fully synchronous. Setting a cell to a new
// value runs one notify pass to completion before Set returns: first the
// cell's direct subscribers fire, then every computed cell reachable
// through the dependency graph recomputes, in ascending rank (topological)
// order, each at most once per pass. Successive Set calls are never
// batched or coalesced.
//
// Listeners are isolated from each other: a panicking subscriber, compute
// function, or binding re-render is recovered and reported through the
// package panic handler, and the rest of the pass continues.
//
// Composition targets an explicit *Scope rather than a global insertion
// point, so independent trees can be built from independent call stacks.
// Within one scope the render tree is single-writer.
package reactive
