// Package el provides element factories for composing the live render
// tree. Every factory takes the *reactive.Scope it attaches into; there is
// no implicit global insertion point.
//
// Only the tags the bundled demos need are covered here. Full HTML tag
// coverage is out of scope — factories are one-liners over
// Scope.Container/Scope.Leaf, so applications can add their own.
package el
