package reactive

import "sync"

// Cell is a mutable, observable value container: the root trigger of the
// reactive graph. Setting a cell to a strictly different value runs one
// synchronous notify pass before Set returns.
type Cell[T any] struct {
	base cellBase

	// value is the current cell value.
	value T

	// mu protects the value.
	mu sync.RWMutex

	// equal overrides the default change detection.
	// If nil, sameValue is used.
	equal func(T, T) bool
}

// NewCell creates a cell holding the given initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		base:  cellBase{bid: nextID()},
		value: initial,
	}
}

// Get returns the current value. No side effects.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and runs a notify pass, but only if v differs from the
// current value under the cell's change detection (shallow: == for
// primitives, identity for references). Setting an equal value is a
// silent no-op, not an error.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	changed := !c.equals(c.value, v)
	if changed {
		c.value = v
	}
	c.mu.Unlock()

	if changed {
		c.base.notify()
	}
}

// Update applies fn to the current value and stores the result, with the
// same change detection as Set.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	newValue := fn(c.value)
	changed := !c.equals(c.value, newValue)
	if changed {
		c.value = newValue
	}
	c.mu.Unlock()

	if changed {
		c.base.notify()
	}
}

// Subscribe registers a listener invoked with the new value after every
// change. The returned func removes exactly that listener.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	return c.base.watch(func() {
		fn(c.Get())
	})
}

// Watch registers a value-less listener. Implements Source.
func (c *Cell[T]) Watch(fn func()) (release func()) {
	return c.base.watch(fn)
}

// WithEquals configures a custom change-detection function and returns the
// cell for chaining. Useful when identity comparison has the wrong
// semantics for a custom type.
func (c *Cell[T]) WithEquals(fn func(T, T) bool) *Cell[T] {
	c.equal = fn
	return c
}

// ID returns the unique identifier for this cell.
func (c *Cell[T]) ID() uint64 {
	return c.base.bid
}

// mutate applies fn to the value in place and always notifies, bypassing
// change detection. This is the path for in-place collection mutation,
// where old and new value are indistinguishable.
func (c *Cell[T]) mutate(fn func(T) T) {
	c.mu.Lock()
	c.value = fn(c.value)
	c.mu.Unlock()

	c.base.notify()
}

func (c *Cell[T]) equals(a, b T) bool {
	if c.equal != nil {
		return c.equal(a, b)
	}
	return sameValue(a, b)
}

// Source implementation. Cells are graph roots, so their rank is 0.

func (c *Cell[T]) attach(d dependent) { c.base.addDependent(d) }
func (c *Cell[T]) detach(d dependent) { c.base.removeDependent(d) }
func (c *Cell[T]) rank() int          { return 0 }

// Map constructs a computed cell deriving from c via fn. The computed is
// evaluated immediately and recomputes on every change of c.
//
// Map is a package-level function because Go methods cannot introduce new
// type parameters.
func Map[T, U any](c *Cell[T], fn func(T) U) *Computed[U] {
	return NewComputed(func() U {
		return fn(c.Get())
	}, c)
}

// MapComputed derives a computed cell from another computed cell. Chains
// of any depth recompute in dependency order within one notify pass.
func MapComputed[T, U any](c *Computed[T], fn func(T) U) *Computed[U] {
	return NewComputed(func() U {
		return fn(c.Get())
	}, c)
}
