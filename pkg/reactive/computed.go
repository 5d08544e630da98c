package reactive

import "sync"

// Computed is a read-only cell whose value derives from one or more
// sources via a pure compute function. The value is computed eagerly at
// construction and kept current by the notify pass; Get never computes.
//
// Computeds may depend on other computeds. Each computed carries a rank one
// greater than the highest-ranked source it lists, and the notify pass
// recomputes dirty computeds in ascending rank order, so every input is
// current by the time a computed runs.
type Computed[T any] struct {
	base cellBase

	// compute derives the value from the current source values.
	compute func() T

	// value is the cached result of the last computation.
	value T

	// mu protects the cached value.
	mu sync.RWMutex

	// sources is the fixed dependency list, held only for Release.
	sources []Source

	// rnk is max(source ranks) + 1, fixed at construction.
	rnk int

	// equal overrides the default change detection.
	equal func(T, T) bool
}

// NewComputed creates a computed cell over an explicit, fixed list of
// sources. The compute function runs once immediately; registration with
// each source is a back-reference for notification, not ownership — call
// Release to sever it when the computed's creator is done with it.
func NewComputed[T any](compute func() T, sources ...Source) *Computed[T] {
	rnk := 1
	for _, s := range sources {
		if s == nil {
			continue
		}
		if r := s.rank() + 1; r > rnk {
			rnk = r
		}
	}

	c := &Computed[T]{
		base:    cellBase{bid: nextID()},
		compute: compute,
		sources: sources,
		rnk:     rnk,
	}
	c.value = compute()

	for _, s := range sources {
		if s != nil {
			s.attach(c)
		}
	}
	return c
}

// Get returns the cached value. It never triggers computation; the cache
// is kept current by the notify pass.
func (c *Computed[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Subscribe registers a listener invoked with the new value whenever a
// recomputation produces a different result.
func (c *Computed[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	return c.base.watch(func() {
		fn(c.Get())
	})
}

// Watch registers a value-less listener. Implements Source.
func (c *Computed[T]) Watch(fn func()) (release func()) {
	return c.base.watch(fn)
}

// WithEquals configures a custom change-detection function.
func (c *Computed[T]) WithEquals(fn func(T, T) bool) *Computed[T] {
	c.equal = fn
	return c
}

// ID returns the unique identifier for this computed cell.
func (c *Computed[T]) ID() uint64 {
	return c.base.bid
}

// Release detaches the computed from every source. After Release the
// computed keeps its last value but never recomputes again.
func (c *Computed[T]) Release() {
	for _, s := range c.sources {
		if s != nil {
			s.detach(c)
		}
	}
}

func (c *Computed[T]) equals(a, b T) bool {
	if c.equal != nil {
		return c.equal(a, b)
	}
	return sameValue(a, b)
}

// dependent implementation, driven by the notify pass.

func (c *Computed[T]) id() uint64 { return c.base.bid }

func (c *Computed[T]) rank() int { return c.rnk }

// update recomputes the cached value. If the compute function panics the
// old value is kept and no propagation occurs. A changed value fires this
// computed's own subscribers before further propagation.
func (c *Computed[T]) update() bool {
	var newValue T
	ok := false
	safeCall(func() {
		newValue = c.compute()
		ok = true
	})
	if !ok {
		return false
	}

	c.mu.Lock()
	changed := !c.equals(c.value, newValue)
	if changed {
		c.value = newValue
	}
	c.mu.Unlock()

	if changed {
		c.base.fireSubs()
	}
	return changed
}

func (c *Computed[T]) downstream() []dependent {
	return c.base.snapshotDeps()
}

// Source implementation, so computeds can feed other computeds.

func (c *Computed[T]) attach(d dependent) { c.base.addDependent(d) }
func (c *Computed[T]) detach(d dependent) { c.base.removeDependent(d) }
