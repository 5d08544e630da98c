package reactive

import (
	"sync"
	"sync/atomic"
)

// globalIDCounter is the source of unique IDs for all reactive primitives.
var globalIDCounter uint64

// nextID returns the next unique ID for a reactive primitive.
func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}

// Source is anything a computed cell or a binding can depend on: a *Cell
// or a *Computed. Only types in this package implement it.
type Source interface {
	// Watch registers fn to run after this source's value changes. The
	// returned func removes exactly that registration.
	Watch(fn func()) (release func())

	attach(d dependent)
	detach(d dependent)
	rank() int
}

// dependent is a computed cell registered on a source. The notify pass
// drains dependents in ascending rank order.
type dependent interface {
	id() uint64
	rank() int

	// update recomputes and reports whether the cached value changed.
	// A changed dependent fires its own subscribers before returning.
	update() bool

	// downstream returns the dependents registered on this dependent.
	downstream() []dependent
}

// subscriber is one Watch registration.
type subscriber struct {
	id uint64
	fn func()
}

// cellBase provides type-erased subscriber and dependent management.
// It is embedded in Cell[T] and Computed[T] to share registration logic.
type cellBase struct {
	bid uint64

	mu   sync.Mutex
	subs []subscriber
	deps []dependent
}

// watch registers fn and returns a remover for exactly that registration.
func (b *cellBase) watch(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	sid := nextID()

	b.mu.Lock()
	b.subs = append(b.subs, subscriber{id: sid, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == sid {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// addDependent registers a computed cell. Deduplicates by ID so a computed
// listing the same source twice is notified once.
func (b *cellBase) addDependent(d dependent) {
	if d == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.deps {
		if existing.id() == d.id() {
			return
		}
	}
	b.deps = append(b.deps, d)
}

// removeDependent drops a computed cell registration.
func (b *cellBase) removeDependent(d dependent) {
	if d == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.deps {
		if existing.id() == d.id() {
			b.deps = append(b.deps[:i], b.deps[i+1:]...)
			return
		}
	}
}

// snapshotSubs copies the subscriber list so notification happens without
// holding the lock.
func (b *cellBase) snapshotSubs() []subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	return subs
}

// snapshotDeps copies the dependent list.
func (b *cellBase) snapshotDeps() []dependent {
	b.mu.Lock()
	defer b.mu.Unlock()
	deps := make([]dependent, len(b.deps))
	copy(deps, b.deps)
	return deps
}

// fireSubs invokes every subscriber, each isolated by safeCall.
func (b *cellBase) fireSubs() {
	for _, s := range b.snapshotSubs() {
		safeCall(s.fn)
	}
}

// notify runs one notify pass rooted at this source: direct subscribers
// first, then dependent computeds in rank order.
func (b *cellBase) notify() {
	b.fireSubs()
	runPass(b.snapshotDeps())
}
