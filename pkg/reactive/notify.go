package reactive

import (
	"log/slog"
	"sync/atomic"
)

// panicHandler receives recovered panics from subscriber callbacks,
// compute functions, and binding re-renders. Holds a func(any).
var panicHandler atomic.Value

func init() {
	panicHandler.Store(func(recovered any) {
		slog.Error("reactive: listener panicked", "panic", recovered)
	})
}

// SetPanicHandler replaces the handler invoked when a listener panics
// during a notify pass. A nil handler restores the default, which logs
// with slog. Listener panics never abort the rest of the pass.
func SetPanicHandler(fn func(recovered any)) {
	if fn == nil {
		fn = func(recovered any) {
			slog.Error("reactive: listener panicked", "panic", recovered)
		}
	}
	panicHandler.Store(fn)
}

// safeCall runs fn, recovering and reporting any panic so one failing
// listener cannot suppress its siblings.
func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			panicHandler.Load().(func(any))(r)
		}
	}()
	fn()
}

// runPass drains dirty computed cells in ascending rank order. Rank is a
// stable topological order: a computed's rank is strictly greater than
// every source it reads, so by the time a computed recomputes, all of its
// inputs are current. Each computed updates at most once per pass; only
// computeds whose cached value actually changed propagate further.
func runPass(roots []dependent) {
	if len(roots) == 0 {
		return
	}

	queue := make([]dependent, len(roots))
	copy(queue, roots)
	done := make(map[uint64]bool, len(queue))

	for len(queue) > 0 {
		min := 0
		for i := 1; i < len(queue); i++ {
			if queue[i].rank() < queue[min].rank() {
				min = i
			}
		}
		d := queue[min]
		queue = append(queue[:min], queue[min+1:]...)

		if done[d.id()] {
			continue
		}
		done[d.id()] = true

		if d.update() {
			queue = append(queue, d.downstream()...)
		}
	}
}
