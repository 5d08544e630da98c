package reactive

import (
	"errors"
	"testing"
)

func TestListCellPushAlwaysNotifies(t *testing.T) {
	items := NewListCell([]string{"a"})

	var calls int
	items.Subscribe(func([]string) { calls++ })

	// Push mutates in place; old and new headers may alias, so the
	// equality gate is bypassed.
	items.Push("b")
	items.Push("c")

	if calls != 2 {
		t.Errorf("expected a notification per push, got %d", calls)
	}
	if items.Len() != 3 {
		t.Errorf("expected 3 items, got %d", items.Len())
	}
}

func TestListCellRemoveAt(t *testing.T) {
	items := NewListCell([]int{1, 2, 3})

	var calls int
	items.Subscribe(func([]int) { calls++ })

	items.RemoveAt(1)
	got := items.Get()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("unexpected items after RemoveAt: %v", got)
	}

	items.RemoveAt(99) // out of bounds: untouched, still notifies
	if items.Len() != 2 {
		t.Errorf("out-of-bounds RemoveAt changed the slice: %v", items.Get())
	}
	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}
}

func TestListCellClear(t *testing.T) {
	items := NewListCell([]int{1, 2})
	items.Clear()
	if items.Len() != 0 {
		t.Errorf("expected empty list, got %v", items.Get())
	}
}

func TestListCellFilterNotReactive(t *testing.T) {
	items := NewListCell([]int{1, 2, 3, 4})

	var calls int
	items.Subscribe(func([]int) { calls++ })

	evens := items.Filter(func(n int) bool { return n%2 == 0 })
	if len(evens) != 2 || evens[0] != 2 || evens[1] != 4 {
		t.Errorf("unexpected filter result %v", evens)
	}
	if calls != 0 {
		t.Errorf("Filter must not notify, got %d calls", calls)
	}
	if items.Len() != 4 {
		t.Errorf("Filter must not modify the cell, got %v", items.Get())
	}
}

func TestNewListCellNilBecomesEmpty(t *testing.T) {
	items := NewListCell[int](nil)
	if items.Get() == nil || items.Len() != 0 {
		t.Errorf("expected empty non-nil slice, got %v", items.Get())
	}
}

func TestPushAnyOnSlice(t *testing.T) {
	c := NewCell[any]([]any{1})

	var calls int
	c.Subscribe(func(any) { calls++ })

	if err := PushAny(c, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.Get().([]any)
	if len(got) != 2 || got[1] != 2 {
		t.Errorf("unexpected items %v", got)
	}
	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
}

func TestPushAnyOnNonSlice(t *testing.T) {
	c := NewCell[any](42)

	var calls int
	c.Subscribe(func(any) { calls++ })

	err := PushAny(c, 1)
	if !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
	if calls != 0 {
		t.Errorf("failed push must not notify, got %d calls", calls)
	}
	if c.Get() != 42 {
		t.Errorf("failed push must not modify the cell")
	}
}

func TestFilterAny(t *testing.T) {
	c := NewCell[any]([]any{1, "x", 2})

	got, err := FilterAny(c, func(v any) bool {
		_, isInt := v.(int)
		return isInt
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("unexpected filter result %v", got)
	}

	bad := NewCell[any]("nope")
	if _, err := FilterAny(bad, func(any) bool { return true }); !errors.Is(err, ErrNotSupported) {
		t.Errorf("expected ErrNotSupported, got %v", err)
	}
}
