package reactive

// ListCell wraps a slice-valued cell with collection operations. Mutating
// operations change the slice in place and always run a notify pass,
// bypassing change detection: after an in-place append the old and new
// slice headers may be identical, so the equality gate would swallow the
// update.
type ListCell[T any] struct {
	*Cell[[]T]
}

// NewListCell creates a list cell with the given initial items.
// A nil initial slice becomes an empty one.
func NewListCell[T any](initial []T) *ListCell[T] {
	if initial == nil {
		initial = []T{}
	}
	return &ListCell[T]{NewCell(initial)}
}

// Push appends item and unconditionally notifies.
func (l *ListCell[T]) Push(item T) {
	l.mutate(func(items []T) []T {
		return append(items, item)
	})
}

// RemoveAt removes the item at index and notifies. An out-of-bounds index
// leaves the slice untouched but still notifies, like every mutating op.
func (l *ListCell[T]) RemoveAt(index int) {
	l.mutate(func(items []T) []T {
		if index < 0 || index >= len(items) {
			return items
		}
		return append(items[:index], items[index+1:]...)
	})
}

// Clear removes all items and notifies.
func (l *ListCell[T]) Clear() {
	l.mutate(func([]T) []T {
		return []T{}
	})
}

// Len returns the current number of items.
func (l *ListCell[T]) Len() int {
	return len(l.Get())
}

// Filter returns a plain filtered copy of the current items. The result is
// not reactive and the cell is not modified.
func (l *ListCell[T]) Filter(pred func(T) bool) []T {
	items := l.Get()
	result := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}

// PushAny appends item to a dynamically-typed cell whose value is a []any.
// Returns ErrNotSupported, without notifying, if the cell holds anything
// else.
func PushAny(c *Cell[any], item any) error {
	items, ok := c.Get().([]any)
	if !ok {
		return ErrNotSupported
	}
	items = append(items, item)
	c.mutate(func(any) any {
		return items
	})
	return nil
}

// FilterAny returns a plain filtered copy of a dynamically-typed cell's
// []any value, or ErrNotSupported if the cell holds anything else.
func FilterAny(c *Cell[any], pred func(any) bool) ([]any, error) {
	items, ok := c.Get().([]any)
	if !ok {
		return nil, ErrNotSupported
	}
	result := make([]any, 0, len(items))
	for _, item := range items {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result, nil
}
