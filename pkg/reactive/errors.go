package reactive

import "errors"

// ErrNotSupported is returned when a slice-only operation (PushAny,
// FilterAny) is invoked on a cell whose current value is not a slice.
// The cell is left untouched and no notification fires.
var ErrNotSupported = errors.New("reactive: operation not supported on non-slice cell")
