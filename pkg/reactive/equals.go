package reactive

import "reflect"

// sameValue reports whether a and b are the same value under the change
// detection rule cells use: plain == for primitive kinds, reference
// identity for pointer-like kinds. Deep equality is deliberately never
// used — replacing a slice's contents behind the same header is invisible
// to Set, which is why the force-notifying mutation helpers exist.
func sameValue[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return sameReference(any(a), any(b))
	}
}

// sameReference compares by identity: pointer-like kinds compare their
// pointers, comparable kinds fall back to ==, anything else always counts
// as changed.
func sameReference(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() {
		return ra.IsValid() == rb.IsValid()
	}
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	default:
		if ra.Comparable() {
			return ra.Equal(rb)
		}
		return false
	}
}
