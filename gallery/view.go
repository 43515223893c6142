package gallery

import (
	"reflect"
	"slices"
)

// view is the filtered projection of the gallery's item source. Exactly one
// exists per gallery; hosts observe it but never mutate it.
type view struct {
	source   []any
	filtered []any
	err      error

	accept func(item any) (bool, error)

	// observers are notified after every successful or failed refresh
	observers []func()
}

func newView(accept func(item any) (bool, error)) *view {
	return &view{accept: accept}
}

// rebind replaces the source and refreshes synchronously.
func (v *view) rebind(source []any) error {
	v.source = source
	return v.refresh()
}

// refresh re-evaluates the inclusion predicate once per item.
func (v *view) refresh() error {
	filtered := make([]any, 0, len(v.source))
	var err error
	for _, item := range v.source {
		ok := true
		if v.accept != nil {
			ok, err = v.accept(item)
			if err != nil {
				break
			}
		}
		if ok {
			filtered = append(filtered, item)
		}
	}

	v.err = err
	if err == nil {
		v.filtered = filtered
	}
	for _, o := range v.observers {
		o()
	}
	return err
}

func (v *view) observe(f func()) {
	v.observers = append(v.observers, f)
}

// Err returns the configuration error raised by the last refresh, if any.
func (v *view) Err() error {
	return v.err
}

func (v *view) Len() int {
	if v == nil {
		return 0
	}
	return len(v.filtered)
}

func (v *view) At(i int) any {
	if v == nil || i < 0 || i >= len(v.filtered) {
		return nil
	}
	return v.filtered[i]
}

// IndexOf returns the index of item by reference, or -1.
func (v *view) IndexOf(item any) int {
	if v == nil || item == nil {
		return -1
	}
	return slices.IndexFunc(v.filtered, func(o any) bool {
		return sameItem(o, item)
	})
}

func (v *view) Items() []any {
	if v == nil {
		return nil
	}
	return slices.Clone(v.filtered)
}

// sameItem compares comparable items by equality and reference types such as
// maps and slices by identity. Structs and arrays holding reference fields
// carry no identity of their own and compare deeply.
func sameItem(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Struct, reflect.Array:
		return reflect.DeepEqual(a, b)
	}
	return false
}
