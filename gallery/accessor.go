package gallery

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrGroupKeyNotFound is returned when the configured group property cannot be
// resolved on an item. It is a configuration error, not a filter miss.
var ErrGroupKeyNotFound = errors.New("group key not found")

// GroupAccessor resolves the group key of an item.
type GroupAccessor interface {
	GroupKey(item any) (string, error)
}

// GroupAccessorFunc adapts a function to GroupAccessor.
type GroupAccessorFunc func(item any) (string, error)

func (f GroupAccessorFunc) GroupKey(item any) (string, error) {
	return f(item)
}

type fieldGetter func(v reflect.Value) (any, bool)

// FieldAccessor resolves a group key by name: an exported struct field, a
// method taking no arguments, or a string map key. The lookup is resolved once
// per dynamic type and cached.
type FieldAccessor struct {
	name  string
	cache map[reflect.Type]fieldGetter
}

// NewFieldAccessor returns an accessor for the property called name.
func NewFieldAccessor(name string) *FieldAccessor {
	return &FieldAccessor{
		name:  name,
		cache: make(map[reflect.Type]fieldGetter),
	}
}

func (a *FieldAccessor) Name() string {
	return a.name
}

func (a *FieldAccessor) GroupKey(item any) (string, error) {
	if item == nil {
		return "", fmt.Errorf("%w: %q on nil item", ErrGroupKeyNotFound, a.name)
	}

	v := reflect.ValueOf(item)
	get, ok := a.cache[v.Type()]
	if !ok {
		get = resolveGetter(v.Type(), a.name)
		a.cache[v.Type()] = get
	}
	if get == nil {
		return "", fmt.Errorf("%w: %q on %s", ErrGroupKeyNotFound, a.name, v.Type())
	}

	val, ok := get(v)
	if !ok {
		return "", fmt.Errorf("%w: %q on %s", ErrGroupKeyNotFound, a.name, v.Type())
	}
	return groupString(val), nil
}

func groupString(val any) string {
	switch t := val.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(val)
}

func resolveGetter(t reflect.Type, name string) fieldGetter {
	if name == "" {
		return nil
	}

	// Methods come from the item's own method set: pointer receivers are only
	// found on pointer items.
	if m, ok := t.MethodByName(name); ok && m.Type.NumIn() == 1 && m.Type.NumOut() >= 1 {
		idx := m.Index
		return func(v reflect.Value) (any, bool) {
			if v.Kind() == reflect.Pointer && v.IsNil() {
				return nil, false
			}
			out := v.Method(idx).Call(nil)
			return out[0].Interface(), true
		}
	}

	base := t
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	switch base.Kind() {
	case reflect.Struct:
		f, ok := base.FieldByName(name)
		if !ok || !f.IsExported() {
			return nil
		}
		index := f.Index
		return func(v reflect.Value) (any, bool) {
			for v.Kind() == reflect.Pointer {
				if v.IsNil() {
					return nil, false
				}
				v = v.Elem()
			}
			fv, err := v.FieldByIndexErr(index)
			if err != nil {
				return nil, false
			}
			return fv.Interface(), true
		}
	case reflect.Map:
		if base.Key().Kind() != reflect.String {
			return nil
		}
		key := reflect.ValueOf(name).Convert(base.Key())
		return func(v reflect.Value) (any, bool) {
			for v.Kind() == reflect.Pointer {
				if v.IsNil() {
					return nil, false
				}
				v = v.Elem()
			}
			mv := v.MapIndex(key)
			if !mv.IsValid() {
				return nil, false
			}
			return mv.Interface(), true
		}
	}
	return nil
}
