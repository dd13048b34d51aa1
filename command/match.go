package command

import "reflect"

// Unit is the parameter type of commands that carry no payload.
// A Command declared over Unit accepts an absent (nil) parameter.
type Unit struct{}

var unitType = reflect.TypeFor[Unit]()

// matcher converts an untyped call-site value into P.
type matcher[P any] struct {
	typ      reflect.Type
	unit     bool
	nillable bool
	// elem is set when P is a pointer type; values of exactly elem are
	// promoted into a fresh *elem.
	elem reflect.Type
}

func newMatcher[P any]() matcher[P] {
	t := reflect.TypeFor[P]()
	m := matcher[P]{typ: t, unit: t == unitType}
	switch t.Kind() {
	case reflect.Pointer:
		m.nillable = true
		m.elem = t.Elem()
	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		m.nillable = true
	}
	return m
}

func (m matcher[P]) match(v any) (P, bool) {
	var zero P

	if v == nil {
		if m.unit || m.nillable {
			return zero, true
		}
		return zero, false
	}

	if p, ok := v.(P); ok {
		return p, true
	}

	// One level of unwrapping: *P carrying a value.
	if ptr, ok := v.(*P); ok {
		if ptr == nil {
			if m.nillable {
				return zero, true
			}
			return zero, false
		}
		return *ptr, true
	}

	// Promotion: a bare U for a declared *U.
	if m.elem != nil && reflect.TypeOf(v) == m.elem {
		pv := reflect.New(m.elem)
		pv.Elem().Set(reflect.ValueOf(v))
		return pv.Interface().(P), true
	}

	return zero, false
}
