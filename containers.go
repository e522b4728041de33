package validatorjs

import (
	"strings"

	"github.com/samber/lo"
)

// MapOfOrDefault builds a Map of key → value over the own keys of an
// Object, in discovery order.  Any other input yields fallback.
func MapOfOrDefault(v, fallback Value) Value {
	obj, ok := v.(*Object)
	if !ok || !IsObject(v) {
		return fallback
	}
	m := NewMap()
	for k, val := range obj.All() {
		m.Set(String(k), val)
	}
	return m
}

// RevMapOfOrDefault builds a Map of value → key over the own keys of an
// Object.  When several keys share a value the last one wins.
func RevMapOfOrDefault(v, fallback Value) Value {
	obj, ok := v.(*Object)
	if !ok || !IsObject(v) {
		return fallback
	}
	m := NewMap()
	for k, val := range obj.All() {
		m.Set(val, String(k))
	}
	return m
}

// SetOfOrDefault builds a Set of the unique elements of an Array, or of
// the unique characters (code points) of a String.  Any other input yields
// fallback.
func SetOfOrDefault(v, fallback Value) Value {
	switch val := v.(type) {
	case *Array:
		return NewSet(val.Values()...)
	case String:
		chars := strings.Split(string(val), "")
		return NewSet(lo.Map(chars, func(c string, _ int) Value { return String(c) })...)
	default:
		return fallback
	}
}
