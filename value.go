// Package validatorjs provides type predicates and default-coalescing
// accessors over a small dynamic value model, merged into one namespace
// with the string checks of github.com/go-playground/validator/v10.
//
// The model has twelve kinds: two absent markers (Null, Undefined), three
// primitives (String, Number, Bool) and seven reference kinds (Array,
// Object, Set, Map, WeakSet, WeakMap, Function).  Predicates are total:
// they accept any Value, including a nil interface, and never panic.
//
// Every predicate and accessor is pure and safe for concurrent use.
package validatorjs

import (
	"iter"
	"math"
	"slices"
	"sort"

	"github.com/samber/lo"
)

// Value is a dynamic value.  Concrete types:
//
//   - Null      declared absent
//   - Undefined never declared (a nil Value is treated the same way)
//   - String, Number, Bool
//   - *Array, *Object, *Set, *Map, *WeakSet, *WeakMap, *Function
type Value interface {
	dynValue() // sealed marker — only types in this package implement Value
}

// Null is the declared-absent marker.
type Null struct{}

// Undefined is the never-declared marker.
type Undefined struct{}

// String is a string value.
type String string

// Number is an IEEE-754 double, including NaN and the infinities.
type Number float64

// Bool is a boolean value.
type Bool bool

func (Null) dynValue()      {}
func (Undefined) dynValue() {}
func (String) dynValue()    {}
func (Number) dynValue()    {}
func (Bool) dynValue()      {}
func (*Array) dynValue()    {}
func (*Object) dynValue()   {}
func (*Set) dynValue()      {}
func (*Map) dynValue()      {}
func (*WeakSet) dynValue()  {}
func (*WeakMap) dynValue()  {}
func (*Function) dynValue() {}

// ── Array ───────────────────────────────────────────────────

// Array is an ordered sequence of Values.  Arrays compare by identity.
type Array struct {
	Elems []Value
}

// NewArray creates an Array holding elems.
func NewArray(elems ...Value) *Array {
	return &Array{Elems: elems}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Elems)
}

// Values returns a copy of the elements.  A nil Array has none.
func (a *Array) Values() []Value {
	if a == nil {
		return nil
	}
	return slices.Clone(a.Elems)
}

// ── Object ──────────────────────────────────────────────────

// Entry is a convenience type for building Object values.
type Entry struct {
	Key   string
	Value Value
}

// Object is a structural record: string keys kept in discovery order.
// Objects compare by identity.
type Object struct {
	keys   []string
	values []Value
	index  map[string]int
}

// NewObject creates an Object from entries.  A repeated key overwrites
// the earlier value but keeps its position.
func NewObject(entries ...Entry) *Object {
	o := &Object{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		o.Set(e.Key, e.Value)
	}
	return o
}

// Set stores value under key.
func (o *Object) Set(key string, value Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.values[i] = value
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.values[i], true
}

// Has reports whether key is an own key of o.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns a copy of the own keys in discovery order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Len returns the number of own keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// All iterates own key/value pairs in discovery order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for i, k := range o.keys {
			if !yield(k, o.values[i]) {
				return
			}
		}
	}
}

// ── Set / Map ───────────────────────────────────────────────

// nanKey stands in for every NaN so that NaN is a single member.
type nanKey struct{}

// sameValueZero maps v onto a comparable key: primitives by value (all
// NaNs equal, +0 equal to -0), reference kinds by pointer identity.
func sameValueZero(v Value) any {
	switch val := v.(type) {
	case nil:
		return Undefined{}
	case Number:
		if math.IsNaN(float64(val)) {
			return nanKey{}
		}
		return val
	default:
		return val
	}
}

// Set is an insertion-ordered collection of unique Values.
type Set struct {
	items []Value
	index map[any]int
}

// NewSet creates a Set from items, dropping repeats after the first.
func NewSet(items ...Value) *Set {
	uniq := lo.UniqBy(items, sameValueZero)
	s := &Set{items: uniq, index: make(map[any]int, len(uniq))}
	for i, v := range uniq {
		s.index[sameValueZero(v)] = i
	}
	return s
}

// Add inserts v unless an equal member is already present.
func (s *Set) Add(v Value) {
	if s.index == nil {
		s.index = make(map[any]int)
	}
	k := sameValueZero(v)
	if _, ok := s.index[k]; ok {
		return
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
}

// Has reports whether v is a member.
func (s *Set) Has(v Value) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[sameValueZero(v)]
	return ok
}

// Delete removes v and reports whether it was present.
func (s *Set) Delete(v Value) bool {
	if s == nil {
		return false
	}
	k := sameValueZero(v)
	i, ok := s.index[k]
	if !ok {
		return false
	}
	delete(s.index, k)
	s.items = slices.Delete(s.items, i, i+1)
	for j := i; j < len(s.items); j++ {
		s.index[sameValueZero(s.items[j])] = j
	}
	return true
}

// Len returns the number of members.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Values returns a copy of the members in insertion order.
func (s *Set) Values() []Value {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Map is an insertion-ordered Value→Value association.
type Map struct {
	keys   []Value
	values []Value
	index  map[any]int
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{index: make(map[any]int)}
}

// Set stores value under key.  An existing key keeps its position.
func (m *Map) Set(key, value Value) {
	if m.index == nil {
		m.index = make(map[any]int)
	}
	k := sameValueZero(key)
	if i, ok := m.index[k]; ok {
		m.values[i] = value
		return
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns the value stored under key.
func (m *Map) Get(key Value) (Value, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[sameValueZero(key)]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

// Has reports whether key is present.
func (m *Map) Has(key Value) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []Value {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates entries in insertion order.
func (m *Map) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

// ── Function ────────────────────────────────────────────────

// Function is a callable value.  Functions compare by identity.
type Function struct {
	Fn func(args ...Value) Value
}

// NewFunction wraps fn.
func NewFunction(fn func(args ...Value) Value) *Function {
	return &Function{Fn: fn}
}

// Call invokes the wrapped function; a nil Fn yields Undefined.
func (f *Function) Call(args ...Value) Value {
	if f == nil || f.Fn == nil {
		return Undefined{}
	}
	return f.Fn(args...)
}

// ── Type tags / conversion ──────────────────────────────────

// TypeOf returns the dynamic type tag of v: "undefined", "string",
// "number", "boolean", "function", or "object" (null and every
// container kind).
func TypeOf(v Value) string {
	switch v.(type) {
	case nil, Undefined:
		return "undefined"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	case *Function:
		return "function"
	default:
		return "object"
	}
}

// Of converts a native Go value.  nil becomes Null, every integer and
// float kind becomes Number, []any becomes an Array and map[string]any an
// Object with sorted keys.  Values already implementing Value pass
// through; anything else becomes Undefined.
func Of(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null{}
	case Value:
		return v
	case string:
		return String(v)
	case bool:
		return Bool(v)
	case int:
		return Number(v)
	case int8:
		return Number(v)
	case int16:
		return Number(v)
	case int32:
		return Number(v)
	case int64:
		return Number(v)
	case uint:
		return Number(v)
	case uint8:
		return Number(v)
	case uint16:
		return Number(v)
	case uint32:
		return Number(v)
	case uint64:
		return Number(v)
	case float32:
		return Number(v)
	case float64:
		return Number(v)
	case []any:
		return NewArray(lo.Map(v, func(e any, _ int) Value { return Of(e) })...)
	case []string:
		return NewArray(lo.Map(v, func(e string, _ int) Value { return String(e) })...)
	case map[string]any:
		keys := lo.Keys(v)
		sort.Strings(keys)
		o := NewObject()
		for _, k := range keys {
			o.Set(k, Of(v[k]))
		}
		return o
	case func(args ...Value) Value:
		return NewFunction(v)
	default:
		return Undefined{}
	}
}
