package validatorjs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/SportsAppIN/libvalidatorjs"
)

func TestMapOfOrDefault(t *testing.T) {
	obj := v.NewObject(
		v.Entry{Key: "a", Value: v.Number(1)},
		v.Entry{Key: "b", Value: v.Number(2)},
	)
	got, ok := v.MapOfOrDefault(obj, v.Null{}).(*v.Map)
	require.True(t, ok)
	assert.Equal(t, []v.Value{v.String("a"), v.String("b")}, got.Keys())
	val, _ := got.Get(v.String("b"))
	assert.Equal(t, v.Number(2), val)

	assert.Equal(t, v.Null{}, v.MapOfOrDefault(v.NewArray(v.Number(1), v.Number(2)), v.Null{}))
	assert.Equal(t, v.Null{}, v.MapOfOrDefault(v.NewMap(), v.Null{}))
	assert.Nil(t, v.MapOfOrDefault(v.String("ab"), nil))
}

func TestMapOfOrDefaultShallow(t *testing.T) {
	inner := v.NewObject(v.Entry{Key: "x", Value: v.Bool(true)})
	got := v.MapOfOrDefault(v.NewObject(v.Entry{Key: "in", Value: inner}), v.Null{}).(*v.Map)
	val, _ := got.Get(v.String("in"))
	assert.Same(t, inner, val)
}

func TestRevMapOfOrDefault(t *testing.T) {
	obj := v.NewObject(
		v.Entry{Key: "a", Value: v.Number(1)},
		v.Entry{Key: "b", Value: v.Number(1)},
		v.Entry{Key: "c", Value: v.Number(2)},
	)
	got, ok := v.RevMapOfOrDefault(obj, v.Null{}).(*v.Map)
	require.True(t, ok)
	assert.Equal(t, 2, got.Len())
	key, _ := got.Get(v.Number(1))
	assert.Equal(t, v.String("b"), key)
	assert.Equal(t, []v.Value{v.Number(1), v.Number(2)}, got.Keys())

	assert.Equal(t, v.Null{}, v.RevMapOfOrDefault(v.Null{}, v.Null{}))
}

func TestSetOfOrDefault(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		got := v.SetOfOrDefault(v.String("aab"), v.Null{}).(*v.Set)
		assert.Equal(t, []v.Value{v.String("a"), v.String("b")}, got.Values())
	})
	t.Run("runes", func(t *testing.T) {
		got := v.SetOfOrDefault(v.String("héé"), v.Null{}).(*v.Set)
		assert.Equal(t, []v.Value{v.String("h"), v.String("é")}, got.Values())
	})
	t.Run("array", func(t *testing.T) {
		got := v.SetOfOrDefault(v.NewArray(v.Number(1), v.Number(1), v.Number(2)), v.Null{}).(*v.Set)
		assert.Equal(t, []v.Value{v.Number(1), v.Number(2)}, got.Values())
	})
	t.Run("empty_string", func(t *testing.T) {
		got := v.SetOfOrDefault(v.String(""), v.Null{}).(*v.Set)
		assert.Equal(t, 0, got.Len())
	})
	t.Run("nil_array", func(t *testing.T) {
		var arr *v.Array
		assert.NotPanics(t, func() {
			got := v.SetOfOrDefault(arr, v.Null{}).(*v.Set)
			assert.Equal(t, 0, got.Len())
		})
	})
	t.Run("other", func(t *testing.T) {
		assert.Equal(t, v.Null{}, v.SetOfOrDefault(v.Number(42), v.Null{}))
		assert.Equal(t, v.Null{}, v.SetOfOrDefault(v.NewObject(), v.Null{}))
	})
}

func TestSetSameValueZero(t *testing.T) {
	a, b := v.NewArray(), v.NewArray()
	s := v.NewSet(
		v.Number(math.NaN()), v.Number(math.NaN()),
		v.Number(0), v.Number(math.Copysign(0, -1)),
		a, b, a,
		v.String("1"), v.Number(1),
	)
	assert.Equal(t, 6, s.Len())
	assert.True(t, s.Has(v.Number(math.NaN())))
	assert.True(t, s.Has(b))
	assert.False(t, s.Has(v.NewArray()))

	assert.True(t, s.Delete(a))
	assert.False(t, s.Delete(a))
	assert.True(t, s.Has(b))
	s.Add(a)
	assert.Same(t, a, s.Values()[s.Len()-1])
}

func TestMapKeepsInsertionPosition(t *testing.T) {
	m := v.NewMap()
	m.Set(v.String("x"), v.Number(1))
	m.Set(v.String("y"), v.Number(2))
	m.Set(v.String("x"), v.Number(3))
	assert.Equal(t, []v.Value{v.String("x"), v.String("y")}, m.Keys())
	got, ok := m.Get(v.String("x"))
	assert.True(t, ok)
	assert.Equal(t, v.Number(3), got)
	assert.False(t, m.Has(v.Null{}))
}
