package validatorjs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/SportsAppIN/libvalidatorjs"
)

func TestObjectDiscoveryOrder(t *testing.T) {
	o := v.NewObject(
		v.Entry{Key: "z", Value: v.Number(1)},
		v.Entry{Key: "a", Value: v.Number(2)},
		v.Entry{Key: "z", Value: v.Number(3)},
	)
	assert.Equal(t, []string{"z", "a"}, o.Keys())
	got, ok := o.Get("z")
	require.True(t, ok)
	assert.Equal(t, v.Number(3), got)
	assert.False(t, o.Has("missing"))

	var seen []string
	for k := range o.All() {
		seen = append(seen, k)
		break
	}
	assert.Equal(t, []string{"z"}, seen)
}

func TestZeroValueContainers(t *testing.T) {
	var o v.Object
	o.Set("k", v.Bool(true))
	assert.Equal(t, 1, o.Len())

	var s v.Set
	s.Add(v.Number(1))
	assert.True(t, s.Has(v.Number(1)))

	var m v.Map
	m.Set(v.Null{}, v.Undefined{})
	assert.True(t, m.Has(v.Null{}))
}

func TestFunctionCall(t *testing.T) {
	double := v.NewFunction(func(args ...v.Value) v.Value {
		return v.Number(2 * v.NumberOr(args[0], 0))
	})
	assert.Equal(t, v.Number(8), double.Call(v.Number(4)))
	assert.Equal(t, v.Undefined{}, v.NewFunction(nil).Call())
	assert.True(t, v.IsFunction(double))
}

func TestOf(t *testing.T) {
	assert.Equal(t, v.Null{}, v.Of(nil))
	assert.Equal(t, v.String("s"), v.Of("s"))
	assert.Equal(t, v.Number(3), v.Of(int8(3)))
	assert.Equal(t, v.Number(3), v.Of(uint64(3)))
	assert.Equal(t, v.Bool(true), v.Of(true))
	assert.Equal(t, v.Undefined{}, v.Of(struct{}{}))

	arr, ok := v.Of([]any{1, "x", nil}).(*v.Array)
	require.True(t, ok)
	assert.Equal(t, []v.Value{v.Number(1), v.String("x"), v.Null{}}, arr.Elems)

	obj, ok := v.Of(map[string]any{"b": 1, "a": []string{"q"}}).(*v.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	assert.True(t, v.IsObject(obj))

	already := v.NewSet()
	assert.Same(t, already, v.Of(already))
}
