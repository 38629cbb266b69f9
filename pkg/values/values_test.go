package values

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"identical ints", 1, 1, true},
		{"int vs int64", 1, int64(1), true},
		{"int vs float", 1, 1.0, true},
		{"bool vs int", true, 1, true},
		{"false vs zero", false, 0, true},
		{"unequal ints", 1, 2, false},
		{"strings", "abc", "abc", true},
		{"unequal strings", "abc", "abd", false},
		{"string vs number", "1", 1, false},
		{"nils", nil, nil, true},
		{"nil vs zero", nil, 0, false},
		{"any slices", []any{1, 2}, []any{1, 2}, true},
		{"cross-kind slices", []any{1, 2}, []int{1, 2}, true},
		{"cross-numeric slices", []any{1.0, 2.0}, []int{1, 2}, true},
		{"unequal length slices", []any{1}, []any{1, 2}, false},
		{"nested slices", []any{[]any{1}, 2}, []any{[]any{1}, 2}, true},
		{"string vs slice", "ab", []any{"a", "b"}, false},
		{"maps", map[string]any{"a": 1}, map[string]any{"a": 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "equality should be symmetric")
		})
	}
}

func TestTruthy(t *testing.T) {
	assert.True(t, Truthy(true))
	assert.True(t, Truthy(1))
	assert.True(t, Truthy("x"))
	assert.True(t, Truthy([]any{1}))
	assert.True(t, Truthy(struct{}{}))

	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(0))
	assert.False(t, Truthy(0.0))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy([]any{}))
	assert.False(t, Truthy(map[string]any{}))
}

func TestIsScalar(t *testing.T) {
	for _, v := range []any{nil, true, 1, int64(2), 3.5, complex(1, 2), "s", []byte("b")} {
		assert.True(t, IsScalar(v), "%v should be scalar", v)
	}
	for _, v := range []any{[]any{1}, map[string]any{}, struct{}{}} {
		assert.False(t, IsScalar(v), "%v should not be scalar", v)
	}
}

func TestAsSequence(t *testing.T) {
	t.Run("any slice", func(t *testing.T) {
		seq, ok := AsSequence([]any{1, 2, 3})
		require.True(t, ok)
		assert.Equal(t, 3, seq.Len())
		assert.Equal(t, 2, seq.At(1))
		assert.Equal(t, []any{2, 3}, seq.Slice(1, 3))
	})

	t.Run("typed slice preserves type on slicing", func(t *testing.T) {
		seq, ok := AsSequence([]int{4, 5, 6})
		require.True(t, ok)
		assert.Equal(t, 6, seq.At(2))
		assert.Equal(t, []int{4, 5}, seq.Slice(0, 2))
	})

	t.Run("array", func(t *testing.T) {
		seq, ok := AsSequence([3]string{"a", "b", "c"})
		require.True(t, ok)
		assert.Equal(t, 3, seq.Len())
		assert.Equal(t, []string{"b", "c"}, seq.Slice(1, 3))
	})

	t.Run("string views runes and slices text", func(t *testing.T) {
		seq, ok := AsSequence("héllo")
		require.True(t, ok)
		assert.Equal(t, 5, seq.Len())
		assert.Equal(t, 'é', seq.At(1))
		assert.Equal(t, "hé", seq.Slice(0, 2))
	})

	t.Run("non-sequences", func(t *testing.T) {
		for _, v := range []any{nil, 1, []byte("raw"), map[string]any{}} {
			_, ok := AsSequence(v)
			assert.False(t, ok, "%v should not be a sequence", v)
		}
	})
}

func TestTypeDescriptors(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		v    any
		want bool
	}{
		{"int instance", Int, 5, true},
		{"int64 instance", Int, int64(5), true},
		{"bool is an int", Int, true, true},
		{"float is not an int", Int, 5.0, false},
		{"bool instance", Bool, true, true},
		{"int is not a bool", Bool, 1, false},
		{"float instance", Float, 1.5, true},
		{"string instance", String, "x", true},
		{"bytes instance", Bytes, []byte("x"), true},
		{"list instance", List, []any{1}, true},
		{"string is not a list", List, "abc", false},
		{"map instance", Map, map[string]any{}, true},
		{"nil instance", Nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Instance(tt.v))
		})
	}
}

func TestTypeSpecializes(t *testing.T) {
	assert.True(t, Bool.Specializes(Int))
	assert.True(t, Int.Specializes(Int))
	assert.False(t, Int.Specializes(Bool))
	assert.False(t, Float.Specializes(Int))
}

func TestTypeFor(t *testing.T) {
	type point struct{ X, Y int }

	pt := TypeFor(reflect.TypeOf(point{}))
	assert.True(t, pt.Instance(point{1, 2}))
	assert.False(t, pt.Instance(5))
	assert.False(t, pt.Instance(nil))
}
