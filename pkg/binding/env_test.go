package binding

import (
	"testing"

	"github.com/arthur-debert/seqmatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvInvariant(t *testing.T) {
	env := NewEnv()

	assert.Equal(t, 1, env.Depth())
	assert.Empty(t, env.Effective())
}

func TestEnvSetGet(t *testing.T) {
	env := NewEnv()

	require.NoError(t, env.Set("x", 1))

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = env.Get("missing")
	assert.False(t, ok)
}

func TestEnvRebinding(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.Set("x", 1))

	t.Run("equal value is a no-op", func(t *testing.T) {
		assert.NoError(t, env.Set("x", 1))
	})

	t.Run("cross-kind equal value is a no-op", func(t *testing.T) {
		assert.NoError(t, env.Set("x", 1.0))
	})

	t.Run("unequal value conflicts", func(t *testing.T) {
		err := env.Set("x", 2)
		assert.True(t, errors.IsErrorCode(err, errors.ErrBindingConflict))
	})
}

func TestEnvConflictAcrossFrames(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.Set("x", 1))

	env.Push()
	err := env.Set("x", 2)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBindingConflict),
		"a binding in an outer frame is visible to the conflict check")
}

func TestEnvCommit(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.Set("x", 1))

	env.Push()
	require.NoError(t, env.Set("y", 2))
	env.Commit()

	assert.Equal(t, 1, env.Depth())

	v, ok := env.Get("y")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestEnvRollback(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.Set("x", 1))

	env.Push()
	require.NoError(t, env.Set("y", 2))
	env.Rollback()

	assert.Equal(t, 1, env.Depth())

	_, ok := env.Get("y")
	assert.False(t, ok, "rolled-back bindings must leave no trace")
	_, ok = env.Get("x")
	assert.True(t, ok)
}

func TestEnvShadow(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.Set("g", []any{1}))

	env.Push()
	env.Shadow("g", []any{2, 3})

	v, _ := env.Get("g")
	assert.Equal(t, []any{2, 3}, v, "shadowing wins over the outer binding")

	env.Rollback()
	v, _ = env.Get("g")
	assert.Equal(t, []any{1}, v, "rollback restores the shadowed binding")
}

func TestEnvEffective(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.Set("x", 1))
	env.Push()
	env.Shadow("x", 10)
	require.NoError(t, env.Set("y", 2))

	assert.Equal(t, Bindings{"x": 10, "y": 2}, env.Effective())
}

func TestEnvReset(t *testing.T) {
	env := NewEnv()
	require.NoError(t, env.Set("x", 1))
	env.Push()
	env.Push()

	env.Reset()

	assert.Equal(t, 1, env.Depth())
	assert.Empty(t, env.Effective())
}

func TestHistory(t *testing.T) {
	h := NewHistory()

	_, ok := h.Latest()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())

	first := h.Append(Bindings{"x": 1})
	second := h.Append(Bindings{"x": 2})

	assert.Equal(t, 2, h.Len())
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first, h.At(0))

	latest, ok := h.Latest()
	require.True(t, ok)
	v, ok := latest.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = latest.Lookup("missing")
	assert.False(t, ok)
}
