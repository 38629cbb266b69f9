package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/seqmatch/pkg/errors"
	"github.com/arthur-debert/seqmatch/pkg/pattern"
	"github.com/arthur-debert/seqmatch/pkg/values"
)

func isOdd(v any) (any, error) {
	n, ok := v.(int)
	if !ok {
		return nil, errors.Newf(errors.ErrTypeMismatch, "want int, got %T", v)
	}
	return n%2 == 1, nil
}

func TestSequenceAlignment(t *testing.T) {
	m := newMatcher(t)

	tests := []struct {
		name  string
		value any
		pat   any
		want  bool
	}{
		{"exact literals", []any{1, 2, 3}, pattern.Seq(1, 2, 3), true},
		{"prefix alignment", []any{1, 2, 3, 4}, pattern.Seq(1, 2), true},
		{"first element differs", []any{9, 2, 3}, pattern.Seq(1, 2, 3), false},
		{"sequence too short", []any{1, 2}, pattern.Seq(1, 2, 3), false},
		{"empty pattern on empty value", []any{}, pattern.Seq(), true},
		{"empty pattern on any value", []any{1}, pattern.Seq(), true},
		{"non-sequence value", 5, pattern.Seq(5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustAttempt(t, m, tt.value, tt.pat))
		})
	}
}

func TestRepeatAlignment(t *testing.T) {
	m := newMatcher(t)

	tests := []struct {
		name  string
		value any
		pat   any
		want  bool
	}{
		{"min zero on empty", []any{}, pattern.RepeatOf(pattern.Anyone), true},
		{"min one on empty", []any{}, pattern.Something, false},
		{"bounded run", []any{2, 2, 2}, pattern.RepeatOf(2).Between(2, 3), true},
		{"run below minimum", []any{2}, pattern.RepeatOf(2).Between(2, 3), false},
		{"maybe present", []any{1, 2, 3}, pattern.Seq(1, pattern.Maybe(2), 3), true},
		{"maybe absent", []any{1, 3}, pattern.Seq(1, pattern.Maybe(2), 3), true},
		{"maybe wrong element", []any{1, 9, 3}, pattern.Seq(1, pattern.Maybe(2), 3), false},
		{"interior is a run", []any{1, 2, 1, 2, 9}, pattern.Seq(pattern.RepeatOf(1, 2).AtLeast(2), 9), true},
		{"greedy backtracks for the tail", []any{1, 1, 1, 9}, pattern.Seq(pattern.Anything, 9), true},
		{"tail never arrives", []any{1, 1, 1}, pattern.Seq(pattern.Anything, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustAttempt(t, m, tt.value, tt.pat))
		})
	}
}

func TestRepeatOrdering(t *testing.T) {
	// Greedy quantifiers surrender elements from the longest run down;
	// non-greedy ones claim from the shortest up. The group capture shows
	// which alignment won.
	value := []any{1, 2, 3}

	t.Run("greedy takes the longest", func(t *testing.T) {
		m := newMatcher(t)
		pat := pattern.Seq(pattern.GroupOf(pattern.Anything).Named("run"), pattern.Anything)
		require.True(t, mustAttempt(t, m, value, pat))
		run, _ := m.Lookup("run")
		assert.Equal(t, []any{1, 2, 3}, run)
	})

	t.Run("non-greedy takes the shortest", func(t *testing.T) {
		m := newMatcher(t)
		pat := pattern.Seq(pattern.GroupOf(pattern.Padding).Named("run"), pattern.Anything)
		require.True(t, mustAttempt(t, m, value, pat))
		run, _ := m.Lookup("run")
		assert.Equal(t, []any{}, run)
	})

	t.Run("non-greedy stretches only as far as the tail demands", func(t *testing.T) {
		m := newMatcher(t)
		pat := pattern.Seq(pattern.GroupOf(pattern.Padding).Named("run"), 3)
		require.True(t, mustAttempt(t, m, value, pat))
		run, _ := m.Lookup("run")
		assert.Equal(t, []any{1, 2}, run)
	})
}

func TestGroupCapture(t *testing.T) {
	m := newMatcher(t)

	t.Run("binds the consumed sub-run", func(t *testing.T) {
		pat := pattern.Seq(1, pattern.GroupOf(pattern.RepeatOf(2)).Named("twos"), 3)
		require.True(t, mustAttempt(t, m, []any{1, 2, 2, 3}, pat))
		twos, ok := m.Lookup("twos")
		require.True(t, ok)
		assert.Equal(t, []any{2, 2}, twos)
	})

	t.Run("rebinds across backtracking", func(t *testing.T) {
		// The group first grabs everything, then gives back until the
		// trailing 9 fits; only the surviving alignment's binding remains.
		pat := pattern.Seq(pattern.GroupOf(pattern.Anything).Named("pre"), 9)
		require.True(t, mustAttempt(t, m, []any{1, 1, 9}, pat))
		pre, _ := m.Lookup("pre")
		assert.Equal(t, []any{1, 1}, pre)
	})

	t.Run("unnamed group binds nothing", func(t *testing.T) {
		fresh := newMatcher(t)
		require.True(t, mustAttempt(t, fresh, []any{1, 2}, pattern.GroupOf(1, 2)))
		assert.Empty(t, fresh.Bound())
	})

	t.Run("string sub-run is a string", func(t *testing.T) {
		fresh := newMatcher(t)
		pat := pattern.Seq(pattern.GroupOf(pattern.Something).Named("head"), 'z')
		require.True(t, mustAttempt(t, fresh, "abz", pat))
		head, _ := fresh.Lookup("head")
		assert.Equal(t, "ab", head)
	})
}

func TestAlternation(t *testing.T) {
	m := newMatcher(t)

	t.Run("single items", func(t *testing.T) {
		pat := pattern.Either(1, 2, 3)
		assert.True(t, mustAttempt(t, m, []any{2}, pat))
		assert.False(t, mustAttempt(t, m, []any{4}, pat))
	})

	t.Run("strings as option runs", func(t *testing.T) {
		pat := pattern.Either("red", "blue", "yellow")
		assert.True(t, mustAttempt(t, m, "blue", pat))
		assert.False(t, mustAttempt(t, m, "green", pat))
	})

	t.Run("options tried in order", func(t *testing.T) {
		fresh := newMatcher(t)
		pat := pattern.Seq(pattern.Either(
			pattern.GroupOf(pattern.Anyone).Named("g"),
			pattern.GroupOf(pattern.Anyone, pattern.Anyone).Named("g"),
		), pattern.Anything)
		require.True(t, mustAttempt(t, fresh, []any{1, 2}, pat))
		g, _ := fresh.Lookup("g")
		assert.Equal(t, []any{1}, g, "the first viable option wins")
	})

	t.Run("later option after earlier fails downstream", func(t *testing.T) {
		pat := pattern.Seq(pattern.Either(pattern.Seq(1), pattern.Seq(1, 2)), 9)
		assert.True(t, mustAttempt(t, m, []any{1, 2, 9}, pat))
	})
}

func TestNegation(t *testing.T) {
	m := newMatcher(t)

	t.Run("consumes one non-matching position", func(t *testing.T) {
		pat := pattern.Exclude(1)
		assert.True(t, mustAttempt(t, m, []any{2}, pat))
		assert.False(t, mustAttempt(t, m, []any{1}, pat))
	})

	t.Run("needs a position to consume", func(t *testing.T) {
		assert.False(t, mustAttempt(t, m, []any{}, pattern.Exclude(1)))
	})

	t.Run("any matching option excludes", func(t *testing.T) {
		pat := pattern.Exclude(1, 2)
		assert.False(t, mustAttempt(t, m, []any{2}, pat))
		assert.True(t, mustAttempt(t, m, []any{3}, pat))
	})

	t.Run("repeated over a run", func(t *testing.T) {
		notOdd := pattern.RepeatOf(pattern.Exclude(pattern.LikeFunc(isOdd, ""))).AtLeast(3)
		assert.True(t, mustAttempt(t, m, []any{2, 4, 6}, notOdd))
		assert.False(t, mustAttempt(t, m, []any{2, 3, 6}, notOdd))
		assert.False(t, mustAttempt(t, m, []any{2, 4}, notOdd))
	})

	t.Run("probe bindings never leak", func(t *testing.T) {
		fresh := newMatcher(t)
		// The negation's probe matches 3 and binds inside its frame; the
		// exclusion fails, the second option succeeds, and the probe's
		// binding must not survive into the result.
		pat := pattern.Either(
			pattern.Exclude(pattern.LikeFunc(isOdd, "probed")),
			pattern.Seq(pattern.Anyone),
		)
		require.True(t, mustAttempt(t, fresh, []any{3}, pat))
		_, ok := fresh.Lookup("probed")
		assert.False(t, ok)
	})
}

func TestBindingConsistency(t *testing.T) {
	m := newMatcher(t)

	pat := pattern.Seq(pattern.Capture{Name: "x"}, pattern.Capture{Name: "x"})

	t.Run("equal occurrences agree", func(t *testing.T) {
		require.True(t, mustAttempt(t, m, []any{1, 1}, pat))
		x, _ := m.Lookup("x")
		assert.Equal(t, 1, x)
	})

	t.Run("conflicting occurrences mismatch", func(t *testing.T) {
		assert.False(t, mustAttempt(t, m, []any{1, 2}, pat))
	})

	t.Run("conflict forces another alignment", func(t *testing.T) {
		fresh := newMatcher(t)
		// Early alignments pair unequal values under x; backtracking keeps
		// shifting until both occurrences agree.
		split := pattern.Seq(
			pattern.Anything, pattern.Capture{Name: "x"},
			pattern.Anything, pattern.Capture{Name: "x"},
		)
		require.True(t, mustAttempt(t, fresh, []any{1, 2, 3, 2}, split))
		x, _ := fresh.Lookup("x")
		assert.Equal(t, 2, x)
	})

	t.Run("no alignment agrees", func(t *testing.T) {
		fresh := newMatcher(t)
		split := pattern.Seq(
			pattern.Capture{Name: "x"}, pattern.Anything,
			pattern.Capture{Name: "x"},
		)
		assert.False(t, mustAttempt(t, fresh, []any{1, 2, 3}, split))
	})
}

func TestNestedCombinators(t *testing.T) {
	m := newMatcher(t)

	t.Run("repeat of alternation", func(t *testing.T) {
		pat := pattern.RepeatOf(pattern.Either(1, 2)).AtLeast(1)
		assert.True(t, mustAttempt(t, m, []any{1, 2, 2, 1}, pat))
		assert.False(t, mustAttempt(t, m, []any{3}, pat))
	})

	t.Run("group of repeat inside a sequence", func(t *testing.T) {
		fresh := newMatcher(t)
		pat := pattern.Seq(
			"start",
			pattern.GroupOf(pattern.RepeatOf(pattern.Exclude("end"))).Named("body"),
			"end",
		)
		value := []any{"start", "a", "b", "end"}
		require.True(t, mustAttempt(t, fresh, value, pat))
		body, _ := fresh.Lookup("body")
		assert.Equal(t, []any{"a", "b"}, body)
	})

	t.Run("nested sequences as templates", func(t *testing.T) {
		pat := pattern.Seq([]any{values.Int, values.String}, pattern.Anyone)
		value := []any{[]any{1, "a"}, "tail"}
		assert.True(t, mustAttempt(t, m, value, pat))
	})
}

func TestDepthBound(t *testing.T) {
	m := newMatcher(t, WithMaxDepth(50))

	// A quantifier whose interior can match nothing revisits the same
	// offset forever; the depth bound turns the loop into a hard error.
	pat := pattern.Seq(pattern.RepeatOf(pattern.Maybe(1)))
	_, err := m.Attempt([]any{2}, pat)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDepthExceeded))
}
