// Package binding provides the name-binding state used by the match engine:
// a transactional stack of name→value frames that the backtracking search
// pushes, commits and rolls back, plus the append-only history of bindings
// committed by successful match attempts.
package binding

import (
	"github.com/arthur-debert/seqmatch/pkg/errors"
	"github.com/arthur-debert/seqmatch/pkg/values"
)

// Bindings is a single frame of name→value pairs.
type Bindings map[string]any

// Env is a stack of binding frames. Outside a match attempt it holds exactly
// one empty frame; during an attempt, frame count tracks the speculative
// nesting depth of the search. Writes go to the top frame; lookups search
// most-recent-first.
//
// Env is not safe for concurrent use: it is owned by a single in-flight
// match attempt.
type Env struct {
	frames []Bindings
}

// NewEnv returns an environment holding its single empty base frame.
func NewEnv() *Env {
	return &Env{frames: []Bindings{{}}}
}

// Push adds an empty frame for a speculative branch.
func (e *Env) Push() {
	e.frames = append(e.frames, Bindings{})
}

// Commit merges the top frame into the frame beneath it and discards it,
// making the branch's bindings durable in the parent scope.
func (e *Env) Commit() {
	top := e.frames[len(e.frames)-1]
	e.frames = e.frames[:len(e.frames)-1]
	parent := e.frames[len(e.frames)-1]
	for name, value := range top {
		parent[name] = value
	}
}

// Rollback discards the top frame; the branch's bindings vanish.
func (e *Env) Rollback() {
	e.frames = e.frames[:len(e.frames)-1]
}

// Get looks up a name, searching frames most-recent-first.
func (e *Env) Get(name string) (any, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name to value in the top frame. If the name is already visible
// bound to an unequal value, Set fails with ErrBindingConflict; re-binding
// to an equal value is a no-op.
func (e *Env) Set(name string, value any) error {
	if prev, ok := e.Get(name); ok && !values.Equal(prev, value) {
		return errors.Newf(errors.ErrBindingConflict,
			"name %q already bound to a different value", name)
	}
	e.frames[len(e.frames)-1][name] = value
	return nil
}

// Shadow force-binds name in the top frame, bypassing the conflict check.
// The search uses it for group captures, which deliberately shadow an
// earlier binding of their own name for the remainder of the alignment; the
// enclosing frame's rollback restores the shadowed binding.
func (e *Env) Shadow(name string, value any) {
	e.frames[len(e.frames)-1][name] = value
}

// Depth returns the current frame count.
func (e *Env) Depth() int {
	return len(e.frames)
}

// Effective flattens the visible bindings into a single frame, later frames
// shadowing earlier ones.
func (e *Env) Effective() Bindings {
	out := Bindings{}
	for _, frame := range e.frames {
		for name, value := range frame {
			out[name] = value
		}
	}
	return out
}

// Reset restores the single-empty-frame invariant. Called after every match
// attempt whatever its outcome.
func (e *Env) Reset() {
	e.frames = e.frames[:1]
	clear(e.frames[0])
}
