package match

import (
	"github.com/arthur-debert/seqmatch/pkg/errors"
	"github.com/arthur-debert/seqmatch/pkg/pattern"
	"github.com/arthur-debert/seqmatch/pkg/values"
)

// searcher carries the state of one structural match: the value sequence
// being aligned, the recursion budget, and the first fatal error hit while
// exploring. Mismatches are never fatal; they just exhaust branches.
type searcher struct {
	m        *Matcher
	seq      values.Sequence
	depth    int
	maxDepth int
	err      error
}

// walk explores alignments of pat[index:] against the value starting at
// offset, calling emit with each candidate end offset in priority order.
// count is the repeat counter of the currently-open quantifier.
//
// emit returns false to cancel the remaining exploration; walk then returns
// false all the way up. A true return means this branch is exhausted.
func (s *searcher) walk(pat pattern.Sequence, index, offset, count int, emit func(end int) bool) bool {
	if s.err != nil {
		return false
	}
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.maxDepth {
		s.err = errors.Newf(errors.ErrDepthExceeded,
			"structural search exceeded depth %d; check for nested unbounded quantifiers", s.maxDepth)
		return false
	}

	if index == len(pat) {
		return emit(offset)
	}

	for {
		switch item := pat[index].(type) {
		case pattern.Repeat:
			if count > item.Max {
				return true
			}
			if item.Greedy {
				if !s.repeatConsume(pat, index, offset, count, item, emit) {
					return false
				}
				return s.repeatExit(pat, index, offset, count, item, emit)
			}
			if !s.repeatExit(pat, index, offset, count, item, emit) {
				return false
			}
			return s.repeatConsume(pat, index, offset, count, item, emit)

		case pattern.Group:
			// Each alignment of the group gets its own frame: the group's
			// shadow binding survives exactly as long as paths through that
			// alignment are live.
			return s.speculate(func() bool {
				return s.walk(item.Sub, 0, offset, 0, func(end int) bool {
					return s.speculate(func() bool {
						if item.Name != "" {
							s.m.env.Shadow(item.Name, s.seq.Slice(offset, end))
						}
						return s.walk(pat, index+1, end, 0, emit)
					})
				})
			})

		case pattern.Alternation:
			for _, option := range item.Options {
				cont := s.speculate(func() bool {
					return s.walk(option, 0, offset, 0, func(end int) bool {
						return s.walk(pat, index+1, end, 0, emit)
					})
				})
				if !cont {
					return false
				}
			}
			return true

		case pattern.Negation:
			for _, option := range item.Options {
				if s.lookahead(option, offset) {
					return true
				}
				if s.err != nil {
					return false
				}
			}
			// No option matches; consume exactly one position, binding
			// nothing. The position must exist to be consumed.
			if offset >= s.seq.Len() {
				return true
			}

		default:
			if offset >= s.seq.Len() {
				return true
			}
			_, err := s.m.dispatch(s.seq.At(offset), pat[index])
			if err != nil {
				if isMatchFailure(err) {
					return true
				}
				s.err = err
				return false
			}
		}

		index++
		offset++

		if index == len(pat) {
			return emit(offset)
		}
	}
}

// repeatConsume explores one more repetition of the quantifier's interior,
// then re-enters the quantifier with the count bumped.
func (s *searcher) repeatConsume(pat pattern.Sequence, index, offset, count int, item pattern.Repeat, emit func(int) bool) bool {
	if offset >= s.seq.Len() {
		return true
	}
	return s.speculate(func() bool {
		return s.walk(item.Sub, 0, offset, 0, func(end int) bool {
			return s.walk(pat, index, end, count+1, emit)
		})
	})
}

// repeatExit leaves the quantifier, provided the minimum is satisfied.
func (s *searcher) repeatExit(pat pattern.Sequence, index, offset, count int, item pattern.Repeat, emit func(int) bool) bool {
	if count < item.Min {
		return true
	}
	return s.speculate(func() bool {
		return s.walk(pat, index+1, offset, 0, emit)
	})
}

// lookahead probes whether option matches at offset with any completion
// length. The probe never binds: its frame is always rolled back.
func (s *searcher) lookahead(option pattern.Sequence, offset int) bool {
	matched := false
	s.m.env.Push()
	s.walk(option, 0, offset, 0, func(int) bool {
		matched = true
		return false
	})
	s.m.env.Rollback()
	return matched
}

// speculate runs one branch of a choice point inside its own binding
// frame. A branch that ends up on the surviving alignment (explore was
// canceled by a downstream success) commits its bindings; an exhausted
// branch leaves no trace.
func (s *searcher) speculate(explore func() bool) bool {
	s.m.env.Push()
	cont := explore()
	if cont {
		s.m.env.Rollback()
	} else {
		s.m.env.Commit()
	}
	return cont
}
