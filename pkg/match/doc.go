// Package match implements the matching engine: an ordered rule dispatcher
// over value/pattern pairs, the built-in leaf rules, and the backtracking
// search that aligns structural patterns against sequence values.
//
// A Matcher owns the dispatch rules, the transactional binding environment
// and the history of committed bindings. The primary entry point is
// Attempt:
//
//	m, _ := match.New()
//	ok, err := m.Attempt([]any{1, 2, 3}, pattern.Seq(1, pattern.Capture{Name: "head"}, 3))
//	// ok == true; m.Lookup("head") == 2
//
// # Rule dispatch
//
// Rules are tried strictly in registration order; the first rule whose
// Applies predicate accepts the pair determines the Apply action invoked.
// The default chain is wildcard, capture, predicate, type, literal,
// equality, sequence, structure. Callers may splice custom rules anywhere
// in the chain with RegisterRule to extend the pattern language.
//
// # Search order
//
// The structural search is depth-first and lazy: it produces candidate end
// offsets one at a time and stops at the first complete alignment. Greedy
// quantifiers try one more repetition before exiting, non-greedy the
// reverse; alternation options are tried in order. This ordering is an
// observable contract: it decides which bindings survive when several
// alignments would succeed. Matching is not polynomial in the worst case:
// nested unbounded quantifiers over ambiguous leaves can force exponential
// exploration, exactly like a naive regular-expression engine.
//
// A Matcher must not be used for overlapping attempts without external
// serialization; the binding environment is owned by one in-flight attempt
// at a time.
package match
