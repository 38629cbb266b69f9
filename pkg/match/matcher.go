package match

import (
	"fmt"

	"github.com/coregx/coregex"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/seqmatch/pkg/binding"
	"github.com/arthur-debert/seqmatch/pkg/errors"
	"github.com/arthur-debert/seqmatch/pkg/logging"
	"github.com/arthur-debert/seqmatch/pkg/registry"
)

// DefaultMaxDepth bounds the recursion depth of the structural search.
// Deeply nested quantifiers can otherwise exhaust the call stack.
const DefaultMaxDepth = 10000

// Rule is one registered predicate/action pair. Applies decides whether the
// rule handles a value/pattern pair; Apply performs the comparison and
// returns the matched value, or an ErrMismatch-coded error when the pair
// does not match.
type Rule struct {
	Name    string
	Applies func(m *Matcher, value, pat any) bool
	Apply   func(m *Matcher, value, pat any) (any, error)
}

// Matcher runs match attempts. It owns the ordered rule registry, the
// binding environment and the match history. Construct one with New and
// reuse it across attempts; it is not safe for overlapping attempts.
type Matcher struct {
	rules    registry.Ordered[Rule]
	env      *binding.Env
	history  *binding.History
	maxDepth int
	logger   zerolog.Logger
	regexes  map[string]*coregex.Regex
}

// Option configures a Matcher during New. By convention Option names have a
// prefix of "With".
type Option func(m *Matcher) error

// WithMaxDepth overrides the recursion bound of the structural search.
func WithMaxDepth(n int) Option {
	return func(m *Matcher) error {
		if n < 1 {
			return errors.Newf(errors.ErrInvalidInput, "max depth must be positive, got %d", n)
		}
		m.maxDepth = n
		return nil
	}
}

// WithRule splices a custom rule into the dispatch order at the given
// position during construction.
func WithRule(pos int, rule Rule) Option {
	return func(m *Matcher) error {
		return m.RegisterRule(pos, rule)
	}
}

// New returns a Matcher carrying the default rule chain.
func New(opts ...Option) (*Matcher, error) {
	m := &Matcher{
		rules:    registry.New[Rule](),
		env:      binding.NewEnv(),
		history:  binding.NewHistory(),
		maxDepth: DefaultMaxDepth,
		logger:   logging.GetLogger("match"),
		regexes:  make(map[string]*coregex.Regex),
	}
	for _, rule := range DefaultRules() {
		registry.MustAppend(m.rules, rule.Name, rule)
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RegisterRule inserts a custom rule at the given position in the dispatch
// order (0 = tried first).
func (m *Matcher) RegisterRule(pos int, rule Rule) error {
	if rule.Applies == nil || rule.Apply == nil {
		return errors.Newf(errors.ErrRuleInvalid, "rule %q needs both a predicate and an action", rule.Name)
	}
	return m.rules.Insert(pos, rule.Name, rule)
}

// Rules returns the names of the registered rules in dispatch order.
func (m *Matcher) Rules() []string {
	return m.rules.Names()
}

// Env exposes the binding environment to rule actions.
func (m *Matcher) Env() *binding.Env {
	return m.env
}

// History returns the log of committed binding snapshots.
func (m *Matcher) History() *binding.History {
	return m.history
}

// Attempt runs one match attempt. It returns true and commits the surviving
// bindings to the history when the value matches the pattern, false on a
// mismatch. The returned error is reserved for configuration bugs (an
// invalid regex, an exceeded depth bound, a fatal predicate error);
// mismatches are never errors. The environment is restored to its
// single-empty-frame invariant on every exit path.
func (m *Matcher) Attempt(value, pat any) (bool, error) {
	defer m.env.Reset()

	_, err := m.dispatch(value, pat)
	if err != nil {
		if isMatchFailure(err) {
			m.logger.Debug().
				Str("pattern", fmt.Sprintf("%v", pat)).
				Msg("no alignment found")
			return false, nil
		}
		return false, err
	}

	entry := m.history.Append(m.env.Effective())
	m.logger.Debug().
		Str("entry", entry.ID.String()).
		Int("bound", len(entry.Bindings)).
		Msg("match committed")
	return true, nil
}

// Bound returns the bindings committed by the most recent successful
// attempt, or nil if there is none.
func (m *Matcher) Bound() binding.Bindings {
	entry, ok := m.history.Latest()
	if !ok {
		return nil
	}
	return entry.Bindings
}

// Lookup reads a name from the most recent successful attempt's bindings.
func (m *Matcher) Lookup(name string) (any, bool) {
	entry, ok := m.history.Latest()
	if !ok {
		return nil, false
	}
	return entry.Lookup(name)
}

// dispatch tries the registered rules in order; the first rule whose
// predicate accepts the pair determines the action applied.
func (m *Matcher) dispatch(value, pat any) (any, error) {
	for _, rule := range m.rules.Items() {
		if rule.Applies(m, value, pat) {
			return rule.Apply(m, value, pat)
		}
	}
	return nil, errors.Newf(errors.ErrMismatch, "no rule accepts pattern %T", pat)
}

// compiled returns the compiled regex for expr, caching per expression.
// A compile failure is a configuration bug, not a mismatch.
func (m *Matcher) compiled(expr string) (*coregex.Regex, error) {
	if re, ok := m.regexes[expr]; ok {
		return re, nil
	}
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid regular expression %q", expr)
	}
	m.regexes[expr] = re
	return re, nil
}

// isMatchFailure reports whether err is an ordinary match failure: the
// mismatch control signal or a capture conflict. Anything else propagates
// out of Attempt.
func isMatchFailure(err error) bool {
	return errors.IsMismatch(err) || errors.IsErrorCode(err, errors.ErrBindingConflict)
}
