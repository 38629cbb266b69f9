package match

import (
	"reflect"

	"github.com/arthur-debert/seqmatch/pkg/errors"
	"github.com/arthur-debert/seqmatch/pkg/pattern"
	"github.com/arthur-debert/seqmatch/pkg/values"
)

// Names of the built-in rules, in their default dispatch order.
const (
	RuleWildcard  = "wildcard"
	RuleCapture   = "capture"
	RulePredicate = "predicate"
	RuleType      = "type"
	RuleLiteral   = "literal"
	RuleEquality  = "equality"
	RuleSequence  = "sequence"
	RuleStructure = "structure"
)

// DefaultRules returns the built-in rule chain. The order is a fixed
// contract: earlier rules win ties.
func DefaultRules() []Rule {
	return []Rule{
		{Name: RuleWildcard, Applies: wildcardApplies, Apply: wildcardApply},
		{Name: RuleCapture, Applies: captureApplies, Apply: captureApply},
		{Name: RulePredicate, Applies: predicateApplies, Apply: predicateApply},
		{Name: RuleType, Applies: typeApplies, Apply: typeApply},
		{Name: RuleLiteral, Applies: literalApplies, Apply: literalApply},
		{Name: RuleEquality, Applies: equalityApplies, Apply: equalityApply},
		{Name: RuleSequence, Applies: sequenceApplies, Apply: sequenceApply},
		{Name: RuleStructure, Applies: structureApplies, Apply: structureApply},
	}
}

func mismatch(format string, args ...any) error {
	return errors.Newf(errors.ErrMismatch, format, args...)
}

// wildcard matches any one thing.

func wildcardApplies(_ *Matcher, _, pat any) bool {
	_, ok := pat.(pattern.Wildcard)
	return ok
}

func wildcardApply(_ *Matcher, value, _ any) (any, error) {
	return value, nil
}

// capture matches any one thing and binds it.

func captureApplies(_ *Matcher, _, pat any) bool {
	_, ok := pat.(pattern.Capture)
	return ok
}

func captureApply(m *Matcher, value, pat any) (any, error) {
	if err := m.env.Set(pat.(pattern.Capture).Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// predicate applies a regular expression or an opaque callable.

func predicateApplies(_ *Matcher, _, pat any) bool {
	_, ok := pat.(pattern.Predicate)
	return ok
}

func predicateApply(m *Matcher, value, pat any) (any, error) {
	p := pat.(pattern.Predicate)

	var result any
	switch {
	case p.Expr != "":
		text, ok := value.(string)
		if !ok {
			return nil, mismatch("regex %q requires a text value, got %T", p.Expr, value)
		}
		re, err := m.compiled(p.Expr)
		if err != nil {
			return nil, err
		}
		loc := re.FindStringIndex(text)
		if loc == nil || loc[0] != 0 {
			// Anchored at the start, like a prefix match.
			return nil, mismatch("regex %q does not match", p.Expr)
		}
		result = text[:loc[1]]

	case p.Fn != nil:
		r, err := p.Fn(value)
		if err != nil {
			if errors.IsBenign(err) {
				return nil, mismatch("predicate failed: %v", err)
			}
			return nil, err
		}
		if !values.Truthy(r) {
			return nil, mismatch("predicate returned a falsy result")
		}
		result = r

	default:
		return nil, errors.New(errors.ErrPatternInvalid, "predicate has neither an expression nor a function")
	}

	if p.Name != "" {
		if err := m.env.Set(p.Name, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// type matches instances and specializing type descriptors.

func typeApplies(_ *Matcher, _, pat any) bool {
	switch pat.(type) {
	case *values.Type, pattern.TypeCheck:
		return true
	}
	return false
}

func typeApply(_ *Matcher, value, pat any) (any, error) {
	t, ok := pat.(*values.Type)
	if !ok {
		t = pat.(pattern.TypeCheck).Type
	}
	if vt, ok := value.(*values.Type); ok {
		if vt.Specializes(t) {
			return value, nil
		}
		return nil, mismatch("type %s does not specialize %s", vt, t)
	}
	if t.Instance(value) {
		return value, nil
	}
	return nil, mismatch("value %v is not an instance of %s", value, t)
}

// literal matches primitive scalars by equality.

func literalApplies(_ *Matcher, value, pat any) bool {
	if _, ok := pat.(pattern.Literal); ok {
		return true
	}
	return values.IsScalar(pat) && values.IsScalar(value)
}

func literalApply(_ *Matcher, value, pat any) (any, error) {
	target := pat
	if lit, ok := pat.(pattern.Literal); ok {
		target = lit.Value
	}
	if values.Equal(value, target) {
		return value, nil
	}
	return nil, mismatch("value %v does not equal %v", value, target)
}

// equality is the generic fallback: any pair that compares equal matches.

func equalityApplies(_ *Matcher, value, pat any) bool {
	return values.Equal(value, pat)
}

func equalityApply(_ *Matcher, value, _ any) (any, error) {
	return value, nil
}

// sequence matches same-kind, same-length sequences element by element.
// Used for nested literal/type templates; variable-length alignment is the
// structure rule's job.

func sequenceApplies(_ *Matcher, value, pat any) bool {
	if _, ok := pat.(pattern.Element); ok {
		return false
	}
	vs, vok := values.AsSequence(value)
	ps, pok := values.AsSequence(pat)
	if !vok || !pok || vs.Len() != ps.Len() {
		return false
	}
	return reflect.ValueOf(value).Kind() == reflect.ValueOf(pat).Kind()
}

func sequenceApply(m *Matcher, value, pat any) (any, error) {
	vs, _ := values.AsSequence(value)
	ps, _ := values.AsSequence(pat)

	results := make([]any, ps.Len())
	for i := 0; i < ps.Len(); i++ {
		r, err := m.dispatch(vs.At(i), ps.At(i))
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

// structure runs the backtracking search over a sequence value.

func structureApplies(_ *Matcher, _, pat any) bool {
	switch pat.(type) {
	case pattern.Sequence, pattern.Repeat, pattern.Group, pattern.Alternation, pattern.Negation:
		return true
	}
	return false
}

func structureApply(m *Matcher, value, pat any) (any, error) {
	seq := structureSequence(pat)

	vs, ok := values.AsSequence(value)
	if !ok {
		return nil, mismatch("structural pattern requires a sequence value, got %T", value)
	}

	s := &searcher{m: m, seq: vs, maxDepth: m.maxDepth}
	end := -1
	s.walk(seq, 0, 0, 0, func(e int) bool {
		end = e
		return false
	})
	if s.err != nil {
		return nil, s.err
	}
	if end < 0 {
		return nil, mismatch("no alignment for %v", seq)
	}
	return vs.Slice(0, end), nil
}

// structureSequence lifts a bare combinator into a one-item sequence.
func structureSequence(pat any) pattern.Sequence {
	if seq, ok := pat.(pattern.Sequence); ok {
		return seq
	}
	return pattern.Sequence{pat}
}
