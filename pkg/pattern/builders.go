package pattern

import "github.com/arthur-debert/seqmatch/pkg/values"

// Seq builds a Sequence from the given items.
func Seq(items ...any) Sequence {
	return Sequence(items)
}

// Concat joins sequences into one. Concatenation is associative:
// Concat(Seq(a), Seq(b, c)) equals Seq(a, b, c).
func Concat(parts ...Sequence) Sequence {
	var out Sequence
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}

// subSequence normalizes a combinator operand into a Sequence: Sequences
// pass through, other sequence values (including strings, viewed as runes)
// expand into their elements, and anything else becomes a single item.
func subSequence(v any) Sequence {
	switch sub := v.(type) {
	case Sequence:
		return sub
	case Element:
		return Sequence{sub}
	}
	if items, ok := values.Elements(v); ok {
		return Sequence(items)
	}
	return Sequence{v}
}

// subOf joins one or more operands into a combinator's sub-sequence.
func subOf(items []any) Sequence {
	if len(items) == 1 {
		return subSequence(items[0])
	}
	return Sequence(items)
}

// RepeatOf builds an unbounded greedy repetition of the given items.
// Narrow it with Between, AtLeast, AtMost or NonGreedy.
func RepeatOf(items ...any) Repeat {
	return Repeat{Sub: subOf(items), Min: 0, Max: Unbounded, Greedy: true}
}

// Maybe matches the given items at most once.
func Maybe(items ...any) Repeat {
	return RepeatOf(items...).AtMost(1)
}

// Between returns a copy of r bounded to min..max repetitions.
func (r Repeat) Between(min, max int) Repeat {
	r.Min, r.Max = min, max
	return r
}

// AtLeast returns a copy of r requiring at least min repetitions.
func (r Repeat) AtLeast(min int) Repeat {
	r.Min = min
	return r
}

// AtMost returns a copy of r allowing at most max repetitions.
func (r Repeat) AtMost(max int) Repeat {
	r.Max = max
	return r
}

// NonGreedy returns a copy of r that prefers minimal consumption.
func (r Repeat) NonGreedy() Repeat {
	r.Greedy = false
	return r
}

// GroupOf builds an unnamed group over the given items.
func GroupOf(items ...any) Group {
	return Group{Sub: subOf(items)}
}

// Named returns a copy of g binding the consumed sub-run to name.
func (g Group) Named(name string) Group {
	g.Name = name
	return g
}

// Either builds an alternation over the given options. A sequence option
// (including a string, viewed as runes) matches as a run; any other value
// matches as a single item.
func Either(options ...any) Alternation {
	return Alternation{Options: optionSequences(options)}
}

// Exclude builds a negation over the given options.
func Exclude(options ...any) Negation {
	return Negation{Options: optionSequences(options)}
}

func optionSequences(options []any) []Sequence {
	out := make([]Sequence, len(options))
	for i, opt := range options {
		out[i] = subSequence(opt)
	}
	return out
}

// Like builds a regular-expression predicate over a text value. The result
// (the matched prefix) is bound to "match" unless a different name is
// given; an explicit empty name suppresses binding.
func Like(expr string, name ...string) Predicate {
	return Predicate{Expr: expr, Name: resultName(name)}
}

// LikeFunc builds a predicate from an opaque callable. A benign error or
// falsy result is a mismatch; the result is bound like Like's.
func LikeFunc(fn func(v any) (any, error), name ...string) Predicate {
	return Predicate{Fn: fn, Name: resultName(name)}
}

func resultName(name []string) string {
	if len(name) > 0 {
		return name[0]
	}
	return "match"
}

// Prebuilt conveniences.
var (
	// Anyone matches any single value.
	Anyone = Wildcard{}

	// Anything greedily matches any run of values.
	Anything = RepeatOf(Anyone)

	// Something greedily matches any non-empty run of values.
	Something = RepeatOf(Anyone).AtLeast(1)

	// Padding matches any run of values, preferring the shortest.
	Padding = RepeatOf(Anyone).NonGreedy()
)
