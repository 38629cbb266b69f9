package pattern

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/seqmatch/pkg/values"
)

// Element is the marker interface satisfied by every pattern element type.
// A value that is not an Element can still be used as a pattern; it matches
// by equality or, for *values.Type, by type membership.
type Element interface {
	element()
}

// Unbounded marks a Repeat with no upper repetition bound.
const Unbounded = int(^uint(0) >> 1)

// Literal matches a single value equal to Value.
type Literal struct {
	Value any
}

// TypeCheck matches a single value that is an instance of Type, or is
// itself a type descriptor specializing it.
type TypeCheck struct {
	Type *values.Type
}

// Wildcard matches any single value unconditionally.
type Wildcard struct{}

// Capture matches any single value and binds it to Name. Re-binding a
// visible name to an unequal value fails the alignment.
type Capture struct {
	Name string
}

// Predicate applies an opaque check to a single value. When Expr is set the
// value must be text and Expr is applied as a regular expression anchored at
// the start; otherwise Fn is called. A truthy result matches and, when Name
// is non-empty, the result is bound to Name.
type Predicate struct {
	Fn   func(v any) (any, error)
	Expr string
	Name string
}

// Repeat matches Sub repeated over consecutive positions between Min and
// Max times. Greedy repeats prefer maximal consumption, non-greedy minimal;
// both must still satisfy Min.
type Repeat struct {
	Sub    Sequence
	Min    int
	Max    int
	Greedy bool
}

// Group matches Sub against a sub-run of the sequence and, when Name is
// non-empty, binds the consumed sub-run to it.
type Group struct {
	Sub  Sequence
	Name string
}

// Alternation matches if any option matches, tried in order; the first
// option to contribute a surviving alignment wins.
type Alternation struct {
	Options []Sequence
}

// Negation succeeds only if none of the options match at the current
// position; it then consumes exactly one position and binds nothing.
type Negation struct {
	Options []Sequence
}

// Sequence is an ordered run of pattern items matched against a sequence
// value item by item, run by run. Items may be Elements or bare values.
type Sequence []any

func (Literal) element()     {}
func (TypeCheck) element()   {}
func (Wildcard) element()    {}
func (Capture) element()     {}
func (Predicate) element()   {}
func (Repeat) element()      {}
func (Group) element()       {}
func (Alternation) element() {}
func (Negation) element()    {}
func (Sequence) element()    {}

func (l Literal) String() string   { return fmt.Sprintf("literal(%v)", l.Value) }
func (t TypeCheck) String() string { return fmt.Sprintf("type(%s)", t.Type.Name()) }
func (Wildcard) String() string    { return "wildcard" }
func (c Capture) String() string   { return fmt.Sprintf("capture(%s)", c.Name) }

func (p Predicate) String() string {
	if p.Expr != "" {
		return fmt.Sprintf("regex(%q)", p.Expr)
	}
	return "predicate(fn)"
}

func (r Repeat) String() string {
	max := "inf"
	if r.Max != Unbounded {
		max = fmt.Sprintf("%d", r.Max)
	}
	mode := ""
	if !r.Greedy {
		mode = ", non-greedy"
	}
	return fmt.Sprintf("repeat(%s, %d..%s%s)", r.Sub, r.Min, max, mode)
}

func (g Group) String() string {
	if g.Name == "" {
		return fmt.Sprintf("group(%s)", g.Sub)
	}
	return fmt.Sprintf("group(%s, %q)", g.Sub, g.Name)
}

func (a Alternation) String() string { return optionsString("either", a.Options) }
func (n Negation) String() string    { return optionsString("exclude", n.Options) }

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, item := range s {
		parts[i] = fmt.Sprintf("%v", item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func optionsString(kind string, options []Sequence) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		parts[i] = opt.String()
	}
	return kind + "(" + strings.Join(parts, ", ") + ")"
}
