// Package pattern defines the declarative pattern language matched by
// pkg/match: leaf elements (literal, type check, wildcard, capture,
// predicate) and structural combinators (repetition, groups, alternation,
// negation, sequences).
//
// Patterns are plain immutable values. Any Go value can serve as a pattern:
// bare scalars match by equality and *values.Type descriptors match by type
// membership, while the element types in this package add binding and
// structural semantics on top. Build them once and reuse them across any
// number of match attempts.
//
// Sequence concatenation is associative: Concat(Seq(a), Seq(b, c)) is
// identical to Seq(a, b, c).
package pattern
