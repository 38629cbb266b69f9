// Package values provides the loose value model the match engine operates
// on: cross-kind equality, truthiness, type descriptors, and a uniform view
// over sequence values.
//
// Values are plain any's. Documents loaded from JSON or YAML mix int, int64
// and float64 for the same logical number, so equality compares numerics by
// value across kinds rather than by Go type identity.
package values

import (
	"math"
	"reflect"
)

// Equal performs a deep equality check between two values.
//
// Numerics of different kinds compare by value (1 == 1.0 == int64(1)), and a
// bool compares equal to the numeric it converts to (true == 1), matching
// the engine's bool-is-an-int type relationship. Sequences compare
// element-wise; everything else falls back to reflect.DeepEqual.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}

	an, aok := asFloat(a)
	bn, bok := asFloat(b)
	if aok && bok {
		return an == bn
	}
	if aok != bok {
		return false
	}

	as, aSeq := AsSequence(a)
	bs, bSeq := AsSequence(b)
	if aSeq && bSeq {
		if _, ok := a.(string); ok {
			// Two strings compare directly, not rune by rune.
			bStr, ok := b.(string)
			return ok && a.(string) == bStr
		}
		if _, ok := b.(string); ok {
			return false
		}
		if as.Len() != bs.Len() {
			return false
		}
		for i := 0; i < as.Len(); i++ {
			if !Equal(as.At(i), bs.At(i)) {
				return false
			}
		}
		return true
	}
	if aSeq != bSeq {
		return false
	}

	return reflect.DeepEqual(a, b)
}

// Truthy reports whether a value counts as a positive predicate result.
// nil, false, numeric zero, and empty strings, slices and maps are falsy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	}
	if n, ok := asFloat(v); ok {
		return n != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}

// IsScalar reports whether v is one of the primitive literal kinds: nil,
// bool, integers, floats, complex, text, or a byte sequence.
func IsScalar(v any) bool {
	if v == nil {
		return true
	}
	switch v.(type) {
	case string, []byte, complex64, complex128:
		return true
	}
	if _, ok := asFloat(v); ok {
		return true
	}
	return false
}

// asFloat widens any numeric (or bool) value to float64 for comparison.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return math.NaN(), false
}
