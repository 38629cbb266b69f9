package values

import "reflect"

// Sequence is a uniform random-access view over a sequence value. Slice
// preserves the concrete type of the underlying value, so a sub-run of a
// string is a string and a sub-run of a []int is a []int.
type Sequence interface {
	Len() int
	At(i int) any
	Slice(i, j int) any
}

// AsSequence returns a Sequence view of v. Slices and arrays of any element
// type qualify, as do strings, which are viewed as runes. Byte slices are
// scalars (a literal kind), not sequences.
func AsSequence(v any) (Sequence, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case []byte:
		return nil, false
	case string:
		return runeSeq(val), true
	case []any:
		return anySeq(val), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectSeq{rv}, true
	}
	return nil, false
}

type anySeq []any

func (s anySeq) Len() int           { return len(s) }
func (s anySeq) At(i int) any       { return s[i] }
func (s anySeq) Slice(i, j int) any { return []any(s[i:j]) }

type runeSeq []rune

func (s runeSeq) Len() int           { return len(s) }
func (s runeSeq) At(i int) any       { return s[i] }
func (s runeSeq) Slice(i, j int) any { return string(s[i:j]) }

type reflectSeq struct {
	rv reflect.Value
}

func (s reflectSeq) Len() int     { return s.rv.Len() }
func (s reflectSeq) At(i int) any { return s.rv.Index(i).Interface() }

func (s reflectSeq) Slice(i, j int) any {
	if s.rv.Kind() == reflect.Array {
		// Arrays may not be addressable; copy the sub-run out.
		out := reflect.MakeSlice(reflect.SliceOf(s.rv.Type().Elem()), j-i, j-i)
		for k := i; k < j; k++ {
			out.Index(k - i).Set(s.rv.Index(k))
		}
		return out.Interface()
	}
	return s.rv.Slice(i, j).Interface()
}

// Elements expands a sequence value into a []any, one entry per position.
func Elements(v any) ([]any, bool) {
	seq, ok := AsSequence(v)
	if !ok {
		return nil, false
	}
	out := make([]any, seq.Len())
	for i := range out {
		out[i] = seq.At(i)
	}
	return out, true
}
