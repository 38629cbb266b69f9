package values

import "reflect"

// Type is a named type descriptor used by the type-check match rule. A value
// matches a Type when it is an instance of it, or when the value is itself a
// Type descriptor that specializes it (Bool specializes Int, mirroring the
// bool-is-an-int relationship).
type Type struct {
	name  string
	super *Type
	is    func(v any) bool
}

// Name returns the descriptor's display name.
func (t *Type) Name() string { return t.name }

// Instance reports whether v is an instance of t.
func (t *Type) Instance(v any) bool { return t.is(v) }

// Specializes reports whether t is o or a descendant of o.
func (t *Type) Specializes(o *Type) bool {
	for cur := t; cur != nil; cur = cur.super {
		if cur == o {
			return true
		}
	}
	return false
}

func (t *Type) String() string { return t.name }

// Built-in type descriptors.
var (
	Nil = &Type{name: "nil", is: func(v any) bool { return v == nil }}

	Int = &Type{name: "int", is: func(v any) bool {
		switch v.(type) {
		case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
		return false
	}}

	Bool = &Type{name: "bool", is: func(v any) bool {
		_, ok := v.(bool)
		return ok
	}}

	Float = &Type{name: "float", is: func(v any) bool {
		switch v.(type) {
		case float32, float64:
			return true
		}
		return false
	}}

	Complex = &Type{name: "complex", is: func(v any) bool {
		switch v.(type) {
		case complex64, complex128:
			return true
		}
		return false
	}}

	String = &Type{name: "string", is: func(v any) bool {
		_, ok := v.(string)
		return ok
	}}

	Bytes = &Type{name: "bytes", is: func(v any) bool {
		_, ok := v.([]byte)
		return ok
	}}

	List = &Type{name: "list", is: func(v any) bool {
		if _, ok := v.(string); ok {
			return false
		}
		_, ok := AsSequence(v)
		return ok
	}}

	Map = &Type{name: "map", is: func(v any) bool {
		return v != nil && reflect.ValueOf(v).Kind() == reflect.Map
	}}
)

func init() {
	Bool.super = Int
}

var builtins = map[string]*Type{
	"nil":     Nil,
	"int":     Int,
	"bool":    Bool,
	"float":   Float,
	"complex": Complex,
	"string":  String,
	"bytes":   Bytes,
	"list":    List,
	"map":     Map,
}

// TypeNamed resolves a built-in descriptor by its display name.
func TypeNamed(name string) (*Type, bool) {
	t, ok := builtins[name]
	return t, ok
}

// TypeFor builds a descriptor matching exactly the given reflect type.
func TypeFor(rt reflect.Type) *Type {
	return &Type{
		name: rt.String(),
		is:   func(v any) bool { return v != nil && reflect.TypeOf(v) == rt },
	}
}
