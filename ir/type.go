// Package ir defines the intermediate representation shared by the builders,
// the transformer chain and the emitters.
//
// Type nodes form immutable value trees. Records reference each other by name
// only (ClassReference.FQN), so the graph never holds pointer cycles even for
// self-referential records.
package ir

// Kind identifies the variant of a Type node.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindUnknown
	KindArray
	KindRecord
	KindNullable
	KindUnion
	KindStruct
	KindClassReference
)

var kindNames = [...]string{
	KindString:         "String",
	KindInt:            "Int",
	KindFloat:          "Float",
	KindBool:           "Bool",
	KindUnknown:        "Unknown",
	KindArray:          "Array",
	KindRecord:         "Record",
	KindNullable:       "Nullable",
	KindUnion:          "Union",
	KindStruct:         "Struct",
	KindClassReference: "ClassReference",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Node is anything the transformer chain can be asked about: a Type, a
// record field, a record definition or an enum definition.
type Node interface {
	isNode()
}

// Type is a sealed interface over the IR type variants.
type Type interface {
	Node
	Kind() Kind
	sealed()
}

// String is the string primitive.
type String struct{}

// Int is the integer primitive.
type Int struct{}

// Float is the floating point primitive.
type Float struct{}

// Bool is the boolean primitive.
type Bool struct{}

// Unknown is the fallback for unresolvable or mixed types.
type Unknown struct{}

// Array is a simple list. A nil Item means an untyped array.
type Array struct {
	Item Type
}

// Record is an associative map with known key and value types.
type Record struct {
	Key   Type
	Value Type
}

// Nullable is the explicit null-union wrapper. It never wraps another Nullable.
type Nullable struct {
	Inner Type
}

// Union holds at least one member. Members are never Nullable once built;
// null is hoisted to an enclosing Nullable.
type Union struct {
	Members []Type
}

// StructField is one key of an anonymous shaped record.
type StructField struct {
	Name     string
	Type     Type
	Optional bool
}

// Struct is an anonymous shaped record, produced by array-shape annotations.
type Struct struct {
	Fields []StructField
}

// ClassReference points at another record or enum by fully-qualified name.
type ClassReference struct {
	FQN    string
	Alias  string
	Args   []Type
	IsEnum bool
}

func (String) Kind() Kind          { return KindString }
func (Int) Kind() Kind             { return KindInt }
func (Float) Kind() Kind           { return KindFloat }
func (Bool) Kind() Kind            { return KindBool }
func (Unknown) Kind() Kind         { return KindUnknown }
func (*Array) Kind() Kind          { return KindArray }
func (*Record) Kind() Kind         { return KindRecord }
func (*Nullable) Kind() Kind       { return KindNullable }
func (*Union) Kind() Kind          { return KindUnion }
func (*Struct) Kind() Kind         { return KindStruct }
func (*ClassReference) Kind() Kind { return KindClassReference }

func (String) sealed()          {}
func (Int) sealed()             {}
func (Float) sealed()           {}
func (Bool) sealed()            {}
func (Unknown) sealed()         {}
func (*Array) sealed()          {}
func (*Record) sealed()         {}
func (*Nullable) sealed()       {}
func (*Union) sealed()          {}
func (*Struct) sealed()         {}
func (*ClassReference) sealed() {}

func (String) isNode()          {}
func (Int) isNode()             {}
func (Float) isNode()           {}
func (Bool) isNode()            {}
func (Unknown) isNode()         {}
func (*Array) isNode()          {}
func (*Record) isNode()         {}
func (*Nullable) isNode()       {}
func (*Union) isNode()          {}
func (*Struct) isNode()         {}
func (*ClassReference) isNode() {}

// NewArray returns an Array of item. Pass nil for an untyped array.
func NewArray(item Type) *Array {
	return &Array{Item: item}
}

// NewRecord returns a Record keyed by key with values of value.
func NewRecord(key, value Type) *Record {
	return &Record{Key: key, Value: value}
}

// NewNullable wraps inner in Nullable. An inner that is already Nullable is
// returned as is.
func NewNullable(inner Type) Type {
	if n, ok := inner.(*Nullable); ok {
		return n
	}
	return &Nullable{Inner: inner}
}

// NewUnion builds a union from members: zero members give Unknown and a
// single member is returned unwrapped.
func NewUnion(members ...Type) Type {
	switch len(members) {
	case 0:
		return Unknown{}
	case 1:
		return members[0]
	}
	return &Union{Members: members}
}

// NewStruct returns a Struct with the given fields.
func NewStruct(fields ...StructField) *Struct {
	return &Struct{Fields: fields}
}

// NewClassReference returns a reference to fqn. An empty alias defaults to
// the last path segment of the name.
func NewClassReference(fqn, alias string, args ...Type) *ClassReference {
	fqn = TrimName(fqn)
	if alias == "" {
		alias = LastSegment(fqn)
	}
	if alias == "" {
		alias = fqn
	}
	return &ClassReference{FQN: fqn, Alias: alias, Args: args}
}

// IsNullable reports whether t is a top-level Nullable.
func IsNullable(t Type) bool {
	_, ok := t.(*Nullable)
	return ok
}

// IsUnknown reports whether t is Unknown.
func IsUnknown(t Type) bool {
	_, ok := t.(Unknown)
	return ok
}

// IsPrimitive reports whether t is String, Int, Float or Bool.
func IsPrimitive(t Type) bool {
	switch t.(type) {
	case String, Int, Float, Bool:
		return true
	}
	return false
}
