package ir

// MetadataTag is an opaque annotation attached to a field or record.
type MetadataTag struct {
	Name      string
	Arguments []Value
}

// Field is one record property.
//
// Nullable mirrors "Type is a top-level Nullable" at construction time and is
// not re-derived afterwards. Optional is only set by field preprocessing.
type Field struct {
	Name     string
	Type     Type
	Nullable bool
	Optional bool
	Metadata []MetadataTag
}

func (*Field) isNode() {}

// NewField builds a record field, deriving Nullable from t.
func NewField(name string, t Type, metadata ...MetadataTag) *Field {
	return &Field{
		Name:     name,
		Type:     t,
		Nullable: IsNullable(t),
		Metadata: metadata,
	}
}

// HasTag reports whether the field carries a metadata tag named name.
func (f *Field) HasTag(name string) bool {
	return hasTag(f.Metadata, name)
}

func hasTag(tags []MetadataTag, name string) bool {
	for _, t := range tags {
		if SameName(t.Name, name) {
			return true
		}
	}
	return false
}

// Schema is a record definition.
type Schema struct {
	Name     string
	FQN      string
	Aliases  map[string]string
	Fields   []*Field
	Metadata []MetadataTag
}

func (*Schema) isNode() {}

// HasTag reports whether the record carries a metadata tag named name.
func (s *Schema) HasTag(name string) bool {
	return hasTag(s.Metadata, name)
}

// Backing is the backing kind of an enum.
type Backing string

const (
	BackingNone   Backing = ""
	BackingInt    Backing = "int"
	BackingString Backing = "string"
)

// EnumCase is a single enum case. Value is nil for unbacked enums, otherwise
// an IntValue or StringValue.
type EnumCase struct {
	Name  string
	Value Value
}

// EnumDefinition is an enum with its cases in declaration order.
type EnumDefinition struct {
	Name    string
	FQN     string
	Cases   []EnumCase
	Backing Backing
}

func (*EnumDefinition) isNode() {}

// Namespace groups the records and enums that share a namespace identifier.
// Order within Records and Enums determines emission order.
type Namespace struct {
	Identifier string
	Records    []*Schema
	Enums      []*EnumDefinition
}

// Name returns the last segment of the identifier.
func (n *Namespace) Name() string {
	return LastSegment(n.Identifier)
}

// Root maps namespace identifiers to namespaces, keeping first-seen order.
type Root struct {
	order []string
	byID  map[string]*Namespace
}

// NewRoot returns an empty Root.
func NewRoot() *Root {
	return &Root{byID: make(map[string]*Namespace)}
}

// Ensure returns the namespace for id, creating it if needed.
func (r *Root) Ensure(id string) *Namespace {
	if ns, ok := r.byID[id]; ok {
		return ns
	}
	ns := &Namespace{Identifier: id}
	r.byID[id] = ns
	r.order = append(r.order, id)
	return ns
}

// Lookup returns the namespace for id.
func (r *Root) Lookup(id string) (*Namespace, bool) {
	ns, ok := r.byID[id]
	return ns, ok
}

// Namespaces returns every namespace in first-seen order.
func (r *Root) Namespaces() []*Namespace {
	out := make([]*Namespace, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Records returns every record across namespaces in emission order.
func (r *Root) Records() []*Schema {
	var out []*Schema
	for _, ns := range r.Namespaces() {
		out = append(out, ns.Records...)
	}
	return out
}

// Enums returns every enum across namespaces in emission order.
func (r *Root) Enums() []*EnumDefinition {
	var out []*EnumDefinition
	for _, ns := range r.Namespaces() {
		out = append(out, ns.Enums...)
	}
	return out
}
