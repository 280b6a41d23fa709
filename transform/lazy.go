package transform

import (
	"github.com/teranos/schemagen/ir"
)

// Default lazy/optional marker configuration.
var (
	DefaultLazyMarkers  = []string{`App\Types\Lazy`, `App\Types\Optional`}
	DefaultOptionalTags = []string{"Optional"}
)

// LazyMarker erases marker types from field types and marks the field
// optional. A field qualifies when the marker is its whole type, a member of
// its top-level union, or sits directly inside its top-level Nullable, or
// when the field or its record carries an optional tag.
//
// It only claims fields, so it acts during preprocessing and never during
// emission.
type LazyMarker struct {
	markers      []string
	optionalTags []string
}

// NewLazyMarker returns a LazyMarker for the given marker fqns and tag names.
func NewLazyMarker(markers, optionalTags []string) *LazyMarker {
	return &LazyMarker{markers: markers, optionalTags: optionalTags}
}

func (l *LazyMarker) Name() string { return NameLazy }

func (l *LazyMarker) CanHandle(node ir.Node, ctx Context, meta *Meta) bool {
	f, ok := node.(*ir.Field)
	if !ok || ctx != Interface {
		return false
	}
	if l.hasOptionalTag(f, meta) {
		return true
	}
	return l.topLevelMarker(f.Type)
}

func (l *LazyMarker) Apply(node ir.Node, _ Context, _ *Meta) string {
	f := node.(*ir.Field)
	f.Optional = true
	f.Type = l.strip(f.Type)
	return ""
}

func (l *LazyMarker) hasOptionalTag(f *ir.Field, meta *Meta) bool {
	for _, tag := range l.optionalTags {
		if f.HasTag(tag) {
			return true
		}
		if meta != nil && meta.Record != nil && meta.Record.HasTag(tag) {
			return true
		}
	}
	return false
}

func (l *LazyMarker) isMarker(t ir.Type) bool {
	ref, ok := t.(*ir.ClassReference)
	if !ok {
		return false
	}
	for _, m := range l.markers {
		if ir.SameName(ref.FQN, m) {
			return true
		}
	}
	return false
}

func (l *LazyMarker) topLevelMarker(t ir.Type) bool {
	if n, ok := t.(*ir.Nullable); ok {
		t = n.Inner
	}
	if l.isMarker(t) {
		return true
	}
	u, ok := t.(*ir.Union)
	if !ok {
		return false
	}
	for _, m := range u.Members {
		if n, ok := m.(*ir.Nullable); ok {
			m = n.Inner
		}
		if l.isMarker(m) {
			return true
		}
	}
	return false
}

// strip removes every occurrence of a marker from t. A marker with one
// generic argument is replaced by that argument; any other marker becomes
// Unknown, or disappears when it is a union member.
func (l *LazyMarker) strip(t ir.Type) ir.Type {
	switch n := t.(type) {
	case *ir.ClassReference:
		if l.isMarker(n) {
			if len(n.Args) == 1 {
				return l.strip(n.Args[0])
			}
			return ir.Unknown{}
		}
		if len(n.Args) == 0 {
			return n
		}
		args := make([]ir.Type, len(n.Args))
		for i, a := range n.Args {
			args[i] = l.strip(a)
		}
		return &ir.ClassReference{FQN: n.FQN, Alias: n.Alias, Args: args, IsEnum: n.IsEnum}
	case *ir.Nullable:
		return ir.NewNullable(l.strip(n.Inner))
	case *ir.Union:
		return l.stripUnion(n)
	case *ir.Array:
		if n.Item == nil {
			return n
		}
		return ir.NewArray(l.strip(n.Item))
	case *ir.Record:
		return ir.NewRecord(l.strip(n.Key), l.strip(n.Value))
	case *ir.Struct:
		fields := make([]ir.StructField, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = ir.StructField{Name: f.Name, Type: l.strip(f.Type), Optional: f.Optional}
		}
		return ir.NewStruct(fields...)
	}
	return t
}

func (l *LazyMarker) stripUnion(u *ir.Union) ir.Type {
	members := make([]ir.Type, 0, len(u.Members))
	for _, m := range u.Members {
		if l.isMarker(m) && len(m.(*ir.ClassReference).Args) != 1 {
			continue
		}
		stripped := l.strip(m)
		// A Nullable member that held only the marker is gone, not Nullable(Unknown).
		if n, ok := m.(*ir.Nullable); ok && !ir.IsUnknown(n.Inner) {
			if sn, ok := stripped.(*ir.Nullable); ok && ir.IsUnknown(sn.Inner) {
				continue
			}
		}
		members = append(members, stripped)
	}
	return ir.NewUnion(members...)
}
