package ir

import "strings"

// Walk visits t and every type nested inside it in pre-order. Returning false
// from fn skips the children of the node just visited.
func Walk(t Type, fn func(Type) bool) {
	if t == nil || !fn(t) {
		return
	}
	switch n := t.(type) {
	case *Array:
		Walk(n.Item, fn)
	case *Record:
		Walk(n.Key, fn)
		Walk(n.Value, fn)
	case *Nullable:
		Walk(n.Inner, fn)
	case *Union:
		for _, m := range n.Members {
			Walk(m, fn)
		}
	case *Struct:
		for _, f := range n.Fields {
			Walk(f.Type, fn)
		}
	case *ClassReference:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	}
}

// References returns every ClassReference inside t in pre-order.
func References(t Type) []*ClassReference {
	var refs []*ClassReference
	Walk(t, func(n Type) bool {
		if ref, ok := n.(*ClassReference); ok {
			refs = append(refs, ref)
		}
		return true
	})
	return refs
}

// Format renders t as a compact debug string, e.g. Nullable(Union(Int, String)).
func Format(t Type) string {
	var b strings.Builder
	format(&b, t)
	return b.String()
}

func format(b *strings.Builder, t Type) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	b.WriteString(t.Kind().String())
	switch n := t.(type) {
	case *Array:
		if n.Item != nil {
			b.WriteByte('(')
			format(b, n.Item)
			b.WriteByte(')')
		}
	case *Record:
		b.WriteByte('(')
		format(b, n.Key)
		b.WriteString(", ")
		format(b, n.Value)
		b.WriteByte(')')
	case *Nullable:
		b.WriteByte('(')
		format(b, n.Inner)
		b.WriteByte(')')
	case *Union:
		b.WriteByte('(')
		for i, m := range n.Members {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, m)
		}
		b.WriteByte(')')
	case *Struct:
		b.WriteByte('(')
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			if f.Optional {
				b.WriteByte('?')
			}
			b.WriteString(": ")
			format(b, f.Type)
		}
		b.WriteByte(')')
	case *ClassReference:
		b.WriteByte('(')
		b.WriteString(n.FQN)
		if n.IsEnum {
			b.WriteString(" enum")
		}
		for _, a := range n.Args {
			b.WriteString(", ")
			format(b, a)
		}
		b.WriteByte(')')
	}
}
