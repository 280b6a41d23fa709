// Package emit serialises IR into TypeScript and zod text. Every node is
// first offered to the transformer chain; nodes nobody claims fall through to
// the default rules in this package.
package emit

import (
	"strings"

	"github.com/teranos/schemagen/ir"
	"github.com/teranos/schemagen/transform"
)

// Emitter renders types through a transformer chain with default fallbacks.
// It implements transform.Renderer.
type Emitter struct {
	chain    transform.Chain
	readonly bool
}

// New returns an Emitter. readonly controls the readonly qualifier on arrays
// and object fields in interface contexts.
func New(chain transform.Chain, readonly bool) *Emitter {
	return &Emitter{chain: chain, readonly: readonly}
}

// Meta returns the emission metadata for record, recording imports into imports.
func (e *Emitter) Meta(record *ir.Schema, imports transform.ImportRecorder) *transform.Meta {
	return &transform.Meta{
		Record:   record,
		Render:   e,
		Imports:  imports,
		Readonly: e.readonly,
	}
}

// Render renders t in ctx. The first transformer claiming t wins; otherwise
// the default rules apply.
func (e *Emitter) Render(t ir.Type, ctx transform.Context, meta *transform.Meta) string {
	if meta == nil {
		meta = e.Meta(nil, nil)
	}
	if text, ok := e.chain.Emit(t, ctx, meta); ok {
		return text
	}
	return e.renderDefault(t, ctx, meta)
}

// EmitRecord renders a record with w unless a transformer claims the record
// in w's context.
func (e *Emitter) EmitRecord(s *ir.Schema, w Writer, imports transform.ImportRecorder) string {
	meta := e.Meta(s, imports)
	if text, ok := e.chain.Emit(s, w.Context(), meta); ok {
		return text
	}
	return w.Apply(s, w.Context(), meta)
}

// EmitEnum renders an enum with w unless a transformer claims it.
func (e *Emitter) EmitEnum(def *ir.EnumDefinition, w Writer, imports transform.ImportRecorder) string {
	meta := e.Meta(nil, imports)
	if text, ok := e.chain.Emit(def, w.Context(), meta); ok {
		return text
	}
	return w.Apply(def, w.Context(), meta)
}

func (e *Emitter) renderDefault(t ir.Type, ctx transform.Context, meta *transform.Meta) string {
	schema := ctx == transform.Schema
	switch n := t.(type) {
	case ir.String:
		return pick(schema, "z.string()", "string")
	case ir.Int, ir.Float:
		return pick(schema, "z.number()", "number")
	case ir.Bool:
		return pick(schema, "z.boolean()", "boolean")
	case ir.Unknown:
		return pick(schema, "z.unknown()", "unknown")
	case *ir.ClassReference:
		return e.renderReference(n, ctx, meta)
	case *ir.Array:
		if n.Item == nil {
			return transform.UnknownArray(ctx, meta.Readonly)
		}
		item := e.Render(n.Item, ctx, meta)
		if schema {
			return "z.array(" + item + ")"
		}
		return transform.ArrayType(item, meta.Readonly)
	case *ir.Nullable:
		return e.renderNullable(n, ctx, meta)
	case *ir.Record:
		key := e.Render(n.Key, ctx, meta)
		value := e.Render(n.Value, ctx, meta)
		if schema {
			return "z.record(" + key + ", " + value + ")"
		}
		return "Record<" + key + ", " + value + ">"
	case *ir.Struct:
		return e.renderStruct(n, ctx, meta)
	case *ir.Union:
		return e.renderUnion(n, ctx, meta)
	}
	return pick(schema, "z.unknown()", "unknown")
}

// renderReference renders a record or enum reference. Record schemas are
// wrapped in z.lazy so self and forward references resolve at evaluation
// time. Generic arguments do not appear in the default rendering.
func (e *Emitter) renderReference(ref *ir.ClassReference, ctx transform.Context, meta *transform.Meta) string {
	var name, text string
	switch ctx {
	case transform.EncodedInterface:
		name = ref.Alias
		if !ref.IsEnum {
			name = EncodedName(ref.Alias)
		}
		text = name
	case transform.Schema:
		name = SchemaName(ref.Alias)
		text = name
		if !ref.IsEnum {
			text = "z.lazy(() => " + name + ")"
		}
	default:
		name = ref.Alias
		text = name
	}
	meta.AddClass(ref.FQN, name)
	return text
}

func (e *Emitter) renderNullable(n *ir.Nullable, ctx transform.Context, meta *transform.Meta) string {
	inner := e.Render(n.Inner, ctx, meta)
	if embedsNull(inner, ctx) {
		return inner
	}
	if ctx == transform.Schema {
		return "z.nullable(" + inner + ")"
	}
	return inner + " | null"
}

// renderUnion de-duplicates members by rendered text and hoists null to a
// single trailing marker.
func (e *Emitter) renderUnion(u *ir.Union, ctx transform.Context, meta *transform.Meta) string {
	sawNull := false
	texts := make([]string, 0, len(u.Members))
	seen := make(map[string]bool, len(u.Members))
	for _, m := range u.Members {
		if n, ok := m.(*ir.Nullable); ok {
			sawNull = true
			m = n.Inner
		}
		text := e.Render(m, ctx, meta)
		if seen[text] {
			continue
		}
		seen[text] = true
		texts = append(texts, text)
	}

	embedded := false
	for _, text := range texts {
		if embedsNull(text, ctx) {
			embedded = true
			break
		}
	}
	addNull := sawNull && !embedded

	if ctx == transform.Schema {
		body := texts[0]
		if len(texts) > 1 {
			body = "z.union([" + strings.Join(texts, ", ") + "])"
		}
		if addNull {
			return "z.nullable(" + body + ")"
		}
		return body
	}
	joined := strings.Join(texts, " | ")
	if addNull {
		return joined + " | null"
	}
	return joined
}

func (e *Emitter) renderStruct(s *ir.Struct, ctx transform.Context, meta *transform.Meta) string {
	if len(s.Fields) == 0 {
		return pick(ctx == transform.Schema, "z.object({})", "{}")
	}
	inner := meta.Nested()
	pad := transform.Indent(inner.Indent)
	var b strings.Builder
	if ctx == transform.Schema {
		b.WriteString("z.object({\n")
		for _, f := range s.Fields {
			b.WriteString(pad + PropertyName(f.Name) + ": " + optionalSchema(e.Render(f.Type, ctx, inner), f.Optional) + ",\n")
		}
		b.WriteString(transform.Indent(meta.Indent) + "})")
		return b.String()
	}
	b.WriteString("{\n")
	for _, f := range s.Fields {
		b.WriteString(pad + property(f.Name, f.Optional, meta.Readonly) + ": " + e.Render(f.Type, ctx, inner) + ";\n")
	}
	b.WriteString(transform.Indent(meta.Indent) + "}")
	return b.String()
}

// embedsNull reports whether rendered text already carries null at its top
// level, so no further null marker is added.
func embedsNull(text string, ctx transform.Context) bool {
	if ctx == transform.Schema {
		return text == "z.null()" || strings.HasPrefix(text, "z.nullable(") || strings.HasSuffix(text, ".nullable()")
	}
	if text == "null" {
		return true
	}
	for _, part := range transform.SplitTopLevel(text, '|') {
		if strings.TrimSpace(part) == "null" {
			return true
		}
	}
	return false
}

func optionalSchema(text string, optional bool) string {
	if optional {
		return "z.optional(" + text + ")"
	}
	return text
}

func pick(schema bool, schemaText, typeText string) string {
	if schema {
		return schemaText
	}
	return typeText
}
