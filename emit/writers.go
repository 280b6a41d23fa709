package emit

import (
	"regexp"
	"strings"

	"github.com/teranos/schemagen/ir"
	"github.com/teranos/schemagen/transform"
)

// Writer renders one artifact kind for a record or enum. A writer is shaped
// like a transformer but only claims its own definition kind in its own
// context.
type Writer interface {
	transform.Transformer
	Context() transform.Context
	Name() string
}

// EncodedName is the wire interface name for a record alias.
func EncodedName(alias string) string { return alias + "Encoded" }

// SchemaName is the zod schema constant name for a record or enum alias.
func SchemaName(alias string) string { return alias + "Schema" }

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// PropertyName returns name as an object key, quoted unless it is a valid
// identifier.
func PropertyName(name string) string {
	if identifier.MatchString(name) {
		return name
	}
	return ir.StringValue(name).String()
}

func property(name string, optional, readonly bool) string {
	var b strings.Builder
	if readonly {
		b.WriteString("readonly ")
	}
	b.WriteString(PropertyName(name))
	if optional {
		b.WriteByte('?')
	}
	return b.String()
}

// fieldMeta narrows meta to field f at the first indentation level.
func fieldMeta(meta *transform.Meta, f *ir.Field) *transform.Meta {
	fm := *meta
	fm.Field = f
	fm.Indent = 1
	return &fm
}

// interfaceBody renders the `{ ... }` body shared by the interface writers.
func interfaceBody(s *ir.Schema, ctx transform.Context, meta *transform.Meta) string {
	if len(s.Fields) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, f := range s.Fields {
		fm := fieldMeta(meta, f)
		b.WriteString(transform.IndentUnit)
		b.WriteString(property(f.Name, f.Optional, meta.Readonly))
		b.WriteString(": ")
		b.WriteString(meta.Render.Render(f.Type, ctx, fm))
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func isRecord(node ir.Node) bool {
	_, ok := node.(*ir.Schema)
	return ok
}

func isEnum(node ir.Node) bool {
	_, ok := node.(*ir.EnumDefinition)
	return ok
}

// InterfaceWriter emits `export interface X { ... }`.
type InterfaceWriter struct{}

func (InterfaceWriter) Name() string               { return WriterInterface }
func (InterfaceWriter) Context() transform.Context { return transform.Interface }
func (w InterfaceWriter) CanHandle(node ir.Node, ctx transform.Context, _ *transform.Meta) bool {
	return isRecord(node) && ctx == w.Context()
}

func (w InterfaceWriter) Apply(node ir.Node, ctx transform.Context, meta *transform.Meta) string {
	s := node.(*ir.Schema)
	return "export interface " + s.Name + " " + interfaceBody(s, ctx, meta)
}

// EncodedWriter emits the wire shape `export interface XEncoded { ... }`.
// Record references inside it point at other Encoded interfaces.
type EncodedWriter struct{}

func (EncodedWriter) Name() string               { return WriterEncoded }
func (EncodedWriter) Context() transform.Context { return transform.EncodedInterface }
func (w EncodedWriter) CanHandle(node ir.Node, ctx transform.Context, _ *transform.Meta) bool {
	return isRecord(node) && ctx == w.Context()
}

func (w EncodedWriter) Apply(node ir.Node, ctx transform.Context, meta *transform.Meta) string {
	s := node.(*ir.Schema)
	return "export interface " + EncodedName(s.Name) + " " + interfaceBody(s, ctx, meta)
}

// SchemaWriter emits `export const XSchema = z.object({ ... });`. When the
// interface writers run alongside it, the constant is annotated with the
// output and input types so the schema is checked against them.
type SchemaWriter struct {
	Output  bool
	Encoded bool
}

func (SchemaWriter) Name() string               { return WriterSchema }
func (SchemaWriter) Context() transform.Context { return transform.Schema }
func (w SchemaWriter) CanHandle(node ir.Node, ctx transform.Context, _ *transform.Meta) bool {
	return isRecord(node) && ctx == w.Context()
}

func (w SchemaWriter) Apply(node ir.Node, ctx transform.Context, meta *transform.Meta) string {
	s := node.(*ir.Schema)
	var b strings.Builder
	b.WriteString("export const " + SchemaName(s.Name))
	switch {
	case w.Output && w.Encoded:
		b.WriteString(": z.ZodType<" + s.Name + ", z.ZodTypeDef, " + EncodedName(s.Name) + ">")
	case w.Output:
		b.WriteString(": z.ZodType<" + s.Name + ">")
	}
	b.WriteString(" = ")
	if len(s.Fields) == 0 {
		b.WriteString("z.object({});")
		return b.String()
	}
	b.WriteString("z.object({\n")
	for _, f := range s.Fields {
		fm := fieldMeta(meta, f)
		b.WriteString(transform.IndentUnit)
		b.WriteString(PropertyName(f.Name))
		b.WriteString(": ")
		b.WriteString(optionalSchema(meta.Render.Render(f.Type, ctx, fm), f.Optional))
		b.WriteString(",\n")
	}
	b.WriteString("});")
	return b.String()
}

// EnumTypeWriter emits `export type X = "a" | "b";`. Unbacked enums use their
// case names as string literals.
type EnumTypeWriter struct{}

func (EnumTypeWriter) Name() string               { return WriterEnumType }
func (EnumTypeWriter) Context() transform.Context { return transform.Enum }
func (w EnumTypeWriter) CanHandle(node ir.Node, ctx transform.Context, _ *transform.Meta) bool {
	return isEnum(node) && ctx == w.Context()
}

func (w EnumTypeWriter) Apply(node ir.Node, _ transform.Context, _ *transform.Meta) string {
	def := node.(*ir.EnumDefinition)
	literals := caseLiterals(def)
	body := "never"
	if len(literals) > 0 {
		body = strings.Join(literals, " | ")
	}
	return "export type " + def.Name + " = " + body + ";"
}

// EnumSchemaWriter emits `export const XSchema = ...;` validating the case
// values: z.enum for strings, z.literal unions for integers.
type EnumSchemaWriter struct{}

func (EnumSchemaWriter) Name() string               { return WriterEnumSchema }
func (EnumSchemaWriter) Context() transform.Context { return transform.Schema }
func (w EnumSchemaWriter) CanHandle(node ir.Node, ctx transform.Context, _ *transform.Meta) bool {
	return isEnum(node) && ctx == w.Context()
}

func (w EnumSchemaWriter) Apply(node ir.Node, _ transform.Context, _ *transform.Meta) string {
	def := node.(*ir.EnumDefinition)
	literals := caseLiterals(def)
	var body string
	switch {
	case len(literals) == 0:
		body = "z.never()"
	case def.Backing != ir.BackingInt:
		body = "z.enum([" + strings.Join(literals, ", ") + "])"
	case len(literals) == 1:
		body = "z.literal(" + literals[0] + ")"
	default:
		parts := make([]string, len(literals))
		for i, l := range literals {
			parts[i] = "z.literal(" + l + ")"
		}
		body = "z.union([" + strings.Join(parts, ", ") + "])"
	}
	return "export const " + SchemaName(def.Name) + " = " + body + ";"
}

// caseLiterals renders each case as a TypeScript literal, in case order.
func caseLiterals(def *ir.EnumDefinition) []string {
	out := make([]string, 0, len(def.Cases))
	for _, c := range def.Cases {
		if c.Value == nil {
			out = append(out, ir.StringValue(c.Name).String())
			continue
		}
		out = append(out, c.Value.String())
	}
	return out
}
