// Package astbuilder turns a token stream into an ir.Root: one namespace
// bucket per namespace identifier, records and enums in token order, and a
// final pass flagging every reference that points at an enum.
package astbuilder

import (
	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/ir"
	"github.com/teranos/schemagen/logger"
	"github.com/teranos/schemagen/token"
	"github.com/teranos/schemagen/typebuilder"
)

// Builder converts tokens to IR.
type Builder struct {
	annotations *typebuilder.AnnotationBuilder
}

// New returns a Builder that parses documented types through p. A nil p
// disables caching.
func New(p typebuilder.Parser) *Builder {
	return &Builder{annotations: typebuilder.NewAnnotationBuilder(p)}
}

// Build converts tokens into a Root. A token that is neither a record nor an
// enum aborts the build.
func (b *Builder) Build(tokens []token.Token) (*ir.Root, error) {
	var records, enums []*token.Token
	for i := range tokens {
		tok := &tokens[i]
		switch tok.Kind {
		case token.KindRecord:
			records = append(records, tok)
		case token.KindEnum:
			enums = append(enums, tok)
		default:
			return nil, errors.NewMalformedTokenError("token %d (%q) has kind %q, want %q or %q",
				i, tok.FQN, tok.Kind, token.KindRecord, token.KindEnum)
		}
	}

	root := ir.NewRoot()
	for i := range tokens {
		root.Ensure(tokens[i].Namespace)
	}

	enumSet := make(map[string]bool, len(enums))
	for _, tok := range enums {
		enumSet[ir.CanonicalName(tok.FQN)] = true
	}

	for _, tok := range enums {
		def, err := buildEnum(tok)
		if err != nil {
			return nil, err
		}
		ns := root.Ensure(tok.Namespace)
		ns.Enums = append(ns.Enums, def)
	}

	for _, tok := range records {
		schema, err := b.buildRecord(tok)
		if err != nil {
			return nil, err
		}
		ns := root.Ensure(tok.Namespace)
		ns.Records = append(ns.Records, schema)
	}

	marked := MarkEnumReferences(root, func(fqn string) bool {
		return enumSet[ir.CanonicalName(fqn)]
	})
	logger.Debugw("Built IR",
		logger.FieldRecord, len(records),
		logger.FieldEnum, len(enums),
		logger.FieldCount, marked)
	return root, nil
}

func (b *Builder) buildRecord(tok *token.Token) (*ir.Schema, error) {
	schema := &ir.Schema{
		Name:    tok.Name(),
		FQN:     ir.TrimName(tok.FQN),
		Aliases: tok.Aliases,
		Fields:  make([]*ir.Field, 0, len(tok.Fields)),
	}
	meta, err := buildTags(tok.Tags)
	if err != nil {
		return nil, errors.Wrapf(err, "record %s", tok.FQN)
	}
	schema.Metadata = meta

	for _, ft := range tok.Fields {
		var t ir.Type
		switch {
		case ft.Documented != nil:
			t = b.annotations.BuildExpr(*ft.Documented, tok.Aliases)
		case ft.Primary != nil:
			// The enum set is not known yet; the post-pass flags enums.
			t = typebuilder.BuildNominal(ft.Primary, nil)
		default:
			t = ir.Unknown{}
		}
		tags, err := buildTags(ft.Tags)
		if err != nil {
			return nil, errors.Wrapf(err, "record %s field %s", tok.FQN, ft.Name)
		}
		schema.Fields = append(schema.Fields, ir.NewField(ft.Name, t, tags...))
	}
	return schema, nil
}

func buildTags(tags []token.TagToken) ([]ir.MetadataTag, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	out := make([]ir.MetadataTag, len(tags))
	for i, tag := range tags {
		args := make([]ir.Value, len(tag.Arguments))
		for j, raw := range tag.Arguments {
			v, err := ir.ValueOf(raw)
			if err != nil {
				return nil, errors.Mark(errors.Wrapf(err, "tag %s argument %d", tag.Name, j), errors.ErrMalformedToken)
			}
			args[j] = v
		}
		out[i] = ir.MetadataTag{Name: tag.Name, Arguments: args}
	}
	return out, nil
}

func buildEnum(tok *token.Token) (*ir.EnumDefinition, error) {
	def := &ir.EnumDefinition{
		Name:  tok.Name(),
		FQN:   ir.TrimName(tok.FQN),
		Cases: make([]ir.EnumCase, 0, len(tok.Cases)),
	}
	switch ir.Backing(tok.BackingKind) {
	case ir.BackingNone, ir.BackingInt, ir.BackingString:
		def.Backing = ir.Backing(tok.BackingKind)
	default:
		return nil, errors.NewMalformedTokenError("enum %s has backing kind %q", tok.FQN, tok.BackingKind)
	}

	for _, c := range tok.Cases {
		ec := ir.EnumCase{Name: c.Name}
		if def.Backing != ir.BackingNone {
			v, err := caseValue(def.Backing, c.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "enum %s case %s", tok.FQN, c.Name)
			}
			ec.Value = v
		}
		def.Cases = append(def.Cases, ec)
	}
	return def, nil
}

func caseValue(backing ir.Backing, raw any) (ir.Value, error) {
	v, err := ir.ValueOf(raw)
	if err != nil {
		return nil, errors.Mark(err, errors.ErrMalformedToken)
	}
	switch v := v.(type) {
	case ir.IntValue:
		if backing == ir.BackingString {
			return ir.StringValue(v.String()), nil
		}
		return v, nil
	case ir.StringValue:
		return v, nil
	case ir.NullValue:
		return nil, nil
	}
	return nil, errors.NewMalformedTokenError("case value %s is not an int or string", v)
}

// MarkEnumReferences sets IsEnum on every class reference in every record
// field whose name is an enum, recursing through every composite node. It
// returns the number of references marked.
func MarkEnumReferences(root *ir.Root, isEnum typebuilder.EnumSet) int {
	marked := 0
	for _, schema := range root.Records() {
		for _, f := range schema.Fields {
			for _, ref := range ir.References(f.Type) {
				if isEnum(ref.FQN) {
					ref.IsEnum = true
					marked++
				}
			}
		}
	}
	return marked
}
