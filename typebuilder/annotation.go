// Package typebuilder turns declared types into IR type nodes. The annotation
// builder consumes documented type expressions; the nominal builder consumes
// reflected type descriptions. Both produce the same node vocabulary.
package typebuilder

import (
	"sort"

	"golang.org/x/text/cases"

	"github.com/teranos/schemagen/annotation"
	"github.com/teranos/schemagen/ir"
	"github.com/teranos/schemagen/logger"
)

// Parser parses an annotation expression. *annotation.Cache satisfies it.
type Parser interface {
	Parse(src string) (annotation.Node, error)
}

type parseFunc func(string) (annotation.Node, error)

func (f parseFunc) Parse(src string) (annotation.Node, error) { return f(src) }

// AnnotationBuilder builds IR from documented type expressions.
type AnnotationBuilder struct {
	parser Parser
	fold   cases.Caser
}

// NewAnnotationBuilder returns a builder parsing through p. A nil p parses
// every expression afresh.
func NewAnnotationBuilder(p Parser) *AnnotationBuilder {
	if p == nil {
		p = parseFunc(annotation.Parse)
	}
	return &AnnotationBuilder{parser: p, fold: cases.Fold()}
}

// BuildExpr parses expr and builds its IR. An expression that does not parse
// degrades to Unknown.
func (b *AnnotationBuilder) BuildExpr(expr string, aliases map[string]string) ir.Type {
	n, err := b.parser.Parse(expr)
	if err != nil {
		logger.Debugw("Unparseable documented type, using unknown",
			logger.FieldType, expr,
			logger.FieldError, err)
		return ir.Unknown{}
	}
	return b.Build(n, aliases)
}

// Build converts a parsed expression into IR, resolving class names against
// the alias table.
func (b *AnnotationBuilder) Build(n annotation.Node, aliases map[string]string) ir.Type {
	switch n := n.(type) {
	case *annotation.Nullable:
		return ir.NewNullable(b.Build(n.Inner, aliases))
	case *annotation.Union:
		return b.buildUnion(n, aliases)
	case *annotation.Shape:
		return b.buildShape(n, aliases)
	case *annotation.ArrayOf:
		return ir.NewArray(b.Build(n.Inner, aliases))
	case *annotation.Generic:
		return b.buildGeneric(n, aliases)
	case *annotation.Literal:
		return literalType(n)
	case *annotation.Ident:
		if t, ok := b.primitive(n.Name); ok {
			return t
		}
		return ir.NewClassReference(Resolve(n.Name, aliases), "")
	}
	return ir.Unknown{}
}

func (b *AnnotationBuilder) buildUnion(n *annotation.Union, aliases map[string]string) ir.Type {
	sawNull := false
	members := make([]ir.Type, 0, len(n.Members))
	for _, m := range n.Members {
		if id, ok := m.(*annotation.Ident); ok && b.fold.String(id.Name) == "null" {
			sawNull = true
			continue
		}
		t := b.Build(m, aliases)
		// `?int|string` still yields a single outer Nullable.
		if nn, ok := t.(*ir.Nullable); ok {
			sawNull = true
			t = nn.Inner
		}
		members = append(members, t)
	}
	result := ir.NewUnion(members...)
	if sawNull {
		return ir.NewNullable(result)
	}
	return result
}

func (b *AnnotationBuilder) buildShape(n *annotation.Shape, aliases map[string]string) *ir.Struct {
	fields := make([]ir.StructField, len(n.Items))
	for i, item := range n.Items {
		fields[i] = ir.StructField{
			Name:     item.Key,
			Type:     b.Build(item.Value, aliases),
			Optional: item.Optional,
		}
	}
	return ir.NewStruct(fields...)
}

func (b *AnnotationBuilder) buildGeneric(n *annotation.Generic, aliases map[string]string) ir.Type {
	switch b.fold.String(n.Base) {
	case "array", "non-empty-array", "iterable":
		switch len(n.Args) {
		case 1:
			return ir.NewArray(b.Build(n.Args[0], aliases))
		case 2:
			value := b.Build(n.Args[1], aliases)
			// array<K, array{...}> maps each key to a list of shaped rows.
			if shape, ok := n.Args[1].(*annotation.Shape); ok && shape.Base != "" {
				value = ir.NewArray(value)
			}
			return ir.NewRecord(b.Build(n.Args[0], aliases), value)
		}
		return ir.NewArray(nil)
	case "list", "non-empty-list":
		if len(n.Args) == 1 {
			return ir.NewArray(b.Build(n.Args[0], aliases))
		}
		return ir.NewArray(nil)
	}
	args := make([]ir.Type, len(n.Args))
	for i, a := range n.Args {
		args[i] = b.Build(a, aliases)
	}
	return ir.NewClassReference(Resolve(n.Base, aliases), "", args...)
}

// primitive matches the fixed keyword set case-insensitively.
func (b *AnnotationBuilder) primitive(name string) (ir.Type, bool) {
	switch b.fold.String(name) {
	case "string", "non-empty-string", "numeric-string", "class-string":
		return ir.String{}, true
	case "int", "integer", "positive-int", "negative-int", "non-negative-int":
		return ir.Int{}, true
	case "float", "double":
		return ir.Float{}, true
	case "bool", "boolean", "true", "false":
		return ir.Bool{}, true
	case "array", "list", "iterable":
		return ir.NewArray(nil), true
	case "mixed", "object":
		return ir.Unknown{}, true
	case "array-key":
		return ir.NewUnion(ir.String{}, ir.Int{}), true
	case "null":
		return ir.NewNullable(ir.Unknown{}), true
	}
	return nil, false
}

func literalType(n *annotation.Literal) ir.Type {
	switch n.Kind {
	case annotation.LiteralInt:
		return ir.Int{}
	case annotation.LiteralFloat:
		return ir.Float{}
	}
	return ir.String{}
}

// Resolve maps a class name to its fully-qualified form. The name is matched
// against each alias key and the last segment of each aliased name, in key
// order; without a match the bare name is used verbatim.
func Resolve(name string, aliases map[string]string) string {
	if len(aliases) == 0 || ir.NamespaceOf(name) != "" {
		return ir.TrimName(name)
	}
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == name {
			return ir.TrimName(aliases[k])
		}
	}
	for _, k := range keys {
		if ir.LastSegment(aliases[k]) == name {
			return ir.TrimName(aliases[k])
		}
	}
	return ir.TrimName(name)
}
