package typebuilder

import (
	"github.com/teranos/schemagen/ir"
	"github.com/teranos/schemagen/token"
)

// EnumSet reports whether a fully-qualified name is a known enum.
type EnumSet func(fqn string) bool

// BuildNominal converts a reflected type description into IR. The base type
// is built first, ignoring nullability; the Nullable wrapper is applied
// afterwards from the input's own flag.
func BuildNominal(t *token.NominalType, isEnum EnumSet) ir.Type {
	if t == nil {
		return ir.Unknown{}
	}
	base := nominalBase(t, isEnum)
	if t.Nullable {
		return ir.NewNullable(base)
	}
	return base
}

func nominalBase(t *token.NominalType, isEnum EnumSet) ir.Type {
	switch t.Kind {
	case token.NominalString:
		return ir.String{}
	case token.NominalInt:
		return ir.Int{}
	case token.NominalFloat:
		return ir.Float{}
	case token.NominalBool:
		return ir.Bool{}
	case token.NominalArray:
		if t.Value == nil {
			return ir.NewArray(nil)
		}
		return ir.NewArray(BuildNominal(t.Value, isEnum))
	case token.NominalClass:
		if t.Name == "" {
			return ir.Unknown{}
		}
		ref := ir.NewClassReference(t.Name, "")
		ref.IsEnum = isEnum != nil && isEnum(ref.FQN)
		return ref
	case token.NominalUnion:
		members := make([]ir.Type, 0, len(t.Types))
		for _, m := range t.Types {
			if m == nil || m.Kind == token.NominalNull {
				continue
			}
			members = append(members, nominalBase(m, isEnum))
		}
		return ir.NewUnion(members...)
	}
	// mixed, null and anything unrecognised
	return ir.Unknown{}
}
