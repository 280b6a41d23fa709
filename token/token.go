// Package token defines the normalized token stream handed to the generator
// by the discovery/reflection layer, and loads it from JSON, YAML or TOML.
//
// A stream carries one token per definition: a record token with its fields
// or an enum token with its ordered cases.
package token

import "github.com/teranos/schemagen/ir"

// Kind identifies what a token describes.
type Kind string

const (
	KindRecord Kind = "record"
	KindEnum   Kind = "enum"
)

// Stream is a versioned list of tokens.
type Stream struct {
	Version string  `json:"version" yaml:"version" toml:"version"`
	Tokens  []Token `json:"tokens" yaml:"tokens" toml:"tokens"`
}

// Token describes one record or enum.
type Token struct {
	Kind      Kind              `json:"kind" yaml:"kind" toml:"kind"`
	Namespace string            `json:"namespace" yaml:"namespace" toml:"namespace"`
	FQN       string            `json:"fullyQualifiedName" yaml:"fullyQualifiedName" toml:"fullyQualifiedName"`
	Aliases   map[string]string `json:"useAliasTable,omitempty" yaml:"useAliasTable,omitempty" toml:"useAliasTable,omitempty"`
	Fields    []FieldToken      `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
	Tags      []TagToken        `json:"metadataTags,omitempty" yaml:"metadataTags,omitempty" toml:"metadataTags,omitempty"`

	// Enum tokens only.
	BackingKind string      `json:"backingKind,omitempty" yaml:"backingKind,omitempty" toml:"backingKind,omitempty"`
	Cases       []CaseToken `json:"cases,omitempty" yaml:"cases,omitempty" toml:"cases,omitempty"`
}

// FieldToken is one raw field descriptor of a record token. Either type may be
// absent.
type FieldToken struct {
	Name       string       `json:"name" yaml:"name" toml:"name"`
	Primary    *NominalType `json:"primaryType,omitempty" yaml:"primaryType,omitempty" toml:"primaryType,omitempty"`
	Documented *string      `json:"documentedType,omitempty" yaml:"documentedType,omitempty" toml:"documentedType,omitempty"`
	Tags       []TagToken   `json:"metadataTags,omitempty" yaml:"metadataTags,omitempty" toml:"metadataTags,omitempty"`
}

// TagToken is an attached metadata tag with positional arguments.
type TagToken struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Arguments []any  `json:"arguments,omitempty" yaml:"arguments,omitempty" toml:"arguments,omitempty"`
}

// CaseToken is one enum case. Value is absent for unbacked enums.
type CaseToken struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

// NominalKind is the kind of a reflected type.
type NominalKind string

const (
	NominalString NominalKind = "string"
	NominalInt    NominalKind = "int"
	NominalFloat  NominalKind = "float"
	NominalBool   NominalKind = "bool"
	NominalMixed  NominalKind = "mixed"
	NominalArray  NominalKind = "array"
	NominalClass  NominalKind = "class"
	NominalUnion  NominalKind = "union"
	NominalNull   NominalKind = "null"
)

// NominalType is a reflected type description. Nullability is reported by
// the flag, never by a wrapper.
type NominalType struct {
	Kind     NominalKind    `json:"kind" yaml:"kind" toml:"kind"`
	Name     string         `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Nullable bool           `json:"nullable,omitempty" yaml:"nullable,omitempty" toml:"nullable,omitempty"`
	Types    []*NominalType `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty"`
	Value    *NominalType   `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

// Name returns the short name of the token: the last segment of its
// fully-qualified name.
func (t *Token) Name() string {
	return ir.LastSegment(t.FQN)
}
