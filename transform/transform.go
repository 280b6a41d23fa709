// Package transform holds the pluggable rewrite layer that sits between the
// IR and the default emitters.
//
// A Transformer answers two questions for a node in an output context: can it
// handle the node, and if so what text does it produce. Transformers are tried
// in registration order and the first match wins. Field preprocessing uses the
// same interface: a transformer that claims a *ir.Field rewrites it in place
// and its text result is ignored.
package transform

import (
	"fmt"
	"strings"

	"github.com/teranos/schemagen/ir"
	"github.com/teranos/schemagen/logger"
)

// Context is one of the four output modes.
type Context int

const (
	// Interface is the public structural type.
	Interface Context = iota
	// EncodedInterface is the wire shape. Record references carry an
	// "Encoded" suffix.
	EncodedInterface
	// Schema is the runtime-validated zod expression.
	Schema
	// Enum is the enum case-list rendering.
	Enum
)

func (c Context) String() string {
	switch c {
	case Interface:
		return "interface"
	case EncodedInterface:
		return "encoded"
	case Schema:
		return "schema"
	case Enum:
		return "enum"
	}
	return "unknown"
}

// Renderer renders a type in a context, consulting the chain first. The
// emitter implements it; transformers use it to render nested types.
type Renderer interface {
	Render(t ir.Type, ctx Context, meta *Meta) string
}

// ImportRecorder collects the names a unit must import while it renders.
type ImportRecorder interface {
	// AddClass records that name, declared alongside the record or enum fqn,
	// is referenced.
	AddClass(fqn, name string)
	// AddFile records that names are imported from a transformer-provided file.
	AddFile(path string, names ...string)
}

// Meta carries what a transformer may need beyond the node itself.
type Meta struct {
	// Record is the record being emitted or preprocessed, if any.
	Record *ir.Schema
	// Field is the field being emitted or preprocessed, if any.
	Field *ir.Field
	// Render renders nested types. Nil during preprocessing.
	Render Renderer
	// Imports receives referenced names. May be nil.
	Imports ImportRecorder
	// Readonly controls the readonly qualifier in interface contexts.
	Readonly bool
	// Indent is the nesting depth of object literals.
	Indent int
}

// AddClass records an import if a recorder is attached.
func (m *Meta) AddClass(fqn, name string) {
	if m != nil && m.Imports != nil {
		m.Imports.AddClass(fqn, name)
	}
}

// AddFile records a provided-file import if a recorder is attached.
func (m *Meta) AddFile(path string, names ...string) {
	if m != nil && m.Imports != nil {
		m.Imports.AddFile(path, names...)
	}
}

// Nested returns a copy of m one indentation level deeper.
func (m *Meta) Nested() *Meta {
	inner := *m
	inner.Indent++
	return &inner
}

// Transformer is a single rewrite rule.
type Transformer interface {
	CanHandle(node ir.Node, ctx Context, meta *Meta) bool
	Apply(node ir.Node, ctx Context, meta *Meta) string
}

// File is an auxiliary output artifact with fixed content.
type File struct {
	// Path is relative to the output root, extension included.
	Path    string
	Content string
	// Names are the exported identifiers other units may import.
	Names []string
}

// FileProvider is implemented by transformers that contribute a shared file.
type FileProvider interface {
	ProvidedFile() File
}

// Chain is an ordered list of transformers. First match wins.
type Chain []Transformer

// Find returns the first transformer that handles node in ctx.
func (c Chain) Find(node ir.Node, ctx Context, meta *Meta) Transformer {
	for _, t := range c {
		if t.CanHandle(node, ctx, meta) {
			return t
		}
	}
	return nil
}

// Emit applies the first matching transformer. ok is false when none matched.
func (c Chain) Emit(node ir.Node, ctx Context, meta *Meta) (text string, ok bool) {
	t := c.Find(node, ctx, meta)
	if t == nil {
		return "", false
	}
	return t.Apply(node, ctx, meta), true
}

// Preprocess runs the field pass over every record: each field is offered to
// the chain in the Interface context and the first claimant rewrites it. It
// must run before any emission so every context sees the same field.
func (c Chain) Preprocess(root *ir.Root) int {
	rewritten := 0
	for _, schema := range root.Records() {
		for _, f := range schema.Fields {
			meta := &Meta{Record: schema, Field: f}
			t := c.Find(f, Interface, meta)
			if t == nil {
				continue
			}
			t.Apply(f, Interface, meta)
			rewritten++
			logger.Debugw("Preprocessed field",
				logger.FieldRecord, schema.FQN,
				logger.FieldField, f.Name,
				logger.FieldTransformer, NameOf(t),
				logger.FieldType, ir.Format(f.Type))
		}
	}
	return rewritten
}

// Files returns the files provided by transformers in the chain, in order,
// once per distinct path.
func (c Chain) Files() []File {
	var files []File
	seen := make(map[string]bool)
	for _, t := range c {
		fp, ok := t.(FileProvider)
		if !ok {
			continue
		}
		f := fp.ProvidedFile()
		if seen[f.Path] {
			continue
		}
		seen[f.Path] = true
		files = append(files, f)
	}
	return files
}

// Named is implemented by transformers that report a registry name.
type Named interface {
	Name() string
}

// NameOf returns t's registry name, or its Go type for anonymous transformers.
func NameOf(t Transformer) string {
	if n, ok := t.(Named); ok {
		return n.Name()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", t), "*")
}
