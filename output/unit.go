// Package output groups emitted records and enums into units, resolves the
// imports between them and writes the result to disk.
package output

import (
	"regexp"
	"strings"

	"github.com/teranos/schemagen/emit"
	"github.com/teranos/schemagen/ir"
	"github.com/teranos/schemagen/logger"
	"github.com/teranos/schemagen/transform"
)

// Defaults for Options.
const (
	DefaultExtension    = ".ts"
	DefaultSchemaImport = "import { z } from 'zod';"
)

var schemaToken = regexp.MustCompile(`\bz\.`)

// File is one generated artifact, its path relative to the output root.
type File struct {
	Path    string
	Content string
}

// Options controls unit layout.
type Options struct {
	// Extension is appended to unit paths, dot included.
	Extension string
	// SchemaImport is prepended to units that use schema combinators.
	SchemaImport string
	// Header, when set, is the first line of every unit.
	Header string
}

// Orchestrator renders a Root into units.
type Orchestrator struct {
	emitter *emit.Emitter
	records []emit.Writer
	enums   []emit.Writer
	aux     []transform.File
	opts    Options
}

// New returns an Orchestrator that runs every record writer over each record
// and every enum writer over each enum, and appends the auxiliary files.
func New(e *emit.Emitter, records, enums []emit.Writer, aux []transform.File, opts Options) *Orchestrator {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.SchemaImport == "" {
		opts.SchemaImport = DefaultSchemaImport
	}
	return &Orchestrator{emitter: e, records: records, enums: enums, aux: aux, opts: opts}
}

type unit struct {
	path       string
	namespaces []*ir.Namespace
}

// Render returns one file per unit, in namespace first-seen order, followed
// by the auxiliary files. Namespaces that map to the same path share a unit.
func (o *Orchestrator) Render(root *ir.Root) []File {
	var units []*unit
	byPath := make(map[string]*unit)
	for _, ns := range root.Namespaces() {
		if len(ns.Records) == 0 && len(ns.Enums) == 0 {
			continue
		}
		path := UnitPath(ns.Identifier, o.opts.Extension)
		u, ok := byPath[path]
		if !ok {
			u = &unit{path: path}
			byPath[path] = u
			units = append(units, u)
		}
		u.namespaces = append(u.namespaces, ns)
	}

	locate := RootLocator(root, o.opts.Extension)
	files := make([]File, 0, len(units)+len(o.aux))
	for _, u := range units {
		files = append(files, o.renderUnit(u, locate))
	}
	for _, f := range o.aux {
		files = append(files, File{Path: f.Path, Content: finish(f.Content)})
	}
	return files
}

func (o *Orchestrator) renderUnit(u *unit, locate Locator) File {
	imports := NewImports(u.path, locate)
	var sections []string
	for _, ns := range u.namespaces {
		for _, r := range ns.Records {
			for _, w := range o.records {
				sections = append(sections, strings.TrimSpace(o.emitter.EmitRecord(r, w, imports)))
			}
		}
		for _, e := range ns.Enums {
			for _, w := range o.enums {
				sections = append(sections, strings.TrimSpace(o.emitter.EmitEnum(e, w, imports)))
			}
		}
	}

	body := strings.Join(sections, "\n\n")
	content := Assemble(o.opts.Header, o.schemaImport(body), imports.Lines(), body)
	logger.Debugw("Rendered unit",
		logger.FieldUnit, u.path,
		logger.FieldCount, len(sections),
		logger.FieldImport, imports.Len())
	return File{Path: u.path, Content: content}
}

func (o *Orchestrator) schemaImport(body string) string {
	if schemaToken.MatchString(body) {
		return o.opts.SchemaImport
	}
	return ""
}

// Assemble lays out a unit: the optional header, the schema library import,
// the import block and the body, separated by blank lines.
func Assemble(header, schemaImport string, imports []string, body string) string {
	var parts []string
	if header != "" {
		parts = append(parts, header)
	}
	if schemaImport != "" {
		parts = append(parts, schemaImport)
	}
	if len(imports) > 0 {
		parts = append(parts, strings.Join(imports, "\n"))
	}
	if body != "" {
		parts = append(parts, body)
	}
	return finish(strings.Join(parts, "\n\n"))
}

// finish trims trailing whitespace and ends text with exactly one newline.
func finish(text string) string {
	return strings.TrimRight(text, " \t\r\n") + "\n"
}
