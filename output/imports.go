package output

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/schemagen/ir"
	"github.com/teranos/schemagen/logger"
)

// Locator maps a fully qualified record or enum name to the unit that
// declares it. ok is false when no unit can be derived.
type Locator func(fqn string) (unit string, ok bool)

// Imports accumulates the names a single unit imports, grouped by target
// unit. It implements transform.ImportRecorder.
type Imports struct {
	unit   string
	locate Locator
	byPath map[string]map[string]bool
}

// NewImports returns an accumulator for the unit at path unit.
func NewImports(unit string, locate Locator) *Imports {
	return &Imports{
		unit:   unit,
		locate: locate,
		byPath: make(map[string]map[string]bool),
	}
}

// AddClass records name, declared in the unit of fqn. Names declared in this
// unit are not imported.
func (i *Imports) AddClass(fqn, name string) {
	target, ok := i.locate(fqn)
	if !ok {
		logger.Debugw("Skipping import without namespace",
			logger.FieldUnit, i.unit,
			logger.FieldImport, name)
		return
	}
	if target == i.unit {
		return
	}
	i.add(target, name)
}

// AddFile records names exported by an auxiliary file at path.
func (i *Imports) AddFile(path string, names ...string) {
	if path == i.unit {
		return
	}
	for _, n := range names {
		i.add(path, n)
	}
}

func (i *Imports) add(target, name string) {
	names, ok := i.byPath[target]
	if !ok {
		names = make(map[string]bool)
		i.byPath[target] = names
	}
	names[name] = true
}

// Len returns the number of distinct import targets.
func (i *Imports) Len() int { return len(i.byPath) }

// Lines renders one import statement per target, sorted by relative path,
// with names sorted within each statement.
func (i *Imports) Lines() []string {
	type line struct {
		from  string
		names []string
	}
	lines := make([]line, 0, len(i.byPath))
	for target, set := range i.byPath {
		names := make([]string, 0, len(set))
		for n := range set {
			names = append(names, n)
		}
		sort.Strings(names)
		lines = append(lines, line{from: RelativeImport(i.unit, target), names: names})
	}
	sort.Slice(lines, func(a, b int) bool { return lines[a].from < lines[b].from })

	out := make([]string, len(lines))
	for n, l := range lines {
		out[n] = "import { " + strings.Join(l.names, ", ") + " } from '" + l.from + "';"
	}
	return out
}

// RelativeImport returns the module specifier that imports the unit at
// target from the unit at from. Both are slash-separated paths relative to
// the output root. The extension is dropped and same-or-lower directories get
// a "./" prefix.
func RelativeImport(from, target string) string {
	target = strings.TrimSuffix(target, filepath.Ext(target))
	rel, err := filepath.Rel(filepath.Dir(filepath.FromSlash(from)), filepath.FromSlash(target))
	if err != nil {
		rel = target
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel
}

// UnitPath maps a namespace to its unit path: `A\B\C` becomes `A/B/C.ts`.
// The global namespace maps to `index`.
func UnitPath(namespace, ext string) string {
	segs := ir.SplitName(namespace)
	if len(segs) == 0 {
		return "index" + ext
	}
	return strings.Join(segs, "/") + ext
}

// RootLocator locates every record and enum of root by its namespace, and
// falls back to the namespace part of any other qualified name.
func RootLocator(root *ir.Root, ext string) Locator {
	declared := make(map[string]string)
	for _, ns := range root.Namespaces() {
		unit := UnitPath(ns.Identifier, ext)
		for _, r := range ns.Records {
			declared[ir.CanonicalName(r.FQN)] = unit
		}
		for _, e := range ns.Enums {
			declared[ir.CanonicalName(e.FQN)] = unit
		}
	}
	return func(fqn string) (string, bool) {
		if unit, ok := declared[ir.CanonicalName(fqn)]; ok {
			return unit, true
		}
		ns := ir.NamespaceOf(fqn)
		if ns == "" {
			return "", false
		}
		return UnitPath(ns, ext), true
	}
}
