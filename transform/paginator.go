package transform

import (
	"github.com/teranos/schemagen/ir"
)

// Paginator defaults.
const (
	DefaultPaginatorType = `Illuminate\Pagination\LengthAwarePaginator`
	DefaultPaginatorFile = "paginated.ts"

	paginatedType   = "Paginated"
	paginatedSchema = "paginatedSchema"
)

const paginatedContent = `import { z } from 'zod';

export interface Paginated<T> {
  readonly items: readonly T[];
  readonly total: number;
  readonly page: number;
  readonly perPage: number;
}

export const paginatedSchema = <T extends z.ZodTypeAny>(item: T) =>
  z.object({
    items: z.array(item),
    total: z.number(),
    page: z.number(),
    perPage: z.number(),
  });
`

// Paginator expands a paginator wrapper into the shared Paginated<T> type and
// paginatedSchema(item) combinator, both declared once in a provided file.
// The payload is the second generic argument, else the first.
type Paginator struct {
	fqn  string
	file string
}

// NewPaginator returns a Paginator for the wrapper fqn whose shared
// declarations live at file, relative to the output root.
func NewPaginator(fqn, file string) *Paginator {
	if file == "" {
		file = DefaultPaginatorFile
	}
	return &Paginator{fqn: fqn, file: file}
}

func (p *Paginator) Name() string { return NamePaginator }

func (p *Paginator) CanHandle(node ir.Node, _ Context, _ *Meta) bool {
	ref, ok := node.(*ir.ClassReference)
	return ok && ir.SameName(ref.FQN, p.fqn)
}

func (p *Paginator) Apply(node ir.Node, ctx Context, meta *Meta) string {
	elem := elementArg(node.(*ir.ClassReference))
	if elem == nil {
		elem = ir.Unknown{}
	}
	if ctx == Schema {
		meta.AddFile(p.file, paginatedSchema)
		return paginatedSchema + "(" + meta.Render.Render(elem, Schema, meta) + ")"
	}
	meta.AddFile(p.file, paginatedType)
	return paginatedType + "<" + meta.Render.Render(elem, ctx, meta) + ">"
}

// ProvidedFile returns the shared Paginated declarations.
func (p *Paginator) ProvidedFile() File {
	return File{
		Path:    p.file,
		Content: paginatedContent,
		Names:   []string{paginatedType, paginatedSchema},
	}
}
