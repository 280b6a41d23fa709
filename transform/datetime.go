package transform

import (
	"github.com/teranos/schemagen/ir"
)

// DefaultDateTimeTypes are the date/time classes substituted by default.
var DefaultDateTimeTypes = []string{
	"DateTime",
	"DateTimeImmutable",
	"DateTimeInterface",
	`Carbon\Carbon`,
	`Carbon\CarbonImmutable`,
}

// DateTime substitutes date/time classes: a Date in the public interface, an
// ISO string on the wire, and a coercing date schema.
type DateTime struct {
	types []string
}

// NewDateTime returns a DateTime matching the given fqns.
func NewDateTime(types []string) *DateTime {
	return &DateTime{types: types}
}

func (d *DateTime) Name() string { return NameDateTime }

func (d *DateTime) CanHandle(node ir.Node, _ Context, _ *Meta) bool {
	ref, ok := node.(*ir.ClassReference)
	return ok && matchesAny(ref.FQN, d.types)
}

func (d *DateTime) Apply(_ ir.Node, ctx Context, _ *Meta) string {
	switch ctx {
	case Interface:
		return "Date"
	case Schema:
		return "z.coerce.date()"
	}
	return "string"
}
