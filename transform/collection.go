package transform

import (
	"github.com/teranos/schemagen/ir"
)

// DefaultCollectionTypes are the ORM collection wrappers unwrapped by default.
var DefaultCollectionTypes = []string{
	`Doctrine\Common\Collections\Collection`,
	`Doctrine\Common\Collections\ArrayCollection`,
	`Doctrine\Common\Collections\ReadableCollection`,
}

// Collection renders keyed collection wrappers as plain arrays of their
// element type. The element is the second generic argument; the first is the
// key and is discarded.
type Collection struct {
	types []string
}

// NewCollection returns a Collection matching the given wrapper fqns.
func NewCollection(types []string) *Collection {
	return &Collection{types: types}
}

func (c *Collection) Name() string { return NameCollection }

func (c *Collection) CanHandle(node ir.Node, _ Context, _ *Meta) bool {
	ref, ok := node.(*ir.ClassReference)
	return ok && matchesAny(ref.FQN, c.types)
}

func (c *Collection) Apply(node ir.Node, ctx Context, meta *Meta) string {
	ref := node.(*ir.ClassReference)
	elem := elementArg(ref)
	if elem == nil {
		return UnknownArray(ctx, meta.Readonly)
	}
	item := meta.Render.Render(elem, ctx, meta)
	if ctx == Schema {
		return "z.array(" + item + ")"
	}
	return ArrayType(item, meta.Readonly)
}

// elementArg picks the payload of a key/value generic wrapper: the second
// argument, else the first, else nil.
func elementArg(ref *ir.ClassReference) ir.Type {
	switch len(ref.Args) {
	case 0:
		return nil
	case 1:
		return ref.Args[0]
	}
	return ref.Args[1]
}

func matchesAny(fqn string, names []string) bool {
	for _, n := range names {
		if ir.SameName(fqn, n) {
			return true
		}
	}
	return false
}
