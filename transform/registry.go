package transform

import (
	"sort"

	"github.com/teranos/schemagen/errors"
)

// Registry names of the built-in transformers.
const (
	NameLazy       = "lazy"
	NameCollection = "collection"
	NameDateTime   = "datetime"
	NamePaginator  = "paginator"
)

// Options configures the built-in transformers. Empty lists fall back to the
// package defaults.
type Options struct {
	LazyMarkers     []string
	OptionalTags    []string
	CollectionTypes []string
	DateTimeTypes   []string
	PaginatorType   string
	PaginatorFile   string
}

// Factory builds a transformer from options.
type Factory func(Options) Transformer

var factories = map[string]Factory{
	NameLazy: func(o Options) Transformer {
		return NewLazyMarker(orDefault(o.LazyMarkers, DefaultLazyMarkers), orDefault(o.OptionalTags, DefaultOptionalTags))
	},
	NameCollection: func(o Options) Transformer {
		return NewCollection(orDefault(o.CollectionTypes, DefaultCollectionTypes))
	},
	NameDateTime: func(o Options) Transformer {
		return NewDateTime(orDefault(o.DateTimeTypes, DefaultDateTimeTypes))
	},
	NamePaginator: func(o Options) Transformer {
		fqn := o.PaginatorType
		if fqn == "" {
			fqn = DefaultPaginatorType
		}
		return NewPaginator(fqn, o.PaginatorFile)
	},
}

// DefaultOrder is the chain used when none is configured.
var DefaultOrder = []string{NameLazy, NameCollection, NameDateTime, NamePaginator}

// Register adds a factory under name, replacing any existing one.
func Register(name string, f Factory) {
	factories[name] = f
}

// Names returns every registered transformer name, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New builds the named transformer.
func New(name string, opts Options) (Transformer, error) {
	f, ok := factories[name]
	if !ok {
		return nil, errors.WithHintf(
			errors.NewUnknownTransformerError("transformer %q is not registered", name),
			"known transformers: %v", Names())
	}
	return f(opts), nil
}

// Build builds a chain from names, in order.
func Build(names []string, opts Options) (Chain, error) {
	chain := make(Chain, 0, len(names))
	for _, name := range names {
		t, err := New(name, opts)
		if err != nil {
			return nil, err
		}
		chain = append(chain, t)
	}
	return chain, nil
}

func orDefault(values, defaults []string) []string {
	if len(values) == 0 {
		return defaults
	}
	return values
}
