package annotation

import (
	"github.com/hashicorp/golang-lru/v2"

	"github.com/teranos/schemagen/errors"
)

// DefaultCacheSize is used when a non-positive size is requested.
const DefaultCacheSize = 512

type parsed struct {
	node Node
	err  error
}

// Cache memoises Parse by expression text. The same documented types repeat
// across many fields (`?string`, `array<string, mixed>`), so parsing each
// distinct expression once is enough.
type Cache struct {
	entries *lru.Cache[string, parsed]
}

// NewCache returns a cache holding up to size parsed expressions.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, parsed](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create annotation cache")
	}
	return &Cache{entries: entries}, nil
}

// Parse returns the cached result for src, parsing it on a miss. Parse
// failures are cached too.
func (c *Cache) Parse(src string) (Node, error) {
	if c == nil {
		return Parse(src)
	}
	if hit, ok := c.entries.Get(src); ok {
		return hit.node, hit.err
	}
	n, err := Parse(src)
	c.entries.Add(src, parsed{node: n, err: err})
	return n, err
}

// Len returns the number of cached expressions.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
