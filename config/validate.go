package config

import (
	"strings"

	"github.com/teranos/schemagen/emit"
	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/transform"
)

// Validate checks that the configuration is usable. Unknown transformer or
// writer names are reported here rather than during generation.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("output.dir cannot be empty")
	}
	if !strings.HasPrefix(c.Output.Extension, ".") || len(c.Output.Extension) < 2 {
		return errors.Newf("output.extension must start with a dot, got %q", c.Output.Extension)
	}

	if c.Tokens.CacheSize < 0 {
		return errors.Newf("tokens.cache_size must be >= 0, got %d", c.Tokens.CacheSize)
	}

	if _, err := transform.Build(c.Transformers.Order, c.TransformOptions()); err != nil {
		return errors.Wrap(err, "transformers.order")
	}
	if c.Transformers.Paginator.File != "" && !strings.Contains(c.Transformers.Paginator.File, ".") {
		return errors.Newf("transformers.paginator.file must include an extension, got %q", c.Transformers.Paginator.File)
	}

	if _, err := emit.RecordWriters(c.Writers.Records); err != nil {
		return errors.Wrap(err, "writers.records")
	}
	if _, err := emit.EnumWriters(c.Writers.Enums); err != nil {
		return errors.Wrap(err, "writers.enums")
	}
	if len(c.Writers.Records) == 0 && len(c.Writers.Enums) == 0 {
		return errors.New("writers.records and writers.enums cannot both be empty")
	}

	return nil
}
