// Package config loads schemagen settings from schemagen.toml and
// SCHEMAGEN_* environment variables.
package config

import (
	"github.com/teranos/schemagen/output"
	"github.com/teranos/schemagen/transform"
)

// Config is the complete schemagen configuration.
type Config struct {
	Output       OutputConfig       `mapstructure:"output" toml:"output"`
	Tokens       TokensConfig       `mapstructure:"tokens" toml:"tokens"`
	Transformers TransformersConfig `mapstructure:"transformers" toml:"transformers"`
	Writers      WritersConfig      `mapstructure:"writers" toml:"writers"`

	// Path is the config file that was read, empty when defaults and
	// environment variables were used alone.
	Path string `mapstructure:"-" toml:"-"`
}

// OutputConfig controls where and how units are written.
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`

	// Extension includes the dot, e.g. ".ts".
	Extension string `mapstructure:"extension" toml:"extension"`

	// Readonly qualifies arrays and object fields in interfaces.
	Readonly bool `mapstructure:"readonly" toml:"readonly"`

	// SchemaImport is prepended to units that use zod.
	SchemaImport string `mapstructure:"schema_import" toml:"schema_import"`

	// Header is the first line of every unit, empty for none.
	Header string `mapstructure:"header" toml:"header"`
}

// TokensConfig controls token stream loading.
type TokensConfig struct {
	// Files are read when none are given on the command line.
	Files []string `mapstructure:"files" toml:"files"`

	// CacheSize bounds the parsed annotation cache.
	CacheSize int `mapstructure:"cache_size" toml:"cache_size"`
}

// TransformersConfig selects and configures the transformer chain.
type TransformersConfig struct {
	// Order lists transformer names. The first match wins.
	Order []string `mapstructure:"order" toml:"order"`

	Lazy       LazyConfig      `mapstructure:"lazy" toml:"lazy"`
	Collection TypesConfig     `mapstructure:"collection" toml:"collection"`
	DateTime   TypesConfig     `mapstructure:"datetime" toml:"datetime"`
	Paginator  PaginatorConfig `mapstructure:"paginator" toml:"paginator"`
}

// LazyConfig configures lazy and optional marker erasure.
type LazyConfig struct {
	Markers      []string `mapstructure:"markers" toml:"markers"`
	OptionalTags []string `mapstructure:"optional_tags" toml:"optional_tags"`
}

// TypesConfig lists the fully qualified class names a transformer claims.
type TypesConfig struct {
	Types []string `mapstructure:"types" toml:"types"`
}

// PaginatorConfig configures paginator expansion.
type PaginatorConfig struct {
	Type string `mapstructure:"type" toml:"type"`

	// File holds the shared declarations, relative to output.dir.
	File string `mapstructure:"file" toml:"file"`
}

// WritersConfig selects the artifacts emitted per record and per enum.
type WritersConfig struct {
	Records []string `mapstructure:"records" toml:"records"`
	Enums   []string `mapstructure:"enums" toml:"enums"`
}

// TransformOptions returns the transformer options this configuration
// describes.
func (c *Config) TransformOptions() transform.Options {
	t := c.Transformers
	return transform.Options{
		LazyMarkers:     t.Lazy.Markers,
		OptionalTags:    t.Lazy.OptionalTags,
		CollectionTypes: t.Collection.Types,
		DateTimeTypes:   t.DateTime.Types,
		PaginatorType:   t.Paginator.Type,
		PaginatorFile:   t.Paginator.File,
	}
}

// OutputOptions returns the unit layout options.
func (c *Config) OutputOptions() output.Options {
	return output.Options{
		Extension:    c.Output.Extension,
		SchemaImport: c.Output.SchemaImport,
		Header:       c.Output.Header,
	}
}
