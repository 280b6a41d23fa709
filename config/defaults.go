package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/schemagen/annotation"
	"github.com/teranos/schemagen/emit"
	"github.com/teranos/schemagen/output"
	"github.com/teranos/schemagen/transform"
)

// Defaults that are not owned by another package.
const (
	DefaultOutputDir = "generated"
)

// SetDefaults configures default values for every key.
func SetDefaults(v *viper.Viper) {
	// Output
	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.extension", output.DefaultExtension)
	v.SetDefault("output.readonly", true)
	v.SetDefault("output.schema_import", output.DefaultSchemaImport)
	v.SetDefault("output.header", "")

	// Tokens
	v.SetDefault("tokens.files", []string{})
	v.SetDefault("tokens.cache_size", annotation.DefaultCacheSize)

	// Transformers, tried in order
	v.SetDefault("transformers.order", transform.DefaultOrder)
	v.SetDefault("transformers.lazy.markers", transform.DefaultLazyMarkers)
	v.SetDefault("transformers.lazy.optional_tags", transform.DefaultOptionalTags)
	v.SetDefault("transformers.collection.types", transform.DefaultCollectionTypes)
	v.SetDefault("transformers.datetime.types", transform.DefaultDateTimeTypes)
	v.SetDefault("transformers.paginator.type", transform.DefaultPaginatorType)
	v.SetDefault("transformers.paginator.file", transform.DefaultPaginatorFile)

	// Writers, emitted in order
	v.SetDefault("writers.records", emit.DefaultRecordWriters)
	v.SetDefault("writers.enums", emit.DefaultEnumWriters)
}

// Default returns the configuration built from defaults alone.
func Default() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	return LoadWithViper(v)
}
