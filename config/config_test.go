package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/schemagen/emit"
	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/transform"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Output.Dir != DefaultOutputDir {
		t.Errorf("expected default output dir %q, got %q", DefaultOutputDir, cfg.Output.Dir)
	}
	if cfg.Output.Extension != ".ts" {
		t.Errorf("expected default extension .ts, got %q", cfg.Output.Extension)
	}
	if !cfg.Output.Readonly {
		t.Error("expected readonly to default to true")
	}
	if cfg.Output.Header != "" {
		t.Errorf("expected no default header, got %q", cfg.Output.Header)
	}
	assert.Equal(t, transform.DefaultOrder, cfg.Transformers.Order)
	assert.Equal(t, emit.DefaultRecordWriters, cfg.Writers.Records)
	assert.Equal(t, transform.DefaultPaginatorType, cfg.Transformers.Paginator.Type)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Default()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		unknown bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty order is valid", mutate: func(c *Config) { c.Transformers.Order = nil }},
		{name: "empty output dir", mutate: func(c *Config) { c.Output.Dir = " " }, wantErr: true},
		{name: "extension without dot", mutate: func(c *Config) { c.Output.Extension = "ts" }, wantErr: true},
		{name: "bare dot extension", mutate: func(c *Config) { c.Output.Extension = "." }, wantErr: true},
		{name: "negative cache", mutate: func(c *Config) { c.Tokens.CacheSize = -1 }, wantErr: true},
		{name: "zero cache uses default", mutate: func(c *Config) { c.Tokens.CacheSize = 0 }},
		{
			name:    "unknown transformer",
			mutate:  func(c *Config) { c.Transformers.Order = []string{"lazy", "money"} },
			wantErr: true,
			unknown: true,
		},
		{
			name:    "unknown record writer",
			mutate:  func(c *Config) { c.Writers.Records = []string{"class"} },
			wantErr: true,
			unknown: true,
		},
		{
			name:    "unknown enum writer",
			mutate:  func(c *Config) { c.Writers.Enums = []string{"encoded"} },
			wantErr: true,
			unknown: true,
		},
		{
			name:    "no writers",
			mutate:  func(c *Config) { c.Writers.Records, c.Writers.Enums = nil, nil },
			wantErr: true,
		},
		{name: "enum writers only", mutate: func(c *Config) { c.Writers.Records = nil }},
		{
			name:    "paginator file without extension",
			mutate:  func(c *Config) { c.Transformers.Paginator.File = "paginated" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.unknown, errors.Is(err, errors.ErrUnknownTransformer))
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[output]
dir = "web/src/generated"
readonly = false
header = "// @generated"

[transformers]
order = ["datetime", "lazy"]

[transformers.datetime]
types = ["App\\Support\\Moment"]
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "web/src/generated", cfg.Output.Dir)
	assert.False(t, cfg.Output.Readonly)
	assert.Equal(t, "// @generated", cfg.Output.Header)
	assert.Equal(t, []string{"datetime", "lazy"}, cfg.Transformers.Order)
	assert.Equal(t, []string{`App\Support\Moment`}, cfg.Transformers.DateTime.Types)
	assert.Equal(t, ".ts", cfg.Output.Extension, "unset keys keep their defaults")

	opts := cfg.TransformOptions()
	assert.Equal(t, []string{`App\Support\Moment`}, opts.DateTimeTypes)
	assert.Equal(t, "// @generated", cfg.OutputOptions().Header)
}

func TestLoadFromFileRejectsUnknownTransformer(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[transformers]\norder = [\"nope\"]\n")
	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownTransformer))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\ndir = \"from-file\"\nextension = \".mts\"\n")
	t.Setenv("SCHEMAGEN_OUTPUT_DIR", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output.Dir)
	assert.Equal(t, ".mts", cfg.Output.Extension)

	settings, err := Introspect(path)
	require.NoError(t, err)
	sources := make(map[string]Setting, len(settings))
	for _, s := range settings {
		sources[s.Key] = s
	}
	assert.Equal(t, SourceEnvironment, sources["output.dir"].Source)
	assert.Equal(t, "SCHEMAGEN_OUTPUT_DIR", sources["output.dir"].Origin)
	assert.Equal(t, SourceFile, sources["output.extension"].Source)
	assert.Equal(t, path, sources["output.extension"].Origin)
	assert.Equal(t, SourceDefault, sources["output.readonly"].Source)
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Equal(t, "", FindProjectConfig(nested))

	path := writeConfig(t, root, "")
	assert.Equal(t, path, FindProjectConfig(nested))
	assert.Equal(t, path, FindProjectConfig(root))
}

func TestInitAndBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultConfigFile)

	require.NoError(t, Init(path, false))
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def.Output, cfg.Output)
	assert.Equal(t, def.Transformers.Order, cfg.Transformers.Order)
	assert.Equal(t, def.Writers, cfg.Writers)

	err = Init(path, false)
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))

	require.NoError(t, Init(path, true))
	_, err = os.Stat(path + ".back1")
	assert.NoError(t, err)

	require.NoError(t, Init(path, true))
	_, err = os.Stat(path + ".back2")
	assert.NoError(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "SCHEMAGEN_TRANSFORMERS_LAZY_OPTIONAL_TAGS", EnvKey("transformers.lazy.optional_tags"))
}
