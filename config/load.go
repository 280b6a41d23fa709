package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/logger"
)

// File discovery and environment binding.
const (
	DefaultConfigFile = "schemagen.toml"
	EnvPrefix         = "SCHEMAGEN"
)

// NewViper returns a Viper instance with defaults and SCHEMAGEN_* environment
// variables bound. No file is read.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the configuration. When path is empty the nearest
// schemagen.toml at or above the working directory is used, and defaults
// apply if there is none. Environment variables override file values.
func Load(path string) (*Config, error) {
	v, used, err := read(path)
	if err != nil {
		return nil, err
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	cfg.Path = used
	logger.Infow("Loaded configuration",
		logger.FieldPath, used,
		logger.FieldCount, len(v.AllKeys()))
	return cfg, nil
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from configPath without environment
// overrides.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	if err := readFile(v, configPath); err != nil {
		return nil, err
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", configPath)
	}
	cfg.Path = configPath
	return cfg, nil
}

func read(path string) (*viper.Viper, string, error) {
	v := NewViper()
	if path == "" {
		path = FindProjectConfig("")
	}
	if path == "" {
		return v, "", nil
	}
	if err := readFile(v, path); err != nil {
		return nil, "", err
	}
	return v, path, nil
}

func readFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "failed to read config file %s", path),
			"run 'schemagen config init' to create one")
	}
	return nil
}

// FindProjectConfig searches for schemagen.toml in start and each of its
// parents. An empty start means the working directory. It returns "" when no
// file is found.
func FindProjectConfig(start string) string {
	dir := start
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = wd
	}

	for {
		candidate := filepath.Join(dir, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// EnvKey returns the environment variable that overrides key.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
