package config

import (
	"os"
	"sort"

	"github.com/spf13/viper"
)

// Source is where a configuration value came from.
type Source string

const (
	SourceDefault     Source = "default"
	SourceFile        Source = "file"
	SourceEnvironment Source = "environment" // SCHEMAGEN_* env vars
)

// Setting is one effective key with its origin.
type Setting struct {
	Key    string
	Value  any
	Source Source
	// Origin is the file path or environment variable name.
	Origin string
}

// Introspect resolves the configuration like Load and reports, per key,
// the effective value and where it came from. Keys are sorted.
func Introspect(path string) ([]Setting, error) {
	v, used, err := read(path)
	if err != nil {
		return nil, err
	}

	fromFile := make(map[string]bool)
	if used != "" {
		fv := viper.New()
		if err := readFile(fv, used); err != nil {
			return nil, err
		}
		for _, k := range fv.AllKeys() {
			fromFile[k] = true
		}
	}

	keys := v.AllKeys()
	sort.Strings(keys)
	settings := make([]Setting, 0, len(keys))
	for _, key := range keys {
		s := Setting{Key: key, Value: v.Get(key), Source: SourceDefault, Origin: "built-in default"}
		if env := EnvKey(key); os.Getenv(env) != "" {
			s.Source, s.Origin = SourceEnvironment, env
		} else if fromFile[key] {
			s.Source, s.Origin = SourceFile, used
		}
		settings = append(settings, s)
	}
	return settings, nil
}
