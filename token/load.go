package token

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/logger"
)

// Format is the on-disk encoding of a token stream.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

const (
	// CurrentVersion is assumed for streams that carry no version.
	CurrentVersion = "1.0.0"
	// SupportedVersions is the constraint every stream version must satisfy.
	SupportedVersions = ">=1.0.0, <2.0.0"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.WithHint(
		errors.Newf("unrecognised token file extension %q", filepath.Ext(path)),
		"token files must end in .json, .yaml, .yml or .toml",
	)
}

// Decode reads a single stream in the given format and checks its version.
func Decode(r io.Reader, format Format) (*Stream, error) {
	var s Stream
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		// Keep integral arguments and case values integral.
		dec.UseNumber()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(err, "failed to decode JSON token stream")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "failed to decode YAML token stream")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return nil, errors.Wrap(err, "failed to decode TOML token stream")
		}
	default:
		return nil, errors.Newf("unknown token stream format %q", format)
	}
	if err := s.CheckVersion(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads one token file, choosing the decoder by extension.
func LoadFile(path string) (*Stream, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read token file %s", path)
	}
	s, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrapf(err, "token file %s", path)
	}
	logger.Debugw("Loaded token file",
		logger.FieldFile, path,
		logger.FieldFormat, string(format),
		logger.FieldVersion, s.Version,
		logger.FieldCount, len(s.Tokens))
	return s, nil
}

// Load reads every path in order and concatenates their tokens. The merged
// stream carries CurrentVersion.
func Load(paths ...string) (*Stream, error) {
	if len(paths) == 0 {
		return nil, errors.WithHint(errors.New("no token files given"), "pass at least one --tokens file")
	}
	merged := &Stream{Version: CurrentVersion}
	for _, path := range paths {
		s, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged.Tokens = append(merged.Tokens, s.Tokens...)
	}
	return merged, nil
}

// CheckVersion verifies the stream version against SupportedVersions. An
// empty version is taken as CurrentVersion.
func (s *Stream) CheckVersion() error {
	if s.Version == "" {
		s.Version = CurrentVersion
	}
	v, err := semver.NewVersion(s.Version)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, errors.ErrUnsupportedVersion), "invalid token stream version %q", s.Version)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return errors.AssertionFailedf("invalid version constraint %s: %v", SupportedVersions, err)
	}
	if !constraint.Check(v) {
		return errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedVersion, "token stream version %s does not satisfy %s", s.Version, SupportedVersions),
			"regenerate the token stream with a compatible extractor",
		)
	}
	return nil
}
