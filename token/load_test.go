package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/schemagen/errors"
	"github.com/teranos/schemagen/ir"
)

func TestLoadFileFormatsAgree(t *testing.T) {
	for _, path := range []string{"testdata/stream.json", "testdata/stream.yaml", "testdata/stream.toml"} {
		t.Run(path, func(t *testing.T) {
			s, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "1.2.0", s.Version)
			require.Len(t, s.Tokens, 2)

			rec := s.Tokens[0]
			assert.Equal(t, KindRecord, rec.Kind)
			assert.Equal(t, `App\Models`, rec.Namespace)
			assert.Equal(t, "User", rec.Name())
			assert.Equal(t, map[string]string{"Status": `App\Enums\Status`}, rec.Aliases)
			require.Len(t, rec.Fields, 3)

			assert.Equal(t, NominalInt, rec.Fields[0].Primary.Kind)
			assert.Nil(t, rec.Fields[0].Documented)

			require.NotNil(t, rec.Fields[1].Documented)
			assert.Equal(t, "?Status", *rec.Fields[1].Documented)
			assert.Nil(t, rec.Fields[1].Primary)

			tags := rec.Fields[2].Tags
			require.Len(t, tags, 1)
			assert.Equal(t, "Optional", tags[0].Name)
			args, err := ir.ValueOf(tags[0].Arguments)
			require.NoError(t, err)
			assert.Equal(t, ir.ListValue{ir.IntValue(1), ir.StringValue("x")}, args)
			assert.Equal(t, NominalString, rec.Fields[2].Primary.Value.Kind)

			enum := s.Tokens[1]
			assert.Equal(t, KindEnum, enum.Kind)
			assert.Equal(t, "int", enum.BackingKind)
			require.Len(t, enum.Cases, 2)
			assert.Equal(t, "Banned", enum.Cases[1].Name)
			v, err := ir.ValueOf(enum.Cases[1].Value)
			require.NoError(t, err)
			assert.Equal(t, ir.IntValue(2), v)
		})
	}
}

func TestLoadConcatenatesInOrder(t *testing.T) {
	s, err := Load("testdata/stream.yaml", "testdata/stream.json")
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, s.Version)
	assert.Len(t, s.Tokens, 4)
}

func TestLoadRequiresPaths(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestUnsupportedVersion(t *testing.T) {
	_, err := LoadFile("testdata/future.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedVersion))

	_, err = Decode(strings.NewReader(`{"version": "banana"}`), FormatJSON)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedVersion))
}

func TestMissingVersionDefaults(t *testing.T) {
	s, err := Decode(strings.NewReader("tokens: []\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, s.Version)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/tokens.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("tokens.xml")
	assert.Error(t, err)
}
