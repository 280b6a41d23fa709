package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/schemagen/config"
	"github.com/teranos/schemagen/errors"
)

const blogTokens = "../../../generate/testdata/blog.json"

func useConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, config.Init(path, false))
	ConfigPath = path
	t.Cleanup(func() { ConfigPath = "" })
	return path
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitOutOfDate, ExitCode(errors.Wrap(errors.ErrOutOfDate, "2 differing")))
}

func TestGenerateStdout(t *testing.T) {
	useConfig(t)

	var out bytes.Buffer
	GenerateCmd.SetOut(&out)
	GenerateCmd.SetArgs([]string{"--stdout", "--tokens", blogTokens})
	require.NoError(t, GenerateCmd.Execute())

	text := out.String()
	assert.Contains(t, text, "// Unit: App/Models.ts\nimport { z } from 'zod';\n")
	assert.Contains(t, text, "// Unit: App/Enums.ts\n")
	assert.Contains(t, text, "// Unit: paginated.ts\n")
	assert.Contains(t, text, "export const PostSchema: z.ZodType<Post, z.ZodTypeDef, PostEncoded>")
}

func TestCheckReportsStaleOutput(t *testing.T) {
	useConfig(t)

	CheckCmd.SetArgs([]string{"--tokens", blogTokens, "--output", t.TempDir()})
	err := CheckCmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsOutOfDate(err))
	assert.Equal(t, ExitOutOfDate, ExitCode(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	useConfig(t)

	ConfigCmd.SetArgs([]string{"init"})
	err := ConfigCmd.Execute()
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}
