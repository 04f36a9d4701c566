package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/insights/cmd/insights/commands"
)

func TestInit_WritesParseableConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".insights.yml")

	cmd := commands.NewInitCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--output", path})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(content, &decoded))

	assert.Equal(t, "default", decoded["preset"])
	assert.Contains(t, decoded, "exclude")
}

func TestInit_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".insights.yml")
	require.NoError(t, os.WriteFile(path, []byte("preset: cli\n"), 0o600))

	cmd := commands.NewInitCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--output", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrConfigExists)
}

func TestInit_ForceOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".insights.yml")
	require.NoError(t, os.WriteFile(path, []byte("preset: cli\n"), 0o600))

	cmd := commands.NewInitCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--output", path, "--force"})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "preset: default")
}
