package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/insights/cmd/insights/commands"
)

const fixtureSource = `package fixture

// Thing is a fixture type.
type Thing struct {
	Name string
}

// TODO: remove this marker in the fixture.
func Describe(t Thing) string {
	return t.Name
}
`

func writeFixture(t *testing.T) (dir, configPath string) {
	t.Helper()

	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thing.go"), []byte(fixtureSource), 0o600))

	configPath = filepath.Join(dir, "insights.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("preset: default\n"), 0o600))

	return dir, configPath
}

func TestAnalyze_TextOutput(t *testing.T) {
	t.Parallel()

	dir, configPath := writeFixture(t)

	cmd := commands.NewAnalyzeCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", configPath, "--directory", dir, "--no-color"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Classes")
	assert.Contains(t, out.String(), "code/todo-comments")
}

func TestAnalyze_JSONOutput(t *testing.T) {
	t.Parallel()

	dir, configPath := writeFixture(t)

	cmd := commands.NewAnalyzeCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "--directory", dir, "--format", "json"})

	require.NoError(t, cmd.Execute())

	var decoded struct {
		Metrics []struct {
			Metric string `json:"metric"`
		} `json:"metrics"`
		Findings []struct {
			Insight string `json:"insight"`
		} `json:"findings"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	assert.NotEmpty(t, decoded.Metrics)

	found := false

	for _, finding := range decoded.Findings {
		if finding.Insight == "code/todo-comments" {
			found = true
		}
	}

	assert.True(t, found, "todo marker fixture should produce a finding, got %s", out.String())
}

func TestAnalyze_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	dir, configPath := writeFixture(t)

	cmd := commands.NewAnalyzeCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "--directory", dir, "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestAnalyze_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "insights.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("preset: not-a-real-preset\n"), 0o600))

	cmd := commands.NewAnalyzeCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "--directory", dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-real-preset")
}
