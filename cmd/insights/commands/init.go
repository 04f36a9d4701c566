package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/insights/internal/config"
)

// defaultConfigFile is where init writes the starter configuration.
const defaultConfigFile = ".insights.yml"

// configFileMode is the permission mode for the generated config file.
const configFileMode = 0o644

// ErrConfigExists indicates the target config file already exists.
var ErrConfigExists = errors.New("config file already exists")

// configHeader precedes the generated YAML.
const configHeader = `# Insights configuration.
# Recognized keys: preset, directory, exclude, add, remove, config, ide.
`

// starterConfig is the shape written by insights init.
type starterConfig struct {
	Preset  string   `yaml:"preset"`
	Exclude []string `yaml:"exclude"`
}

// InitCommand holds the flags for the init command.
type InitCommand struct {
	output string
	force  bool
}

// NewInitCommand creates and configures the init command.
func NewInitCommand() *cobra.Command {
	cmd := &InitCommand{}

	cobraCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .insights.yml",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", defaultConfigFile, "Config file to write")
	cobraCmd.Flags().BoolVar(&cmd.force, "force", false, "Overwrite an existing config file")

	return cobraCmd
}

// Run executes the init command.
func (c *InitCommand) Run(cmd *cobra.Command, _ []string) error {
	if !c.force {
		if _, statErr := os.Stat(c.output); statErr == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, c.output)
		}
	}

	starter := starterConfig{
		Preset:  config.DefaultPreset,
		Exclude: []string{"vendor", "testdata"},
	}

	body, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("marshal starter config: %w", err)
	}

	content := append([]byte(configHeader), body...)

	if err := os.WriteFile(c.output, content, configFileMode); err != nil {
		return fmt.Errorf("write %s: %w", c.output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", c.output)

	return nil
}
