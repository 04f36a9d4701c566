package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/insights/internal/config"
	"github.com/Sumatoshi-tech/insights/internal/logging"
	"github.com/Sumatoshi-tech/insights/internal/report"
	"github.com/Sumatoshi-tech/insights/pkg/builtin"
	"github.com/Sumatoshi-tech/insights/pkg/collector"
	"github.com/Sumatoshi-tech/insights/pkg/insights"
	"github.com/Sumatoshi-tech/insights/pkg/metrics"
	"github.com/Sumatoshi-tech/insights/pkg/preset"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// Output formats for the analyze command.
const (
	formatText = "text"
	formatJSON = "json"
)

// AnalyzeCommand holds the flags for the analyze command.
type AnalyzeCommand struct {
	configPath string
	directory  string
	presetName string
	format     string
	noColor    bool
	verbose    bool
}

// NewAnalyzeCommand creates and configures the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	cmd := &AnalyzeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a source tree and render the metrics report",
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.configPath, "config", "c", "", "Config file path (default: .insights.yml in CWD or $HOME)")
	cobraCmd.Flags().StringVarP(&cmd.directory, "directory", "d", "", "Analysis root (overrides config)")
	cobraCmd.Flags().StringVarP(&cmd.presetName, "preset", "p", "", "Preset name (overrides config)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", formatText, "Output format: text or json")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")
	cobraCmd.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "Verbose output")

	return cobraCmd
}

// Run executes the analyze command.
func (c *AnalyzeCommand) Run(cmd *cobra.Command, _ []string) error {
	if c.format != formatText && c.format != formatJSON {
		return fmt.Errorf("unsupported format %q: use %s or %s", c.format, formatText, formatJSON) //nolint:err113 // dynamic error is acceptable here.
	}

	logger := logging.New(cmd.ErrOrStderr(), c.verbose)

	raw, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	// CLI flags win over file and environment values.
	if c.directory != "" {
		raw["directory"] = c.directory
	}

	if c.presetName != "" {
		raw["preset"] = c.presetName
	}

	reg, err := builtin.NewRegistry()
	if err != nil {
		return err
	}

	presets := preset.NewRegistry()

	cfg, err := config.NewResolver(reg, presets).Resolve(raw)
	if err != nil {
		return err
	}

	logger.Debug("configuration resolved", "preset", cfg.Preset(), "directory", cfg.Directory())

	facts, err := collector.New(cfg.Excludes()).Collect(cfg.Directory())
	if err != nil {
		return err
	}

	logger.Debug("facts collected", "files", facts.TotalFiles, "lines", facts.TotalLines)

	resolvedPreset, _ := presets.Find(cfg.Preset())
	engine := metrics.NewEngine(reg, resolvedPreset, cfg)
	results := engine.Results(facts)

	findings, err := collectFindings(reg, cfg, results, facts)
	if err != nil {
		return err
	}

	renderer := report.New(cmd.OutOrStdout(), cfg.FileLinkFormatter(), c.noColor)

	if c.format == formatJSON {
		return renderer.RenderJSON(results, findings)
	}

	return renderer.Render(results, findings)
}

// collectFindings configures and runs every active insight exactly once,
// in the order metrics first reference them.
func collectFindings(reg *registry.Registry, cfg *config.Config, results []metrics.Result, facts *collector.Facts) ([]report.InsightFindings, error) {
	var findings []report.InsightFindings

	seen := make(map[string]bool)

	for _, result := range results {
		for _, id := range result.Insights {
			if seen[id] {
				continue
			}

			seen[id] = true

			desc, ok := reg.Resolve(id)
			if !ok {
				continue
			}

			insight, ok := desc.Impl.(insights.Insight)
			if !ok {
				continue
			}

			if err := insight.Configure(cfg.OptionsFor(id)); err != nil {
				return nil, fmt.Errorf("configure insight %s: %w", id, err)
			}

			findings = append(findings, report.InsightFindings{
				ID:      id,
				Title:   insight.Title(),
				Details: insight.Analyze(facts),
			})
		}
	}

	return findings, nil
}
