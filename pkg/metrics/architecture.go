package metrics

import (
	"github.com/Sumatoshi-tech/insights/pkg/collector"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// goLanguage is the enry language name for Go sources.
const goLanguage = "Go"

// Files measures the analyzed file population.
type Files struct{}

// ID returns the metric identity.
func (Files) ID() string { return registry.Identity("architecture", "Files") }

// Title returns the human-readable category name.
func (Files) Title() string { return "Files" }

// Value returns the total number of analyzed files.
func (Files) Value(facts *collector.Facts) float64 {
	return float64(facts.TotalFiles)
}

// Percentage returns the share of Go files in the analyzed population.
func (Files) Percentage(facts *collector.Facts) float64 {
	return SafePercentage(float64(facts.Languages[goLanguage]), float64(facts.TotalFiles))
}

// Format groups pure style checks. It carries no scalar of its own.
type Format struct{}

// ID returns the metric identity.
func (Format) ID() string { return registry.Identity("style", "Format") }

// Title returns the human-readable category name.
func (Format) Title() string { return "Format" }

// Insights returns the metric-defined insight identities.
func (Format) Insights() []string {
	return []string{"style/line-length", "style/trailing-whitespace"}
}
