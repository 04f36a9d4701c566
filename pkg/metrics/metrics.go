// Package metrics defines the metric contracts and the aggregation engine
// that turns a resolved configuration plus collected facts into per-metric
// values, percentages, and active insight sets.
package metrics

import "github.com/Sumatoshi-tech/insights/pkg/collector"

// percentMax scales a ratio into a percentage.
const percentMax = 100

// Metric is the minimal contract every metric category implements.
// Capabilities beyond identity are expressed by also implementing
// HasInsights, HasValue, or HasPercentage.
type Metric interface {
	// ID returns the unique identity used in presets and configuration.
	ID() string

	// Title returns the human-readable category name.
	Title() string
}

// HasInsights is implemented by metrics governing an ordered insight set.
type HasInsights interface {
	// Insights returns the metric-defined insight identities in order.
	Insights() []string
}

// HasValue is implemented by metrics deriving a scalar from facts.
type HasValue interface {
	// Value computes the scalar. It must not mutate the facts.
	Value(facts *collector.Facts) float64
}

// HasPercentage is implemented by metrics deriving a ratio from facts.
type HasPercentage interface {
	// Percentage computes a value in [0, 100]. It must not mutate
	// the facts.
	Percentage(facts *collector.Facts) float64
}

// SafePercentage derives part/total as a percentage in [0, 100].
// A zero baseline yields 0 rather than an error or a non-finite value,
// and ratios above the baseline are capped at 100.
func SafePercentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	percentage := part / total * percentMax
	if percentage > percentMax {
		return percentMax
	}

	return percentage
}
