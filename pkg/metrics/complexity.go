package metrics

import (
	"github.com/Sumatoshi-tech/insights/pkg/collector"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// Cyclomatic measures average cyclomatic complexity per function.
type Cyclomatic struct{}

// ID returns the metric identity.
func (Cyclomatic) ID() string { return registry.Identity("complexity", "Cyclomatic") }

// Title returns the human-readable category name.
func (Cyclomatic) Title() string { return "Cyclomatic complexity" }

// Insights returns the metric-defined insight identities.
func (Cyclomatic) Insights() []string {
	return []string{"complexity/cyclomatic-limit"}
}

// Value returns the average complexity per function, or 0 when the tree
// declares no functions.
func (Cyclomatic) Value(facts *collector.Facts) float64 {
	if facts.TotalFunctions == 0 {
		return 0
	}

	return float64(facts.TotalComplexity) / float64(facts.TotalFunctions)
}
