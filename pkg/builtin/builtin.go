// Package builtin wires the shipped metrics and insights into a type
// registry. Registration order drives report order, so metrics are
// registered before insights and grouped by category.
package builtin

import (
	"fmt"

	"github.com/Sumatoshi-tech/insights/pkg/insights"
	"github.com/Sumatoshi-tech/insights/pkg/metrics"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// NewRegistry builds the registry of all builtin metrics and insights.
func NewRegistry() (*registry.Registry, error) {
	reg := registry.New()

	builtinMetrics := []metrics.Metric{
		metrics.Lines{},
		metrics.Classes{},
		metrics.Functions{},
		metrics.Comments{},
		metrics.Cyclomatic{},
		metrics.Files{},
		metrics.Format{},
	}

	for _, metric := range builtinMetrics {
		if err := registerMetric(reg, metric); err != nil {
			return nil, err
		}
	}

	builtinInsights := []insights.Insight{
		insights.NewLineLength(),
		insights.NewTrailingWhitespace(),
		insights.NewTodoComments(),
		insights.NewLargeFiles(),
		insights.NewEmptyFiles(),
		insights.NewCyclomaticLimit(),
	}

	for _, insight := range builtinInsights {
		if err := registerInsight(reg, insight); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func registerMetric(reg *registry.Registry, metric metrics.Metric) error {
	caps := registry.CapMetric

	if _, ok := metric.(metrics.HasValue); ok {
		caps |= registry.CapValue
	}

	if _, ok := metric.(metrics.HasPercentage); ok {
		caps |= registry.CapPercentage
	}

	err := reg.Register(registry.Descriptor{
		ID:           metric.ID(),
		Description:  metric.Title(),
		Capabilities: caps,
		Impl:         metric,
	})
	if err != nil {
		return fmt.Errorf("register metric: %w", err)
	}

	return nil
}

func registerInsight(reg *registry.Registry, insight insights.Insight) error {
	err := reg.Register(registry.Descriptor{
		ID:           insight.ID(),
		Description:  insight.Title(),
		Capabilities: registry.CapInsight,
		Impl:         insight,
	})
	if err != nil {
		return fmt.Errorf("register insight: %w", err)
	}

	return nil
}
