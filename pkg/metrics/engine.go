package metrics

import (
	"github.com/Sumatoshi-tech/insights/pkg/collector"
	"github.com/Sumatoshi-tech/insights/pkg/preset"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// RunConfig is the slice of the resolved configuration the engine reads:
// per-metric insight additions and global removals.
type RunConfig interface {
	AddedInsights(metric string) []string
	Removes() []string
}

// Result is the computed output for one metric.
type Result struct {
	Metric        string
	Title         string
	Value         float64
	Percentage    float64
	HasValue      bool
	HasPercentage bool
	Insights      []string
}

// Engine computes per-metric results from a resolved configuration and
// collected facts. It holds no mutable state and is safe for concurrent
// use once constructed.
type Engine struct {
	registry *registry.Registry
	preset   preset.Preset
	cfg      RunConfig
}

// NewEngine creates an aggregation engine over the given registry,
// resolved preset, and run configuration.
func NewEngine(reg *registry.Registry, p preset.Preset, cfg RunConfig) *Engine {
	return &Engine{registry: reg, preset: p, cfg: cfg}
}

// ActiveInsights computes the final insight set for a metric:
// preset-assigned insights first in preset order, configured additions
// appended in order, duplicates collapsed keeping the first occurrence,
// and removed insights filtered out. When the preset has no entry for the
// metric, the metric's own fixed insight list is the base set.
func (e *Engine) ActiveInsights(metricID string) []string {
	base := e.preset.InsightsFor(metricID)
	if base == nil {
		base = e.metricInsights(metricID)
	}

	removed := make(map[string]bool, len(e.cfg.Removes()))
	for _, id := range e.cfg.Removes() {
		removed[id] = true
	}

	active := make([]string, 0, len(base))
	seen := make(map[string]bool, len(base))

	for _, id := range append(base, e.cfg.AddedInsights(metricID)...) {
		if seen[id] || removed[id] {
			continue
		}

		seen[id] = true
		active = append(active, id)
	}

	return active
}

// Results computes every registered metric in registration order.
// The facts are read-only; computing results never mutates them.
func (e *Engine) Results(facts *collector.Facts) []Result {
	var results []Result

	for _, id := range e.registry.IDs() {
		desc, ok := e.registry.Resolve(id)
		if !ok || !desc.Has(registry.CapMetric) {
			continue
		}

		metric, ok := desc.Impl.(Metric)
		if !ok {
			continue
		}

		result := Result{
			Metric:   metric.ID(),
			Title:    metric.Title(),
			Insights: e.ActiveInsights(metric.ID()),
		}

		if withValue, ok := desc.Impl.(HasValue); ok {
			result.Value = withValue.Value(facts)
			result.HasValue = true
		}

		if withPercentage, ok := desc.Impl.(HasPercentage); ok {
			result.Percentage = withPercentage.Percentage(facts)
			result.HasPercentage = true
		}

		results = append(results, result)
	}

	return results
}

func (e *Engine) metricInsights(metricID string) []string {
	desc, ok := e.registry.Resolve(metricID)
	if !ok {
		return nil
	}

	if withInsights, ok := desc.Impl.(HasInsights); ok {
		return withInsights.Insights()
	}

	return nil
}
