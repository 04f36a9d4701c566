package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/insights/pkg/builtin"
	"github.com/Sumatoshi-tech/insights/pkg/preset"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

func TestNewRegistry_Capabilities(t *testing.T) {
	t.Parallel()

	reg, err := builtin.NewRegistry()
	require.NoError(t, err)

	classes, ok := reg.Resolve("code/classes")
	require.True(t, ok)
	assert.True(t, classes.Has(registry.CapMetric))
	assert.True(t, classes.Has(registry.CapValue))
	assert.True(t, classes.Has(registry.CapPercentage))

	format, ok := reg.Resolve("style/format")
	require.True(t, ok)
	assert.True(t, format.Has(registry.CapMetric))
	assert.False(t, format.Has(registry.CapValue))

	lineLength, ok := reg.Resolve("style/line-length")
	require.True(t, ok)
	assert.True(t, lineLength.Has(registry.CapInsight))
	assert.False(t, lineLength.Has(registry.CapMetric))
}

// Builtin identities are derived from type names through the registry
// normalizer, so they must line up with the kebab-case wire identities
// presets and configuration files use.
func TestNewRegistry_IdentitiesAreNormalized(t *testing.T) {
	t.Parallel()

	reg, err := builtin.NewRegistry()
	require.NoError(t, err)

	wired := []string{
		registry.Identity("code", "Lines"),
		registry.Identity("code", "Classes"),
		registry.Identity("code", "Functions"),
		registry.Identity("code", "Comments"),
		registry.Identity("complexity", "Cyclomatic"),
		registry.Identity("architecture", "Files"),
		registry.Identity("style", "Format"),
		registry.Identity("style", "LineLength"),
		registry.Identity("style", "TrailingWhitespace"),
		registry.Identity("code", "TodoComments"),
		registry.Identity("code", "LargeFiles"),
		registry.Identity("code", "EmptyFiles"),
		registry.Identity("complexity", "CyclomaticLimit"),
	}

	assert.Equal(t, wired, reg.IDs())
}

// Every insight referenced by every builtin preset must resolve, or the
// resolver would reject its own defaults.
func TestNewRegistry_CoversPresetReferences(t *testing.T) {
	t.Parallel()

	reg, err := builtin.NewRegistry()
	require.NoError(t, err)

	presets := preset.NewRegistry()

	for _, name := range presets.Names() {
		p, ok := presets.Find(name)
		require.True(t, ok)

		for metricID, insightIDs := range p.MetricInsights() {
			metric, ok := reg.Resolve(metricID)
			require.True(t, ok, "preset %s references unknown metric %s", name, metricID)
			assert.True(t, metric.Has(registry.CapMetric), "preset %s: %s is not a metric", name, metricID)

			for _, insightID := range insightIDs {
				insight, ok := reg.Resolve(insightID)
				require.True(t, ok, "preset %s references unknown insight %s", name, insightID)
				assert.True(t, insight.Has(registry.CapInsight), "preset %s: %s is not an insight", name, insightID)
			}
		}
	}
}
