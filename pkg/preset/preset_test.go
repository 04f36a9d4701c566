package preset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/insights/pkg/preset"
)

func TestNewRegistry_Names(t *testing.T) {
	t.Parallel()

	reg := preset.NewRegistry()

	assert.Equal(t, []string{"default", "service", "library", "cli"}, reg.Names())
}

func TestFind_Known(t *testing.T) {
	t.Parallel()

	reg := preset.NewRegistry()

	p, ok := reg.Find("default")
	require.True(t, ok)
	assert.Equal(t, "default", p.Name())
}

func TestFind_Unknown(t *testing.T) {
	t.Parallel()

	reg := preset.NewRegistry()

	_, ok := reg.Find("not-a-real-preset")
	assert.False(t, ok)
}

func TestInsightsFor_OrderPreserved(t *testing.T) {
	t.Parallel()

	reg := preset.NewRegistry()

	p, ok := reg.Find("default")
	require.True(t, ok)

	insights := p.InsightsFor("style/format")
	assert.Equal(t, []string{"style/line-length", "style/trailing-whitespace"}, insights)
}

func TestInsightsFor_UnknownMetric(t *testing.T) {
	t.Parallel()

	reg := preset.NewRegistry()

	p, ok := reg.Find("cli")
	require.True(t, ok)

	assert.Nil(t, p.InsightsFor("no/such-metric"))
}

func TestMetricInsights_ReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := preset.NewRegistry()

	p, ok := reg.Find("default")
	require.True(t, ok)

	mapping := p.MetricInsights()
	mapping["style/format"][0] = "mutated"

	fresh := p.InsightsFor("style/format")
	assert.Equal(t, "style/line-length", fresh[0])
}

func TestNames_Unique(t *testing.T) {
	t.Parallel()

	reg := preset.NewRegistry()

	seen := make(map[string]bool)
	for _, name := range reg.Names() {
		require.False(t, seen[name], "duplicate preset name %q", name)

		seen[name] = true
	}
}
