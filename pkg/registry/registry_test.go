package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

func TestRegister_And_Resolve(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	err := reg.Register(registry.Descriptor{
		ID:           "code/classes",
		Description:  "Counts class declarations.",
		Capabilities: registry.CapMetric | registry.CapValue,
	})
	require.NoError(t, err)

	desc, ok := reg.Resolve("code/classes")
	require.True(t, ok)
	assert.Equal(t, "code/classes", desc.ID)
	assert.True(t, desc.Has(registry.CapMetric))
	assert.True(t, desc.Has(registry.CapValue))
	assert.False(t, desc.Has(registry.CapInsight))
}

func TestRegister_DuplicateIdentity(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, reg.Register(registry.Descriptor{ID: "style/line-length"}))

	err := reg.Register(registry.Descriptor{ID: "style/line-length"})
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrDuplicateIdentity)
	assert.Contains(t, err.Error(), "style/line-length")
}

func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	_, ok := reg.Resolve("no/such-identity")
	assert.False(t, ok)
}

func TestIDs_RegistrationOrder(t *testing.T) {
	t.Parallel()

	reg := registry.New()

	require.NoError(t, reg.Register(registry.Descriptor{ID: "b"}))
	require.NoError(t, reg.Register(registry.Descriptor{ID: "a"}))
	require.NoError(t, reg.Register(registry.Descriptor{ID: "c"}))

	assert.Equal(t, []string{"b", "a", "c"}, reg.IDs())
}

func TestIdentity_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category string
		input    string
		want     string
	}{
		{name: "camel case", category: "code", input: "LineLength", want: "code/line-length"},
		{name: "snake case", category: "style", input: "trailing_whitespace", want: "style/trailing-whitespace"},
		{name: "spaces", category: "code", input: "Todo Comments", want: "code/todo-comments"},
		{name: "already kebab", category: "complexity", input: "cyclomatic", want: "complexity/cyclomatic"},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, registry.Identity(tc.category, tc.input))
		})
	}
}
