package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/insights/internal/config"
)

func TestResolveIDE_KnownEditors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ide  string
		want string
	}{
		{ide: "vscode", want: "vscode://file/internal/app.go:42"},
		{ide: "phpstorm", want: "phpstorm://open?file=internal/app.go&line=42"},
		{ide: "sublime", want: "subl://open?url=file://internal/app.go&line=42"},
		{ide: "textmate", want: "txmt://open?url=file://internal/app.go&line=42"},
		{ide: "atom", want: "atom://core/open/file?filename=internal/app.go&line=42"},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.ide, func(t *testing.T) {
			t.Parallel()

			formatter, err := config.ResolveIDE(tc.ide)
			require.NoError(t, err)

			assert.Equal(t, tc.want, formatter.Format("internal/app.go", 42))
		})
	}
}

func TestResolveIDE_CustomTemplate(t *testing.T) {
	t.Parallel()

	formatter, err := config.ResolveIDE("myeditor://open?f=%f&l=%l")
	require.NoError(t, err)

	assert.Equal(t, "myeditor://open?f=cmd/main.go&l=3", formatter.Format("cmd/main.go", 3))
}

func TestResolveIDE_Unknown(t *testing.T) {
	t.Parallel()

	_, err := config.ResolveIDE("unknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "unknown")

	// The message lists every known identifier.
	for _, known := range []string{"atom", "emacs", "macvim", "phpstorm", "sublime", "textmate", "vscode"} {
		assert.Contains(t, err.Error(), known)
	}
}

func TestNullFileLinkFormatter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", config.NullFileLinkFormatter{}.Format("main.go", 10))
}
