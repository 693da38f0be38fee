package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, FormatText, cfg.Format)
	require.Empty(t, cfg.File)
	require.False(t, cfg.Strict)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Format(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML} {
		cfg := Defaults()
		cfg.Format = f
		require.NoError(t, cfg.Validate(), "format %s", f)
	}

	cfg := Defaults()
	cfg.Format = "xml"
	require.ErrorContains(t, cfg.Validate(), `invalid format "xml"`)
}
