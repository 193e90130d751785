package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	cfg, err := LoadConfig("", filepath.Join("testdata"))
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "yaml", cfg.Output.Format)
	require.Equal(t, "out/account.yaml", cfg.Output.Path)
	require.Equal(t, "schemas/account.yaml", cfg.Schema.Path)
	require.False(t, cfg.Form.ScrubHidden)
	require.Equal(t, 3, cfg.Form.MaxAttempts)
	require.Equal(t, "> ", cfg.Theme.PromptPrefix)
	require.Equal(t, "", cfg.Theme.InfoPrefix)
	require.Equal(t, "x ", cfg.Theme.ErrorPrefix)

	// viper lower-cases map keys
	require.Equal(t, "Advanced", cfg.Prefill["accounttype"])
	require.Equal(t, "8443", cfg.Prefill["port"])
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Output.Format)
	require.Empty(t, cfg.Output.Path)
	require.True(t, cfg.Form.ScrubHidden)
	require.Equal(t, "! ", cfg.Theme.ErrorPrefix)
	require.Empty(t, cfg.Prefill)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ACCOUNTFORM_LOG_LEVEL", "warn")
	t.Setenv("ACCOUNTFORM_OUTPUT_FORMAT", "pretty")

	cfg, err := LoadConfig("", filepath.Join("testdata"))
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "pretty", cfg.Output.Format)
}

func TestLoadConfigExplicitFileMustExist(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
}
