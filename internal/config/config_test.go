package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mongopatch.yaml")
	err := os.WriteFile(path, []byte(`
input: yaml
output: canonical
strict_add: true
copy_values: false
indent: true
color: never
log:
  level: debug
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Input:      InputYAML,
		Output:     OutputCanonical,
		StrictAdd:  true,
		CopyValues: false,
		Indent:     true,
		LogLevel:   "debug",
		Color:      ColorNever,
	}, cfg)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MONGOPATCH_OUTPUT", "relaxed")
	t.Setenv("MONGOPATCH_STRICT_ADD", "true")
	t.Setenv("MONGOPATCH_LOG_LEVEL", "INFO")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, OutputRelaxed, cfg.Output)
	assert.True(t, cfg.StrictAdd)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mongopatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: canonical\n"), 0o600))
	t.Setenv("MONGOPATCH_OUTPUT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("MONGOPATCH_OUTPUT", "xml")
	_, err = Load("")
	assert.ErrorContains(t, err, "output must be one of")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"Valid", func(*Config) {}, ""},
		{"Bad input", func(c *Config) { c.Input = "toml" }, "input must be one of"},
		{"Bad output", func(c *Config) { c.Output = "xml" }, "output must be one of"},
		{"Bad log level", func(c *Config) { c.LogLevel = "trace" }, "log level must be one of"},
		{"Bad color", func(c *Config) { c.Color = "sometimes" }, "color must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
