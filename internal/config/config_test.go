package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apfs-format.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(""))
	require.NoError(t, err)

	assert.True(t, cfg.StrictFlags)
	assert.False(t, cfg.EnforcePinExclusivity)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, logrus.WarnLevel, cfg.Level())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
strict_flags: false
enforce_pin_exclusivity: true
log_level: debug
output_format: json
`)

	cfg, err := Load(New(path))
	require.NoError(t, err)

	assert.False(t, cfg.StrictFlags)
	assert.True(t, cfg.EnforcePinExclusivity)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "output_format: json\n")
	t.Setenv("APFS_OUTPUT_FORMAT", "yaml")
	t.Setenv("APFS_STRICT_FLAGS", "false")

	cfg, err := Load(New(path))
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.False(t, cfg.StrictFlags)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "log_level: chatty\n"},
		{"bad output format", "output_format: xml\n"},
		{"malformed yaml", "strict_flags: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(New(writeConfig(t, tt.content)))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}
