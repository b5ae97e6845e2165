package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// The package directory has no configs/ folder, so only defaults() applies.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "asaas-sandbox", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "sandbox", cfg.Asaas.Environment)
	assert.Empty(t, cfg.Asaas.APIKey)
	assert.Equal(t, DefaultTimeout, cfg.Asaas.Timeout)
	assert.Equal(t, "go-asaas", cfg.Asaas.UserAgent)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("ASAAS_API_KEY", "$aact_env")
	t.Setenv("ASAAS_ENVIRONMENT", "production")
	t.Setenv("ASAAS_TIMEOUT", "5s")
	t.Setenv("ASAAS_LOG__LEVEL", "trace")
	t.Setenv("ASAAS_LOG__FILE__MAX_SIZE", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "$aact_env", cfg.Asaas.APIKey)
	assert.Equal(t, "production", cfg.Asaas.Environment)
	assert.Equal(t, 5*time.Second, cfg.Asaas.Timeout)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Log.File.MaxSizeMB)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ASAAS_API_KEY", "asaas.api_key"},
		{"ASAAS_USER_AGENT", "asaas.user_agent"},
		{"ASAAS_LOG__FORMAT", "log.format"},
		{"ASAAS_TELEMETRY__SAMPLING_RATE", "telemetry.sampling_rate"},
		{"ASAAS_LOG__FILE__MAX_BACKUPS", "log.file.max_backups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnvKey(tt.name))
		})
	}
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "asaas-sandbox", cfg.App.Name)
}

func TestLoadFrom_ProfileOverridesBase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), `
asaas:
  environment: sandbox
  timeout: 10s
log:
  format: text
`)
	writeFile(t, filepath.Join(dir, "production.yaml"), `
asaas:
  environment: production
`)

	cfg, err := LoadFrom(dir, "production")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Asaas.Environment)
	assert.Equal(t, 10*time.Second, cfg.Asaas.Timeout)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFrom_EnvBeatsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "asaas:\n  api_key: from-file\n")
	t.Setenv("ASAAS_API_KEY", "from-env")

	cfg, err := LoadFrom(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Asaas.APIKey)
}

func TestLoadFrom_BrokenYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "asaas: [unterminated\n")

	_, err := LoadFrom(dir, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("ASAAS_TELEMETRY__ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/asaas.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestLoad_TelemetryDefaults tests that telemetry and metrics defaults are set correctly.
func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "asaas-sandbox", cfg.Telemetry.ServiceName)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRate)

	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, DefaultMetricsAddr, cfg.Metrics.Addr)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

// TestDefaults tests that the defaults map contains expected values.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "asaas-sandbox", d["app.name"])
	assert.Equal(t, "sandbox", d["asaas.environment"])
	assert.Equal(t, "30s", d["asaas.timeout"])
	assert.Equal(t, "info", d["log.level"])
	assert.Equal(t, "json", d["log.format"])
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
