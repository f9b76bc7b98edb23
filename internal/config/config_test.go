package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "housing-area", cfg.Schema.Preset)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "/", cfg.Server.BasePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, time.Duration(0), cfg.Client.Timeout())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "priceform.yaml", `endpoint: http://localhost:5000/predict
schema:
  preset: housing-structure
server:
  addr: ":9090"
  base_path: /tools
render:
  locale: en-US
  pretty: true
log:
  level: debug
metrics:
  enabled: false
client:
  timeout_seconds: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"endpoint", cfg.Endpoint, "http://localhost:5000/predict"},
		{"preset", cfg.Schema.Preset, "housing-structure"},
		{"addr", cfg.Server.Addr, ":9090"},
		{"base_path", cfg.Server.BasePath, "/tools"},
		{"locale", cfg.Render.Locale, "en-US"},
		{"pretty", cfg.Render.Pretty, true},
		{"level", cfg.Log.Level, "debug"},
		{"metrics", cfg.Metrics.Enabled, false},
		{"metrics.path", cfg.Metrics.Path, "/metrics"},
		{"timeout", cfg.Client.Timeout(), 5 * time.Second},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "priceform.json", `{"schema":{"file":"housing.yaml"},"server":{"addr":":7000"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "housing.yaml", cfg.Schema.File)
	assert.Equal(t, "housing-area", cfg.Schema.Preset, "defaults persist under file overrides")
	assert.Equal(t, ":7000", cfg.Server.Addr)

	src := cfg.SchemaSource()
	assert.Equal(t, "housing.yaml", src.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "priceform.yaml", "server:\n  addr: \":9090\"\n")
	t.Setenv("PRICEFORM_SERVER__ADDR", ":6000")
	t.Setenv("PRICEFORM_SERVER__BASE_PATH", "/predictor")
	t.Setenv("PRICEFORM_ENDPOINT", "http://model.internal/predict")
	t.Setenv("PRICEFORM_CLIENT__TIMEOUT_SECONDS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6000", cfg.Server.Addr)
	assert.Equal(t, "/predictor", cfg.Server.BasePath)
	assert.Equal(t, "http://model.internal/predict", cfg.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout())
	assert.Equal(t, "http://model.internal/predict", cfg.SchemaSource().Endpoint)
}

func TestLoad_NestedEnvWithoutFile(t *testing.T) {
	t.Setenv("PRICEFORM_SERVER__ADDR", ":6000")
	t.Setenv("PRICEFORM_SCHEMA__PRESET", "housing-structure")
	t.Setenv("PRICEFORM_CLIENT__TIMEOUT_SECONDS", "3")
	t.Setenv("PRICEFORM_METRICS__PATH", "/internal/metrics")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":6000", cfg.Server.Addr)
	assert.Equal(t, "housing-structure", cfg.Schema.Preset)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout())
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, "housing-structure", cfg.SchemaSource().Preset)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "priceform.toml", "x = 1"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "schema:\n  preset: nope\n"))
	assert.ErrorContains(t, err, "schema.preset")

	_, err = Load(writeFile(t, "bad.yaml", "log:\n  level: loud\n"))
	assert.ErrorContains(t, err, "log.level")

	_, err = Load(writeFile(t, "bad.yaml", "client:\n  timeout_seconds: -1\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "metrics:\n  path: metrics\n"))
	assert.Error(t, err)
}
