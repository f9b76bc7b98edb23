package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/goliatone/go-priceform/pkg/model"
	"github.com/goliatone/go-priceform/pkg/schema"
)

// EnvPrefix namespaces environment overrides; nesting uses "__", so
// PRICEFORM_SERVER__ADDR sets server.addr.
const EnvPrefix = "PRICEFORM_"

type Config struct {
	Endpoint string        `json:"endpoint"`
	Schema   SchemaConfig  `json:"schema"`
	Server   ServerConfig  `json:"server"`
	Render   RenderConfig  `json:"render"`
	Log      LogConfig     `json:"log"`
	Metrics  MetricsConfig `json:"metrics"`
	Client   ClientConfig  `json:"client"`
}

// SchemaConfig picks the field schema. OpenAPI wins over File, File over
// Preset.
type SchemaConfig struct {
	Preset    string `json:"preset"`
	File      string `json:"file"`
	OpenAPI   string `json:"openapi"`
	Operation string `json:"operation"`
}

type ServerConfig struct {
	Addr     string `json:"addr"`
	BasePath string `json:"base_path"`
}

type RenderConfig struct {
	Locale string `json:"locale"`
	Pretty bool   `json:"pretty"`
}

type LogConfig struct {
	Level string `json:"level"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

type ClientConfig struct {
	// TimeoutSeconds bounds each prediction request. Zero means no timeout.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// Timeout converts TimeoutSeconds to a duration.
func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Schema:  SchemaConfig{Preset: model.PresetHousingArea},
		Server:  ServerConfig{Addr: ":8080", BasePath: "/"},
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// Load reads an optional YAML or JSON file, applies PRICEFORM_ environment
// overrides on top, then fills defaults and validates. An empty path skips the
// file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("config: unsupported format: %s", filepath.Ext(path))
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills blanks left by partial files or empty env values.
func (c *Config) SetDefaults() {
	def := Default()
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.Schema.Preset == "" && c.Schema.File == "" && c.Schema.OpenAPI == "" {
		c.Schema.Preset = def.Schema.Preset
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Server.BasePath == "" {
		c.Server.BasePath = def.Server.BasePath
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if c.Schema.OpenAPI == "" && c.Schema.File == "" {
		if _, err := model.Preset(c.Schema.Preset); err != nil {
			return fmt.Errorf("config: schema.preset: %w", err)
		}
	}
	if c.Client.TimeoutSeconds < 0 {
		return fmt.Errorf("config: client.timeout_seconds must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("config: metrics.path must start with /")
	}
	return nil
}

// SchemaSource translates the schema settings into a schema.Source.
func (c Config) SchemaSource() schema.Source {
	return schema.Source{
		Preset:    c.Schema.Preset,
		File:      c.Schema.File,
		OpenAPI:   c.Schema.OpenAPI,
		Operation: c.Schema.Operation,
		Endpoint:  c.Endpoint,
	}
}
