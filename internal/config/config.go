// Package config handles configuration loading and validation for rubytype.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultTablePath is the code table read when none is configured.
const DefaultTablePath = "wb86.txt"

// Config is the operator configuration.
type Config struct {
	Table   TableConfig   `toml:"table" yaml:"table" json:"table"`
	Editor  EditorConfig  `toml:"editor" yaml:"editor" json:"editor"`
	Render  RenderConfig  `toml:"render" yaml:"render" json:"render"`
	Logging LoggingConfig `toml:"logging" yaml:"logging" json:"logging"`
}

// TableConfig locates the code table.
type TableConfig struct {
	Path string `toml:"path" yaml:"path" json:"path"`

	// Watch reloads the table when the file changes.
	Watch      bool `toml:"watch" yaml:"watch" json:"watch"`
	DebounceMs int  `toml:"debounce_ms" yaml:"debounce_ms" json:"debounce_ms"`
}

// EditorConfig configures the interactive editor.
type EditorConfig struct {
	Text        string `toml:"text" yaml:"text" json:"text"`
	LineNumbers bool   `toml:"line_numbers" yaml:"line_numbers" json:"line_numbers"`
	Wrap        bool   `toml:"wrap" yaml:"wrap" json:"wrap"`
	Gap         int    `toml:"gap" yaml:"gap" json:"gap"`
	Mouse       bool   `toml:"mouse" yaml:"mouse" json:"mouse"`
}

// RenderConfig configures non-interactive output.
type RenderConfig struct {
	Format      string `toml:"format" yaml:"format" json:"format"`
	Placeholder string `toml:"placeholder" yaml:"placeholder" json:"placeholder"`
	Width       int    `toml:"width" yaml:"width" json:"width"`
	Gap         int    `toml:"gap" yaml:"gap" json:"gap"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" json:"level"`
	Format string `toml:"format" yaml:"format" json:"format"`
	File   string `toml:"file" yaml:"file" json:"file"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{
			Path:       DefaultTablePath,
			DebounceMs: 100,
		},
		Editor: EditorConfig{
			Text:        "五笔编码查询工具",
			LineNumbers: true,
			Wrap:        true,
			Gap:         1,
		},
		Render: RenderConfig{
			Format:      "text",
			Placeholder: "---",
			Gap:         1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path, applies environment overrides and validates the result.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		cfg, err = loadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// loadConfigFromFile reads and parses a config file based on its extension.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if cfg.Table.Path != "" && !filepath.IsAbs(cfg.Table.Path) {
		cfg.Table.Path = filepath.Join(filepath.Dir(path), cfg.Table.Path)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables are prefixed with RUBYTYPE_ and use underscores.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("RUBYTYPE_TABLE"); v != "" {
		c.Table.Path = v
	}
	if v, ok := envBool("RUBYTYPE_WATCH"); ok {
		c.Table.Watch = v
	}
	if v := os.Getenv("RUBYTYPE_TEXT"); v != "" {
		c.Editor.Text = v
	}
	if v := os.Getenv("RUBYTYPE_PLACEHOLDER"); v != "" {
		c.Render.Placeholder = v
	}
	if v := os.Getenv("RUBYTYPE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RUBYTYPE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("RUBYTYPE_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
