package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/crystalroom/engine/core"
	"github.com/spaghettifunk/crystalroom/engine/room"
)

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

type ExportConfig struct {
	// Dir receives one PNG per builtin texture. Empty disables export.
	Dir string `toml:"dir" yaml:"dir"`
}

// Config is the on-disk configuration of the demo, in TOML or YAML.
type Config struct {
	Log      LogConfig          `toml:"log" yaml:"log"`
	Renderer string             `toml:"renderer" yaml:"renderer"`
	Scene    room.BuilderConfig `toml:"scene" yaml:"scene"`
	Export   ExportConfig       `toml:"export" yaml:"export"`
}

func DefaultConfig() *Config {
	return &Config{
		Log:      LogConfig{Level: "info"},
		Renderer: "headless",
		Scene:    room.DefaultBuilderConfig(),
	}
}

type configFormat int

const (
	formatTOML configFormat = iota
	formatYAML
)

func formatOf(path string) (configFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return formatTOML, fmt.Errorf("%w: unsupported config format %q", core.ErrInvalidConfig, filepath.Ext(path))
}

// LoadConfig reads path on top of the defaults. An empty path or a missing
// file yields the defaults; unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogWarn("config file %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	switch format {
	case formatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); errors.Is(err, io.EOF) {
			// An empty YAML document keeps the defaults.
			err = nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", core.ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := core.ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return c.Scene.Validate()
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() core.LogLevel {
	level, err := core.ParseLogLevel(c.Log.Level)
	if err != nil {
		return core.InfoLevel
	}
	return level
}

// WriteConfig stores cfg at path in the format matching its extension.
func WriteConfig(path string, cfg *Config) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case formatTOML:
		data, err = toml.Marshal(cfg)
	case formatYAML:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
