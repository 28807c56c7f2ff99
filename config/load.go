package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// document is the on-disk form of the config. Fields which are absent (or zero) keep
// their default values. Durations are written in time.ParseDuration form, e.g. "30s".
type document struct {
	Listen struct {
		Host string `yaml:"host" json:"host"`
		Port uint16 `yaml:"port" json:"port"`
	} `yaml:"listen" json:"listen"`
	NET struct {
		ReadBufferSize int    `yaml:"read_buffer_size" json:"read_buffer_size"`
		ReadTimeout    string `yaml:"read_timeout" json:"read_timeout"`
		MaxConns       int    `yaml:"max_conns" json:"max_conns"`
	} `yaml:"net" json:"net"`
	Static struct {
		Root        string `yaml:"root" json:"root"`
		DefaultPage string `yaml:"default_page" json:"default_page"`
	} `yaml:"static" json:"static"`
	Log struct {
		Level       string `yaml:"level" json:"level"`
		Development bool   `yaml:"development" json:"development"`
	} `yaml:"log" json:"log"`
}

// Load reads the file and overlays it on top of Default(). The format is chosen by the
// extension: .yaml and .yml for YAML, .json for JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse decodes the data of the given format (a file extension) on top of Default().
func Parse(data []byte, format string) (*Config, error) {
	var doc document

	switch strings.ToLower(format) {
	case ".yaml", ".yml":
		err := yaml.Unmarshal(data, &doc)
		if err != nil {
			return nil, fmt.Errorf("config: bad YAML: %w", err)
		}
	case ".json":
		err := json.Unmarshal(data, &doc)
		if err != nil {
			return nil, fmt.Errorf("config: bad JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}

	cfg := Default()
	if err := doc.apply(cfg); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

func (d *document) apply(cfg *Config) error {
	setIfNotZero(&cfg.Listen.Host, d.Listen.Host)
	setIfNotZero(&cfg.Listen.Port, d.Listen.Port)
	setIfNotZero(&cfg.NET.ReadBufferSize, d.NET.ReadBufferSize)
	setIfNotZero(&cfg.NET.MaxConns, d.NET.MaxConns)
	setIfNotZero(&cfg.Static.Root, d.Static.Root)
	setIfNotZero(&cfg.Static.DefaultPage, d.Static.DefaultPage)
	setIfNotZero(&cfg.Log.Level, d.Log.Level)
	setIfNotZero(&cfg.Log.Development, d.Log.Development)

	if len(d.NET.ReadTimeout) > 0 {
		timeout, err := time.ParseDuration(d.NET.ReadTimeout)
		if err != nil {
			return fmt.Errorf("config: net.read_timeout: %w", err)
		}

		cfg.NET.ReadTimeout = timeout
	}

	return nil
}

func setIfNotZero[T comparable](dst *T, value T) {
	var zero T
	if value != zero {
		*dst = value
	}
}
