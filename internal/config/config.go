// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"iops-calculator/core/types"
	"iops-calculator/internal/errors"
	"iops-calculator/internal/logging"
)

// EnvPrefix prefixes every environment override (IOPSCALC_LOG_LEVEL, ...)
const EnvPrefix = "IOPSCALC"

// FileName is the default configuration file name in the home directory
const FileName = ".iops-calculator.yaml"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `yaml:"version"`

	// Catalog selects an alternate tier and storage catalog
	Catalog CatalogConfig `yaml:"catalog"`

	// Defaults is the configuration a new estimate starts from
	Defaults types.Configuration `yaml:"defaults"`

	// Output contains output configuration
	Output OutputConfig `yaml:"output"`

	// Server contains HTTP API configuration
	Server ServerConfig `yaml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `yaml:"logging"`
}

// CatalogConfig contains catalog settings
type CatalogConfig struct {
	// Path is an HCL catalog file; empty uses the built-in catalog
	Path string `yaml:"path"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `yaml:"default_format"`

	// ShowDetails shows the per-unit cost breakdown
	ShowDetails bool `yaml:"show_details"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `yaml:"addr"`

	// ShutdownTimeout bounds graceful shutdown, as a Go duration
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// envOverrides are read from IOPSCALC_* variables and win over the file
type envOverrides struct {
	CatalogPath  string `envconfig:"CATALOG_PATH"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
	OutputFormat string `envconfig:"OUTPUT_FORMAT"`
	ServerAddr   string `envconfig:"SERVER_ADDR"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:  "1.0",
		Defaults: types.DefaultConfiguration(),
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   false,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: "10s",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.iops-calculator.yaml
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(homeDir, FileName)
}

// Load loads configuration from a file and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Config("parse config "+path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.Config("read config "+path, err)
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overlays IOPSCALC_* environment variables onto the configuration
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return errors.Config("read environment", err)
	}

	if env.CatalogPath != "" {
		c.Catalog.Path = env.CatalogPath
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.OutputFormat != "" {
		c.Output.DefaultFormat = env.OutputFormat
	}
	if env.ServerAddr != "" {
		c.Server.Addr = env.ServerAddr
	}
	return nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Config("encode config", err)
	}
	return data, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("create config directory", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Config("write config "+path, err)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
