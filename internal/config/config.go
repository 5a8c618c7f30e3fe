// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"shipda-tariff/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Reference contains reference-data settings
	Reference ReferenceConfig `json:"reference"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Quotes contains quote storage configuration
	Quotes QuotesConfig `json:"quotes"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ReferenceConfig contains reference-data settings
type ReferenceConfig struct {
	// Port is the reference port auto-pricing is gated on
	Port string `json:"port"`

	// Terminal is the reference terminal auto-pricing is gated on
	Terminal string `json:"terminal"`

	// DirectoryPath is the path to the port directory JSON document
	DirectoryPath string `json:"directory_path"`

	// DirectoryURL optionally fetches the directory over HTTP instead
	DirectoryURL string `json:"directory_url,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowHints renders per-field auto-fill hint text
	ShowHints bool `json:"show_hints"`

	// Currency is the currency code tariff tables are expressed in
	Currency string `json:"currency"`
}

// QuotesConfig contains quote storage settings
type QuotesConfig struct {
	// Directory is where saved quotes are written
	Directory string `json:"directory"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	baseDir := filepath.Join(homeDir, ".shipda-tariff")

	return &Config{
		Version: "1.0",
		Reference: ReferenceConfig{
			Port:          "Itaqui",
			Terminal:      "Itaqui",
			DirectoryPath: filepath.Join(baseDir, "port-directory.json"),
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowHints:     true,
			Currency:      "BRL",
		},
		Quotes: QuotesConfig{
			Directory: filepath.Join(baseDir, "quotes"),
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
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
