// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"fundraiser/internal/errors"
	"fundraiser/internal/logging"
)

// DefaultDoneKeyword ends an expense list when typed as an item name.
const DefaultDoneKeyword = "xxx"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Calculator contains prompting behaviour
	Calculator CalculatorConfig `json:"calculator"`

	// Report contains report file settings
	Report ReportConfig `json:"report"`

	// Output contains terminal output settings
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CalculatorConfig contains prompting behaviour
type CalculatorConfig struct {
	// DoneKeyword ends an expense list
	DoneKeyword string `json:"done_keyword"`

	// SkipInstructions suppresses the instructions question
	SkipInstructions bool `json:"skip_instructions"`
}

// ReportConfig contains report file settings
type ReportConfig struct {
	// Enabled writes the report file after a run
	Enabled bool `json:"enabled"`

	// Directory is where report files are written
	Directory string `json:"directory"`
}

// OutputConfig contains terminal output settings
type OutputConfig struct {
	// NoColor disables colored output
	NoColor bool `json:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Calculator: CalculatorConfig{
			DoneKeyword:      DefaultDoneKeyword,
			SkipInstructions: false,
		},
		Report: ReportConfig{
			Enabled:   true,
			Directory: ".",
		},
		Output: OutputConfig{
			NoColor: false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a JSON or HCL file. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config file", err)
	}

	config := Default()
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		if err := decodeHCL(path, data, config); err != nil {
			return nil, err
		}
	} else if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("failed to parse config file", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that would make the calculator unusable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Calculator.DoneKeyword) == "" {
		return errors.Config("calculator.done_keyword must not be blank", nil)
	}
	if strings.HasPrefix(c.Calculator.DoneKeyword, `\`) {
		return errors.Config(`calculator.done_keyword must not start with "\"`, nil)
	}
	if c.Report.Enabled && c.Report.Directory == "" {
		return errors.Config("report.directory must be set when reports are enabled", nil)
	}
	return c.Logging.Validate()
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
