// =============================================================================
// Cart CSV Parser - Configuration Module
// =============================================================================
//
// This module loads the application configuration for the CLI. The core parse
// pipeline takes no configuration at all (the cart schema is fixed); what is
// configured here is the tooling around it: where batch mode looks for input
// files, where receipts are written, archival, and logging.
//
// CONFIGURATION FILE (config.yaml):
//   input_dir:         ./input
//   output_dir:        ./output
//   archive_dir:       ./archive
//   archive_on_parse:  true
//   log_level:         info
//   receipt:
//     sheet_name:  Receipt
//     name_format: "receipt_{timestamp}_{uuid}.xlsx"
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputDir is the directory batch mode scans for cart CSV files.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where XLSX receipts are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory successfully parsed cart files are moved
	// to in batch mode.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveOnParse controls whether batch mode archives input files after
	// a successful parse.
	// Default: true
	ArchiveOnParse *bool `yaml:"archive_on_parse"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Receipt configures the XLSX receipt export.
	Receipt ReceiptConfig `yaml:"receipt"`
}

// ReceiptConfig configures the XLSX receipt export.
type ReceiptConfig struct {
	// SheetName is the name of the worksheet the receipt is written to.
	// Default: "Receipt"
	SheetName string `yaml:"sheet_name"`

	// NameFormat is the format for generated receipt file names.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {original}  - Original cart file name (without extension)
	// Default: "receipt_{timestamp}_{uuid}.xlsx"
	NameFormat string `yaml:"name_format"`
}

// ArchiveEnabled reports whether batch mode should archive parsed files.
func (c *Config) ArchiveEnabled() bool {
	return c.ArchiveOnParse == nil || *c.ArchiveOnParse
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file and applies defaults.
// A missing file is not an error: the defaults are returned, so the CLI works
// without any configuration at all.
func Load(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// No config file; run entirely on defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.ArchiveDir == "" {
		config.ArchiveDir = "./archive"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Receipt.SheetName == "" {
		config.Receipt.SheetName = "Receipt"
	}
	if config.Receipt.NameFormat == "" {
		config.Receipt.NameFormat = "receipt_{timestamp}_{uuid}.xlsx"
	}
}

// validate validates the loaded configuration.
func validate(config *Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	return nil
}
