// =============================================================================
// KLV Inspector - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration. The core
// engine (internal/klv) takes no configuration at all; everything here
// concerns the CLI consumer: directories for batch processing, output
// naming, and default rendering options.
//
// CONFIGURATION FILE:
//   A single YAML file (config.yaml by default). Missing options fall back
//   to documented defaults, so an absent file is not an error for commands
//   that do not touch the filesystem.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for KLV buffer files by the batch
	// command.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where exported files are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where input files are moved after
	// successful batch processing. Failed files stay where they are.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ReportsDir is the directory where batch summary reports are written.
	// Default: "./reports"
	ReportsDir string `yaml:"reports_dir"`

	// =========================================================================
	// EXPORT SETTINGS
	// =========================================================================

	// ExportFormat is the default rendering format for the parse and export
	// commands. Valid values: "structured", "tabular", "fixed-width", "xlsx".
	// Default: "structured"
	ExportFormat string `yaml:"export_format"`

	// FileNameFormat defines the name of exported files.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {stem}      - Input file name without extension
	// Default: "{stem}_{uuid}"
	FileNameFormat string `yaml:"file_name_format"`

	// =========================================================================
	// BATCH SETTINGS
	// =========================================================================

	// InputPattern is the glob pattern matched against input file names.
	// Default: "*.klv"
	InputPattern string `yaml:"input_pattern"`

	// MaxConcurrency is the number of files processed concurrently by the
	// batch command. Set to 1 for sequential processing.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError keeps the batch running when one file fails to
	// validate.
	// Default: true
	ContinueOnError bool `yaml:"continue_on_error"`

	// ArchiveOnSuccess moves processed input files into ArchiveDir.
	// Default: true
	ArchiveOnSuccess bool `yaml:"archive_on_success"`

	// HistorySize is the number of recent parse outcomes retained in the
	// in-memory history used for batch summaries.
	// Default: 100
	HistorySize int `yaml:"history_size"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults, and
// validates the result. A missing file yields the pure defaults.
func Load(configPath string) (*MainConfig, error) {
	var config MainConfig

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// No file: run on defaults.
		return Default(), nil
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file is present.
func Default() *MainConfig {
	config := MainConfig{
		ContinueOnError:  true,
		ArchiveOnSuccess: true,
	}
	applyDefaults(&config)
	return &config
}

// applyDefaults sets default values for any unset configuration options.
//
// ContinueOnError and ArchiveOnSuccess are plain booleans, so a file that
// omits them gets false; Default() is the only place that flips them on.
func applyDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.ArchiveDir == "" {
		config.ArchiveDir = "./archive"
	}
	if config.ReportsDir == "" {
		config.ReportsDir = "./reports"
	}
	if config.ExportFormat == "" {
		config.ExportFormat = "structured"
	}
	if config.FileNameFormat == "" {
		config.FileNameFormat = "{stem}_{uuid}"
	}
	if config.InputPattern == "" {
		config.InputPattern = "*.klv"
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}
	if config.HistorySize == 0 {
		config.HistorySize = 100
	}
}

// validate rejects configurations the pipeline cannot run with.
func validate(config *MainConfig) error {
	if config.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", config.MaxConcurrency)
	}

	if config.HistorySize < 1 {
		return fmt.Errorf("history_size must be at least 1, got %d", config.HistorySize)
	}

	switch config.ExportFormat {
	case "structured", "tabular", "fixed-width", "xlsx":
	default:
		return fmt.Errorf("unknown export_format %q", config.ExportFormat)
	}

	return nil
}
