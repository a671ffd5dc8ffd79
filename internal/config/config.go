package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultFormat = "cargo"

	// FormatCargo and FormatYAML are the accepted output format names.
	FormatCargo = "cargo"
	FormatYAML  = "yaml"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	// BuildOutputDir is the build output directory the settings-file path is
	// derived from. Required unless SettingsFile is set.
	BuildOutputDir string `yaml:"build_output_dir"`
	// SettingsFile, when set, names the settings file directly and bypasses
	// the derivation from BuildOutputDir.
	SettingsFile string `yaml:"settings_file"`
	// Format selects the plan rendering: cargo or yaml.
	Format string `yaml:"format"`
	// PreserveDuplicatePaths keeps the repeated in-tree search path the
	// original generator emitted instead of collapsing it.
	PreserveDuplicatePaths bool `yaml:"preserve_duplicate_paths"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	BuildOutputDir         string `yaml:"build_output_dir"`
	SettingsFile           string `yaml:"settings_file"`
	Format                 string `yaml:"format"`
	PreserveDuplicatePaths bool   `yaml:"preserve_duplicate_paths"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile             string
	BuildOutputDir         *string
	SettingsFile           *string
	Format                 *string
	PreserveDuplicatePaths *bool
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply environment variables (override YAML)
	applyEnvConfig(&cfg)

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Format: defaultFormat,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.BuildOutputDir != "" {
		cfg.BuildOutputDir = yamlCfg.BuildOutputDir
	}
	if yamlCfg.SettingsFile != "" {
		cfg.SettingsFile = yamlCfg.SettingsFile
	}
	if yamlCfg.Format != "" {
		cfg.Format = yamlCfg.Format
	}
	cfg.PreserveDuplicatePaths = yamlCfg.PreserveDuplicatePaths
}

// applyEnvConfig applies environment variable configuration. OUT_DIR is the
// location the invoking build tool exports for the build output directory.
func applyEnvConfig(cfg *Config) {
	if outDir := strings.TrimSpace(os.Getenv("OUT_DIR")); outDir != "" {
		cfg.BuildOutputDir = outDir
	}

	if settingsFile := strings.TrimSpace(os.Getenv("LINKPLAN_SETTINGS")); settingsFile != "" {
		cfg.SettingsFile = settingsFile
	}

	if format := strings.TrimSpace(os.Getenv("LINKPLAN_FORMAT")); format != "" {
		cfg.Format = format
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.BuildOutputDir != nil && *overrides.BuildOutputDir != "" {
		cfg.BuildOutputDir = *overrides.BuildOutputDir
	}

	if overrides.SettingsFile != nil && *overrides.SettingsFile != "" {
		cfg.SettingsFile = *overrides.SettingsFile
	}

	if overrides.Format != nil && *overrides.Format != "" {
		cfg.Format = *overrides.Format
	}

	if overrides.PreserveDuplicatePaths != nil {
		cfg.PreserveDuplicatePaths = *overrides.PreserveDuplicatePaths
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.BuildOutputDir == "" && cfg.SettingsFile == "" {
		return fmt.Errorf("a build output directory or an explicit settings file is required")
	}
	if cfg.Format != FormatCargo && cfg.Format != FormatYAML {
		return fmt.Errorf("unsupported output format %q (expected %s or %s)", cfg.Format, FormatCargo, FormatYAML)
	}
	return nil
}
