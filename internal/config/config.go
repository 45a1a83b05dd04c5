// Package config provides configuration loading and validation for the CLI.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/lean-style/internal/validation"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by FromEnv
const (
	EnvRoot       = "LEAN_STYLE_ROOT"
	EnvExceptions = "LEAN_STYLE_EXCEPTIONS"
)

// DefaultExceptionsPath is the baseline location relative to the repository root.
var DefaultExceptionsPath = filepath.Join("scripts", "style-exceptions.txt")

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Root       string `json:"root,omitempty" yaml:"root,omitempty" validate:"required"`             // Repository root
	Exceptions string `json:"exceptions,omitempty" yaml:"exceptions,omitempty" validate:"required"` // Baseline file, relative to root unless absolute
	JSONOut    string `json:"json_out,omitempty" yaml:"json_out,omitempty"`                         // Optional JSON report path

	// Checks
	ReservedNotationFile string `json:"reserved_notation_file,omitempty" yaml:"reserved_notation_file,omitempty" validate:"required"` // Root-relative file allowed to reserve notation
	LicenseKeyword       string `json:"license_keyword,omitempty" yaml:"license_keyword,omitempty" validate:"required,excludesall= "` // License required in copyright headers

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print a summary and progress to stderr
}

// Defaults returns the configuration matching the mathlib layout.
func Defaults() Config {
	return Config{
		Root:                 ".",
		Exceptions:           DefaultExceptionsPath,
		ReservedNotationFile: validation.DefaultReservedNotationFile,
		LicenseKeyword:       validation.DefaultLicenseKeyword,
	}
}

// FromEnv returns a Config holding the values set through environment variables.
func FromEnv() Config {
	return Config{
		Root:       os.Getenv(EnvRoot),
		Exceptions: os.Getenv(EnvExceptions),
	}
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the extension
// is .yaml or .yml. Unknown YAML keys are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// It should be called after merging with defaults, when every required field is set.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if info, err := os.Stat(c.Root); err != nil {
		return fmt.Errorf("config error: root not found: %s", c.Root)
	} else if !info.IsDir() {
		return fmt.Errorf("config error: root is not a directory: %s", c.Root)
	}

	if filepath.IsAbs(c.ReservedNotationFile) {
		return fmt.Errorf("config error: 'reserved_notation_file' must be relative to the root")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to layer flags over the config file over the environment over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Root == "" {
		result.Root = defaults.Root
	}
	if result.Exceptions == "" {
		result.Exceptions = defaults.Exceptions
	}
	if result.JSONOut == "" {
		result.JSONOut = defaults.JSONOut
	}
	if result.ReservedNotationFile == "" {
		result.ReservedNotationFile = defaults.ReservedNotationFile
	}
	if result.LicenseKeyword == "" {
		result.LicenseKeyword = defaults.LicenseKeyword
	}

	// Bool fields: cannot distinguish unset from false, so either source enables them
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// ExceptionsPath returns the baseline path, resolved against the root when relative.
func (c *Config) ExceptionsPath() string {
	if filepath.IsAbs(c.Exceptions) {
		return c.Exceptions
	}
	return filepath.Join(c.Root, c.Exceptions)
}

// Options returns the check options described by the configuration.
func (c *Config) Options() validation.Options {
	return validation.Options{
		Root:                 c.Root,
		ReservedNotationFile: c.ReservedNotationFile,
		LicenseKeyword:       c.LicenseKeyword,
	}
}
