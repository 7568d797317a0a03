// Package config loads the sigwatch CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thruflo/sigwatch/internal/logging"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the base directory.
const FileName = ".sigwatch.yaml"

// Default values for Config.
const (
	DefaultTimeout  = 100 * time.Millisecond
	DefaultLogLevel = "warn"
)

// Environment variables that override the file.
const (
	EnvTimeout  = "SIGWATCH_TIMEOUT"
	EnvLogLevel = "SIGWATCH_LOG_LEVEL"
)

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads .sigwatch.yaml from basePath. A missing file yields the
// defaults. Environment overrides are applied after the file.
func LoadConfig(basePath string) (*Config, error) {
	return LoadConfigFile(filepath.Join(basePath, FileName), true)
}

// LoadConfigFile reads the config at path. When optional is set a missing
// file yields the defaults instead of an error.
func LoadConfigFile(path string, optional bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err) && optional:
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides cfg with SIGWATCH_* variables found through getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return ValidationError{Field: EnvTimeout, Message: err.Error()}
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Timeout <= 0 {
		return ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}
	return nil
}

// Level returns the parsed log level. It assumes cfg was validated.
func (c Config) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
