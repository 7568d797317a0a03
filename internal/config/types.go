package config

import "time"

// Config represents the .sigwatch.yaml file read by the sigwatch CLI.
type Config struct {
	// Timeout is the matcher window, e.g. "100ms".
	Timeout time.Duration `yaml:"timeout"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}
