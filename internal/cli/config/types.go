// Package config provides configuration management for the sqlprobe CLI.
//
// Configuration is merged from defaults, an optional sqlprobe.yaml file,
// SQLPROBE_-prefixed environment variables, and command-line flags, in
// increasing order of precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string `koanf:"output"`
	Color        string `koanf:"color"`
	Verbose      bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=plain text
	DefaultColor  = "auto"
)
