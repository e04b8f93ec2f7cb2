package config

import "fmt"

// validOutputs are the accepted output format values.
var validOutputs = map[string]bool{"auto": true, "text": true, "json": true}

// validColors are the accepted color mode values.
var validColors = map[string]bool{"auto": true, "always": true, "never": true}

// Validate checks if the configuration is valid.
func Validate(c *Config) error {
	if !validOutputs[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q (expected auto, text, or json)", c.OutputFormat)
	}
	if !validColors[c.Color] {
		return fmt.Errorf("invalid color mode %q (expected auto, always, or never)", c.Color)
	}
	return nil
}
