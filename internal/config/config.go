// Package config provides configuration types and defaults for the opref CLI.
package config

import (
	"fmt"
	"slices"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all configuration options for opref.
type Config struct {
	// File is a registry file to use instead of the built-in table.
	File    string `mapstructure:"file"`
	Format  string `mapstructure:"format"`  // "text" (default), "json" or "yaml"
	Strict  bool   `mapstructure:"strict"`  // contains: fail when any key is not verified
	Verbose bool   `mapstructure:"verbose"` // development logging to stderr
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Format: FormatText,
	}
}

// Validate checks option values.
func (c Config) Validate() error {
	formats := []string{FormatText, FormatJSON, FormatYAML}
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("invalid format %q: want one of %v", c.Format, formats)
	}
	return nil
}
