// Package config holds the run configuration and the injectable
// dependencies of the raw-mode session.
package config

import (
	"dominicbreuker/kiloraw/pkg/terminal"
	"fmt"
)

// Config holds the settings taken from the command line.
type Config struct {
	MinBytes           int
	TimeoutDeciseconds int
	Quit               string
	Verbose            bool
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		MinBytes:           terminal.DefaultMinBytes,
		TimeoutDeciseconds: terminal.DefaultTimeoutDeciseconds,
		Quit:               "q",
	}
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() []error {
	var errors []error

	if err := validateCC(c.MinBytes); err != nil {
		errors = append(errors, fmt.Errorf("'--min-bytes': %s", err))
	}

	if err := validateCC(c.TimeoutDeciseconds); err != nil {
		errors = append(errors, fmt.Errorf("'--timeout': %s", err))
	}

	if len(c.Quit) != 1 {
		errors = append(errors, fmt.Errorf("'--quit' must be a single byte, got %q", c.Quit))
	}

	return errors
}

// QuitByte returns the quit key. Call Validate first.
func (c *Config) QuitByte() byte {
	if c.Quit == "" {
		return 0
	}
	return c.Quit[0]
}

// Mode returns the raw terminal mode described by the configuration. Call Validate first.
func (c *Config) Mode() terminal.Mode {
	return terminal.RawMode(uint8(c.MinBytes), uint8(c.TimeoutDeciseconds))
}
