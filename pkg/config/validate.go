package config

import "fmt"

// ValidatableConfig is implemented by configuration values that can check themselves.
type ValidatableConfig interface {
	Validate() []error
}

// Validate collects the errors of all cfgs.
func Validate(cfgs ...ValidatableConfig) []error {
	var out []error

	for _, cfg := range cfgs {
		out = append(out, cfg.Validate()...)
	}

	return out
}

// validateCC checks a value destined for a termios control character slot.
func validateCC(v int) error {
	if v < 0 || v > 255 {
		return fmt.Errorf("%d not in [0, 255]", v)
	}

	return nil
}
