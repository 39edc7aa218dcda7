package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConversion(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateConversion() error {
	if !slices.Contains(Methods, c.Conversion.DefaultMethod) {
		return fmt.Errorf("conversion.default_method %q is not one of %s", c.Conversion.DefaultMethod, strings.Join(Methods, ", "))
	}
	if c.Conversion.Alphabet != "" && !slices.Contains(Alphabets, c.Conversion.Alphabet) {
		return fmt.Errorf("conversion.alphabet %q is not one of %s", c.Conversion.Alphabet, strings.Join(Alphabets, ", "))
	}
	return nil
}

func (c *Config) validateLogging() error {
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}
