package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeConversion()
	c.normalizeTools()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ToolsDir) == "" {
		c.Paths.ToolsDir = defaultToolsDir
	}
	if value, ok := os.LookupEnv("BIOCONVERT_TOOLS_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.ToolsDir = strings.TrimSpace(value)
	}
	if c.Paths.ToolsDir, err = expandPath(c.Paths.ToolsDir); err != nil {
		return fmt.Errorf("paths.tools_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeConversion() {
	c.Conversion.DefaultMethod = strings.ToLower(strings.TrimSpace(c.Conversion.DefaultMethod))
	if c.Conversion.DefaultMethod == "" {
		c.Conversion.DefaultMethod = defaultMethod
	}
	c.Conversion.Alphabet = strings.ToLower(strings.TrimSpace(c.Conversion.Alphabet))
}

func (c *Config) normalizeTools() {
	c.Tools.SquizzBinary = strings.TrimSpace(c.Tools.SquizzBinary)
	if value, ok := os.LookupEnv("BIOCONVERT_SQUIZZ"); ok && strings.TrimSpace(value) != "" {
		c.Tools.SquizzBinary = strings.TrimSpace(value)
	}
	if c.Tools.SquizzBinary == "" {
		c.Tools.SquizzBinary = defaultSquizzBinary
	}
	c.Tools.GoalignBinary = strings.TrimSpace(c.Tools.GoalignBinary)
	if value, ok := os.LookupEnv("BIOCONVERT_GOALIGN"); ok && strings.TrimSpace(value) != "" {
		c.Tools.GoalignBinary = strings.TrimSpace(value)
	}
	if c.Tools.GoalignBinary == "" {
		c.Tools.GoalignBinary = defaultGoalignBinary
	}
	install := make([]string, 0, len(c.Tools.GoalignInstall))
	for _, arg := range c.Tools.GoalignInstall {
		if arg = strings.TrimSpace(arg); arg != "" {
			install = append(install, arg)
		}
	}
	c.Tools.GoalignInstall = install
	if c.Tools.InstallTimeout < 0 {
		c.Tools.InstallTimeout = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
