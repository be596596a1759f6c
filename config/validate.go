package config

import (
	"errors"
	"fmt"
)

// Validate 确认配置可用。
func (c *Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := c.validateFormats(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFormats() error {
	if len(c.Formats) == 0 {
		return errors.New("formats: at least one output format is required")
	}
	for _, f := range c.Formats {
		switch f {
		case FormatSVG, FormatPDF, FormatHTML, FormatJSON:
		default:
			return fmt.Errorf("formats: unsupported value %q", f)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json", "auto":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
