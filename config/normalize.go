package config

import (
	"slices"
	"strings"
)

// Normalize 统一大小写、去除空白并去重输出格式；命令行覆盖配置后需再次调用。
func (c *Config) Normalize() {
	c.normalize()
}

func (c *Config) normalize() {
	c.Layout = strings.ToLower(strings.TrimSpace(c.Layout))
	if c.Layout == "" {
		c.Layout = defaultLayout
	}
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = defaultOutputDir
	}
	c.Title = strings.TrimSpace(c.Title)
	c.AnswerURL = strings.TrimSpace(c.AnswerURL)
	c.normalizeFormats()
	c.normalizeLogging()
}

func (c *Config) normalizeFormats() {
	formats := make([]string, 0, len(c.Formats))
	for _, f := range c.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(formats, f) {
			continue
		}
		formats = append(formats, f)
	}
	c.Formats = formats
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
