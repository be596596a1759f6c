package config

import "github.com/ByLCY/cryptogram/layout"

const (
	// DefaultPath 是未指定 --config 时查找的配置文件。
	DefaultPath = "booklet.toml"

	defaultLayout    = "four_up"
	defaultOutputDir = "."
	defaultLogLevel  = "info"
	defaultLogFormat = "auto"
)

var defaultFormats = []string{FormatSVG, FormatPDF, FormatHTML}

// Default 返回内置默认配置。
func Default() Config {
	labels := layout.DefaultLabels()
	return Config{
		Layout:    defaultLayout,
		OutputDir: defaultOutputDir,
		Formats:   append([]string(nil), defaultFormats...),
		Labels: Labels{
			Front:  labels.Front,
			Back:   labels.Back,
			Answer: labels.Answer,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
