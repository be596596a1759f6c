package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/ByLCY/cryptogram/layout"
)

// 输出格式。
const (
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatHTML = "html"
	FormatJSON = "json"
)

// Labels 是封面、封底与答案页上的文字，支持 ${title} 等占位符。
type Labels struct {
	Front  string `toml:"front"`
	Back   string `toml:"back"`
	Answer string `toml:"answer"`
	Blank  string `toml:"blank"`
}

// Logging 控制日志输出。
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config 汇总一次生成所需的全部设置。
type Config struct {
	Layout    string   `toml:"layout"`
	Seed      *uint64  `toml:"seed"` // nil 表示每次运行使用随机种子
	OutputDir string   `toml:"output_dir"`
	Formats   []string `toml:"formats"`
	Title     string   `toml:"title"`
	AnswerURL string   `toml:"answer_url"`
	Labels    Labels   `toml:"labels"`
	Logging   Logging  `toml:"logging"`
}

// Load 读取并校验配置文件。path 为空时尝试 DefaultPath，不存在则只用默认值；
// 显式指定但不存在的文件视为错误。返回值 bool 表示是否读到了文件。
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	exists := false
	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, false, fmt.Errorf("parse config %s: %w", path, err)
		}
		exists = true
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, false, fmt.Errorf("open config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, exists, err
	}
	return &cfg, exists, nil
}

// Kind 返回配置的版式。
func (c *Config) Kind() (layout.Kind, error) {
	return layout.ParseKind(c.Layout)
}

// HasFormat 判断是否需要输出给定格式。
func (c *Config) HasFormat(format string) bool {
	return slices.Contains(c.Formats, format)
}

// BuildLabels 转换为排版使用的页面文字。
func (c *Config) BuildLabels() layout.Labels {
	return layout.Labels{
		Front:  c.Labels.Front,
		Back:   c.Labels.Back,
		Answer: c.Labels.Answer,
		Blank:  c.Labels.Blank,
	}
}
