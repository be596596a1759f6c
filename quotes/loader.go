// Package quotes 读取 YAML 引文文件。
package quotes

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load 从 YAML 序列中读取引文，丢弃空白条目，保持原有顺序。
func Load(r io.Reader) ([]string, error) {
	var items []string
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("解析引文 YAML 失败: %w", err)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if OnlyWhitespace(item) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// LoadFile 打开并读取指定路径的引文文件。
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开引文文件 %s: %w", path, err)
	}
	defer file.Close()
	return Load(file)
}

// OnlyWhitespace 判断文本的每一行是否都只含空白。
func OnlyWhitespace(text string) bool {
	return strings.TrimSpace(text) == ""
}

// BaseName 返回去掉目录与 .yml/.yaml 扩展名的文件名，用作输出文件前缀。
func BaseName(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".yml", ".yaml"} {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}
