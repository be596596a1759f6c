package binding

import (
	"fmt"
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path.to.value} 替换为 data 中的值。
// 支持 ${path|默认值}：路径不存在或值为空串时使用默认值；
// 既无值也无默认值时保留原占位符。
func Interpolate(text string, data any) string {
	if !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		path, fallback, hasFallback := strings.Cut(groups[1], "|")
		path = strings.TrimSpace(path)
		if path != "" && data != nil {
			if val, ok := resolvePath(data, path); ok {
				if s := fmt.Sprint(val); s != "" || !hasFallback {
					return s
				}
			}
		}
		if hasFallback {
			return fallback
		}
		return match
	})
}

// resolvePath 沿 a.b.c 逐级查找嵌套的 map[string]any。
func resolvePath(data any, path string) (any, bool) {
	current := data
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = m[key]; !ok {
			return nil, false
		}
	}
	return current, true
}
