package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Face 标识一个内置字体文件。
type Face struct {
	Family string
	Bold   bool
	Italic bool
	Data   []byte
}

var builtin = []Face{
	{Family: "Go Mono", Data: gomono.TTF},
	{Family: "Go Mono", Bold: true, Data: gomonobold.TTF},
	{Family: "Go", Data: goregular.TTF},
	{Family: "Go", Bold: true, Data: gobold.TTF},
	{Family: "Go", Italic: true, Data: goitalic.TTF},
}

// aliases 将版式中出现的字体名映射到内置字体。
// 谜题正文按定宽格子估算宽度，所以衬线/等宽类字体都落到 Go Mono。
var aliases = map[string]string{
	"urw bookman": "Go Mono",
	"bookman":     "Go Mono",
	"monospace":   "Go Mono",
	"courier":     "Go Mono",
	"go mono":     "Go Mono",
	"serif":       "Go",
	"sans-serif":  "Go",
	"go":          "Go",
}

// Default 是找不到匹配字体时使用的字体族。
const Default = "Go Mono"

// Resolve 将样式中的字体族列表解析为内置字体族名，依次尝试，均失败时返回 Default。
func Resolve(families ...string) string {
	for _, f := range families {
		if name, ok := aliases[strings.ToLower(strings.TrimSpace(f))]; ok {
			return name
		}
	}
	return Default
}

// Load 返回内置字体的字节数据。family 可以是别名，如 "URW Bookman"。
func Load(family string, bold, italic bool) ([]byte, error) {
	name := Resolve(family)
	var fallback []byte
	for _, f := range builtin {
		if f.Family != name {
			continue
		}
		if f.Bold == bold && f.Italic == italic {
			return f.Data, nil
		}
		if !f.Bold && !f.Italic {
			fallback = f.Data
		}
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, fmt.Errorf("读取内置字体 %s 失败", family)
}
