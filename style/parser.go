// Package style 解析版式中的文本样式串，例如 "font-size:0.25;font-family:'URW Bookman'"。
package style

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/cryptogram/layout"
)

var (
	styleLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\.\d+|\d+)(?:in|mm|pt)?`},
		{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[:;,]`},
	})

	sheetParser = participle.MustBuild[Sheet](
		participle.Lexer(styleLexer),
		participle.Elide("Whitespace"),
	)
)

// Sheet 是样式串的语法树根：若干以分号分隔的声明。
type Sheet struct {
	Pos          lexer.Position `parser:"" json:"-"`
	Declarations []*Declaration `parser:"( @@ | ';' )*"`
}

// Declaration 是一条 "属性: 值[, 值...]" 声明。
type Declaration struct {
	Property string   `parser:"@Ident ':'"`
	Values   []*Value `parser:"@@ ( ',' @@ )*"`
}

// Value 是声明中的单个值。
type Value struct {
	Number *string        `parser:"  @Number"`
	Color  *string        `parser:"| @Color"`
	String *QuotedLiteral `parser:"| @String"`
	Ident  *string        `parser:"| @Ident"`
}

func (v *Value) text() string {
	switch {
	case v.Number != nil:
		return *v.Number
	case v.Color != nil:
		return *v.Color
	case v.String != nil:
		return string(*v.String)
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// QuotedLiteral 去掉单引号或双引号。
type QuotedLiteral string

// Capture implements participle.Capture.
func (s *QuotedLiteral) Capture(values []string) error {
	if len(values) == 0 || len(values[0]) < 2 {
		return fmt.Errorf("quoted literal capture requires value")
	}
	*s = QuotedLiteral(values[0][1 : len(values[0])-1])
	return nil
}

// Style 是解析后的文本样式。
type Style struct {
	FontSize   layout.Length     `json:"fontSize"`
	FontFamily []string          `json:"fontFamily"`
	FontWeight string            `json:"fontWeight,omitempty"`
	FontStyle  string            `json:"fontStyle,omitempty"`
	Fill       *layout.Color     `json:"fill,omitempty"`
	Props      map[string]string `json:"props"`
}

// Family 返回首选字体族名。
func (s Style) Family() string {
	if len(s.FontFamily) == 0 {
		return ""
	}
	return s.FontFamily[0]
}

// Parse 解析样式串，未知属性保留在 Props 中。
func Parse(input string) (Style, error) {
	sheet, err := sheetParser.ParseString("", input)
	if err != nil {
		return Style{}, fmt.Errorf("解析样式 %q 失败: %w", input, err)
	}
	st := Style{Props: map[string]string{}}
	for _, decl := range sheet.Declarations {
		prop := strings.ToLower(decl.Property)
		values := make([]string, 0, len(decl.Values))
		for _, v := range decl.Values {
			values = append(values, v.text())
		}
		st.Props[prop] = strings.Join(values, ", ")
		switch prop {
		case "font-size":
			size, ok := layout.ParseLength(values[0])
			if !ok {
				return Style{}, fmt.Errorf("样式 %q 中的 font-size 无效: %s", input, values[0])
			}
			st.FontSize = size
		case "font-family":
			st.FontFamily = values
		case "font-weight":
			st.FontWeight = strings.ToLower(values[0])
		case "font-style":
			st.FontStyle = strings.ToLower(values[0])
		case "fill", "color":
			c, err := parseColor(values[0])
			if err != nil {
				return Style{}, fmt.Errorf("样式 %q: %w", input, err)
			}
			st.Fill = &c
		}
	}
	return st, nil
}

var (
	cacheMu sync.Mutex
	cache   = map[string]Style{}
)

// Cached 与 Parse 相同，但对同一样式串只解析一次。
func Cached(input string) (Style, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if st, ok := cache[input]; ok {
		return st, nil
	}
	st, err := Parse(input)
	if err != nil {
		return Style{}, err
	}
	cache[input] = st
	return st, nil
}

func parseColor(value string) (layout.Color, error) {
	switch strings.ToLower(value) {
	case "black":
		return layout.Color{}, nil
	case "red":
		return layout.Red, nil
	}
	hex := strings.TrimPrefix(value, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return layout.Color{}, fmt.Errorf("颜色格式错误: %s", value)
	}
	var c layout.Color
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return layout.Color{}, fmt.Errorf("颜色格式错误: %s", value)
	}
	return c, nil
}
