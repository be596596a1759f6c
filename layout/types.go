package layout

// 该文件定义排版结果，供排版计算、渲染与调试 JSON 共用。
// 所有坐标与尺寸均以英寸为单位，与版式配置一致。

// Result 保存整本小册子的排版结果：每个元素对应一张纸的一面。
type Result struct {
	Name    string       `json:"name"`
	Profile string       `json:"profile"`
	Index   BookletIndex `json:"index"`
	Pages   []Page       `json:"pages"`
	Meta    DocumentMeta `json:"meta"`
}

// Side 表示纸张的正面或背面。
type Side string

const (
	Front Side = "f"
	Back  Side = "b"
)

// Page 是一张纸某一面的完整绘制描述。
type Page struct {
	Name   string       `json:"name"` // {base}-{sheet}-{f|b}
	Sheet  int          `json:"sheet"`
	Side   Side         `json:"side"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Slots  []PlacedSlot `json:"slots"`
	Texts  []TextBox    `json:"texts"`
	Lines  []Line       `json:"lines,omitempty"`
	Codes  []CodeBox    `json:"codes,omitempty"`
}

// PlacedSlot 记录某个物理位置上放置的逻辑页。
type PlacedSlot struct {
	Position string `json:"position"`
	Index    int    `json:"index"`
	Slot     Slot   `json:"slot"`
}

// TextBox 表示一段已经定位的单行文本。
type TextBox struct {
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Style   string  `json:"style"`             // 如 "font-size:0.25;font-family:'URW Bookman'"
	Align   string  `json:"align,omitempty"`   // left（默认）/center
	Rotate  float64 `json:"rotate,omitempty"`  // 绕 (X, Y) 旋转的角度
	Central bool    `json:"central,omitempty"` // 基线居中，对应 dominant-baseline: central
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Red 是裁切引导线的颜色。
var Red = Color{R: 255}

// Line 表示一条线段。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"` // <=0 时由渲染器给默认值
}

// CodeBox 描述一个二维码：内容与左上角位置、边长。
type CodeBox struct {
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
