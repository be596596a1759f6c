package layout

import (
	"strings"
	"unicode/utf8"
)

// newlineMarker 替换原文中的换行，使强制换行在按空白分词后仍然保留。
const newlineMarker = "\uE000"

// answerRows 是每行密文占用的行高倍数：下方留出两行手写明文的空间。
const answerRows = 3

// Flow 描述定宽字符的贪心折行参数，单位为英寸。
type Flow struct {
	Limit      float64 // 每行最大宽度
	CharWidth  float64
	CharHeight float64
}

// FlowLine 是折行后的一行文本及其起点。
type FlowLine struct {
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Wrap 将 text 从 (x, y) 开始折行。
// 每个单词按 (字符数+1)*CharWidth 估算宽度；加入下一个单词会超出 Limit 时换行，
// 原文中的换行总会开启新行（连续换行产生空行）。每次换行 y 增加三倍字符高度。
func (f Flow) Wrap(text string, x, y float64) []FlowLine {
	txt := strings.ReplaceAll(text, "\n", " "+newlineMarker+" ")
	limit := x + f.Limit
	curX := x
	curY := y

	var lines []FlowLine
	var words []string
	emit := func() {
		lines = append(lines, FlowLine{Content: strings.Join(words, " "), X: x, Y: curY})
		words = words[:0]
		curX = x
		curY += f.CharHeight * answerRows
	}

	for _, word := range strings.Fields(txt) {
		if word == newlineMarker {
			emit()
			continue
		}
		advance := float64(utf8.RuneCountInString(word)+1) * f.CharWidth
		if len(words) > 0 && curX+advance > limit {
			emit()
		}
		words = append(words, word)
		curX += advance
	}
	if len(words) > 0 {
		lines = append(lines, FlowLine{Content: strings.Join(words, " "), X: x, Y: curY})
	}
	return lines
}

// Width 返回一行文本按定宽估算的宽度。
func (f Flow) Width(line string) float64 {
	return float64(utf8.RuneCountInString(line)) * f.CharWidth
}
