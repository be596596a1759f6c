package layout

import (
	"fmt"
	"strings"
)

// Kind 枚举支持的两种拼版方式。
type Kind int

const (
	FourUp Kind = iota // 每面 4 个子页，竖向 Letter
	TwoUp              // 每面 2 个子页，横向 Letter
)

// ParseKind 将版式名称（four_up / two_up）解析为 Kind。
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "four_up", "four-up", "4up":
		return FourUp, nil
	case "two_up", "two-up", "2up":
		return TwoUp, nil
	default:
		return 0, fmt.Errorf("layout %s not found", name)
	}
}

func (k Kind) String() string {
	switch k {
	case FourUp:
		return "four_up"
	case TwoUp:
		return "two_up"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Anchor 是页面上的一个定位点。
type Anchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Position 描述一个物理子页位置上各元素的锚点。
type Position struct {
	Name   string
	Text   Anchor // 正文首行
	Clue   Anchor // 提示（旋转 180°，以此为中心）
	Number Anchor // 逻辑页码
}

// Profile 是一种版式的全部几何与样式参数，单位为英寸。
type Profile struct {
	Kind           Kind
	PageWidth      float64
	PageHeight     float64
	CharWidth      float64
	CharHeight     float64
	LineLimit      float64
	SubpagePerSide int
	CharStyle      string
	ClueStyle      string
	Guides         []Line
	// Positions 的顺序与拼版函数输出的逻辑页顺序一致。
	Positions []Position
}

const (
	charStyle      = "font-size:0.25;font-family:'URW Bookman'"
	clueStyle      = "font-size:0.12;font-family:'URW Bookman'"
	guideLineWidth = 0.010
)

func guide(x1, y1, x2, y2 float64) Line {
	return Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: Red, Width: guideLineWidth}
}

var fourUpProfile = Profile{
	Kind:           FourUp,
	PageWidth:      8.5,
	PageHeight:     11.0,
	CharWidth:      0.25,
	CharHeight:     0.25,
	LineLimit:      4.0,
	SubpagePerSide: 4,
	CharStyle:      charStyle,
	ClueStyle:      clueStyle,
	Guides: []Line{
		// vertical
		guide(0.500, 0.000, 0.500, 0.250),
		guide(2.125, 0.000, 2.125, 0.250),
		guide(3.750, 0.000, 3.750, 0.250),
		guide(4.750, 0.000, 4.750, 0.250),
		guide(6.375, 0.000, 6.375, 0.250),
		guide(8.000, 0.000, 8.000, 0.250),
		guide(8.000, 10.750, 8.000, 11.000),
		// horizontal
		guide(0.000, 0.500, 0.250, 0.500),
		guide(0.000, 5.000, 0.250, 5.000),
		guide(0.000, 6.000, 0.250, 6.000),
		guide(0.000, 10.500, 0.250, 10.500),
		guide(8.250, 10.500, 8.500, 10.500),
	},
	// +---+---+
	// | a | b |
	// +---+---+
	// | d | c |
	// +---+---+
	Positions: []Position{
		{Name: "top-left", Text: Anchor{0.5, 0.75}, Clue: Anchor{3.0, 4.5}, Number: Anchor{2.1, 5.0}},
		{Name: "top-right", Text: Anchor{4.7, 0.75}, Clue: Anchor{7.7, 4.5}, Number: Anchor{6.3, 5.0}},
		{Name: "bottom-right", Text: Anchor{4.7, 6.25}, Clue: Anchor{3.0, 10.0}, Number: Anchor{6.3, 10.5}},
		{Name: "bottom-left", Text: Anchor{0.5, 6.25}, Clue: Anchor{7.7, 10.0}, Number: Anchor{2.1, 10.5}},
	},
}

var twoUpProfile = Profile{
	Kind:           TwoUp,
	PageWidth:      11.0,
	PageHeight:     8.5,
	CharWidth:      0.25,
	CharHeight:     0.25,
	LineLimit:      4.5,
	SubpagePerSide: 2,
	CharStyle:      charStyle,
	ClueStyle:      clueStyle,
	Guides: []Line{
		// vertical
		guide(0.500, 0.000, 0.500, 0.250),
		guide(5.000, 0.000, 5.000, 0.250),
		guide(6.000, 0.000, 6.000, 0.250),
		guide(10.500, 0.000, 10.500, 0.250),
		guide(10.500, 8.250, 10.500, 8.500),
		// horizontal
		guide(0.000, 0.500, 0.250, 0.500),
		guide(0.000, 8.000, 0.250, 8.000),
		guide(10.750, 8.000, 11.000, 8.000),
	},
	// +---+---+
	// | a | b |
	// +---+---+
	Positions: []Position{
		{Name: "left", Text: Anchor{0.5, 0.75}, Clue: Anchor{7.5, 4.0}, Number: Anchor{2.75, 8.0}},
		{Name: "right", Text: Anchor{6.0, 0.75}, Clue: Anchor{10.5, 7.5}, Number: Anchor{8.25, 8.0}},
	},
}

// Profile 返回该版式的参数副本。
func (k Kind) Profile() Profile {
	var p Profile
	switch k {
	case TwoUp:
		p = twoUpProfile
	default:
		p = fourUpProfile
	}
	p.Guides = append([]Line(nil), p.Guides...)
	p.Positions = append([]Position(nil), p.Positions...)
	return p
}

// Flow 返回该版式的正文折行参数。
func (p Profile) Flow() Flow {
	return Flow{Limit: p.LineLimit, CharWidth: p.CharWidth, CharHeight: p.CharHeight}
}
