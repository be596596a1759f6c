package layout

import "fmt"

// SlotKind 是逻辑页的语义角色。
type SlotKind int

const (
	Blank SlotKind = iota
	FrontCover
	BackMatter
	AnswerKey
	QuotePage
)

func (k SlotKind) String() string {
	switch k {
	case FrontCover:
		return "front"
	case BackMatter:
		return "back"
	case AnswerKey:
		return "answer"
	case QuotePage:
		return "quote"
	default:
		return "blank"
	}
}

// MarshalText 让调试 JSON 输出可读的角色名。
func (k SlotKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Slot 是解析后的逻辑页内容；仅当 Kind 为 QuotePage 时 Quote 有意义。
type Slot struct {
	Kind  SlotKind `json:"kind"`
	Quote int      `json:"quote"`
}

func (s Slot) String() string {
	if s.Kind == QuotePage {
		return fmt.Sprintf("quote(%d)", s.Quote)
	}
	return s.Kind.String()
}

// ResolveSlot 将逻辑页序号映射到内容角色。
func ResolveSlot(n int, idx BookletIndex) Slot {
	switch {
	case n == 0:
		return Slot{Kind: FrontCover}
	case n == idx.Total-1:
		return Slot{Kind: BackMatter}
	case n == idx.Total-2:
		return Slot{Kind: AnswerKey}
	case n >= 1 && n < idx.Total-idx.Blank-2:
		return Slot{Kind: QuotePage, Quote: n - 1}
	default:
		return Slot{Kind: Blank}
	}
}

// SheetSide 是一次拼版迭代的结果：一张纸的一面及其上的逻辑页序号。
type SheetSide struct {
	Iteration int   `json:"iteration"`
	Sheet     int   `json:"sheet"`
	Side      Side  `json:"side"`
	Indices   []int `json:"indices"` // 与 Profile.Positions 一一对应
}

// Name 返回该面的输出名称 {base}-{sheet}-{f|b}。
func (s SheetSide) Name(base string) string {
	return fmt.Sprintf("%s-%d-%s", base, s.Sheet, s.Side)
}

// Impose 按版式计算每一面上的逻辑页排列。
func Impose(k Kind, idx BookletIndex) []SheetSide {
	switch k {
	case TwoUp:
		return imposeTwoUp(idx)
	default:
		return imposeFourUp(idx)
	}
}

func newSheetSide(n int, indices ...int) SheetSide {
	side := Front
	if n%2 != 0 {
		side = Back
	}
	return SheetSide{Iteration: n, Sheet: n/2 + 1, Side: side, Indices: indices}
}

// imposeFourUp: 对折再对折后按顺序阅读。
// a 从头递增，b 从尾递减，c 从中间递增，d 从中间前一页递减。
func imposeFourUp(idx BookletIndex) []SheetSide {
	sides := make([]SheetSide, 0, idx.Sheets)
	a := 0
	b := idx.Total - 1
	c := idx.Total / 2
	d := c - 1
	for n := 0; n < idx.Sheets; n++ {
		sides = append(sides, newSheetSide(n, a, b, c, d))
		a++
		b--
		c++
		d--
	}
	return sides
}

// imposeTwoUp: a 从头递增，b 从尾递减，左右排列。
func imposeTwoUp(idx BookletIndex) []SheetSide {
	sides := make([]SheetSide, 0, idx.Sheets)
	a := 0
	b := idx.Total - 1
	for n := 0; n < idx.Sheets; n++ {
		sides = append(sides, newSheetSide(n, a, b))
		a++
		b--
	}
	return sides
}
