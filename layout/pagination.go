package layout

import (
	"errors"
	"fmt"
)

const (
	// CoverPages 为封面与封底。
	CoverPages = 2
	// AnswerPages 为答案索引页。
	AnswerPages = 1
)

var (
	// ErrPaginationInvariant 表示计算出的总页数不是子页数的整数倍或纸张数为奇数。
	ErrPaginationInvariant = errors.New("layout: pagination invariant violated")
	// ErrQuoteIndexOutOfRange 表示拼版解析出的引文页超出了引文列表。
	ErrQuoteIndexOutOfRange = errors.New("layout: quote index out of range")
)

// BookletIndex 保存一次排版所需的页数统计。
type BookletIndex struct {
	Quotes    int `json:"quotes"`
	TextPages int `json:"textPages"`
	Blank     int `json:"blank"`
	Total     int `json:"total"`
	Sheets    int `json:"sheets"` // 纸张面数（正反面各计一次），总为偶数
	Subpages  int `json:"subpages"`
}

// ComputeIndex 计算逻辑页总数：引文页加封面、封底、答案页，
// 再补足空白页使总数为 subpages 的整数倍；若所得面数为奇数，再补一整面空白页。
func ComputeIndex(quoteCount, subpages int) (BookletIndex, error) {
	if subpages <= 0 {
		return BookletIndex{}, fmt.Errorf("%w: subpages per side must be positive, got %d", ErrPaginationInvariant, subpages)
	}
	if quoteCount < 0 {
		return BookletIndex{}, fmt.Errorf("%w: negative quote count %d", ErrPaginationInvariant, quoteCount)
	}
	textPages := quoteCount + CoverPages + AnswerPages
	blank := (subpages - textPages%subpages) % subpages
	total := textPages + blank
	sheets := total / subpages
	if sheets%2 != 0 {
		// 补足一整面空白，保证正反面成对
		blank += subpages
		total += subpages
		sheets++
	}

	idx := BookletIndex{
		Quotes:    quoteCount,
		TextPages: textPages,
		Blank:     blank,
		Total:     total,
		Sheets:    sheets,
		Subpages:  subpages,
	}
	if err := idx.check(); err != nil {
		return BookletIndex{}, err
	}
	return idx, nil
}

func (b BookletIndex) check() error {
	if b.Subpages <= 0 || b.Total%b.Subpages != 0 {
		return fmt.Errorf("%w: total %d is not a multiple of %d", ErrPaginationInvariant, b.Total, b.Subpages)
	}
	if b.Sheets%2 != 0 || b.Sheets*b.Subpages != b.Total {
		return fmt.Errorf("%w: %d sheet sides for %d pages", ErrPaginationInvariant, b.Sheets, b.Total)
	}
	return nil
}
