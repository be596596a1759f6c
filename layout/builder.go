package layout

import (
	"fmt"
	"strconv"

	"github.com/ByLCY/cryptogram/binding"
	"github.com/ByLCY/cryptogram/cipher"
)

// Build 计算页数、拼版并生成每一面的绘制描述。
func Build(quotes []*cipher.Quote, opts BuildOptions) (*Result, error) {
	profile := opts.Kind.Profile()
	idx, err := ComputeIndex(len(quotes), profile.SubpagePerSide)
	if err != nil {
		return nil, err
	}
	labels := resolveLabels(opts, idx)
	flow := profile.Flow()

	sides := Impose(opts.Kind, idx)
	pages := make([]Page, 0, len(sides))
	for _, side := range sides {
		if len(side.Indices) != len(profile.Positions) {
			return nil, fmt.Errorf("layout: %s 拼版得到 %d 个子页，版式定义了 %d 个位置", profile.Kind, len(side.Indices), len(profile.Positions))
		}
		page := Page{
			Name:   side.Name(opts.Name),
			Sheet:  side.Sheet,
			Side:   side.Side,
			Width:  profile.PageWidth,
			Height: profile.PageHeight,
		}
		for i, n := range side.Indices {
			pos := profile.Positions[i]
			slot := ResolveSlot(n, idx)
			page.Slots = append(page.Slots, PlacedSlot{Position: pos.Name, Index: n, Slot: slot})

			text, clue, err := slotContent(slot, quotes, labels)
			if err != nil {
				return nil, fmt.Errorf("第 %d 页: %w", n, err)
			}
			for _, ln := range flow.Wrap(text, pos.Text.X, pos.Text.Y) {
				page.Texts = append(page.Texts, TextBox{Content: ln.Content, X: ln.X, Y: ln.Y, Style: profile.CharStyle})
			}
			if clue != "" {
				page.Texts = append(page.Texts, TextBox{
					Content: clue,
					X:       pos.Clue.X,
					Y:       pos.Clue.Y,
					Style:   profile.ClueStyle,
					Align:   "center",
					Rotate:  180,
					Central: true,
				})
			}
			page.Texts = append(page.Texts, TextBox{
				Content: strconv.Itoa(n),
				X:       pos.Number.X,
				Y:       pos.Number.Y,
				Style:   profile.CharStyle,
			})
			if slot.Kind == BackMatter && opts.AnswerURL != "" {
				page.Codes = append(page.Codes, CodeBox{
					Content: opts.AnswerURL,
					X:       pos.Text.X,
					Y:       pos.Text.Y + profile.CharHeight*answerRows,
					Size:    qrSize,
				})
			}
		}
		page.Lines = append(page.Lines, profile.Guides...)
		pages = append(pages, page)
	}

	return &Result{
		Name:    opts.Name,
		Profile: profile.Kind.String(),
		Index:   idx,
		Pages:   pages,
		Meta: DocumentMeta{
			Title:    opts.Title,
			Subject:  "Cryptogram booklet",
			Creator:  "cryptogram",
			Keywords: []string{"cryptogram", profile.Kind.String()},
		},
	}, nil
}

// slotContent 返回逻辑页上的正文与提示（提示仅引文页有）。
func slotContent(slot Slot, quotes []*cipher.Quote, labels Labels) (string, string, error) {
	switch slot.Kind {
	case FrontCover:
		return labels.Front, "", nil
	case BackMatter:
		return labels.Back, "", nil
	case AnswerKey:
		return labels.Answer, "", nil
	case QuotePage:
		if slot.Quote < 0 || slot.Quote >= len(quotes) {
			return "", "", fmt.Errorf("%w: quote %d of %d", ErrQuoteIndexOutOfRange, slot.Quote, len(quotes))
		}
		q := quotes[slot.Quote]
		if q == nil {
			return "", "", fmt.Errorf("%w: quote %d is nil", ErrQuoteIndexOutOfRange, slot.Quote)
		}
		return q.Puzzle(), q.Clue.Label(), nil
	default:
		return labels.Blank, "", nil
	}
}

func resolveLabels(opts BuildOptions, idx BookletIndex) Labels {
	labels := opts.Labels
	if labels == (Labels{}) {
		labels = DefaultLabels()
	}
	data := map[string]any{
		"title":  opts.Title,
		"name":   opts.Name,
		"quotes": idx.Quotes,
		"pages":  idx.Total,
		"blank":  idx.Blank,
		"sides":  idx.Sheets,
		"sheets": idx.Sheets / 2,
		"layout": opts.Kind.String(),
	}
	return Labels{
		Front:  binding.Interpolate(labels.Front, data),
		Back:   binding.Interpolate(labels.Back, data),
		Answer: binding.Interpolate(labels.Answer, data),
		Blank:  binding.Interpolate(labels.Blank, data),
	}
}
