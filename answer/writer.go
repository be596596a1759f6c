// Package answer 生成答案页：一个索引页加每条引文一个详情页。
package answer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/cryptogram/cipher"
)

// IndexName 返回索引页文件名。
func IndexName(base string) string {
	return base + "_answer.html"
}

// PageName 返回第 n 条引文（从 1 开始）的详情页文件名。
func PageName(base string, n int) string {
	return fmt.Sprintf("%s_answer_%d.html", base, n)
}

type indexRow struct {
	Page int
	Clue string
	File string
}

type pageData struct {
	Base   string
	Page   int
	Text   []string
	Puzzle []string
	Label  string
	Pairs  []cipher.Pair
}

// RenderIndex 输出 Page/Clue/Answer 三列的索引表，每行链接到对应详情页。
func RenderIndex(w io.Writer, base string, quotes []*cipher.Quote) error {
	rows := make([]indexRow, 0, len(quotes))
	for i, q := range quotes {
		if q == nil {
			return fmt.Errorf("answer: quote %d is nil", i+1)
		}
		rows = append(rows, indexRow{Page: i + 1, Clue: q.Clue.Short(), File: PageName(base, i+1)})
	}
	return indexTemplate.Execute(w, struct {
		Title string
		Rows  []indexRow
	}{Title: "Answer", Rows: rows})
}

// RenderPage 输出单条引文的答案：原文、大写密文和完整的字母对照表。
func RenderPage(w io.Writer, base string, n int, q *cipher.Quote) error {
	if q == nil {
		return fmt.Errorf("answer: quote %d is nil", n)
	}
	return pageTemplate.Execute(w, pageData{
		Base:   base,
		Page:   n,
		Text:   strings.Split(q.Text, "\n"),
		Puzzle: strings.Split(q.Puzzle(), "\n"),
		Label:  q.Clue.Label(),
		Pairs:  q.Clue.Table(),
	})
}

// Write 在 dir 下写出索引页与全部详情页，返回写出的文件路径（索引页在前）。
func Write(dir, base string, quotes []*cipher.Quote) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建答案目录失败: %w", err)
	}
	written := make([]string, 0, len(quotes)+1)

	var buf bytes.Buffer
	if err := RenderIndex(&buf, base, quotes); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, IndexName(base))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("写入答案索引失败: %w", err)
	}
	written = append(written, path)

	for i, q := range quotes {
		buf.Reset()
		if err := RenderPage(&buf, base, i+1, q); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, PageName(base, i+1))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("写入答案页 %d 失败: %w", i+1, err)
		}
		written = append(written, path)
	}
	return written, nil
}
