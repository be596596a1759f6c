package canvasrenderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ByLCY/cryptogram/cipher"
	"github.com/ByLCY/cryptogram/layout"
)

func buildResult(t *testing.T, kind layout.Kind, answerURL string, texts ...string) *layout.Result {
	t.Helper()
	e := cipher.NewSeededEngine(7)
	quotes := make([]*cipher.Quote, 0, len(texts))
	for _, text := range texts {
		q, err := e.NewQuote(text)
		if err != nil {
			t.Fatalf("encipher %q: %v", text, err)
		}
		quotes = append(quotes, q)
	}
	res, err := layout.Build(quotes, layout.BuildOptions{Kind: kind, Name: "render", AnswerURL: answerURL})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return res
}

func TestRenderWritesSinglePDF(t *testing.T) {
	res := buildResult(t, layout.FourUp, "", "Hello, world.", "Brevity is the soul of wit.")
	data, err := NewRenderer().Render(res)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", data[:min(len(data), 8)])
	}
}

func TestRenderRejectsEmptyResult(t *testing.T) {
	r := NewRenderer()
	if _, err := r.Render(nil); err == nil {
		t.Fatalf("expected error for nil result")
	}
	if _, err := r.Render(&layout.Result{}); err == nil {
		t.Fatalf("expected error for result without pages")
	}
}

func TestRenderPageWritesSVG(t *testing.T) {
	res := buildResult(t, layout.TwoUp, "https://example.org/answers", "To be or not to be.")
	r := NewRenderer()
	for _, page := range res.Pages {
		data, err := r.RenderPage(page)
		if err != nil {
			t.Fatalf("render %s failed: %v", page.Name, err)
		}
		if !strings.Contains(string(data), "<svg") {
			t.Fatalf("%s: expected svg document", page.Name)
		}
	}
}

func TestRenderPageRejectsBadStyle(t *testing.T) {
	page := layout.Page{
		Name:   "broken",
		Width:  8.5,
		Height: 11,
		Texts:  []layout.TextBox{{Content: "X", X: 1, Y: 1, Style: "font-size"}},
	}
	if _, err := NewRenderer().RenderPage(page); err == nil {
		t.Fatalf("expected style error")
	}
}

func TestFontFamiliesAreCached(t *testing.T) {
	r := NewRenderer()
	page := layout.Page{
		Name:   "cache",
		Width:  8.5,
		Height: 11,
		Texts: []layout.TextBox{
			{Content: "ABC", X: 1, Y: 1, Style: layout.FourUp.Profile().CharStyle},
			{Content: "Clue: A=B", X: 2, Y: 2, Style: layout.FourUp.Profile().ClueStyle, Align: "center", Rotate: 180, Central: true},
		},
	}
	if _, err := r.RenderPage(page); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(r.fontFamilies) != 1 {
		t.Fatalf("expected one cached family, got %d", len(r.fontFamilies))
	}
}

func TestToMm(t *testing.T) {
	if got := toMm(1); got != 25.4 {
		t.Fatalf("expected 25.4mm, got %g", got)
	}
}
