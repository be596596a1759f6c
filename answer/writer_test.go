package answer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ByLCY/cryptogram/cipher"
)

func quotesFor(t *testing.T, texts ...string) []*cipher.Quote {
	t.Helper()
	e := cipher.NewSeededEngine(3)
	out := make([]*cipher.Quote, 0, len(texts))
	for _, text := range texts {
		q, err := e.NewQuote(text)
		require.NoError(t, err)
		out = append(out, q)
	}
	return out
}

func TestRenderIndex(t *testing.T) {
	qs := quotesFor(t, "Hello there.", "Fish & chips <3")
	var buf bytes.Buffer
	require.NoError(t, RenderIndex(&buf, "proverbs", qs))
	html := buf.String()

	require.Contains(t, html, "<title>Answer</title>")
	require.Contains(t, html, "<tr><th>Page</th><th>Clue</th><th>Answer</th></tr>")
	require.Contains(t, html, `<a href="proverbs_answer_1.html">Answer</a>`)
	require.Contains(t, html, `<a href="proverbs_answer_2.html">Answer</a>`)
	require.Contains(t, html, "<td>"+qs[0].Clue.Short()+"</td>")
	require.Equal(t, 2, strings.Count(html, "<td><a href="))
}

func TestRenderPage(t *testing.T) {
	qs := quotesFor(t, "Fish & chips\nare <tasty>")
	var buf bytes.Buffer
	require.NoError(t, RenderPage(&buf, "food", 1, qs[0]))
	html := buf.String()

	require.Contains(t, html, "<title>food Answer 1</title>")
	require.Contains(t, html, "<h2>food Page 1</h2>")
	require.Contains(t, html, "<br>Fish &amp; chips</br>")
	require.Contains(t, html, "<br>are &lt;tasty&gt;</br>")
	require.Contains(t, html, "<br>"+qs[0].Clue.Label()+"</br>")
	require.Contains(t, html, "<tr><th>Crypt</th><th>Clear</th></tr>")
	require.Equal(t, 26, strings.Count(html, "<tr><td>"))

	m := qs[0].Mapping()
	crypt := string([]byte{'A' + m[0], 'a' + m[0]})
	require.Contains(t, html, "<tr><td>"+crypt+"</td><td>Aa</td></tr>")
}

func TestRenderNilQuote(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, RenderIndex(&buf, "x", []*cipher.Quote{nil}))
	require.Error(t, RenderPage(&buf, "x", 1, nil))
}

func TestWrite(t *testing.T) {
	qs := quotesFor(t, "One.", "Two.", "Three.")
	dir := filepath.Join(t.TempDir(), "out")
	files, err := Write(dir, "nums", qs)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "nums_answer.html"),
		filepath.Join(dir, "nums_answer_1.html"),
		filepath.Join(dir, "nums_answer_2.html"),
		filepath.Join(dir, "nums_answer_3.html"),
	}, files)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}
