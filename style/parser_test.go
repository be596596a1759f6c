package style_test

import (
	"testing"

	"github.com/ByLCY/cryptogram/layout"
	"github.com/ByLCY/cryptogram/style"
)

func TestParseProfileStyles(t *testing.T) {
	st, err := style.Parse(layout.FourUp.Profile().CharStyle)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if st.FontSize != (layout.Length{Value: 0.25, Unit: layout.UnitIN}) {
		t.Fatalf("expected font-size 0.25in, got %+v", st.FontSize)
	}
	if st.Family() != "URW Bookman" {
		t.Fatalf("expected family URW Bookman, got %q", st.Family())
	}

	clue, err := style.Parse(layout.TwoUp.Profile().ClueStyle)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if clue.FontSize.Value != 0.12 {
		t.Fatalf("expected clue font-size 0.12, got %g", clue.FontSize.Value)
	}
}

func TestParseFamilyListAndExtras(t *testing.T) {
	st, err := style.Parse(`font-family: "Go Mono", monospace; font-size: 18pt; fill: #c00; font-weight: Bold; letter-spacing: 1;`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(st.FontFamily) != 2 || st.FontFamily[0] != "Go Mono" || st.FontFamily[1] != "monospace" {
		t.Fatalf("unexpected families: %#v", st.FontFamily)
	}
	if st.FontSize != (layout.Length{Value: 18, Unit: layout.UnitPT}) {
		t.Fatalf("unexpected size: %+v", st.FontSize)
	}
	if st.Fill == nil || *st.Fill != (layout.Color{R: 0xcc}) {
		t.Fatalf("unexpected fill: %+v", st.Fill)
	}
	if st.FontWeight != "bold" {
		t.Fatalf("unexpected weight: %q", st.FontWeight)
	}
	if st.Props["letter-spacing"] != "1" {
		t.Fatalf("unknown properties must be kept, got %#v", st.Props)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"font-size", "font-size:;", "fill:#12", ": 3"} {
		if _, err := style.Parse(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

func TestCached(t *testing.T) {
	a, err := style.Cached("font-size:0.12")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b, err := style.Cached("font-size:0.12")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if a.FontSize != b.FontSize {
		t.Fatalf("cached style differs: %+v vs %+v", a, b)
	}
}
