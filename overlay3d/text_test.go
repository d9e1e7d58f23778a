package overlay3d

import (
	"testing"

	"github.com/phanxgames/prism"
)

// These tests use an unregistered family, exercising the synthetic metric
// fallback: advance 0.6 em, line height 1.2 em.

func TestTextLayoutSyntheticMetrics(t *testing.T) {
	txt := newText("abcd", prism.TextStyle{FontFamily: "unregistered", FontSize: 10})
	txt.layout()
	if txt.Width() != 24 { // 4 runes * 10 * 0.6
		t.Errorf("Width = %v, want 24", txt.Width())
	}
	if txt.Height() != 12 { // one line * 10 * 1.2
		t.Errorf("Height = %v, want 12", txt.Height())
	}
}

func TestTextMeasurementDeferredToLayout(t *testing.T) {
	txt := newText("abcd", prism.TextStyle{FontFamily: "unregistered", FontSize: 10})
	if txt.Width() != 0 {
		t.Errorf("Width before layout = %v, want 0", txt.Width())
	}
	txt.layout()
	w := txt.Width()
	if w <= 0 {
		t.Fatalf("Width after layout = %v", w)
	}

	// Mutation leaves the old measurement in place until the next pass.
	txt.SetText("abcdabcd")
	if txt.Width() != w {
		t.Error("mutation re-measured without a layout pass")
	}
	txt.layout()
	if txt.Width() != 2*w {
		t.Errorf("Width after relayout = %v, want %v", txt.Width(), 2*w)
	}
}

func TestTextWordWrap(t *testing.T) {
	style := prism.TextStyle{
		FontFamily: "unregistered",
		FontSize:   10,
		WordWrap:   true,
		WrapWidth:  45, // "one two" measures 42, "one two six" measures 66
	}
	txt := newText("one two six", style)
	txt.layout()
	if len(txt.lines) != 2 {
		t.Fatalf("lines = %q, want 2", txt.lines)
	}
	if txt.lines[0] != "one two" || txt.lines[1] != "six" {
		t.Errorf("lines = %q", txt.lines)
	}
}

func TestTextLineHeightOverride(t *testing.T) {
	txt := newText("a\nb", prism.TextStyle{
		FontFamily: "unregistered",
		FontSize:   10,
		LineHeight: 30,
	})
	txt.layout()
	if txt.Height() != 60 {
		t.Errorf("Height = %v, want 60", txt.Height())
	}
}

func TestTextDefaultFontSize(t *testing.T) {
	txt := newText("x", prism.TextStyle{FontFamily: "unregistered"})
	if txt.fontSize() != 16 {
		t.Errorf("fontSize = %v, want 16", txt.fontSize())
	}
}

func TestMeasureTextSynthetic(t *testing.T) {
	w, h := measureText("abc", nil, 20)
	if w != 36 { // 3 * 20 * 0.6
		t.Errorf("w = %v, want 36", w)
	}
	if h != 24 { // 20 * 1.2
		t.Errorf("h = %v, want 24", h)
	}
}
