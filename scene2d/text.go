package scene2d

import (
	"strings"

	"github.com/phanxgames/prism"
)

// textNode implements prism.Text. Measurement is recomputed lazily on read
// after any mutation, so Width/Height always reflect the current
// text and style.
type textNode struct {
	node
	content string
	style   prism.TextStyle
	anchorX float64
	anchorY float64

	font        Font
	layoutDirty bool
	lines       []string
	measuredW   float64
	measuredH   float64
}

func newText(content string, style prism.TextStyle) *textNode {
	t := &textNode{
		content:     content,
		style:       style,
		layoutDirty: true,
	}
	nodeDefaults(&t.node, t)
	t.font = resolveFont(style.FontFamily, style.FontSize)
	return t
}

func (t *textNode) Text() string { return t.content }

func (t *textNode) SetText(s string) {
	if t.content == s {
		return
	}
	t.content = s
	t.layoutDirty = true
}

func (t *textNode) Style() prism.TextStyle { return t.style }

func (t *textNode) SetStyle(st prism.TextStyle) {
	t.style = st
	t.font = resolveFont(st.FontFamily, st.FontSize)
	t.layoutDirty = true
}

func (t *textNode) Width() float64 {
	t.layout()
	return t.measuredW
}

func (t *textNode) Height() float64 {
	t.layout()
	return t.measuredH
}

func (t *textNode) Anchor() (x, y float64) { return t.anchorX, t.anchorY }
func (t *textNode) SetAnchor(x, y float64) { t.anchorX, t.anchorY = x, y }

func (t *textNode) Destroy() {
	if !t.destroyBase() {
		return
	}
	t.font = nil
	t.lines = nil
}

// lineHeight returns the effective line height for this text object.
func (t *textNode) lineHeight() float64 {
	if t.style.LineHeight > 0 {
		return t.style.LineHeight
	}
	if t.font != nil {
		return t.font.LineHeight()
	}
	return 0
}

// layout recomputes wrapped lines and measured dimensions if dirty.
func (t *textNode) layout() {
	if !t.layoutDirty {
		return
	}
	t.layoutDirty = false
	t.lines = t.lines[:0]
	t.measuredW = 0
	t.measuredH = 0
	if t.font == nil || t.content == "" {
		return
	}

	for _, raw := range strings.Split(t.content, "\n") {
		if t.style.WordWrap && t.style.WrapWidth > 0 {
			t.lines = appendWrapped(t.lines, raw, t.font, t.style.WrapWidth)
		} else {
			t.lines = append(t.lines, raw)
		}
	}

	for _, line := range t.lines {
		w, _ := t.font.MeasureString(line)
		if w > t.measuredW {
			t.measuredW = w
		}
	}
	t.measuredH = float64(len(t.lines)) * t.lineHeight()
}

// appendWrapped splits line at word boundaries so each output line measures
// at most wrapWidth. A single word wider than wrapWidth occupies its own
// line rather than being broken mid-word.
func appendWrapped(dst []string, line string, font Font, wrapWidth float64) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return append(dst, "")
	}
	cur := words[0]
	for _, word := range words[1:] {
		candidate := cur + " " + word
		if w, _ := font.MeasureString(candidate); w > wrapWidth {
			dst = append(dst, cur)
			cur = word
		} else {
			cur = candidate
		}
	}
	return append(dst, cur)
}

// lineOffset returns the horizontal offset for a line under the current
// alignment within the measured block width.
func (t *textNode) lineOffset(line string) float64 {
	if t.style.Align == prism.TextAlignLeft {
		return 0
	}
	w, _ := t.font.MeasureString(line)
	switch t.style.Align {
	case prism.TextAlignCenter:
		return (t.measuredW - w) / 2
	case prism.TextAlignRight:
		return t.measuredW - w
	}
	return 0
}
