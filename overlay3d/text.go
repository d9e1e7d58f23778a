package overlay3d

import (
	"strings"

	"github.com/gogpu/gg/text"

	"github.com/phanxgames/prism"
)

// textElement implements prism.Text. Unlike the 2D backend, measurement is
// not synchronous: it happens when a Stage layout or composite pass reaches
// the element, so Width and Height report the last laid-out values and zero
// before the first pass. This mirrors the layout asynchrony of the overlay
// model the backend reproduces.
type textElement struct {
	element
	content string
	style   prism.TextStyle
	anchorX float64
	anchorY float64

	layoutDirty bool
	face        text.Face
	lines       []string
	measuredW   float64
	measuredH   float64
}

func newText(content string, style prism.TextStyle) *textElement {
	t := &textElement{
		content:     content,
		style:       style,
		layoutDirty: true,
	}
	elementDefaults(&t.element, t)
	return t
}

func (t *textElement) Text() string { return t.content }

func (t *textElement) SetText(s string) {
	if t.content == s {
		return
	}
	t.content = s
	t.layoutDirty = true
}

func (t *textElement) Style() prism.TextStyle { return t.style }

func (t *textElement) SetStyle(st prism.TextStyle) {
	t.style = st
	t.layoutDirty = true
}

// Width reports the measured width from the last layout pass. It does not
// trigger a layout.
func (t *textElement) Width() float64 { return t.measuredW }

// Height reports the measured height from the last layout pass.
func (t *textElement) Height() float64 { return t.measuredH }

func (t *textElement) Anchor() (x, y float64) { return t.anchorX, t.anchorY }
func (t *textElement) SetAnchor(x, y float64) { t.anchorX, t.anchorY = x, y }

func (t *textElement) Destroy() {
	if !t.destroyShared() {
		return
	}
	t.face = nil
	t.lines = nil
}

func (t *textElement) fontSize() float64 {
	if t.style.FontSize > 0 {
		return t.style.FontSize
	}
	return 16
}

func (t *textElement) lineHeight() float64 {
	if t.style.LineHeight > 0 {
		return t.style.LineHeight
	}
	return faceLineHeight(t.face, t.fontSize())
}

// layout resolves the face, wraps the content, and records measured
// dimensions. Called by Stage passes, never by accessors.
func (t *textElement) layout() {
	if !t.layoutDirty {
		return
	}
	t.layoutDirty = false
	t.face = resolveFace(t.style.FontFamily, t.fontSize())
	t.lines = t.lines[:0]
	t.measuredW = 0
	t.measuredH = 0
	if t.content == "" {
		return
	}

	for _, raw := range strings.Split(t.content, "\n") {
		if t.style.WordWrap && t.style.WrapWidth > 0 {
			t.lines = t.appendWrapped(t.lines, raw)
		} else {
			t.lines = append(t.lines, raw)
		}
	}

	for _, line := range t.lines {
		w, _ := measureText(line, t.face, t.fontSize())
		if w > t.measuredW {
			t.measuredW = w
		}
	}
	t.measuredH = float64(len(t.lines)) * t.lineHeight()
}

// appendWrapped splits line at word boundaries so each output line measures
// at most WrapWidth. A single word wider than the limit occupies its own
// line rather than being broken mid-word.
func (t *textElement) appendWrapped(dst []string, line string) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return append(dst, "")
	}
	cur := words[0]
	for _, word := range words[1:] {
		candidate := cur + " " + word
		if w, _ := measureText(candidate, t.face, t.fontSize()); w > t.style.WrapWidth {
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
func (t *textElement) lineOffset(line string) float64 {
	if t.style.Align == prism.TextAlignLeft {
		return 0
	}
	w, _ := measureText(line, t.face, t.fontSize())
	switch t.style.Align {
	case prism.TextAlignCenter:
		return (t.measuredW - w) / 2
	case prism.TextAlignRight:
		return t.measuredW - w
	}
	return 0
}
