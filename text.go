package prism

// TextStroke defines a text outline rendered behind the fill.
type TextStroke struct {
	Color Color
	Width float64
}

// TextShadow defines a drop shadow rendered behind the fill and stroke.
// Angle is in radians; Distance is the offset along that angle in pixels.
type TextShadow struct {
	Color    Color
	Alpha    float64
	Angle    float64
	Blur     float64
	Distance float64
}

// TextStyle is the flat style record accepted by Factory.NewText. Zero-value
// fields fall back to backend-defined or factory-applied defaults; in
// particular the 2D factory applies a default stroke and drop shadow to
// guarantee on-background readability unless the caller sets them.
type TextStyle struct {
	FontFamily string
	FontSize   float64
	FontWeight string // "normal", "bold"
	FontStyle  string // "normal", "italic"
	// Fill is the glyph color. A zero-alpha Fill is treated as unset and
	// both factories substitute opaque white, so a fully transparent fill
	// is not expressible here; hide text with SetAlpha(0) or
	// SetVisible(false) instead.
	Fill       Color
	Align      TextAlign
	WordWrap   bool
	WrapWidth  float64
	LineHeight float64 // 0 = font line height
	Stroke     *TextStroke
	DropShadow *TextShadow
}

// Text is a display object with a mutable string and style. Width and Height
// report the measured size of the current text and style.
//
// In the 2D backend, measurement is recomputed synchronously on every
// SetText/SetStyle. In the overlay backend, measurement happens during the
// stage's layout pass, so sizes read from a freshly created or freshly
// mutated object report the last laid-out values (zero before the first
// pass). Treat overlay measurements as informational until a layout has run.
type Text interface {
	DisplayObject

	Text() string
	SetText(s string)

	Style() TextStyle
	SetStyle(st TextStyle)

	Width() float64
	Height() float64

	// Anchor is the normalized (0-1 per axis) origin used as the pivot for
	// position, rotation, and scale. Both backends apply the anchor
	// uniformly to the pivot and the draw origin.
	Anchor() (x, y float64)
	SetAnchor(x, y float64)
}
