package scene2d

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement in this backend. The concrete
// TTFFont additionally renders; other implementations (used in tests and as
// the missing-family fallback) only measure.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
}

// FontProvider creates a Font for a requested size. Families are registered
// process-wide; like the rest of the package this happens on the UI thread.
type FontProvider func(size float64) Font

var fontFamilies = map[string]FontProvider{}

// RegisterFontProvider makes a font family available to text styles.
// Re-registering a family replaces the previous provider.
func RegisterFontProvider(family string, p FontProvider) {
	if p == nil {
		panic("scene2d: RegisterFontProvider called with nil provider")
	}
	fontFamilies[family] = p
}

// RegisterTTF parses TTF/OTF data and registers it as a family. Faces are
// created per requested size on demand.
func RegisterTTF(family string, ttfData []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return fmt.Errorf("scene2d: parse font %q: %w", family, err)
	}
	RegisterFontProvider(family, func(size float64) Font {
		return newTTFFont(source, size)
	})
	return nil
}

// warnedFamilies suppresses repeat warnings for the same missing family.
var warnedFamilies = map[string]bool{}

// resolveFont returns the Font for a family at the given size. A missing or
// empty family degrades to a measurement-only metric font with a one-time
// warning: text keeps its layout but renders nothing, which is the
// usable-but-reduced result the factory promises for capability gaps.
func resolveFont(family string, size float64) Font {
	if size <= 0 {
		size = 16
	}
	if p, ok := fontFamilies[family]; ok {
		return p(size)
	}
	if family != "" && !warnedFamilies[family] {
		warnedFamilies[family] = true
		log.Printf("prism: font family %q not registered, falling back to metric-only font", family)
	}
	return metricFont{size: size}
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

func newTTFFont(source *text.GoTextFaceSource, size float64) *TTFFont {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &TTFFont{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}
}

// MeasureString returns the rendered dimensions of a single line.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- metricFont ---

// metricFont approximates measurement for unregistered families so layout
// stays stable. It never renders.
type metricFont struct {
	size float64
}

// Average advance ratio for Latin UI text.
const metricAdvance = 0.6

func (f metricFont) MeasureString(s string) (width, height float64) {
	n := 0
	for range s {
		n++
	}
	return float64(n) * f.size * metricAdvance, f.LineHeight()
}

func (f metricFont) LineHeight() float64 {
	return f.size * 1.2
}
