package overlay3d

import (
	"fmt"
	"log"

	"github.com/gogpu/gg/text"
)

// fontFamilies maps family name to a parsed gg font source. Plain map, no
// locking: registration happens at startup and the execution model is
// single-threaded (see the prism package doc).
var fontFamilies = map[string]*text.FontSource{}

// RegisterTTF parses TTF/OTF data and registers it under family for overlay
// text elements.
func RegisterTTF(family string, ttfData []byte) error {
	src, err := text.NewFontSource(ttfData)
	if err != nil {
		return fmt.Errorf("overlay3d: parse font %q: %w", family, err)
	}
	fontFamilies[family] = src
	return nil
}

// RegisterFontSource registers an already-parsed source under family.
func RegisterFontSource(family string, src *text.FontSource) {
	if src == nil {
		panic("overlay3d: RegisterFontSource called with nil source")
	}
	fontFamilies[family] = src
}

var warnedFamilies = map[string]bool{}

// resolveFace returns a sized face for family, or nil when the family is
// not registered. Missing families warn once; text then lays out with
// synthetic metrics and draws nothing.
func resolveFace(family string, size float64) text.Face {
	if size <= 0 {
		size = 16
	}
	src, ok := fontFamilies[family]
	if !ok {
		if !warnedFamilies[family] {
			warnedFamilies[family] = true
			log.Printf("prism: font family %q not registered with overlay3d; text will measure but not draw", family)
		}
		return nil
	}
	return src.Face(size)
}

// Synthetic metrics used when no face is available, so word wrap and layout
// stay deterministic.
const (
	metricAdvance    = 0.6
	metricLineHeight = 1.2
)

// measureText measures s with face when available, otherwise with the
// synthetic per-rune advance.
func measureText(s string, face text.Face, size float64) (w, h float64) {
	if face != nil {
		return face.Advance(s), face.Metrics().LineHeight()
	}
	n := 0
	for range s {
		n++
	}
	return float64(n) * size * metricAdvance, size * metricLineHeight
}

// faceLineHeight returns the line height for face, or the synthetic value.
func faceLineHeight(face text.Face, size float64) float64 {
	if face != nil {
		return face.Metrics().LineHeight()
	}
	return size * metricLineHeight
}
