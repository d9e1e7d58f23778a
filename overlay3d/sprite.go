package overlay3d

import (
	"image"
	"log"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/phanxgames/prism"
)

// imageElement implements prism.Sprite. Width/height overrides of zero mean
// "use the texture's native size"; for path-sourced textures that is zero
// until the first composite resolves them.
type imageElement struct {
	element
	tex     prism.Texture
	w, h    float64
	tint    prism.Color
	anchorX float64
	anchorY float64

	// Device-size scaling cache, rebuilt when the target size changes.
	scaled           *gg.ImageBuf
	scaledW, scaledH int
}

func newImage(tex prism.Texture) *imageElement {
	s := &imageElement{tex: tex, tint: prism.ColorWhite}
	elementDefaults(&s.element, s)
	return s
}

func (s *imageElement) Texture() prism.Texture { return s.tex }

func (s *imageElement) SetTexture(t prism.Texture) {
	s.tex = t
	s.scaled = nil
}

func (s *imageElement) Width() float64 {
	if s.w > 0 {
		return s.w
	}
	if s.tex != nil {
		return s.tex.Width()
	}
	return 0
}

func (s *imageElement) SetWidth(w float64) { s.w = w }

func (s *imageElement) Height() float64 {
	if s.h > 0 {
		return s.h
	}
	if s.tex != nil {
		return s.tex.Height()
	}
	return 0
}

func (s *imageElement) SetHeight(h float64) { s.h = h }

var warnedTint bool

func (s *imageElement) Tint() prism.Color { return s.tint }

// SetTint stores the tint. This backend applies only the alpha component;
// RGB tinting is a capability gap, warned once.
func (s *imageElement) SetTint(c prism.Color) {
	s.tint = c
	if (c.R != 1 || c.G != 1 || c.B != 1) && !warnedTint {
		warnedTint = true
		log.Printf("prism: sprite RGB tint is unavailable in the overlay backend, applying alpha only")
	}
}

func (s *imageElement) Anchor() (x, y float64) { return s.anchorX, s.anchorY }
func (s *imageElement) SetAnchor(x, y float64) { s.anchorX, s.anchorY = x, y }

// Destroy releases the element. Textures are shared and stay with their
// creator.
func (s *imageElement) Destroy() {
	if !s.destroyShared() {
		return
	}
	s.tex = nil
	s.scaled = nil
}

// deviceBuf returns the texture scaled to (dw, dh) device pixels, reusing
// the cached result while the size is stable.
func (s *imageElement) deviceBuf(dw, dh int) *gg.ImageBuf {
	tex, ok := s.tex.(*overlayTexture)
	if !ok {
		return nil
	}
	buf := tex.resolve()
	if buf == nil || dw <= 0 || dh <= 0 {
		return nil
	}
	if buf.Width() == dw && buf.Height() == dh {
		return buf
	}
	if s.scaled != nil && s.scaledW == dw && s.scaledH == dh {
		return s.scaled
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), bufRGBA(buf), image.Rect(0, 0, buf.Width(), buf.Height()), xdraw.Src, nil)
	s.scaled = gg.ImageBufFromImage(dst)
	s.scaledW = dw
	s.scaledH = dh
	return s.scaled
}

// bufRGBA copies a gg image buffer into a stdlib RGBA image.
func bufRGBA(buf *gg.ImageBuf) *image.RGBA {
	w := buf.Width()
	h := buf.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := buf.GetRGBA(x, y)
			p := out.PixOffset(x, y)
			// GetRGBA reports straight alpha; image.RGBA stores
			// premultiplied.
			out.Pix[p] = uint8(uint16(r) * uint16(a) / 255)
			out.Pix[p+1] = uint8(uint16(g) * uint16(a) / 255)
			out.Pix[p+2] = uint8(uint16(b) * uint16(a) / 255)
			out.Pix[p+3] = a
		}
	}
	return out
}
