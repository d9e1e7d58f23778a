package overlay3d

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"github.com/phanxgames/prism"
)

// overlayFactory implements prism.Factory over the overlay element model.
type overlayFactory struct{}

// newFactory probes for a drawing surface before handing out the factory,
// the overlay analog of "no document to attach to".
func newFactory() (prism.Factory, error) {
	if p := gg.NewPixmap(1, 1); p == nil {
		return nil, fmt.Errorf("overlay3d: cannot allocate a drawing surface")
	}
	return overlayFactory{}, nil
}

func (overlayFactory) Backend() prism.BackendType { return prism.BackendOverlay }

func (overlayFactory) NewContainer() prism.Container { return newWrapper() }
func (overlayFactory) NewGraphics() prism.Graphics   { return newSurface() }

func (overlayFactory) NewText(content string, style prism.TextStyle) prism.Text {
	if style.Fill.A == 0 {
		style.Fill = prism.ColorWhite
	}
	return newText(content, style)
}

func (overlayFactory) NewSprite(tex prism.Texture) prism.Sprite { return newImage(tex) }

func (overlayFactory) NewTexture(img image.Image) (prism.Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("overlay3d: NewTexture called with nil image")
	}
	return newImageTexture(gg.ImageBufFromImage(img)), nil
}

// NewTextureFromPath never fails here: the file is opened and decoded at
// the first composite that draws it, and the texture reports zero
// dimensions until then.
func (overlayFactory) NewTextureFromPath(path string) (prism.Texture, error) {
	if path == "" {
		return nil, fmt.Errorf("overlay3d: NewTextureFromPath called with empty path")
	}
	return newPathTexture(path), nil
}

func (overlayFactory) NewCanvasTexture(w, h int, draw func(*gg.Context)) (prism.Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("overlay3d: canvas texture size %dx%d is not positive", w, h)
	}
	if draw == nil {
		return nil, fmt.Errorf("overlay3d: NewCanvasTexture called with nil draw callback")
	}
	ctx := gg.NewContext(w, h)
	draw(ctx)
	return newImageTexture(gg.ImageBufFromImage(ctx.Image())), nil
}

func (overlayFactory) NewLinearGradient(x0, y0, x1, y1 float64, stops []prism.GradientStop) prism.Gradient {
	return newLinearGradient(x0, y0, x1, y1, stops)
}

func (overlayFactory) NewRadialGradient(cx, cy, r0, r1 float64, stops []prism.GradientStop) prism.Gradient {
	return newRadialGradient(cx, cy, r0, r1, stops)
}

func (overlayFactory) NewBlurFilter(radius float64) prism.Filter {
	return newFilter(prism.FilterBlur, newBlurApplier(radius))
}

func (overlayFactory) NewGlowFilter(c prism.Color, radius float64) prism.Filter {
	return newFilter(prism.FilterGlow, newGlowApplier(c, radius))
}

func (overlayFactory) NewOutlineFilter(c prism.Color, thickness float64) prism.Filter {
	return newOutlineFilter()
}

func (overlayFactory) NewShadowFilter(c prism.Color, alpha, angle, blur, distance float64) prism.Filter {
	return newFilter(prism.FilterShadow, newShadowApplier(c, alpha, angle, blur, distance))
}

func (overlayFactory) NewMask(source prism.DisplayObject, inverted bool) prism.Mask {
	return newMask(source, inverted)
}
