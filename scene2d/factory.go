package scene2d

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/prism"
)

// factory2d implements prism.Factory for the ebiten backend. Creation is
// mostly direct instantiation; NewText additionally translates the flat
// style record into the defaults this backend guarantees.
type factory2d struct{}

func (factory2d) Backend() prism.BackendType { return prism.Backend2D }

func (factory2d) NewContainer() prism.Container { return newContainer() }
func (factory2d) NewGraphics() prism.Graphics   { return newGraphics() }

// Default text dressing. Every text object gets a thin dark stroke and a
// short drop shadow so labels stay readable over arbitrary backgrounds;
// callers override by setting the fields themselves.
var (
	defaultTextStroke = prism.TextStroke{
		Color: prism.Color{A: 1},
		Width: 2,
	}
	defaultTextShadow = prism.TextShadow{
		Color:    prism.Color{A: 1},
		Alpha:    0.5,
		Angle:    math.Pi / 4,
		Blur:     2,
		Distance: 2,
	}
)

func (factory2d) NewText(content string, style prism.TextStyle) prism.Text {
	if style.Fill.A == 0 {
		style.Fill = prism.ColorWhite
	}
	if style.Stroke == nil {
		s := defaultTextStroke
		style.Stroke = &s
	}
	if style.DropShadow == nil {
		sh := defaultTextShadow
		style.DropShadow = &sh
	}
	return newText(content, style)
}

func (factory2d) NewSprite(tex prism.Texture) prism.Sprite { return newSprite(tex) }

func (factory2d) NewTexture(img image.Image) (prism.Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("scene2d: NewTexture called with nil image")
	}
	return newTexture(ebiten.NewImageFromImage(img)), nil
}

func (factory2d) NewTextureFromPath(path string) (prism.Texture, error) {
	return loadTextureFile(path)
}

func (factory2d) NewCanvasTexture(w, h int, draw func(*gg.Context)) (prism.Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("scene2d: canvas texture size %dx%d is not positive", w, h)
	}
	if draw == nil {
		return nil, fmt.Errorf("scene2d: NewCanvasTexture called with nil draw callback")
	}
	ctx := gg.NewContext(w, h)
	draw(ctx)
	return newTexture(ebiten.NewImageFromImage(ctx.Image())), nil
}

func (factory2d) NewLinearGradient(x0, y0, x1, y1 float64, stops []prism.GradientStop) prism.Gradient {
	return newLinearGradient(x0, y0, x1, y1, stops)
}

func (factory2d) NewRadialGradient(cx, cy, r0, r1 float64, stops []prism.GradientStop) prism.Gradient {
	return newRadialGradient(cx, cy, r0, r1, stops)
}

func (factory2d) NewBlurFilter(radius float64) prism.Filter {
	return newFilter(prism.FilterBlur, newBlurApplier(radius))
}

func (factory2d) NewGlowFilter(c prism.Color, radius float64) prism.Filter {
	return newFilter(prism.FilterGlow, newGlowApplier(c, radius))
}

func (factory2d) NewOutlineFilter(c prism.Color, thickness float64) prism.Filter {
	return newOutlineFilter(c, thickness)
}

func (factory2d) NewShadowFilter(c prism.Color, alpha, angle, blur, distance float64) prism.Filter {
	return newFilter(prism.FilterShadow, newShadowApplier(c, alpha, angle, blur, distance))
}

func (factory2d) NewMask(source prism.DisplayObject, inverted bool) prism.Mask {
	return newMask(source, inverted)
}
