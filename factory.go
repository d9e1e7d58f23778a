package prism

import (
	"image"

	"github.com/gogpu/gg"
)

// Factory is the single creation point for every concrete object type. One
// implementation exists per backend; application code obtains the active one
// from an Engine and never constructs backend objects directly.
//
// Objects created by a factory keep working after the engine switches
// backends, since they retain references to their own backend. They cannot
// be attached into trees created by the other factory.
type Factory interface {
	// Backend reports which backend this factory creates objects for.
	Backend() BackendType

	NewContainer() Container
	NewGraphics() Graphics
	NewText(content string, style TextStyle) Text
	NewSprite(tex Texture) Sprite

	// NewTexture wraps a decoded image as a backend texture.
	NewTexture(img image.Image) (Texture, error)

	// NewTextureFromPath creates a texture from an image file. The 2D
	// backend decodes synchronously and reports decode failures here; the
	// overlay backend defers decoding to the first composite pass and
	// reports zero dimensions until then.
	NewTextureFromPath(path string) (Texture, error)

	// NewCanvasTexture is the escape hatch for arbitrary procedural
	// textures. The draw callback receives a drawing surface of exactly
	// w by h pixels. The signature is identical in both backends.
	NewCanvasTexture(w, h int, draw func(*gg.Context)) (Texture, error)

	// NewLinearGradient creates a gradient along the segment (x0, y0) to
	// (x1, y1) with the given color stops.
	NewLinearGradient(x0, y0, x1, y1 float64, stops []GradientStop) Gradient

	// NewRadialGradient creates a gradient between two circles centered at
	// (cx, cy) with radii r0 and r1.
	NewRadialGradient(cx, cy, r0, r1 float64, stops []GradientStop) Gradient

	// NewBlurFilter creates a gaussian-like blur with the given radius in
	// pixels.
	NewBlurFilter(radius float64) Filter

	// NewGlowFilter creates an outer glow. Backends without the required
	// capability degrade to a plain blur and warn once.
	NewGlowFilter(c Color, radius float64) Filter

	// NewOutlineFilter creates a solid outline. Backends without the
	// required capability degrade to a no-op and warn once, since there is
	// no visually acceptable substitute.
	NewOutlineFilter(c Color, thickness float64) Filter

	// NewShadowFilter creates a drop shadow. Backends without the required
	// capability degrade to a plain blur and warn once.
	NewShadowFilter(c Color, alpha, angle, blur, distance float64) Filter

	// NewMask creates a clip mask from the alpha of source.
	NewMask(source DisplayObject, inverted bool) Mask
}
