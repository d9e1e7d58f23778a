package prism

// Texture is an opaque image resource. Textures may be shared by any number
// of sprites and fill styles; the contracts do no reference counting.
// Destroying a texture that is still referenced is a caller error, and the
// resulting behavior is backend-defined. Callers coordinate shared-texture
// lifetime themselves.
//
// In the overlay backend, a texture created from a file path reports zero
// width and height until the image has actually been decoded during a
// composite pass. Treat those sizes as informational, never as layout input.
type Texture interface {
	Width() float64
	Height() float64
	Destroy()
}

// Sprite is a display object that renders one texture. Width and Height are
// settable independently of the texture's native size, so stretching is
// supported; a zero value means "use the texture's native size".
//
// Destroying a sprite never destroys its texture (see Texture).
type Sprite interface {
	DisplayObject

	Texture() Texture
	SetTexture(t Texture)

	Width() float64
	SetWidth(w float64)
	Height() float64
	SetHeight(h float64)

	// Tint multiplies the texture's colors. ColorWhite means no change.
	Tint() Color
	SetTint(c Color)

	// Anchor is the normalized (0-1 per axis) origin used as the pivot for
	// position, rotation, and scale, applied uniformly to the pivot and
	// the draw origin in both backends.
	Anchor() (x, y float64)
	SetAnchor(x, y float64)
}
