package scene2d

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// texture2d wraps an *ebiten.Image as a prism.Texture. The pixel data lives
// on the GPU; Destroy deallocates it eagerly instead of waiting for the
// finalizer.
type texture2d struct {
	img       *ebiten.Image
	w, h      float64
	destroyed bool
}

func newTexture(img *ebiten.Image) *texture2d {
	b := img.Bounds()
	return &texture2d{
		img: img,
		w:   float64(b.Dx()),
		h:   float64(b.Dy()),
	}
}

func (t *texture2d) Width() float64  { return t.w }
func (t *texture2d) Height() float64 { return t.h }

// Destroy releases the GPU image. Sprites still referencing this texture
// stop rendering it; sharing callers coordinate lifetime themselves.
func (t *texture2d) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}

// loadTextureFile decodes an image file into a texture synchronously.
func loadTextureFile(path string) (*texture2d, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene2d: open texture %q: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scene2d: decode texture %q: %w", path, err)
	}
	return newTexture(ebiten.NewImageFromImage(img)), nil
}
