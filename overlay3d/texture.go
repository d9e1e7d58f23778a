package overlay3d

import (
	"log"

	"github.com/gogpu/gg"
)

// overlayTexture implements prism.Texture over a gg image buffer. Textures
// created from a file path decode lazily at the first composite that needs
// them; until then Width and Height report zero. Textures are shared, not
// reference-counted: the creator decides when to Destroy.
type overlayTexture struct {
	buf  *gg.ImageBuf
	path string
	w, h float64

	failed    bool
	destroyed bool
}

func newImageTexture(buf *gg.ImageBuf) *overlayTexture {
	return &overlayTexture{
		buf: buf,
		w:   float64(buf.Width()),
		h:   float64(buf.Height()),
	}
}

func newPathTexture(path string) *overlayTexture {
	return &overlayTexture{path: path}
}

func (t *overlayTexture) Width() float64  { return t.w }
func (t *overlayTexture) Height() float64 { return t.h }

// resolve returns the decoded buffer, decoding path-sourced textures on
// first use. A decode failure is reported once and the texture stays empty.
func (t *overlayTexture) resolve() *gg.ImageBuf {
	if t.destroyed || t.failed {
		return nil
	}
	if t.buf == nil && t.path != "" {
		buf, err := gg.LoadImage(t.path)
		if err != nil {
			log.Printf("prism: load overlay texture %q: %v", t.path, err)
			t.failed = true
			return nil
		}
		t.buf = buf
		t.w = float64(buf.Width())
		t.h = float64(buf.Height())
	}
	return t.buf
}

func (t *overlayTexture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.buf = nil
}
