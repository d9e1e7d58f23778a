package scene2d

import (
	"github.com/phanxgames/prism"
)

// spriteNode implements prism.Sprite. Width/height overrides of zero mean
// "use the texture's native size".
type spriteNode struct {
	node
	tex     prism.Texture
	w, h    float64
	tint    prism.Color
	anchorX float64
	anchorY float64
}

func newSprite(tex prism.Texture) *spriteNode {
	s := &spriteNode{tex: tex, tint: prism.ColorWhite}
	nodeDefaults(&s.node, s)
	return s
}

func (s *spriteNode) Texture() prism.Texture     { return s.tex }
func (s *spriteNode) SetTexture(t prism.Texture) { s.tex = t }

func (s *spriteNode) Width() float64 {
	if s.w > 0 {
		return s.w
	}
	if s.tex != nil {
		return s.tex.Width()
	}
	return 0
}

func (s *spriteNode) SetWidth(w float64) { s.w = w }

func (s *spriteNode) Height() float64 {
	if s.h > 0 {
		return s.h
	}
	if s.tex != nil {
		return s.tex.Height()
	}
	return 0
}

func (s *spriteNode) SetHeight(h float64) { s.h = h }

func (s *spriteNode) Tint() prism.Color     { return s.tint }
func (s *spriteNode) SetTint(c prism.Color) { s.tint = c }

func (s *spriteNode) Anchor() (x, y float64) { return s.anchorX, s.anchorY }
func (s *spriteNode) SetAnchor(x, y float64) { s.anchorX, s.anchorY = x, y }

// Destroy detaches the sprite. The texture is shared and is never destroyed
// here.
func (s *spriteNode) Destroy() {
	if !s.destroyBase() {
		return
	}
	s.tex = nil
}
