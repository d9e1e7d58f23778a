package scene2d

import (
	"github.com/phanxgames/prism"
)

// mask2d clips a container's subtree to the alpha of a source display
// object. The source is not part of the scene tree; its transform is
// relative to the masked container.
type mask2d struct {
	source    prism.DisplayObject
	inverted  bool
	destroyed bool
}

func newMask(source prism.DisplayObject, inverted bool) *mask2d {
	// Reject cross-backend sources up front rather than at render time.
	nodeOf(source)
	return &mask2d{source: source, inverted: inverted}
}

func (m *mask2d) Source() prism.DisplayObject { return m.source }
func (m *mask2d) Inverted() bool              { return m.inverted }
func (m *mask2d) SetInverted(on bool)         { m.inverted = on }

// Destroy detaches the mask. The source object is owned by the caller and
// is not destroyed here.
func (m *mask2d) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.source = nil
}
