package overlay3d

import (
	"github.com/phanxgames/prism"
)

// overlayMask clips a wrapper's subtree to the alpha of a source display
// object. The source is not part of the element tree; its transform is
// relative to the masked wrapper.
type overlayMask struct {
	source    prism.DisplayObject
	inverted  bool
	destroyed bool
}

func newMask(source prism.DisplayObject, inverted bool) *overlayMask {
	// Reject cross-backend sources up front rather than at composite time.
	elemOf(source)
	return &overlayMask{source: source, inverted: inverted}
}

func (m *overlayMask) Source() prism.DisplayObject { return m.source }
func (m *overlayMask) Inverted() bool              { return m.inverted }
func (m *overlayMask) SetInverted(on bool)         { m.inverted = on }

// Destroy detaches the mask. The source object is owned by the caller and
// is not destroyed here.
func (m *overlayMask) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.source = nil
}
