package overlay3d

import (
	"github.com/gogpu/gg"

	"github.com/phanxgames/prism"
)

// element is the display-object state shared by every overlay object. The
// overlay models its tree the way the original DOM layer did: wrapper,
// surface, image, and text elements, attached to at most one parent, laid
// out by the stage and rasterized at composite time.
type element struct {
	x, y           float64
	rotation       float64
	scaleX, scaleY float64
	alpha          float64
	visible        bool
	eventMode      prism.EventMode
	cursor         string
	blend          prism.BlendMode
	filters        []prism.Filter

	parent    *wrapperElement
	self      prism.DisplayObject
	destroyed bool
}

// wrapped is satisfied by every overlay display object. Tree operations use
// it to reach shared element state and to reject objects created by the 2D
// backend's factory.
type wrapped interface {
	elem() *element
}

func (e *element) elem() *element { return e }

func elementDefaults(e *element, self prism.DisplayObject) {
	e.scaleX = 1
	e.scaleY = 1
	e.alpha = 1
	e.visible = true
	e.eventMode = prism.EventModeAuto
	e.self = self
}

func (e *element) Position() (x, y float64) { return e.x, e.y }
func (e *element) SetPosition(x, y float64) { e.x, e.y = x, y }

func (e *element) Rotation() float64           { return e.rotation }
func (e *element) SetRotation(radians float64) { e.rotation = radians }

func (e *element) Scale() (x, y float64) { return e.scaleX, e.scaleY }
func (e *element) SetScale(x, y float64) { e.scaleX, e.scaleY = x, y }

func (e *element) Alpha() float64     { return e.alpha }
func (e *element) SetAlpha(a float64) { e.alpha = a }

func (e *element) Visible() bool     { return e.visible }
func (e *element) SetVisible(v bool) { e.visible = v }

func (e *element) EventMode() prism.EventMode     { return e.eventMode }
func (e *element) SetEventMode(m prism.EventMode) { e.eventMode = m }

func (e *element) Cursor() string     { return e.cursor }
func (e *element) SetCursor(c string) { e.cursor = c }

func (e *element) Blend() prism.BlendMode     { return e.blend }
func (e *element) SetBlend(b prism.BlendMode) { e.blend = b }

func (e *element) Filters() []prism.Filter { return e.filters }
func (e *element) SetFilters(fs ...prism.Filter) {
	e.filters = append(e.filters[:0:0], fs...)
}

// detach removes this element from its parent, if any.
func (e *element) detach() {
	if e.parent == nil {
		return
	}
	e.parent.removeChildPtr(e.self)
	e.parent = nil
}

// destroyShared detaches the element and clears shared state. Returns false
// when the element was already destroyed, so repeated Destroy is safe.
func (e *element) destroyShared() bool {
	if e.destroyed {
		return false
	}
	e.destroyed = true
	e.detach()
	e.filters = nil
	return true
}

// localMatrix is the element's transform relative to its parent:
// Translate(-pivot), Scale, Rotate, Translate(x, y), applied in that order.
func (e *element) localMatrix(pivotX, pivotY float64) gg.Matrix {
	return gg.Translate(e.x, e.y).
		Multiply(gg.Rotate(e.rotation)).
		Multiply(gg.Scale(e.scaleX, e.scaleY)).
		Multiply(gg.Translate(-pivotX, -pivotY))
}

// elemOf extracts the shared element from a contract value. Panics when the
// object was created by a different backend's factory — attaching across
// backends is a programmer error.
func elemOf(d prism.DisplayObject) *element {
	w, ok := d.(wrapped)
	if !ok {
		panic("overlay3d: display object was not created by the overlay3d factory")
	}
	return w.elem()
}
