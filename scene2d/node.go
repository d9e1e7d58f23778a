package scene2d

import (
	"github.com/phanxgames/prism"
)

// node carries the display-object state shared by every scene2d object.
// Concrete types embed it and add their own resources; Destroy is
// implemented per type because resource release differs.
type node struct {
	x, y           float64
	rotation       float64
	scaleX, scaleY float64
	alpha          float64
	visible        bool
	eventMode      prism.EventMode
	cursor         string
	blend          prism.BlendMode
	filters        []prism.Filter

	parent    *containerNode
	self      prism.DisplayObject // the concrete object embedding this node
	destroyed bool
}

// backed is the internal interface every scene2d display object satisfies.
// Container operations use it to reach the shared node state, and to reject
// objects created by another backend's factory.
type backed interface {
	base() *node
}

func (n *node) base() *node { return n }

// nodeDefaults sets the field values shared by all constructors.
func nodeDefaults(n *node, self prism.DisplayObject) {
	n.scaleX = 1
	n.scaleY = 1
	n.alpha = 1
	n.visible = true
	n.eventMode = prism.EventModeAuto
	n.self = self
}

func (n *node) Position() (x, y float64) { return n.x, n.y }
func (n *node) SetPosition(x, y float64) { n.x, n.y = x, y }

func (n *node) Rotation() float64           { return n.rotation }
func (n *node) SetRotation(radians float64) { n.rotation = radians }

func (n *node) Scale() (x, y float64) { return n.scaleX, n.scaleY }
func (n *node) SetScale(x, y float64) { n.scaleX, n.scaleY = x, y }

func (n *node) Alpha() float64     { return n.alpha }
func (n *node) SetAlpha(a float64) { n.alpha = a }

func (n *node) Visible() bool     { return n.visible }
func (n *node) SetVisible(v bool) { n.visible = v }

func (n *node) EventMode() prism.EventMode     { return n.eventMode }
func (n *node) SetEventMode(m prism.EventMode) { n.eventMode = m }

func (n *node) Cursor() string     { return n.cursor }
func (n *node) SetCursor(c string) { n.cursor = c }

func (n *node) Blend() prism.BlendMode     { return n.blend }
func (n *node) SetBlend(b prism.BlendMode) { n.blend = b }

func (n *node) Filters() []prism.Filter { return n.filters }
func (n *node) SetFilters(fs ...prism.Filter) {
	n.filters = append(n.filters[:0:0], fs...)
}

// detach removes this object from its parent, if any.
func (n *node) detach() {
	if n.parent == nil {
		return
	}
	n.parent.removeChildPtr(n.self)
	n.parent = nil
}

// destroyBase detaches the object and clears shared state. Concrete Destroy
// implementations call it first, then release their own resources. Returns
// false when the object was already destroyed, so repeated Destroy is safe.
func (n *node) destroyBase() bool {
	if n.destroyed {
		return false
	}
	n.destroyed = true
	n.detach()
	n.filters = nil
	return true
}

// nodeOf extracts the shared node from a contract value. Panics when the
// object was created by a different backend's factory — attaching across
// backends is a programmer error.
func nodeOf(d prism.DisplayObject) *node {
	b, ok := d.(backed)
	if !ok {
		panic("scene2d: display object was not created by the scene2d factory")
	}
	return b.base()
}
