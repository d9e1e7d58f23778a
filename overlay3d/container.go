package overlay3d

import (
	"github.com/phanxgames/prism"
)

// wrapperElement implements prism.Container as the overlay's grouping
// element. Child order is composite order.
type wrapperElement struct {
	element
	children []prism.DisplayObject
	hitShape prism.HitShape
	mask     prism.Mask
}

func newWrapper() *wrapperElement {
	w := &wrapperElement{}
	elementDefaults(&w.element, w)
	return w
}

// AddChild appends child to this wrapper. A child already attached
// elsewhere is detached first, so it is a member of at most one wrapper and
// appears in a child list exactly once.
func (w *wrapperElement) AddChild(child prism.DisplayObject) {
	if child == nil {
		panic("overlay3d: cannot add nil child")
	}
	ce := elemOf(child)
	if ce.parent != nil {
		ce.parent.removeChildPtr(child)
	}
	ce.parent = w
	w.children = append(w.children, child)
}

// AddChildAt inserts child at the given index, with the same reparenting
// behavior as AddChild.
func (w *wrapperElement) AddChildAt(child prism.DisplayObject, index int) {
	if child == nil {
		panic("overlay3d: cannot add nil child")
	}
	ce := elemOf(child)
	if ce.parent != nil {
		ce.parent.removeChildPtr(child)
	}
	if index < 0 || index > len(w.children) {
		panic("overlay3d: child index out of range")
	}
	ce.parent = w
	w.children = append(w.children, nil)
	copy(w.children[index+1:], w.children[index:])
	w.children[index] = child
}

// RemoveChild detaches child from this wrapper. Panics if child's parent is
// not this wrapper.
func (w *wrapperElement) RemoveChild(child prism.DisplayObject) {
	ce := elemOf(child)
	if ce.parent != w {
		panic("overlay3d: child's parent is not this container")
	}
	w.removeChildPtr(child)
	ce.parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (w *wrapperElement) RemoveChildAt(index int) prism.DisplayObject {
	if index < 0 || index >= len(w.children) {
		panic("overlay3d: child index out of range")
	}
	child := w.children[index]
	copy(w.children[index:], w.children[index+1:])
	w.children[len(w.children)-1] = nil
	w.children = w.children[:len(w.children)-1]
	elemOf(child).parent = nil
	return child
}

// RemoveChildren detaches all children. Children are NOT destroyed.
func (w *wrapperElement) RemoveChildren() {
	for _, child := range w.children {
		elemOf(child).parent = nil
	}
	w.children = w.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (w *wrapperElement) Children() []prism.DisplayObject {
	return w.children
}

func (w *wrapperElement) NumChildren() int {
	return len(w.children)
}

// ChildIndex returns the index of child among this wrapper's children, or
// -1 if child is not a member.
func (w *wrapperElement) ChildIndex(child prism.DisplayObject) int {
	for i, cc := range w.children {
		if cc == child {
			return i
		}
	}
	return -1
}

// SetChildIndex moves child to a new index among its siblings.
func (w *wrapperElement) SetChildIndex(child prism.DisplayObject, index int) {
	if elemOf(child).parent != w {
		panic("overlay3d: child's parent is not this container")
	}
	if index < 0 || index >= len(w.children) {
		panic("overlay3d: child index out of range")
	}
	oldIndex := w.ChildIndex(child)
	if oldIndex == index {
		return
	}
	if oldIndex < index {
		copy(w.children[oldIndex:], w.children[oldIndex+1:index+1])
	} else {
		copy(w.children[index+1:], w.children[index:oldIndex])
	}
	w.children[index] = child
}

func (w *wrapperElement) HitShape() prism.HitShape     { return w.hitShape }
func (w *wrapperElement) SetHitShape(s prism.HitShape) { w.hitShape = s }

func (w *wrapperElement) Mask() prism.Mask     { return w.mask }
func (w *wrapperElement) SetMask(m prism.Mask) { w.mask = m }

// Destroy detaches the wrapper from its parent and recursively destroys all
// descendants. The mask's source is not destroyed — masks sit outside the
// tree and follow their own lifecycle.
func (w *wrapperElement) Destroy() {
	if !w.destroyShared() {
		return
	}
	for _, child := range w.children {
		elemOf(child).parent = nil
		child.Destroy()
	}
	w.children = nil
	w.hitShape = nil
	w.mask = nil
}

// removeChildPtr removes child from w.children without clearing the child's
// parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (w *wrapperElement) removeChildPtr(child prism.DisplayObject) {
	for i, cc := range w.children {
		if cc == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
}
