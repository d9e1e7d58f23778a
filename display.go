package prism

// DisplayObject is the minimal shape every renderable must satisfy. All
// concrete objects are produced by a backend Factory; application code never
// constructs them directly.
//
// Alpha and scale are independent of visibility: an invisible object keeps
// its alpha and scale for when it becomes visible again.
//
// Destroy releases backend-native resources and detaches the object from its
// parent. Calling Destroy a second time is safe and does nothing. Using an
// object after Destroy is undefined behavior and not normalized across
// backends.
type DisplayObject interface {
	Position() (x, y float64)
	SetPosition(x, y float64)

	// Rotation is in radians, clockwise.
	Rotation() float64
	SetRotation(radians float64)

	// Scale factors default to 1.
	Scale() (x, y float64)
	SetScale(x, y float64)

	// Alpha is in [0, 1] and multiplies down the tree.
	Alpha() float64
	SetAlpha(a float64)

	Visible() bool
	SetVisible(v bool)

	EventMode() EventMode
	SetEventMode(m EventMode)

	// Cursor is a hint for the hosting application ("pointer", "grab", ...).
	Cursor() string
	SetCursor(c string)

	Blend() BlendMode
	SetBlend(b BlendMode)

	Filters() []Filter
	SetFilters(fs ...Filter)

	Destroy()
}

// Container is a display object that holds other display objects. Child
// order is render order and is significant.
//
// A child appears in the children list exactly once. AddChild on a child
// that is already attached somewhere relocates it (implicit remove from the
// old parent) rather than duplicating it.
//
// Removal from a container does not destroy the child; the caller remains
// responsible for calling Destroy. Destroying a container destroys its
// children recursively.
type Container interface {
	DisplayObject

	// AddChild appends child. If child already has a parent it is moved.
	// Panics if child is nil.
	AddChild(child DisplayObject)

	// AddChildAt inserts child at the given index, with the same
	// reparenting behavior as AddChild. Panics if index is out of range.
	AddChildAt(child DisplayObject, index int)

	// RemoveChild detaches child. Panics if child is not a member.
	RemoveChild(child DisplayObject)

	// RemoveChildAt removes and returns the child at the given index.
	// Panics if index is out of range.
	RemoveChildAt(index int) DisplayObject

	// RemoveChildren detaches all children without destroying them.
	RemoveChildren()

	// Children returns the child list in render order. The returned slice
	// MUST NOT be mutated by the caller.
	Children() []DisplayObject

	NumChildren() int

	// ChildIndex returns the index of child, or -1 if child is not a
	// member of this container.
	ChildIndex(child DisplayObject) int

	// SetChildIndex moves child to a new index among its siblings.
	// Panics if child is not a member or index is out of range.
	SetChildIndex(child DisplayObject, index int)

	// HitShape is an optional custom hit-testing region. Nil means the
	// backend's default bounds test applies.
	HitShape() HitShape
	SetHitShape(s HitShape)

	// Mask is an optional clip mask applied to this container's subtree.
	Mask() Mask
	SetMask(m Mask)
}
