package scene2d

import (
	"github.com/phanxgames/prism"
)

// containerNode implements prism.Container over an ordered child slice.
// Child order is render order.
type containerNode struct {
	node
	children []prism.DisplayObject
	hitShape prism.HitShape
	mask     prism.Mask
}

func newContainer() *containerNode {
	c := &containerNode{}
	nodeDefaults(&c.node, c)
	return c
}

// AddChild appends child to this container. If child already has a parent,
// it is removed from that parent first, so a child is a member of at most
// one container and appears in a child list exactly once.
func (c *containerNode) AddChild(child prism.DisplayObject) {
	if child == nil {
		panic("scene2d: cannot add nil child")
	}
	cn := nodeOf(child)
	if cn.parent != nil {
		cn.parent.removeChildPtr(child)
	}
	cn.parent = c
	c.children = append(c.children, child)
}

// AddChildAt inserts child at the given index, with the same reparenting
// behavior as AddChild.
func (c *containerNode) AddChildAt(child prism.DisplayObject, index int) {
	if child == nil {
		panic("scene2d: cannot add nil child")
	}
	cn := nodeOf(child)
	if cn.parent != nil {
		cn.parent.removeChildPtr(child)
	}
	if index < 0 || index > len(c.children) {
		panic("scene2d: child index out of range")
	}
	cn.parent = c
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = child
}

// RemoveChild detaches child from this container. Panics if child's parent
// is not this container.
func (c *containerNode) RemoveChild(child prism.DisplayObject) {
	cn := nodeOf(child)
	if cn.parent != c {
		panic("scene2d: child's parent is not this container")
	}
	c.removeChildPtr(child)
	cn.parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (c *containerNode) RemoveChildAt(index int) prism.DisplayObject {
	if index < 0 || index >= len(c.children) {
		panic("scene2d: child index out of range")
	}
	child := c.children[index]
	copy(c.children[index:], c.children[index+1:])
	c.children[len(c.children)-1] = nil
	c.children = c.children[:len(c.children)-1]
	nodeOf(child).parent = nil
	return child
}

// RemoveChildren detaches all children. Children are NOT destroyed.
func (c *containerNode) RemoveChildren() {
	for _, child := range c.children {
		nodeOf(child).parent = nil
	}
	c.children = c.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (c *containerNode) Children() []prism.DisplayObject {
	return c.children
}

func (c *containerNode) NumChildren() int {
	return len(c.children)
}

// ChildIndex returns the index of child among this container's children, or
// -1 if child is not a member.
func (c *containerNode) ChildIndex(child prism.DisplayObject) int {
	for i, cc := range c.children {
		if cc == child {
			return i
		}
	}
	return -1
}

// SetChildIndex moves child to a new index among its siblings.
func (c *containerNode) SetChildIndex(child prism.DisplayObject, index int) {
	if nodeOf(child).parent != c {
		panic("scene2d: child's parent is not this container")
	}
	if index < 0 || index >= len(c.children) {
		panic("scene2d: child index out of range")
	}
	oldIndex := c.ChildIndex(child)
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(c.children[oldIndex:], c.children[oldIndex+1:index+1])
	} else {
		copy(c.children[index+1:], c.children[index:oldIndex])
	}
	c.children[index] = child
}

func (c *containerNode) HitShape() prism.HitShape     { return c.hitShape }
func (c *containerNode) SetHitShape(s prism.HitShape) { c.hitShape = s }

func (c *containerNode) Mask() prism.Mask     { return c.mask }
func (c *containerNode) SetMask(m prism.Mask) { c.mask = m }

// Destroy detaches the container from its parent and recursively destroys
// all descendants. The mask's source is not destroyed — masks sit outside
// the tree and follow their own lifecycle.
func (c *containerNode) Destroy() {
	if !c.destroyBase() {
		return
	}
	for _, child := range c.children {
		nodeOf(child).parent = nil
		child.Destroy()
	}
	c.children = nil
	c.hitShape = nil
	c.mask = nil
}

// removeChildPtr removes child from c.children without clearing the child's
// parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (c *containerNode) removeChildPtr(child prism.DisplayObject) {
	for i, cc := range c.children {
		if cc == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			return
		}
	}
}
