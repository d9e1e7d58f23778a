package overlay3d

import (
	"testing"

	"github.com/phanxgames/prism"
)

func TestWrapperAddRemove(t *testing.T) {
	c := newWrapper()
	a := newSurface()
	b := newSurface()
	c.AddChild(a)
	c.AddChild(b)

	if c.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", c.NumChildren())
	}
	if c.ChildIndex(b) != 1 {
		t.Errorf("ChildIndex(b) = %d, want 1", c.ChildIndex(b))
	}

	c.RemoveChild(a)
	if c.NumChildren() != 1 || c.ChildIndex(a) != -1 {
		t.Error("RemoveChild left stale bookkeeping")
	}
}

func TestWrapperReparenting(t *testing.T) {
	p1 := newWrapper()
	p2 := newWrapper()
	child := newSurface()

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("child left in its old parent")
	}
	if p2.ChildIndex(child) != 0 {
		t.Error("child missing from its new parent")
	}
}

func TestWrapperReaddSameWrapper(t *testing.T) {
	c := newWrapper()
	a := newSurface()
	b := newSurface()
	c.AddChild(a)
	c.AddChild(b)
	c.AddChild(a)

	if c.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d after re-add, want 2", c.NumChildren())
	}
	if c.ChildIndex(a) != 1 {
		t.Errorf("ChildIndex = %d, want 1 (relocated to the end)", c.ChildIndex(a))
	}
	seen := 0
	for _, child := range c.Children() {
		if child == prism.DisplayObject(a) {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("child appears %d times, want exactly once", seen)
	}
}

func TestWrapperDestroyIsIdempotent(t *testing.T) {
	objs := []prism.DisplayObject{
		newWrapper(),
		newSurface(),
		newImage(nil),
		newText("x", prism.TextStyle{FontFamily: "unregistered", FontSize: 10}),
	}
	for i, o := range objs {
		o.Destroy()
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("objs[%d]: second Destroy panicked: %v", i, r)
				}
			}()
			o.Destroy()
		}()
	}
}

func TestWrapperSetChildIndex(t *testing.T) {
	c := newWrapper()
	kids := []prism.DisplayObject{newSurface(), newSurface(), newSurface()}
	for _, k := range kids {
		c.AddChild(k)
	}
	c.SetChildIndex(kids[2], 0)

	want := []prism.DisplayObject{kids[2], kids[0], kids[1]}
	for i, w := range want {
		if c.Children()[i] != w {
			t.Errorf("Children()[%d] is wrong after SetChildIndex", i)
		}
	}
}

func TestWrapperDestroyCascades(t *testing.T) {
	c := newWrapper()
	child := newSurface()
	c.AddChild(child)
	c.Destroy()

	if c.NumChildren() != 0 {
		t.Error("destroyed wrapper still holds children")
	}
	if child.elem().parent != nil {
		t.Error("cascade destroy left a dangling parent pointer")
	}
}

func TestForeignObjectPanics(t *testing.T) {
	c := newWrapper()
	defer func() {
		if recover() == nil {
			t.Fatal("adding a foreign display object did not panic")
		}
	}()
	c.AddChild(foreignObject{})
}

type foreignObject struct{ prism.DisplayObject }
