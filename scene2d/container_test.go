package scene2d

import (
	"testing"

	"github.com/phanxgames/prism"
)

func newTestTree() (prism.Container, []prism.DisplayObject) {
	f := factory2d{}
	c := f.NewContainer()
	kids := []prism.DisplayObject{
		f.NewGraphics(),
		f.NewContainer(),
		f.NewGraphics(),
	}
	for _, k := range kids {
		c.AddChild(k)
	}
	return c, kids
}

func TestContainerAddChild(t *testing.T) {
	c, kids := newTestTree()
	if c.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", c.NumChildren())
	}
	for i, k := range kids {
		if c.ChildIndex(k) != i {
			t.Errorf("ChildIndex(kids[%d]) = %d", i, c.ChildIndex(k))
		}
	}
}

func TestContainerReparenting(t *testing.T) {
	f := factory2d{}
	a := f.NewContainer()
	b := f.NewContainer()
	child := f.NewGraphics()

	a.AddChild(child)
	b.AddChild(child)

	if a.NumChildren() != 0 {
		t.Errorf("old parent still holds the child: NumChildren = %d", a.NumChildren())
	}
	if b.ChildIndex(child) != 0 {
		t.Errorf("new parent ChildIndex = %d, want 0", b.ChildIndex(child))
	}
}

func TestContainerReaddSameContainer(t *testing.T) {
	c, kids := newTestTree()
	c.AddChild(kids[0])

	if c.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d after re-add, want 3", c.NumChildren())
	}
	// Re-adding relocates to the end rather than duplicating.
	if c.ChildIndex(kids[0]) != 2 {
		t.Errorf("ChildIndex = %d, want 2", c.ChildIndex(kids[0]))
	}
	seen := 0
	for _, child := range c.Children() {
		if child == kids[0] {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("child appears %d times, want exactly once", seen)
	}
}

func TestContainerAddChildAt(t *testing.T) {
	c, kids := newTestTree()
	extra := factory2d{}.NewGraphics()
	c.AddChildAt(extra, 1)

	want := []prism.DisplayObject{kids[0], extra, kids[1], kids[2]}
	got := c.Children()
	if len(got) != len(want) {
		t.Fatalf("len(Children) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Children()[%d] is the wrong object", i)
		}
	}
}

func TestContainerRemoveChild(t *testing.T) {
	c, kids := newTestTree()
	c.RemoveChild(kids[1])
	if c.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", c.NumChildren())
	}
	if c.ChildIndex(kids[1]) != -1 {
		t.Error("removed child still reports an index")
	}
	// Removed object stays usable and can be re-added.
	c.AddChild(kids[1])
	if c.ChildIndex(kids[1]) != 2 {
		t.Errorf("re-added child index = %d, want 2", c.ChildIndex(kids[1]))
	}
}

func TestContainerRemoveChildWrongParentPanics(t *testing.T) {
	f := factory2d{}
	a := f.NewContainer()
	b := f.NewContainer()
	child := f.NewGraphics()
	a.AddChild(child)

	defer func() {
		if recover() == nil {
			t.Fatal("RemoveChild on a non-parent did not panic")
		}
	}()
	b.RemoveChild(child)
}

func TestContainerRemoveChildAt(t *testing.T) {
	c, kids := newTestTree()
	got := c.RemoveChildAt(2)
	if got != kids[2] {
		t.Error("RemoveChildAt returned the wrong object")
	}
	if c.NumChildren() != 2 {
		t.Errorf("NumChildren = %d, want 2", c.NumChildren())
	}
}

func TestContainerRemoveChildren(t *testing.T) {
	c, kids := newTestTree()
	c.RemoveChildren()
	if c.NumChildren() != 0 {
		t.Fatalf("NumChildren = %d, want 0", c.NumChildren())
	}
	// Children are detached, not destroyed.
	c.AddChild(kids[0])
	if c.NumChildren() != 1 {
		t.Error("detached child could not be re-added")
	}
}

func TestContainerSetChildIndex(t *testing.T) {
	c, kids := newTestTree()
	c.SetChildIndex(kids[0], 2)

	want := []prism.DisplayObject{kids[1], kids[2], kids[0]}
	for i, w := range want {
		if c.Children()[i] != w {
			t.Errorf("after SetChildIndex, Children()[%d] is wrong", i)
		}
	}
}

func TestContainerDestroyCascades(t *testing.T) {
	c, kids := newTestTree()
	c.Destroy()
	if c.NumChildren() != 0 {
		t.Errorf("destroyed container still has %d children", c.NumChildren())
	}
	// Destroyed children refuse new parents only through their destroyed
	// flag at render time; tree bookkeeping must already be cleared.
	for i, k := range kids {
		if nodeOf(k).parent != nil {
			t.Errorf("kids[%d] still has a parent after cascade destroy", i)
		}
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	f := factory2d{}
	objs := []prism.DisplayObject{
		f.NewContainer(),
		f.NewGraphics(),
		f.NewSprite(nil),
		f.NewText("x", prism.TextStyle{FontFamily: "test-grid", FontSize: 16}),
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

func TestNodeDefaults(t *testing.T) {
	g := factory2d{}.NewGraphics()
	if x, y := g.Position(); x != 0 || y != 0 {
		t.Errorf("Position = %v, %v", x, y)
	}
	if sx, sy := g.Scale(); sx != 1 || sy != 1 {
		t.Errorf("Scale = %v, %v, want 1, 1", sx, sy)
	}
	if g.Alpha() != 1 {
		t.Errorf("Alpha = %v, want 1", g.Alpha())
	}
	if !g.Visible() {
		t.Error("new object is not visible")
	}
	if g.Blend() != prism.BlendNormal {
		t.Errorf("Blend = %v, want BlendNormal", g.Blend())
	}
}

func TestForeignObjectPanics(t *testing.T) {
	c := factory2d{}.NewContainer()
	defer func() {
		if recover() == nil {
			t.Fatal("adding a foreign display object did not panic")
		}
	}()
	c.AddChild(foreignObject{})
}

// foreignObject simulates a display object from another backend.
type foreignObject struct{ prism.DisplayObject }
