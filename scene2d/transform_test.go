package scene2d

import (
	"math"
	"testing"

	"github.com/phanxgames/prism"
)

const epsilon = 1e-9

func nearly(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestLocalTransformTranslate(t *testing.T) {
	g := newGraphics()
	g.SetPosition(10, -5)

	m := localTransform(&g.node, 0, 0)
	x, y := applyAffine(m, 0, 0)
	if !nearly(x, 10) || !nearly(y, -5) {
		t.Errorf("origin maps to (%v, %v), want (10, -5)", x, y)
	}
}

func TestLocalTransformScaleRotate(t *testing.T) {
	g := newGraphics()
	g.SetScale(2, 3)
	g.SetRotation(math.Pi / 2)

	// Scale applies before rotation: (1, 0) -> (2, 0) -> (0, 2).
	m := localTransform(&g.node, 0, 0)
	x, y := applyAffine(m, 1, 0)
	if !nearly(x, 0) || !nearly(y, 2) {
		t.Errorf("(1, 0) maps to (%v, %v), want (0, 2)", x, y)
	}
}

func TestLocalTransformPivot(t *testing.T) {
	g := newGraphics()
	g.SetPosition(100, 100)
	g.SetRotation(math.Pi)

	// With the pivot at (5, 5), the pivot point itself must land exactly
	// on the object's position regardless of rotation.
	m := localTransform(&g.node, 5, 5)
	x, y := applyAffine(m, 5, 5)
	if !nearly(x, 100) || !nearly(y, 100) {
		t.Errorf("pivot maps to (%v, %v), want (100, 100)", x, y)
	}
}

func TestMulAffineComposition(t *testing.T) {
	parent := newGraphics()
	parent.SetPosition(10, 0)
	child := newGraphics()
	child.SetPosition(0, 5)

	pm := localTransform(&parent.node, 0, 0)
	cm := localTransform(&child.node, 0, 0)
	world := mulAffine(pm, cm)

	x, y := applyAffine(world, 0, 0)
	if !nearly(x, 10) || !nearly(y, 5) {
		t.Errorf("composed origin = (%v, %v), want (10, 5)", x, y)
	}
}

func TestMulAffineIdentity(t *testing.T) {
	m := affine{2, 0.5, -1, 3, 7, -2}
	got := mulAffine(identityAffine, m)
	if got != m {
		t.Errorf("identity * m = %v, want %v", got, m)
	}
	got = mulAffine(m, identityAffine)
	if got != m {
		t.Errorf("m * identity = %v, want %v", got, m)
	}
}

func TestTransformAABB(t *testing.T) {
	g := newGraphics()
	g.SetRotation(math.Pi / 2)
	m := localTransform(&g.node, 0, 0)

	r := transformAABB(m, prism.Rect{Width: 10, Height: 20})
	if !nearly(r.X, -20) || !nearly(r.Y, 0) {
		t.Errorf("rotated AABB origin = (%v, %v), want (-20, 0)", r.X, r.Y)
	}
	if !nearly(r.Width, 20) || !nearly(r.Height, 10) {
		t.Errorf("rotated AABB size = %v x %v, want 20 x 10", r.Width, r.Height)
	}
}
