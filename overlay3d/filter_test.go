package overlay3d

import (
	"image"
	"image/color"
	"testing"

	"github.com/phanxgames/prism"
)

func dotImage(size, cx, cy int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	img.SetRGBA(cx, cy, c)
	return img
}

func TestBlurApplierSpreads(t *testing.T) {
	src := dotImage(21, 10, 10, color.RGBA{255, 255, 255, 255})
	out := newBlurApplier(3).Apply(src)

	if out.Bounds() != src.Bounds() {
		t.Fatalf("blur changed bounds: %v", out.Bounds())
	}
	center := out.RGBAAt(10, 10).A
	neighbor := out.RGBAAt(13, 10).A
	if center == 255 {
		t.Error("blur left the center un-attenuated")
	}
	if neighbor == 0 {
		t.Error("blur did not spread alpha to neighbors")
	}
	if neighbor > center {
		t.Error("alpha increases away from the source point")
	}
}

func TestBlurApplierZeroRadius(t *testing.T) {
	src := dotImage(5, 2, 2, color.RGBA{0, 255, 0, 255})
	out := newBlurApplier(0).Apply(src)
	if out.RGBAAt(2, 2).A != 255 {
		t.Error("zero-radius blur altered the image")
	}
}

func TestGlowApplierKeepsSource(t *testing.T) {
	src := dotImage(15, 7, 7, color.RGBA{255, 0, 0, 255})
	out := newGlowApplier(prism.RGB(0x00ff00), 2).Apply(src)

	p := out.RGBAAt(7, 7)
	if p.R < 200 {
		t.Errorf("source pixel lost under the glow: %+v", p)
	}
	if out.RGBAAt(9, 7).A == 0 {
		t.Error("no glow outside the source silhouette")
	}
}

func TestShadowApplierOffsets(t *testing.T) {
	// Angle 0 with distance 4 pushes the shadow along +X.
	src := dotImage(21, 10, 10, color.RGBA{255, 255, 255, 255})
	out := newShadowApplier(prism.Color{A: 1}, 1, 0, 0, 4).Apply(src)

	if out.RGBAAt(10, 10).A == 0 {
		t.Error("source pixel missing from the shadowed output")
	}
	if out.RGBAAt(14, 10).A == 0 {
		t.Error("shadow missing at the offset position")
	}
	if out.RGBAAt(6, 10).A != 0 {
		t.Error("shadow appeared opposite the light direction")
	}
}

func TestOutlineFilterDegradesToNoop(t *testing.T) {
	f := newOutlineFilter()
	if f.Kind() != prism.FilterOutline {
		t.Errorf("Kind = %v, want FilterOutline", f.Kind())
	}
	src := dotImage(5, 2, 2, color.RGBA{255, 255, 255, 255})
	out := f.applier.Apply(src)
	if out.RGBAAt(2, 2) != src.RGBAAt(2, 2) {
		t.Error("no-op outline modified the image")
	}
}

func TestFilterEnableDisable(t *testing.T) {
	f := newFilter(prism.FilterBlur, newBlurApplier(2))
	if !f.Enabled() {
		t.Error("new filter starts disabled")
	}
	f.SetEnabled(false)
	if f.Enabled() {
		t.Error("SetEnabled(false) ignored")
	}
}
