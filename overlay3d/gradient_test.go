package overlay3d

import (
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/phanxgames/prism"
)

func TestScaleEstimate(t *testing.T) {
	if got := scaleEstimate(gg.Identity()); math.Abs(got-1) > 1e-9 {
		t.Errorf("identity scale = %v, want 1", got)
	}
	got := scaleEstimate(gg.Scale(2, 3))
	if math.Abs(got-math.Sqrt(6)) > 1e-9 {
		t.Errorf("scale(2,3) estimate = %v, want sqrt(6)", got)
	}
	// Rotation preserves area, so the estimate stays 1.
	got = scaleEstimate(gg.Rotate(math.Pi / 3))
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("rotation estimate = %v, want 1", got)
	}
}

func TestGradientStopsAreCopied(t *testing.T) {
	stops := []prism.GradientStop{
		{Offset: 0, Color: prism.RGB(0x000000)},
		{Offset: 1, Color: prism.RGB(0xffffff)},
	}
	g := newLinearGradient(0, 0, 10, 0, stops)
	stops[0].Color = prism.RGB(0xff0000)
	if g.stops[0].Color != prism.RGB(0x000000) {
		t.Error("gradient aliases the caller's stop slice")
	}
}

func TestStopColorAppliesAlpha(t *testing.T) {
	c := stopColor(prism.GradientStop{Color: prism.Color{R: 1, G: 0.5, B: 0, A: 0.8}}, 0.5)
	if math.Abs(c.A-0.4) > 1e-9 {
		t.Errorf("stop alpha = %v, want 0.4", c.A)
	}
	if c.R != 1 || c.G != 0.5 {
		t.Error("stop RGB must pass through unchanged")
	}
}
