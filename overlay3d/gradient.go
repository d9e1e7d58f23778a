package overlay3d

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/phanxgames/prism"
)

// overlayGradient implements prism.Gradient. The geometry is kept in the
// owning object's local space; a device-space gg brush is built per
// composite because gg samples brushes in pixmap coordinates.
type overlayGradient struct {
	kind prism.GradientKind

	// Linear: (x0, y0) to (x1, y1). Radial: center (x0, y0), radii r0, r1.
	x0, y0, x1, y1 float64
	r0, r1         float64

	stops     []prism.GradientStop
	destroyed bool
}

func newLinearGradient(x0, y0, x1, y1 float64, stops []prism.GradientStop) *overlayGradient {
	return &overlayGradient{
		kind: prism.GradientLinear,
		x0:   x0, y0: y0, x1: x1, y1: y1,
		stops: append([]prism.GradientStop(nil), stops...),
	}
}

func newRadialGradient(cx, cy, r0, r1 float64, stops []prism.GradientStop) *overlayGradient {
	return &overlayGradient{
		kind: prism.GradientRadial,
		x0:   cx, y0: cy, r0: r0, r1: r1,
		stops: append([]prism.GradientStop(nil), stops...),
	}
}

func (g *overlayGradient) Kind() prism.GradientKind { return g.kind }

func (g *overlayGradient) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	g.stops = nil
}

// deviceBrush maps the gradient geometry through world and bakes alpha into
// the stop colors. Radial radii scale by the matrix's uniform-scale
// estimate, an approximation under non-uniform scale.
func (g *overlayGradient) deviceBrush(world gg.Matrix, alpha float64) gg.Brush {
	switch g.kind {
	case prism.GradientRadial:
		c := world.TransformPoint(gg.Pt(g.x0, g.y0))
		s := scaleEstimate(world)
		b := gg.NewRadialGradientBrush(c.X, c.Y, g.r0*s, g.r1*s)
		for _, stop := range g.stops {
			b.AddColorStop(stop.Offset, stopColor(stop, alpha))
		}
		return b
	default:
		p0 := world.TransformPoint(gg.Pt(g.x0, g.y0))
		p1 := world.TransformPoint(gg.Pt(g.x1, g.y1))
		b := gg.NewLinearGradientBrush(p0.X, p0.Y, p1.X, p1.Y)
		for _, stop := range g.stops {
			b.AddColorStop(stop.Offset, stopColor(stop, alpha))
		}
		return b
	}
}

func stopColor(stop prism.GradientStop, alpha float64) gg.RGBA {
	c := stop.Color
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A * alpha}
}

// scaleEstimate is the uniform-scale factor of m, sqrt of the absolute
// determinant of its linear part.
func scaleEstimate(m gg.Matrix) float64 {
	det := m.A*m.E - m.B*m.D
	return math.Sqrt(math.Abs(det))
}
