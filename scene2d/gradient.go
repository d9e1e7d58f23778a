package scene2d

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/prism"
)

// gradientLUTSize is the resolution of the baked 1D gradient strip.
const gradientLUTSize = 256

// gradient2d implements prism.Gradient by baking the color ramp into a
// gradientLUTSize x 1 texture strip. Fill commands map vertices onto the
// strip through project, so the GPU interpolates the ramp for free.
//
// Stop interpolation is delegated to gg's gradient brushes rather than
// reimplemented here.
type gradient2d struct {
	kind  prism.GradientKind
	x0    float64
	y0    float64
	x1    float64 // linear: segment end; radial: unused
	y1    float64
	r0    float64 // radial only
	r1    float64
	stops []prism.GradientStop

	lut       *ebiten.Image
	destroyed bool
}

func newLinearGradient(x0, y0, x1, y1 float64, stops []prism.GradientStop) *gradient2d {
	return &gradient2d{
		kind:  prism.GradientLinear,
		x0:    x0,
		y0:    y0,
		x1:    x1,
		y1:    y1,
		stops: append([]prism.GradientStop(nil), stops...),
	}
}

func newRadialGradient(cx, cy, r0, r1 float64, stops []prism.GradientStop) *gradient2d {
	return &gradient2d{
		kind:  prism.GradientRadial,
		x0:    cx,
		y0:    cy,
		r0:    r0,
		r1:    r1,
		stops: append([]prism.GradientStop(nil), stops...),
	}
}

func (g *gradient2d) Kind() prism.GradientKind { return g.kind }

func (g *gradient2d) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	if g.lut != nil {
		g.lut.Deallocate()
		g.lut = nil
	}
	g.stops = nil
}

// ensureLUT bakes the color ramp on first use.
func (g *gradient2d) ensureLUT() *ebiten.Image {
	if g.lut != nil {
		return g.lut
	}
	// A horizontal gg linear gradient across the strip evaluates the stops
	// for us, including sorting and edge clamping.
	brush := gg.NewLinearGradientBrush(0, 0, gradientLUTSize-1, 0)
	for _, s := range g.stops {
		brush.AddColorStop(s.Offset, gg.RGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A})
	}
	img := image.NewNRGBA(image.Rect(0, 0, gradientLUTSize, 1))
	for x := 0; x < gradientLUTSize; x++ {
		c := brush.ColorAt(float64(x), 0)
		i := x * 4
		img.Pix[i+0] = uint8(clamp01(c.R) * 255)
		img.Pix[i+1] = uint8(clamp01(c.G) * 255)
		img.Pix[i+2] = uint8(clamp01(c.B) * 255)
		img.Pix[i+3] = uint8(clamp01(c.A) * 255)
	}
	g.lut = ebiten.NewImageFromImage(img)
	return g.lut
}

// project maps a point in the graphics object's local space to a position
// along the ramp in [0, 1].
func (g *gradient2d) project(x, y float64) float64 {
	switch g.kind {
	case prism.GradientLinear:
		dx := g.x1 - g.x0
		dy := g.y1 - g.y0
		lenSq := dx*dx + dy*dy
		if lenSq == 0 {
			return 0
		}
		return clamp01(((x-g.x0)*dx + (y-g.y0)*dy) / lenSq)
	case prism.GradientRadial:
		dist := math.Hypot(x-g.x0, y-g.y0)
		if g.r1 == g.r0 {
			return 0
		}
		return clamp01((dist - g.r0) / (g.r1 - g.r0))
	}
	return 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
