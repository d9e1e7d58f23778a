package overlay3d

import (
	"log"
	"math"

	"github.com/gogpu/gg"

	"github.com/phanxgames/prism"
)

// surfaceOp is one recorded drawing call, replayed against the stage's
// drawing surface at composite time. The surface's world transform is
// already installed on ctx when an op runs; world and alpha are passed for
// ops that need device-space data (brushes, stroke widths).
type surfaceOp func(ctx *gg.Context, world gg.Matrix, alpha float64)

// surfaceElement implements prism.Graphics as a retained list of canvas
// calls. Path-defining ops append to the list and flip the path-started
// flag; Fill and Stroke record a finalize op and reset the flag. The whole
// list replays on every composite.
type surfaceElement struct {
	element
	ops         []surfaceOp
	pathStarted bool
}

func newSurface() *surfaceElement {
	s := &surfaceElement{}
	elementDefaults(&s.element, s)
	return s
}

func (s *surfaceElement) record(op surfaceOp) {
	s.ops = append(s.ops, op)
	s.pathStarted = true
}

func (s *surfaceElement) Rect(x, y, w, h float64) prism.Graphics {
	s.record(func(ctx *gg.Context, _ gg.Matrix, _ float64) {
		ctx.DrawRectangle(x, y, w, h)
	})
	return s
}

func (s *surfaceElement) RoundRect(x, y, w, h, radius float64) prism.Graphics {
	s.record(func(ctx *gg.Context, _ gg.Matrix, _ float64) {
		ctx.DrawRoundedRectangle(x, y, w, h, radius)
	})
	return s
}

func (s *surfaceElement) Circle(cx, cy, r float64) prism.Graphics {
	s.record(func(ctx *gg.Context, _ gg.Matrix, _ float64) {
		ctx.DrawCircle(cx, cy, r)
	})
	return s
}

func (s *surfaceElement) Ellipse(cx, cy, rx, ry float64) prism.Graphics {
	s.record(func(ctx *gg.Context, _ gg.Matrix, _ float64) {
		ctx.DrawEllipse(cx, cy, rx, ry)
	})
	return s
}

func (s *surfaceElement) Poly(points []prism.Vec2, closed bool) prism.Graphics {
	if len(points) == 0 {
		return s
	}
	pts := append([]prism.Vec2(nil), points...)
	s.record(func(ctx *gg.Context, _ gg.Matrix, _ float64) {
		ctx.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			ctx.LineTo(p.X, p.Y)
		}
		if closed {
			ctx.ClosePath()
		}
	})
	return s
}

func (s *surfaceElement) MoveTo(x, y float64) prism.Graphics {
	s.record(func(ctx *gg.Context, _ gg.Matrix, _ float64) {
		ctx.MoveTo(x, y)
	})
	return s
}

func (s *surfaceElement) LineTo(x, y float64) prism.Graphics {
	started := s.pathStarted
	s.record(func(ctx *gg.Context, _ gg.Matrix, _ float64) {
		if !started {
			ctx.MoveTo(x, y)
			return
		}
		ctx.LineTo(x, y)
	})
	return s
}

func (s *surfaceElement) Arc(cx, cy, r, startAngle, endAngle float64) prism.Graphics {
	started := s.pathStarted
	s.record(func(ctx *gg.Context, _ gg.Matrix, _ float64) {
		if started {
			// Canvas semantics: a line connects the current point to the
			// arc's start.
			ctx.LineTo(cx+r*math.Cos(startAngle), cy+r*math.Sin(startAngle))
		}
		ctx.DrawArc(cx, cy, r, startAngle, endAngle)
	})
	return s
}

func (s *surfaceElement) ClosePath() prism.Graphics {
	if !s.pathStarted {
		return s
	}
	s.record(func(ctx *gg.Context, _ gg.Matrix, _ float64) {
		ctx.ClosePath()
	})
	return s
}

// Fill consumes the pending path. Texture fills are not representable on
// this surface: the path is still consumed but nothing is drawn.
func (s *surfaceElement) Fill(style prism.FillStyle) prism.Graphics {
	if !s.pathStarted {
		return s
	}
	s.pathStarted = false

	if style.Texture != nil {
		s.ops = append(s.ops, func(ctx *gg.Context, _ gg.Matrix, _ float64) {
			ctx.ClearPath()
		})
		return s
	}

	grad, _ := style.Gradient.(*overlayGradient)
	c := style.Color
	s.ops = append(s.ops, func(ctx *gg.Context, world gg.Matrix, alpha float64) {
		if grad != nil && !grad.destroyed {
			ctx.SetFillBrush(grad.deviceBrush(world, alpha))
			defer ctx.SetFillBrush(nil)
		} else {
			ctx.SetRGBA(c.R, c.G, c.B, c.A*alpha)
		}
		if err := ctx.Fill(); err != nil {
			log.Printf("prism: overlay fill: %v", err)
		}
	})
	return s
}

// Stroke consumes the pending path. A zero or negative width strokes at 1.
// Widths are given in local units; the device width follows the world
// transform's scale.
func (s *surfaceElement) Stroke(style prism.StrokeStyle) prism.Graphics {
	if !s.pathStarted {
		return s
	}
	s.pathStarted = false

	width := style.Width
	if width <= 0 {
		width = 1
	}
	c := style.Color
	s.ops = append(s.ops, func(ctx *gg.Context, world gg.Matrix, alpha float64) {
		ctx.SetRGBA(c.R, c.G, c.B, c.A*alpha)
		ctx.SetLineWidth(width * scaleEstimate(world))
		if err := ctx.Stroke(); err != nil {
			log.Printf("prism: overlay stroke: %v", err)
		}
	})
	return s
}

// Clear discards the pending path and all recorded content.
func (s *surfaceElement) Clear() prism.Graphics {
	s.ops = nil
	s.pathStarted = false
	return s
}

func (s *surfaceElement) Destroy() {
	if !s.destroyShared() {
		return
	}
	s.ops = nil
	s.pathStarted = false
}

// replay runs the recorded ops with the element's world transform active.
func (s *surfaceElement) replay(ctx *gg.Context, world gg.Matrix, alpha float64) {
	if len(s.ops) == 0 {
		return
	}
	ctx.Push()
	ctx.SetTransform(world)
	ctx.ClearPath()
	for _, op := range s.ops {
		op(ctx, world, alpha)
	}
	ctx.ClearPath()
	ctx.Pop()
}
