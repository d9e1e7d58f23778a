package scene2d

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/prism"
)

// whiteImage backs solid-color triangle fills. DrawTriangles samples a
// sub-image one pixel in from the edge so bilinear filtering never bleeds.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawCmd is one committed fill or stroke: pre-triangulated geometry in the
// object's local space plus the image it samples.
type drawCmd struct {
	vertices []ebiten.Vertex
	indices  []uint16
	src      *ebiten.Image // whiteSubImage for solid color fills
	fillRule ebiten.FillRule
}

// graphicsNode implements prism.Graphics. Path-defining calls build up the
// pending vector.Path; Fill and Stroke triangulate it into a drawCmd and
// reset it. The committed command list is replayed by the render walk.
//
// vector.Path values cannot be copied, so the pending path lives here
// directly and is replaced wholesale on reset.
type graphicsNode struct {
	node
	path    vector.Path
	hasPath bool
	curX    float64
	curY    float64
	cmds    []drawCmd
}

func newGraphics() *graphicsNode {
	g := &graphicsNode{}
	nodeDefaults(&g.node, g)
	return g
}

func (g *graphicsNode) resetPath() {
	g.path = vector.Path{}
	g.hasPath = false
}

// startOrLineTo connects the pending path to (x, y): MoveTo when no path is
// started, LineTo otherwise. Mirrors canvas-2D semantics for shape calls
// appended after explicit path segments.
func (g *graphicsNode) startOrLineTo(x, y float64) {
	if !g.hasPath {
		g.path.MoveTo(float32(x), float32(y))
		g.hasPath = true
	} else {
		g.path.LineTo(float32(x), float32(y))
	}
	g.curX, g.curY = x, y
}

func (g *graphicsNode) Rect(x, y, w, h float64) prism.Graphics {
	g.path.MoveTo(float32(x), float32(y))
	g.path.LineTo(float32(x+w), float32(y))
	g.path.LineTo(float32(x+w), float32(y+h))
	g.path.LineTo(float32(x), float32(y+h))
	g.path.Close()
	g.hasPath = true
	g.curX, g.curY = x, y
	return g
}

func (g *graphicsNode) RoundRect(x, y, w, h, radius float64) prism.Graphics {
	r := radius
	if max := math.Min(w, h) / 2; r > max {
		r = max
	}
	if r <= 0 {
		return g.Rect(x, y, w, h)
	}
	g.path.MoveTo(float32(x+r), float32(y))
	g.path.LineTo(float32(x+w-r), float32(y))
	g.path.Arc(float32(x+w-r), float32(y+r), float32(r), -math.Pi/2, 0, vector.Clockwise)
	g.path.LineTo(float32(x+w), float32(y+h-r))
	g.path.Arc(float32(x+w-r), float32(y+h-r), float32(r), 0, math.Pi/2, vector.Clockwise)
	g.path.LineTo(float32(x+r), float32(y+h))
	g.path.Arc(float32(x+r), float32(y+h-r), float32(r), math.Pi/2, math.Pi, vector.Clockwise)
	g.path.LineTo(float32(x), float32(y+r))
	g.path.Arc(float32(x+r), float32(y+r), float32(r), math.Pi, 3*math.Pi/2, vector.Clockwise)
	g.path.Close()
	g.hasPath = true
	g.curX, g.curY = x+r, y
	return g
}

func (g *graphicsNode) Circle(cx, cy, r float64) prism.Graphics {
	g.path.MoveTo(float32(cx+r), float32(cy))
	g.path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	g.path.Close()
	g.hasPath = true
	g.curX, g.curY = cx+r, cy
	return g
}

// ellipseK is the cubic Bezier circle approximation constant.
const ellipseK = 0.5522847498307936

func (g *graphicsNode) Ellipse(cx, cy, rx, ry float64) prism.Graphics {
	ox := rx * ellipseK
	oy := ry * ellipseK
	g.path.MoveTo(float32(cx+rx), float32(cy))
	g.path.CubicTo(float32(cx+rx), float32(cy+oy), float32(cx+ox), float32(cy+ry), float32(cx), float32(cy+ry))
	g.path.CubicTo(float32(cx-ox), float32(cy+ry), float32(cx-rx), float32(cy+oy), float32(cx-rx), float32(cy))
	g.path.CubicTo(float32(cx-rx), float32(cy-oy), float32(cx-ox), float32(cy-ry), float32(cx), float32(cy-ry))
	g.path.CubicTo(float32(cx+ox), float32(cy-ry), float32(cx+rx), float32(cy-oy), float32(cx+rx), float32(cy))
	g.path.Close()
	g.hasPath = true
	g.curX, g.curY = cx+rx, cy
	return g
}

func (g *graphicsNode) Poly(points []prism.Vec2, closed bool) prism.Graphics {
	if len(points) == 0 {
		return g
	}
	g.path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		g.path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		g.path.Close()
	}
	g.hasPath = true
	last := points[len(points)-1]
	g.curX, g.curY = last.X, last.Y
	return g
}

func (g *graphicsNode) MoveTo(x, y float64) prism.Graphics {
	g.path.MoveTo(float32(x), float32(y))
	g.hasPath = true
	g.curX, g.curY = x, y
	return g
}

func (g *graphicsNode) LineTo(x, y float64) prism.Graphics {
	g.startOrLineTo(x, y)
	return g
}

func (g *graphicsNode) Arc(cx, cy, r, startAngle, endAngle float64) prism.Graphics {
	startX := cx + r*math.Cos(startAngle)
	startY := cy + r*math.Sin(startAngle)
	g.startOrLineTo(startX, startY)
	g.path.Arc(float32(cx), float32(cy), float32(r), float32(startAngle), float32(endAngle), vector.Clockwise)
	g.curX = cx + r*math.Cos(endAngle)
	g.curY = cy + r*math.Sin(endAngle)
	return g
}

func (g *graphicsNode) ClosePath() prism.Graphics {
	if g.hasPath {
		g.path.Close()
	}
	return g
}

// Fill consumes the pending path, triangulates it, and commits a fill
// command. With no pending path this is a no-op, not an error.
func (g *graphicsNode) Fill(style prism.FillStyle) prism.Graphics {
	if !g.hasPath {
		return g
	}
	vs, is := g.path.AppendVerticesAndIndicesForFilling(nil, nil)
	g.commit(vs, is, style, ebiten.FillRuleNonZero)
	g.resetPath()
	return g
}

// Stroke consumes the pending path and commits a stroke command. A zero
// style width strokes at 1 pixel.
func (g *graphicsNode) Stroke(style prism.StrokeStyle) prism.Graphics {
	if !g.hasPath {
		return g
	}
	w := style.Width
	if w <= 0 {
		w = 1
	}
	opts := &vector.StrokeOptions{
		Width:      float32(w),
		LineCap:    vector.LineCapButt,
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	}
	vs, is := g.path.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	g.commit(vs, is, prism.FillStyle{Color: style.Color}, ebiten.FillRuleFillAll)
	g.resetPath()
	return g
}

// Clear discards pending path state and all committed content.
func (g *graphicsNode) Clear() prism.Graphics {
	g.resetPath()
	g.cmds = g.cmds[:0]
	return g
}

func (g *graphicsNode) Destroy() {
	if !g.destroyBase() {
		return
	}
	g.resetPath()
	g.cmds = nil
}

// commit resolves the fill style onto the triangulated geometry and appends
// a draw command. Texture wins over gradient, gradient over color.
func (g *graphicsNode) commit(vs []ebiten.Vertex, is []uint16, style prism.FillStyle, rule ebiten.FillRule) {
	cmd := drawCmd{vertices: vs, indices: is, src: whiteSubImage, fillRule: rule}

	switch {
	case style.Texture != nil:
		tex, ok := style.Texture.(*texture2d)
		if !ok || tex.img == nil {
			return
		}
		// Sample the texture at the vertex's local position, wrapped into
		// the texture's bounds.
		b := tex.img.Bounds()
		tw := float32(b.Dx())
		th := float32(b.Dy())
		for i := range vs {
			vs[i].SrcX = float32(b.Min.X) + wrapCoord(vs[i].DstX, tw)
			vs[i].SrcY = float32(b.Min.Y) + wrapCoord(vs[i].DstY, th)
			vs[i].ColorR = 1
			vs[i].ColorG = 1
			vs[i].ColorB = 1
			vs[i].ColorA = 1
		}
		cmd.src = tex.img
	case style.Gradient != nil:
		grad, ok := style.Gradient.(*gradient2d)
		if !ok {
			return
		}
		lut := grad.ensureLUT()
		// Map each vertex through the gradient geometry onto the 1D lookup
		// strip. Interiors interpolate linearly between vertices, which is
		// exact for linear gradients and an approximation for radial ones.
		for i := range vs {
			t := grad.project(float64(vs[i].DstX), float64(vs[i].DstY))
			vs[i].SrcX = float32(t*(gradientLUTSize-1)) + 0.5
			vs[i].SrcY = 0.5
			vs[i].ColorR = 1
			vs[i].ColorG = 1
			vs[i].ColorB = 1
			vs[i].ColorA = 1
		}
		cmd.src = lut
	default:
		c := style.Color
		for i := range vs {
			vs[i].SrcX = 1
			vs[i].SrcY = 1
			vs[i].ColorR = float32(c.R)
			vs[i].ColorG = float32(c.G)
			vs[i].ColorB = float32(c.B)
			vs[i].ColorA = float32(c.A)
		}
	}

	g.cmds = append(g.cmds, cmd)
}

// wrapCoord wraps v into [0, size).
func wrapCoord(v, size float32) float32 {
	if size <= 0 {
		return 0
	}
	w := float32(math.Mod(float64(v), float64(size)))
	if w < 0 {
		w += size
	}
	return w
}

// localBounds returns the axis-aligned bounds of all committed geometry in
// local space, and false when nothing has been committed.
func (g *graphicsNode) localBounds() (prism.Rect, bool) {
	if len(g.cmds) == 0 {
		return prism.Rect{}, false
	}
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for i := range g.cmds {
		for _, v := range g.cmds[i].vertices {
			minX = math.Min(minX, float64(v.DstX))
			minY = math.Min(minY, float64(v.DstY))
			maxX = math.Max(maxX, float64(v.DstX))
			maxY = math.Max(maxY, float64(v.DstY))
		}
	}
	if minX > maxX {
		return prism.Rect{}, false
	}
	return prism.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}
