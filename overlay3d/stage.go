package overlay3d

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"math"

	"github.com/gogpu/gg"

	"github.com/phanxgames/prism"
)

// Stage composites an overlay element tree into an image for the host
// renderer to layer over its own output. It owns the drawing surface; one
// Stage should be reused across frames.
//
// A Stage does not own the tree. Layout and Composite take the root each
// call, the way the 2D backend's Renderer does.
type Stage struct {
	w, h int
	ctx  *gg.Context
}

// NewStage allocates a compositing surface of w by h pixels.
func NewStage(w, h int) (*Stage, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("overlay3d: stage size %dx%d is not positive", w, h)
	}
	ctx := gg.NewContext(w, h)
	if ctx == nil {
		return nil, fmt.Errorf("overlay3d: cannot allocate a %dx%d drawing surface", w, h)
	}
	return &Stage{w: w, h: h, ctx: ctx}, nil
}

// Size returns the stage dimensions in pixels.
func (st *Stage) Size() (w, h int) { return st.w, st.h }

// Layout runs a measurement pass over the tree. Text elements resolve their
// fonts and record measured dimensions here; until the first pass their
// Width and Height report zero. Invisible elements still lay out, only
// destroyed ones are skipped.
func (st *Stage) Layout(root prism.DisplayObject) {
	if root == nil {
		return
	}
	e := elemOf(root)
	if e.destroyed {
		return
	}
	if t, ok := root.(*textElement); ok {
		t.layout()
	}
	if w, ok := root.(*wrapperElement); ok {
		for _, child := range w.children {
			st.Layout(child)
		}
	}
}

// Composite renders the tree into the stage surface and returns the result.
// The returned image aliases the surface and is overwritten by the next
// Composite call; copy it to retain.
func (st *Stage) Composite(root prism.DisplayObject) *image.RGBA {
	st.ctx.Clear()
	if root != nil {
		st.composite(root, gg.Identity(), 1, st.ctx, nil)
	}
	return rgbaImage(st.ctx)
}

// composite applies the element's local transform and alpha on top of the
// parent's, then draws directly or detours through an offscreen surface
// when the element carries a mask or an enabled filter. skip suppresses one
// object: a mask source attached into the tree is consumed by the mask
// composite instead of being drawn as content.
func (st *Stage) composite(d prism.DisplayObject, parentM gg.Matrix, parentAlpha float64, ctx *gg.Context, skip prism.DisplayObject) {
	if d == skip {
		return
	}
	e := elemOf(d)
	if e.destroyed || !e.visible || e.alpha <= 0 {
		return
	}
	px, py := pivotOf(d)
	world := parentM.Multiply(e.localMatrix(px, py))
	alpha := parentAlpha * e.alpha

	if needsOffscreen(d, e) {
		st.compositeOffscreen(d, e, world, alpha, ctx)
		return
	}
	st.compositeContent(d, world, alpha, ctx, skip)
}

func (st *Stage) compositeContent(d prism.DisplayObject, world gg.Matrix, alpha float64, ctx *gg.Context, skip prism.DisplayObject) {
	st.drawDirect(d, world, alpha, ctx)
	if w, ok := d.(*wrapperElement); ok {
		for _, child := range w.children {
			st.composite(child, world, alpha, ctx, skip)
		}
	}
}

func needsOffscreen(d prism.DisplayObject, e *element) bool {
	for _, f := range e.filters {
		if of, ok := f.(*overlayFilter); ok && of.Enabled() {
			return true
		}
	}
	return maskOf(d) != nil
}

// maskOf returns the live mask attached to d, or nil.
func maskOf(d prism.DisplayObject) *overlayMask {
	w, ok := d.(*wrapperElement)
	if !ok || w.mask == nil {
		return nil
	}
	m, ok := w.mask.(*overlayMask)
	if !ok || m.destroyed || m.source == nil {
		return nil
	}
	return m
}

// compositeOffscreen renders d's subtree onto a stage-sized scratch
// surface, applies the mask and filter chain on the CPU, and merges the
// result with the element's accumulated alpha and blend mode.
func (st *Stage) compositeOffscreen(d prism.DisplayObject, e *element, world gg.Matrix, alpha float64, ctx *gg.Context) {
	m := maskOf(d)
	var skip prism.DisplayObject
	if m != nil {
		skip = m.source
	}

	octx := gg.NewContext(st.w, st.h)
	st.compositeContent(d, world, 1, octx, skip)
	img := rgbaImage(octx)

	if m != nil {
		mctx := gg.NewContext(st.w, st.h)
		// The mask source's transform is relative to the masked wrapper.
		st.composite(m.source, world, 1, mctx, nil)
		applyMask(img, rgbaImage(mctx), m.inverted)
	}

	for _, f := range e.filters {
		of, ok := f.(*overlayFilter)
		if !ok || !of.Enabled() {
			continue
		}
		img = of.applier.Apply(img)
	}

	ctx.Push()
	ctx.Identity()
	ctx.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		Opacity:   alpha,
		BlendMode: ggBlend(e.blend),
	})
	ctx.Pop()
}

// applyMask multiplies dst's channels by the mask's alpha coverage, or by
// its complement when inverted.
func applyMask(dst, mask *image.RGBA, inverted bool) {
	n := len(dst.Pix)
	if len(mask.Pix) < n {
		n = len(mask.Pix)
	}
	for p := 0; p+3 < n; p += 4 {
		ma := int(mask.Pix[p+3])
		if inverted {
			ma = 255 - ma
		}
		dst.Pix[p] = uint8(int(dst.Pix[p]) * ma / 255)
		dst.Pix[p+1] = uint8(int(dst.Pix[p+1]) * ma / 255)
		dst.Pix[p+2] = uint8(int(dst.Pix[p+2]) * ma / 255)
		dst.Pix[p+3] = uint8(int(dst.Pix[p+3]) * ma / 255)
	}
}

// drawDirect draws a single element's own content. Wrappers draw nothing
// themselves.
func (st *Stage) drawDirect(d prism.DisplayObject, world gg.Matrix, alpha float64, ctx *gg.Context) {
	switch o := d.(type) {
	case *surfaceElement:
		o.replay(ctx, world, alpha)
	case *imageElement:
		st.drawImage(o, world, alpha, ctx)
	case *textElement:
		st.drawText(o, world, alpha, ctx)
	}
}

// drawImage draws a sprite at its transformed origin, scaled to device
// size. Rotation is approximated by position and scale only; the overlay
// raster path has no rotated image sampling.
func (st *Stage) drawImage(s *imageElement, world gg.Matrix, alpha float64, ctx *gg.Context) {
	// gg treats a zero Opacity as "unset" and draws fully opaque, so a
	// transparent tint must skip the draw entirely.
	opacity := s.tint.A * alpha
	if opacity <= 0 {
		return
	}
	sx := math.Hypot(world.A, world.D)
	sy := math.Hypot(world.B, world.E)
	dw := int(math.Round(s.Width() * sx))
	dh := int(math.Round(s.Height() * sy))
	buf := s.deviceBuf(dw, dh)
	if buf == nil {
		return
	}
	origin := world.TransformPoint(gg.Pt(0, 0))

	ctx.Push()
	ctx.Identity()
	ctx.DrawImageEx(buf, gg.DrawImageOptions{
		X:         origin.X,
		Y:         origin.Y,
		Opacity:   opacity,
		BlendMode: ggBlend(s.blend),
	})
	ctx.Pop()
}

// drawText draws the laid-out lines: drop shadow first, then stroke, then
// fill. Glyphs follow the world transform's translation and scale; rotation
// is approximated by position only. Unregistered families measure but draw
// nothing.
func (st *Stage) drawText(t *textElement, world gg.Matrix, alpha float64, ctx *gg.Context) {
	t.layout()
	if t.face == nil || len(t.lines) == 0 {
		return
	}
	sy := math.Hypot(world.B, world.E)
	face := t.face
	ascent := face.Metrics().Ascent
	if sy != 1 {
		face = resolveFace(t.style.FontFamily, t.fontSize()*sy)
		if face == nil {
			return
		}
	}
	lh := t.lineHeight()
	sty := t.style

	ctx.Push()
	ctx.Identity()
	ctx.SetFont(face)
	for i, line := range t.lines {
		if line == "" {
			continue
		}
		local := gg.Pt(t.lineOffset(line), float64(i)*lh+ascent)
		p := world.TransformPoint(local)

		if sh := sty.DropShadow; sh != nil && sh.Alpha > 0 {
			dx := math.Cos(sh.Angle) * sh.Distance * sy
			dy := math.Sin(sh.Angle) * sh.Distance * sy
			c := sh.Color
			ctx.SetRGBA(c.R, c.G, c.B, c.A*sh.Alpha*alpha)
			ctx.DrawString(line, p.X+dx, p.Y+dy)
		}
		if stk := sty.Stroke; stk != nil && stk.Width > 0 {
			w := stk.Width * sy
			c := stk.Color
			ctx.SetRGBA(c.R, c.G, c.B, c.A*alpha)
			for _, dir := range strokeDirs {
				ctx.DrawString(line, p.X+dir[0]*w, p.Y+dir[1]*w)
			}
		}
		c := sty.Fill
		ctx.SetRGBA(c.R, c.G, c.B, c.A*alpha)
		ctx.DrawString(line, p.X, p.Y)
	}
	ctx.Pop()
}

// strokeDirs are the eight offset directions used to fake a text outline by
// redrawing the glyphs around the fill.
var strokeDirs = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{0.707, 0.707}, {-0.707, 0.707}, {0.707, -0.707}, {-0.707, -0.707},
}

// pivotOf returns the anchor point in local pixels for anchored element
// types.
func pivotOf(d prism.DisplayObject) (float64, float64) {
	switch o := d.(type) {
	case *imageElement:
		ax, ay := o.Anchor()
		return ax * o.Width(), ay * o.Height()
	case *textElement:
		ax, ay := o.Anchor()
		return ax * o.Width(), ay * o.Height()
	}
	return 0, 0
}

var warnedBlend = map[prism.BlendMode]bool{}

// ggBlend maps a prism.BlendMode to the gg blend used for image merges.
// Path fills and text always composite source-over; gg exposes no blend
// selection on those. Unsupported modes fall back to normal, warned once
// per mode.
func ggBlend(b prism.BlendMode) gg.BlendMode {
	switch b {
	case prism.BlendNormal:
		return gg.BlendNormal
	case prism.BlendMultiply:
		return gg.BlendMultiply
	case prism.BlendScreen:
		return gg.BlendScreen
	default:
		if !warnedBlend[b] {
			warnedBlend[b] = true
			log.Printf("prism: blend mode %d is unavailable in the overlay backend, using normal", b)
		}
		return gg.BlendNormal
	}
}

// rgbaImage returns the context's pixels as an RGBA image, converting when
// the surface uses another representation.
func rgbaImage(ctx *gg.Context) *image.RGBA {
	img := ctx.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}
