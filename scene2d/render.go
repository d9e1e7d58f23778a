package scene2d

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/prism"
)

// Renderer draws a display tree built by this backend's factory into an
// ebiten.Image. It owns the offscreen targets used for masked and filtered
// subtrees, so a single Renderer should be reused across frames.
type Renderer struct {
	rtPool renderTexturePool
	vsBuf  []ebiten.Vertex
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws root and all its visible descendants onto dst. Objects created
// by another backend's factory panic, same as the container operations.
func (r *Renderer) Render(root prism.DisplayObject, dst *ebiten.Image) {
	if root == nil || dst == nil {
		return
	}
	r.render(root, identityAffine, 1, dst, nil)
}

// render applies d's local transform and alpha on top of the parent's, then
// either draws directly into dst or detours through an offscreen target when
// the node carries a mask or an enabled filter. skip suppresses one object:
// a mask source that appears in the tree is consumed by the mask composite
// instead of being drawn as content.
func (r *Renderer) render(d prism.DisplayObject, parent affine, parentAlpha float64, dst *ebiten.Image, skip prism.DisplayObject) {
	if d == skip {
		return
	}
	n := nodeOf(d)
	if n.destroyed || !n.visible || n.alpha <= 0 {
		return
	}
	px, py := pivotOf(d)
	world := mulAffine(parent, localTransform(n, px, py))
	alpha := parentAlpha * n.alpha

	if needsOffscreen(d, n) {
		r.renderOffscreen(d, n, world, alpha, dst)
		return
	}
	r.renderContent(d, world, alpha, dst, skip)
}

// renderContent draws d's own content with base as the content-space
// transform and recurses into children.
func (r *Renderer) renderContent(d prism.DisplayObject, base affine, alpha float64, dst *ebiten.Image, skip prism.DisplayObject) {
	r.drawDirect(d, base, alpha, dst)
	if c, ok := d.(*containerNode); ok {
		for _, child := range c.children {
			r.render(child, base, alpha, dst, skip)
		}
	}
}

// needsOffscreen reports whether d must render through an offscreen target:
// any enabled filter, or a live mask on a container.
func needsOffscreen(d prism.DisplayObject, n *node) bool {
	for _, f := range n.filters {
		if f2, ok := f.(*filter2d); ok && f2.Enabled() {
			return true
		}
	}
	if m := maskOf(d); m != nil {
		return true
	}
	return false
}

// maskOf returns the live mask attached to d, or nil.
func maskOf(d prism.DisplayObject) *mask2d {
	c, ok := d.(*containerNode)
	if !ok || c.mask == nil {
		return nil
	}
	m, ok := c.mask.(*mask2d)
	if !ok || m.destroyed || m.source == nil {
		return nil
	}
	return m
}

// renderOffscreen renders d's subtree into a pooled target, applies the mask
// and filter chain there, and composites the result onto dst with the node's
// world alpha and blend mode.
func (r *Renderer) renderOffscreen(d prism.DisplayObject, n *node, world affine, alpha float64, dst *ebiten.Image) {
	bounds := subtreeBounds(d)
	padding := filterChainPadding(n.filters)
	bounds.X -= float64(padding)
	bounds.Y -= float64(padding)
	bounds.Width += float64(padding * 2)
	bounds.Height += float64(padding * 2)

	w := int(math.Ceil(bounds.Width))
	h := int(math.Ceil(bounds.Height))
	if w <= 0 || h <= 0 {
		return
	}

	// Target pixel (0,0) corresponds to content-space (bounds.X, bounds.Y),
	// so shift the composite transform by the world-space equivalent.
	adjusted := world
	adjusted[4] += world[0]*bounds.X + world[2]*bounds.Y
	adjusted[5] += world[1]*bounds.X + world[3]*bounds.Y

	offset := affine{1, 0, 0, 1, -bounds.X, -bounds.Y}

	m := maskOf(d)
	var skip prism.DisplayObject
	if m != nil {
		skip = m.source
	}

	// Subtree renders at full alpha; the node's accumulated alpha applies
	// once at composite time.
	rt := r.rtPool.Acquire(w, h)
	r.renderContent(d, offset, 1, rt, skip)
	result := rt

	if m != nil {
		maskRT := r.rtPool.Acquire(w, h)
		r.render(m.source, offset, 1, maskRT, nil)

		var op ebiten.DrawImageOptions
		if m.inverted {
			// Keep only the parts the mask does NOT cover.
			op.Blend = ebiten.BlendDestinationOut
		} else {
			op.Blend = ebitenBlend(prism.BlendMask)
		}
		result.DrawImage(maskRT, &op)
		r.rtPool.Release(maskRT)
	}

	for _, f := range n.filters {
		f2, ok := f.(*filter2d)
		if !ok || !f2.Enabled() {
			continue
		}
		next := r.rtPool.Acquire(w, h)
		f2.applier.Apply(result, next)
		r.rtPool.Release(result)
		result = next
	}

	var op ebiten.DrawImageOptions
	op.GeoM = geoMFrom(adjusted)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = ebitenBlend(n.blend)
	dst.DrawImage(result, &op)
	r.rtPool.Release(result)
}

// drawDirect draws a single object's own content. Containers draw nothing
// themselves.
func (r *Renderer) drawDirect(d prism.DisplayObject, m affine, alpha float64, dst *ebiten.Image) {
	switch o := d.(type) {
	case *graphicsNode:
		r.drawGraphics(o, m, alpha, dst)
	case *spriteNode:
		r.drawSprite(o, m, alpha, dst)
	case *textNode:
		r.drawText(o, m, alpha, dst)
	}
}

// drawGraphics replays the committed fill/stroke commands, transforming the
// stored local-space vertices into dst space. DrawTriangles has no GeoM, so
// vertices are transformed on the CPU through a scratch buffer.
func (r *Renderer) drawGraphics(g *graphicsNode, m affine, alpha float64, dst *ebiten.Image) {
	blend := ebitenBlend(g.blend)
	a := float32(alpha)
	for i := range g.cmds {
		cmd := &g.cmds[i]
		if cap(r.vsBuf) < len(cmd.vertices) {
			r.vsBuf = make([]ebiten.Vertex, len(cmd.vertices))
		}
		vs := r.vsBuf[:len(cmd.vertices)]
		copy(vs, cmd.vertices)
		for j := range vs {
			x, y := applyAffine(m, float64(vs[j].DstX), float64(vs[j].DstY))
			vs[j].DstX = float32(x)
			vs[j].DstY = float32(y)
			vs[j].ColorA *= a
		}
		op := &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
			FillRule:  cmd.fillRule,
		}
		op.Blend = blend
		dst.DrawTriangles(vs, cmd.indices, cmd.src, op)
	}
}

func (r *Renderer) drawSprite(s *spriteNode, m affine, alpha float64, dst *ebiten.Image) {
	tex, ok := s.tex.(*texture2d)
	if !ok || tex.destroyed || tex.img == nil {
		return
	}
	w := s.Width()
	h := s.Height()
	if w <= 0 || h <= 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/tex.w, h/tex.h)
	op.GeoM.Concat(geoMFrom(m))
	op.ColorScale.Scale(float32(s.tint.R), float32(s.tint.G), float32(s.tint.B), 1)
	op.ColorScale.ScaleAlpha(float32(s.tint.A * alpha))
	op.Blend = ebitenBlend(s.blend)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(tex.img, &op)
}

// drawText renders the laid-out lines: drop shadow first, then stroke, then
// fill. Measurement-only fonts (unregistered families) draw nothing.
func (r *Renderer) drawText(t *textNode, m affine, alpha float64, dst *ebiten.Image) {
	t.layout()
	f, ok := t.font.(*TTFFont)
	if !ok || len(t.lines) == 0 {
		return
	}
	face := f.Face()
	blend := ebitenBlend(t.blend)
	lh := t.lineHeight()
	base := geoMFrom(m)
	st := t.style

	for i, line := range t.lines {
		if line == "" {
			continue
		}
		x := t.lineOffset(line)
		y := float64(i) * lh

		if sh := st.DropShadow; sh != nil && sh.Alpha > 0 {
			// The shadow's blur radius is not rendered per-glyph; the
			// offset pass alone approximates it.
			dx := math.Cos(sh.Angle) * sh.Distance
			dy := math.Sin(sh.Angle) * sh.Distance
			drawTextLine(dst, line, face, base, x+dx, y+dy, sh.Color, sh.Alpha*alpha, blend)
		}
		if stk := st.Stroke; stk != nil && stk.Width > 0 {
			for _, dir := range strokeDirs {
				drawTextLine(dst, line, face, base, x+dir[0]*stk.Width, y+dir[1]*stk.Width, stk.Color, alpha, blend)
			}
		}
		drawTextLine(dst, line, face, base, x, y, st.Fill, alpha, blend)
	}
}

// strokeDirs are the eight offset directions used to fake a text outline by
// redrawing the glyphs around the fill.
var strokeDirs = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{0.707, 0.707}, {-0.707, 0.707}, {0.707, -0.707}, {-0.707, -0.707},
}

func drawTextLine(dst *ebiten.Image, s string, face text.Face, base ebiten.GeoM, x, y float64, c prism.Color, alpha float64, blend ebiten.Blend) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(base)
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(c.A * alpha))
	op.Blend = blend
	text.Draw(dst, s, face, op)
}

// pivotOf returns the anchor point in local pixels for anchored object types.
func pivotOf(d prism.DisplayObject) (float64, float64) {
	switch o := d.(type) {
	case *spriteNode:
		ax, ay := o.Anchor()
		return ax * o.Width(), ay * o.Height()
	case *textNode:
		ax, ay := o.Anchor()
		return ax * o.Width(), ay * o.Height()
	}
	return 0, 0
}

// geoMFrom converts a [6]float64 affine matrix to an ebiten.GeoM.
func geoMFrom(m affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// --- Subtree bounds ---

// subtreeBounds computes the bounding rectangle of an object and all its
// descendants in the object's content space.
func subtreeBounds(d prism.DisplayObject) prism.Rect {
	var r prism.Rect
	first := true
	boundsWalk(d, identityAffine, &r, &first)
	return r
}

func boundsWalk(d prism.DisplayObject, m affine, bounds *prism.Rect, first *bool) {
	var aabb prism.Rect
	var hasAABB bool

	switch o := d.(type) {
	case *graphicsNode:
		if local, ok := o.localBounds(); ok {
			aabb = transformAABB(m, local)
			hasAABB = true
		}
	case *spriteNode:
		w, h := o.Width(), o.Height()
		if w > 0 && h > 0 {
			aabb = transformAABB(m, prism.Rect{Width: w, Height: h})
			hasAABB = true
		}
	case *textNode:
		w, h := o.Width(), o.Height()
		if w > 0 && h > 0 {
			aabb = transformAABB(m, prism.Rect{Width: w, Height: h})
			hasAABB = true
		}
	}

	if hasAABB {
		if *first {
			*bounds = aabb
			*first = false
		} else {
			*bounds = rectUnion(*bounds, aabb)
		}
	}

	if c, ok := d.(*containerNode); ok {
		for _, child := range c.children {
			n := nodeOf(child)
			if n.destroyed || !n.visible {
				continue
			}
			px, py := pivotOf(child)
			childM := mulAffine(m, localTransform(n, px, py))
			boundsWalk(child, childM, bounds, first)
		}
	}
}

// transformAABB maps the corners of local through m and returns their
// axis-aligned bounds.
func transformAABB(m affine, local prism.Rect) prism.Rect {
	x0, y0 := applyAffine(m, local.X, local.Y)
	x1, y1 := applyAffine(m, local.X+local.Width, local.Y)
	x2, y2 := applyAffine(m, local.X, local.Y+local.Height)
	x3, y3 := applyAffine(m, local.X+local.Width, local.Y+local.Height)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return prism.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// rectUnion returns the smallest Rect containing both a and b.
func rectUnion(a, b prism.Rect) prism.Rect {
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X+a.Width, b.X+b.Width)
	maxY := math.Max(a.Y+a.Height, b.Y+b.Height)
	return prism.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
