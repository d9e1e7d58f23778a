package scene2d

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/prism"
)

// filterApplier renders src into dst with an effect applied. Padding is the
// extra pixels needed around the source to accommodate the effect.
type filterApplier interface {
	Apply(src, dst *ebiten.Image)
	Padding() int
}

// filter2d implements prism.Filter by wrapping an applier. A destroyed or
// disabled filter is skipped by the render walk.
type filter2d struct {
	kind      prism.FilterKind
	enabled   bool
	applier   filterApplier
	destroyed bool
}

func newFilter(kind prism.FilterKind, applier filterApplier) *filter2d {
	return &filter2d{kind: kind, enabled: true, applier: applier}
}

func (f *filter2d) Kind() prism.FilterKind { return f.kind }
func (f *filter2d) Enabled() bool          { return f.enabled && !f.destroyed }
func (f *filter2d) SetEnabled(on bool)     { f.enabled = on }

func (f *filter2d) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	if r, ok := f.applier.(interface{ release() }); ok {
		r.release()
	}
	f.applier = nil
}

// --- Kage shader: outline ---
// The shader uses //kage:unit pixels as required by Ebitengine. Colors are
// premultiplied; the shader emits the outline color only where a transparent
// pixel has an opaque cardinal neighbor.

const outlineShaderSrc = `//kage:unit pixels
package main

var OutlineColor vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		return c
	}
	if imageSrc0At(src + vec2(1, 0)).a > 0 ||
		imageSrc0At(src + vec2(-1, 0)).a > 0 ||
		imageSrc0At(src + vec2(0, 1)).a > 0 ||
		imageSrc0At(src + vec2(0, -1)).a > 0 {
		return OutlineColor
	}
	return vec4(0)
}
`

// Lazy shader compilation (no sync.Once — prism is single-threaded). The
// error is cached so a failed environment warns once and degrades instead of
// recompiling every frame.
var (
	outlineShader    *ebiten.Shader
	outlineShaderErr error
	outlineCompiled  bool
)

func ensureOutlineShader() (*ebiten.Shader, error) {
	if !outlineCompiled {
		outlineCompiled = true
		outlineShader, outlineShaderErr = ebiten.NewShader([]byte(outlineShaderSrc))
	}
	return outlineShader, outlineShaderErr
}

// --- blur ---

// blurApplier is a Kawase iterative blur using downscale/upscale passes.
// No shader needed — bilinear filtering during DrawImage does the work.
type blurApplier struct {
	radius int
	temps  []*ebiten.Image
}

func newBlurApplier(radius float64) *blurApplier {
	r := int(math.Ceil(radius))
	if r < 0 {
		r = 0
	}
	return &blurApplier{radius: r}
}

func (f *blurApplier) Padding() int { return f.radius }

func (f *blurApplier) Apply(src, dst *ebiten.Image) {
	if f.radius <= 0 {
		var op ebiten.DrawImageOptions
		dst.DrawImage(src, &op)
		return
	}

	passes := int(math.Ceil(math.Log2(float64(f.radius))))
	if passes < 1 {
		passes = 1
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	f.ensureTemps(passes, w, h)

	// Downscale chain: each pass halves the image through bilinear
	// sampling, accumulating blur.
	cur := src
	for i := 0; i < passes; i++ {
		t := f.temps[i]
		t.Clear()
		var op ebiten.DrawImageOptions
		op.Filter = ebiten.FilterLinear
		op.GeoM.Scale(0.5, 0.5)
		t.DrawImage(cur, &op)
		cur = t
	}

	// Single upscale back to full size.
	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear
	scale := math.Pow(2, float64(passes))
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(cur, &op)
}

func (f *blurApplier) ensureTemps(passes, w, h int) {
	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}
	for i := 0; i < passes; i++ {
		w = maxInt(1, w/2)
		h = maxInt(1, h/2)
		t := f.temps[i]
		if t == nil || t.Bounds().Dx() != w || t.Bounds().Dy() != h {
			if t != nil {
				t.Deallocate()
			}
			f.temps[i] = ebiten.NewImage(w, h)
		}
	}
}

func (f *blurApplier) release() {
	for _, t := range f.temps {
		if t != nil {
			t.Deallocate()
		}
	}
	f.temps = nil
}

// --- glow ---

// glowApplier draws a blurred solid-color silhouette of the source behind
// the source itself.
type glowApplier struct {
	color      prism.Color
	blur       blurApplier
	silhouette *ebiten.Image
	blurred    *ebiten.Image
}

func newGlowApplier(c prism.Color, radius float64) *glowApplier {
	return &glowApplier{color: c, blur: *newBlurApplier(radius)}
}

func (f *glowApplier) Padding() int { return f.blur.Padding() }

func (f *glowApplier) Apply(src, dst *ebiten.Image) {
	b := src.Bounds()
	f.silhouette = ensureSized(f.silhouette, b.Dx(), b.Dy())
	f.blurred = ensureSized(f.blurred, b.Dx(), b.Dy())

	tintSilhouette(f.silhouette, src, f.color)
	f.blurred.Clear()
	f.blur.Apply(f.silhouette, f.blurred)

	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendLighter
	dst.DrawImage(f.blurred, &op)
	var over ebiten.DrawImageOptions
	dst.DrawImage(src, &over)
}

func (f *glowApplier) release() {
	f.blur.release()
	if f.silhouette != nil {
		f.silhouette.Deallocate()
		f.silhouette = nil
	}
	if f.blurred != nil {
		f.blurred.Deallocate()
		f.blurred = nil
	}
}

// --- outline ---

// outlineApplier grows a one-pixel shader outline thickness times. Requires
// the outline shader; construction falls back through newOutlineFilter when
// compilation is unavailable.
type outlineApplier struct {
	color     prism.Color
	thickness int
	uniforms  map[string]any
	shaderOp  ebiten.DrawRectShaderOptions
	pingPong  [2]*ebiten.Image
}

func (f *outlineApplier) Padding() int { return f.thickness }

func (f *outlineApplier) Apply(src, dst *ebiten.Image) {
	shader, err := ensureOutlineShader()
	if err != nil {
		var op ebiten.DrawImageOptions
		dst.DrawImage(src, &op)
		return
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	f.pingPong[0] = ensureSized(f.pingPong[0], w, h)
	f.pingPong[1] = ensureSized(f.pingPong[1], w, h)

	cur := src
	for i := 0; i < f.thickness; i++ {
		target := f.pingPong[i%2]
		if i == f.thickness-1 {
			target = dst
		} else {
			target.Clear()
		}
		f.shaderOp.Images[0] = cur
		f.shaderOp.Uniforms = f.uniforms
		target.DrawRectShader(w, h, shader, &f.shaderOp)
		cur = target
	}
}

func (f *outlineApplier) release() {
	for i, t := range f.pingPong {
		if t != nil {
			t.Deallocate()
			f.pingPong[i] = nil
		}
	}
}

// noopApplier passes the source through unchanged. It is the documented
// outline fallback: there is no visually acceptable substitute for an
// outline, so the degraded result is the unmodified source.
type noopApplier struct{}

func (noopApplier) Padding() int { return 0 }

func (noopApplier) Apply(src, dst *ebiten.Image) {
	var op ebiten.DrawImageOptions
	dst.DrawImage(src, &op)
}

// newOutlineFilter builds the outline applier, degrading to a no-op with a
// warning when the shader cannot compile in this environment.
func newOutlineFilter(c prism.Color, thickness float64) *filter2d {
	if _, err := ensureOutlineShader(); err != nil {
		log.Printf("prism: outline filter unavailable (%v), falling back to no-op", err)
		return newFilter(prism.FilterOutline, noopApplier{})
	}
	t := int(math.Ceil(thickness))
	if t < 1 {
		t = 1
	}
	a := &outlineApplier{
		color:     c,
		thickness: t,
		uniforms:  make(map[string]any, 1),
	}
	a.uniforms["OutlineColor"] = []float32{
		float32(c.R * c.A), float32(c.G * c.A), float32(c.B * c.A), float32(c.A),
	}
	return newFilter(prism.FilterOutline, a)
}

// --- drop shadow ---

// shadowApplier draws a blurred, offset, solid-color silhouette behind the
// source.
type shadowApplier struct {
	color      prism.Color
	alpha      float64
	dx, dy     float64
	blur       blurApplier
	silhouette *ebiten.Image
	blurred    *ebiten.Image
}

func newShadowApplier(c prism.Color, alpha, angle, blur, distance float64) *shadowApplier {
	return &shadowApplier{
		color: c,
		alpha: alpha,
		dx:    math.Cos(angle) * distance,
		dy:    math.Sin(angle) * distance,
		blur:  *newBlurApplier(blur),
	}
}

func (f *shadowApplier) Padding() int {
	return f.blur.Padding() + int(math.Ceil(math.Max(math.Abs(f.dx), math.Abs(f.dy))))
}

func (f *shadowApplier) Apply(src, dst *ebiten.Image) {
	b := src.Bounds()
	f.silhouette = ensureSized(f.silhouette, b.Dx(), b.Dy())
	f.blurred = ensureSized(f.blurred, b.Dx(), b.Dy())

	tintSilhouette(f.silhouette, src, f.color)
	f.blurred.Clear()
	f.blur.Apply(f.silhouette, f.blurred)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(f.dx, f.dy)
	op.ColorScale.ScaleAlpha(float32(f.alpha))
	dst.DrawImage(f.blurred, &op)
	var over ebiten.DrawImageOptions
	dst.DrawImage(src, &over)
}

func (f *shadowApplier) release() {
	f.blur.release()
	if f.silhouette != nil {
		f.silhouette.Deallocate()
		f.silhouette = nil
	}
	if f.blurred != nil {
		f.blurred.Deallocate()
		f.blurred = nil
	}
}

// --- helpers ---

// tintSilhouette fills dst with a solid color clipped to src's alpha.
func tintSilhouette(dst, src *ebiten.Image, c prism.Color) {
	dst.Fill(color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: 255,
	})
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendDestinationIn
	dst.DrawImage(src, &op)
}

// ensureSized returns img if it matches w by h, otherwise reallocates.
func ensureSized(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	if img != nil {
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// filterChainPadding sums the padding of all enabled filters in a chain.
func filterChainPadding(filters []prism.Filter) int {
	total := 0
	for _, f := range filters {
		f2, ok := f.(*filter2d)
		if !ok || !f2.Enabled() {
			continue
		}
		total += f2.applier.Padding()
	}
	return total
}
