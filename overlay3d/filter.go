package overlay3d

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/phanxgames/prism"
)

// rasterApplier is the CPU counterpart of a filter: it consumes the
// composited subtree image and returns the filtered result. Appliers run on
// premultiplied-alpha RGBA, the stdlib image convention.
type rasterApplier interface {
	Apply(src *image.RGBA) *image.RGBA
}

// overlayFilter implements prism.Filter. A disabled filter is skipped at
// composite time but keeps its applier until Destroy.
type overlayFilter struct {
	kind      prism.FilterKind
	enabled   bool
	applier   rasterApplier
	destroyed bool
}

func newFilter(kind prism.FilterKind, applier rasterApplier) *overlayFilter {
	return &overlayFilter{kind: kind, enabled: true, applier: applier}
}

func (f *overlayFilter) Kind() prism.FilterKind { return f.kind }
func (f *overlayFilter) Enabled() bool          { return f.enabled && !f.destroyed }
func (f *overlayFilter) SetEnabled(on bool)     { f.enabled = on }

func (f *overlayFilter) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	f.applier = nil
}

// --- blur ---

// blurApplier approximates a gaussian blur with three box-blur passes.
type blurApplier struct {
	radius int
}

func newBlurApplier(radius float64) *blurApplier {
	r := int(math.Ceil(radius))
	if r < 0 {
		r = 0
	}
	return &blurApplier{radius: r}
}

func (f *blurApplier) Apply(src *image.RGBA) *image.RGBA {
	if f.radius == 0 {
		return src
	}
	out := src
	for i := 0; i < 3; i++ {
		out = boxBlur(out, f.radius)
	}
	return out
}

// boxBlur runs one separable box-blur pass with the given radius.
func boxBlur(src *image.RGBA, radius int) *image.RGBA {
	b := src.Bounds()
	tmp := image.NewRGBA(b)
	dst := image.NewRGBA(b)
	blurAxis(src, tmp, radius, true)
	blurAxis(tmp, dst, radius, false)
	return dst
}

// blurAxis averages a sliding window along one axis using running sums.
func blurAxis(src, dst *image.RGBA, radius int, horizontal bool) {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()
	outer, inner := h, w
	if !horizontal {
		outer, inner = w, h
	}
	window := 2*radius + 1

	at := func(o, i int) int {
		if horizontal {
			return src.PixOffset(b.Min.X+i, b.Min.Y+o)
		}
		return src.PixOffset(b.Min.X+o, b.Min.Y+i)
	}

	for o := 0; o < outer; o++ {
		var sr, sg, sb, sa int
		// Prime the window around index 0; out-of-range samples count as
		// transparent.
		for i := -radius; i <= radius; i++ {
			if i < 0 || i >= inner {
				continue
			}
			p := at(o, i)
			sr += int(src.Pix[p])
			sg += int(src.Pix[p+1])
			sb += int(src.Pix[p+2])
			sa += int(src.Pix[p+3])
		}
		for i := 0; i < inner; i++ {
			p := at(o, i)
			dst.Pix[p] = uint8(sr / window)
			dst.Pix[p+1] = uint8(sg / window)
			dst.Pix[p+2] = uint8(sb / window)
			dst.Pix[p+3] = uint8(sa / window)

			if lead := i + radius + 1; lead < inner {
				q := at(o, lead)
				sr += int(src.Pix[q])
				sg += int(src.Pix[q+1])
				sb += int(src.Pix[q+2])
				sa += int(src.Pix[q+3])
			}
			if trail := i - radius; trail >= 0 {
				q := at(o, trail)
				sr -= int(src.Pix[q])
				sg -= int(src.Pix[q+1])
				sb -= int(src.Pix[q+2])
				sa -= int(src.Pix[q+3])
			}
		}
	}
}

// --- glow ---

// glowApplier draws a blurred, colorized silhouette of the source under the
// source itself.
type glowApplier struct {
	color prism.Color
	blur  *blurApplier
}

func newGlowApplier(c prism.Color, radius float64) *glowApplier {
	return &glowApplier{color: c, blur: newBlurApplier(radius)}
}

func (f *glowApplier) Apply(src *image.RGBA) *image.RGBA {
	halo := f.blur.Apply(silhouette(src, f.color, 0, 0))
	draw.Draw(halo, src.Bounds(), src, src.Bounds().Min, draw.Over)
	return halo
}

// --- drop shadow ---

type shadowApplier struct {
	color    prism.Color
	alpha    float64
	dx, dy   int
	blur     *blurApplier
}

func newShadowApplier(c prism.Color, alpha, angle, blur, distance float64) *shadowApplier {
	return &shadowApplier{
		color: c,
		alpha: alpha,
		dx:    int(math.Round(math.Cos(angle) * distance)),
		dy:    int(math.Round(math.Sin(angle) * distance)),
		blur:  newBlurApplier(blur),
	}
}

func (f *shadowApplier) Apply(src *image.RGBA) *image.RGBA {
	c := f.color.WithAlpha(f.color.A * f.alpha)
	shadow := f.blur.Apply(silhouette(src, c, f.dx, f.dy))
	draw.Draw(shadow, src.Bounds(), src, src.Bounds().Min, draw.Over)
	return shadow
}

// silhouette returns src's alpha channel tinted with c and offset by
// (dx, dy), premultiplied.
func silhouette(src *image.RGBA, c prism.Color, dx, dy int) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := src.Pix[src.PixOffset(x, y)+3]
			if a == 0 {
				continue
			}
			tx := x + dx
			ty := y + dy
			if tx < b.Min.X || tx >= b.Max.X || ty < b.Min.Y || ty >= b.Max.Y {
				continue
			}
			aa := float64(a) / 255 * c.A
			out.SetRGBA(tx, ty, color.RGBA{
				R: uint8(c.R * aa * 255),
				G: uint8(c.G * aa * 255),
				B: uint8(c.B * aa * 255),
				A: uint8(aa * 255),
			})
		}
	}
	return out
}

// --- outline ---

// noopApplier substitutes for effects this backend cannot produce.
type noopApplier struct{}

func (noopApplier) Apply(src *image.RGBA) *image.RGBA { return src }

var warnedOutline bool

// newOutlineFilter degrades to a no-op: the overlay has no per-pixel dilate
// pass and a wrong-looking outline is worse than none. Warned once.
func newOutlineFilter() *overlayFilter {
	if !warnedOutline {
		warnedOutline = true
		log.Printf("prism: outline filter is unavailable in the overlay backend, falling back to no-op")
	}
	return newFilter(prism.FilterOutline, noopApplier{})
}
