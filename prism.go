package prism

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time inside each backend.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// RGB creates an opaque Color from a packed 0xRRGGBB value.
func RGB(rgb uint32) Color {
	return Color{
		R: float64((rgb>>16)&0xff) / 255,
		G: float64((rgb>>8)&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and polygon points
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward in both backends.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// HitShape is used for custom hit testing regions on containers.
type HitShape interface {
	Contains(x, y float64) bool
}

// BackendType identifies one of the two concrete rendering backends.
type BackendType uint8

const (
	// Backend2D is the Ebitengine-based retained 2D scene backend.
	Backend2D BackendType = iota
	// BackendOverlay is the CPU-raster overlay backend used to place
	// 2D-styled UI above a 3D scene.
	BackendOverlay
)

// String returns the backend name for diagnostics.
func (t BackendType) String() string {
	switch t {
	case Backend2D:
		return "2d"
	case BackendOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// EventMode controls how a display object participates in hit testing.
type EventMode uint8

const (
	EventModeNone    EventMode = iota // invisible to hit testing, children included
	EventModePassive                  // not hit-testable itself, children still are
	EventModeAuto                     // hit-testable only while an ancestor is interactive
	EventModeStatic                   // hit-testable, no per-frame movement tracking
	EventModeDynamic                  // hit-testable, re-tested while the pointer is idle
)

// BlendMode selects a compositing operation for a display object.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendMask                      // clip destination to source alpha
	BlendBelow                     // destination-over (draw behind existing content)
	BlendNone                      // opaque copy (skip blending)
)

// TextAlign controls horizontal text alignment within a text object.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// GradientKind distinguishes gradient geometries.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// FilterKind identifies the visual effect a Filter applies.
type FilterKind uint8

const (
	FilterBlur FilterKind = iota
	FilterGlow
	FilterOutline
	FilterShadow
)

// GradientStop is a single color stop along a gradient, with Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Color
}
