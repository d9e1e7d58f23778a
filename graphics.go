package prism

// FillStyle describes how a pending path is filled. Exactly one of Color,
// Gradient, or Texture should be set; when more than one is set the backend
// prefers Texture, then Gradient, then Color.
//
// Texture fills are not representable in the overlay backend: a Fill whose
// style carries a Texture is silently skipped there. This is a known
// capability gap, deliberately not warned on per call.
type FillStyle struct {
	Color    Color
	Gradient Gradient
	Texture  Texture
}

// StrokeStyle describes how a pending path is outlined. A zero Width is
// treated as 1.
type StrokeStyle struct {
	Color Color
	Width float64
}

// Graphics is a display object with shape- and path-drawing operations.
//
// A Graphics object holds an implicit current path: shape and path calls
// append to (or start) the pending path, and Fill/Stroke consume it and
// reset it. Calling Fill or Stroke with no pending path is a no-op, never an
// error. Clear discards both the pending path and all previously committed
// visual content.
//
// Mixing this shape-then-fill dialect with any immediate-mode drawing style
// is unsupported; this is the only drawing dialect the contract guarantees.
//
// All drawing methods return the receiver so calls can be chained:
//
//	g.Circle(10, 10, 5).Fill(prism.FillStyle{Color: prism.RGB(0xff0000)})
type Graphics interface {
	DisplayObject

	Rect(x, y, w, h float64) Graphics
	RoundRect(x, y, w, h, radius float64) Graphics
	Circle(cx, cy, r float64) Graphics
	Ellipse(cx, cy, rx, ry float64) Graphics

	// Poly appends a polygon through the given points. When closed is true
	// the path is closed back to the first point.
	Poly(points []Vec2, closed bool) Graphics

	MoveTo(x, y float64) Graphics
	LineTo(x, y float64) Graphics

	// Arc appends a circular arc around (cx, cy) from startAngle to
	// endAngle (radians, clockwise). If a path is already started, a line
	// connects the current point to the arc start.
	Arc(cx, cy, r, startAngle, endAngle float64) Graphics

	ClosePath() Graphics

	Fill(style FillStyle) Graphics
	Stroke(style StrokeStyle) Graphics

	// Clear discards pending path state and all committed content.
	Clear() Graphics
}
