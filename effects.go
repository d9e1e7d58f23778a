package prism

// Gradient is an auxiliary fill primitive produced by a factory and consumed
// through FillStyle. The concrete representation is backend-native and
// opaque to callers.
type Gradient interface {
	Kind() GradientKind
	Destroy()
}

// Filter is a visual effect applied to a display object's rendered output
// via DisplayObject.SetFilters. A disabled filter is skipped at render time
// but keeps its resources until Destroy.
type Filter interface {
	Kind() FilterKind
	Enabled() bool
	SetEnabled(on bool)
	Destroy()
}

// Mask clips a container's subtree to the alpha of a source display object.
// The source is not part of the scene tree; its transform is relative to the
// masked container. When Inverted is set the clip is reversed: content under
// opaque mask pixels is hidden instead of kept.
type Mask interface {
	Source() DisplayObject
	Inverted() bool
	SetInverted(on bool)
	Destroy()
}
