package overlay3d

import (
	"testing"

	"github.com/phanxgames/prism"
)

func TestSurfaceRecordsOps(t *testing.T) {
	s := newSurface()
	s.Rect(0, 0, 10, 10).Fill(prism.FillStyle{Color: prism.ColorWhite})

	// One rect op plus the fill op.
	if len(s.ops) != 2 {
		t.Fatalf("len(ops) = %d, want 2", len(s.ops))
	}
	if s.pathStarted {
		t.Error("Fill did not mark the path consumed")
	}
}

func TestSurfaceFillWithoutPathIsNoop(t *testing.T) {
	s := newSurface()
	s.Fill(prism.FillStyle{Color: prism.ColorWhite})
	s.Stroke(prism.StrokeStyle{Color: prism.ColorWhite, Width: 1})
	if len(s.ops) != 0 {
		t.Errorf("len(ops) = %d, want 0", len(s.ops))
	}
}

func TestSurfaceClear(t *testing.T) {
	s := newSurface()
	s.Circle(5, 5, 3).Fill(prism.FillStyle{Color: prism.ColorWhite})
	s.Clear()
	if len(s.ops) != 0 || s.pathStarted {
		t.Error("Clear left recorded state behind")
	}
}

func TestSurfaceTextureFillConsumesPath(t *testing.T) {
	s := newSurface()
	tex := newPathTexture("whatever.png")
	s.Rect(0, 0, 4, 4).Fill(prism.FillStyle{Texture: tex})

	if s.pathStarted {
		t.Error("texture fill did not consume the path")
	}
	// The path must not leak into a following solid fill.
	s.Fill(prism.FillStyle{Color: prism.ColorWhite})
	if s.pathStarted {
		t.Error("stale path state after texture fill")
	}
}

func TestSurfaceChaining(t *testing.T) {
	s := newSurface()
	got := s.Rect(0, 0, 1, 1).
		Fill(prism.FillStyle{Color: prism.ColorWhite}).
		MoveTo(0, 0).
		LineTo(3, 3).
		Stroke(prism.StrokeStyle{Color: prism.ColorWhite, Width: 2})
	if got != prism.Graphics(s) {
		t.Error("chained calls did not return the receiver")
	}
}
