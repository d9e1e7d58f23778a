package scene2d

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/prism"
)

func TestGraphicsFillCommitsCommand(t *testing.T) {
	g := newGraphics()
	g.Rect(0, 0, 10, 10).Fill(prism.FillStyle{Color: prism.RGB(0xff0000)})

	if len(g.cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(g.cmds))
	}
	cmd := g.cmds[0]
	if len(cmd.vertices) == 0 || len(cmd.indices) == 0 {
		t.Error("fill committed no geometry")
	}
	if cmd.fillRule != ebiten.FillRuleNonZero {
		t.Errorf("fill rule = %v, want FillRuleNonZero", cmd.fillRule)
	}
	if g.hasPath {
		t.Error("Fill did not consume the pending path")
	}
}

func TestGraphicsStrokeCommitsCommand(t *testing.T) {
	g := newGraphics()
	g.MoveTo(0, 0).LineTo(20, 0).Stroke(prism.StrokeStyle{Color: prism.RGB(0x00ff00), Width: 2})

	if len(g.cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(g.cmds))
	}
	if g.cmds[0].fillRule != ebiten.FillRuleFillAll {
		t.Errorf("stroke fill rule = %v, want FillRuleFillAll", g.cmds[0].fillRule)
	}
}

func TestGraphicsFillWithoutPathIsNoop(t *testing.T) {
	g := newGraphics()
	g.Fill(prism.FillStyle{Color: prism.ColorWhite})
	g.Stroke(prism.StrokeStyle{Color: prism.ColorWhite, Width: 1})
	if len(g.cmds) != 0 {
		t.Errorf("len(cmds) = %d, want 0", len(g.cmds))
	}
}

func TestGraphicsChaining(t *testing.T) {
	g := newGraphics()
	g.Rect(0, 0, 5, 5).
		Fill(prism.FillStyle{Color: prism.ColorWhite}).
		Circle(10, 10, 3).
		Fill(prism.FillStyle{Color: prism.ColorWhite}).
		MoveTo(0, 0).
		LineTo(5, 5).
		Stroke(prism.StrokeStyle{Color: prism.ColorWhite, Width: 1})

	if len(g.cmds) != 3 {
		t.Errorf("len(cmds) = %d, want 3", len(g.cmds))
	}
}

func TestGraphicsClear(t *testing.T) {
	g := newGraphics()
	g.Rect(0, 0, 5, 5).Fill(prism.FillStyle{Color: prism.ColorWhite})
	g.MoveTo(1, 1) // leave a pending path too
	g.Clear()

	if len(g.cmds) != 0 {
		t.Errorf("len(cmds) = %d after Clear, want 0", len(g.cmds))
	}
	g.Fill(prism.FillStyle{Color: prism.ColorWhite})
	if len(g.cmds) != 0 {
		t.Error("Clear did not discard the pending path")
	}
}

func TestGraphicsLocalBounds(t *testing.T) {
	g := newGraphics()
	if _, ok := g.localBounds(); ok {
		t.Error("empty graphics reports bounds")
	}

	g.Rect(10, 20, 30, 40).Fill(prism.FillStyle{Color: prism.ColorWhite})
	r, ok := g.localBounds()
	if !ok {
		t.Fatal("filled graphics reports no bounds")
	}
	if r.X > 10 || r.Y > 20 || r.X+r.Width < 40 || r.Y+r.Height < 60 {
		t.Errorf("bounds %+v do not cover the 10,20 30x40 rect", r)
	}
}

func TestGraphicsGradientFill(t *testing.T) {
	f := factory2d{}
	grad := f.NewLinearGradient(0, 0, 100, 0, []prism.GradientStop{
		{Offset: 0, Color: prism.RGB(0x000000)},
		{Offset: 1, Color: prism.RGB(0xffffff)},
	})

	g := newGraphics()
	g.Rect(0, 0, 100, 10).Fill(prism.FillStyle{Gradient: grad})
	if len(g.cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(g.cmds))
	}
	if g.cmds[0].src == whiteSubImage {
		t.Error("gradient fill still samples the solid white source")
	}
}

func TestGraphicsPolyClosed(t *testing.T) {
	g := newGraphics()
	tri := []prism.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	g.Poly(tri, true).Fill(prism.FillStyle{Color: prism.ColorWhite})
	if len(g.cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(g.cmds))
	}
}
