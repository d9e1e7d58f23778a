package scene2d

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"

	"github.com/phanxgames/prism"
)

func TestFactoryBackend(t *testing.T) {
	if (factory2d{}).Backend() != prism.Backend2D {
		t.Error("factory reports the wrong backend")
	}
}

func TestNewTextDefaults(t *testing.T) {
	txt := factory2d{}.NewText("hi", prism.TextStyle{FontFamily: "test-grid", FontSize: 16})
	st := txt.Style()

	if st.Fill != prism.ColorWhite {
		t.Errorf("default fill = %+v, want white", st.Fill)
	}
	if st.Stroke == nil || st.Stroke.Width != 2 {
		t.Errorf("default stroke = %+v", st.Stroke)
	}
	if st.DropShadow == nil || st.DropShadow.Alpha != 0.5 {
		t.Errorf("default drop shadow = %+v", st.DropShadow)
	}
}

func TestNewTextDefaultsAreCopies(t *testing.T) {
	f := factory2d{}
	a := f.NewText("a", prism.TextStyle{FontFamily: "test-grid", FontSize: 16})
	b := f.NewText("b", prism.TextStyle{FontFamily: "test-grid", FontSize: 16})
	if a.Style().Stroke == b.Style().Stroke {
		t.Error("text objects share a stroke record")
	}
	a.Style().Stroke.Width = 99
	if b.Style().Stroke.Width == 99 {
		t.Error("mutating one text's stroke leaked into another")
	}
}

func TestNewTextExplicitStyleKept(t *testing.T) {
	stroke := &prism.TextStroke{Color: prism.RGB(0xff0000), Width: 5}
	style := prism.TextStyle{
		FontFamily: "test-grid",
		FontSize:   16,
		Fill:       prism.RGB(0x00ff00),
		Stroke:     stroke,
	}
	txt := factory2d{}.NewText("hi", style)
	if txt.Style().Fill != prism.RGB(0x00ff00) {
		t.Error("explicit fill was replaced")
	}
	if txt.Style().Stroke != stroke {
		t.Error("explicit stroke was replaced")
	}
}

func TestNewTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	tex, err := factory2d{}.NewTexture(img)
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	if tex.Width() != 8 || tex.Height() != 4 {
		t.Errorf("texture size = %v x %v, want 8 x 4", tex.Width(), tex.Height())
	}

	if _, err := (factory2d{}).NewTexture(nil); err == nil {
		t.Error("NewTexture(nil) did not fail")
	}
}

func TestNewTextureFromPathMissingFile(t *testing.T) {
	if _, err := (factory2d{}).NewTextureFromPath("no/such/file.png"); err == nil {
		t.Error("missing file did not fail")
	}
}

func TestNewCanvasTexture(t *testing.T) {
	var gotW, gotH int
	tex, err := factory2d{}.NewCanvasTexture(16, 12, func(ctx *gg.Context) {
		gotW, gotH = ctx.Width(), ctx.Height()
		ctx.SetColor(color.White)
		ctx.DrawCircle(8, 6, 4)
		if err := ctx.Fill(); err != nil {
			t.Errorf("fill: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("NewCanvasTexture: %v", err)
	}
	if gotW != 16 || gotH != 12 {
		t.Errorf("callback surface = %dx%d, want 16x12", gotW, gotH)
	}
	if tex.Width() != 16 || tex.Height() != 12 {
		t.Errorf("texture size = %v x %v", tex.Width(), tex.Height())
	}
}

func TestNewCanvasTextureRejectsBadArgs(t *testing.T) {
	f := factory2d{}
	if _, err := f.NewCanvasTexture(0, 10, func(*gg.Context) {}); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := f.NewCanvasTexture(10, 10, nil); err == nil {
		t.Error("nil callback accepted")
	}
}

func TestSpriteSizeFollowsTexture(t *testing.T) {
	f := factory2d{}
	tex, err := f.NewTexture(image.NewRGBA(image.Rect(0, 0, 32, 16)))
	if err != nil {
		t.Fatal(err)
	}
	s := f.NewSprite(tex)
	if s.Width() != 32 || s.Height() != 16 {
		t.Errorf("sprite size = %v x %v, want texture size", s.Width(), s.Height())
	}

	s.SetWidth(64)
	if s.Width() != 64 {
		t.Errorf("explicit width = %v, want 64", s.Width())
	}
	if s.Height() != 16 {
		t.Error("setting width changed height")
	}
	if s.Tint() != prism.ColorWhite {
		t.Errorf("default tint = %+v, want white", s.Tint())
	}
}

func TestSharedTextureSurvivesSpriteDestroy(t *testing.T) {
	f := factory2d{}
	tex, err := f.NewTexture(image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if err != nil {
		t.Fatal(err)
	}
	a := f.NewSprite(tex)
	b := f.NewSprite(tex)

	a.Destroy()
	if tex.Width() != 8 {
		t.Error("destroying a sprite destroyed the shared texture")
	}
	if b.Texture() != tex {
		t.Error("surviving sprite lost its texture reference")
	}
	if b.Width() != 8 {
		t.Errorf("surviving sprite width = %v, want 8", b.Width())
	}
}

func TestFilterKinds(t *testing.T) {
	f := factory2d{}
	cases := []struct {
		filter prism.Filter
		want   prism.FilterKind
	}{
		{f.NewBlurFilter(4), prism.FilterBlur},
		{f.NewGlowFilter(prism.RGB(0xffcc00), 6), prism.FilterGlow},
		{f.NewOutlineFilter(prism.RGB(0x000000), 2), prism.FilterOutline},
		{f.NewShadowFilter(prism.Color{A: 1}, 0.5, 0.7, 3, 4), prism.FilterShadow},
	}
	for _, c := range cases {
		if c.filter.Kind() != c.want {
			t.Errorf("filter kind = %v, want %v", c.filter.Kind(), c.want)
		}
		if !c.filter.Enabled() {
			t.Error("new filter starts disabled")
		}
	}
}
