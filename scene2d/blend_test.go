package scene2d

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/prism"
)

func TestEbitenBlendStandardModes(t *testing.T) {
	cases := []struct {
		mode prism.BlendMode
		want ebiten.Blend
	}{
		{prism.BlendNormal, ebiten.BlendSourceOver},
		{prism.BlendAdd, ebiten.BlendLighter},
		{prism.BlendErase, ebiten.BlendDestinationOut},
		{prism.BlendBelow, ebiten.BlendDestinationOver},
		{prism.BlendNone, ebiten.BlendCopy},
		{prism.BlendMode(99), ebiten.BlendSourceOver}, // unknown falls back
	}
	for _, c := range cases {
		if got := ebitenBlend(c.mode); got != c.want {
			t.Errorf("ebitenBlend(%d) = %+v, want %+v", c.mode, got, c.want)
		}
	}
}

func TestEbitenBlendCompositeModes(t *testing.T) {
	// Multiply, Screen, and Mask use custom factor equations rather than a
	// stock blend; verify the defining factors.
	mul := ebitenBlend(prism.BlendMultiply)
	if mul.BlendFactorSourceRGB != ebiten.BlendFactorDestinationColor {
		t.Errorf("multiply source RGB factor = %v", mul.BlendFactorSourceRGB)
	}

	scr := ebitenBlend(prism.BlendScreen)
	if scr.BlendFactorDestinationRGB != ebiten.BlendFactorOneMinusSourceColor {
		t.Errorf("screen destination RGB factor = %v", scr.BlendFactorDestinationRGB)
	}

	mask := ebitenBlend(prism.BlendMask)
	if mask.BlendFactorDestinationRGB != ebiten.BlendFactorSourceAlpha {
		t.Errorf("mask destination RGB factor = %v", mask.BlendFactorDestinationRGB)
	}
}
