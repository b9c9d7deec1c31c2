package theme

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of page colours for one mode.
type Palette struct {
	Background colorful.Color
	Card       colorful.Color
	Border     colorful.Color
	Text       colorful.Color
	Accent     colorful.Color
}

var (
	darkPalette = Palette{
		Background: mustHex("#0b0d12"),
		Card:       mustHex("#161a23"),
		Border:     mustHex("#2a3140"),
		Text:       mustHex("#e6e9ef"),
		Accent:     mustHex("#7aa2f7"),
	}
	lightPalette = Palette{
		Background: mustHex("#f4f1ea"),
		Card:       mustHex("#ffffff"),
		Border:     mustHex("#d9d3c7"),
		Text:       mustHex("#1c1f26"),
		Accent:     mustHex("#3d5afe"),
	}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (m Mode) Palette() Palette {
	if m == ModeLight {
		return lightPalette
	}
	return darkPalette
}

// NRGBA converts c with the given opacity.
func NRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha * 255)}
}

// Over composites ink at alpha over the opaque background bg.
func Over(bg, ink colorful.Color, alpha float64) colorful.Color {
	if alpha <= 0 {
		return bg
	}
	if alpha >= 1 {
		return ink
	}
	return bg.BlendRgb(ink, alpha)
}

// CardAccent is the accent of a card with the given base hue, turned by
// shift degrees.
func CardAccent(hue, shift float64) colorful.Color {
	h := math.Mod(hue+shift, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, 0.55, 0.95)
}
