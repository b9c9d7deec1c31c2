package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/hero-field/internal/field"
)

// canvas is the particle drawing surface: an offscreen image the size of the
// window, composited behind the page every Draw.
type canvas struct {
	img *ebiten.Image
}

func (c *canvas) SetSize(w, h int) {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	if w <= 0 || h <= 0 {
		return
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *canvas) Context2D() (field.Context, bool) {
	return c, true
}

func (c *canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *canvas) FillCircle(x, y, r float64, clr color.NRGBA) {
	if c.img == nil || r <= 0 || clr.A == 0 {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, true)
}
