// Package tty runs the particle field in a terminal. Each cell holds two
// vertically stacked pixels drawn with the upper half block.
package tty

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/hero-field/internal/field"
	"github.com/iburimskiy/hero-field/internal/theme"
)

// Surface is a coverage buffer of w×h pixels, 0 (empty) to 1 (solid ink).
type Surface struct {
	w, h int
	px   []float64
}

func (s *Surface) SetSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.w, s.h = w, h
	s.px = make([]float64, w*h)
}

func (s *Surface) Context2D() (field.Context, bool) {
	return s, true
}

func (s *Surface) Size() (int, int) { return s.w, s.h }

func (s *Surface) Clear() {
	for i := range s.px {
		s.px[i] = 0
	}
}

// FillCircle covers every pixel whose centre lies inside the circle. Circles
// smaller than a pixel still mark the pixel they fall in.
func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	a := float64(c.A) / 255
	if a <= 0 || s.w == 0 || s.h == 0 {
		return
	}

	hit := false
	for py := int(math.Floor(y - r)); py <= int(math.Ceil(y+r)); py++ {
		for px := int(math.Floor(x - r)); px <= int(math.Ceil(x+r)); px++ {
			dx, dy := float64(px)+0.5-x, float64(py)+0.5-y
			if dx*dx+dy*dy <= r*r {
				s.blend(px, py, a)
				hit = true
			}
		}
	}
	if !hit {
		s.blend(int(x), int(y), a)
	}
}

func (s *Surface) blend(x, y int, a float64) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	i := y*s.w + x
	s.px[i] += a * (1 - s.px[i])
}

// At is the coverage of pixel (x, y).
func (s *Surface) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0
	}
	return s.px[y*s.w+x]
}

// Present paints the buffer onto screen, inking over the palette background.
func (s *Surface) Present(screen tcell.Screen, pal theme.Palette) {
	bg := rgb(pal.Background)
	for cy := 0; cy*2 < s.h; cy++ {
		for cx := 0; cx < s.w; cx++ {
			top, bottom := s.At(cx, cy*2), s.At(cx, cy*2+1)
			if top == 0 && bottom == 0 {
				screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(bg))
				continue
			}
			style := tcell.StyleDefault.
				Foreground(rgb(theme.Over(pal.Background, pal.Text, top))).
				Background(rgb(theme.Over(pal.Background, pal.Text, bottom)))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
