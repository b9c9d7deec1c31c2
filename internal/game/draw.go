package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/page"
	"github.com/iburimskiy/hero-field/internal/theme"
)

const (
	revealTime   = 600 * time.Millisecond
	revealOffset = 30.0 // px the element rises while fading in
	lineSpacing  = 18.0
)

var face = text.NewGoXFace(basicfont.Face7x13)

// sectionHue is the accent hue of each card class.
var sectionHue = map[string]float64{
	"work-card":   210,
	"status-card": 150,
	"equip-card":  30,
}

func (g *game) Draw(screen *ebiten.Image) {
	now := time.Now()
	pal := g.site.Mode().Palette()

	screen.Fill(pal.Background)
	g.drawCanvas(screen, pal)

	g.drawNav(screen, pal)
	g.drawBlock(screen, g.site.Hero, pal, 3, now)
	for i, sec := range g.site.Sections {
		g.drawBlock(screen, sec, pal, 2, now)
		for _, card := range g.site.Cards[i] {
			g.drawCard(screen, card, pal, now)
		}
	}
	for _, a := range g.site.Footer {
		g.drawLink(screen, a, pal)
	}

	g.drawScrollLine(screen, pal)
	g.drawToggle(screen, pal)
	g.drawBackToTop(screen, pal)
	g.drawCursor(screen, pal)

	if g.showHUD {
		g.drawStatus(screen, now)
	}
}

// drawCanvas composites the particle surface, inked in the page text colour.
func (g *game) drawCanvas(screen *ebiten.Image, pal theme.Palette) {
	if g.canvas.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.Scale(float32(pal.Text.R), float32(pal.Text.G), float32(pal.Text.B), 1)
	screen.DrawImage(g.canvas.img, op)
}

func (g *game) visible(r page.Rect) bool {
	return r.Y+r.H >= 0 && r.Y <= float64(g.height)
}

// revealProgress is how far el's reveal transition has run, 0 before it
// was revealed.
func (g *game) revealProgress(el *page.Element, now time.Time) float64 {
	if !el.HasClass("is-visible") {
		return 0
	}
	start, ok := g.revealed[el]
	if !ok {
		start = now
		g.revealed[el] = start
	}
	return min(1, float64(now.Sub(start))/float64(revealTime))
}

func (g *game) drawNav(screen *ebiten.Image, pal theme.Palette) {
	for _, a := range g.site.Nav {
		g.drawLink(screen, a, pal)
	}
}

func (g *game) drawLink(screen *ebiten.Image, a *page.Element, pal theme.Palette) {
	r := g.site.Doc.ClientRect(a)
	if !g.visible(r) {
		return
	}
	clr := pal.Text
	if g.site.Doc.Hovered(a) {
		clr = pal.Accent
		vector.StrokeLine(screen, float32(r.X+8), float32(r.Y+r.H-3), float32(r.X+r.W-8), float32(r.Y+r.H-3), 1, clr, false)
	}
	drawText(screen, a.Text, r.X+8, r.Y+5, 1, theme.NRGBA(clr, 1))
}

func (g *game) drawBlock(screen *ebiten.Image, el *page.Element, pal theme.Palette, scale float64, now time.Time) {
	r := g.site.Doc.ClientRect(el)
	if !g.visible(r) {
		return
	}
	k := easeOut(g.revealProgress(el, now))
	if k == 0 {
		return
	}
	y := r.Y + (1-k)*revealOffset
	if el.Tag == "header" {
		y += r.H/2 - 40
	}
	drawText(screen, el.Text, r.X, y+12, scale, theme.NRGBA(pal.Text, k))
}

func (g *game) drawCard(screen *ebiten.Image, el *page.Element, pal theme.Palette, now time.Time) {
	r := g.site.Doc.ClientRect(el)
	if !g.visible(r) {
		return
	}
	k := easeOut(g.revealProgress(el, now))
	if k == 0 {
		return
	}

	tr := el.TransformAt(now)
	sx, sy := tr.Scale()
	w, h := r.W*sx, r.H*sy
	x := r.X + (r.W-w)/2
	y := r.Y + (r.H-h)/2 + tr.TranslateY + (1-k)*revealOffset

	hue := 210.0
	for class, hv := range sectionHue {
		if el.HasClass(class) {
			hue = hv
		}
	}
	ar, ag, ab := theme.CardAccent(hue, tr.RotateY*4).Clamped().RGB255()

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), theme.NRGBA(pal.Card, 0.92*k), true)
	border := theme.NRGBA(pal.Border, k)
	if g.site.Doc.Hovered(el) {
		border = color.NRGBA{R: ar, G: ag, B: ab, A: uint8(255 * k)}
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1.5, border, true)
	vector.DrawFilledRect(screen, float32(x), float32(y), 4, float32(h), color.NRGBA{R: ar, G: ag, B: ab, A: uint8(200 * k)}, true)

	title, body, _ := strings.Cut(el.Text, "\n")
	drawText(screen, title, x+20, y+20, 2, theme.NRGBA(pal.Text, k))
	drawText(screen, body, x+20, y+64, 1, theme.NRGBA(pal.Text, 0.7*k))
}

func (g *game) drawScrollLine(screen *ebiten.Image, pal theme.Palette) {
	line := g.site.ScrollLine
	w := line.Rect.W * min(1, line.Style.WidthPercent/100)
	if w <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(line.Rect.H), pal.Accent, false)
}

func (g *game) drawToggle(screen *ebiten.Image, pal theme.Palette) {
	b := g.site.Toggle
	r := b.Rect
	cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
	radius := float32(r.W / 2)

	fill := theme.NRGBA(pal.Card, 0.9)
	if g.site.Doc.Hovered(b) {
		fill = theme.NRGBA(pal.Border, 1)
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1, pal.Border, true)

	ink := theme.NRGBA(pal.Text, 1)
	if b.Text == "☀️" {
		// sun: offers light mode
		vector.DrawFilledCircle(screen, cx, cy, radius*0.3, ink, true)
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			x1, y1 := float64(cx)+math.Cos(a)*float64(radius)*0.45, float64(cy)+math.Sin(a)*float64(radius)*0.45
			x2, y2 := float64(cx)+math.Cos(a)*float64(radius)*0.65, float64(cy)+math.Sin(a)*float64(radius)*0.65
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 2, ink, true)
		}
		return
	}
	// moon: offers dark mode
	vector.DrawFilledCircle(screen, cx, cy, radius*0.45, ink, true)
	vector.DrawFilledCircle(screen, cx+radius*0.2, cy-radius*0.15, radius*0.4, fill, true)
}

func (g *game) drawBackToTop(screen *ebiten.Image, pal theme.Palette) {
	if !g.site.Back.Visible() {
		return
	}
	b := g.site.BackToTop
	r := b.Rect
	cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
	radius := float32(r.W / 2)

	fill := pal.Accent
	if g.site.Doc.Hovered(b) {
		fill = pal.Accent.BlendRgb(pal.Text, 0.25)
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)
	ink := theme.NRGBA(pal.Background, 1)
	vector.StrokeLine(screen, cx, cy+radius*0.4, cx, cy-radius*0.4, 2.5, ink, true)
	vector.StrokeLine(screen, cx-radius*0.3, cy-radius*0.1, cx, cy-radius*0.4, 2.5, ink, true)
	vector.StrokeLine(screen, cx+radius*0.3, cy-radius*0.1, cx, cy-radius*0.4, 2.5, ink, true)
}

func (g *game) drawCursor(screen *ebiten.Image, pal theme.Palette) {
	dot, outline := g.site.Dot, g.site.Outline
	if dot.HasClass("cursor-hidden") || !g.pointerIn {
		return
	}
	body := g.site.Doc.Body

	outR := float32(config.CursorOutlineRadius)
	if body.HasClass("cursor-active") {
		outR *= 1.6
	}
	vector.StrokeCircle(screen, float32(outline.Style.Left), float32(outline.Style.Top), outR, 1.5, theme.NRGBA(pal.Accent, 0.6), true)
	vector.DrawFilledCircle(screen, float32(dot.Style.Left), float32(dot.Style.Top), config.CursorDotRadius, pal.Accent, true)
}

func (g *game) drawStatus(screen *ebiten.Image, now time.Time) {
	status := fmt.Sprintf("particles %s · %d frames · %s · %.0f fps · theme %s",
		g.field.State(), g.field.Frames(), now.Sub(g.started).Truncate(time.Second), ebiten.ActualFPS(), g.site.Mode())
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-20)
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = lineSpacing
	text.Draw(screen, s, face, op)
}

func easeOut(p float64) float64 {
	return 1 - (1-p)*(1-p)*(1-p)
}
