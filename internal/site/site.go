// Package site builds the portfolio page: its elements, their layout for a
// viewport size, and the effects attached to them.
package site

import (
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/effects"
	"github.com/iburimskiy/hero-field/internal/page"
	"github.com/iburimskiy/hero-field/internal/theme"
)

const (
	margin      = 48.0
	gap         = 24.0
	navHeight   = 56.0
	heroHeight  = 420.0
	titleHeight = 56.0
	cardHeight  = 160.0
	minCardW    = 220.0
	toggleSize  = 40.0
	backSize    = 44.0
)

// Card is one tile of a section.
type Card struct {
	Title string
	Body  string
	Href  string
}

// Section is a titled group of cards sharing one card class.
type Section struct {
	ID    string
	Title string
	Class string
	Cards []Card
}

// Sections is the page content.
var Sections = []Section{
	{
		ID: "work", Title: "Selected work", Class: "work-card",
		Cards: []Card{
			{"Tidepool", "Realtime ocean telemetry dashboard", "#"},
			{"Lantern", "Static site generator with live preview", "#"},
			{"Quarry", "Columnar log search over object storage", "#"},
		},
	},
	{
		ID: "status", Title: "Now", Class: "status-card",
		Cards: []Card{
			{"Reading", "Designing Data-Intensive Applications", ""},
			{"Building", "A tiny synth for the browser", ""},
		},
	},
	{
		ID: "equipment", Title: "Equipment", Class: "equip-card",
		Cards: []Card{
			{"Keyboard", "65% hot-swap, linear switches", ""},
			{"Display", "27\" 4K, calibrated", ""},
			{"Audio", "Closed-back monitors", ""},
		},
	},
}

// Site is the assembled page.
type Site struct {
	Doc *page.Document

	Canvas     *page.Element
	ScrollLine *page.Element
	Toggle     *page.Element
	BackToTop  *page.Element
	Dot        *page.Element
	Outline    *page.Element
	Hero       *page.Element

	Nav      []*page.Element
	Sections []*page.Element
	Cards    [][]*page.Element
	Footer   []*page.Element

	Cursor   *effects.Cursor
	Reveal   *effects.Reveal
	Tilt     *effects.Tilt
	Progress *effects.ScrollProgress
	Back     *effects.BackToTop
	Theme    *effects.ThemeToggle
	Guarded  int
}

// New lays the page out for a w×h viewport and attaches every effect.
func New(w, h float64, sw *theme.Switch) *Site {
	s := &Site{Doc: page.NewDocument(w, h)}
	d := s.Doc

	s.Canvas = d.Add(&page.Element{Tag: "canvas", ID: "hero-canvas", Fixed: true})

	for _, n := range []struct{ text, href string }{
		{"Work", "#work"},
		{"Now", "#status"},
		{"Equipment", "#equipment"},
		{"Contact", "#"},
	} {
		a := d.Add(page.NewElement("a", "nav-"+n.text))
		a.Text, a.Href = n.text, n.href
		s.Nav = append(s.Nav, a)
	}

	s.Hero = d.Add(page.NewElement("header", "hero", "reveal-up"))
	s.Hero.Text = "Hi, I build calm software."

	for _, sec := range Sections {
		el := d.Add(page.NewElement("section", sec.ID, "reveal-up"))
		el.Text = sec.Title
		s.Sections = append(s.Sections, el)

		var row []*page.Element
		for i, c := range sec.Cards {
			card := d.Add(page.NewElement("div", fmt.Sprintf("%s-%d", sec.ID, i), sec.Class, "reveal-up"))
			card.Text = c.Title + "\n" + c.Body
			card.Href = c.Href
			if c.Href != "" {
				card.Tag = "a"
			}
			row = append(row, card)
		}
		s.Cards = append(s.Cards, row)
	}

	mail := d.Add(page.NewElement("a", "mail"))
	mail.Text, mail.Href = "hello@example.com", "mailto:hello@example.com"
	resume := d.Add(page.NewElement("a", "resume"))
	resume.Text, resume.Href = "Résumé (soon)", "#"
	s.Footer = []*page.Element{mail, resume}

	s.ScrollLine = d.Add(&page.Element{Tag: "div", ID: "scroll-line", Fixed: true})
	s.Toggle = d.Add(page.NewElement("button", "theme-toggle"))
	s.Toggle.Fixed = true
	s.BackToTop = d.Add(page.NewElement("button", "back-to-top"))
	s.BackToTop.Fixed = true
	s.BackToTop.Text = "↑"
	s.Dot = d.Add(page.NewElement("div", "cursor-dot", "cursor-dot"))
	s.Dot.Fixed = true
	s.Outline = d.Add(page.NewElement("div", "cursor-outline", "cursor-outline"))
	s.Outline.Fixed = true

	s.layout(w, h, time.Time{})
	d.On(page.Resize, func(e *page.Event) {
		vw, vh := d.Viewport()
		s.layout(vw, vh, e.Time)
	})

	s.Cursor = effects.NewCursor(d, s.Dot, s.Outline)
	s.Reveal = effects.NewReveal(d)
	s.Tilt = effects.NewTilt(d)
	s.Progress = effects.NewScrollProgress(d, s.ScrollLine)
	s.Guarded = effects.GuardAnchors(d)
	s.Back = effects.NewBackToTop(d, s.BackToTop)
	s.Theme = effects.NewThemeToggle(d.Body, s.Toggle, sw)
	return s
}

// Columns is how many cards fit side by side in a w-wide viewport.
func Columns(w float64) int {
	n := int(math.Floor((w - 2*margin + gap) / (minCardW + gap)))
	if n < 1 {
		return 1
	}
	if n > 3 {
		return 3
	}
	return n
}

func (s *Site) layout(w, h float64, now time.Time) {
	s.Canvas.Rect = page.Rect{W: w, H: h}
	s.ScrollLine.Rect = page.Rect{W: w, H: config.ScrollLineHeight}
	s.Toggle.Rect = page.Rect{X: w - margin/2 - toggleSize, Y: (navHeight - toggleSize) / 2, W: toggleSize, H: toggleSize}
	s.BackToTop.Rect = page.Rect{X: w - margin/2 - backSize, Y: h - margin/2 - backSize, W: backSize, H: backSize}

	x := margin
	for _, a := range s.Nav {
		tw := float64(len(a.Text)*8) + 16
		a.Rect = page.Rect{X: x, Y: 16, W: tw, H: 24}
		x += tw + 8
	}

	contentW := math.Max(w-2*margin, minCardW)
	y := navHeight
	s.Hero.Rect = page.Rect{X: margin, Y: y, W: contentW, H: heroHeight}
	y += heroHeight

	cols := Columns(w)
	cardW := (contentW - gap*float64(cols-1)) / float64(cols)
	for i, sec := range s.Sections {
		y += gap
		sec.Rect = page.Rect{X: margin, Y: y, W: contentW, H: titleHeight}
		y += titleHeight
		for j, card := range s.Cards[i] {
			col, row := j%cols, j/cols
			card.Rect = page.Rect{
				X: margin + float64(col)*(cardW+gap),
				Y: y + float64(row)*(cardHeight+gap),
				W: cardW,
				H: cardHeight,
			}
		}
		rows := (len(s.Cards[i]) + cols - 1) / cols
		y += float64(rows)*(cardHeight+gap) - gap
	}

	y += 2 * gap
	for _, a := range s.Footer {
		a.Rect = page.Rect{X: margin, Y: y, W: float64(len(a.Text)*8) + 16, H: 24}
		y += 32
	}
	y += margin
	s.Doc.SetScrollHeight(math.Max(y, h), now)
}

// Resize applies a new viewport size.
func (s *Site) Resize(w, h float64, now time.Time) {
	s.Doc.Resize(w, h, now)
}

// Mode is the applied theme.
func (s *Site) Mode() theme.Mode {
	return s.Theme.Mode()
}
