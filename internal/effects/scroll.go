package effects

import (
	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/page"
)

// ScrollProgress sizes a line to the share of the page scrolled so far.
type ScrollProgress struct {
	doc  *page.Document
	line *page.Element
}

func NewScrollProgress(doc *page.Document, line *page.Element) *ScrollProgress {
	if doc == nil || line == nil {
		return nil
	}
	p := &ScrollProgress{doc: doc, line: line}
	doc.On(page.Scroll, func(*page.Event) { line.Style.WidthPercent = p.Percent() })
	return p
}

// Percent is scrollTop / (scrollHeight - clientHeight) * 100, or 0 when the
// page cannot scroll.
func (p *ScrollProgress) Percent() float64 {
	_, h := p.doc.Viewport()
	span := p.doc.ScrollHeight() - h
	if span <= 0 {
		return 0
	}
	return p.doc.ScrollY() / span * 100
}

// BackToTop shows a button once the page is scrolled down and scrolls back
// to the top when it is clicked. The hidden button takes no pointer input.
type BackToTop struct {
	button *page.Element
}

func NewBackToTop(doc *page.Document, button *page.Element) *BackToTop {
	if doc == nil || button == nil {
		return nil
	}
	update := func() {
		visible := doc.ScrollY() > config.BackToTopThreshold
		if visible {
			button.AddClass("visible")
		} else {
			button.RemoveClass("visible")
		}
		button.Inert = !visible
	}
	update()
	doc.On(page.Scroll, func(*page.Event) { update() })
	button.On(page.Click, func(e *page.Event) {
		e.PreventDefault()
		doc.ScrollTo(0, true, e.Time)
	})
	return &BackToTop{button: button}
}

func (b *BackToTop) Visible() bool {
	return b != nil && b.button.HasClass("visible")
}

// GuardAnchors stops placeholder links (href="#") from navigating and
// returns how many it guarded.
func GuardAnchors(doc *page.Document) int {
	if doc == nil {
		return 0
	}
	links := doc.Query("a[href='#']")
	for _, a := range links {
		a.On(page.Click, func(e *page.Event) { e.PreventDefault() })
	}
	return len(links)
}
