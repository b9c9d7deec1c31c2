package effects

import (
	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/page"
)

// Reveal marks .reveal-up elements is-visible the first time they enter the
// viewport, less a bottom margin. Each element is observed once.
type Reveal struct {
	doc     *page.Document
	pending []*page.Element
}

func NewReveal(doc *page.Document) *Reveal {
	if doc == nil {
		return nil
	}
	targets := doc.Query(".reveal-up")
	if len(targets) == 0 {
		return nil
	}
	r := &Reveal{doc: doc, pending: targets}
	doc.On(page.Scroll, func(*page.Event) { r.check() })
	doc.On(page.Resize, func(*page.Event) { r.check() })
	r.check()
	return r
}

func (r *Reveal) check() {
	if len(r.pending) == 0 {
		return
	}
	w, h := r.doc.Viewport()
	root := page.Rect{W: w, H: h - config.RevealBottomMargin}
	if root.H < 0 {
		root.H = 0
	}

	kept := r.pending[:0]
	for _, el := range r.pending {
		if root.Intersects(r.doc.ClientRect(el)) {
			el.AddClass("is-visible")
			continue
		}
		kept = append(kept, el)
	}
	r.pending = kept
}

// Pending is how many elements are still waiting to be revealed.
func (r *Reveal) Pending() int {
	if r == nil {
		return 0
	}
	return len(r.pending)
}
