// Package effects holds the page behaviours layered over the particle field.
// Each constructor takes the elements it drives and returns nil when one is
// missing: an absent element means the effect does not apply to the page.
package effects

import (
	"time"

	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/page"
)

// InteractiveSelector lists what the cursor highlights on hover.
const InteractiveSelector = "a, button, .work-card, .status-card, .equip-card"

// Cursor draws a dot that tracks the pointer and an outline that eases after
// it.
type Cursor struct {
	dot, outline *page.Element

	fromX, fromY float64
	toX, toY     float64
	start        time.Time
}

func NewCursor(doc *page.Document, dot, outline *page.Element) *Cursor {
	if doc == nil || dot == nil || outline == nil {
		return nil
	}
	c := &Cursor{dot: dot, outline: outline}

	doc.On(page.MouseMove, func(e *page.Event) {
		dot.Style.Left, dot.Style.Top = e.X, e.Y
		// A new animation starts from wherever the outline is now.
		c.fromX, c.fromY = c.OutlineAt(e.Time)
		c.toX, c.toY = e.X, e.Y
		c.start = e.Time
	})

	for _, el := range doc.Query(InteractiveSelector) {
		el.On(page.MouseEnter, func(*page.Event) { doc.Body.AddClass("cursor-active") })
		el.On(page.MouseLeave, func(*page.Event) { doc.Body.RemoveClass("cursor-active") })
	}

	doc.Body.On(page.MouseLeave, func(*page.Event) {
		dot.AddClass("cursor-hidden")
		outline.AddClass("cursor-hidden")
	})
	doc.Body.On(page.MouseEnter, func(*page.Event) {
		dot.RemoveClass("cursor-hidden")
		outline.RemoveClass("cursor-hidden")
	})
	return c
}

// OutlineAt is the outline position at now. The animation fills forwards.
func (c *Cursor) OutlineAt(now time.Time) (x, y float64) {
	if c.start.IsZero() {
		return c.toX, c.toY
	}
	p := float64(now.Sub(c.start)) / float64(config.CursorOutlineDuration)
	if p >= 1 {
		return c.toX, c.toY
	}
	if p < 0 {
		p = 0
	}
	return c.fromX + (c.toX-c.fromX)*p, c.fromY + (c.toY-c.fromY)*p
}

// Tick writes the outline's animated position into its style.
func (c *Cursor) Tick(now time.Time) {
	if c == nil {
		return
	}
	c.outline.Style.Left, c.outline.Style.Top = c.OutlineAt(now)
}
