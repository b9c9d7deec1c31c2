package page

import (
	"strings"
	"time"

	"github.com/iburimskiy/hero-field/internal/config"
)

// Document is the page: a body, its elements in paint order, the viewport
// and the scroll position. Window-level listeners (mousemove, scroll,
// resize) register on the Document itself.
type Document struct {
	Listeners

	Body     *Element
	Location string

	elements []*Element

	viewW, viewH float64
	scrollY      float64
	scrollHeight float64

	pointerInside bool
	hovered       map[*Element]bool

	scroll scrollAnim
}

type scrollAnim struct {
	active   bool
	from, to float64
	start    time.Time
	duration time.Duration
}

func NewDocument(viewW, viewH float64) *Document {
	return &Document{
		Body:    NewElement("body", ""),
		viewW:   viewW,
		viewH:   viewH,
		hovered: map[*Element]bool{},
	}
}

// Add appends el on top of the paint order.
func (d *Document) Add(el *Element) *Element {
	d.elements = append(d.elements, el)
	return el
}

func (d *Document) Elements() []*Element { return d.elements }

func (d *Document) ByID(id string) *Element {
	for _, el := range d.elements {
		if el.ID == id {
			return el
		}
	}
	return nil
}

// Query returns the elements matching a comma-separated selector list of
// tag names, .class names, #ids and a[href='#'], in document order.
func (d *Document) Query(selectors string) []*Element {
	var parts []string
	for _, s := range strings.Split(selectors, ",") {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	var out []*Element
	for _, el := range d.elements {
		for _, sel := range parts {
			if matches(el, sel) {
				out = append(out, el)
				break
			}
		}
	}
	return out
}

func matches(el *Element, sel string) bool {
	switch {
	case strings.HasPrefix(sel, "."):
		return el.HasClass(sel[1:])
	case strings.HasPrefix(sel, "#"):
		return el.ID == sel[1:]
	case strings.HasSuffix(sel, "]"):
		i := strings.Index(sel, "[href=")
		if i < 0 {
			return false
		}
		tag := sel[:i]
		want := strings.Trim(sel[i+len("[href="):len(sel)-1], `'"`)
		return (tag == "" || el.Tag == tag) && el.Href == want
	}
	return el.Tag == sel
}

func (d *Document) Viewport() (w, h float64) { return d.viewW, d.viewH }

func (d *Document) ScrollY() float64 { return d.scrollY }

func (d *Document) ScrollHeight() float64 { return d.scrollHeight }

// SetScrollHeight sets the content height after layout. A scroll position
// past the new end is pulled back and reported as a scroll.
func (d *Document) SetScrollHeight(h float64, now time.Time) {
	d.scrollHeight = h
	d.setScroll(d.clampScroll(d.scrollY), now)
}

func (d *Document) MaxScroll() float64 {
	m := d.scrollHeight - d.viewH
	if m < 0 {
		return 0
	}
	return m
}

func (d *Document) clampScroll(y float64) float64 {
	if y < 0 {
		return 0
	}
	if m := d.MaxScroll(); y > m {
		return m
	}
	return y
}

// ClientRect is el's box in viewport coordinates.
func (d *Document) ClientRect(el *Element) Rect {
	if el.Fixed {
		return el.Rect
	}
	return el.Rect.Offset(0, -d.scrollY)
}

// ElementAt returns the topmost element under the viewport point, skipping
// the canvas and inert elements.
func (d *Document) ElementAt(x, y float64) *Element {
	for i := len(d.elements) - 1; i >= 0; i-- {
		el := d.elements[i]
		if el.Tag == "canvas" || el.Inert {
			continue
		}
		if d.ClientRect(el).Contains(x, y) {
			return el
		}
	}
	return nil
}

// Resize changes the viewport and notifies resize listeners, then scroll
// listeners if the position had to be clamped.
func (d *Document) Resize(w, h float64, now time.Time) {
	d.viewW, d.viewH = w, h
	d.Dispatch(&Event{Type: Resize, Time: now})
	d.setScroll(d.clampScroll(d.scrollY), now)
}

// ScrollTo jumps, or animates when smooth, to y.
func (d *Document) ScrollTo(y float64, smooth bool, now time.Time) {
	y = d.clampScroll(y)
	if !smooth {
		d.scroll.active = false
		d.setScroll(y, now)
		return
	}
	d.scroll = scrollAnim{
		active:   true,
		from:     d.scrollY,
		to:       y,
		start:    now,
		duration: config.SmoothScrollTime,
	}
}

// ScrollBy moves the viewport by dy, cancelling any smooth scroll.
func (d *Document) ScrollBy(dy float64, now time.Time) {
	d.ScrollTo(d.scrollY+dy, false, now)
}

func (d *Document) setScroll(y float64, now time.Time) {
	if y == d.scrollY {
		return
	}
	d.scrollY = y
	d.Dispatch(&Event{Type: Scroll, Time: now})
}

// Tick advances a smooth scroll in progress.
func (d *Document) Tick(now time.Time) {
	if !d.scroll.active {
		return
	}
	a := d.scroll
	p := float64(now.Sub(a.start)) / float64(a.duration)
	if p >= 1 {
		d.scroll.active = false
		d.setScroll(a.to, now)
		return
	}
	if p < 0 {
		p = 0
	}
	// ease-in-out
	k := p * p * (3 - 2*p)
	d.setScroll(d.clampScroll(a.from+(a.to-a.from)*k), now)
}

// Scrolling reports whether a smooth scroll is in progress.
func (d *Document) Scrolling() bool { return d.scroll.active }

// PointerMove moves the pointer to a viewport point, synthesising body and
// element enter/leave events, then mousemove on the elements under the
// pointer and on the window.
func (d *Document) PointerMove(x, y float64, now time.Time) {
	if !d.pointerInside {
		d.pointerInside = true
		d.Body.Dispatch(&Event{Type: MouseEnter, X: x, Y: y, Time: now, Target: d.Body})
	}

	under := map[*Element]bool{}
	for _, el := range d.elements {
		if d.ClientRect(el).Contains(x, y) {
			under[el] = true
		}
	}
	for _, el := range d.elements {
		if d.hovered[el] && !under[el] {
			delete(d.hovered, el)
			el.Dispatch(&Event{Type: MouseLeave, X: x, Y: y, Time: now, Target: el})
		}
	}
	for _, el := range d.elements {
		if under[el] && !d.hovered[el] {
			d.hovered[el] = true
			el.Dispatch(&Event{Type: MouseEnter, X: x, Y: y, Time: now, Target: el})
		}
	}
	for _, el := range d.elements {
		if under[el] {
			el.Dispatch(&Event{Type: MouseMove, X: x, Y: y, Time: now, Target: el})
		}
	}
	d.Dispatch(&Event{Type: MouseMove, X: x, Y: y, Time: now})
}

// PointerLeave is the pointer leaving the page.
func (d *Document) PointerLeave(now time.Time) {
	if !d.pointerInside {
		return
	}
	d.pointerInside = false
	for _, el := range d.elements {
		if d.hovered[el] {
			delete(d.hovered, el)
			el.Dispatch(&Event{Type: MouseLeave, Time: now, Target: el})
		}
	}
	d.Body.Dispatch(&Event{Type: MouseLeave, Time: now, Target: d.Body})
}

func (d *Document) PointerInside() bool { return d.pointerInside }

// Hovered reports whether the pointer is over el.
func (d *Document) Hovered(el *Element) bool { return d.hovered[el] }

// Click delivers a click to the topmost element at the point and runs the
// default action unless a listener prevented it: links navigate to their
// href, and fragment links scroll to their target.
func (d *Document) Click(x, y float64, now time.Time) *Element {
	el := d.ElementAt(x, y)
	if el == nil {
		return nil
	}
	ev := &Event{Type: Click, X: x, Y: y, Time: now, Target: el}
	el.Dispatch(ev)
	if ev.DefaultPrevented() || el.Href == "" {
		return el
	}
	d.navigate(el.Href, now)
	return el
}

func (d *Document) navigate(href string, now time.Time) {
	d.Location = href
	if strings.HasPrefix(href, "#") {
		if href == "#" {
			d.ScrollTo(0, false, now)
			return
		}
		if target := d.ByID(href[1:]); target != nil && !target.Fixed {
			d.ScrollTo(target.Rect.Y, false, now)
		}
	}
}
