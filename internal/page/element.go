package page

import (
	"sort"
	"time"
)

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether r and o overlap, edge contact included.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W && r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Style holds the inline style properties the effects write.
type Style struct {
	Left, Top    float64
	WidthPercent float64
	Transform    Transform
	Transition   Transition
}

// Element is one node of the page. Rect is in document coordinates unless
// Fixed is set, in which case it is relative to the viewport.
type Element struct {
	Listeners

	Tag   string
	ID    string
	Text  string
	Href  string
	Rect  Rect
	Fixed bool
	Style Style
	// Inert elements let the pointer through to whatever lies beneath.
	Inert bool

	classes map[string]bool
	anim    transformAnim
}

type transformAnim struct {
	from     Transform
	start    time.Time
	duration time.Duration
	easing   Easing
}

func NewElement(tag, id string, classes ...string) *Element {
	e := &Element{Tag: tag, ID: id, classes: map[string]bool{}}
	for _, c := range classes {
		e.classes[c] = true
	}
	return e
}

func (e *Element) HasClass(name string) bool { return e.classes[name] }

func (e *Element) AddClass(name string) {
	if e.classes == nil {
		e.classes = map[string]bool{}
	}
	e.classes[name] = true
}

func (e *Element) RemoveClass(name string) { delete(e.classes, name) }

// ToggleClass flips name and reports whether it is now present.
func (e *Element) ToggleClass(name string) bool {
	if e.classes[name] {
		delete(e.classes, name)
		return false
	}
	e.AddClass(name)
	return true
}

// Classes returns the class list in sorted order.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SetTransform changes the transform, animating from the value rendered at
// now when a transition is set.
func (e *Element) SetTransform(t Transform, now time.Time) {
	from := e.TransformAt(now)
	e.Style.Transform = t
	e.anim = transformAnim{
		from:     from,
		start:    now,
		duration: e.Style.Transition.Duration,
		easing:   e.Style.Transition.Easing,
	}
}

// TransformAt returns the transform as rendered at now.
func (e *Element) TransformAt(now time.Time) Transform {
	a := e.anim
	if a.duration <= 0 || a.start.IsZero() {
		return e.Style.Transform
	}
	p := float64(now.Sub(a.start)) / float64(a.duration)
	if p >= 1 {
		return e.Style.Transform
	}
	if p < 0 {
		p = 0
	}
	k := p
	if a.easing != nil {
		k = a.easing(p)
	}
	return a.from.Lerp(e.Style.Transform, k)
}
