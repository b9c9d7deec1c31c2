package page

import "time"

type EventType string

const (
	MouseMove  EventType = "mousemove"
	MouseEnter EventType = "mouseenter"
	MouseLeave EventType = "mouseleave"
	Click      EventType = "click"
	Scroll     EventType = "scroll"
	Resize     EventType = "resize"
)

// Event is delivered to listeners. X and Y are viewport coordinates.
type Event struct {
	Type   EventType
	X, Y   float64
	Time   time.Time
	Target *Element

	defaultPrevented bool
}

// PreventDefault cancels the default action, such as following a link.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

type Handler func(*Event)

// Listeners is an event target. The zero value has no listeners.
type Listeners struct {
	handlers map[EventType][]Handler
}

// On registers h for typ. Handlers run in registration order.
func (l *Listeners) On(typ EventType, h Handler) {
	if l.handlers == nil {
		l.handlers = map[EventType][]Handler{}
	}
	l.handlers[typ] = append(l.handlers[typ], h)
}

// Dispatch delivers ev to the handlers registered for its type.
func (l *Listeners) Dispatch(ev *Event) {
	for _, h := range l.handlers[ev.Type] {
		h(ev)
	}
}

// Listening reports whether anything is registered for typ.
func (l *Listeners) Listening(typ EventType) bool {
	return len(l.handlers[typ]) > 0
}
