package effects

import (
	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/page"
)

// CardSelector lists the elements that tilt under the pointer.
const CardSelector = ".work-card, .status-card, .equip-card"

var (
	restTransform = page.Transform{Perspective: config.TiltPerspective}

	releaseTransition = page.Transition{
		Property: "transform",
		Duration: config.TiltResetTime,
		Easing: page.CubicBezier(config.TiltEasing[0], config.TiltEasing[1],
			config.TiltEasing[2], config.TiltEasing[3]),
	}
)

// Tilt rotates cards toward the pointer and eases them back on leave.
type Tilt struct {
	cards []*page.Element
}

func NewTilt(doc *page.Document) *Tilt {
	if doc == nil {
		return nil
	}
	cards := doc.Query(CardSelector)
	if len(cards) == 0 {
		return nil
	}

	for _, card := range cards {
		card := card
		card.On(page.MouseMove, func(e *page.Event) {
			card.Style.Transition = page.Transition{}
			card.SetTransform(TiltFor(doc.ClientRect(card), e.X, e.Y), e.Time)
		})
		card.On(page.MouseLeave, func(e *page.Event) {
			card.Style.Transition = releaseTransition
			card.SetTransform(restTransform, e.Time)
		})
	}
	return &Tilt{cards: cards}
}

// TiltFor is the transform of a card with client box r under the pointer.
func TiltFor(r page.Rect, px, py float64) page.Transform {
	if r.W <= 0 || r.H <= 0 {
		return restTransform
	}
	x := (px-r.X)/r.W - 0.5
	y := (py-r.Y)/r.H - 0.5
	return page.Transform{
		Perspective: config.TiltPerspective,
		RotateX:     -y * config.TiltFactor,
		RotateY:     x * config.TiltFactor,
		TranslateY:  config.TiltLift,
	}
}

func (t *Tilt) Cards() []*page.Element {
	if t == nil {
		return nil
	}
	return t.cards
}
