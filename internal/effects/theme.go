package effects

import (
	"log"

	"github.com/iburimskiy/hero-field/internal/page"
	"github.com/iburimskiy/hero-field/internal/theme"
)

// ThemeToggle binds a theme.Switch to the body class and the toggle button.
type ThemeToggle struct {
	body, button *page.Element
	sw           *theme.Switch
}

func NewThemeToggle(body, button *page.Element, sw *theme.Switch) *ThemeToggle {
	if body == nil || button == nil || sw == nil {
		return nil
	}
	t := &ThemeToggle{body: body, button: button, sw: sw}
	t.apply()

	button.On(page.Click, func(*page.Event) {
		if _, err := sw.Toggle(); err != nil {
			log.Printf("theme: %v", err)
		}
		t.apply()
	})
	return t
}

func (t *ThemeToggle) apply() {
	if t.sw.Mode() == theme.ModeLight {
		t.body.AddClass("light-mode")
	} else {
		t.body.RemoveClass("light-mode")
	}
	t.button.Text = t.sw.Label()
}

// Mode is the applied theme; dark when there is no toggle.
func (t *ThemeToggle) Mode() theme.Mode {
	if t == nil {
		return theme.ModeDark
	}
	return t.sw.Mode()
}
