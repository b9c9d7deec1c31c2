// Package theme holds the light/dark preference: read once at start-up,
// written whenever the user toggles it.
package theme

import (
	"fmt"
	"strings"

	"github.com/iburimskiy/hero-field/internal/config"
)

// Preference is what the user asked for. System defers to the host.
type Preference int

const (
	System Preference = iota
	Light
	Dark
)

func (p Preference) String() string {
	switch p {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "system"
}

// ParsePreference maps a stored value to a Preference. Anything other than
// "light" or "dark" counts as no preference.
func ParsePreference(v string) Preference {
	switch v {
	case "light":
		return Light
	case "dark":
		return Dark
	}
	return System
}

// Mode is the theme actually applied to the page.
type Mode int

const (
	ModeDark Mode = iota
	ModeLight
)

func (m Mode) String() string {
	if m == ModeLight {
		return "light"
	}
	return "dark"
}

// Store is a string key-value store, like browser local storage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Switch is the theme state of one page.
type Switch struct {
	store Store
	pref  Preference
	mode  Mode
}

// Load reads the stored preference. A stored value wins; otherwise the
// system preference decides, and light is the fallback.
func Load(store Store, systemDark bool) *Switch {
	s := &Switch{store: store}
	if store != nil {
		if v, ok := store.Get(config.ThemeKey); ok {
			s.pref = ParsePreference(v)
		}
	}

	switch {
	case s.pref == Light:
		s.mode = ModeLight
	case s.pref == Dark:
		s.mode = ModeDark
	case systemDark:
		s.mode = ModeDark
	default:
		s.mode = ModeLight
	}
	return s
}

func (s *Switch) Mode() Mode { return s.mode }

func (s *Switch) Preference() Preference { return s.pref }

// Label is the toggle affordance: the sun offers light mode, the moon dark.
func (s *Switch) Label() string {
	if s.mode == ModeDark {
		return "☀️"
	}
	return "🌙"
}

// Toggle flips the mode and persists it. The new mode applies even when the
// store rejects the write.
func (s *Switch) Toggle() (Mode, error) {
	if s.mode == ModeDark {
		s.mode = ModeLight
		s.pref = Light
	} else {
		s.mode = ModeDark
		s.pref = Dark
	}

	if s.store == nil {
		return s.mode, nil
	}
	if err := s.store.Set(config.ThemeKey, s.mode.String()); err != nil {
		return s.mode, fmt.Errorf("persist theme %q: %w", s.mode, err)
	}
	return s.mode, nil
}

// DetectSystemDark guesses the desktop colour scheme from the environment:
// GTK_THEME variants like "Adwaita:dark", then the terminal's COLORFGBG.
func DetectSystemDark(getenv func(string) string) bool {
	if gtk := getenv("GTK_THEME"); gtk != "" {
		return strings.HasSuffix(strings.ToLower(gtk), ":dark")
	}
	if fgbg := getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		switch parts[len(parts)-1] {
		case "0", "1", "2", "3", "4", "5", "6", "8":
			return true
		}
	}
	return false
}
