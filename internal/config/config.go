package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "hero-field"

	// Particle field
	ParticleCount = 60
	MaxRadius     = 2.0
	SpeedSpread   = 0.4 // velocity components fall in [-SpeedSpread/2, SpeedSpread/2)

	// Terminal host
	TerminalFrameRate = 60

	// Cursor
	CursorOutlineDuration = 500 * time.Millisecond
	CursorDotRadius       = 4
	CursorOutlineRadius   = 18

	// Scroll reveal: viewport bottom margin, like rootMargin "0px 0px -50px 0px"
	RevealBottomMargin = 50

	// Card tilt
	TiltPerspective = 1000
	TiltFactor      = 12 // degrees at the card edge
	TiltLift        = -8 // px
	TiltResetTime   = 800 * time.Millisecond

	// Back-to-top
	BackToTopThreshold = 300
	SmoothScrollTime   = 450 * time.Millisecond
	ScrollLineHeight   = 3
	WheelStep          = 48

	// Theme
	ThemeKey      = "theme"
	PrefsEnv      = "HERO_FIELD_PREFS"
	PrefsDirName  = "hero-field"
	PrefsFileName = "prefs.toml"

	// Click feedback
	ChimeFrequency = 880
	ChimeLength    = 40 * time.Millisecond
	ChimeVolume    = 0.15
)

// TiltEasing is the control polygon of the card release curve.
var TiltEasing = [4]float64{0.175, 0.885, 0.32, 1.275}
