package effects

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/page"
	"github.com/iburimskiy/hero-field/internal/theme"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func fixed(tag, id string, r page.Rect, classes ...string) *page.Element {
	el := page.NewElement(tag, id, classes...)
	el.Rect = r
	el.Fixed = true
	return el
}

func block(tag, id string, r page.Rect, classes ...string) *page.Element {
	el := page.NewElement(tag, id, classes...)
	el.Rect = r
	return el
}

func TestConstructorsDeclineWithoutElements(t *testing.T) {
	doc := page.NewDocument(800, 600)
	if NewCursor(doc, nil, nil) != nil {
		t.Error("Expected nil cursor")
	}
	if NewReveal(doc) != nil {
		t.Error("Expected nil reveal without targets")
	}
	if NewTilt(doc) != nil {
		t.Error("Expected nil tilt without cards")
	}
	if NewScrollProgress(doc, nil) != nil {
		t.Error("Expected nil progress")
	}
	if NewBackToTop(doc, nil) != nil {
		t.Error("Expected nil back-to-top")
	}
	if NewThemeToggle(doc.Body, nil, theme.Load(nil, false)) != nil {
		t.Error("Expected nil theme toggle")
	}
	if n := GuardAnchors(doc); n != 0 {
		t.Errorf("Expected 0 guarded links, got %d", n)
	}

	// nil receivers stay quiet
	var c *Cursor
	c.Tick(t0)
	var r *Reveal
	if r.Pending() != 0 {
		t.Error("Expected no pending on nil reveal")
	}
}

func TestCursorFollows(t *testing.T) {
	doc := page.NewDocument(800, 600)
	dot := doc.Add(fixed("div", "dot", page.Rect{}, "cursor-dot"))
	outline := doc.Add(fixed("div", "outline", page.Rect{}, "cursor-outline"))
	c := NewCursor(doc, dot, outline)

	doc.PointerMove(100, 200, t0)
	if dot.Style.Left != 100 || dot.Style.Top != 200 {
		t.Errorf("Expected dot at (100,200), got (%v,%v)", dot.Style.Left, dot.Style.Top)
	}

	c.Tick(t0.Add(config.CursorOutlineDuration / 2))
	if outline.Style.Left != 50 || outline.Style.Top != 100 {
		t.Errorf("Expected outline halfway, got (%v,%v)", outline.Style.Left, outline.Style.Top)
	}
	c.Tick(t0.Add(config.CursorOutlineDuration * 2))
	if outline.Style.Left != 100 || outline.Style.Top != 200 {
		t.Errorf("Expected outline arrived, got (%v,%v)", outline.Style.Left, outline.Style.Top)
	}
}

func TestCursorRetargetsFromCurrentPosition(t *testing.T) {
	doc := page.NewDocument(800, 600)
	dot := doc.Add(fixed("div", "dot", page.Rect{}))
	outline := doc.Add(fixed("div", "outline", page.Rect{}))
	c := NewCursor(doc, dot, outline)

	doc.PointerMove(100, 0, t0)
	doc.PointerMove(300, 0, t0.Add(config.CursorOutlineDuration/2))
	x, _ := c.OutlineAt(t0.Add(config.CursorOutlineDuration / 2))
	if x != 50 {
		t.Errorf("Expected new animation to start at 50, got %v", x)
	}
}

func TestCursorClasses(t *testing.T) {
	doc := page.NewDocument(800, 600)
	dot := doc.Add(fixed("div", "dot", page.Rect{}))
	outline := doc.Add(fixed("div", "outline", page.Rect{}))
	doc.Add(fixed("button", "go", page.Rect{X: 10, Y: 10, W: 50, H: 20}))
	NewCursor(doc, dot, outline)

	doc.PointerMove(20, 20, t0)
	if !doc.Body.HasClass("cursor-active") {
		t.Error("Expected cursor-active over button")
	}
	doc.PointerMove(400, 400, t0)
	if doc.Body.HasClass("cursor-active") {
		t.Error("Expected cursor-active cleared")
	}

	doc.PointerLeave(t0)
	if !dot.HasClass("cursor-hidden") || !outline.HasClass("cursor-hidden") {
		t.Error("Expected cursor hidden outside page")
	}
	doc.PointerMove(5, 5, t0)
	if dot.HasClass("cursor-hidden") || outline.HasClass("cursor-hidden") {
		t.Error("Expected cursor shown again")
	}
}

func TestRevealOnce(t *testing.T) {
	doc := page.NewDocument(800, 600)
	top := doc.Add(block("section", "top", page.Rect{Y: 100, W: 800, H: 200}, "reveal-up"))
	edge := doc.Add(block("section", "edge", page.Rect{Y: 570, W: 800, H: 200}, "reveal-up"))
	far := doc.Add(block("section", "far", page.Rect{Y: 1500, W: 800, H: 200}, "reveal-up"))
	doc.SetScrollHeight(2000, t0)

	r := NewReveal(doc)
	if !top.HasClass("is-visible") {
		t.Error("Expected element in view revealed on attach")
	}
	if edge.HasClass("is-visible") {
		t.Error("Expected element inside bottom margin to wait")
	}
	if r.Pending() != 2 {
		t.Errorf("Expected 2 pending, got %d", r.Pending())
	}

	doc.ScrollTo(100, false, t0)
	if !edge.HasClass("is-visible") {
		t.Error("Expected edge revealed after scrolling")
	}

	doc.ScrollTo(1400, false, t0)
	if !far.HasClass("is-visible") {
		t.Error("Expected far revealed")
	}
	if r.Pending() != 0 {
		t.Errorf("Expected nothing pending, got %d", r.Pending())
	}

	// Unobserved: scrolling away keeps the class.
	doc.ScrollTo(0, false, t0)
	if !far.HasClass("is-visible") {
		t.Error("Expected is-visible to stay")
	}
}

func TestTiltFor(t *testing.T) {
	r := page.Rect{X: 100, Y: 100, W: 200, H: 100}
	tests := []struct {
		name   string
		px, py float64
		wantX  float64
		wantY  float64
	}{
		{"Center", 200, 150, 0, 0},
		{"TopLeft", 100, 100, 6, -6},
		{"BottomRight", 300, 200, -6, 6},
		{"RightMiddle", 250, 150, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := TiltFor(r, tt.px, tt.py)
			if math.Abs(tr.RotateX-tt.wantX) > 1e-9 || math.Abs(tr.RotateY-tt.wantY) > 1e-9 {
				t.Errorf("Expected rotate (%v,%v), got (%v,%v)", tt.wantX, tt.wantY, tr.RotateX, tr.RotateY)
			}
			if tr.TranslateY != -8 || tr.Perspective != 1000 {
				t.Errorf("Expected lift -8 and perspective 1000, got %v", tr)
			}
		})
	}
}

func TestTiltHoverAndRelease(t *testing.T) {
	doc := page.NewDocument(800, 600)
	card := doc.Add(block("div", "c", page.Rect{X: 100, Y: 100, W: 200, H: 100}, "work-card"))
	if NewTilt(doc) == nil {
		t.Fatal("Expected tilt")
	}

	doc.PointerMove(100, 100, t0)
	if got := card.TransformAt(t0); got.RotateX != 6 || got.RotateY != -6 {
		t.Errorf("Expected immediate tilt, got %v", got)
	}
	if card.Style.Transition.Duration != 0 {
		t.Error("Expected no transition while hovering")
	}

	doc.PointerMove(700, 500, t0)
	if card.Style.Transition.Duration != config.TiltResetTime {
		t.Errorf("Expected release transition, got %v", card.Style.Transition.Duration)
	}
	mid := card.TransformAt(t0.Add(config.TiltResetTime / 4))
	if mid.TranslateY == -8 || mid.TranslateY == 0 {
		t.Errorf("Expected release in progress, got %v", mid)
	}
	if got := card.TransformAt(t0.Add(config.TiltResetTime)); got != restTransform {
		t.Errorf("Expected rest transform, got %v", got)
	}
}

func TestScrollProgress(t *testing.T) {
	doc := page.NewDocument(800, 600)
	line := doc.Add(fixed("div", "scroll-line", page.Rect{W: 800, H: 3}))
	doc.SetScrollHeight(1600, t0)
	NewScrollProgress(doc, line)

	tests := []struct {
		y    float64
		want float64
	}{
		{250, 25},
		{500, 50},
		{1000, 100},
		{0, 0},
	}
	for _, tt := range tests {
		doc.ScrollTo(tt.y, false, t0)
		if line.Style.WidthPercent != tt.want {
			t.Errorf("scroll %v: expected %v%%, got %v%%", tt.y, tt.want, line.Style.WidthPercent)
		}
	}

	short := page.NewDocument(800, 600)
	short.SetScrollHeight(300, t0)
	if got := NewScrollProgress(short, page.NewElement("div", "l")).Percent(); got != 0 {
		t.Errorf("Expected 0 for unscrollable page, got %v", got)
	}
}

func TestBackToTop(t *testing.T) {
	doc := page.NewDocument(800, 600)
	button := doc.Add(fixed("button", "back-to-top", page.Rect{X: 740, Y: 540, W: 40, H: 40}))
	doc.SetScrollHeight(3000, t0)
	b := NewBackToTop(doc, button)

	doc.ScrollTo(300, false, t0)
	if b.Visible() {
		t.Error("Expected hidden at exactly the threshold")
	}
	doc.ScrollTo(301, false, t0)
	if !b.Visible() {
		t.Error("Expected visible past the threshold")
	}

	doc.ScrollTo(2000, false, t0)
	doc.Click(750, 550, t0)
	if doc.Location != "" {
		t.Errorf("Expected no navigation, got %q", doc.Location)
	}
	if !doc.Scrolling() {
		t.Fatal("Expected smooth scroll to start")
	}
	doc.Tick(t0.Add(config.SmoothScrollTime))
	if doc.ScrollY() != 0 {
		t.Errorf("Expected top, got %v", doc.ScrollY())
	}
	if b.Visible() {
		t.Error("Expected hidden back at the top")
	}
}

func TestBackToTopIgnoresClicksWhileHidden(t *testing.T) {
	doc := page.NewDocument(800, 600)
	button := doc.Add(fixed("button", "back-to-top", page.Rect{X: 740, Y: 540, W: 40, H: 40}))
	doc.SetScrollHeight(3000, t0)
	b := NewBackToTop(doc, button)

	clicks := 0
	button.On(page.Click, func(*page.Event) { clicks++ })

	doc.ScrollTo(200, false, t0)
	if b.Visible() {
		t.Fatal("Expected hidden below the threshold")
	}
	if hit := doc.Click(750, 550, t0); hit == button {
		t.Error("Expected the hidden button not to be hit")
	}
	if doc.Scrolling() || doc.ScrollY() != 200 {
		t.Errorf("Expected no scroll, got scrolling=%v y=%v", doc.Scrolling(), doc.ScrollY())
	}
	if clicks != 0 {
		t.Errorf("Expected no click listeners to run, got %d", clicks)
	}

	doc.ScrollTo(400, false, t0)
	if hit := doc.Click(750, 550, t0); hit != button {
		t.Errorf("Expected the shown button to be hit, got %v", hit)
	}
	if clicks != 1 {
		t.Errorf("Expected one click, got %d", clicks)
	}
}

func TestGuardAnchors(t *testing.T) {
	doc := page.NewDocument(800, 600)
	placeholder := doc.Add(block("a", "p", page.Rect{X: 0, Y: 0, W: 50, H: 20}))
	placeholder.Href = "#"
	external := doc.Add(block("a", "r", page.Rect{X: 100, Y: 0, W: 50, H: 20}))
	external.Href = "https://example.com/"
	doc.Location = "/"

	if n := GuardAnchors(doc); n != 1 {
		t.Errorf("Expected 1 guarded link, got %d", n)
	}

	doc.Click(10, 10, t0)
	if doc.Location != "/" {
		t.Errorf("Expected location unchanged, got %q", doc.Location)
	}
	doc.Click(110, 10, t0)
	if doc.Location != "https://example.com/" {
		t.Errorf("Expected real link to navigate, got %q", doc.Location)
	}
}

func TestThemeToggleScenario(t *testing.T) {
	store := theme.NewMemoryStore()
	doc := page.NewDocument(800, 600)
	button := doc.Add(fixed("button", "theme-toggle", page.Rect{X: 700, Y: 10, W: 40, H: 40}))

	tt := NewThemeToggle(doc.Body, button, theme.Load(store, true))
	if tt.Mode() != theme.ModeDark || doc.Body.HasClass("light-mode") {
		t.Fatal("Expected dark mode from system preference")
	}
	if button.Text != "☀️" {
		t.Errorf("Expected switch-to-light label, got %q", button.Text)
	}

	doc.Click(710, 20, t0)
	if !doc.Body.HasClass("light-mode") || button.Text != "🌙" {
		t.Errorf("Expected light mode after click, got label %q", button.Text)
	}
	if v, _ := store.Get(config.ThemeKey); v != "light" {
		t.Errorf("Expected stored light, got %q", v)
	}

	// Reload: the stored value wins over the dark system preference.
	next := page.NewDocument(800, 600)
	nb := next.Add(fixed("button", "theme-toggle", page.Rect{}))
	NewThemeToggle(next.Body, nb, theme.Load(store, true))
	if !next.Body.HasClass("light-mode") {
		t.Error("Expected light mode on reload")
	}
}
