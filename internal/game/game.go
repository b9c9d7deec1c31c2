package game

import (
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/field"
	"github.com/iburimskiy/hero-field/internal/frame"
	"github.com/iburimskiy/hero-field/internal/page"
	"github.com/iburimskiy/hero-field/internal/site"
	"github.com/iburimskiy/hero-field/internal/sound"
	"github.com/iburimskiy/hero-field/internal/theme"
)

// Options configures NewGame. Every field is optional.
type Options struct {
	Store      theme.Store
	SystemDark bool
	Chime      *sound.Chime
	Rand       field.Rand
}

type game struct {
	site   *site.Site
	queue  frame.Queue
	canvas canvas
	field  *field.Renderer

	// window
	width, height int
	hidden        bool

	// pointer
	pointerX, pointerY int
	pointerIn          bool

	// page
	location string
	revealed map[*page.Element]time.Time
	started  time.Time
	showHUD  bool
}

// NewGame builds the page for the default window size and starts the
// particle field behind it.
func NewGame(opts Options) *game {
	now := time.Now()
	g := &game{
		width:    config.WindowWidth,
		height:   config.WindowHeight,
		revealed: map[*page.Element]time.Time{},
		started:  now,
	}

	sw := theme.Load(opts.Store, opts.SystemDark)
	g.site = site.New(float64(g.width), float64(g.height), sw)
	g.location = g.site.Doc.Location

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
	}
	g.field = field.Initialize(&g.canvas, g.width, g.height, &g.queue, rng)
	if g.field == nil {
		log.Printf("field: no drawing surface, particles disabled")
	}

	if opts.Chime != nil {
		for _, el := range []*page.Element{g.site.Toggle, g.site.BackToTop} {
			el.On(page.Click, func(*page.Event) { opts.Chime.Play() })
		}
	}
	return g
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Now()
	doc := g.site.Doc

	// The window standing in for the page: minimised or in the background
	// counts as hidden.
	g.setHidden(ebiten.IsWindowMinimized() || !ebiten.IsFocused())

	g.updatePointer(now)

	if _, dy := ebiten.Wheel(); dy != 0 {
		doc.ScrollBy(-dy*config.WheelStep, now)
	}
	_, vh := doc.Viewport()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		doc.ScrollTo(doc.ScrollY()+vh*0.9, true, now)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		doc.ScrollTo(doc.ScrollY()-vh*0.9, true, now)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		doc.ScrollTo(0, true, now)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		doc.ScrollTo(doc.MaxScroll(), true, now)
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.showHUD = !g.showHUD
	}

	if g.pointerIn && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		doc.Click(float64(g.pointerX), float64(g.pointerY), now)
	}

	doc.Tick(now)
	g.site.Cursor.Tick(now)
	g.followLocation()

	g.queue.Flush(now)
	return nil
}

func (g *game) setHidden(hidden bool) {
	if hidden == g.hidden {
		return
	}
	g.hidden = hidden
	g.field.SetHidden(hidden)
}

func (g *game) updatePointer(now time.Time) {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.width && y < g.height
	doc := g.site.Doc

	switch {
	case inside && (!g.pointerIn || x != g.pointerX || y != g.pointerY):
		doc.PointerMove(float64(x), float64(y), now)
	case !inside && g.pointerIn:
		doc.PointerLeave(now)
	}
	g.pointerX, g.pointerY, g.pointerIn = x, y, inside
}

// followLocation reports navigation the page cannot perform itself.
func (g *game) followLocation() {
	loc := g.site.Doc.Location
	if loc == g.location {
		return
	}
	g.location = loc
	if !strings.HasPrefix(loc, "#") {
		log.Printf("navigate: %s", loc)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.site.Resize(float64(w), float64(h), time.Now())
		g.field.Resize(w, h)
	}
	return w, h
}
