package tty

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/field"
	"github.com/iburimskiy/hero-field/internal/frame"
	"github.com/iburimskiy/hero-field/internal/theme"
)

const hint = " t: theme  q: quit "

// App drives a field.Renderer on a tcell screen.
type App struct {
	screen  tcell.Screen
	surface Surface
	queue   frame.Queue
	field   *field.Renderer
	sw      *theme.Switch
}

// New sizes the field to the screen and starts it. The screen must already
// be initialised.
func New(screen tcell.Screen, sw *theme.Switch, rng field.Rand) *App {
	a := &App{screen: screen, sw: sw}
	cols, rows := screen.Size()
	a.field = field.Initialize(&a.surface, cols, rows*2, &a.queue, rng)
	return a
}

func (a *App) Field() *field.Renderer { return a.field }

func (a *App) Surface() *Surface { return &a.surface }

// Resize follows a terminal of cols×rows cells.
func (a *App) Resize(cols, rows int) {
	a.field.Resize(cols, rows*2)
	a.screen.Sync()
}

// SetFocused pauses the field while the terminal is in the background.
func (a *App) SetFocused(focused bool) {
	a.field.SetHidden(!focused)
}

// ToggleTheme flips and persists the theme, repainting at once.
func (a *App) ToggleTheme() {
	if _, err := a.sw.Toggle(); err != nil {
		log.Printf("theme: %v", err)
	}
	a.present()
}

// HandleEvent applies one terminal event and reports whether to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.Resize(ev.Size())
	case *tcell.EventFocus:
		a.SetFocused(ev.Focused)
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 't':
			a.ToggleTheme()
		}
	}
	return false
}

// Tick runs due frames and shows the result.
func (a *App) Tick(now time.Time) {
	if a.queue.Flush(now) > 0 {
		a.present()
	}
}

func (a *App) present() {
	pal := a.sw.Mode().Palette()
	a.surface.Present(a.screen, pal)

	cols, rows := a.screen.Size()
	style := tcell.StyleDefault.Foreground(rgb(pal.Accent)).Background(rgb(pal.Background))
	x := cols - len(hint)
	for i, r := range hint {
		if x+i >= 0 {
			a.screen.SetContent(x+i, rows-1, r, nil, style)
		}
	}
	a.screen.Show()
}

// Run pumps terminal events and display ticks until ctx ends or the user
// quits.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableFocus()
	defer a.screen.DisableFocus()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / config.TerminalFrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || a.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.Tick(now)
		}
	}
}
