package field

import (
	"image/color"
	"math/rand"
	"time"
)

// Ink is the particle hue; each particle only varies its alpha.
var Ink = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Context is the 2D drawing context of a Surface.
type Context interface {
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
}

// Surface is the full-viewport drawing surface behind the page.
type Surface interface {
	SetSize(w, h int)
	// Context2D reports false when the host cannot draw.
	Context2D() (Context, bool)
}

// FrameHandle identifies a pending frame request. Zero means none.
type FrameHandle uint64

// Scheduler invokes callbacks once per display refresh.
type Scheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Renderer animates a fixed pool of particles on a Surface.
//
// It is driven from a single goroutine: the host's event loop calls Resize
// and SetHidden, and the Scheduler runs frames on that same goroutine.
type Renderer struct {
	surface Surface
	ctx     Context
	sched   Scheduler
	rng     Rand

	width, height int
	pool          []Particle

	state   State
	pending FrameHandle
	chain   uint64 // bumped on every start; frames of older chains are dropped
	frames  uint64
}

// Initialize sizes surface to the viewport, spawns the pool and starts the
// render loop. It returns nil when there is no surface or no 2D context; the
// field is decoration and simply stays off. A nil rng is seeded from the clock.
func Initialize(surface Surface, w, h int, sched Scheduler, rng Rand) *Renderer {
	if surface == nil || sched == nil {
		return nil
	}
	ctx, ok := surface.Context2D()
	if !ok || ctx == nil {
		return nil
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	r := &Renderer{
		surface: surface,
		ctx:     ctx,
		sched:   sched,
		rng:     rng,
	}
	r.Resize(w, h)
	r.start()
	return r
}

// Resize matches the surface to a new viewport and replaces the whole pool.
func (r *Renderer) Resize(w, h int) {
	if r == nil {
		return
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.width, r.height = w, h
	r.surface.SetSize(w, h)
	r.pool = Spawn(r.rng, w, h)
}

// SetHidden suspends the loop while the page is hidden and restarts it with
// a fresh frame once visible. Repeating the current state is a no-op.
func (r *Renderer) SetHidden(hidden bool) {
	if r == nil {
		return
	}
	switch {
	case hidden && r.state == Running:
		r.stop()
	case !hidden && r.state == Stopped:
		r.start()
	}
}

func (r *Renderer) start() {
	r.state = Running
	r.chain++
	r.render(r.chain)
}

func (r *Renderer) stop() {
	r.state = Stopped
	if r.pending != 0 {
		r.sched.CancelFrame(r.pending)
		r.pending = 0
	}
}

func (r *Renderer) render(chain uint64) {
	if r.state != Running || chain != r.chain {
		return
	}
	r.pending = 0

	r.ctx.Clear()
	for i := range r.pool {
		p := &r.pool[i]
		c := Ink
		c.A = uint8(clamp01(p.A) * 255)
		r.ctx.FillCircle(p.X, p.Y, p.R, c)
		p.Advance(r.width, r.height)
	}
	r.frames++

	r.pending = r.sched.RequestFrame(func() { r.render(chain) })
}

// State reports whether frames are being scheduled.
func (r *Renderer) State() State {
	if r == nil {
		return Stopped
	}
	return r.state
}

// Size returns the current surface dimensions.
func (r *Renderer) Size() (int, int) {
	if r == nil {
		return 0, 0
	}
	return r.width, r.height
}

// Frames returns how many frames have been rendered.
func (r *Renderer) Frames() uint64 {
	if r == nil {
		return 0
	}
	return r.frames
}

// Particles returns a copy of the current pool.
func (r *Renderer) Particles() []Particle {
	if r == nil {
		return nil
	}
	out := make([]Particle, len(r.pool))
	copy(out, r.pool)
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
