package field_test

import (
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/iburimskiy/hero-field/internal/config"
	"github.com/iburimskiy/hero-field/internal/field"
	"github.com/iburimskiy/hero-field/internal/frame"
)

type circle struct {
	x, y, r float64
	c       color.NRGBA
}

// recordingSurface keeps the circles of the last cleared frame.
type recordingSurface struct {
	w, h    int
	noCtx   bool
	clears  int
	circles []circle
	resizes int
}

func (s *recordingSurface) SetSize(w, h int) {
	s.w, s.h = w, h
	s.resizes++
}

func (s *recordingSurface) Context2D() (field.Context, bool) {
	if s.noCtx {
		return nil, false
	}
	return s, true
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordingSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	s.circles = append(s.circles, circle{x, y, r, c})
}

func newRenderer(t *testing.T, w, h int) (*field.Renderer, *recordingSurface, *frame.Queue) {
	t.Helper()
	s := &recordingSurface{}
	q := &frame.Queue{}
	r := field.Initialize(s, w, h, q, rand.New(rand.NewSource(7)))
	if r == nil {
		t.Fatal("Expected renderer, got nil")
	}
	return r, s, q
}

func TestInitializeWithoutSurface(t *testing.T) {
	q := &frame.Queue{}
	if r := field.Initialize(nil, 800, 600, q, rand.New(rand.NewSource(1))); r != nil {
		t.Errorf("Expected nil renderer without surface, got %v", r)
	}
	if q.Len() != 0 {
		t.Errorf("Expected no scheduled frames, got %d", q.Len())
	}
}

func TestInitializeWithoutRand(t *testing.T) {
	s := &recordingSurface{}
	q := &frame.Queue{}
	r := field.Initialize(s, 800, 600, q, nil)
	if r == nil {
		t.Fatal("Expected renderer seeded from the clock, got nil")
	}
	if got := len(r.Particles()); got != config.ParticleCount {
		t.Errorf("Expected %d particles, got %d", config.ParticleCount, got)
	}
	if r.State() != field.Running {
		t.Errorf("Expected running, got %v", r.State())
	}
}

func TestInitializeWithoutContext(t *testing.T) {
	q := &frame.Queue{}
	s := &recordingSurface{noCtx: true}
	if r := field.Initialize(s, 800, 600, q, rand.New(rand.NewSource(1))); r != nil {
		t.Errorf("Expected nil renderer without 2D context, got %v", r)
	}
	if s.resizes != 0 {
		t.Errorf("Expected surface untouched, got %d resizes", s.resizes)
	}
	if q.Len() != 0 {
		t.Errorf("Expected no scheduled frames, got %d", q.Len())
	}
}

func TestNilRendererIsNoop(t *testing.T) {
	var r *field.Renderer
	r.Resize(10, 10)
	r.SetHidden(true)
	r.SetHidden(false)
	if r.State() != field.Stopped {
		t.Errorf("Expected stopped, got %v", r.State())
	}
	if r.Particles() != nil {
		t.Error("Expected no particles")
	}
}

func TestInitializeScenario800x600(t *testing.T) {
	r, s, q := newRenderer(t, 800, 600)

	if s.w != 800 || s.h != 600 {
		t.Errorf("Expected surface 800x600, got %dx%d", s.w, s.h)
	}
	if r.State() != field.Running {
		t.Errorf("Expected running, got %v", r.State())
	}
	if r.Frames() != 1 {
		t.Errorf("Expected first frame rendered on start, got %d", r.Frames())
	}
	if q.Len() != 1 {
		t.Errorf("Expected one pending frame, got %d", q.Len())
	}
	if len(s.circles) != config.ParticleCount {
		t.Errorf("Expected %d circles drawn, got %d", config.ParticleCount, len(s.circles))
	}

	pool := r.Particles()
	if len(pool) != 60 {
		t.Fatalf("Expected 60 particles, got %d", len(pool))
	}
	for i, p := range pool {
		if p.R < 0 || p.R >= 2 {
			t.Errorf("particle %d: radius %v outside [0,2)", i, p.R)
		}
		if p.A < 0 || p.A >= 1 {
			t.Errorf("particle %d: alpha %v outside [0,1)", i, p.A)
		}
		if p.DX < -0.2 || p.DX > 0.2 || p.DY < -0.2 || p.DY > 0.2 {
			t.Errorf("particle %d: velocity (%v,%v) outside [-0.2,0.2]", i, p.DX, p.DY)
		}
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("particle %d: position (%v,%v) outside surface", i, p.X, p.Y)
		}
	}
}

func TestDrawUsesParticleAlpha(t *testing.T) {
	_, s, _ := newRenderer(t, 320, 200)
	for i, c := range s.circles {
		if c.c.R != 255 || c.c.G != 255 || c.c.B != 255 {
			t.Errorf("circle %d: expected white ink, got %v", i, c.c)
		}
	}
}

func TestResizeRegeneratesPool(t *testing.T) {
	sizes := []struct {
		name string
		w, h int
	}{
		{"Shrink", 200, 100},
		{"Grow", 1920, 1080},
		{"Narrow", 1, 900},
		{"Square", 64, 64},
	}

	r, s, _ := newRenderer(t, 800, 600)
	before := r.Particles()

	for _, tt := range sizes {
		t.Run(tt.name, func(t *testing.T) {
			r.Resize(tt.w, tt.h)
			if s.w != tt.w || s.h != tt.h {
				t.Errorf("Expected surface %dx%d, got %dx%d", tt.w, tt.h, s.w, s.h)
			}
			pool := r.Particles()
			if len(pool) != config.ParticleCount {
				t.Fatalf("Expected %d particles, got %d", config.ParticleCount, len(pool))
			}
			for i, p := range pool {
				if p.X < 0 || p.X >= float64(tt.w) || p.Y < 0 || p.Y >= float64(tt.h) {
					t.Errorf("particle %d: (%v,%v) outside %dx%d", i, p.X, p.Y, tt.w, tt.h)
				}
			}
		})
	}

	after := r.Particles()
	if after[0] == before[0] {
		t.Error("Expected fresh particles after resize")
	}
}

func TestResizeDoesNotStartSecondChain(t *testing.T) {
	r, _, q := newRenderer(t, 800, 600)
	r.Resize(400, 300)
	r.Resize(640, 480)
	if q.Len() != 1 {
		t.Errorf("Expected one pending frame after resizes, got %d", q.Len())
	}
	q.Flush(time.Now())
	if r.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", r.Frames())
	}
	for _, p := range r.Particles() {
		if p.X >= 640 || p.Y >= 480 {
			t.Fatalf("Expected only new-generation particles, got (%v,%v)", p.X, p.Y)
		}
	}
}

func TestFramesFollowSchedule(t *testing.T) {
	r, s, q := newRenderer(t, 800, 600)
	for i := 0; i < 10; i++ {
		if n := q.Flush(time.Now()); n != 1 {
			t.Fatalf("flush %d: expected 1 callback, got %d", i, n)
		}
	}
	if r.Frames() != 11 {
		t.Errorf("Expected 11 frames, got %d", r.Frames())
	}
	if s.clears != 11 {
		t.Errorf("Expected a clear per frame, got %d", s.clears)
	}
}

func TestHiddenStopsFrames(t *testing.T) {
	r, _, q := newRenderer(t, 800, 600)
	q.Flush(time.Now())

	r.SetHidden(true)
	if r.State() != field.Stopped {
		t.Errorf("Expected stopped, got %v", r.State())
	}
	if q.Len() != 0 {
		t.Errorf("Expected pending frame cancelled, got %d", q.Len())
	}

	frames := r.Frames()
	for i := 0; i < 5; i++ {
		q.Flush(time.Now())
	}
	if r.Frames() != frames {
		t.Errorf("Expected no frames while hidden, got %d more", r.Frames()-frames)
	}
}

func TestHiddenTwiceThenVisibleStartsOneChain(t *testing.T) {
	r, _, q := newRenderer(t, 800, 600)

	r.SetHidden(true)
	r.SetHidden(true)
	r.SetHidden(false)
	r.SetHidden(false)

	if q.Len() != 1 {
		t.Fatalf("Expected exactly one pending frame, got %d", q.Len())
	}

	start := r.Frames()
	for i := 0; i < 4; i++ {
		q.Flush(time.Now())
	}
	if got := r.Frames() - start; got != 4 {
		t.Errorf("Expected 4 frames over 4 flushes, got %d", got)
	}
}

// Cancelling from inside a flush must still drop the stale chain.
func TestHideDuringFlush(t *testing.T) {
	r, _, q := newRenderer(t, 800, 600)

	q.RequestFrame(func() { r.SetHidden(true) })
	q.Flush(time.Now())

	if r.State() != field.Stopped {
		t.Errorf("Expected stopped, got %v", r.State())
	}
	if q.Len() != 0 {
		t.Errorf("Expected nothing pending, got %d", q.Len())
	}
}

func TestStaleCallbackIgnored(t *testing.T) {
	_, _, q := newRenderer(t, 800, 600)

	// A host that fails to honour cancellation still must not double the loop.
	leaky := &leakyScheduler{inner: q}
	r2 := field.Initialize(&recordingSurface{}, 100, 100, leaky, rand.New(rand.NewSource(3)))
	r2.SetHidden(true)
	r2.SetHidden(false)

	frames := r2.Frames()
	q.Flush(time.Now())
	if got := r2.Frames() - frames; got != 1 {
		t.Errorf("Expected stale chain dropped, got %d frames in one flush", got)
	}
}

type leakyScheduler struct {
	inner *frame.Queue
}

func (l *leakyScheduler) RequestFrame(fn func()) field.FrameHandle {
	return l.inner.RequestFrame(fn)
}

func (l *leakyScheduler) CancelFrame(field.FrameHandle) {}
