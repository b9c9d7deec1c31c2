package field

import (
	"math"

	"github.com/iburimskiy/hero-field/internal/config"
)

// Rand is the random source the pool is drawn from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Particle is one dot of the field. Only X and Y change after spawn.
type Particle struct {
	X, Y   float64
	R      float64
	DX, DY float64
	A      float64
}

// Spawn returns a fresh pool of config.ParticleCount particles spread over a
// w×h surface.
func Spawn(rng Rand, w, h int) []Particle {
	pool := make([]Particle, config.ParticleCount)
	for i := range pool {
		pool[i] = Particle{
			X:  rng.Float64() * float64(w),
			Y:  rng.Float64() * float64(h),
			R:  rng.Float64() * config.MaxRadius,
			DX: (rng.Float64() - 0.5) * config.SpeedSpread,
			DY: (rng.Float64() - 0.5) * config.SpeedSpread,
			A:  rng.Float64(),
		}
	}
	return pool
}

// Advance moves p by its velocity and wraps it onto the w×h torus.
func (p *Particle) Advance(w, h int) {
	p.X = wrap(p.X+p.DX, float64(w))
	p.Y = wrap(p.Y+p.DY, float64(h))
}

// wrap maps v into [0, dim). A zero-length dimension pins v at 0.
func wrap(v, dim float64) float64 {
	if dim <= 0 {
		return 0
	}
	v = math.Mod(v, dim)
	if v < 0 {
		v += dim
	}
	// -tiny + dim rounds up to dim
	if v >= dim {
		v = 0
	}
	return v
}
