package page

import (
	"fmt"
	"math"
	"time"
)

// Transform is perspective(P) rotateX(RX) rotateY(RY) translateY(TY), with
// angles in degrees and lengths in px.
type Transform struct {
	Perspective float64
	RotateX     float64
	RotateY     float64
	TranslateY  float64
}

func (t Transform) String() string {
	return fmt.Sprintf("perspective(%gpx) rotateX(%gdeg) rotateY(%gdeg) translateY(%gpx)",
		t.Perspective, t.RotateX, t.RotateY, t.TranslateY)
}

func (t Transform) Lerp(to Transform, k float64) Transform {
	return Transform{
		Perspective: t.Perspective + (to.Perspective-t.Perspective)*k,
		RotateX:     t.RotateX + (to.RotateX-t.RotateX)*k,
		RotateY:     t.RotateY + (to.RotateY-t.RotateY)*k,
		TranslateY:  t.TranslateY + (to.TranslateY-t.TranslateY)*k,
	}
}

// Scale approximates the projected size of a w×h box under t: each rotation
// foreshortens the perpendicular axis.
func (t Transform) Scale() (sx, sy float64) {
	rad := math.Pi / 180
	return math.Cos(t.RotateY * rad), math.Cos(t.RotateX * rad)
}

// Transition animates style changes. The zero value is "none".
type Transition struct {
	Property string
	Duration time.Duration
	Easing   Easing
}

// Easing maps animation progress in [0,1] to output progress.
type Easing func(p float64) float64

func Linear(p float64) float64 { return p }

// CubicBezier returns the CSS cubic-bezier(x1, y1, x2, y2) timing function.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	// Polynomial coefficients, as in the CSS reference implementation.
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solve := func(x float64) float64 {
		t := x
		for i := 0; i < 8; i++ {
			d := sampleX(t) - x
			if math.Abs(d) < 1e-7 {
				return t
			}
			s := slopeX(t)
			if math.Abs(s) < 1e-6 {
				break
			}
			t -= d / s
		}

		lo, hi := 0.0, 1.0
		t = x
		for lo < hi {
			v := sampleX(t)
			if math.Abs(v-x) < 1e-7 {
				return t
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			t = (hi-lo)/2 + lo
			if hi-lo < 1e-9 {
				break
			}
		}
		return t
	}

	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return sampleY(solve(p))
	}
}
