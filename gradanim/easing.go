package gradanim

import (
	"fmt"
	"math"
)

// Easing maps the linear progress of a loop, in [0, 1],
// to an eased progress, also in [0, 1].
// Easings must be monotonic and fix 0 and 1, so that the
// loop values stay between Start and End.
type Easing func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 { return t }

// FastOutSlowIn is the standard "emphasized" motion curve,
// cubic-bezier(0.4, 0, 0.2, 1).
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// LinearOutSlowIn is cubic-bezier(0, 0, 0.2, 1).
var LinearOutSlowIn = CubicBezier(0, 0, 0.2, 1)

// FastOutLinearIn is cubic-bezier(0.4, 0, 1, 1).
var FastOutLinearIn = CubicBezier(0.4, 0, 1, 1)

var easingNames = map[string]Easing{
	"":                   Linear,
	"linear":             Linear,
	"fast-out-slow-in":   FastOutSlowIn,
	"linear-out-slow-in": LinearOutSlowIn,
	"fast-out-linear-in": FastOutLinearIn,
}

// ParseEasing returns the named easing.
func ParseEasing(name string) (Easing, error) {
	e, ok := easingNames[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q", ErrInvalidConfiguration, name)
	}
	return e, nil
}

// EasingName returns the name of a known easing, comparing
// samples of the curves, or false for custom easings.
// A nil easing is Linear.
func EasingName(e Easing) (string, bool) {
	if e == nil {
		return "linear", true
	}
	for _, name := range [...]string{"linear", "fast-out-slow-in", "linear-out-slow-in", "fast-out-linear-in"} {
		known := easingNames[name]
		same := true
		for _, t := range [...]float64{0.1, 0.25, 0.5, 0.75, 0.9} {
			if e(t) != known(t) {
				same = false
				break
			}
		}
		if same {
			return name, true
		}
	}
	return "", false
}

// CubicBezier returns an easing matching CSS cubic-bezier(x1, y1, x2, y2).
// The curve starts at (0,0) and ends at (1,1); y1 and y2 must be in [0, 1]
// for the result to stay monotonic.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson first
		for i := 0; i < 8; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// then bisection, which always converges in [0,1]
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 20; i++ {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return clampUnit(sampleCurve(y1, y2, u))
	}
}

// one coordinate of the bezier with end points 0 and 1
func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
