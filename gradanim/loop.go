// Maps a monotonically advancing animation clock to looping
// scalar values, which are then used to parametrize
// gradient geometry (see gradpath and gradfx).
package gradanim

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfiguration is returned (wrapped) by every configuration time
// check of the module.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// RepeatMode is the type for loop repetition
type RepeatMode uint8

// Loop repetition constants
const (
	Restart RepeatMode = iota // jump back to Start on wraparound
	Reverse                   // triangle wave, no jump
)

func (r RepeatMode) String() string {
	switch r {
	case Restart:
		return "restart"
	case Reverse:
		return "reverse"
	default:
		return "<unknown RepeatMode>"
	}
}

// ParseRepeatMode is the inverse of RepeatMode.String.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch s {
	case "", "restart":
		return Restart, nil
	case "reverse":
		return Reverse, nil
	}
	return 0, fmt.Errorf("%w: unknown repeat mode %q", ErrInvalidConfiguration, s)
}

// Loop describes one infinitely repeated animation
// between Start and End.
type Loop struct {
	Duration   time.Duration
	Repeat     RepeatMode
	Start, End float64
	Easing     Easing // nil means Linear
}

// NewLoop returns a linear loop, checked with Validate.
func NewLoop(duration time.Duration, repeat RepeatMode, start, end float64) (Loop, error) {
	l := Loop{Duration: duration, Repeat: repeat, Start: start, End: end}
	return l, l.Validate()
}

// Validate checks the loop once, at configuration time, so that
// per frame evaluation never has to.
// A loop with Start == End is valid: it is simply static.
func (l Loop) Validate() error {
	if l.Duration <= 0 {
		return fmt.Errorf("%w: loop duration must be positive, got %s", ErrInvalidConfiguration, l.Duration)
	}
	if l.Repeat > Reverse {
		return fmt.Errorf("%w: unknown repeat mode %d", ErrInvalidConfiguration, l.Repeat)
	}
	if !isFinite(l.Start) || !isFinite(l.End) {
		return fmt.Errorf("%w: loop bounds must be finite, got [%g, %g]", ErrInvalidConfiguration, l.Start, l.End)
	}
	return nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Phase returns the normalized position of `elapsed` in the
// current repetition, in [0, 1).
// Negative times wrap into the same range.
func (l Loop) Phase(elapsed time.Duration) float64 {
	r := elapsed % l.Duration
	if r < 0 {
		r += l.Duration
	}
	return float64(r) / float64(l.Duration)
}

// Value returns the interpolated value at `elapsed`.
// The loop must be valid.
func (l Loop) Value(elapsed time.Duration) float64 {
	return l.At(l.Phase(elapsed))
}

// ValueMs is the same as Value, for a clock expressed
// in (fractional) milliseconds.
func (l Loop) ValueMs(elapsedMs float64) float64 {
	d := float64(l.Duration) / float64(time.Millisecond)
	phase := math.Mod(elapsedMs, d)
	if phase < 0 {
		phase += d
	}
	phase /= d
	if phase >= 1 { // rounding of the modulo
		phase = 0
	}
	return l.At(phase)
}

// At returns the value for the given phase in [0, 1).
func (l Loop) At(phase float64) float64 {
	f := phase
	if l.Repeat == Reverse {
		// forward on the first half, backward on the second
		if phase < 0.5 {
			f = 2 * phase
		} else {
			f = 2 - 2*phase
		}
	}
	if l.Easing != nil {
		f = l.Easing(f)
	}
	return lerp(l.Start, l.End, f)
}

// Min returns the smallest value the loop may produce.
func (l Loop) Min() float64 { return math.Min(l.Start, l.End) }

// Max returns the largest value the loop may produce.
func (l Loop) Max() float64 { return math.Max(l.Start, l.End) }

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
