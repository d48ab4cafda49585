// Hoists every gradient effect of the gallery into one configurable
// value: an animation loop, a delta vector, a color ramp and a shape.
// Effects are pure: Frame only depends on its argument.
package gradfx

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/benoitkugler/gradfx/gradpath"
)

// Kind selects the geometry built by an Effect
type Kind uint8

const (
	LinearKind Kind = iota
	RadialKind
	SweepKind
)

func (k Kind) String() string {
	switch k {
	case LinearKind:
		return "linear"
	case RadialKind:
		return "radial"
	case SweepKind:
		return "sweep"
	default:
		return "<unknown Kind>"
	}
}

// ParseKind is the inverse of Kind.String
func ParseKind(s string) (Kind, error) {
	for _, k := range [...]Kind{LinearKind, RadialKind, SweepKind} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown gradient kind %q", gradanim.ErrInvalidConfiguration, s)
}

// Effect describes one (possibly animated) gradient.
//
// The interpolated position is
//
//	ix = Origin.X + Axis.X * LoopX(t)
//	iy = Origin.Y + Axis.Y * LoopY(t)
//
// where LoopY defaults to LoopX. Static effects have no loop,
// and are positioned at Origin.
// Linear effects span (ix, iy) -> (ix, iy) + Delta, radial
// effects are centered on (ix, iy) with radius ix + BaseRadius,
// sweep effects are centered on Origin.
type Effect struct {
	Name        string
	Description string

	Kind         Kind
	LoopX, LoopY *gradanim.Loop
	Origin       gradpath.Point
	Axis         gradpath.Point // usually 0 or 1 on each axis
	Delta        gradpath.Point
	BaseRadius   float64

	Stops      gradpath.Stops
	Spread     gradpath.SpreadMethod
	Shape      Shape
	Background color.Color // painted below the shape, nil for transparent
}

// Frame is the ephemeral output of an effect, for one clock tick.
type Frame struct {
	Effect     string
	Elapsed    time.Duration
	Gradient   gradpath.Gradient
	Shape      Shape
	Background color.Color
}

// IsAnimated returns true if the effect depends on time.
func (e *Effect) IsAnimated() bool { return e.LoopX != nil || e.LoopY != nil }

// Period returns the time after which the effect repeats,
// or 0 for static effects.
func (e *Effect) Period() time.Duration {
	var px, py time.Duration
	if e.LoopX != nil {
		px = e.LoopX.Duration
	}
	if e.LoopY != nil {
		py = e.LoopY.Duration
	}
	switch {
	case px == 0:
		return py
	case py == 0:
		return px
	}
	return px / gcd(px, py) * py
}

func gcd(a, b time.Duration) time.Duration {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (e *Effect) loops() (x, y *gradanim.Loop) {
	x, y = e.LoopX, e.LoopY
	if x == nil {
		x = y
	}
	if y == nil {
		y = x
	}
	return x, y
}

// Position returns the interpolated (ix, iy) at `elapsed`.
func (e *Effect) Position(elapsed time.Duration) (ix, iy float64) {
	lx, ly := e.loops()
	if lx == nil { // static
		return e.Origin.X, e.Origin.Y
	}
	return e.Origin.X + e.Axis.X*lx.Value(elapsed), e.Origin.Y + e.Axis.Y*ly.Value(elapsed)
}

// Geometry builds the gradient geometry at `elapsed`.
func (e *Effect) Geometry(elapsed time.Duration) gradpath.Geometry {
	ix, iy := e.Position(elapsed)
	switch e.Kind {
	case RadialKind:
		return gradpath.RadialAt(ix, iy, e.BaseRadius)
	case SweepKind:
		return gradpath.SweepAt(e.Origin)
	default:
		return gradpath.LinearAt(ix, iy, e.Delta.X, e.Delta.Y)
	}
}

// Frame returns the gradient to paint at `elapsed`.
// The effect must be valid.
func (e *Effect) Frame(elapsed time.Duration) Frame {
	return Frame{
		Effect:  e.Name,
		Elapsed: elapsed,
		Gradient: gradpath.Gradient{
			Geometry: e.Geometry(elapsed),
			Stops:    e.Stops,
			Spread:   e.Spread,
		},
		Shape:      e.Shape,
		Background: e.Background,
	}
}

// Validate checks the whole configuration once, so that
// Frame never fails.
func (e *Effect) Validate() error {
	if err := e.validate(); err != nil {
		return fmt.Errorf("effect %q: %w", e.Name, err)
	}
	return nil
}

func (e *Effect) validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: missing name", gradanim.ErrInvalidConfiguration)
	}
	if e.Kind > SweepKind {
		return fmt.Errorf("%w: unknown gradient kind %d", gradanim.ErrInvalidConfiguration, e.Kind)
	}
	for _, l := range [...]*gradanim.Loop{e.LoopX, e.LoopY} {
		if l == nil {
			continue
		}
		if err := l.Validate(); err != nil {
			return err
		}
	}
	if err := e.Stops.Validate(); err != nil {
		return err
	}
	if e.Spread > gradpath.RepeatSpread {
		return fmt.Errorf("%w: unknown spread method %d", gradanim.ErrInvalidConfiguration, e.Spread)
	}
	if e.Shape == nil {
		return fmt.Errorf("%w: missing shape", gradanim.ErrInvalidConfiguration)
	}
	if err := e.Shape.validate(); err != nil {
		return err
	}
	if math.IsNaN(e.Origin.X) || math.IsNaN(e.Origin.Y) || math.IsNaN(e.Delta.X) || math.IsNaN(e.Delta.Y) {
		return fmt.Errorf("%w: NaN coordinates", gradanim.ErrInvalidConfiguration)
	}
	// an infinite axis times a zero loop value is NaN
	if !isFinite(e.Axis.X) || !isFinite(e.Axis.Y) {
		return fmt.Errorf("%w: axis (%g, %g) must be finite", gradanim.ErrInvalidConfiguration, e.Axis.X, e.Axis.Y)
	}
	if e.Kind == RadialKind {
		// the radius follows ix, check it on both ends of the loop
		lo, hi := e.Origin.X, e.Origin.X
		if lx, _ := e.loops(); lx != nil {
			a, b := e.Origin.X+e.Axis.X*lx.Start, e.Origin.X+e.Axis.X*lx.End
			lo, hi = math.Min(a, b), math.Max(a, b)
		}
		if lo+e.BaseRadius < 0 || math.IsInf(hi+e.BaseRadius, 0) {
			return fmt.Errorf("%w: radius out of range [%g, %g]", gradanim.ErrInvalidConfiguration,
				lo+e.BaseRadius, hi+e.BaseRadius)
		}
	}
	return nil
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
