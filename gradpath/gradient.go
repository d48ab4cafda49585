// Describes gradient brushes: their geometry (linear, radial or sweep),
// their color ramp and how they extend outside of their geometry,
// plus the paths used to mask them.
// Values are consumed by painting drivers, see gradraster or gradpdf.
package gradpath

import (
	"fmt"
	"image/color"
	"math"

	"github.com/benoitkugler/gradfx/gradanim"
)

// SpreadMethod is the type for the tiling behavior
// of a gradient outside of its geometry.
type SpreadMethod byte

// Spread (tiling) constants
const (
	PadSpread     SpreadMethod = iota // clamp the edge colors
	ReflectSpread                     // mirror the ramp
	RepeatSpread                      // repeat the ramp
)

func (s SpreadMethod) String() string {
	switch s {
	case PadSpread:
		return "clamp"
	case ReflectSpread:
		return "mirror"
	case RepeatSpread:
		return "repeat"
	default:
		return "<unknown SpreadMethod>"
	}
}

// ParseSpreadMethod accepts both the SVG and the toolkit names.
func ParseSpreadMethod(s string) (SpreadMethod, error) {
	switch s {
	case "", "clamp", "pad":
		return PadSpread, nil
	case "mirror", "reflect":
		return ReflectSpread, nil
	case "repeat", "repeated":
		return RepeatSpread, nil
	}
	return 0, fmt.Errorf("%w: unknown spread method %q", gradanim.ErrInvalidConfiguration, s)
}

// Apply maps the gradient parameter `t` to [0, 1]
func (s SpreadMethod) Apply(t float64) float64 {
	switch s {
	case RepeatSpread:
		t -= math.Floor(t)
	case ReflectSpread:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	default:
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return t
}

// Point is a position in user space. Coordinates may be infinite:
// the painting driver then decides where the geometry ends.
type Point struct{ X, Y float64 }

// Add returns p+q
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// IsFinite returns true if both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Geometry is one of Linear, Radial or Sweep.
// Geometries are values: they are rebuilt, never mutated.
type Geometry interface {
	isGeometry()
}

// Linear is a gradient along the segment Start -> End
type Linear struct{ Start, End Point }

// Radial is a gradient from Center to the circle of radius Radius
type Radial struct {
	Center Point
	Radius float64
}

// Sweep is an angular gradient around Center, starting at
// angle 0 (positive x axis) and turning clockwise in screen space
type Sweep struct{ Center Point }

func (Linear) isGeometry() {}
func (Radial) isGeometry() {}
func (Sweep) isGeometry()  {}

// LinearAt returns the band translated to (ix, iy),
// spanning the fixed extent (dx, dy).
func LinearAt(ix, iy, dx, dy float64) Linear {
	return Linear{Start: Point{ix, iy}, End: Point{ix + dx, iy + dy}}
}

// RadialAt returns the circle centered at (ix, iy), whose radius
// grows with ix from the base radius r0.
func RadialAt(ix, iy, r0 float64) Radial {
	return Radial{Center: Point{ix, iy}, Radius: ix + r0}
}

// SweepAt returns a sweep around the fixed `center`.
func SweepAt(center Point) Sweep { return Sweep{Center: center} }

// Gradient is what a painting driver consumes.
type Gradient struct {
	Geometry Geometry
	Stops    Stops
	Spread   SpreadMethod
}

// Validate checks the stops and the geometry.
func (g Gradient) Validate() error {
	if err := g.Stops.Validate(); err != nil {
		return err
	}
	switch geom := g.Geometry.(type) {
	case Linear, Sweep:
	case Radial:
		if geom.Radius < 0 || math.IsNaN(geom.Radius) {
			return fmt.Errorf("%w: negative radius %g", gradanim.ErrInvalidConfiguration, geom.Radius)
		}
	case nil:
		return fmt.Errorf("%w: missing gradient geometry", gradanim.ErrInvalidConfiguration)
	default:
		return fmt.Errorf("%w: unsupported geometry %T", gradanim.ErrInvalidConfiguration, geom)
	}
	if g.Spread > RepeatSpread {
		return fmt.Errorf("%w: unknown spread method %d", gradanim.ErrInvalidConfiguration, g.Spread)
	}
	return nil
}

// ColorAt returns the color of the ramp for the (unbounded) gradient
// parameter `t`, after applying the spread method.
func (g Gradient) ColorAt(t float64) color.NRGBA {
	return g.Stops.At(g.Spread.Apply(t))
}

// Rect is a box in user space
type Rect struct{ X, Y, W, H float64 }

// resolve maps infinite coordinates to the edges of [min, max]
func resolve(v, min, max float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return max
	case math.IsInf(v, -1):
		return min
	}
	return v
}

// Resolve returns the point where infinite coordinates are replaced
// by the matching edge of `b`.
func (p Point) Resolve(b Rect) Point {
	return Point{X: resolve(p.X, b.X, b.X+b.W), Y: resolve(p.Y, b.Y, b.Y+b.H)}
}

// Resolve returns a gradient with finite geometry: infinite coordinates
// are mapped to the edges of the painted area `b`, an unbounded radial
// center is moved to the center of `b` and an infinite radius is
// reduced to half its smallest side.
func (g Gradient) Resolve(b Rect) Gradient {
	switch geom := g.Geometry.(type) {
	case Linear:
		g.Geometry = Linear{Start: geom.Start.Resolve(b), End: geom.End.Resolve(b)}
	case Radial:
		if !geom.Center.IsFinite() {
			geom.Center = Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
		}
		if math.IsInf(geom.Radius, 1) {
			geom.Radius = math.Min(b.W, b.H) / 2
		}
		g.Geometry = geom
	case Sweep:
		if !geom.Center.IsFinite() {
			geom.Center = Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
		}
		g.Geometry = geom
	}
	return g
}

// IsDegenerate returns true if the (resolved) geometry
// has an empty extent, in which case painting drivers
// use the last stop color.
func (g Gradient) IsDegenerate() bool {
	switch geom := g.Geometry.(type) {
	case Linear:
		return geom.Start == geom.End
	case Radial:
		return geom.Radius <= 0
	}
	return false
}
