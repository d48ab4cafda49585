package gradfx

import (
	"fmt"
	"math"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/benoitkugler/gradfx/gradpath"
)

// Shape is the area painted with the gradient,
// one of Fill, Box, Border, Triangle, Arc or Text.
type Shape interface {
	// Size returns the extent of the shape, in user space.
	// Fill returns the canvas size.
	Size(canvasW, canvasH float64) (w, h float64)
	validate() error
}

// Fill paints the whole canvas.
type Fill struct{}

// Box paints a W x H rectangle at the origin.
type Box struct{ W, H float64 }

// Border strokes a rounded rectangle.
type Border struct {
	W, H   float64
	Width  float64 // stroke width
	Radius float64 // corner radius
}

// Triangle fills the isosceles triangle inscribed in W x H,
// pointing up.
type Triangle struct{ W, H float64 }

// Arc strokes a progress ring inscribed in a Diameter x Diameter square,
// starting at angle 0 and turning clockwise.
type Arc struct {
	Diameter    float64
	StrokeWidth float64
	Progress    float64 // in [0, 1]
}

// Text paints the given text, with glyphs of the given height.
type Text struct {
	Content string
	Height  float64
}

func (Fill) Size(w, h float64) (float64, float64)       { return w, h }
func (s Box) Size(_, _ float64) (float64, float64)      { return s.W, s.H }
func (s Border) Size(_, _ float64) (float64, float64)   { return s.W, s.H }
func (s Triangle) Size(_, _ float64) (float64, float64) { return s.W, s.H }
func (s Arc) Size(_, _ float64) (float64, float64)      { return s.Diameter, s.Diameter }

// Size of a text is an estimation, the painting driver
// decides of the exact layout.
func (s Text) Size(_, _ float64) (float64, float64) {
	return s.Height * 0.55 * float64(len([]rune(s.Content))), s.Height
}

func positive(what string, vs ...float64) error {
	for _, v := range vs {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %g", gradanim.ErrInvalidConfiguration, what, v)
		}
	}
	return nil
}

func (Fill) validate() error       { return nil }
func (s Box) validate() error      { return positive("box size", s.W, s.H) }
func (s Triangle) validate() error { return positive("triangle size", s.W, s.H) }

func (s Border) validate() error {
	if err := positive("border size", s.W, s.H, s.Width); err != nil {
		return err
	}
	if s.Radius < 0 {
		return fmt.Errorf("%w: negative corner radius %g", gradanim.ErrInvalidConfiguration, s.Radius)
	}
	return nil
}

func (s Arc) validate() error {
	if err := positive("arc diameter", s.Diameter, s.StrokeWidth); err != nil {
		return err
	}
	if !(0 <= s.Progress && s.Progress <= 1) {
		return fmt.Errorf("%w: progress %g out of [0, 1]", gradanim.ErrInvalidConfiguration, s.Progress)
	}
	return nil
}

func (s Text) validate() error {
	if s.Content == "" {
		return fmt.Errorf("%w: empty text", gradanim.ErrInvalidConfiguration)
	}
	return positive("text height", s.Height)
}

// Outline returns the path of the shape, in a canvas of size canvasW x canvasH.
// Stroked shapes (Border, Arc) return their center line: see Stroke.
// Text has no outline and returns nil.
func Outline(s Shape, canvasW, canvasH float64) gradpath.Path {
	var p gradpath.Path
	switch s := s.(type) {
	case Fill:
		p.AddRect(0, 0, canvasW, canvasH)
	case Box:
		p.AddRect(0, 0, s.W, s.H)
	case Border:
		half := s.Width / 2
		p.AddRoundRect(half, half, s.W-half, s.H-half, s.Radius)
	case Triangle:
		p.AddPolygon(gradpath.Point{X: s.W / 2}, gradpath.Point{X: s.W, Y: s.H}, gradpath.Point{Y: s.H})
	case Arc:
		r := (s.Diameter - s.StrokeWidth) / 2
		p.AddArc(s.Diameter/2, s.Diameter/2, r, 0, s.Progress*2*math.Pi)
	}
	return p
}

// Stroke returns the stroke width of the shape, or 0 for filled shapes.
func Stroke(s Shape) float64 {
	switch s := s.(type) {
	case Border:
		return s.Width
	case Arc:
		return s.StrokeWidth
	}
	return 0
}

// Bounds returns the area covered by the shape, including
// the stroke width. For Text, the estimation of Size is used.
func Bounds(s Shape, canvasW, canvasH float64) gradpath.Rect {
	if _, ok := s.(Text); ok {
		w, h := s.Size(canvasW, canvasH)
		return gradpath.Rect{W: w, H: h}
	}
	b := Outline(s, canvasW, canvasH).Bounds()
	half := Stroke(s) / 2
	minX, minY := float64(b.Min.X)/64-half, float64(b.Min.Y)/64-half
	maxX, maxY := float64(b.Max.X)/64+half, float64(b.Max.Y)/64+half
	return gradpath.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
