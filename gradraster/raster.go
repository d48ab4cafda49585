// Implements a raster backend to paint gradient frames,
// by wrapping rasterx.
package gradraster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/benoitkugler/gradfx/gradfx"
	"github.com/benoitkugler/gradfx/gradpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Renderer paints frames into an image.
// It is not safe for concurrent use.
type Renderer struct {
	img    draw.Image
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer painting into `img`,
// using a rasterx.ScannerGV.
func NewRenderer(img draw.Image) *Renderer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	scanner := rasterx.NewScannerGV(w, h, img, b)
	return &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
	}
}

// RenderFrame paints `f` into a new transparent image of the given size.
func RenderFrame(f gradfx.Frame, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	NewRenderer(img).Draw(f)
	return img
}

func (rd *Renderer) Clear() {
	rd.dasher.Clear()
	rd.filler.Clear()
}

func (rd *Renderer) size() (w, h float64) {
	b := rd.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Draw paints the frame over the current content of the image.
func (rd *Renderer) Draw(f gradfx.Frame) {
	if f.Background != nil {
		draw.Draw(rd.img, rd.img.Bounds(), image.NewUniform(f.Background), image.Point{}, draw.Over)
	}
	canvasW, canvasH := rd.size()
	if text, ok := f.Shape.(gradfx.Text); ok {
		rd.drawText(f.Gradient, text)
		return
	}

	rd.Clear()
	path := gradfx.Outline(f.Shape, canvasW, canvasH)
	grad := f.Gradient.Resolve(gradfx.Bounds(f.Shape, canvasW, canvasH))
	if stroke := gradfx.Stroke(f.Shape); stroke > 0 {
		rd.dasher.SetStroke(
			fixed.Int26_6(stroke*64), fixed.Int26_6(4*64), capOf(f.Shape), capOf(f.Shape),
			rasterx.RoundGap, rasterx.Round, nil, 0,
		)
		path.AddTo(rd.dasher)
		rd.dasher.SetColor(colorFunction(grad))
		rd.dasher.Draw()
		return
	}
	rd.filler.SetWinding(true)
	path.AddTo(rd.filler)
	rd.filler.SetColor(colorFunction(grad))
	rd.filler.Draw()
}

// the progress ring uses round caps
func capOf(s gradfx.Shape) rasterx.CapFunc {
	if _, ok := s.(gradfx.Arc); ok {
		return rasterx.RoundCap
	}
	return rasterx.ButtCap
}

// grad must be resolved
func toRasterxGradient(grad gradpath.Gradient) rasterx.Gradient {
	stops := make([]rasterx.GradStop, len(grad.Stops))
	for i := range grad.Stops {
		stops[i] = rasterx.GradStop(grad.Stops[i])
	}
	out := rasterx.Gradient{
		Stops:  stops,
		Matrix: rasterx.Identity,
		Spread: rasterx.SpreadMethod(grad.Spread),
		Units:  rasterx.UserSpaceOnUse,
	}
	// with user space units and an identity matrix, the bounds cancel out,
	// but must not be empty
	out.Bounds.W, out.Bounds.H = 1, 1
	switch dir := grad.Geometry.(type) {
	case gradpath.Linear:
		out.Points = [5]float64{dir.Start.X, dir.Start.Y, dir.End.X, dir.End.Y}
	case gradpath.Radial:
		c := dir.Center
		out.Points = [5]float64{c.X, c.Y, c.X, c.Y, dir.Radius} // focus on the center
		out.IsRadial = true
	}
	return out
}

// colorFunction returns either a color.Color or a rasterx.ColorFunc,
// as expected by rasterx.Scanner.SetColor.
// grad must be resolved.
func colorFunction(grad gradpath.Gradient) interface{} {
	if len(grad.Stops) == 1 || grad.IsDegenerate() {
		return grad.Stops.At(1)
	}
	if dir, ok := grad.Geometry.(gradpath.Sweep); ok {
		return sweepFunction(grad, dir.Center)
	}
	rg := toRasterxGradient(grad)
	return rg.GetColorFunction(1)
}

// sweepFunction is not supported by rasterx: the angle from
// the center, clockwise from the x axis, gives the ramp parameter.
func sweepFunction(grad gradpath.Gradient, center gradpath.Point) rasterx.ColorFunc {
	return func(x, y int) color.Color {
		dx, dy := float64(x)+0.5-center.X, float64(y)+0.5-center.Y
		if dx == 0 && dy == 0 {
			return grad.Stops.At(0)
		}
		t := math.Atan2(dy, dx) / (2 * math.Pi)
		if t < 0 {
			t += 1
		}
		return grad.ColorAt(t)
	}
}
