// Implements a PDF backend laying out frames of gradient effects
// on contact sheets, by wrapping github.com/jung-kurt/gofpdf.
//
// Frames are rasterized with gradraster and embedded as images,
// while shape outlines and color ramps are written as vector
// graphics.
package gradpdf

import (
	"image/color"

	"github.com/benoitkugler/gradfx/gradpath"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var _ gradpath.Adder = (*pather)(nil)

// pather writes path commands to the PDF, mapping
// the frame coordinates to the page.
type pather struct {
	pdf    *gofpdf.Fpdf
	scale  float64
	dx, dy float64 // page position of the frame origin
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) toPage(a fixed.Point26_6) (float64, float64) {
	x, y := fixedTof(a)
	return p.dx + x*p.scale, p.dy + y*p.scale
}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(p.toPage(a))
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(p.toPage(b))
}

func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := p.toPage(b)
	x, y := p.toPage(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := p.toPage(b)
	cx1, cy1 := p.toPage(c)
	x, y := p.toPage(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// drawOutline strokes `path`, given in frame coordinates
func drawOutline(pdf *gofpdf.Fpdf, path gradpath.Path, x, y, scale float64) {
	if len(path) == 0 {
		return
	}
	p := pather{pdf: pdf, scale: scale, dx: x, dy: y}
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.5)
	path.AddTo(&p)
	pdf.DrawPath("D")
}

func rgb(st gradpath.GradStop) (r, g, b int) {
	c := color.NRGBAModel.Convert(st.StopColor).(color.NRGBA)
	return int(c.R), int(c.G), int(c.B)
}

// drawRamp paints the color ramp as a sequence of axial shadings,
// one per pair of consecutive stops.
// PDF shadings have no alpha: stop opacities are ignored.
func drawRamp(pdf *gofpdf.Fpdf, stops gradpath.Stops, x, y, w, h float64) {
	if len(stops) == 0 {
		return
	}
	first, last := stops[0], stops[len(stops)-1]
	if first.Offset > 0 { // pad before the first stop
		r, g, b := rgb(first)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(x, y, w*first.Offset, h, "F")
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		r1, g1, b1 := rgb(a)
		r2, g2, b2 := rgb(b)
		pdf.LinearGradient(x+w*a.Offset, y, w*(b.Offset-a.Offset), h, r1, g1, b1, r2, g2, b2, 0, 0, 1, 0)
	}
	if last.Offset < 1 {
		r, g, b := rgb(last)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(x+w*last.Offset, y, w*(1-last.Offset), h, "F")
	}
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.5)
	pdf.Rect(x, y, w, h, "D")
}
