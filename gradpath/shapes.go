package gradpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating an arc.
const maxDx float64 = math.Pi / 8

// ToFixedP converts two floats to a fixed point.
func ToFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// AddRect adds an axis aligned rectangle.
func (p *Path) AddRect(minX, minY, maxX, maxY float64) {
	p.Start(ToFixedP(minX, minY))
	p.Line(ToFixedP(maxX, minY))
	p.Line(ToFixedP(maxX, maxY))
	p.Line(ToFixedP(minX, maxY))
	p.Stop(true)
}

// AddRoundRect adds an axis aligned rectangle with circular
// corners of radius r, clamped to half the smallest side.
func (p *Path) AddRoundRect(minX, minY, maxX, maxY, r float64) {
	if r <= 0 {
		p.AddRect(minX, minY, maxX, maxY)
		return
	}
	if w := maxX - minX; w < r*2 {
		r = w / 2
	}
	if h := maxY - minY; h < r*2 {
		r = h / 2
	}
	p.Start(ToFixedP(minX+r, minY))
	p.Line(ToFixedP(maxX-r, minY))
	p.arcTo(maxX-r, minY+r, r, r, -math.Pi/2, math.Pi/2)
	p.Line(ToFixedP(maxX, maxY-r))
	p.arcTo(maxX-r, maxY-r, r, r, 0, math.Pi/2)
	p.Line(ToFixedP(minX+r, maxY))
	p.arcTo(minX+r, maxY-r, r, r, math.Pi/2, math.Pi/2)
	p.Line(ToFixedP(minX, minY+r))
	p.arcTo(minX+r, minY+r, r, r, math.Pi, math.Pi/2)
	p.Stop(true)
}

// AddEllipse adds a closed ellipse of radii (rx, ry).
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	p.Start(ToFixedP(cx+rx, cy))
	p.arcTo(cx, cy, rx, ry, 0, 2*math.Pi)
	p.Stop(true)
}

// AddPolygon adds the closed polygon going through `points`.
func (p *Path) AddPolygon(points ...Point) {
	if len(points) == 0 {
		return
	}
	p.Start(ToFixedP(points[0].X, points[0].Y))
	for _, pt := range points[1:] {
		p.Line(ToFixedP(pt.X, pt.Y))
	}
	p.Stop(true)
}

// AddArc adds an open circular arc, starting at angle `start` and spanning
// `sweep` radians (clockwise in screen space for positive values).
// The arc starts a new sub-path.
func (p *Path) AddArc(cx, cy, r, start, sweep float64) {
	if sweep == 0 {
		return
	}
	p.Start(ToFixedP(ellipsePointAt(r, r, start, cx, cy)))
	p.arcTo(cx, cy, r, r, start, sweep)
	p.Stop(false)
}

// arcTo approximates the elliptic arc with cubic bezier splines, assuming
// the current point is at angle `start`.
// See L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
// or cubic Bezier curves", 2003
// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
func (p *Path) arcTo(cx, cy, rx, ry, start, sweep float64) {
	segs := int(math.Abs(sweep)/maxDx) + 1
	dEta := sweep / float64(segs) // span of each segment
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3 // Math is fun!
	lx, ly := ellipsePointAt(rx, ry, start, cx, cy)
	ldx, ldy := ellipsePrime(rx, ry, start)
	for i := 1; i <= segs; i++ {
		eta := start + dEta*float64(i)
		px, py := ellipsePointAt(rx, ry, eta, cx, cy)
		dx, dy := ellipsePrime(rx, ry, eta)
		p.CubeBezier(ToFixedP(lx+alpha*ldx, ly+alpha*ldy),
			ToFixedP(px-alpha*dx, py-alpha*dy), ToFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ellipsePrime gives tangent vectors for parameterized ellipse; a, b, radii, eta parameter
func ellipsePrime(a, b, eta float64) (px, py float64) {
	return -a * math.Sin(eta), b * math.Cos(eta)
}

// ellipsePointAt gives points for parameterized ellipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, eta, cx, cy float64) (px, py float64) {
	return cx + a*math.Cos(eta), cy + b*math.Sin(eta)
}
