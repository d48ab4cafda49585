package gradpath

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func closeTo(a fixed.Int26_6, f float64) bool {
	return math.Abs(float64(a)/64-f) <= 0.1
}

func TestRectBounds(t *testing.T) {
	var p Path
	p.AddRect(10, 20, 110, 70)
	b := p.Bounds()
	if b.Min != ToFixedP(10, 20) || b.Max != ToFixedP(110, 70) {
		t.Errorf("unexpected bounds %v", b)
	}
	if s := p.ToSVGPath(); s != "M10.000,20.000 L110.000,20.000 L110.000,70.000 L10.000,70.000 Z" {
		t.Errorf("unexpected svg path %s", s)
	}
}

func TestEllipseBounds(t *testing.T) {
	var p Path
	p.AddEllipse(100, 50, 40, 20)
	b := p.Bounds()
	if !closeTo(b.Min.X, 60) || !closeTo(b.Max.X, 140) || !closeTo(b.Min.Y, 30) || !closeTo(b.Max.Y, 70) {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestRoundRectBounds(t *testing.T) {
	var p Path
	p.AddRoundRect(0, 0, 300, 150, 16)
	b := p.Bounds()
	if !closeTo(b.Min.X, 0) || !closeTo(b.Max.X, 300) || !closeTo(b.Min.Y, 0) || !closeTo(b.Max.Y, 150) {
		t.Errorf("unexpected bounds %v", b)
	}
	// a huge radius is clamped
	p.Clear()
	p.AddRoundRect(0, 0, 100, 40, 500)
	b = p.Bounds()
	if !closeTo(b.Max.X, 100) || !closeTo(b.Max.Y, 40) {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestArc(t *testing.T) {
	var p Path
	p.AddArc(0, 0, 100, 0, math.Pi/2) // quarter, from (100, 0) to (0, 100)
	if _, ok := p[len(p)-1].(CubicTo); !ok {
		t.Fatalf("expected an open arc, got %s", p)
	}
	end := p[len(p)-1].(CubicTo)[2]
	if !closeTo(end.X, 0) || !closeTo(end.Y, 100) {
		t.Errorf("unexpected arc end %v", end)
	}
	b := p.Bounds()
	if !closeTo(b.Min.X, 0) || !closeTo(b.Max.X, 100) || !closeTo(b.Min.Y, 0) || !closeTo(b.Max.Y, 100) {
		t.Errorf("unexpected bounds %v", b)
	}
	p.Clear()
	p.AddArc(0, 0, 100, 0, 0)
	if len(p) != 0 {
		t.Error("empty arc should add nothing")
	}
}

type recorder struct{ ops []string }

func (r *recorder) Start(a fixed.Point26_6)            { r.ops = append(r.ops, "M") }
func (r *recorder) Line(b fixed.Point26_6)             { r.ops = append(r.ops, "L") }
func (r *recorder) QuadBezier(b, c fixed.Point26_6)    { r.ops = append(r.ops, "Q") }
func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) { r.ops = append(r.ops, "C") }
func (r *recorder) Stop(closeLoop bool) {
	if closeLoop {
		r.ops = append(r.ops, "Z")
	}
}

func TestAddTo(t *testing.T) {
	var p Path
	p.AddPolygon(Point{50, 0}, Point{100, 100}, Point{0, 100})
	var r recorder
	p.AddTo(&r)
	got := ""
	for _, op := range r.ops {
		got += op
	}
	if got != "MLLZ" {
		t.Errorf("unexpected replay %s", got)
	}
}

func TestEmptyBounds(t *testing.T) {
	var p Path
	if b := p.Bounds(); b != (fixed.Rectangle26_6{}) {
		t.Errorf("unexpected bounds %v", b)
	}
}
