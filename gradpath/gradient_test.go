package gradpath

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/benoitkugler/gradfx/gradanim"
)

func TestLinearAt(t *testing.T) {
	l := LinearAt(500, 500, 1000, 1000)
	if l.Start != (Point{500, 500}) || l.End != (Point{1500, 1500}) {
		t.Errorf("unexpected geometry %+v", l)
	}
	// negative deltas reverse the band
	l = LinearAt(200, 100, -500, -500)
	if l.End != (Point{-300, -400}) {
		t.Errorf("unexpected end %+v", l.End)
	}
}

func TestRadialAt(t *testing.T) {
	r := RadialAt(1000, 1000, 500)
	if r.Center != (Point{1000, 1000}) || r.Radius != 1500 {
		t.Errorf("unexpected geometry %+v", r)
	}
}

func TestSweepAt(t *testing.T) {
	if s := SweepAt(Point{150, 150}); s.Center != (Point{150, 150}) {
		t.Errorf("unexpected geometry %+v", s)
	}
}

func TestBuildersDeterministic(t *testing.T) {
	for v := -1000.; v < 1000; v += 3.3 {
		if LinearAt(v, v, 1500, 1500) != LinearAt(v, v, 1500, 1500) {
			t.Fatal("linear builder is not deterministic")
		}
		if RadialAt(v, v, 500) != RadialAt(v, v, 500) {
			t.Fatal("radial builder is not deterministic")
		}
	}
}

func TestSpreadApply(t *testing.T) {
	for _, tc := range []struct {
		spread SpreadMethod
		in     float64
		want   float64
	}{
		{PadSpread, -0.5, 0},
		{PadSpread, 0.25, 0.25},
		{PadSpread, 1.5, 1},
		{RepeatSpread, 1.25, 0.25},
		{RepeatSpread, -0.25, 0.75},
		{ReflectSpread, 1.25, 0.75},
		{ReflectSpread, 2.25, 0.25},
		{ReflectSpread, -0.25, 0.25},
		{ReflectSpread, 1e15 + 1.25, 0.75},
		{ReflectSpread, 1e19, 0},
		{ReflectSpread, -3e19, 0},
	} {
		if got := tc.spread.Apply(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s.Apply(%g) = %g, want %g", tc.spread, tc.in, got, tc.want)
		}
	}
}

func TestParseSpreadMethod(t *testing.T) {
	for _, s := range []SpreadMethod{PadSpread, ReflectSpread, RepeatSpread} {
		got, err := ParseSpreadMethod(s.String())
		if err != nil || got != s {
			t.Errorf("round trip of %s: %v %v", s, got, err)
		}
	}
	if got, _ := ParseSpreadMethod("reflect"); got != ReflectSpread {
		t.Error("SVG name not accepted")
	}
	if _, err := ParseSpreadMethod("decal"); !errors.Is(err, gradanim.ErrInvalidConfiguration) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestGradientValidate(t *testing.T) {
	stops := EvenStops(color.White, color.Black)
	valid := []Gradient{
		{Geometry: LinearAt(0, 0, 300, 300), Stops: stops},
		{Geometry: RadialAt(150, 150, 50), Stops: stops, Spread: ReflectSpread},
		{Geometry: SweepAt(Point{150, 150}), Stops: stops},
		{Geometry: Linear{End: Point{math.Inf(1), math.Inf(1)}}, Stops: stops},
	}
	for _, g := range valid {
		if err := g.Validate(); err != nil {
			t.Errorf("%+v: %s", g, err)
		}
	}
	invalid := []Gradient{
		{Stops: stops},
		{Geometry: Radial{Radius: -1}, Stops: stops},
		{Geometry: SweepAt(Point{}), Stops: nil},
		{Geometry: SweepAt(Point{}), Stops: stops, Spread: 9},
	}
	for _, g := range invalid {
		if err := g.Validate(); !errors.Is(err, gradanim.ErrInvalidConfiguration) {
			t.Errorf("%+v: expected invalid configuration, got %v", g, err)
		}
	}
}

func TestGradientColorAt(t *testing.T) {
	g := Gradient{Geometry: LinearAt(0, 0, 1, 0), Stops: EvenStops(color.Black, color.White), Spread: ReflectSpread}
	if c := g.ColorAt(1.5); c.R != 128 {
		t.Errorf("unexpected mirrored color %v", c)
	}
	g.Spread = PadSpread
	if c := g.ColorAt(1.5); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("unexpected clamped color %v", c)
	}
}
