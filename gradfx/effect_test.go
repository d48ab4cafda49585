package gradfx

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/benoitkugler/gradfx/gradpath"
)

func TestCatalogValid(t *testing.T) {
	effects := Catalog(1080, 1920)
	if err := ValidateAll(effects); err != nil {
		t.Fatal(err)
	}
	if len(effects) < 20 {
		t.Errorf("expected the whole gallery, got %d effects", len(effects))
	}
}

func TestLookup(t *testing.T) {
	effects := Catalog(1080, 1920)
	e, err := Lookup(effects, "radial-wave")
	if err != nil || e.Kind != RadialKind {
		t.Fatalf("unexpected lookup result %v %v", e, err)
	}
	if _, err := Lookup(effects, "nope"); err == nil {
		t.Error("expected error for unknown effect")
	}
}

func TestLinearFrame(t *testing.T) {
	e := &Effect{
		Name:  "test",
		LoopX: &gradanim.Loop{Duration: time.Second, Start: 0, End: 1000},
		Axis:  gradpath.Point{X: 1, Y: 1},
		Delta: gradpath.Point{X: 1000, Y: 1000},
		Stops: gradpath.EvenStops(Red, Blue),
		Shape: Fill{},
	}
	if err := e.Validate(); err != nil {
		t.Fatal(err)
	}
	f := e.Frame(500 * time.Millisecond)
	l, ok := f.Gradient.Geometry.(gradpath.Linear)
	if !ok {
		t.Fatalf("expected linear geometry, got %T", f.Gradient.Geometry)
	}
	if l.Start != (gradpath.Point{X: 500, Y: 500}) || l.End != (gradpath.Point{X: 1500, Y: 1500}) {
		t.Errorf("unexpected geometry %+v", l)
	}
	if f.Elapsed != 500*time.Millisecond || f.Effect != "test" {
		t.Errorf("unexpected frame %+v", f)
	}
}

func TestSingleAxis(t *testing.T) {
	e, _ := Lookup(Catalog(1080, 1920), "screen-sweep")
	for _, el := range gradanim.Steps(e.Period(), 10) {
		l := e.Frame(el).Gradient.Geometry.(gradpath.Linear)
		if l.Start.X != 0 || l.End.X != 1080 {
			t.Fatalf("x should not move: %+v", l)
		}
		if math.Abs(l.End.Y-l.Start.Y-1920) > 1e-9 {
			t.Fatalf("band height should be fixed: %+v", l)
		}
	}
}

func TestRadialFrame(t *testing.T) {
	e, _ := Lookup(Catalog(1080, 1920), "radial-wave")
	r := e.Frame(time.Second).Gradient.Geometry.(gradpath.Radial)
	if r.Center != (gradpath.Point{X: 500, Y: 500}) || r.Radius != 1000 {
		t.Errorf("unexpected geometry %+v", r)
	}
}

func TestStaticRadial(t *testing.T) {
	e, _ := Lookup(Catalog(1080, 1920), "basic-radial")
	r := e.Frame(time.Hour).Gradient.Geometry.(gradpath.Radial)
	if r.Center != (gradpath.Point{X: 150, Y: 150}) || r.Radius != 200 {
		t.Errorf("unexpected geometry %+v", r)
	}
}

func TestStaticEffects(t *testing.T) {
	for _, e := range Catalog(1080, 1920) {
		if e.IsAnimated() {
			if e.Period() <= 0 {
				t.Errorf("%s: animated with no period", e.Name)
			}
			continue
		}
		if e.Period() != 0 {
			t.Errorf("%s: static with a period", e.Name)
		}
		a, b := e.Frame(0).Gradient.Geometry, e.Frame(1234*time.Millisecond).Gradient.Geometry
		if a != b {
			t.Errorf("%s: static effect moved: %v %v", e.Name, a, b)
		}
	}
}

func TestPeriodicFrames(t *testing.T) {
	for _, e := range Catalog(1080, 1920) {
		p := e.Period()
		for _, el := range gradanim.Steps(p+1, 7) {
			if e.Frame(el).Gradient.Geometry != e.Frame(el+p).Gradient.Geometry {
				t.Errorf("%s: not periodic at %s", e.Name, el)
			}
		}
	}
}

func TestPeriod(t *testing.T) {
	e := &Effect{
		LoopX: &gradanim.Loop{Duration: 4 * time.Second},
		LoopY: &gradanim.Loop{Duration: 6 * time.Second},
	}
	if p := e.Period(); p != 12*time.Second {
		t.Errorf("expected 12s, got %s", p)
	}
}

func TestValidateErrors(t *testing.T) {
	valid := func() *Effect {
		return &Effect{Name: "e", Stops: gradpath.EvenStops(Red, Blue), Shape: Fill{}}
	}
	for _, mutate := range []func(e *Effect){
		func(e *Effect) { e.Name = "" },
		func(e *Effect) { e.Kind = 12 },
		func(e *Effect) { e.LoopX = &gradanim.Loop{Duration: 0} },
		func(e *Effect) { e.LoopY = &gradanim.Loop{Duration: -time.Second} },
		func(e *Effect) { e.Stops = nil },
		func(e *Effect) { e.Spread = 5 },
		func(e *Effect) { e.Shape = nil },
		func(e *Effect) { e.Shape = Box{W: 0, H: 10} },
		func(e *Effect) { e.Shape = Border{W: 10, H: 10, Width: 2, Radius: -1} },
		func(e *Effect) { e.Shape = Arc{Diameter: 10, StrokeWidth: 1, Progress: 2} },
		func(e *Effect) { e.Shape = Text{Height: 10} },
		func(e *Effect) { e.Origin.X = math.NaN() },
		func(e *Effect) { e.Axis.X = math.Inf(1) },
		func(e *Effect) { e.Axis.Y = math.NaN() },
		func(e *Effect) {
			e.Kind = RadialKind
			e.LoopX = &gradanim.Loop{Duration: time.Second, Start: -1000, End: 0}
			e.Axis.X = 1
			e.BaseRadius = 500
		},
	} {
		e := valid()
		mutate(e)
		if err := e.Validate(); !errors.Is(err, gradanim.ErrInvalidConfiguration) {
			t.Errorf("%+v: expected invalid configuration, got %v", e, err)
		}
	}
	if err := valid().Validate(); err != nil {
		t.Error(err)
	}
}

func TestDuplicateNames(t *testing.T) {
	e := &Effect{Name: "e", Stops: gradpath.EvenStops(Red, Blue), Shape: Fill{}}
	if err := ValidateAll([]*Effect{e, e}); !errors.Is(err, gradanim.ErrInvalidConfiguration) {
		t.Errorf("expected duplicate error, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{LinearKind, RadialKind, SweepKind} {
		if got, err := ParseKind(k.String()); err != nil || got != k {
			t.Errorf("round trip of %s: %v %v", k, got, err)
		}
	}
	if _, err := ParseKind("conic"); err == nil {
		t.Error("expected error")
	}
}

func TestInfiniteAxis(t *testing.T) {
	loop := &gradanim.Loop{Duration: time.Second, Start: 0, End: 1000}
	e := &Effect{Name: "e", LoopX: loop, Axis: gradpath.Point{X: math.Inf(1)},
		Stops: gradpath.EvenStops(Red, Blue), Shape: Fill{}}
	if err := e.Validate(); !errors.Is(err, gradanim.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
	// a finite axis never produces NaN, even with a zero loop value
	e.Axis.X = 1
	if err := e.Validate(); err != nil {
		t.Fatal(err)
	}
	ix, iy := e.Position(0)
	if math.IsNaN(ix) || math.IsNaN(iy) {
		t.Errorf("unexpected NaN position (%g, %g)", ix, iy)
	}
}
