package gradanim

import (
	"math"
	"testing"
)

func TestEasingsFixEnds(t *testing.T) {
	for name, e := range easingNames {
		if e(0) != 0 || math.Abs(e(1)-1) > 1e-9 {
			t.Errorf("%q: e(0)=%g e(1)=%g", name, e(0), e(1))
		}
	}
}

func TestEasingsMonotonic(t *testing.T) {
	for name, e := range easingNames {
		prev := 0.
		for x := 0.; x <= 1; x += 0.001 {
			y := e(x)
			if y < prev-1e-6 {
				t.Fatalf("%q decreases at %g: %g < %g", name, x, y, prev)
			}
			prev = y
		}
	}
}

func TestFastOutSlowIn(t *testing.T) {
	// the curve is well above the diagonal at mid course
	if y := FastOutSlowIn(0.5); y < 0.7 || y > 0.9 {
		t.Errorf("unexpected mid value %g", y)
	}
}

func TestParseEasing(t *testing.T) {
	if _, err := ParseEasing("fast-out-slow-in"); err != nil {
		t.Error(err)
	}
	if _, err := ParseEasing("bouncy"); err == nil {
		t.Error("expected error on unknown easing")
	}
}

func TestEasingName(t *testing.T) {
	for _, name := range []string{"linear", "fast-out-slow-in", "linear-out-slow-in", "fast-out-linear-in"} {
		e, _ := ParseEasing(name)
		if got, ok := EasingName(e); !ok || got != name {
			t.Errorf("expected %q, got %q", name, got)
		}
	}
	if got, _ := EasingName(nil); got != "linear" {
		t.Errorf("nil easing should be linear, got %q", got)
	}
	if _, ok := EasingName(CubicBezier(0.3, 0.1, 0.3, 1)); ok {
		t.Error("custom easing should not be named")
	}
}
