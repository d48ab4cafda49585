package gradanim

import (
	"errors"
	"math"
	"testing"
	"time"
)

func ms(f float64) time.Duration { return time.Duration(f * float64(time.Millisecond)) }

func TestRestartScenario(t *testing.T) {
	loop := Loop{Duration: time.Second, Repeat: Restart, Start: 0, End: 1000}
	if err := loop.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{500, 500},
		{999, 999},
		{1000, 0},
		{1500, 500},
	} {
		if got := loop.Value(ms(tc.elapsed)); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Value(%gms) = %g, want %g", tc.elapsed, got, tc.want)
		}
		if got := loop.ValueMs(tc.elapsed); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ValueMs(%g) = %g, want %g", tc.elapsed, got, tc.want)
		}
	}
}

func TestReverseScenario(t *testing.T) {
	loop := Loop{Duration: time.Second, Repeat: Reverse, Start: -1000, End: 1000}
	for _, tc := range []struct {
		elapsed float64
		want    float64
	}{
		{0, -1000},
		{250, 0},
		{500, 1000},
		{750, 0},
		{1000, -1000},
	} {
		if got := loop.ValueMs(tc.elapsed); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ValueMs(%g) = %g, want %g", tc.elapsed, got, tc.want)
		}
	}
}

func TestValueRange(t *testing.T) {
	loops := []Loop{
		{Duration: 3 * time.Second, Repeat: Restart, Start: -1000, End: 1000},
		{Duration: 4 * time.Second, Repeat: Reverse, Start: 2000, End: 0},
		{Duration: 10 * time.Second, Repeat: Restart, Start: 0, End: 1000, Easing: FastOutSlowIn},
		{Duration: 700 * time.Millisecond, Repeat: Reverse, Start: 5, End: 5},
	}
	for _, loop := range loops {
		for e := -5000.; e < 25000; e += 7.3 {
			v := loop.ValueMs(e)
			if v < loop.Min()-1e-9 || v > loop.Max()+1e-9 {
				t.Fatalf("%+v: value %g at %gms out of range", loop, v, e)
			}
		}
	}
}

func TestRestartPeriodicity(t *testing.T) {
	loop := Loop{Duration: 3 * time.Second, Repeat: Restart, Start: -1000, End: 1000}
	for e := time.Duration(0); e < 10*time.Second; e += 37 * time.Millisecond {
		if a, b := loop.Value(e), loop.Value(e+loop.Duration); a != b {
			t.Fatalf("not periodic at %s: %g != %g", e, a, b)
		}
	}
}

func TestReverseContinuity(t *testing.T) {
	loop := Loop{Duration: time.Second, Repeat: Reverse, Start: -1000, End: 1000}
	for _, eps := range []float64{1e-1, 1e-2, 1e-3, 1e-4, 1e-6} {
		before, after := loop.At(0.5-eps), loop.At(0.5+eps)
		// the slope is 2*(End-Start) per unit of phase
		if gap := math.Abs(before - after); gap > 4000*eps+1e-9 {
			t.Fatalf("jump at the reversal point: %g for eps %g", gap, eps)
		}
	}
	// wraparound is continuous too
	if gap := math.Abs(loop.At(1-1e-9) - loop.At(0)); gap > 1e-3 {
		t.Errorf("jump at wraparound: %g", gap)
	}
}

func TestDeterminism(t *testing.T) {
	loop := Loop{Duration: 4 * time.Second, Repeat: Reverse, Start: -1000, End: 1000, Easing: FastOutSlowIn}
	for e := 0.; e < 9000; e += 13.7 {
		a, b := loop.ValueMs(e), loop.ValueMs(e)
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Fatalf("non deterministic at %g", e)
		}
	}
}

func TestNegativeElapsed(t *testing.T) {
	loop := Loop{Duration: time.Second, Repeat: Restart, Start: 0, End: 1000}
	if got := loop.Value(-250 * time.Millisecond); math.Abs(got-750) > 1e-9 {
		t.Errorf("expected 750, got %g", got)
	}
	if got := loop.ValueMs(-250); math.Abs(got-750) > 1e-9 {
		t.Errorf("expected 750, got %g", got)
	}
}

func TestValidate(t *testing.T) {
	for _, loop := range []Loop{
		{Duration: 0, Start: 0, End: 1},
		{Duration: -time.Second, Start: 0, End: 1},
		{Duration: time.Second, Repeat: 7},
		{Duration: time.Second, Start: math.NaN()},
		{Duration: time.Second, End: math.Inf(1)},
	} {
		if err := loop.Validate(); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%+v: expected invalid configuration, got %v", loop, err)
		}
	}
	if _, err := NewLoop(time.Second, Reverse, 3, 3); err != nil {
		t.Errorf("degenerate loop should be valid: %s", err)
	}
}

func TestParseRepeatMode(t *testing.T) {
	for _, r := range []RepeatMode{Restart, Reverse} {
		got, err := ParseRepeatMode(r.String())
		if err != nil || got != r {
			t.Errorf("round trip of %s failed: %v %v", r, got, err)
		}
	}
	if _, err := ParseRepeatMode("bounce"); err == nil {
		t.Error("expected error")
	}
}
