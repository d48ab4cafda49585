package gradfx

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 0.1 }

func TestOutlineBounds(t *testing.T) {
	for _, tc := range []struct {
		shape                  Shape
		minX, minY, maxX, maxY float64
	}{
		{Fill{}, 0, 0, 400, 300},
		{Box{200, 100}, 0, 0, 200, 100},
		{Triangle{200, 200}, 0, 0, 200, 200},
		{Border{W: 300, H: 150, Width: 6, Radius: 16}, 3, 3, 297, 147},
		{Arc{Diameter: 300, StrokeWidth: 20, Progress: 1}, 10, 10, 290, 290},
	} {
		b := Outline(tc.shape, 400, 300).Bounds()
		got := [4]float64{float64(b.Min.X) / 64, float64(b.Min.Y) / 64, float64(b.Max.X) / 64, float64(b.Max.Y) / 64}
		want := [4]float64{tc.minX, tc.minY, tc.maxX, tc.maxY}
		for i := range got {
			if !near(got[i], want[i]) {
				t.Errorf("%T: bounds %v, want %v", tc.shape, got, want)
				break
			}
		}
	}
	if Outline(Text{Content: "a", Height: 10}, 10, 10) != nil {
		t.Error("text has no outline")
	}
}

func TestStroke(t *testing.T) {
	if Stroke(Fill{}) != 0 || Stroke(Border{Width: 6}) != 6 || Stroke(Arc{StrokeWidth: 20}) != 20 {
		t.Error("unexpected stroke widths")
	}
}

func TestShapeSize(t *testing.T) {
	for _, tc := range []struct {
		shape Shape
		w, h  float64
	}{
		{Fill{}, 400, 300},
		{Box{200, 100}, 200, 100},
		{Border{W: 300, H: 150, Width: 6}, 300, 150},
		{Triangle{200, 180}, 200, 180},
		{Arc{Diameter: 120, StrokeWidth: 20, Progress: 0.5}, 120, 120},
		{Text{Content: "ab", Height: 20}, 22, 20},
	} {
		if w, h := tc.shape.Size(400, 300); !near(w, tc.w) || !near(h, tc.h) {
			t.Errorf("%T: size (%g, %g), want (%g, %g)", tc.shape, w, h, tc.w, tc.h)
		}
		if err := tc.shape.validate(); err != nil {
			t.Errorf("%T: %v", tc.shape, err)
		}
	}
}
