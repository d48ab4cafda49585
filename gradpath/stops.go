package gradpath

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidStops is returned for empty or badly ordered color stops.
var ErrInvalidStops = fmt.Errorf("%w: invalid color stops", gradanim.ErrInvalidConfiguration)

var errNilStopColor = errors.New("nil stop color")

// GradStop represents a stop in the color ramp
type GradStop struct {
	StopColor color.Color
	Offset    float64 // in [0, 1]
	Opacity   float64 // multiplies the alpha of StopColor
}

// Stops is an ordered color ramp
type Stops []GradStop

// EvenStops spreads the given colors evenly on [0, 1], with full opacity.
func EvenStops(colors ...color.Color) Stops {
	out := make(Stops, len(colors))
	for i, c := range colors {
		out[i] = GradStop{StopColor: c, Opacity: 1}
		if len(colors) > 1 {
			out[i].Offset = float64(i) / float64(len(colors)-1)
		}
	}
	return out
}

// Validate rejects empty ramps, offsets out of [0, 1]
// and offsets not strictly increasing.
func (s Stops) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty list", ErrInvalidStops)
	}
	for i, st := range s {
		if st.StopColor == nil {
			return fmt.Errorf("%w: stop %d: %s", ErrInvalidStops, i, errNilStopColor)
		}
		if !(0 <= st.Offset && st.Offset <= 1) {
			return fmt.Errorf("%w: stop %d: offset %g out of [0, 1]", ErrInvalidStops, i, st.Offset)
		}
		if !(0 <= st.Opacity && st.Opacity <= 1) {
			return fmt.Errorf("%w: stop %d: opacity %g out of [0, 1]", ErrInvalidStops, i, st.Opacity)
		}
		if i > 0 && st.Offset <= s[i-1].Offset {
			return fmt.Errorf("%w: stop %d: offset %g not after %g", ErrInvalidStops, i, st.Offset, s[i-1].Offset)
		}
	}
	return nil
}

// nrgba applies the stop opacity
func (st GradStop) nrgba() color.NRGBA {
	c := color.NRGBAModel.Convert(st.StopColor).(color.NRGBA)
	c.A = uint8(float64(c.A)*st.Opacity + 0.5)
	return c
}

// At returns the interpolated color at `t` in [0, 1],
// clamping to the first and last stops.
// The ramp must be valid.
func (s Stops) At(t float64) color.NRGBA {
	if t <= s[0].Offset {
		return s[0].nrgba()
	}
	last := s[len(s)-1]
	if t >= last.Offset {
		return last.nrgba()
	}
	for i := 1; i < len(s); i++ {
		if t > s[i].Offset {
			continue
		}
		a, b := s[i-1], s[i]
		f := (t - a.Offset) / (b.Offset - a.Offset)
		return lerpNRGBA(a.nrgba(), b.nrgba(), f)
	}
	return last.nrgba()
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// lerpNRGBA blends the color channels in sRGB space,
// as rasterx does for linear and radial ramps.
func lerpNRGBA(a, b color.NRGBA, f float64) color.NRGBA {
	r, g, bl := toColorful(a).BlendRgb(toColorful(b), f).Clamped().RGB255()
	alpha := uint8(float64(a.A) + (float64(b.A)-float64(a.A))*f + 0.5)
	return color.NRGBA{R: r, G: g, B: bl, A: alpha}
}
