package gradfx

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/benoitkugler/gradfx/gradpath"
)

// named colors of the gallery
var (
	Red         = color.NRGBA{0xFF, 0x00, 0x00, 0xFF}
	Green       = color.NRGBA{0x00, 0xFF, 0x00, 0xFF}
	Blue        = color.NRGBA{0x00, 0x00, 0xFF, 0xFF}
	Cyan        = color.NRGBA{0x00, 0xFF, 0xFF, 0xFF}
	Magenta     = color.NRGBA{0xFF, 0x00, 0xFF, 0xFF}
	Yellow      = color.NRGBA{0xFF, 0xFF, 0x00, 0xFF}
	White       = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Black       = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	Transparent = color.NRGBA{}

	Purple500 = color.NRGBA{0x62, 0x00, 0xEE, 0xFF}
	Teal200   = color.NRGBA{0x03, 0xDA, 0xC5, 0xFF}
	Indigo900 = color.NRGBA{0x1A, 0x23, 0x7E, 0xFF}
)

// rainbow wraps around to red, so that repeated ramps are seamless
var rainbow = []color.Color{Red, Magenta, Blue, Cyan, Green, Yellow, Red}

// the background palette, ending with its first color for smooth transitions
var material = []color.Color{
	color.NRGBA{0x9C, 0x27, 0xB0, 0xFF}, // purple
	color.NRGBA{0x21, 0x96, 0xF3, 0xFF}, // blue
	color.NRGBA{0x4C, 0xAF, 0x50, 0xFF}, // green
	color.NRGBA{0xFF, 0xEB, 0x3B, 0xFF}, // yellow
	color.NRGBA{0xFF, 0x57, 0x22, 0xFF}, // orange
	color.NRGBA{0x9C, 0x27, 0xB0, 0xFF},
}

var greenBlueAmber = []color.Color{
	color.NRGBA{0x4C, 0xAF, 0x50, 0xFF},
	color.NRGBA{0x21, 0x96, 0xF3, 0xFF},
	color.NRGBA{0xFF, 0xC1, 0x07, 0xFF},
}

// Unbounded is the delta used by gradients spanning
// the whole painted shape.
var Unbounded = gradpath.Point{X: math.Inf(1), Y: math.Inf(1)}

func linearLoop(d time.Duration, start, end float64) *gradanim.Loop {
	return &gradanim.Loop{Duration: d, Repeat: gradanim.Restart, Start: start, End: end}
}

// staticRadial returns an effect with a fixed circle
func staticRadial(name string, center gradpath.Point, radius float64, stops gradpath.Stops, shape Shape) *Effect {
	return &Effect{
		Name: name, Kind: RadialKind,
		Origin: center, BaseRadius: radius - center.X,
		Stops: stops, Shape: shape,
	}
}

// Catalog returns the gallery effects, for a screen of
// the given size. Some effects are relative to the screen.
func Catalog(width, height float64) []*Effect {
	box200 := Box{200, 200}
	banner := Box{width, 100}
	return []*Effect{
		{
			Name: "basic-linear", Description: "red to blue diagonal in a square",
			Delta: gradpath.Point{X: 300, Y: 300},
			Stops: gradpath.EvenStops(Red, Blue), Shape: box200,
		},
		{
			Name: "default-linear", Description: "red to blue across the whole square",
			Delta: Unbounded,
			Stops: gradpath.EvenStops(Red, Blue), Shape: box200,
		},
		{
			Name: "horizontal", Description: "horizontal magenta to cyan banner",
			Delta: gradpath.Point{X: 1000},
			Stops: gradpath.EvenStops(Magenta, Cyan), Shape: banner,
		},
		{
			Name: "vertical", Description: "vertical green to yellow banner",
			Delta: gradpath.Point{Y: 500},
			Stops: gradpath.EvenStops(Green, Yellow), Shape: banner,
		},
		{
			Name: "diagonal", Description: "diagonal red to blue banner",
			Delta: gradpath.Point{X: 1000, Y: 1000},
			Stops: gradpath.EvenStops(Red, Blue), Shape: banner,
		},
		{
			Name: "multi-stop-linear", Description: "linear ramp with explicit stops",
			Delta: gradpath.Point{X: 300, Y: 300},
			Stops: gradpath.Stops{
				{StopColor: Red, Offset: 0, Opacity: 1},
				{StopColor: Green, Offset: 0.3, Opacity: 1},
				{StopColor: Blue, Offset: 0.6, Opacity: 1},
				{StopColor: Magenta, Offset: 1, Opacity: 1},
			},
			Shape: box200,
		},
		staticRadial("basic-radial", gradpath.Point{X: 150, Y: 150}, 200,
			gradpath.EvenStops(White, Black), Box{300, 300}),
		staticRadial("multi-color-radial", gradpath.Point{X: 150, Y: 150}, 250,
			gradpath.EvenStops(Red, Yellow, Green, Transparent), Box{400, 400}),
		{
			Name: "basic-sweep", Description: "color wheel",
			Kind: SweepKind, Origin: gradpath.Point{X: 150, Y: 150},
			Stops: gradpath.EvenStops(Red, Green, Blue, Red), Shape: Box{300, 300},
		},
		{
			Name: "progress-ring", Description: "sweep gradient along a progress arc",
			Kind: SweepKind, Origin: gradpath.Point{X: 150, Y: 150},
			Stops: gradpath.EvenStops(Purple500, Teal200, Purple500),
			Shape: Arc{Diameter: 300, StrokeWidth: 20, Progress: 0.75},
		},
		{
			Name: "rainbow-drift", Description: "mirrored rainbow sliding to the right",
			LoopX: linearLoop(3*time.Second, 0, 1000), Axis: gradpath.Point{X: 1},
			Delta: gradpath.Point{X: 1000, Y: 1000},
			Stops: gradpath.EvenStops(rainbow...), Spread: gradpath.ReflectSpread, Shape: Fill{},
		},
		{
			Name: "rainbow-pulse", Description: "mirrored rainbow swinging back and forth",
			LoopX: &gradanim.Loop{Duration: 3 * time.Second, Repeat: gradanim.Reverse, Start: 0, End: 1000},
			Axis:  gradpath.Point{X: 1},
			Delta: gradpath.Point{X: 1000, Y: 1000},
			Stops: gradpath.EvenStops(rainbow...), Spread: gradpath.ReflectSpread, Shape: Fill{},
		},
		{
			Name: "gradient-text", Description: "rainbow masked by text",
			Delta: Unbounded,
			Stops: gradpath.EvenStops(rainbow...), Shape: Text{Content: "Gradient Text Example", Height: 40},
		},
		{
			Name: "triangle", Description: "gradient masked by a triangle path",
			Delta: Unbounded,
			Stops: gradpath.EvenStops(Purple500, Teal200), Shape: Triangle{200, 200},
		},
		{
			Name: "accessible-text", Description: "dark gradient text on a light background",
			Delta: Unbounded,
			Stops: gradpath.EvenStops(Black, Indigo900), Shape: Text{Content: "Accessible Text", Height: 24},
			Background: White,
		},
		{
			Name: "unbounded", Description: "palette stretched over the whole screen",
			Delta: Unbounded,
			Stops: gradpath.EvenStops(material...), Shape: Fill{},
		},
		{
			Name: "screen-sweep", Description: "palette band falling down the screen",
			LoopX: linearLoop(3*time.Second, -width, width+height), Axis: gradpath.Point{Y: 1},
			Delta: gradpath.Point{X: width, Y: height},
			Stops: gradpath.EvenStops(material...), Shape: Fill{},
		},
		{
			Name: "two-axis-wave", Description: "palette band driven by two loops",
			LoopX: linearLoop(4*time.Second, -1000, 1000),
			LoopY: linearLoop(4*time.Second, -1000, 1000),
			Axis:  gradpath.Point{X: 1, Y: 1},
			Delta: gradpath.Point{X: 1500, Y: 1500},
			Stops: gradpath.EvenStops(material...), Shape: Fill{},
		},
		{
			Name: "diagonal-drift", Description: "slow diagonal palette drift",
			LoopX: linearLoop(4*time.Second, 0, 1000), Axis: gradpath.Point{X: 1, Y: 1},
			Delta: gradpath.Point{X: 1000, Y: 1000},
			Stops: gradpath.EvenStops(material...), Shape: Fill{},
		},
		{
			Name: "diagonal-wave", Description: "fast diagonal palette wave",
			LoopX: linearLoop(3*time.Second, -1000, 1000), Axis: gradpath.Point{X: 1, Y: 1},
			Delta: gradpath.Point{X: 1000, Y: 1000},
			Stops: gradpath.EvenStops(material...), Shape: Fill{},
		},
		{
			Name: "reverse-drift", Description: "band pointing back toward the origin",
			LoopX: linearLoop(10*time.Second, 0, 1000),
			LoopY: linearLoop(10*time.Second, 0, 1000),
			Axis:  gradpath.Point{X: 1, Y: 1},
			Delta: gradpath.Point{X: -500, Y: -500},
			Stops: gradpath.EvenStops(greenBlueAmber...), Shape: Fill{},
		},
		{
			Name: "radial-wave", Description: "moving and growing palette circle",
			Kind:  RadialKind,
			LoopX: linearLoop(4*time.Second, 0, 2000), Axis: gradpath.Point{X: 1, Y: 1},
			BaseRadius: 500,
			Stops:      gradpath.EvenStops(material...), Shape: Fill{},
		},
		{
			Name: "flowing-border", Description: "translucent gradient flowing along a rounded border",
			LoopX: linearLoop(3*time.Second, 0, 1500), Axis: gradpath.Point{X: 1},
			Delta: gradpath.Point{X: 1500},
			Stops: gradpath.Stops{
				{StopColor: Cyan, Offset: 0, Opacity: 0.8},
				{StopColor: Red, Offset: 0.5, Opacity: 0.6},
				{StopColor: Yellow, Offset: 1, Opacity: 0.6},
			},
			Shape: Border{W: 300, H: 150, Width: 6, Radius: 16},
		},
	}
}

// Lookup returns the effect with the given name.
func Lookup(effects []*Effect, name string) (*Effect, error) {
	for _, e := range effects {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("unknown effect %q", name)
}

// ValidateAll validates every effect, and checks that names are unique.
func ValidateAll(effects []*Effect) error {
	seen := make(map[string]bool, len(effects))
	for _, e := range effects {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate effect name %q", gradanim.ErrInvalidConfiguration, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}
