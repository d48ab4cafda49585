package gradconf

import (
	"fmt"
	"image/color"
	"time"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/benoitkugler/gradfx/gradfx"
	"github.com/benoitkugler/gradfx/gradpath"
	"github.com/benoitkugler/gradfx/gradsvg"
	"github.com/lucasb-eyer/go-colorful"
)

// EffectConfig is the TOML form of a gradfx.Effect.
// Colors are "#rrggbb" strings. Stops are given either
// by Stops, by Colors (evenly spread) or imported from
// a gradient of an SVG file.
type EffectConfig struct {
	Name        string      `toml:"name"`
	Description string      `toml:"description,omitempty"`
	Kind        string      `toml:"kind"`
	LoopX       *LoopConfig `toml:"loop_x,omitempty"`
	LoopY       *LoopConfig `toml:"loop_y,omitempty"`
	Origin      [2]float64  `toml:"origin"`
	Axis        [2]float64  `toml:"axis"`
	Delta       [2]float64  `toml:"delta"` // may be inf
	BaseRadius  float64     `toml:"base_radius"`

	Colors []string     `toml:"colors,omitempty"`
	Stops  []StopConfig `toml:"stops,omitempty"`
	SVG    string       `toml:"svg,omitempty"`
	SVGID  string       `toml:"svg_id,omitempty"`

	Spread     string      `toml:"spread"`
	Shape      ShapeConfig `toml:"shape"`
	Background string      `toml:"background,omitempty"`
}

type LoopConfig struct {
	DurationMs int64   `toml:"duration_ms"`
	Repeat     string  `toml:"repeat"`
	Start      float64 `toml:"start"`
	End        float64 `toml:"end"`
	Easing     string  `toml:"easing,omitempty"`
}

type StopConfig struct {
	Offset  float64  `toml:"offset"`
	Color   string   `toml:"color"`
	Opacity *float64 `toml:"opacity,omitempty"` // defaults to 1
}

// ShapeConfig holds the union of the shape parameters,
// Type selecting the used ones.
type ShapeConfig struct {
	Type     string  `toml:"type"` // fill, box, border, triangle, arc or text
	W        float64 `toml:"w,omitempty"`
	H        float64 `toml:"h,omitempty"`
	Width    float64 `toml:"width,omitempty"`
	Radius   float64 `toml:"radius,omitempty"`
	Progress float64 `toml:"progress,omitempty"`
	Text     string  `toml:"text,omitempty"`
}

func point(v [2]float64) gradpath.Point { return gradpath.Point{X: v[0], Y: v[1]} }

func parseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid color %q", gradanim.ErrInvalidConfiguration, s)
	}
	return c.Clamped(), nil
}

func formatHex(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	return cf.Hex(), float64(n.A) / 255
}

func (lc *LoopConfig) loop() (*gradanim.Loop, error) {
	if lc == nil {
		return nil, nil
	}
	repeat, err := gradanim.ParseRepeatMode(lc.Repeat)
	if err != nil {
		return nil, err
	}
	easing, err := gradanim.ParseEasing(lc.Easing)
	if err != nil {
		return nil, err
	}
	l := &gradanim.Loop{
		Duration: time.Duration(lc.DurationMs) * time.Millisecond,
		Repeat:   repeat,
		Start:    lc.Start,
		End:      lc.End,
		Easing:   easing,
	}
	return l, l.Validate()
}

func (ec EffectConfig) stops() (gradpath.Stops, error) {
	switch {
	case ec.SVG != "":
		grads, err := gradsvg.ReadGradients(ec.SVG, gradsvg.WarnErrorMode)
		if err != nil {
			return nil, err
		}
		g, ok := gradsvg.Find(grads, ec.SVGID)
		if !ok {
			return nil, fmt.Errorf("%w: no gradient %q in %s", gradanim.ErrInvalidConfiguration, ec.SVGID, ec.SVG)
		}
		return g.Gradient.Stops, nil
	case len(ec.Stops) != 0:
		out := make(gradpath.Stops, len(ec.Stops))
		for i, sc := range ec.Stops {
			c, err := parseHex(sc.Color)
			if err != nil {
				return nil, err
			}
			out[i] = gradpath.GradStop{StopColor: c, Offset: sc.Offset, Opacity: 1}
			if sc.Opacity != nil {
				out[i].Opacity = *sc.Opacity
			}
		}
		return out, nil
	default:
		colors := make([]color.Color, len(ec.Colors))
		for i, s := range ec.Colors {
			c, err := parseHex(s)
			if err != nil {
				return nil, err
			}
			colors[i] = c
		}
		return gradpath.EvenStops(colors...), nil
	}
}

func (sc ShapeConfig) shape() (gradfx.Shape, error) {
	switch sc.Type {
	case "", "fill":
		return gradfx.Fill{}, nil
	case "box":
		return gradfx.Box{W: sc.W, H: sc.H}, nil
	case "border":
		return gradfx.Border{W: sc.W, H: sc.H, Width: sc.Width, Radius: sc.Radius}, nil
	case "triangle":
		return gradfx.Triangle{W: sc.W, H: sc.H}, nil
	case "arc":
		return gradfx.Arc{Diameter: sc.W, StrokeWidth: sc.Width, Progress: sc.Progress}, nil
	case "text":
		return gradfx.Text{Content: sc.Text, Height: sc.H}, nil
	}
	return nil, fmt.Errorf("%w: unknown shape %q", gradanim.ErrInvalidConfiguration, sc.Type)
}

// Effect returns the validated effect described by the config.
func (ec EffectConfig) Effect() (*gradfx.Effect, error) {
	kind, err := gradfx.ParseKind(ec.Kind)
	if err != nil {
		return nil, fmt.Errorf("effect %q: %w", ec.Name, err)
	}
	e := &gradfx.Effect{
		Name:        ec.Name,
		Description: ec.Description,
		Kind:        kind,
		Origin:      point(ec.Origin),
		Axis:        point(ec.Axis),
		Delta:       point(ec.Delta),
		BaseRadius:  ec.BaseRadius,
	}
	if e.LoopX, err = ec.LoopX.loop(); err != nil {
		return nil, fmt.Errorf("effect %q: %w", ec.Name, err)
	}
	if e.LoopY, err = ec.LoopY.loop(); err != nil {
		return nil, fmt.Errorf("effect %q: %w", ec.Name, err)
	}
	if e.Stops, err = ec.stops(); err != nil {
		return nil, fmt.Errorf("effect %q: %w", ec.Name, err)
	}
	if e.Spread, err = gradpath.ParseSpreadMethod(ec.Spread); err != nil {
		return nil, fmt.Errorf("effect %q: %w", ec.Name, err)
	}
	if e.Shape, err = ec.Shape.shape(); err != nil {
		return nil, fmt.Errorf("effect %q: %w", ec.Name, err)
	}
	if ec.Background != "" {
		if e.Background, err = parseHex(ec.Background); err != nil {
			return nil, fmt.Errorf("effect %q: %w", ec.Name, err)
		}
	}
	return e, e.Validate()
}

func fromLoop(l *gradanim.Loop) *LoopConfig {
	if l == nil {
		return nil
	}
	easing, _ := gradanim.EasingName(l.Easing)
	// rounded up, so that a valid loop stays valid once saved
	ms := l.Duration.Milliseconds()
	if time.Duration(ms)*time.Millisecond < l.Duration {
		ms++
	}
	return &LoopConfig{
		DurationMs: ms,
		Repeat:     l.Repeat.String(),
		Start:      l.Start,
		End:        l.End,
		Easing:     easing,
	}
}

func fromShape(s gradfx.Shape) ShapeConfig {
	switch s := s.(type) {
	case gradfx.Box:
		return ShapeConfig{Type: "box", W: s.W, H: s.H}
	case gradfx.Border:
		return ShapeConfig{Type: "border", W: s.W, H: s.H, Width: s.Width, Radius: s.Radius}
	case gradfx.Triangle:
		return ShapeConfig{Type: "triangle", W: s.W, H: s.H}
	case gradfx.Arc:
		return ShapeConfig{Type: "arc", W: s.Diameter, Width: s.StrokeWidth, Progress: s.Progress}
	case gradfx.Text:
		return ShapeConfig{Type: "text", H: s.Height, Text: s.Content}
	default:
		return ShapeConfig{Type: "fill"}
	}
}

// FromEffect returns the config describing `e`, with explicit stops.
// Custom easings are not representable and are written as linear.
// Loop durations are rounded up to the millisecond.
func FromEffect(e *gradfx.Effect) EffectConfig {
	ec := EffectConfig{
		Name:        e.Name,
		Description: e.Description,
		Kind:        e.Kind.String(),
		LoopX:       fromLoop(e.LoopX),
		LoopY:       fromLoop(e.LoopY),
		Origin:      [2]float64{e.Origin.X, e.Origin.Y},
		Axis:        [2]float64{e.Axis.X, e.Axis.Y},
		Delta:       [2]float64{e.Delta.X, e.Delta.Y},
		BaseRadius:  e.BaseRadius,
		Spread:      e.Spread.String(),
		Shape:       fromShape(e.Shape),
	}
	for _, st := range e.Stops {
		hex, alpha := formatHex(st.StopColor)
		op := alpha * st.Opacity
		ec.Stops = append(ec.Stops, StopConfig{Offset: st.Offset, Color: hex, Opacity: &op})
	}
	if e.Background != nil {
		ec.Background, _ = formatHex(e.Background)
	}
	return ec
}
