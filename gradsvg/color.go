package gradsvg

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor accepts the SVG color syntaxes:
// #rgb, #rrggbb, rgb(r, g, b) with integer or percent components,
// the named colors, and none or transparent.
func ParseColor(v string) (color.Color, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "none", v == "transparent":
		return color.Transparent, nil
	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(v)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %s", v, err)
		}
		return c.Clamped(), nil
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGB(strings.TrimSuffix(strings.TrimPrefix(v, "rgb("), ")"))
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", v)
}

func parseRGB(args string) (color.Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid rgb color %q", args)
	}
	var comps [3]uint8
	for i, part := range parts {
		part = strings.TrimSpace(part)
		percent := strings.HasSuffix(part, "%")
		part = strings.TrimSuffix(part, "%")
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rgb component %q: %s", part, err)
		}
		if percent {
			f = f * 255 / 100
		}
		comps[i] = uint8(math.Max(0, math.Min(255, math.Round(f))))
	}
	return color.NRGBA{R: comps[0], G: comps[1], B: comps[2], A: 0xff}, nil
}

// hexOpacity splits a color into its opaque hex form and its alpha.
func hexOpacity(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	return cf.Hex(), float64(n.A) / 255
}
