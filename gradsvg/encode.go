package gradsvg

import (
	"bufio"
	"errors"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/benoitkugler/gradfx/gradfx"
	"github.com/benoitkugler/gradfx/gradpath"
)

// ErrUnsupported is returned when exporting a sweep gradient,
// which has no SVG equivalent.
var ErrUnsupported = errors.New("sweep gradients are not supported by SVG")

const gradID = "g"

// Encode writes the frame `f` as a standalone SVG image of size width x height.
// The gradient is written in user space, with infinite coordinates
// resolved against the painted shape.
func Encode(w io.Writer, f gradfx.Frame, width, height int) error {
	canvasW, canvasH := float64(width), float64(height)
	grad := f.Gradient.Resolve(gradfx.Bounds(f.Shape, canvasW, canvasH))
	if _, ok := grad.Geometry.(gradpath.Sweep); ok {
		return ErrUnsupported
	}

	out := bufio.NewWriter(w)
	fmt.Fprintf(out, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	if f.Effect != "" {
		fmt.Fprintf(out, "<title>%s</title>\n", html.EscapeString(f.Effect))
	}
	out.WriteString("<defs>\n")
	writeGradient(out, grad)
	out.WriteString("</defs>\n")

	if f.Background != nil {
		hex, op := hexOpacity(f.Background)
		fmt.Fprintf(out, `<rect width="100%%" height="100%%" fill="%s" fill-opacity="%g"/>`+"\n", hex, op)
	}
	paint := fmt.Sprintf("url(#%s)", gradID)
	switch s := f.Shape.(type) {
	case gradfx.Text:
		fmt.Fprintf(out, `<text x="0" y="%g" font-family="monospace" font-size="%g" fill="%s">%s</text>`+"\n",
			s.Height*0.8, s.Height, paint, html.EscapeString(s.Content))
	default:
		d := gradfx.Outline(f.Shape, canvasW, canvasH).ToSVGPath()
		if stroke := gradfx.Stroke(f.Shape); stroke > 0 {
			linecap := "butt"
			if _, ok := f.Shape.(gradfx.Arc); ok {
				linecap = "round"
			}
			fmt.Fprintf(out, `<path d="%s" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="%s" stroke-linejoin="round"/>`+"\n",
				d, paint, stroke, linecap)
		} else {
			fmt.Fprintf(out, `<path d="%s" fill="%s"/>`+"\n", d, paint)
		}
	}
	out.WriteString("</svg>\n")
	return out.Flush()
}

func spreadAttr(s gradpath.SpreadMethod) string {
	switch s {
	case gradpath.ReflectSpread:
		return "reflect"
	case gradpath.RepeatSpread:
		return "repeat"
	default:
		return "pad"
	}
}

// writeGradient writes a resolved, non sweep gradient
func writeGradient(out *bufio.Writer, grad gradpath.Gradient) {
	var tag string
	switch geom := grad.Geometry.(type) {
	case gradpath.Linear:
		tag = "linearGradient"
		fmt.Fprintf(out, `<%s id="%s" gradientUnits="userSpaceOnUse" spreadMethod="%s" x1="%g" y1="%g" x2="%g" y2="%g">`+"\n",
			tag, gradID, spreadAttr(grad.Spread), geom.Start.X, geom.Start.Y, geom.End.X, geom.End.Y)
	case gradpath.Radial:
		tag = "radialGradient"
		fmt.Fprintf(out, `<%s id="%s" gradientUnits="userSpaceOnUse" spreadMethod="%s" cx="%g" cy="%g" r="%g">`+"\n",
			tag, gradID, spreadAttr(grad.Spread), geom.Center.X, geom.Center.Y, math.Max(0, geom.Radius))
	}
	for _, st := range grad.Stops {
		hex, op := hexOpacity(st.StopColor)
		fmt.Fprintf(out, `<stop offset="%g" stop-color="%s" stop-opacity="%g"/>`+"\n", st.Offset, hex, op*st.Opacity)
	}
	fmt.Fprintf(out, "</%s>\n", tag)
}
