// Reads and writes gradients in the SVG format.
//
// Only the <linearGradient> and <radialGradient> elements
// (and their <stop> children) are read; the rest of the document
// is skipped. Frames of an effect may be exported as standalone SVG
// images, see Encode.
package gradsvg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/benoitkugler/gradfx/gradpath"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed SVG elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode outputs a warning when an unparsed SVG element is found
	WarnErrorMode
	// StrictErrorMode causes an error when an unparsed SVG element is found
	StrictErrorMode
)

var (
	errNoGradient   = errors.New("no gradient found in svg document")
	errZeroLengthID = errors.New("zero length id")
	errHrefCycle    = errors.New("cyclic gradient reference")
)

// Units indicates how the coordinates of a gradient are interpreted.
type Units uint8

const (
	// ObjectBoundingBox coordinates are fractions of the painted shape extent
	ObjectBoundingBox Units = iota
	// UserSpaceOnUse coordinates are absolute
	UserSpaceOnUse
)

// Gradient is a gradient definition read from an SVG document.
type Gradient struct {
	ID       string
	Gradient gradpath.Gradient
	Units    Units

	href string // stops inherited when Stops is empty
}

// In returns the gradient painted over `b`: bounding box
// coordinates are mapped into `b`, user space ones are kept as is.
func (g Gradient) In(b gradpath.Rect) gradpath.Gradient {
	out := g.Gradient
	if g.Units == UserSpaceOnUse {
		return out
	}
	mapPoint := func(p gradpath.Point) gradpath.Point {
		return gradpath.Point{X: b.X + p.X*b.W, Y: b.Y + p.Y*b.H}
	}
	switch geom := out.Geometry.(type) {
	case gradpath.Linear:
		out.Geometry = gradpath.Linear{Start: mapPoint(geom.Start), End: mapPoint(geom.End)}
	case gradpath.Radial:
		// SVG uses the normalized diagonal for non square boxes
		scale := math.Hypot(b.W, b.H) / math.Sqrt2
		out.Geometry = gradpath.Radial{Center: mapPoint(geom.Center), Radius: geom.Radius * scale}
	}
	return out
}

// gradCursor is used while parsing SVG files
type gradCursor struct {
	errorMode ErrorMode
	grads     []*Gradient
	grad      *Gradient // current gradient, nil outside of gradients
}

// unsupported reports an element or attribute the parser
// can't handle, according to the error mode.
func (c *gradCursor) unsupported(format string, args ...interface{}) error {
	errStr := fmt.Sprintf(format, args...)
	if c.errorMode == StrictErrorMode {
		return errors.New(errStr)
	} else if c.errorMode == WarnErrorMode {
		log.Println(errStr)
	}
	return nil
}

func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err = strconv.ParseFloat(v, 64)
	f /= d
	return
}

// readGradAttr handles the attributes shared by linear and radial gradients
func (c *gradCursor) readGradAttr(attr xml.Attr) (err error) {
	switch attr.Name.Local {
	case "id":
		if attr.Value == "" {
			return errZeroLengthID
		}
		c.grad.ID = attr.Value
	case "gradientUnits":
		switch strings.TrimSpace(attr.Value) {
		case "userSpaceOnUse":
			c.grad.Units = UserSpaceOnUse
		case "objectBoundingBox":
			c.grad.Units = ObjectBoundingBox
		default:
			return fmt.Errorf("invalid gradientUnits %q", attr.Value)
		}
	case "spreadMethod":
		c.grad.Gradient.Spread, err = gradpath.ParseSpreadMethod(strings.TrimSpace(attr.Value))
	case "href":
		c.grad.href = strings.TrimPrefix(strings.TrimSpace(attr.Value), "#")
	case "gradientTransform":
		return c.unsupported("Cannot process gradient attribute %s", attr.Name.Local)
	}
	return err
}

func linearGradientF(c *gradCursor, attrs []xml.Attr) error {
	var err error
	direction := [4]float64{0, 0, 1, 0}
	c.grad = &Gradient{}
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			direction[0], err = readFraction(attr.Value)
		case "y1":
			direction[1], err = readFraction(attr.Value)
		case "x2":
			direction[2], err = readFraction(attr.Value)
		case "y2":
			direction[3], err = readFraction(attr.Value)
		default:
			err = c.readGradAttr(attr)
		}
		if err != nil {
			return err
		}
	}
	c.grad.Gradient.Geometry = gradpath.Linear{
		Start: gradpath.Point{X: direction[0], Y: direction[1]},
		End:   gradpath.Point{X: direction[2], Y: direction[3]},
	}
	return nil
}

func radialGradientF(c *gradCursor, attrs []xml.Attr) error {
	var err error
	direction := [3]float64{0.5, 0.5, 0.5} // cx, cy, r
	c.grad = &Gradient{}
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			direction[0], err = readFraction(attr.Value)
		case "cy":
			direction[1], err = readFraction(attr.Value)
		case "r":
			direction[2], err = readFraction(attr.Value)
		case "fx", "fy", "fr":
			err = c.unsupported("Cannot process focal attribute %s", attr.Name.Local)
		default:
			err = c.readGradAttr(attr)
		}
		if err != nil {
			return err
		}
	}
	c.grad.Gradient.Geometry = gradpath.Radial{
		Center: gradpath.Point{X: direction[0], Y: direction[1]},
		Radius: direction[2],
	}
	return nil
}

// readStopStyle handles the stop properties given
// in a style attribute
func readStopStyle(stop *gradpath.GradStop, style string) (err error) {
	for _, decl := range strings.Split(style, ";") {
		kv := strings.SplitN(decl, ":", 2)
		if len(kv) != 2 {
			continue
		}
		k, v := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		switch k {
		case "stop-color":
			stop.StopColor, err = ParseColor(v)
		case "stop-opacity":
			stop.Opacity, err = readFraction(v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func stopF(c *gradCursor, attrs []xml.Attr) error {
	if c.grad == nil {
		return c.unsupported("Cannot process stop outside of a gradient")
	}
	var err error
	stop := gradpath.GradStop{StopColor: color.Black, Opacity: 1}
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "offset":
			stop.Offset, err = readFraction(attr.Value)
		case "stop-color":
			stop.StopColor, err = ParseColor(attr.Value)
		case "stop-opacity":
			stop.Opacity, err = readFraction(attr.Value)
		case "style":
			err = readStopStyle(&stop, attr.Value)
		}
		if err != nil {
			return err
		}
	}
	stop.Offset = math.Max(0, math.Min(1, stop.Offset))
	stop.Opacity = math.Max(0, math.Min(1, stop.Opacity))

	stops := c.grad.Gradient.Stops
	// SVG clamps an offset to the previous one; hard
	// transitions are not supported by the ramp model
	if L := len(stops); L > 0 && stop.Offset <= stops[L-1].Offset {
		return c.unsupported("Cannot process hard stop at offset %g", stop.Offset)
	}
	c.grad.Gradient.Stops = append(stops, stop)
	return nil
}

type svgFunc func(c *gradCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"linearGradient": linearGradientF,
	"radialGradient": radialGradientF,
	"stop":           stopF,
}

func (c *gradCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		if c.grad != nil { // only stops are expected in a gradient
			return c.unsupported("Cannot process svg element %s in gradient", se.Name.Local)
		}
		return nil
	}
	return df(c, se.Attr)
}

func (c *gradCursor) readEndElement(se xml.EndElement) {
	switch se.Name.Local {
	case "linearGradient", "radialGradient":
		if c.grad != nil {
			c.grads = append(c.grads, c.grad)
		}
		c.grad = nil
	}
}

// resolveHrefs copies the stops of referenced gradients
// into the gradients without stops.
func (c *gradCursor) resolveHrefs() error {
	byID := make(map[string]*Gradient, len(c.grads))
	for _, g := range c.grads {
		if g.ID != "" {
			byID[g.ID] = g
		}
	}
	for _, g := range c.grads {
		ref := g
		for seen := 0; len(ref.Gradient.Stops) == 0 && ref.href != ""; seen++ {
			if seen > len(c.grads) {
				return fmt.Errorf("gradient %s: %w", g.ID, errHrefCycle)
			}
			next, ok := byID[ref.href]
			if !ok {
				if err := c.unsupported("Cannot find referenced gradient %s", ref.href); err != nil {
					return err
				}
				break
			}
			ref = next
		}
		if len(g.Gradient.Stops) == 0 {
			g.Gradient.Stops = ref.Gradient.Stops
		}
	}
	return nil
}

// ReadGradientsStream reads the gradients defined in the SVG document
// read from `stream`, in document order.
// errMode determines if the parser ignores, errors out, or logs a warning
// when it does not handle an element or attribute of a gradient.
// Gradients without stops, even after following their references, are rejected.
func ReadGradientsStream(stream io.Reader, errMode ErrorMode) ([]Gradient, error) {
	cursor := &gradCursor{errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			if err = cursor.readStartElement(se); err != nil {
				return nil, err
			}
		case xml.EndElement:
			cursor.readEndElement(se)
		}
	}
	if len(cursor.grads) == 0 {
		return nil, errNoGradient
	}
	if err := cursor.resolveHrefs(); err != nil {
		return nil, err
	}
	out := make([]Gradient, len(cursor.grads))
	for i, g := range cursor.grads {
		if err := g.Gradient.Stops.Validate(); err != nil {
			return nil, fmt.Errorf("gradient %q: %w", g.ID, err)
		}
		out[i] = *g
	}
	return out, nil
}

// ReadGradients reads the gradients from the named file.
func ReadGradients(file string, errMode ErrorMode) ([]Gradient, error) {
	fin, errf := os.Open(file)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadGradientsStream(fin, errMode)
}

// Find returns the gradient with the given id, or the first
// gradient if `id` is empty.
func Find(grads []Gradient, id string) (Gradient, bool) {
	for _, g := range grads {
		if id == "" || g.ID == id {
			return g, true
		}
	}
	return Gradient{}, false
}
