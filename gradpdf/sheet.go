package gradpdf

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"math"
	"time"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/benoitkugler/gradfx/gradfx"
	"github.com/benoitkugler/gradfx/gradraster"
	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// page layout, in points
const (
	margin     = 28.
	gap        = 8.
	labelH     = 14.
	rampH      = 6.
	captionH   = 12.
	fontFamily = "Helvetica"
)

// Options controls the layout of a contact sheet.
type Options struct {
	Title  string
	Frames int     // frames per animated effect, static effects use one
	Scale  float64 // size of a thumbnail relative to the frame size
}

// DefaultOptions is used by ContactSheetFile
var DefaultOptions = Options{Title: "Gradient gallery", Frames: 4, Scale: 0.3}

// Sheet accumulates effects into a PDF document.
type Sheet struct {
	pdf           *gofpdf.Fpdf
	opts          Options
	width, height int // size of the rendered frames, in pixels
	y             float64
	images        int
}

// NewSheet starts a document for frames of the given size.
func NewSheet(width, height int, opts Options) *Sheet {
	if opts.Frames <= 0 {
		opts.Frames = 1
	}
	if !(opts.Scale > 0) {
		opts.Scale = DefaultOptions.Scale
	}
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("gradfx", true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	s := &Sheet{pdf: pdf, opts: opts, width: width, height: height}
	s.newPage()
	if opts.Title != "" {
		pdf.SetFont(fontFamily, "B", 16)
		pdf.Text(margin, s.y+16, opts.Title)
		s.y += 16 + gap
	}
	return s
}

func (s *Sheet) newPage() {
	s.pdf.AddPage()
	s.y = margin
}

// thumbnailSize returns the displayed size of one frame,
// so that `n` frames fit on a line.
func (s *Sheet) thumbnailSize(n int) (w, h float64) {
	pageW, _ := s.pdf.GetPageSize()
	available := pageW - 2*margin - float64(n-1)*gap
	w = math.Min(float64(s.width)*s.opts.Scale, available/float64(n))
	return w, w * float64(s.height) / float64(s.width)
}

func (s *Sheet) times(e *gradfx.Effect) []time.Duration {
	if !e.IsAnimated() {
		return []time.Duration{0}
	}
	return gradanim.Steps(e.Period(), s.opts.Frames)
}

// Add renders one line of frames of `e`, sampled evenly over its period.
func (s *Sheet) Add(e *gradfx.Effect) error {
	times := s.times(e)
	tw, th := s.thumbnailSize(len(times))
	rowH := labelH + rampH + gap + th + captionH + gap
	_, pageH := s.pdf.GetPageSize()
	if s.y+rowH > pageH-margin {
		s.newPage()
	}

	pdf := s.pdf
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(margin, s.y+10, e.Name)
	if e.Description != "" {
		nameW := pdf.GetStringWidth(e.Name)
		pdf.SetFont(fontFamily, "", 9)
		pdf.Text(margin+nameW+gap, s.y+10, e.Description)
	}
	s.y += labelH
	drawRamp(pdf, e.Stops, margin, s.y, math.Min(200, tw*float64(len(times))), rampH)
	s.y += rampH + gap

	pw := int(math.Round(tw))
	scale := tw / float64(s.width)
	for i, t := range times {
		x := margin + float64(i)*(tw+gap)
		if err := s.addFrame(e.Frame(t), pw, x, s.y, tw, th); err != nil {
			return fmt.Errorf("effect %q: %w", e.Name, err)
		}
		drawOutline(pdf, gradfx.Outline(e.Shape, float64(s.width), float64(s.height)), x, s.y, scale)
		pdf.SetFont(fontFamily, "", 8)
		pdf.Text(x, s.y+th+captionH-2, fmt.Sprintf("t = %s", t))
	}
	s.y += th + captionH + gap
	return pdf.Error()
}

// addFrame embeds the rasterized frame as a PNG image,
// downscaled to a width of `pw` pixels.
func (s *Sheet) addFrame(f gradfx.Frame, pw int, x, y, w, h float64) error {
	img := gradraster.RenderFrame(f, s.width, s.height)
	thumb := imaging.Resize(img, pw, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return err
	}
	s.images++
	name := fmt.Sprintf("frame-%d", s.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	s.pdf.RegisterImageOptionsReader(name, opts, &buf)
	s.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return s.pdf.Error()
}

// PageCount returns the number of pages written so far.
func (s *Sheet) PageCount() int { return s.pdf.PageCount() }

// Output writes the document to `w`, closing it.
func (s *Sheet) Output(w io.Writer) error { return s.pdf.Output(w) }

// ContactSheet writes a sheet of all `effects` to `w`.
func ContactSheet(w io.Writer, effects []*gradfx.Effect, width, height int, opts Options) error {
	sheet := NewSheet(width, height, opts)
	for _, e := range effects {
		if err := sheet.Add(e); err != nil {
			return err
		}
	}
	return sheet.Output(w)
}

// ContactSheetFile writes a sheet of all `effects` into the named file,
// with the DefaultOptions.
func ContactSheetFile(path string, effects []*gradfx.Effect, width, height int) error {
	sheet := NewSheet(width, height, DefaultOptions)
	for _, e := range effects {
		if err := sheet.Add(e); err != nil {
			return err
		}
	}
	return sheet.pdf.OutputFileAndClose(path)
}
