package gradpdf

import (
	"bytes"
	"math"
	"os"
	"testing"

	"github.com/benoitkugler/gradfx/gradfx"
	"github.com/benoitkugler/gradfx/gradpath"
	"github.com/jung-kurt/gofpdf"
)

func TestPather(t *testing.T) {
	pdf := gofpdf.New("", "pt", "", "")
	pdf.AddPage()

	var path gradpath.Path
	path.AddRoundRect(10, 10, 200, 100, 12)
	path.AddEllipse(100, 200, 60, 30)
	path.AddArc(300, 300, 50, 0, 1.5*math.Pi)
	drawOutline(pdf, path, 20, 20, 1)
	drawOutline(pdf, path, 20, 400, 0.5)
	drawOutline(pdf, nil, 0, 0, 1)

	drawRamp(pdf, gradpath.Stops{
		{StopColor: gradfx.Red, Offset: 0.2, Opacity: 1},
		{StopColor: gradfx.Green, Offset: 0.5, Opacity: 0.5},
		{StopColor: gradfx.Blue, Offset: 0.7, Opacity: 1},
	}, 20, 700, 300, 20)

	if err := os.MkdirAll("testdata_out", os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := pdf.OutputFileAndClose("testdata_out/outlines.pdf"); err != nil {
		t.Error(err)
	}
}

func TestContactSheet(t *testing.T) {
	catalog := gradfx.Catalog(400, 300)
	var buf bytes.Buffer
	err := ContactSheet(&buf, catalog, 400, 300, Options{Title: "Gallery", Frames: 4, Scale: 0.3})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("invalid PDF header")
	}
}

func TestSheetPages(t *testing.T) {
	catalog := gradfx.Catalog(400, 300)
	sheet := NewSheet(400, 300, Options{Frames: 3})
	for _, e := range catalog {
		if err := sheet.Add(e); err != nil {
			t.Fatal(err)
		}
	}
	// a page holds a handful of rows
	if n := sheet.PageCount(); n < 2 || n > len(catalog) {
		t.Errorf("unexpected page count %d", n)
	}
	// one thumbnail for static effects
	var expected int
	for _, e := range catalog {
		if e.IsAnimated() {
			expected += 3
		} else {
			expected++
		}
	}
	if sheet.images != expected {
		t.Errorf("expected %d images, got %d", expected, sheet.images)
	}
}

func TestContactSheetFile(t *testing.T) {
	if err := os.MkdirAll("testdata_out", os.ModePerm); err != nil {
		t.Fatal(err)
	}
	catalog := gradfx.Catalog(400, 300)
	if err := ContactSheetFile("testdata_out/gallery.pdf", catalog, 400, 300); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat("testdata_out/gallery.pdf"); err != nil {
		t.Error(err)
	}
}
