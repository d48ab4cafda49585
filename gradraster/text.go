package gradraster

import (
	"image"
	"image/draw"
	"math"

	"github.com/benoitkugler/gradfx/gradfx"
	"github.com/benoitkugler/gradfx/gradpath"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textMask draws `content` with the builtin bitmap face,
// scaled to glyphs of the given height.
func textMask(content string, height float64) *image.NRGBA {
	face := basicfont.Face7x13
	m := face.Metrics()
	w := font.MeasureString(face, content).Ceil()
	h := m.Height.Ceil()
	if w == 0 || h == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(content)

	scale := height / float64(h)
	sw, sh := int(math.Round(float64(w)*scale)), int(math.Round(height))
	if sw <= 0 || sh <= 0 {
		sw, sh = w, h
	}
	return imaging.Resize(mask, sw, sh, imaging.Linear)
}

// drawText paints the gradient through the glyphs of `text`,
// placed at the origin.
func (rd *Renderer) drawText(grad gradpath.Gradient, text gradfx.Text) {
	mask := textMask(text.Content, text.Height)
	r := mask.Bounds().Intersect(rd.img.Bounds())
	if r.Empty() {
		return
	}
	// the gradient spans the text, not the canvas
	grad = grad.Resolve(gradpath.Rect{W: float64(mask.Bounds().Dx()), H: float64(mask.Bounds().Dy())})

	src := image.NewRGBA(r)
	sub := NewRenderer(src)
	var p gradpath.Path
	p.AddRect(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y))
	p.AddTo(sub.filler)
	sub.filler.SetColor(colorFunction(grad))
	sub.filler.Draw()

	draw.DrawMask(rd.img, r, src, r.Min, mask, r.Min, draw.Over)
}
