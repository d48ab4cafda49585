// Plays gradient effects in a terminal, using true colors and
// the upper half block so that each cell shows two pixels.
package gradterm

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/benoitkugler/gradfx/gradfx"
	"github.com/benoitkugler/gradfx/gradraster"
	"github.com/disintegration/imaging"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const upperHalfBlock = '▀'

// Player shows one effect at a time, in the whole screen
// minus a status line.
type Player struct {
	Driver gradanim.Driver

	screen        tcell.Screen
	effects       []*gradfx.Effect
	width, height int // logical frame size, in pixels

	current int
	paused  bool
	clock   time.Duration // elapsed time of the current effect
	last    time.Duration // time of the previous tick
}

// NewPlayer returns a player for `effects`, rendered at the
// logical size width x height before being scaled to the screen.
// The screen must be initialized.
func NewPlayer(screen tcell.Screen, effects []*gradfx.Effect, width, height int) *Player {
	return &Player{
		Driver:  gradanim.Driver{Interval: gradanim.DefaultInterval},
		screen:  screen,
		effects: effects,
		width:   width,
		height:  height,
	}
}

// Current returns the index of the effect being played.
func (p *Player) Current() int { return p.current }

// Select switches to the effect with index `i` (modulo the number
// of effects), restarting its clock.
func (p *Player) Select(i int) {
	n := len(p.effects)
	if n == 0 {
		return
	}
	p.current = ((i % n) + n) % n
	p.clock = 0
}

// handleInput returns false when the player should quit
func (p *Player) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRight:
			p.Select(p.current + 1)
		case tcell.KeyLeft:
			p.Select(p.current - 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'n':
				p.Select(p.current + 1)
			case 'p':
				p.Select(p.current - 1)
			case ' ':
				p.paused = !p.paused
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *Player) advance(t gradanim.Tick) {
	if !p.paused {
		p.clock += t.Elapsed - p.last
	}
	p.last = t.Elapsed
}

// Run plays the effects until the user quits (q, Esc or Ctrl-C),
// returning nil, or until `ctx` is done, returning its error.
func (p *Player) Run(ctx context.Context) error {
	if len(p.effects) == 0 {
		return fmt.Errorf("%w: no effect to play", gradanim.ErrInvalidConfiguration)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil { // screen finalized
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticks := p.Driver.Ticks(ctx)
	for {
		select {
		case ev := <-events:
			if !p.handleInput(ev) {
				return nil
			}
		case t, ok := <-ticks:
			if !ok {
				return ctx.Err()
			}
			p.advance(t)
			p.Draw(p.clock)
		}
	}
}

// pixelSize returns the size of the half-block canvas
func (p *Player) pixelSize() (cols, rows int) {
	cols, rows = p.screen.Size()
	rows-- // status line
	if rows < 0 {
		rows = 0
	}
	return cols, 2 * rows
}

// Draw paints the current effect at `elapsed` and shows the screen.
func (p *Player) Draw(elapsed time.Duration) {
	e := p.effects[p.current]
	f := e.Frame(elapsed)
	p.screen.Clear()

	cols, rows := p.pixelSize()
	if cols > 0 && rows > 0 {
		img := gradraster.RenderFrame(f, p.width, p.height)
		scaled := imaging.Resize(img, cols, rows, imaging.Box)
		p.drawPixels(scaled, f.Background)
	}
	p.drawStatus(e, elapsed)
	p.screen.Show()
}

// over composes `c` over the opaque background `bg`
func over(c color.NRGBA, bg colorful.Color) tcell.Color {
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := bg.BlendRgb(fg, float64(c.A)/255).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (p *Player) drawPixels(img *image.NRGBA, background color.Color) {
	bg := colorful.Color{} // black terminal
	if background != nil {
		bg, _ = colorful.MakeColor(background)
	}
	b := img.Bounds()
	for y := 0; 2*y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			top := over(img.NRGBAAt(b.Min.X+x, b.Min.Y+2*y), bg)
			bottom := top
			if 2*y+1 < b.Dy() {
				bottom = over(img.NRGBAAt(b.Min.X+x, b.Min.Y+2*y+1), bg)
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.screen.SetContent(x, y, upperHalfBlock, nil, style)
		}
	}
}

func (p *Player) drawStatus(e *gradfx.Effect, elapsed time.Duration) {
	cols, rows := p.screen.Size()
	if rows == 0 {
		return
	}
	status := fmt.Sprintf(" %d/%d %s  t=%.1fs", p.current+1, len(p.effects), e.Name, elapsed.Seconds())
	if p.paused {
		status += " (paused)"
	}
	status += "  [n]ext [p]rev [space] pause [q]uit"
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	x := 0
	for _, r := range status {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, rows-1, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		p.screen.SetContent(x, rows-1, ' ', nil, style)
	}
}
