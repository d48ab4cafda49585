// Plays gradient effects in a window, by wrapping Ebitengine.
package gradview

import (
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/benoitkugler/gradfx/gradanim"
	"github.com/benoitkugler/gradfx/gradfx"
	"github.com/benoitkugler/gradfx/gradraster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Player implements ebiten.Game, showing one effect at a time.
// The clock advances by one tick per Update call.
type Player struct {
	Width, Height int // logical screen size

	effects []*gradfx.Effect
	current int
	paused  bool
	tick    gradanim.Tick // of the current effect
	tps     int

	frame    *image.RGBA // reused between draws
	renderer *gradraster.Renderer
}

// NewPlayer returns a player for `effects`, with a logical screen of width x height.
func NewPlayer(effects []*gradfx.Effect, width, height int) *Player {
	frame := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Player{
		Width:    width,
		Height:   height,
		effects:  effects,
		tps:      ebiten.DefaultTPS,
		frame:    frame,
		renderer: gradraster.NewRenderer(frame),
	}
}

// Current returns the index of the effect being played.
func (p *Player) Current() int { return p.current }

// Elapsed returns the time of the current effect.
func (p *Player) Elapsed() time.Duration { return p.tick.Elapsed }

// Select switches to the effect with index `i` (modulo the number
// of effects), restarting its clock.
func (p *Player) Select(i int) {
	n := len(p.effects)
	if n == 0 {
		return
	}
	p.current = ((i % n) + n) % n
	p.tick = gradanim.Tick{}
}

// advance moves the clock by one tick
func (p *Player) advance() {
	if p.paused {
		return
	}
	p.tick.Frame++
	p.tick.Elapsed = time.Duration(p.tick.Frame) * time.Second / time.Duration(p.tps)
}

func (p *Player) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyN):
		p.Select(p.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyP):
		p.Select(p.current - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		p.paused = !p.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	p.advance()
	return nil
}

// render paints the current frame into the reused buffer
func (p *Player) render() *image.RGBA {
	draw.Draw(p.frame, p.frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
	p.renderer.Clear()
	p.renderer.Draw(p.effects[p.current].Frame(p.tick.Elapsed))
	return p.frame
}

func (p *Player) Draw(screen *ebiten.Image) {
	screen.WritePixels(p.render().Pix)
	e := p.effects[p.current]
	status := fmt.Sprintf("%d/%d %s  t=%.1fs", p.current+1, len(p.effects), e.Name, p.tick.Elapsed.Seconds())
	if p.paused {
		status += " (paused)"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, p.Height-20)
}

func (p *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.Width, p.Height
}

// Run opens a window and plays the effects until it is closed
// or the user quits with Escape or Q.
func (p *Player) Run(title string) error {
	if len(p.effects) == 0 {
		return fmt.Errorf("%w: no effect to play", gradanim.ErrInvalidConfiguration)
	}
	ebiten.SetWindowSize(p.Width, p.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	p.tps = ebiten.TPS()
	return ebiten.RunGame(p)
}
