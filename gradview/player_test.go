package gradview

import (
	"testing"
	"time"

	"github.com/benoitkugler/gradfx/gradfx"
)

func TestSelect(t *testing.T) {
	p := NewPlayer(gradfx.Catalog(400, 300), 400, 300)
	p.Select(-1)
	if p.Current() != len(p.effects)-1 {
		t.Errorf("expected wrap around, got %d", p.Current())
	}
	p.advance()
	p.Select(len(p.effects))
	if p.Current() != 0 || p.Elapsed() != 0 {
		t.Errorf("expected first effect at time 0, got %d at %s", p.Current(), p.Elapsed())
	}

	empty := NewPlayer(nil, 10, 10)
	empty.Select(3)
	if empty.Current() != 0 {
		t.Error("selecting without effects should be a no-op")
	}
}

func TestAdvance(t *testing.T) {
	p := NewPlayer(gradfx.Catalog(400, 300), 400, 300)
	for i := 0; i < p.tps; i++ {
		p.advance()
	}
	if p.Elapsed() != time.Second {
		t.Errorf("expected one second, got %s", p.Elapsed())
	}
	p.paused = true
	p.advance()
	if p.Elapsed() != time.Second {
		t.Errorf("paused time should not count, got %s", p.Elapsed())
	}
}

func TestRender(t *testing.T) {
	effects := gradfx.Catalog(400, 300)
	p := NewPlayer(effects, 400, 300)
	for i, e := range effects {
		if e.Name == "horizontal" {
			p.Select(i)
		}
	}
	img := p.render()
	if c := img.RGBAAt(2, 50); c.R < 0xF0 || c.G > 0x10 || c.B < 0xF0 {
		t.Errorf("expected magenta on the left, got %v", c)
	}
	if c := img.RGBAAt(2, 250); c.A != 0 {
		t.Errorf("expected transparent pixel below the banner, got %v", c)
	}

	// the buffer is cleared between frames
	for i, e := range effects {
		if e.Name == "accessible-text" {
			p.Select(i)
		}
	}
	p.render()
	for i, e := range effects {
		if e.Name == "horizontal" {
			p.Select(i)
		}
	}
	if c := p.render().RGBAAt(2, 250); c.A != 0 {
		t.Errorf("expected cleared buffer, got %v", c)
	}
}

func TestRunEmpty(t *testing.T) {
	if err := NewPlayer(nil, 10, 10).Run("empty"); err == nil {
		t.Error("expected error without effects")
	}
}
