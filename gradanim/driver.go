package gradanim

import (
	"context"
	"time"
)

// DefaultInterval is the tick interval used when none is given (~60 Hz).
const DefaultInterval = time.Second / 60

// Tick is delivered by a Driver once per frame.
type Tick struct {
	Frame   int           // starting at 0
	Elapsed time.Duration // since the driver started
}

// Driver is the host clock: it notifies a subscriber once per
// frame with the elapsed time, until its context is canceled.
// The zero value is ready to use.
type Driver struct {
	Interval time.Duration    // zero means DefaultInterval
	Now      func() time.Time // zero means time.Now
}

func (d Driver) interval() time.Duration {
	if d.Interval <= 0 {
		return DefaultInterval
	}
	return d.Interval
}

func (d Driver) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// Run calls `fn` synchronously on every tick, the first one
// being sent immediately with a zero elapsed time.
// It blocks until `ctx` is done and returns its error.
func (d Driver) Run(ctx context.Context, fn func(Tick)) error {
	ticker := time.NewTicker(d.interval())
	defer ticker.Stop()

	start := d.now()
	frame := 0
	fn(Tick{Frame: frame})
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			frame++
			fn(Tick{Frame: frame, Elapsed: d.now().Sub(start)})
		}
	}
}

// Ticks is the channel version of Run. The channel is unbuffered and
// closed once `ctx` is done. A slow consumer misses frames but
// always sees the up to date elapsed time.
func (d Driver) Ticks(ctx context.Context) <-chan Tick {
	out := make(chan Tick)
	go func() {
		defer close(out)
		_ = d.Run(ctx, func(t Tick) {
			select {
			case out <- t:
			case <-ctx.Done():
			}
		})
	}()
	return out
}

// Steps returns `n` evenly spaced times in [0, total), suitable
// to sample a loop offline (exports, contact sheets).
func Steps(total time.Duration, n int) []time.Duration {
	if n <= 0 || total <= 0 {
		return nil
	}
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = total * time.Duration(i) / time.Duration(n)
	}
	return out
}
