package playback

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/step"
)

type Status int

const (
	StatusIdle Status = iota
	StatusPaused
	StatusPlaying
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPaused:
		return "paused"
	case StatusPlaying:
		return "playing"
	case StatusFinished:
		return "finished"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// View is a consistent read of the playback state. Step is a private copy
// of the current step and is only meaningful when Len > 0.
type View struct {
	RunID    string
	Step     step.Step
	Index    int
	Len      int
	Playing  bool
	Finished bool
	Interval time.Duration
}

func (v View) Status() Status {
	switch {
	case v.Len == 0:
		return StatusIdle
	case v.Finished:
		return StatusFinished
	case v.Playing:
		return StatusPlaying
	default:
		return StatusPaused
	}
}

func (v View) Speed() Speed { return SpeedOf(v.Interval) }

// Player is the playback state machine for one visualization session.
// It is safe for concurrent use; ticks arrive on the scheduler's goroutine.
type Player struct {
	mu       sync.Mutex
	runID    string
	seq      step.Sequence
	index    int
	playing  bool
	finished bool
	interval time.Duration
	drv      driver

	// views waiting for delivery; one caller drains at a time
	queue     []View
	draining  bool
	listeners []func(View)
	logger    *slog.Logger
}

type Option func(*Player)

func WithScheduler(s Scheduler) Option {
	return func(p *Player) { p.drv.sched = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// WithInterval sets an arbitrary positive tick interval.
func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.interval = d
		}
	}
}

func WithSpeed(s Speed) Option {
	return WithInterval(s.Interval())
}

// OnChange registers a listener called after every transition that changes
// the state. Views are delivered one at a time in transition order, possibly
// on the timer goroutine. Listeners must not block and may call back into
// the player.
func OnChange(fn func(View)) Option {
	return func(p *Player) { p.listeners = append(p.listeners, fn) }
}

func NewPlayer(opts ...Option) *Player {
	p := &Player{
		interval: DefaultInterval,
		drv:      driver{sched: RealTime},
		logger:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load replaces the sequence and rewinds to its first step, paused. Any
// pending tick from the previous sequence is cancelled.
func (p *Player) Load(runID string, seq step.Sequence) {
	p.transition("load", func() bool {
		p.drv.cancel()
		p.runID = runID
		p.seq = seq
		p.index = 0
		p.playing = false
		p.finished = false
		return true
	})
}

// Play starts timed advancement. It is a no-op without a sequence, once
// finished, or while already playing.
func (p *Player) Play() {
	p.transition("play", func() bool {
		if len(p.seq) == 0 || p.finished || p.playing {
			return false
		}
		p.playing = true
		p.drv.arm(p.interval, p.tick)
		return true
	})
}

func (p *Player) Pause() {
	p.transition("pause", func() bool {
		p.drv.cancel()
		if !p.playing {
			return false
		}
		p.playing = false
		return true
	})
}

// Step pauses and advances one step, clamped to the last index. It never
// marks the player finished; only a tick past the end does.
func (p *Player) Step() {
	p.transition("step", func() bool {
		p.drv.cancel()
		changed := p.playing
		p.playing = false
		if len(p.seq) == 0 {
			return changed
		}
		next := min(p.index+1, len(p.seq)-1)
		if next != p.index {
			p.index = next
			changed = true
		}
		return changed
	})
}

// Reset rewinds to the first step and clears the finished flag. The
// sequence is kept.
func (p *Player) Reset() {
	p.transition("reset", func() bool {
		p.drv.cancel()
		changed := p.index != 0 || p.playing || p.finished
		p.index = 0
		p.playing = false
		p.finished = false
		return changed
	})
}

// SetSpeed changes the interval used for the next armed tick. A tick that
// is already pending keeps its original deadline.
func (p *Player) SetSpeed(s Speed) {
	p.SetInterval(s.Interval())
}

func (p *Player) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	p.transition("speed", func() bool {
		if p.interval == d {
			return false
		}
		p.interval = d
		return true
	})
}

// Close cancels any pending tick and, if playing, pauses. The player stays
// usable.
func (p *Player) Close() {
	p.transition("close", func() bool {
		p.drv.cancel()
		if !p.playing {
			return false
		}
		p.playing = false
		return true
	})
}

func (p *Player) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewLocked()
}

func (p *Player) Status() Status     { return p.View().Status() }
func (p *Player) Controls() Controls { return p.View().Controls() }

// Sequence returns the loaded sequence. Callers must not modify it.
func (p *Player) Sequence() step.Sequence {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq
}

func (p *Player) tick(epoch uint64) {
	p.transition("tick", func() bool {
		if !p.drv.fired(epoch) || !p.playing {
			return false
		}
		if p.index+1 >= len(p.seq) {
			p.index = len(p.seq) - 1
			p.playing = false
			p.finished = true
			return true
		}
		p.index++
		p.drv.arm(p.interval, p.tick)
		return true
	})
}

// transition applies fn under the lock and, when fn reports a change,
// queues the resulting view for the listeners.
func (p *Player) transition(name string, fn func() bool) {
	p.mu.Lock()
	if !fn() {
		p.mu.Unlock()
		return
	}
	v := p.viewLocked()
	armed := p.drv.armed()
	p.queue = append(p.queue, v)
	drain := !p.draining
	p.draining = true
	p.mu.Unlock()

	p.logger.Debug("playback transition",
		slog.String("op", name),
		slog.String("run_id", v.RunID),
		slog.Int("index", v.Index),
		slog.Int("len", v.Len),
		slog.String("status", v.Status().String()),
		slog.Bool("armed", armed),
	)
	if drain {
		p.drain()
	}
}

// drain delivers queued views until the queue is empty. Transitions made
// by listeners, or on other goroutines meanwhile, are picked up by the
// same loop.
func (p *Player) drain() {
	for {
		p.mu.Lock()
		if len(p.queue) == 0 {
			p.draining = false
			p.mu.Unlock()
			return
		}
		v := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		for _, fn := range p.listeners {
			fn(v)
		}
	}
}

func (p *Player) viewLocked() View {
	v := View{
		RunID:    p.runID,
		Index:    p.index,
		Len:      len(p.seq),
		Playing:  p.playing,
		Finished: p.finished,
		Interval: p.interval,
	}
	if len(p.seq) > 0 {
		v.Step = p.seq[p.index].Clone()
	}
	return v
}
