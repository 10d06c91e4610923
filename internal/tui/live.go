package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

const (
	barWidth    = 40
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var markGlyphs = map[step.Mark]string{
	step.MarkOutside: "·",
	step.MarkSplit:   "/",
	step.MarkMerge:   "+",
	step.MarkSorted:  "✓",
	step.MarkCompare: "?",
	step.MarkSwap:    "↔",
	step.MarkMid:     "◆",
	step.MarkFound:   "★",
}

// LiveRenderer prints each displayed step of a Player as a plain-text
// frame. Register OnChange as a player listener.
type LiveRenderer struct {
	mu      sync.Mutex
	w       io.Writer
	name    string
	clear   bool
	last    int
	lastRun string
	done    chan struct{}
	once    sync.Once
}

type Option func(*LiveRenderer)

// WithClear redraws each frame in place instead of appending.
func WithClear() Option {
	return func(r *LiveRenderer) { r.clear = true }
}

func NewLiveRenderer(w io.Writer, name string, opts ...Option) *LiveRenderer {
	r := &LiveRenderer{
		w:    w,
		name: name,
		last: -1,
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnChange renders v when it shows a step not printed yet, and closes Done
// once playback finishes.
func (r *LiveRenderer) OnChange(v playback.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.Len > 0 && (v.Index != r.last || v.RunID != r.lastRun) {
		r.last = v.Index
		r.lastRun = v.RunID
		if r.clear {
			fmt.Fprint(r.w, clearScreen)
		}
		fmt.Fprint(r.w, Frame(r.name, v))
	}
	if v.Finished {
		r.once.Do(func() { close(r.done) })
	}
}

// Done is closed when the player reports Finished.
func (r *LiveRenderer) Done() <-chan struct{} { return r.done }

func (r *LiveRenderer) Start() {
	if r.clear {
		fmt.Fprint(r.w, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.clear {
		fmt.Fprint(r.w, showCursor)
	}
}

// Frame renders one view as text: a header, one bar per element, and the
// step description.
func Frame(name string, v playback.View) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  %s  %s  %s (%dms)\n", name, v.Status(), v.Speed(), v.Interval.Milliseconds())
	if v.Len == 0 {
		b.WriteString("  Ready to start\n")
		return b.String()
	}
	fmt.Fprintf(&b, "  Step %d of %d  [%s]\n", v.Index+1, v.Len, v.Step.Action)
	b.WriteString("  " + strings.Repeat("-", barWidth+16) + "\n")

	snap := v.Step.Data
	if snap == nil {
		fmt.Fprintf(&b, "  (no snapshot)\n  %s\n\n", v.Step.Description)
		return b.String()
	}
	values := snap.Array()
	maxVal := 1
	for _, x := range values {
		if x > maxVal {
			maxVal = x
		}
	}
	search, isSearch := snap.(step.SearchSnapshot)

	for i, x := range values {
		n := 0
		if x > 0 {
			n = max(1, x*barWidth/maxVal)
		}
		fill := "█"
		mark := step.MarkOf(snap, i)
		if mark == step.MarkOutside {
			fill = "░"
		}
		label := markGlyphs[mark]
		if isSearch {
			if p := search.PointerLabel(i); p != "" {
				label = strings.TrimSpace(label + " " + p)
			}
		}
		fmt.Fprintf(&b, "  %2d │%-*s %4d %s\n", i, barWidth, strings.Repeat(fill, n), x, label)
	}

	b.WriteString("  " + strings.Repeat("-", barWidth+16) + "\n")
	if isSearch {
		fmt.Fprintf(&b, "  target %d\n", search.Target)
	}
	fmt.Fprintf(&b, "  %s\n\n", v.Step.Description)
	return b.String()
}
