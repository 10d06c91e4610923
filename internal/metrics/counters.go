package metrics

import "github.com/san-kum/algoviz/internal/step"

// Comparisons counts compare steps of sorting runs.
type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (c *Comparisons) Name() string { return c.name }

func (c *Comparisons) Observe(s step.Step) {
	if s.Action == step.ActionCompare && isSort(s) {
		c.count++
	}
}

func (c *Comparisons) Value() float64 { return float64(c.count) }

func (c *Comparisons) Reset() { c.count = 0 }

type Swaps struct {
	name  string
	count int
}

func NewSwaps() *Swaps {
	return &Swaps{name: "swaps"}
}

func (s *Swaps) Name() string { return s.name }

func (s *Swaps) Observe(st step.Step) {
	if st.Action == step.ActionSwap {
		s.count++
	}
}

func (s *Swaps) Value() float64 { return float64(s.count) }

func (s *Swaps) Reset() { s.count = 0 }

// Writes counts array element writes: two per swap, one per merge placement.
type Writes struct {
	name  string
	count int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(s step.Step) {
	switch s.Action {
	case step.ActionSwap:
		w.count += 2
	case step.ActionPlace:
		w.count++
	}
}

func (w *Writes) Value() float64 { return float64(w.count) }

func (w *Writes) Reset() { w.count = 0 }

// Probes counts midpoint comparisons of searching runs.
type Probes struct {
	name  string
	count int
}

func NewProbes() *Probes {
	return &Probes{name: "probes"}
}

func (p *Probes) Name() string { return p.name }

func (p *Probes) Observe(s step.Step) {
	if s.Action == step.ActionCompare && !isSort(s) {
		p.count++
	}
}

func (p *Probes) Value() float64 { return float64(p.count) }

func (p *Probes) Reset() { p.count = 0 }

func isSort(s step.Step) bool {
	return s.Data != nil && s.Data.Kind() == step.KindSort
}
