package metrics

import "github.com/san-kum/algoviz/internal/step"

// Metric accumulates a value over the steps of one sequence.
type Metric interface {
	Name() string
	Observe(s step.Step)
	Value() float64
	Reset()
}

// Default returns a fresh set of the standard metrics.
func Default() []Metric {
	return []Metric{
		NewComparisons(),
		NewSwaps(),
		NewWrites(),
		NewProbes(),
		NewInversions(),
	}
}

// Collect feeds every step of seq to ms and returns their final values by
// name. Metrics are reset first.
func Collect(seq step.Sequence, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range seq {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Upto is Collect over the prefix of seq ending at index i.
func Upto(seq step.Sequence, i int, ms ...Metric) map[string]float64 {
	if i < 0 || len(seq) == 0 {
		return Collect(nil, ms...)
	}
	return Collect(seq[:min(i+1, len(seq))], ms...)
}
