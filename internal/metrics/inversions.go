package metrics

import "github.com/san-kum/algoviz/internal/step"

// Inversions reports the inversion count of the most recently observed
// sorting array. It reaches zero exactly when the array is sorted.
type Inversions struct {
	name  string
	value int
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions"}
}

func (m *Inversions) Name() string { return m.name }

func (m *Inversions) Observe(s step.Step) {
	if !isSort(s) {
		return
	}
	m.value = Count(s.Data.Array())
}

func (m *Inversions) Value() float64 { return float64(m.value) }

func (m *Inversions) Reset() { m.value = 0 }

// Count returns the number of index pairs i < j with a[i] > a[j].
func Count(a []int) int {
	n := 0
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			if a[i] > a[j] {
				n++
			}
		}
	}
	return n
}

// InversionSeries returns the inversion count of each step's array. Search
// steps yield the count of their (sorted) array, which is zero.
func InversionSeries(seq step.Sequence) []float64 {
	out := make([]float64, len(seq))
	for i, s := range seq {
		if s.Data != nil {
			out[i] = float64(Count(s.Data.Array()))
		}
	}
	return out
}
