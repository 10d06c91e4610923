package metrics

import (
	"testing"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/step"
)

func TestCollectBubbleSort(t *testing.T) {
	seq := algorithms.BubbleSort([]int{3, 1, 2})
	got := Collect(seq)

	want := map[string]float64{
		"comparisons": 3,
		"swaps":       2,
		"writes":      4,
		"probes":      0,
		"inversions":  0,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s: expected %v, got %v", name, v, got[name])
		}
	}
}

func TestCollectMergeSortWrites(t *testing.T) {
	values := []int{5, 4, 3, 2, 1}
	seq := algorithms.MergeSort(values)
	got := Collect(seq, NewWrites(), NewSwaps())

	if got["writes"] == 0 {
		t.Fatal("expected merge placements to count as writes")
	}
	if got["swaps"] != 0 {
		t.Errorf("merge sort should not swap, got %v", got["swaps"])
	}
	if int(got["writes"]) != seq.Count(step.ActionPlace) {
		t.Errorf("expected writes %d, got %v", seq.Count(step.ActionPlace), got["writes"])
	}
}

func TestCollectBinarySearch(t *testing.T) {
	seq := algorithms.BinarySearch([]int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, 7)
	got := Collect(seq)

	if got["comparisons"] != 0 {
		t.Errorf("search probes should not count as comparisons, got %v", got["comparisons"])
	}
	if got["probes"] != float64(seq.Count(step.ActionCompare)) {
		t.Errorf("expected %d probes, got %v", seq.Count(step.ActionCompare), got["probes"])
	}
	if got["probes"] < 1 {
		t.Error("expected at least one probe")
	}
}

func TestCollectResets(t *testing.T) {
	c := NewComparisons()
	seq := algorithms.BubbleSort([]int{2, 1})

	Collect(seq, c)
	Collect(seq, c)

	if c.Value() != 1 {
		t.Errorf("expected 1 comparison after re-collecting, got %v", c.Value())
	}
}

func TestUpto(t *testing.T) {
	seq := algorithms.BubbleSort([]int{3, 1, 2})

	if got := Upto(seq, 0); got["comparisons"] != 0 {
		t.Errorf("start step should have no comparisons, got %v", got["comparisons"])
	}
	if got := Upto(seq, 1); got["comparisons"] != 1 {
		t.Errorf("expected 1 comparison at step 1, got %v", got["comparisons"])
	}
	if got := Upto(seq, 1000); got["swaps"] != 2 {
		t.Errorf("expected clamp to full sequence, got %v swaps", got["swaps"])
	}
	if got := Upto(seq, -1); got["inversions"] != 0 {
		t.Errorf("expected empty prefix, got %v", got["inversions"])
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{nil, 0},
		{[]int{1}, 0},
		{[]int{1, 2, 3}, 0},
		{[]int{3, 2, 1}, 3},
		{[]int{2, 2, 1}, 2},
		{[]int{5, 4, 3, 2, 1}, 10},
	}
	for _, tt := range tests {
		if got := Count(tt.in); got != tt.want {
			t.Errorf("Count(%v): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestInversionSeries(t *testing.T) {
	seq := algorithms.BubbleSort([]int{3, 1, 2})
	series := InversionSeries(seq)

	if len(series) != len(seq) {
		t.Fatalf("expected %d points, got %d", len(seq), len(series))
	}
	if series[0] != 2 {
		t.Errorf("expected 2 initial inversions, got %v", series[0])
	}
	if series[len(series)-1] != 0 {
		t.Errorf("expected sorted tail, got %v", series[len(series)-1])
	}
	for i := 1; i < len(series); i++ {
		if series[i] > series[i-1] {
			t.Errorf("bubble sort increased inversions at step %d", i)
		}
	}
}
