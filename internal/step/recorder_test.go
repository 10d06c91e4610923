package step

import (
	"reflect"
	"testing"
)

func TestRecorderCopiesSnapshot(t *testing.T) {
	work := []int{3, 1, 2}
	pair := Pair{0, 1}
	rec := NewRecorder(4)

	rec.Record(ActionCompare, SortSnapshot{Values: work, Comparing: &pair}, "compare %d", 1)
	work[0] = 99
	pair[0] = 7

	st := rec.Steps()[0]
	snap := st.Data.(SortSnapshot)
	if !reflect.DeepEqual(snap.Values, []int{3, 1, 2}) {
		t.Errorf("expected recorded values to be copied, got %v", snap.Values)
	}
	if snap.Comparing[0] != 0 {
		t.Errorf("expected recorded pair to be copied, got %v", *snap.Comparing)
	}
	if st.Description != "compare 1" {
		t.Errorf("unexpected description %q", st.Description)
	}
}

func TestRecorderAssignsIDs(t *testing.T) {
	rec := NewRecorder(0)
	for i := 0; i < 5; i++ {
		rec.Record(ActionPointers, SearchSnapshot{Values: []int{1}, Mid: Int(i)}, "probe")
	}
	for i, st := range rec.Steps() {
		if st.ID != i {
			t.Errorf("expected id %d, got %d", i, st.ID)
		}
	}
	if rec.Len() != 5 {
		t.Errorf("expected 5 steps, got %d", rec.Len())
	}
}

func TestSearchSnapshotClone(t *testing.T) {
	orig := SearchSnapshot{Values: []int{1, 2}, Target: 2, Left: Int(0), Right: Int(1), Mid: Int(0), Found: Bool(false)}
	st := Step{Data: orig}.Clone()

	c := st.Data.(SearchSnapshot)
	*c.Left = 5
	*c.Found = true
	c.Values[0] = 9

	if *orig.Left != 0 || *orig.Found || orig.Values[0] != 1 {
		t.Errorf("clone shares storage with original: %+v", orig)
	}
}

func TestPartitionClone(t *testing.T) {
	p := &Partition{
		Left:  Range{Indices: []int{0}, Values: []int{5}},
		Right: Range{Indices: []int{1}, Values: []int{4}},
	}
	snap := SortSnapshot{Values: []int{5, 4}, Splitting: p}.clone().(SortSnapshot)
	snap.Splitting.Left.Values[0] = 0

	if p.Left.Values[0] != 5 {
		t.Error("partition values were shared")
	}
	if !snap.Splitting.Has(1) || snap.Splitting.Has(2) {
		t.Error("unexpected partition membership")
	}
}

func TestSearchInRange(t *testing.T) {
	s := SearchSnapshot{Values: []int{1, 2, 3, 4}, Left: Int(1), Right: Int(2)}
	for i, want := range []bool{false, true, true, false} {
		if got := s.InRange(i); got != want {
			t.Errorf("index %d: expected %v, got %v", i, want, got)
		}
	}
	if !(SearchSnapshot{}).InRange(10) {
		t.Error("without pointers every index should be in range")
	}
}

func TestSequenceCount(t *testing.T) {
	seq := Sequence{
		{ID: 0, Action: ActionStart},
		{ID: 1, Action: ActionCompare},
		{ID: 2, Action: ActionCompare},
		{ID: 3, Action: ActionDone},
	}
	if seq.Count(ActionCompare) != 2 {
		t.Errorf("expected 2 comparisons, got %d", seq.Count(ActionCompare))
	}
	if seq.Last().Action != ActionDone {
		t.Errorf("expected done last, got %s", seq.Last().Action)
	}
}
