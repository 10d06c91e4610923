package step

import "testing"

func TestMarkOfSort(t *testing.T) {
	s := SortSnapshot{
		Values:    []int{5, 4, 3, 2, 1, 0},
		Comparing: &Pair{0, 1},
		Swapping:  &Pair{1, 2},
		Sorted:    []int{5},
		Merging:   &Partition{Left: Range{Indices: []int{3}}, Right: Range{Indices: []int{4}}},
	}
	want := []Mark{MarkCompare, MarkSwap, MarkSwap, MarkMerge, MarkMerge, MarkSorted}
	for i, w := range want {
		if got := MarkOf(s, i); got != w {
			t.Errorf("index %d: expected %s, got %s", i, w, got)
		}
	}
}

func TestMarkOfSearch(t *testing.T) {
	s := SearchSnapshot{
		Values: []int{1, 3, 5, 7, 9},
		Left:   Int(1),
		Right:  Int(3),
		Mid:    Int(2),
	}
	want := []Mark{MarkOutside, MarkNone, MarkMid, MarkNone, MarkOutside}
	for i, w := range want {
		if got := MarkOf(s, i); got != w {
			t.Errorf("index %d: expected %s, got %s", i, w, got)
		}
	}

	s.Found = Bool(true)
	if got := MarkOf(s, 2); got != MarkFound {
		t.Errorf("expected found mark, got %s", got)
	}

	none := SearchSnapshot{Values: []int{1, 2}, Found: Bool(false)}
	if got := MarkOf(none, 0); got != MarkNone {
		t.Errorf("pointerless snapshot should not dim, got %s", got)
	}
}

func TestPointerLabel(t *testing.T) {
	s := SearchSnapshot{Left: Int(0), Right: Int(1), Mid: Int(0)}
	if got := s.PointerLabel(0); got != "LM" {
		t.Errorf("expected LM, got %q", got)
	}
	if got := s.PointerLabel(1); got != "R" {
		t.Errorf("expected R, got %q", got)
	}
	if got := s.PointerLabel(2); got != "" {
		t.Errorf("expected empty label, got %q", got)
	}
}
