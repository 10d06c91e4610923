package step

// Mark is the highlight role of one array element in a snapshot. Higher
// marks win when an element belongs to several sets.
type Mark int

const (
	MarkNone Mark = iota
	MarkOutside
	MarkSplit
	MarkMerge
	MarkSorted
	MarkCompare
	MarkSwap
	MarkMid
	MarkFound
)

func (m Mark) String() string {
	switch m {
	case MarkOutside:
		return "outside"
	case MarkSplit:
		return "split"
	case MarkMerge:
		return "merge"
	case MarkSorted:
		return "sorted"
	case MarkCompare:
		return "compare"
	case MarkSwap:
		return "swap"
	case MarkMid:
		return "mid"
	case MarkFound:
		return "found"
	}
	return "none"
}

// MarkOf classifies element i of snap.
func MarkOf(snap Snapshot, i int) Mark {
	switch s := snap.(type) {
	case SortSnapshot:
		switch {
		case s.Swapping.Has(i):
			return MarkSwap
		case s.Comparing.Has(i):
			return MarkCompare
		case s.IsSorted(i):
			return MarkSorted
		case s.Merging.Has(i):
			return MarkMerge
		case s.Splitting.Has(i):
			return MarkSplit
		}
	case SearchSnapshot:
		onMid := s.Mid != nil && *s.Mid == i
		switch {
		case onMid && s.Found != nil && *s.Found:
			return MarkFound
		case onMid:
			return MarkMid
		case !s.InRange(i):
			return MarkOutside
		}
	}
	return MarkNone
}

// PointerLabel returns the pointer names sitting on index i, e.g. "L", "M"
// or "LM" when left and mid coincide.
func (s SearchSnapshot) PointerLabel(i int) string {
	label := ""
	if s.Left != nil && *s.Left == i {
		label += "L"
	}
	if s.Mid != nil && *s.Mid == i {
		label += "M"
	}
	if s.Right != nil && *s.Right == i {
		label += "R"
	}
	return label
}
