package step

// Kind identifies the snapshot family of a step.
type Kind string

const (
	KindSort   Kind = "sort"
	KindSearch Kind = "search"
)

// Action names the event a step records.
type Action string

const (
	ActionStart     Action = "start"
	ActionCompare   Action = "compare"
	ActionDecide    Action = "decide"
	ActionSwap      Action = "swap"
	ActionConfirm   Action = "confirm"
	ActionPass      Action = "pass"
	ActionSplit     Action = "split"
	ActionMerge     Action = "merge"
	ActionPlace     Action = "place"
	ActionPointers  Action = "pointers"
	ActionMoveLeft  Action = "move-left"
	ActionMoveRight Action = "move-right"
	ActionFound     Action = "found"
	ActionNotFound  Action = "not-found"
	ActionDone      Action = "done"
)

// Snapshot is the algorithm-specific payload of a step. The set of
// implementations is closed; consumers switch on the concrete type.
type Snapshot interface {
	Kind() Kind
	Array() []int
	clone() Snapshot
}

// Pair is an ordered pair of array indices.
type Pair [2]int

// Has reports whether i is one of the pair's indices.
func (p *Pair) Has(i int) bool {
	return p != nil && (p[0] == i || p[1] == i)
}

// Range names a contiguous region of the array by absolute indices and the
// values it held when the step was recorded.
type Range struct {
	Indices []int `json:"indices"`
	Values  []int `json:"values"`
}

func (r Range) Has(i int) bool {
	for _, idx := range r.Indices {
		if idx == i {
			return true
		}
	}
	return false
}

// Partition is a left/right pair of ranges used by split and merge steps.
type Partition struct {
	Left  Range `json:"left"`
	Right Range `json:"right"`
}

func (p *Partition) Has(i int) bool {
	return p != nil && (p.Left.Has(i) || p.Right.Has(i))
}

type SortSnapshot struct {
	Values    []int      `json:"array"`
	Comparing *Pair      `json:"comparing,omitempty"`
	Swapping  *Pair      `json:"swapping,omitempty"`
	Sorted    []int      `json:"sorted,omitempty"`
	Splitting *Partition `json:"splitting,omitempty"`
	Merging   *Partition `json:"merging,omitempty"`
}

func (s SortSnapshot) Kind() Kind   { return KindSort }
func (s SortSnapshot) Array() []int { return s.Values }

// IsSorted reports whether index i is in the snapshot's finalized set.
func (s SortSnapshot) IsSorted(i int) bool {
	for _, idx := range s.Sorted {
		if idx == i {
			return true
		}
	}
	return false
}

func (s SortSnapshot) clone() Snapshot {
	c := SortSnapshot{
		Values: cloneInts(s.Values),
		Sorted: cloneInts(s.Sorted),
	}
	if s.Comparing != nil {
		p := *s.Comparing
		c.Comparing = &p
	}
	if s.Swapping != nil {
		p := *s.Swapping
		c.Swapping = &p
	}
	c.Splitting = clonePartition(s.Splitting)
	c.Merging = clonePartition(s.Merging)
	return c
}

type SearchSnapshot struct {
	Values []int `json:"array"`
	Target int   `json:"target"`
	Left   *int  `json:"left,omitempty"`
	Right  *int  `json:"right,omitempty"`
	Mid    *int  `json:"mid,omitempty"`
	Found  *bool `json:"found,omitempty"`
}

func (s SearchSnapshot) Kind() Kind   { return KindSearch }
func (s SearchSnapshot) Array() []int { return s.Values }

// InRange reports whether i lies inside the current [left, right] window.
// Without pointers every index is in range.
func (s SearchSnapshot) InRange(i int) bool {
	if s.Left == nil || s.Right == nil {
		return true
	}
	return i >= *s.Left && i <= *s.Right
}

func (s SearchSnapshot) clone() Snapshot {
	return SearchSnapshot{
		Values: cloneInts(s.Values),
		Target: s.Target,
		Left:   cloneIntPtr(s.Left),
		Right:  cloneIntPtr(s.Right),
		Mid:    cloneIntPtr(s.Mid),
		Found:  cloneBoolPtr(s.Found),
	}
}

// Step is one immutable frame of a replay.
type Step struct {
	ID          int      `json:"id"`
	Action      Action   `json:"action"`
	Description string   `json:"description"`
	Data        Snapshot `json:"data"`
}

// Sequence is the ordered output of one generation pass.
type Sequence []Step

// Last returns the terminal step. It panics on an empty sequence, which
// generators never produce.
func (s Sequence) Last() Step {
	return s[len(s)-1]
}

// Count returns how many steps carry the given action.
func (s Sequence) Count(a Action) int {
	n := 0
	for _, st := range s {
		if st.Action == a {
			n++
		}
	}
	return n
}

// Int and Bool return pointers for the optional snapshot fields.
func Int(v int) *int    { return &v }
func Bool(v bool) *bool { return &v }

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	c := make([]int, len(s))
	copy(c, s)
	return c
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	return Int(*p)
}

func cloneBoolPtr(p *bool) *bool {
	if p == nil {
		return nil
	}
	return Bool(*p)
}

func clonePartition(p *Partition) *Partition {
	if p == nil {
		return nil
	}
	return &Partition{
		Left:  Range{Indices: cloneInts(p.Left.Indices), Values: cloneInts(p.Left.Values)},
		Right: Range{Indices: cloneInts(p.Right.Indices), Values: cloneInts(p.Right.Values)},
	}
}
