package algorithms

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// MergeSort records a top-down merge sort. The working array is kept whole
// so every snapshot shows the full array, with merged values written back at
// their absolute positions.
func MergeSort(values []int) step.Sequence {
	ms := &mergeSorter{
		work: append([]int(nil), values...),
		rec:  step.NewRecorder(4 * (len(values) + 1) * 4),
	}

	ms.rec.Record(step.ActionStart, step.SortSnapshot{Values: ms.work},
		"Starting merge sort: the array is divided recursively, then merged back in order")

	ms.sort(0, len(ms.work))

	ms.rec.Record(step.ActionDone, step.SortSnapshot{Values: ms.work, Sorted: allIndices(len(ms.work))},
		"Merge sort completed")

	return ms.rec.Steps()
}

type mergeSorter struct {
	work []int
	rec  *step.Recorder
}

// sort orders work[start:end].
func (ms *mergeSorter) sort(start, end int) {
	n := end - start
	if n <= 1 {
		return
	}

	mid := n / 2
	left := ms.region(start, mid)
	right := ms.region(start+mid, n-mid)

	ms.rec.Record(step.ActionSplit, step.SortSnapshot{
		Values:    ms.work,
		Splitting: &step.Partition{Left: left, Right: right},
	}, "Splitting %s into %s and %s", list(ms.work[start:end]), list(left.Values), list(right.Values))

	ms.sort(start, start+mid)
	ms.sort(start+mid, end)
	ms.merge(start, mid, end)
}

func (ms *mergeSorter) merge(start, mid, end int) {
	left := ms.region(start, mid)
	right := ms.region(start+mid, end-start-mid)
	lv, rv := left.Values, right.Values

	ms.rec.Record(step.ActionMerge, step.SortSnapshot{
		Values:  ms.work,
		Merging: &step.Partition{Left: left, Right: right},
	}, "Merging %s and %s", list(lv), list(rv))

	i, j, k := 0, 0, 0
	for i < len(lv) && j < len(rv) {
		ms.rec.Record(step.ActionCompare, step.SortSnapshot{
			Values:    ms.work,
			Comparing: &step.Pair{start + k, start + len(lv) + j},
		}, "Comparing %d and %d", lv[i], rv[j])

		if lv[i] <= rv[j] {
			ms.work[start+k] = lv[i]
			i++
		} else {
			ms.work[start+k] = rv[j]
			j++
		}
		ms.place(start+k, "Placing %d into the merged run", ms.work[start+k])
		k++
	}

	for ; i < len(lv); i, k = i+1, k+1 {
		ms.work[start+k] = lv[i]
		ms.place(start+k, "Placing remaining %d from the left run", lv[i])
	}
	for ; j < len(rv); j, k = j+1, k+1 {
		ms.work[start+k] = rv[j]
		ms.place(start+k, "Placing remaining %d from the right run", rv[j])
	}
}

func (ms *mergeSorter) place(pos int, format string, args ...any) {
	ms.rec.Record(step.ActionPlace, step.SortSnapshot{Values: ms.work, Sorted: []int{pos}}, format, args...)
}

// region copies work[start:start+n] together with its absolute indices.
func (ms *mergeSorter) region(start, n int) step.Range {
	return step.Range{
		Indices: span(start, n),
		Values:  append([]int(nil), ms.work[start:start+n]...),
	}
}

func list(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
