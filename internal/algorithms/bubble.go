package algorithms

import "github.com/san-kum/algoviz/internal/step"

// BubbleSort runs a plain bubble sort over a copy of values and records a
// step for every comparison, swap and completed pass. There is no early exit:
// exactly n-1 passes are made.
func BubbleSort(values []int) step.Sequence {
	work := append([]int(nil), values...)
	n := len(work)
	rec := step.NewRecorder(2 + n*n*2)

	rec.Record(step.ActionStart, step.SortSnapshot{Values: work},
		"Starting bubble sort: adjacent elements are compared and swapped when out of order")

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			a, b := work[j], work[j+1]
			pair := step.Pair{j, j + 1}

			if a <= b {
				rec.Record(step.ActionCompare, step.SortSnapshot{Values: work, Comparing: &pair},
					"Comparing positions %d and %d: %d <= %d, already in order", j, j+1, a, b)
				continue
			}

			rec.Record(step.ActionCompare, step.SortSnapshot{Values: work, Comparing: &pair},
				"Comparing positions %d and %d: %d and %d", j, j+1, a, b)
			rec.Record(step.ActionDecide, step.SortSnapshot{Values: work, Swapping: &pair},
				"%d > %d, these two must swap", a, b)

			work[j], work[j+1] = b, a

			rec.Record(step.ActionSwap, step.SortSnapshot{Values: work, Swapping: &pair},
				"Moved %d past %d", a, b)
			rec.Record(step.ActionConfirm, step.SortSnapshot{Values: work},
				"%d and %d have traded places", b, a)
		}

		final := make([]int, i+1)
		for k := range final {
			final[k] = n - 1 - k
		}
		rec.Record(step.ActionPass, step.SortSnapshot{Values: work, Sorted: final},
			"Pass %d completed: %d is in its final position", i+1, work[n-1-i])
	}

	rec.Record(step.ActionDone, step.SortSnapshot{Values: work, Sorted: allIndices(n)},
		"Bubble sort completed: every element is in ascending order")

	return rec.Steps()
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func span(start, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = start + i
	}
	return idx
}
