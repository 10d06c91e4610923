package algorithms

import "github.com/san-kum/algoviz/internal/step"

// BinarySearch records a classic binary search for target. values must be
// sorted ascending; this is not checked, and unsorted input yields a
// well-formed but meaningless sequence.
func BinarySearch(values []int, target int) step.Sequence {
	arr := append([]int(nil), values...)
	rec := step.NewRecorder(4*bitLen(len(arr)) + 2)

	rec.Record(step.ActionStart, step.SearchSnapshot{Values: arr, Target: target},
		"Starting binary search for %d in %s", target, list(arr))

	left, right := 0, len(arr)-1
	for left <= right {
		mid := (left + right) / 2
		snap := step.SearchSnapshot{
			Values: arr,
			Target: target,
			Left:   step.Int(left),
			Right:  step.Int(right),
			Mid:    step.Int(mid),
		}

		rec.Record(step.ActionPointers, snap,
			"Setting pointers: left=%d, right=%d, mid=%d", left, right, mid)
		rec.Record(step.ActionCompare, snap,
			"Comparing target %d with middle element %d at index %d", target, arr[mid], mid)

		switch {
		case arr[mid] == target:
			snap.Found = step.Bool(true)
			rec.Record(step.ActionFound, snap, "Found %d at index %d", target, mid)
			return rec.Steps()
		case arr[mid] < target:
			rec.Record(step.ActionMoveRight, snap,
				"%d < %d, the target is in the right half: left moves to %d", arr[mid], target, mid+1)
			left = mid + 1
		default:
			rec.Record(step.ActionMoveLeft, snap,
				"%d > %d, the target is in the left half: right moves to %d", arr[mid], target, mid-1)
			right = mid - 1
		}
	}

	rec.Record(step.ActionNotFound, step.SearchSnapshot{Values: arr, Target: target, Found: step.Bool(false)},
		"%d is not in the array: left passed right, nothing left to search", target)

	return rec.Steps()
}

func bitLen(n int) int {
	b := 1
	for n > 0 {
		n >>= 1
		b++
	}
	return b
}
