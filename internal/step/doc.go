// Package step defines the replay unit shared by every algorithm generator.
//
// A [Step] pairs a human-readable description with a [Snapshot] of the
// algorithm state at that instant. Snapshots are a closed set of variants:
//
//   - [SortSnapshot]: array plus comparing/swapping pairs, sorted indices and
//     split/merge ranges
//   - [SearchSnapshot]: array plus target, left/right/mid pointers and the
//     found flag
//
// Generators never build Steps directly; they hand snapshots to a [Recorder],
// which assigns ids and deep-copies every slice so that no two steps share
// array storage.
package step
