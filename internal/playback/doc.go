// Package playback replays a step sequence under manual or timed control.
//
// A [Player] owns the playback state (sequence, current index, playing and
// finished flags, tick interval) and exposes the controller surface:
// Play, Pause, Step, Reset and SetSpeed. While playing, a driver keeps
// exactly one one-shot timer armed; every transition that leaves the playing
// state cancels it before returning, and each timer carries the epoch it was
// armed in so a tick that already fired but lost the race for the lock is
// discarded instead of advancing a reset or replaced sequence.
//
// # States
//
//	Idle     - no sequence loaded
//	Paused   - sequence loaded, not playing, not finished
//	Playing  - timer armed
//	Finished - a tick ran past the last step
//
// Renderers read a [View] (via [Player.View] or an OnChange listener) and
// must treat it as read-only.
package playback
