// Package viz is the interactive terminal front end.
//
// [App] is a Bubble Tea model with three screens:
//
//   - menu: the algorithm catalog, including entries marked coming soon
//   - input: an editor for the array (and target, for searches)
//   - visualize: the current step as colored bars, the step description,
//     the control bar and a metrics panel
//
// The App owns a playback.Player. Player transitions wake the program
// through a one-slot channel; the App then re-reads the player's View, so
// bursts of ticks collapse into a single redraw.
//
// # Key Bindings
//
//	Space - Play/Pause
//	N / → - Step
//	R     - Reset
//	1 2 3 - Slow, normal, fast
//	G     - Random input
//	E     - Edit input
//	T     - Cycle color themes
//	Esc   - Back to the menu
package viz
