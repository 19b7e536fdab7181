// Package viz is the terminal host for stream animations.
//
// [Model] is a Bubble Tea program that owns the tick timer: on every tick
// it asks the [anim.Animation] for a frame and redraws each axes with
// asciigraph, next to a stats panel of the visible windows.
//
// # Key Bindings
//
//	Space - Pause/Resume drawing
//	T     - Cycle color themes
//	?     - Toggle full help
//	Q     - Quit
//
// A frame error stops the program and is returned from [Run].
package viz
