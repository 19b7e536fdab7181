// Package anim drives registered streams on a fixed interval.
//
// An [Animation] is idle until [Animation.Start] (or [Animation.Run]) and
// running afterwards; there is no pause or stop beyond what the host loop
// does. Each tick calls [Animation.DrawFrame], which updates every stream
// in registration order and returns the flat list of changed lines for the
// host to composite.
//
// The terminal dashboard owns its own tick and calls DrawFrame directly;
// [Animation.Run] is the timer loop for headless hosts.
package anim
