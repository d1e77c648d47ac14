// Package viz renders the heart animation in a terminal.
//
// The animation alternates between exactly two fixed frames, a small
// and a large heart, rasterized once at startup onto a Braille
// [Canvas]. On a real terminal the loop is a Bubble Tea program; when
// stdout is redirected it degrades to a plain loop that separates
// frames with newlines instead of clearing the screen.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	T     - Cycle color themes
//	W     - Toggle the pulse waveform strip
//	Q     - Quit
package viz
