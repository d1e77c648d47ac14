// Package heart holds the math behind the animation: the parametric
// heart curve, the pulse [Oscillator] that drives scale and hue over
// time, and the HSV color helpers shared by both renderers.
//
//   - [Outline]: samples the classic cardioid-style heart curve
//   - [Oscillator]: fixed-step pulse phase, wrapping within one cycle
//   - [Color] / [Glow]: fill and glow colors for a given hue
package heart
