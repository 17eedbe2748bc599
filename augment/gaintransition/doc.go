// Package gaintransition fades the volume from one randomly drawn gain to
// another over a randomly drawn time span.
//
// The transition is linear in dB, so it sounds like a natural fade. The
// transition window is placed at a random position and may overhang either
// end of the clip; the portions outside the clip are simply cut off, so the
// output can start or end in the middle of a fade. Before the window the
// first gain holds constant, after it the second gain holds.
package gaintransition
