// Package spectrum analyzes sampled color signals for flicker and abrupt
// color jumps.
//
// [Analyze] computes the one-sided magnitude spectrum of a single channel
// series. Magnitudes are normalized by the window's coherent gain so a
// sinusoidal modulation of depth d shows up as a peak of height d.
// [Steps] measures perceptual CIEDE2000 distances between consecutive
// samples.
package spectrum
