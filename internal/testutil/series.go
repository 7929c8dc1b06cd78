package testutil

import "math"

// Flicker generates a channel level oscillating around 0.5 with the given
// depth at freqHz, sampled at frameRate frames per second.
func Flicker(freqHz, frameRate, depth float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / frameRate
	for i := range out {
		out[i] = 0.5 + depth*math.Sin(step*float64(i))
	}
	return out
}

// Level generates a constant channel level.
func Level(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
