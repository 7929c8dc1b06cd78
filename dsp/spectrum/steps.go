package spectrum

import (
	"github.com/cwbudde/algo-rgb/dsp/rgb"
)

// Steps returns the CIEDE2000 distance between each sample and its
// predecessor. Samples are clamped to the displayable range first. The
// result has len(samples)-1 entries.
func Steps(samples []rgb.Sample) []float64 {
	if len(samples) < 2 {
		return nil
	}
	out := make([]float64, len(samples)-1)
	prev := samples[0].Colorful().Clamped()
	for i := 1; i < len(samples); i++ {
		cur := samples[i].Colorful().Clamped()
		out[i-1] = prev.DistanceCIEDE2000(cur)
		prev = cur
	}
	return out
}

// MaxStep returns the largest perceptual jump and the index of the sample
// that lands after it. It returns -1, 0 for fewer than two samples.
func MaxStep(samples []rgb.Sample) (index int, distance float64) {
	index = -1
	for i, d := range Steps(samples) {
		if index < 0 || d > distance {
			index = i + 1
			distance = d
		}
	}
	return index, distance
}
