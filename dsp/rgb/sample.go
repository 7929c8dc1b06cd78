package rgb

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sample is one evaluated color, one float per channel.
type Sample struct {
	R, G, B float64
}

// At returns channel i (0 red, 1 green, 2 blue). Other indices return 0.
func (s Sample) At(i int) float64 {
	switch i {
	case 0:
		return s.R
	case 1:
		return s.G
	case 2:
		return s.B
	default:
		return 0
	}
}

// Channels returns the sample as an array in red, green, blue order.
func (s Sample) Channels() [3]float64 {
	return [3]float64{s.R, s.G, s.B}
}

// Colorful converts the sample to a go-colorful color without clamping.
func (s Sample) Colorful() colorful.Color {
	return colorful.Color{R: s.R, G: s.G, B: s.B}
}

// FromColorful converts a go-colorful color to a sample.
func FromColorful(c colorful.Color) Sample {
	return Sample{R: c.R, G: c.G, B: c.B}
}

// Split returns the per-channel series of samples, in order.
func Split(samples []Sample) (r, g, b []float64) {
	r = make([]float64, len(samples))
	g = make([]float64, len(samples))
	b = make([]float64, len(samples))
	for i, s := range samples {
		r[i] = s.R
		g[i] = s.G
		b[i] = s.B
	}
	return r, g, b
}
