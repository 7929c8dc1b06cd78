package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rgb/dsp/core"
	"github.com/cwbudde/algo-rgb/dsp/window"
)

var errEmptySeries = errors.New("spectrum series must not be empty")

// Result is a one-sided magnitude spectrum.
type Result struct {
	// Magnitudes holds bins 0..N/2 of the padded transform.
	Magnitudes []float64
	// BinHz is the frequency spacing between bins.
	BinHz float64
	// FFTSize is the padded transform length.
	FFTSize int
}

// Analyze returns the magnitude spectrum of a channel series sampled at
// frameRate frames per second. The mean is removed and a periodic Hann window
// applied before zero-padding to a power of two.
func Analyze(series []float64, frameRate float64) (Result, error) {
	if len(series) == 0 {
		return Result{}, errEmptySeries
	}
	if frameRate <= 0 || !core.IsFinite(frameRate) {
		return Result{}, fmt.Errorf("spectrum frame rate must be > 0: %f", frameRate)
	}

	n := len(series)
	buf := make([]float64, n)
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)
	for i, v := range series {
		buf[i] = v - mean
	}

	gain := window.Apply(window.TypeHann, buf, window.WithPeriodic()) * float64(n)

	size := nextPow2(n)
	in := make([]complex128, size)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum fft plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spectrum fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	if gain > 0 {
		vecmath.ScaleBlock(mag, mag, 2/gain)
	}

	return Result{
		Magnitudes: mag,
		BinHz:      frameRate / float64(size),
		FFTSize:    size,
	}, nil
}

// Dominant returns the frequency and magnitude of the strongest non-DC bin.
// A flat spectrum yields 0, 0.
func (r Result) Dominant() (hz, magnitude float64) {
	best := -1
	for k := 1; k < len(r.Magnitudes); k++ {
		if r.Magnitudes[k] > magnitude {
			best = k
			magnitude = r.Magnitudes[k]
		}
	}
	if best < 0 {
		return 0, 0
	}
	return float64(best) * r.BinHz, magnitude
}

func nextPow2(n int) int {
	size := 2
	for size < n {
		size <<= 1
	}
	return size
}
