package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-rgb/dsp/core"
)

// frameEpsilon absorbs rounding when duration*fps lands just below an integer.
const frameEpsilon = 1e-9

// MaxFrames bounds the length of a single frame grid.
const MaxFrames = 1 << 24

// ErrTooManyFrames reports a grid longer than MaxFrames.
var ErrTooManyFrames = errors.New("signal: too many frames")

// Grid produces evenly spaced frame times from a shared configuration.
type Grid struct {
	cfg core.SamplingConfig
}

// NewGrid creates a configured frame grid.
func NewGrid(opts ...core.SamplingOption) *Grid {
	return &Grid{cfg: core.ApplySamplingOptions(opts...)}
}

// Config returns the grid sampling configuration.
func (g *Grid) Config() core.SamplingConfig {
	return g.cfg
}

// Times returns frame times Start + i/FrameRate covering [Start, Start+duration].
// The end is inclusive when it falls on a frame.
func (g *Grid) Times(duration float64) ([]float64, error) {
	if duration < 0 || !core.IsFinite(duration) {
		return nil, fmt.Errorf("grid duration must be >= 0: %f", duration)
	}
	if g.cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("grid frame rate must be > 0: %f", g.cfg.FrameRate)
	}

	frames := math.Floor(duration*g.cfg.FrameRate+frameEpsilon) + 1
	if frames > MaxFrames || math.IsInf(frames, 0) {
		return nil, fmt.Errorf("%w: %g frames for duration %f at %f fps", ErrTooManyFrames, frames, duration, g.cfg.FrameRate)
	}

	n := int(frames)
	out := make([]float64, n)
	for i := range out {
		out[i] = g.cfg.Start + float64(i)/g.cfg.FrameRate
	}
	return out, nil
}

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("linspace count must be > 0: %d", n)
	}
	if !core.IsFinite(start) || !core.IsFinite(end) {
		return nil, fmt.Errorf("linspace bounds must be finite: %f, %f", start, end)
	}
	if n == 1 {
		return []float64{start}, nil
	}

	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out, nil
}
