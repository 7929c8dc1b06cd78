package timeline

import (
	"fmt"

	"github.com/cwbudde/algo-rgb/dsp/core"
	"github.com/cwbudde/algo-rgb/dsp/rgb"
	"github.com/cwbudde/algo-rgb/dsp/signal"
)

// Option configures a Sequence.
type Option func(*config)

type config struct {
	mode Mode
}

// WithMode sets the evaluation mode.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithStrict is shorthand for WithMode(ModeStrict).
func WithStrict() Option {
	return WithMode(ModeStrict)
}

func applyOptions(opts []Option) config {
	cfg := config{mode: ModeLenient}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Sequence is an immutable three-channel color signal.
type Sequence struct {
	tracks [3]Track
	mode   Mode
}

// NewSequence creates a sequence from one track per channel.
func NewSequence(red, green, blue Track, opts ...Option) *Sequence {
	cfg := applyOptions(opts)
	return &Sequence{
		tracks: [3]Track{NewTrack(red.entries...), NewTrack(green.entries...), NewTrack(blue.entries...)},
		mode:   cfg.mode,
	}
}

// Track returns the track of channel c. Unknown channels yield an empty track.
func (s *Sequence) Track(c Channel) Track {
	if c < Red || c > Blue {
		return Track{}
	}
	return s.tracks[c]
}

// Mode returns the evaluation mode.
func (s *Sequence) Mode() Mode { return s.mode }

// Duration returns the length of the longest track.
func (s *Sequence) Duration() float64 {
	longest := 0.0
	for _, t := range s.tracks {
		if d := t.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

// EvaluateAt evaluates every channel at time.
func (s *Sequence) EvaluateAt(time float64) (rgb.Sample, error) {
	var v [3]float64
	for _, c := range Channels {
		x, err := s.tracks[c].Evaluate(time, s.mode)
		if err != nil {
			return rgb.Sample{}, fmt.Errorf("%s: %w", c, err)
		}
		v[c] = x
	}
	return rgb.Sample{R: v[Red], G: v[Green], B: v[Blue]}, nil
}

// SampleSequence evaluates the sequence at each time, preserving order.
func (s *Sequence) SampleSequence(times []float64) ([]rgb.Sample, error) {
	out := make([]rgb.Sample, len(times))
	for i, t := range times {
		v, err := s.EvaluateAt(t)
		if err != nil {
			return nil, fmt.Errorf("sample %d at %f: %w", i, t, err)
		}
		out[i] = v
	}
	return out, nil
}

// Span returns the time range Frames covers. Lenient sequences span their
// longest track, since finished channels evaluate to 0. Strict sequences span
// their shortest track, the last time at which every channel is defined.
func (s *Sequence) Span() float64 {
	if s.mode != ModeStrict {
		return s.Duration()
	}
	shortest := s.tracks[Red].Duration()
	for _, t := range s.tracks[Green:] {
		if d := t.Duration(); d < shortest {
			shortest = d
		}
	}
	return shortest
}

// Frames samples the sequence on a frame grid covering [Start, Span] and
// returns the frame times alongside the samples.
func (s *Sequence) Frames(opts ...core.SamplingOption) ([]float64, []rgb.Sample, error) {
	grid := signal.NewGrid(opts...)
	start := grid.Config().Start
	span := s.Span()
	if start > span {
		return nil, nil, fmt.Errorf("%w: start %f beyond span %f", ErrOutOfRange, start, span)
	}

	times, err := grid.Times(span - start)
	if err != nil {
		return nil, nil, err
	}
	// rounding in start + i/fps may overshoot the span
	for i := len(times) - 1; i >= 0 && times[i] > span; i-- {
		times[i] = span
	}

	samples, err := s.SampleSequence(times)
	if err != nil {
		return nil, nil, err
	}
	return times, samples, nil
}
