package timeline

import (
	"fmt"

	"github.com/cwbudde/algo-rgb/dsp/core"
	"github.com/cwbudde/algo-rgb/dsp/curve"
)

// SegmentOption configures a segment added through a Builder.
type SegmentOption func(*segmentConfig)

type segmentConfig struct {
	intensity float64
}

// WithIntensity sets the segment intensity. The default is curve.DefaultIntensity.
func WithIntensity(v float64) SegmentOption {
	return func(c *segmentConfig) {
		c.intensity = v
	}
}

// Builder appends segments to per-channel tracks. A Builder is not safe for
// concurrent use.
type Builder struct {
	entries [3][]Entry
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddSegment appends one entry to every channel named in mask. Each channel
// receives its own copy of the segment value. Nothing is appended when validation fails.
func (b *Builder) AddSegment(shape curve.Shape, duration, endValue float64, mask string, opts ...SegmentOption) error {
	cfg := segmentConfig{intensity: curve.DefaultIntensity}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if duration <= 0 || !core.IsFinite(duration) {
		return fmt.Errorf("%w: duration must be > 0: %f", ErrInvalidDuration, duration)
	}

	seg, err := curve.New(shape, endValue, cfg.intensity)
	if err != nil {
		return err
	}

	m := ParseMask(mask)
	for _, c := range Channels {
		if m.Has(c) {
			b.entries[c] = append(b.entries[c], Entry{Duration: duration, Segment: seg})
		}
	}
	return nil
}

// Len returns the number of entries on channel c.
func (b *Builder) Len(c Channel) int {
	if c < Red || c > Blue {
		return 0
	}
	return len(b.entries[c])
}

// Build snapshots the current tracks into a Sequence. Later AddSegment calls
// do not affect sequences already built.
func (b *Builder) Build(opts ...Option) *Sequence {
	return NewSequence(
		NewTrack(b.entries[Red]...),
		NewTrack(b.entries[Green]...),
		NewTrack(b.entries[Blue]...),
		opts...,
	)
}
