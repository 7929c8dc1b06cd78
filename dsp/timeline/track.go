package timeline

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rgb/dsp/core"
	"github.com/cwbudde/algo-rgb/dsp/curve"
)

// Mode selects how evaluation treats the cases the lenient model maps to 0.
type Mode int

const (
	// ModeLenient returns 0 for past-end times and unknown shapes.
	ModeLenient Mode = iota
	// ModeStrict reports ErrOutOfRange and ErrUnknownShape instead.
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeLenient:
		return "lenient"
	case ModeStrict:
		return "strict"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Entry is one leg of a track.
type Entry struct {
	Duration float64
	Segment  curve.Segment
}

// Track is an immutable ordered list of entries for one channel.
// The zero Track is empty.
type Track struct {
	entries []Entry
}

// NewTrack copies entries into a track. Durations and segments are not
// validated here; an invalid entry is reported when it becomes active.
func NewTrack(entries ...Entry) Track {
	if len(entries) == 0 {
		return Track{}
	}
	return Track{entries: append([]Entry(nil), entries...)}
}

// Len returns the number of entries.
func (t Track) Len() int { return len(t.entries) }

// Entry returns entry i.
func (t Track) Entry(i int) Entry { return t.entries[i] }

// Entries returns a copy of the entries.
func (t Track) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Duration returns the sum of all entry durations.
func (t Track) Duration() float64 {
	total := 0.0
	for _, e := range t.entries {
		total += e.Duration
	}
	return total
}

// Evaluate returns the channel level at time.
func (t Track) Evaluate(time float64, mode Mode) (float64, error) {
	if mode == ModeStrict && (time < 0 || math.IsNaN(time)) {
		return 0, fmt.Errorf("%w: %f", ErrOutOfRange, time)
	}

	remaining := time
	baseline := 0.0
	for i, e := range t.entries {
		if remaining > e.Duration {
			baseline = e.Segment.EndValue()
			remaining -= e.Duration
			continue
		}

		if e.Duration <= 0 || !core.IsFinite(e.Duration) {
			return 0, fmt.Errorf("%w: entry %d duration must be > 0: %f", ErrInvalidDuration, i, e.Duration)
		}

		if err := e.Segment.Validate(); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}

		local := remaining / e.Duration
		var progress float64
		if mode == ModeStrict {
			v, err := e.Segment.EvaluateStrict(local)
			if err != nil {
				return 0, fmt.Errorf("entry %d: %w", i, err)
			}
			progress = v
		} else {
			progress = e.Segment.Evaluate(local)
		}

		return baseline + progress*(e.Segment.EndValue()-baseline), nil
	}

	if mode == ModeStrict {
		return 0, fmt.Errorf("%w: %f beyond track duration %f", ErrOutOfRange, time, t.Duration())
	}
	return 0, nil
}
