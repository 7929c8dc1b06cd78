// Package timeline evaluates a three-channel color signal built from
// per-channel sequences of easing segments.
//
// Each channel owns a [Track]: an ordered list of (duration, segment)
// entries. Evaluating a track at time t walks the entries, carrying the end
// value of every fully elapsed entry forward as the baseline, and blends from
// that baseline towards the end value of the active entry:
//
//	out = baseline + seg(local) * (end - baseline)
//
// A time exactly at the end of an entry still belongs to that entry. A time
// past the last entry, or any time on an empty track, evaluates to 0 rather
// than to the last end value. [ModeStrict] reports these cases as
// [ErrOutOfRange] instead.
//
// Sequences are assembled with a [Builder] and are immutable once built, so
// a [Sequence] can be evaluated from any number of goroutines.
package timeline
