package timeline

import (
	"errors"

	"github.com/cwbudde/algo-rgb/dsp/curve"
)

var (
	// ErrInvalidDuration reports an entry whose duration is not a finite value > 0.
	ErrInvalidDuration = errors.New("timeline: invalid duration")
	// ErrOutOfRange reports a time with no active entry in strict mode.
	ErrOutOfRange = errors.New("timeline: time out of range")

	// ErrInvalidIntensity is curve.ErrInvalidIntensity.
	ErrInvalidIntensity = curve.ErrInvalidIntensity
	// ErrUnknownShape is curve.ErrUnknownShape.
	ErrUnknownShape = curve.ErrUnknownShape
)
