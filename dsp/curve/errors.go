package curve

import "errors"

var (
	// ErrInvalidIntensity reports an intensity that is zero, negative or not finite.
	ErrInvalidIntensity = errors.New("curve: invalid intensity")
	// ErrUnknownShape reports a shape without an easing function.
	ErrUnknownShape = errors.New("curve: unknown shape")
)
