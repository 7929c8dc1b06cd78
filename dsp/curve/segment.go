package curve

import (
	"fmt"
	"math"

	"github.com/fogleman/ease"

	"github.com/cwbudde/algo-rgb/dsp/core"
)

// DefaultIntensity gives Rising and Sinking a cubic profile.
const DefaultIntensity = 1.0

// Segment is a single easing curve ending at a fixed channel level.
// It is an immutable value; copies never share state. The zero Segment is
// invalid; build segments with New.
type Segment struct {
	shape     Shape
	endValue  float64
	intensity float64
}

// New creates a segment. endValue is clamped into [0,1]. intensity must be a
// finite value > 0 because Rising and Sinking divide by it.
func New(shape Shape, endValue, intensity float64) (Segment, error) {
	if intensity <= 0 || !core.IsFinite(intensity) {
		return Segment{}, fmt.Errorf("%w: intensity must be > 0: %f", ErrInvalidIntensity, intensity)
	}
	return Segment{
		shape:     shape,
		endValue:  core.Clamp01(endValue),
		intensity: intensity,
	}, nil
}

// Shape returns the easing shape.
func (s Segment) Shape() Shape { return s.shape }

// EndValue returns the clamped level reached at t = 1.
func (s Segment) EndValue() float64 { return s.endValue }

// Intensity returns the exponent divisor used by Rising and Sinking.
func (s Segment) Intensity() float64 { return s.intensity }

// Validate reports ErrInvalidIntensity for segments that did not come from
// New, such as the zero Segment.
func (s Segment) Validate() error {
	if s.intensity <= 0 || !core.IsFinite(s.intensity) {
		return fmt.Errorf("%w: intensity must be > 0: %f", ErrInvalidIntensity, s.intensity)
	}
	return nil
}

// Evaluate returns the eased progress at normalized time t. t is clamped to
// [0,1] first. Unknown shapes and invalid segments yield 0.
func (s Segment) Evaluate(t float64) float64 {
	v, _ := s.eval(t)
	return v
}

// EvaluateStrict is Evaluate but reports unknown shapes as ErrUnknownShape
// and invalid segments as ErrInvalidIntensity.
func (s Segment) EvaluateStrict(t float64) (float64, error) {
	return s.eval(t)
}

func (s Segment) eval(t float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	t = core.Clamp01(t)

	switch s.shape {
	case ShapeRising:
		return math.Pow(t, 3/s.intensity), nil
	case ShapeSinking:
		return 1 - math.Pow(1-t, 3/s.intensity), nil
	case ShapeLinear:
		return t, nil
	case ShapeInOutQuad:
		return ease.InOutQuad(t), nil
	case ShapeInOutCubic:
		return ease.InOutCubic(t), nil
	case ShapeInOutSine:
		return ease.InOutSine(t), nil
	case ShapeOutBounce:
		return ease.OutBounce(t), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownShape, s.shape)
	}
}
