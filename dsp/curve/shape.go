package curve

import (
	"fmt"
	"strings"
)

// Shape identifies an easing function.
type Shape int

const (
	// ShapeRising eases in: t^(3/intensity).
	ShapeRising Shape = iota
	// ShapeSinking eases out: 1-(1-t)^(3/intensity).
	ShapeSinking
	// ShapeLinear is the identity.
	ShapeLinear
	// ShapeInOutQuad is a quadratic ease-in-out.
	ShapeInOutQuad
	// ShapeInOutCubic is a cubic ease-in-out.
	ShapeInOutCubic
	// ShapeInOutSine is a sinusoidal ease-in-out.
	ShapeInOutSine
	// ShapeOutBounce overshoots into a decaying bounce at the end.
	ShapeOutBounce
)

var shapeNames = map[Shape]string{
	ShapeRising:     "rising",
	ShapeSinking:    "sinking",
	ShapeLinear:     "linear",
	ShapeInOutQuad:  "in-out-quad",
	ShapeInOutCubic: "in-out-cubic",
	ShapeInOutSine:  "in-out-sine",
	ShapeOutBounce:  "out-bounce",
}

// Shapes returns all known shapes in declaration order.
func Shapes() []Shape {
	return []Shape{
		ShapeRising,
		ShapeSinking,
		ShapeLinear,
		ShapeInOutQuad,
		ShapeInOutCubic,
		ShapeInOutSine,
		ShapeOutBounce,
	}
}

// Valid reports whether s has an easing function.
func (s Shape) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape resolves a shape name case-insensitively.
func ParseShape(name string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range shapeNames {
		if n == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}
