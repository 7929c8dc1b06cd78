package curve_test

import (
	"fmt"

	"github.com/cwbudde/algo-rgb/dsp/curve"
)

func ExampleSegment_Evaluate() {
	s, err := curve.New(curve.ShapeRising, 1.5, curve.DefaultIntensity)
	if err != nil {
		panic(err)
	}

	fmt.Printf("end=%.1f %.3f %.3f %.3f\n", s.EndValue(), s.Evaluate(0), s.Evaluate(0.5), s.Evaluate(1))

	// Output:
	// end=1.0 0.000 0.125 1.000
}
