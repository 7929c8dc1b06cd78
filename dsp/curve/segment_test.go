package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-rgb/dsp/core"
)

func mustNew(t *testing.T, shape Shape, endValue, intensity float64) Segment {
	t.Helper()
	s, err := New(shape, endValue, intensity)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestLinearIsIdentity(t *testing.T) {
	s := mustNew(t, ShapeLinear, 1, DefaultIntensity)
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		if got := s.Evaluate(x); got != x {
			t.Fatalf("Evaluate(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestEndpoints(t *testing.T) {
	intensities := []float64{0.25, 0.5, 1, 2, 3, 7.5}
	for _, shape := range Shapes() {
		for _, k := range intensities {
			s := mustNew(t, shape, 1, k)
			if got := s.Evaluate(0); !core.NearlyEqual(got, 0, 1e-12) {
				t.Fatalf("%s k=%v: Evaluate(0) = %v, want 0", shape, k, got)
			}
			if got := s.Evaluate(1); !core.NearlyEqual(got, 1, 1e-12) {
				t.Fatalf("%s k=%v: Evaluate(1) = %v, want 1", shape, k, got)
			}
		}
	}
}

func TestRisingSinkingProfile(t *testing.T) {
	rising := mustNew(t, ShapeRising, 1, 1)
	sinking := mustNew(t, ShapeSinking, 1, 1)

	if got := rising.Evaluate(0.5); got != 0.125 {
		t.Fatalf("rising Evaluate(0.5) = %v, want 0.125", got)
	}
	if got := sinking.Evaluate(0.5); got != 0.875 {
		t.Fatalf("sinking Evaluate(0.5) = %v, want 0.875", got)
	}

	// intensity 3 turns both curves linear
	flat := mustNew(t, ShapeRising, 1, 3)
	if got := flat.Evaluate(0.3); !core.NearlyEqual(got, 0.3, 1e-12) {
		t.Fatalf("rising k=3 Evaluate(0.3) = %v, want 0.3", got)
	}
}

func TestEndValueClamped(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "above", in: 1.5, want: 1},
		{name: "below", in: -0.3, want: 0},
		{name: "inside", in: 0.4, want: 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, ShapeLinear, tt.in, 1)
			if got := s.EndValue(); got != tt.want {
				t.Fatalf("EndValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidIntensity(t *testing.T) {
	for _, k := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := New(ShapeRising, 1, k)
		if !errors.Is(err, ErrInvalidIntensity) {
			t.Fatalf("New(intensity=%v) error = %v, want ErrInvalidIntensity", k, err)
		}
	}
}

func TestUnknownShape(t *testing.T) {
	s := mustNew(t, Shape(42), 0.8, 1)

	if got := s.Evaluate(0.5); got != 0 {
		t.Fatalf("Evaluate() = %v, want 0", got)
	}

	_, err := s.EvaluateStrict(0.5)
	if !errors.Is(err, ErrUnknownShape) {
		t.Fatalf("EvaluateStrict() error = %v, want ErrUnknownShape", err)
	}
}

func TestZeroSegmentIsInvalid(t *testing.T) {
	var s Segment

	if err := s.Validate(); !errors.Is(err, ErrInvalidIntensity) {
		t.Fatalf("Validate() error = %v, want ErrInvalidIntensity", err)
	}
	if got := s.Evaluate(0.5); got != 0 {
		t.Fatalf("Evaluate() = %v, want 0", got)
	}
	if _, err := s.EvaluateStrict(0.5); !errors.Is(err, ErrInvalidIntensity) {
		t.Fatalf("EvaluateStrict() error = %v, want ErrInvalidIntensity", err)
	}
	if err := mustNew(t, ShapeRising, 1, 2).Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestEvaluateClampsTime(t *testing.T) {
	s := mustNew(t, ShapeRising, 1, 2)
	if got := s.Evaluate(-0.5); got != 0 {
		t.Fatalf("Evaluate(-0.5) = %v, want 0", got)
	}
	if got := s.Evaluate(1.5); got != 1 {
		t.Fatalf("Evaluate(1.5) = %v, want 1", got)
	}
	if got := s.Evaluate(math.NaN()); got != 0 {
		t.Fatalf("Evaluate(NaN) = %v, want 0", got)
	}
}

func TestEvaluateStrictKnownShape(t *testing.T) {
	s := mustNew(t, ShapeSinking, 1, 1)
	got, err := s.EvaluateStrict(0.5)
	if err != nil {
		t.Fatalf("EvaluateStrict() error = %v", err)
	}
	if got != s.Evaluate(0.5) {
		t.Fatalf("EvaluateStrict() = %v, want %v", got, s.Evaluate(0.5))
	}
}

func BenchmarkEvaluateRising(b *testing.B) {
	s, err := New(ShapeRising, 1, 1.7)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Evaluate(float64(i%1000) / 1000)
	}
}
