package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rgb/internal/testutil"
)

func TestAnalyzeFindsFlicker(t *testing.T) {
	series := testutil.Flicker(2, 64, 0.25, 64)

	res, err := Analyze(series, 64)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.FFTSize != 64 {
		t.Fatalf("FFTSize = %d, want 64", res.FFTSize)
	}
	if len(res.Magnitudes) != 33 {
		t.Fatalf("len(Magnitudes) = %d, want 33", len(res.Magnitudes))
	}
	if res.BinHz != 1 {
		t.Fatalf("BinHz = %v, want 1", res.BinHz)
	}

	hz, mag := res.Dominant()
	if hz != 2 {
		t.Fatalf("dominant = %v Hz, want 2", hz)
	}
	testutil.RequireNearlyEqual(t, "dominant magnitude", mag, 0.25, 1e-9)
}

func TestAnalyzePadsToPowerOfTwo(t *testing.T) {
	res, err := Analyze(testutil.Flicker(3, 30, 0.1, 50), 30)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.FFTSize != 64 {
		t.Fatalf("FFTSize = %d, want 64", res.FFTSize)
	}
	testutil.RequireNearlyEqual(t, "BinHz", res.BinHz, 30.0/64, 1e-15)

	hz, _ := res.Dominant()
	if math.Abs(hz-3) > res.BinHz {
		t.Fatalf("dominant = %v Hz, want 3 within one bin", hz)
	}
}

func TestAnalyzeConstantLevel(t *testing.T) {
	res, err := Analyze(testutil.Level(0.3, 32), 30)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	_, mag := res.Dominant()
	if mag > 1e-12 {
		t.Fatalf("dominant magnitude = %v, want ~0", mag)
	}
}

func TestAnalyzeSingleFrame(t *testing.T) {
	res, err := Analyze([]float64{0.7}, 30)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.FFTSize != 2 {
		t.Fatalf("FFTSize = %d, want 2", res.FFTSize)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(nil, 30); err == nil {
		t.Fatal("expected error for empty series")
	}
	for _, fps := range []float64{0, -1, math.NaN()} {
		if _, err := Analyze([]float64{0, 1}, fps); err == nil {
			t.Fatalf("expected error for frame rate %v", fps)
		}
	}
}

func TestDominantEmpty(t *testing.T) {
	hz, mag := Result{}.Dominant()
	if hz != 0 || mag != 0 {
		t.Fatalf("Dominant() = %v, %v, want 0, 0", hz, mag)
	}
}
