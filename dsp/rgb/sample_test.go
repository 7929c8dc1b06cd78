package rgb

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestSampleAt(t *testing.T) {
	s := Sample{R: 0.1, G: 0.2, B: 0.3}
	want := s.Channels()
	for i := 0; i < 3; i++ {
		if got := s.At(i); got != want[i] {
			t.Fatalf("At(%d) = %v, want %v", i, got, want[i])
		}
	}
	if got := s.At(3); got != 0 {
		t.Fatalf("At(3) = %v, want 0", got)
	}
}

func TestSplit(t *testing.T) {
	r, g, b := Split([]Sample{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}})
	if len(r) != 2 || r[1] != 4 || g[0] != 2 || b[1] != 6 {
		t.Fatalf("Split() = %v %v %v", r, g, b)
	}
}

func TestColorfulBridge(t *testing.T) {
	c := colorful.Color{R: 0.25, G: 0.5, B: 1}
	s := FromColorful(c)
	if s.Colorful() != c {
		t.Fatalf("Colorful() = %v, want %v", s.Colorful(), c)
	}
	if s.Colorful().Hex() != "#4080ff" {
		t.Fatalf("Hex() = %q, want #4080ff", s.Colorful().Hex())
	}
}
