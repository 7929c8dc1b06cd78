package rgb

import (
	"fmt"
	"image/color"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const byteScale = 255

// Bytes is a display-ready color triple.
type Bytes struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (b Bytes) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", b.R, b.G, b.B)
}

// String returns the color in CSS functional notation, e.g. "rgb(255, 127, 0)".
func (b Bytes) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", b.R, b.G, b.B)
}

// RGBA returns the color as an opaque image/color value.
func (b Bytes) RGBA() color.RGBA {
	return color.RGBA{R: b.R, G: b.G, B: b.B, A: 0xff}
}

// Quantize converts a sample to bytes by truncation: floor(v*255).
// Out-of-range values saturate at 0 and 255 and NaN becomes 0.
func Quantize(s Sample) Bytes {
	return Bytes{
		R: toByte(s.R * byteScale),
		G: toByte(s.G * byteScale),
		B: toByte(s.B * byteScale),
	}
}

// QuantizeBlock quantizes src into dst. dst must be at least as long as src.
func QuantizeBlock(dst []Bytes, src []Sample) {
	n := len(src)
	if n == 0 {
		return
	}
	if len(dst) < n {
		panic(fmt.Sprintf("rgb: QuantizeBlock dst too short: %d < %d", len(dst), n))
	}

	r, g, b := Split(src)
	for _, plane := range [][]float64{r, g, b} {
		vecmath.ScaleBlock(plane, plane, byteScale)
	}

	for i := 0; i < n; i++ {
		dst[i] = Bytes{R: toByte(r[i]), G: toByte(g[i]), B: toByte(b[i])}
	}
}

// toByte truncates a value already scaled to the byte range.
func toByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= byteScale {
		return byteScale
	}
	return uint8(v)
}
