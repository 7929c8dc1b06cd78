// Package rgb holds evaluated color samples and converts them to display
// bytes.
//
// Channel values are flat floats nominally in [0,1]. [Quantize] truncates
// them to 0..255 the way frame buffers expect, clamping anything out of
// range first. No color-space management happens here beyond the bridge to
// go-colorful in [Sample.Colorful].
package rgb
