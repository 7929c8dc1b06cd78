package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-rgb/dsp/rgb"
	"github.com/cwbudde/algo-rgb/dsp/spectrum"
)

func swatchFor(b rgb.Bytes) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(b.Hex())).Render("    ")
}

func printFrames(w io.Writer, times []float64, samples []rgb.Sample, swatch bool) error {
	bytes := make([]rgb.Bytes, len(samples))
	rgb.QuantizeBlock(bytes, samples)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Time\tR\tG\tB\tBytes\tHex\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t-\t-\t-\t-----\t---\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for i, s := range samples {
		row := fmt.Sprintf("%.3f\t%.4f\t%.4f\t%.4f\t%d,%d,%d\t%s",
			times[i], s.R, s.G, s.B, bytes[i].R, bytes[i].G, bytes[i].B, bytes[i].Hex())
		if swatch {
			row += "\t" + swatchFor(bytes[i])
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printAnalysis(w io.Writer, samples []rgb.Sample, fps float64) error {
	r, g, b := rgb.Split(samples)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Channel\tFFT Size\tDominant [Hz]\tDepth\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, ch := range []struct {
		name   string
		series []float64
	}{{"red", r}, {"green", g}, {"blue", b}} {
		res, err := spectrum.Analyze(ch.series, fps)
		if err != nil {
			return fmt.Errorf("%s: %w", ch.name, err)
		}
		hz, mag := res.Dominant()
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\n", ch.name, res.FFTSize, hz, mag); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	idx, d := spectrum.MaxStep(samples)
	if idx < 0 {
		_, err := fmt.Fprintln(w, "largest step: n/a")
		return err
	}
	_, err := fmt.Fprintf(w, "largest step: %.4f (CIEDE2000) at frame %d\n", d, idx)
	return err
}
