// Command rgbinfo samples a segment-based RGB color sequence and prints the
// resulting colors.
//
// Usage:
//
//	rgbinfo [flags]
//
// Without -f it samples a built-in demo sequence.
//
// Examples:
//
//	rgbinfo
//	rgbinfo -f show.yaml -fps 60
//	rgbinfo -f show.yaml -swatch
//	rgbinfo -f show.yaml -spectrum
//	rgbinfo -list
//
// A show file lists segments in the order they are added:
//
//	fps: 30
//	segments:
//	  - {shape: rising, duration: 2, end: 1, channels: rg, intensity: 1.5}
//	  - {shape: linear, duration: 1, end: 0}
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-rgb/dsp/core"
	"github.com/cwbudde/algo-rgb/dsp/curve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rgbinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("f", "", "YAML show file (default: built-in demo)")
	fps := fs.Float64("fps", 0, "frames per second (overrides the show file)")
	strict := fs.Bool("strict", false, "report out-of-range times and unknown shapes as errors; frames stop at the shortest channel")
	swatch := fs.Bool("swatch", false, "append a colored terminal swatch to every row")
	analyze := fs.Bool("spectrum", false, "print flicker and color-jump analysis instead of frames")
	list := fs.Bool("list", false, "list available shape names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rgbinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Samples a segment-based RGB color sequence.\n")
		fmt.Fprintf(stderr, "Without -f, samples a built-in demo sequence.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  rgbinfo -f show.yaml -fps 60\n")
		fmt.Fprintf(stderr, "  rgbinfo -f show.yaml -swatch\n")
		fmt.Fprintf(stderr, "  rgbinfo -spectrum\n")
		fmt.Fprintf(stderr, "  rgbinfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	show := demoShow
	if *file != "" {
		var err error
		show, err = loadShow(*file)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	seq, err := show.Build(*strict)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	rate := show.FPS
	if *fps > 0 {
		rate = *fps
	}
	if rate <= 0 {
		rate = core.DefaultSamplingConfig().FrameRate
		fmt.Fprintf(stderr, "warning: no frame rate given, using %.0f fps\n", rate)
	}

	if seq.Span() < seq.Duration() {
		fmt.Fprintf(stderr, "warning: strict mode stops at %.3f, before the longest channel ends at %.3f\n",
			seq.Span(), seq.Duration())
	}

	times, samples, err := seq.Frames(core.WithFrameRate(rate))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *analyze {
		err = printAnalysis(stdout, samples, rate)
	} else {
		err = printFrames(stdout, times, samples, *swatch)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printList(w io.Writer) {
	for _, s := range curve.Shapes() {
		fmt.Fprintln(w, s)
	}
}
