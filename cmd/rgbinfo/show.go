package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rgb/dsp/curve"
	"github.com/cwbudde/algo-rgb/dsp/timeline"
)

// Show is the YAML description of a color sequence.
type Show struct {
	FPS      float64       `yaml:"fps,omitempty"`
	Strict   bool          `yaml:"strict,omitempty"`
	Segments []SegmentSpec `yaml:"segments"`
}

// SegmentSpec describes one AddSegment call.
type SegmentSpec struct {
	Shape     string   `yaml:"shape"`
	Duration  float64  `yaml:"duration"`
	End       float64  `yaml:"end"`
	Channels  string   `yaml:"channels,omitempty"`
	Intensity *float64 `yaml:"intensity,omitempty"`
}

// demoShow fades red in, pulses green and lets blue sink away.
var demoShow = Show{
	FPS: 10,
	Segments: []SegmentSpec{
		{Shape: "rising", Duration: 2, End: 1, Channels: "r"},
		{Shape: "linear", Duration: 1, End: 0.5, Channels: "gb"},
		{Shape: "sinking", Duration: 1, End: 1, Channels: "g"},
		{Shape: "in-out-sine", Duration: 1, End: 0, Channels: "g"},
		{Shape: "sinking", Duration: 2, End: 0, Channels: "b"},
	},
}

func loadShow(path string) (Show, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Show{}, fmt.Errorf("read show: %w", err)
	}
	return parseShow(data)
}

func parseShow(data []byte) (Show, error) {
	var show Show
	if err := yaml.Unmarshal(data, &show); err != nil {
		return Show{}, fmt.Errorf("parse show: %w", err)
	}
	if len(show.Segments) == 0 {
		return Show{}, fmt.Errorf("show has no segments")
	}
	return show, nil
}

// Build turns the show into an evaluable sequence.
func (s Show) Build(strict bool) (*timeline.Sequence, error) {
	b := timeline.NewBuilder()
	for i, spec := range s.Segments {
		shape, err := curve.ParseShape(spec.Shape)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}

		mask := spec.Channels
		if mask == "" {
			mask = timeline.MaskAll
		}

		var opts []timeline.SegmentOption
		if spec.Intensity != nil {
			opts = append(opts, timeline.WithIntensity(*spec.Intensity))
		}

		if err := b.AddSegment(shape, spec.Duration, spec.End, mask, opts...); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}

	mode := timeline.ModeLenient
	if strict || s.Strict {
		mode = timeline.ModeStrict
	}
	return b.Build(timeline.WithMode(mode)), nil
}
