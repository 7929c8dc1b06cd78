package core

// SamplingConfig defines how a color signal is sampled into frames.
type SamplingConfig struct {
	// FrameRate is the number of frames per unit of signal time.
	FrameRate float64
	// Start is the time of the first frame.
	Start float64
}

// SamplingOption mutates a SamplingConfig.
type SamplingOption func(*SamplingConfig)

// DefaultSamplingConfig returns defaults suited to previewing animations.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		FrameRate: 30,
		Start:     0,
	}
}

// WithFrameRate sets the sampling frame rate.
func WithFrameRate(fps float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if fps > 0 && IsFinite(fps) {
			cfg.FrameRate = fps
		}
	}
}

// WithStart sets the time of the first frame.
func WithStart(start float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if IsFinite(start) {
			cfg.Start = start
		}
	}
}

// ApplySamplingOptions applies zero or more options to the default config.
func ApplySamplingOptions(opts ...SamplingOption) SamplingConfig {
	cfg := DefaultSamplingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
