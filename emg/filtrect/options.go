package filtrect

import "github.com/cwbudde/algo-emg/dsp/core"

const (
	// DefaultLowCutoff is the lower -3 dB edge of the band-pass in Hz.
	DefaultLowCutoff = 1.0
	// DefaultHighCutoff is the upper -3 dB edge of the band-pass in Hz.
	DefaultHighCutoff = 499.0
	// DefaultLineNoise is the mains frequency removed by the notch in Hz.
	DefaultLineNoise = 50.0
	// DefaultLineNoiseQ is the quality factor of the mains notch.
	DefaultLineNoiseQ = 5.0
	// DefaultOrder is the Butterworth order of each band edge.
	DefaultOrder = 4
)

// Config holds the parameters of Filter.
type Config struct {
	core.ProcessorConfig

	Low, High  float64
	Order      int
	Rectify    bool
	LineNoise  float64 // 0 disables the notch
	LineNoiseQ float64
	// NotchBank replaces the comb with one biquad notch per harmonic,
	// which allows line frequencies that do not divide the sample rate.
	NotchBank bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults for surface EMG at 1 kHz.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		Low:             DefaultLowCutoff,
		High:            DefaultHighCutoff,
		Order:           DefaultOrder,
		Rectify:         true,
		LineNoise:       DefaultLineNoise,
		LineNoiseQ:      DefaultLineNoiseQ,
	}
}

// ApplyOptions returns DefaultConfig with opts applied.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(fs float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = fs
	}
}

// WithBand sets the -3 dB edges of the band-pass in Hz.
func WithBand(low, high float64) Option {
	return func(cfg *Config) {
		cfg.Low = low
		cfg.High = high
	}
}

// WithOrder sets the Butterworth order of each band edge.
func WithOrder(order int) Option {
	return func(cfg *Config) {
		cfg.Order = order
	}
}

// WithRectify enables or disables full-wave rectification.
func WithRectify(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Rectify = enabled
	}
}

// WithLineNoise sets the mains frequency to notch out. 0 disables the notch.
func WithLineNoise(freq float64) Option {
	return func(cfg *Config) {
		cfg.LineNoise = freq
	}
}

// WithLineNoiseQ sets the quality factor of the line-noise notch.
func WithLineNoiseQ(q float64) Option {
	return func(cfg *Config) {
		cfg.LineNoiseQ = q
	}
}

// WithNotchBank selects per-harmonic biquad notches instead of the comb.
func WithNotchBank() Option {
	return func(cfg *Config) {
		cfg.NotchBank = true
	}
}
