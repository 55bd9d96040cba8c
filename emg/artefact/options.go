package artefact

import "github.com/cwbudde/algo-emg/emg/outlier"

const (
	// DefaultCombCoefficient weights the delayed sample of the comb.
	DefaultCombCoefficient = 1.0
	// DefaultHalfWidth is the suppression radius around each anchor.
	DefaultHalfWidth = 3
	// DefaultPeakDistance is the minimum spacing between suppressed peaks.
	DefaultPeakDistance = 10
)

// Config holds the tunable parameters of Remove.
type Config struct {
	CombCoefficient float64
	HalfWidth       int
	PeakDistance    int
	OutlierOptions  []outlier.Option
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default artefact removal parameters.
func DefaultConfig() Config {
	return Config{
		CombCoefficient: DefaultCombCoefficient,
		HalfWidth:       DefaultHalfWidth,
		PeakDistance:    DefaultPeakDistance,
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

// WithCombCoefficient sets b in y[i] = x[i] - b*x[i-L].
func WithCombCoefficient(b float64) Option {
	return func(cfg *Config) {
		cfg.CombCoefficient = b
	}
}

// WithHalfWidth sets the suppression radius: samples in
// [anchor-w, anchor+w) are zeroed.
func WithHalfWidth(w int) Option {
	return func(cfg *Config) {
		cfg.HalfWidth = w
	}
}

// WithPeakDistance sets the minimum spacing of primary suppression peaks.
func WithPeakDistance(d int) Option {
	return func(cfg *Config) {
		cfg.PeakDistance = d
	}
}

// WithOutlierOptions configures the secondary Nalimov pass.
func WithOutlierOptions(opts ...outlier.Option) Option {
	return func(cfg *Config) {
		cfg.OutlierOptions = append(cfg.OutlierOptions, opts...)
	}
}
