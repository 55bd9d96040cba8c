package core

// DefaultSampleRate is the sampling rate most surface EMG amplifiers
// deliver, in Hz.
const DefaultSampleRate = 1000

// ProcessorConfig defines common processing settings.
type ProcessorConfig struct {
	SampleRate float64
}

// DefaultProcessorConfig returns the defaults used for offline EMG work.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
	}
}

// Nyquist returns half the configured sample rate.
func (c ProcessorConfig) Nyquist() float64 {
	return c.SampleRate / 2
}
