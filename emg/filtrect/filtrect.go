// Package filtrect conditions raw surface EMG: mains interference is
// notched out, the signal is band-limited with a Butterworth band-pass and
// optionally full-wave rectified. Both filters run forwards and backwards
// so the output is aligned with the input.
package filtrect

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-emg/dsp/filter/biquad"
	"github.com/cwbudde/algo-emg/dsp/filter/comb"
	"github.com/cwbudde/algo-emg/dsp/filter/design"
	"github.com/cwbudde/algo-emg/dsp/filter/zerophase"
	"github.com/cwbudde/algo-emg/emg"
)

// stageFilter is satisfied by *biquad.Chain and *comb.Notch.
type stageFilter interface {
	zerophase.Filter
	MagnitudeDB(freqHz, sampleRate float64) float64
}

// stage is a filter with the order used to size its reflection padding.
type stage struct {
	filter stageFilter
	order  int
	name   string
}

// StageResponse is the zero-phase magnitude response of one stage.
type StageResponse struct {
	Name        string
	MagnitudeDB []float64
}

// Response returns, per stage in processing order, the magnitude in dB at
// each of freqs. Values include both filtering directions, so they are
// twice the single-pass response.
func Response(freqs []float64, opts ...Option) ([]StageResponse, error) {
	cfg := ApplyOptions(opts...)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	stages, err := buildStages(cfg)
	if err != nil {
		return nil, err
	}

	out := make([]StageResponse, len(stages))
	for i, s := range stages {
		db := make([]float64, len(freqs))
		for j, f := range freqs {
			db[j] = 2 * s.filter.MagnitudeDB(f, cfg.SampleRate)
		}
		out[i] = StageResponse{Name: s.name, MagnitudeDB: db}
	}
	return out, nil
}

// Filter returns data notched, band-passed and optionally rectified. The
// input is not modified.
func Filter(data []float64, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	stages, err := buildStages(cfg)
	if err != nil {
		return nil, err
	}

	out := data
	for _, s := range stages {
		out, err = zerophase.Apply(s.filter, out, zerophase.PadLength(s.order))
		if err != nil {
			if errors.Is(err, zerophase.ErrSignalTooShort) {
				return nil, fmt.Errorf("%w: %s: %v", emg.ErrInsufficientSamples, s.name, err)
			}
			return nil, fmt.Errorf("filtrect: %s: %w", s.name, err)
		}
	}
	if cfg.Rectify {
		for i, v := range out {
			out[i] = math.Abs(v)
		}
	}
	return out, nil
}

// MinLength returns the shortest signal Filter accepts with opts.
func MinLength(opts ...Option) (int, error) {
	cfg := ApplyOptions(opts...)
	if err := validate(cfg); err != nil {
		return 0, err
	}
	stages, err := buildStages(cfg)
	if err != nil {
		return 0, err
	}
	need := 1
	for _, s := range stages {
		need = max(need, zerophase.PadLength(s.order)+1)
	}
	return need, nil
}

func buildStages(cfg Config) ([]stage, error) {
	var stages []stage

	if cfg.LineNoise > 0 {
		notch, err := lineNoiseStage(cfg)
		if err != nil {
			return nil, err
		}
		stages = append(stages, notch)
	}

	sections, err := design.ButterworthBandpass(cfg.Low, cfg.High, cfg.Order, cfg.SampleRate)
	if err != nil {
		return nil, emg.InvalidParameter("band", [2]float64{cfg.Low, cfg.High}, err.Error())
	}
	bp := biquad.NewChain(sections)
	stages = append(stages, stage{filter: bp, order: bp.Order(), name: "band-pass"})

	return stages, nil
}

func lineNoiseStage(cfg Config) (stage, error) {
	if cfg.NotchBank {
		sections, err := design.NotchHarmonics(cfg.LineNoise, cfg.LineNoiseQ, cfg.SampleRate)
		if err != nil {
			return stage{}, emg.InvalidParameter("line noise", cfg.LineNoise, err.Error())
		}
		bank := biquad.NewChain(sections)
		return stage{filter: bank, order: bank.Order(), name: "notch bank"}, nil
	}

	c, err := comb.DesignNotch(cfg.LineNoise, cfg.LineNoiseQ, cfg.SampleRate)
	if err != nil {
		return stage{}, emg.InvalidParameter("line noise", cfg.LineNoise, err.Error())
	}
	n, err := comb.NewNotch(c)
	if err != nil {
		return stage{}, emg.InvalidParameter("line noise", cfg.LineNoise, err.Error())
	}
	return stage{filter: n, order: n.Order(), name: "comb notch"}, nil
}

func validate(cfg Config) error {
	fs := cfg.SampleRate
	if !(fs > 0) || math.IsInf(fs, 0) {
		return emg.InvalidParameter("sample rate", fs, "must be > 0")
	}
	if cfg.Order < 1 {
		return emg.InvalidParameter("order", cfg.Order, "must be >= 1")
	}
	if !(cfg.Low > 0 && cfg.Low < cfg.High && cfg.High < cfg.Nyquist()) {
		return emg.InvalidParameter("band", [2]float64{cfg.Low, cfg.High},
			fmt.Sprintf("need 0 < low < high < %g", cfg.Nyquist()))
	}
	if cfg.LineNoise < 0 || math.IsNaN(cfg.LineNoise) {
		return emg.InvalidParameter("line noise", cfg.LineNoise, "must be >= 0")
	}
	if cfg.LineNoise > 0 {
		if cfg.LineNoise >= cfg.Nyquist() {
			return emg.InvalidParameter("line noise", cfg.LineNoise, "must be below Nyquist")
		}
		if !(cfg.LineNoiseQ > 0) {
			return emg.InvalidParameter("line noise Q", cfg.LineNoiseQ, "must be > 0")
		}
	}
	return nil
}
