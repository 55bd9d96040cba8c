// Command filtinfo prints the magnitude response of the EMG conditioning
// filters: the line-noise notch and the Butterworth band-pass, as applied
// forwards and backwards.
//
// Usage:
//
//	filtinfo [flags] [frequency-hz ...]
//
// Without arguments it prints a default set of frequencies.
//
// Examples:
//
//	filtinfo
//	filtinfo -line 60 -bank 55 60 65 120
//	filtinfo -fs 2000 -low 20 -high 450 10 20 450 900
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-emg/emg/filtrect"
)

var defaultFreqs = []float64{0.5, 1, 5, 25, 45, 50, 55, 75, 100, 150, 250, 450, 499}

func main() {
	fs := flag.Float64("fs", filtrect.DefaultConfig().SampleRate, "sample rate in Hz")
	low := flag.Float64("low", filtrect.DefaultLowCutoff, "band-pass low edge in Hz")
	high := flag.Float64("high", filtrect.DefaultHighCutoff, "band-pass high edge in Hz")
	order := flag.Int("order", filtrect.DefaultOrder, "Butterworth order per band edge")
	line := flag.Float64("line", filtrect.DefaultLineNoise, "line-noise frequency in Hz (0 disables)")
	q := flag.Float64("q", filtrect.DefaultLineNoiseQ, "line-noise notch quality factor")
	bank := flag.Bool("bank", false, "use per-harmonic biquad notches instead of the comb")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filtinfo [flags] [frequency-hz ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the zero-phase magnitude response of the EMG conditioning filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filtinfo\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -line 60 -bank 55 60 65 120\n")
	}
	flag.Parse()

	freqs, err := parseFreqs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	opts := []filtrect.Option{
		filtrect.WithSampleRate(*fs),
		filtrect.WithBand(*low, *high),
		filtrect.WithOrder(*order),
		filtrect.WithLineNoise(*line),
		filtrect.WithLineNoiseQ(*q),
	}
	if *bank {
		opts = append(opts, filtrect.WithNotchBank())
	}

	stages, err := filtrect.Response(freqs, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	minLen, err := filtrect.MinLength(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printResponse(freqs, stages)
	fmt.Printf("\nminimum signal length: %d samples\n", minLen)
}

func parseFreqs(args []string) ([]float64, error) {
	if len(args) == 0 {
		return defaultFreqs, nil
	}
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q: %w", a, err)
		}
		out[i] = f
	}
	return out, nil
}

func printResponse(freqs []float64, stages []filtrect.StageResponse) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "Freq [Hz]\t")
	for _, s := range stages {
		fmt.Fprintf(tw, "%s [dB]\t", s.Name)
	}
	fmt.Fprintf(tw, "total [dB]\t\n")

	for i, f := range freqs {
		fmt.Fprintf(tw, "%.2f\t", f)
		total := 0.0
		for _, s := range stages {
			fmt.Fprintf(tw, "%.2f\t", s.MagnitudeDB[i])
			total += s.MagnitudeDB[i]
		}
		fmt.Fprintf(tw, "%.2f\t\n", total)
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
