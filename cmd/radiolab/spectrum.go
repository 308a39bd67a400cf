package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"sort"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-radiolab/dsp/alias"
	"github.com/cwbudde/algo-radiolab/dsp/block"
	"github.com/cwbudde/algo-radiolab/dsp/spectrum"
	"github.com/cwbudde/algo-radiolab/internal/config"
	"github.com/cwbudde/algo-radiolab/measure/capture"
)

func runSpectrum(args []string, cfg config.Config, g globals, stdout, stderr io.Writer, logger *log.Logger) error {
	cc, tc, rc := cfg.Capture, cfg.Tone, cfg.Reduce
	top := 5
	flags := pflag.NewFlagSet("spectrum", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Float64Var(&cc.SampleRate, "sample-rate", cc.SampleRate, "sampling frequency in Hz")
	flags.IntVar(&cc.NSamples, "nsamples", cc.NSamples, "samples per block")
	flags.IntVar(&cc.NBlocks, "nblocks", cc.NBlocks, "number of blocks")
	flags.BoolVar(&cc.Direct, "direct", cc.Direct, "direct (real) sampling instead of I/Q")
	flags.Float64Var(&tc.FreqHz, "tone", tc.FreqHz, "simulated tone frequency in Hz")
	flags.Float64Var(&tc.Amplitude, "amplitude", tc.Amplitude, "simulated tone amplitude")
	flags.Float64Var(&tc.Noise, "noise", tc.Noise, "noise standard deviation")
	flags.Int64Var(&tc.Seed, "seed", tc.Seed, "noise seed")
	flags.BoolVar(&tc.StaleFirstBlock, "stale-first-block", tc.StaleFirstBlock, "simulate a stale warm-up block")
	flags.StringVar(&rc.Method, "reduce", rc.Method, "block reduction: mean or median")
	flags.BoolVar(&rc.DropFirst, "drop-first", rc.DropFirst, "discard block 0 before reducing")
	flags.IntVar(&top, "top", top, "number of strongest bins to print")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return errUsage
	}

	cfg.Capture, cfg.Tone, cfg.Reduce = cc, tc, rc
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if top <= 0 {
		return fmt.Errorf("--top must be > 0: %d", top)
	}

	req := capture.Request{
		SampleRate: cc.SampleRate,
		NSamples:   cc.NSamples,
		NBlocks:    cc.NBlocks,
		Direct:     cc.Direct,
	}
	open := capture.NewToneOpener(capture.ToneConfig{
		FreqHz:          tc.FreqHz,
		Amplitude:       tc.Amplitude,
		Noise:           tc.Noise,
		Seed:            tc.Seed,
		StaleFirstBlock: tc.StaleFirstBlock,
	})

	raw, err := capture.Capture(context.Background(), open, req)
	if err != nil {
		return err
	}
	logger.Printf("captured %v at %g Hz", raw.Shape(), req.SampleRate)

	var pow *block.Array[float64]
	if req.Direct {
		pow, err = reducedPower(raw, rc)
		logger.Printf("expected alias of %g Hz: %g Hz", tc.FreqHz, alias.Peak(tc.FreqHz, req.SampleRate))
	} else {
		var iq *block.Array[complex128]
		if iq, err = block.ToComplex(raw); err != nil {
			return err
		}
		pow, err = reducedPower(iq, rc)
	}
	if err != nil {
		return err
	}

	freqs, err := spectrum.BinFrequencies(req.NSamples, req.SampleRate)
	if err != nil {
		return err
	}
	bins := strongestBins(pow.Data(), freqs, req.Direct, top)

	rows := make([][]string, len(bins))
	for i, b := range bins {
		rows[i] = []string{
			fmt.Sprintf("%d", b.index),
			formatFloat(b.freq),
			formatFloat(b.power),
			formatDB(b.power),
		}
	}
	return writeTable(stdout, g.csv, []string{"bin", "freq_hz", "power", "power_db"}, rows)
}

// reducedPower computes per-block power spectra and collapses them across blocks.
func reducedPower[T block.Sample](data *block.Array[T], rc config.ReduceConfig) (*block.Array[float64], error) {
	if rc.DropFirst {
		var err error
		if data, err = block.DropFirst(data); err != nil {
			return nil, err
		}
	}
	pow, err := spectrum.PowerArray(data)
	if err != nil {
		return nil, err
	}
	if rc.Method == config.ReduceMedian {
		return block.Median(pow)
	}
	return block.Mean(pow)
}

type binPower struct {
	index int
	freq  float64
	power float64
}

// strongestBins returns the top bins by power. A real capture has a mirrored
// spectrum, so only bins 0..n/2 are considered for it; the Nyquist bin of an
// even-length transform is reported at +fs/2.
func strongestBins(power, freqs []float64, realInput bool, top int) []binPower {
	bins := make([]binPower, 0, len(power))
	for k, p := range power {
		f := freqs[k]
		if realInput {
			if k > len(power)/2 {
				continue
			}
			f = math.Abs(f)
		}
		bins = append(bins, binPower{index: k, freq: f, power: p})
	}
	sort.SliceStable(bins, func(i, j int) bool { return bins[i].power > bins[j].power })
	if len(bins) > top {
		bins = bins[:top]
	}
	return bins
}

// formatDB renders power in dB. Empty bins print "-inf" rather than a clamped
// floor so they cannot be mistaken for a weak signal.
func formatDB(power float64) string {
	if power <= 0 {
		return "-inf"
	}
	return fmt.Sprintf("%.2f", 10*math.Log10(power))
}
