package capture

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// ToneConfig configures the simulated receiver.
type ToneConfig struct {
	// FreqHz is the tone frequency. In direct mode it is the RF frequency and
	// aliases like a real ADC would; in I/Q mode it is the baseband offset.
	FreqHz    float64
	Amplitude float64
	// Noise is the standard deviation of additive Gaussian noise per value.
	Noise float64
	Seed  int64
	// StaleFirstBlock fills block 0 with a constant level of Amplitude,
	// modelling the stale buffer a receiver returns right after it starts.
	StaleFirstBlock bool
}

// ToneDevice synthesizes a phase-continuous tone with seeded noise.
// It is not safe for concurrent use.
type ToneDevice struct {
	cfg    ToneConfig
	req    Request
	rng    *rand.Rand
	sample int64
	block  int
	closed bool
}

// NewToneOpener returns an [Opener] that creates a [ToneDevice] per capture.
func NewToneOpener(cfg ToneConfig) Opener {
	return func(ctx context.Context, req Request) (Device, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cfg.Amplitude < 0 || cfg.Noise < 0 {
			return nil, fmt.Errorf("%w: amplitude and noise must be >= 0", ErrInvalidRequest)
		}
		return &ToneDevice{
			cfg: cfg,
			req: req,
			rng: rand.New(rand.NewSource(cfg.Seed)),
		}, nil
	}
}

// ReadBlock implements [Device].
func (d *ToneDevice) ReadBlock(ctx context.Context, dst []float64) error {
	if d.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	ch := d.req.Channels()
	if len(dst) != d.req.NSamples*ch {
		return fmt.Errorf("capture: block buffer has %d values, want %d", len(dst), d.req.NSamples*ch)
	}

	stale := d.cfg.StaleFirstBlock && d.block == 0
	step := 2 * math.Pi * d.cfg.FreqHz / d.req.SampleRate
	for i := range d.req.NSamples {
		phase := step * float64(d.sample+int64(i))
		if ch == 1 {
			v := d.cfg.Amplitude * math.Cos(phase)
			if stale {
				v = d.cfg.Amplitude
			}
			dst[i] = v + d.noise()
			continue
		}
		re, im := d.cfg.Amplitude*math.Cos(phase), d.cfg.Amplitude*math.Sin(phase)
		if stale {
			re, im = d.cfg.Amplitude, 0
		}
		dst[2*i] = re + d.noise()
		dst[2*i+1] = im + d.noise()
	}

	d.sample += int64(d.req.NSamples)
	d.block++
	return nil
}

// Close implements [Device]. Closing twice is an error.
func (d *ToneDevice) Close() error {
	if d.closed {
		return ErrClosed
	}
	d.closed = true
	return nil
}

func (d *ToneDevice) noise() float64 {
	if d.cfg.Noise == 0 {
		return 0
	}
	return d.rng.NormFloat64() * d.cfg.Noise
}
