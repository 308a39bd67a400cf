// Package capture defines the contract between sample-block consumers and an
// SDR front end, and ships a deterministic simulated receiver.
//
// A capture records nblocks buffers of nsamples each. Direct sampling yields
// real samples with shape (nblocks, nsamples); I/Q sampling yields interleaved
// pairs with shape (nblocks, nsamples, 2), which [block.ToComplex] turns into
// complex samples.
package capture

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-radiolab/dsp/block"
)

var (
	// ErrInvalidRequest is returned for non-positive capture parameters.
	ErrInvalidRequest = errors.New("capture: invalid request")
	// ErrClosed is returned when reading from a closed device.
	ErrClosed = errors.New("capture: device closed")
)

// Request describes one capture.
type Request struct {
	SampleRate float64
	NSamples   int
	NBlocks    int
	// Direct selects direct (real) sampling instead of I/Q.
	Direct bool
}

// Validate checks that all counts and the sample rate are positive.
func (r Request) Validate() error {
	if !(r.SampleRate > 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %g", ErrInvalidRequest, r.SampleRate)
	}
	if r.NSamples <= 0 {
		return fmt.Errorf("%w: nsamples must be > 0: %d", ErrInvalidRequest, r.NSamples)
	}
	if r.NBlocks <= 0 {
		return fmt.Errorf("%w: nblocks must be > 0: %d", ErrInvalidRequest, r.NBlocks)
	}
	return nil
}

// Channels is the number of values per sample: 1 for direct, 2 for I/Q.
func (r Request) Channels() int {
	if r.Direct {
		return 1
	}
	return 2
}

// Shape is the shape of the array a capture of r produces.
func (r Request) Shape() []int {
	if r.Direct {
		return []int{r.NBlocks, r.NSamples}
	}
	return []int{r.NBlocks, r.NSamples, 2}
}

// Device is an opened receiver.
type Device interface {
	// ReadBlock fills dst with the next block, NSamples*Channels values.
	ReadBlock(ctx context.Context, dst []float64) error
	Close() error
}

// Opener acquires a device configured for req.
type Opener func(ctx context.Context, req Request) (Device, error)

// Capture opens a device, reads req.NBlocks blocks and releases the device.
//
// The device is closed on every path once it has been opened, including read
// failures and cancellation. A close failure is joined into the returned error
// and no data is returned with it.
func Capture(ctx context.Context, open Opener, req Request) (data *block.Array[float64], err error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("%w: nil opener", ErrInvalidRequest)
	}

	dev, err := open(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("capture: open device: %w", err)
	}
	defer func() {
		if cerr := dev.Close(); cerr != nil {
			data = nil
			err = errors.Join(err, fmt.Errorf("capture: close device: %w", cerr))
		}
	}()

	blockLen := req.NSamples * req.Channels()
	buf := make([]float64, req.NBlocks*blockLen)
	for b := range req.NBlocks {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("capture: block %d: %w", b, err)
		}
		if err := dev.ReadBlock(ctx, buf[b*blockLen:(b+1)*blockLen]); err != nil {
			return nil, fmt.Errorf("capture: read block %d: %w", b, err)
		}
	}

	return block.NewArray(req.Shape(), buf)
}
