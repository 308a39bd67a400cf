package alias

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultPoints is the conventional length of a LogspaceFs sweep.
const DefaultPoints = 400

var (
	// ErrShapeMismatch is returned when two frequency slices cannot be broadcast.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrNonPositiveFrequency is returned for log-spacing endpoints <= 0.
	ErrNonPositiveFrequency = errors.New("frequency must be > 0")
	// ErrPoints is returned for a negative point count.
	ErrPoints = errors.New("number of points must be >= 0")
)

// Peak returns the apparent frequency of a tone at f0 sampled at fs.
//
// The remainder r = f0 mod fs uses floored division, so it takes the sign of
// fs and lies in [0, fs) for positive fs whatever the sign of f0. The result
// is r when r <= fs/2 and fs-r otherwise, which is always within [0, fs/2].
//
// fs == 0 is not guarded: the remainder is NaN and NaN is returned.
func Peak(f0, fs float64) float64 {
	r := floorMod(f0, fs)
	if r <= fs/2 {
		return r
	}
	return fs - r
}

// PeakElementwise applies [Peak] pairwise. The slices must have equal length,
// or one of them must have length 1 and is then repeated against the other.
func PeakElementwise(f0, fs []float64) ([]float64, error) {
	n := len(f0)
	switch {
	case len(f0) == len(fs):
	case len(f0) == 1:
		n = len(fs)
	case len(fs) == 1:
	default:
		return nil, fmt.Errorf("alias: PeakElementwise: %w: f0 has %d values, fs has %d",
			ErrShapeMismatch, len(f0), len(fs))
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = Peak(f0[min(i, len(f0)-1)], fs[min(i, len(fs)-1)])
	}
	return out, nil
}

// PeakAcross applies [Peak] to one tone against every sampling frequency in fs.
func PeakAcross(f0 float64, fs []float64) []float64 {
	out := make([]float64, len(fs))
	for i, s := range fs {
		out[i] = Peak(f0, s)
	}
	return out
}

// TheoryCurve returns the aliasing curve of a tone at f0 over fsVals.
// The returned fs is a copy of fsVals; fobs[i] is Peak(f0, fsVals[i]).
func TheoryCurve(f0 float64, fsVals []float64) (fs, fobs []float64) {
	fs = append([]float64(nil), fsVals...)
	if fs == nil {
		fs = []float64{}
	}
	return fs, PeakAcross(f0, fs)
}

// LogspaceFs returns npts sampling frequencies log-uniformly spaced from fsMax
// to fsMin, both included. The sweep runs in the direction of the arguments,
// so it descends when fsMax > fsMin. Zero points yield an empty slice and a
// single point yields [fsMax].
//
// Endpoints must be positive. Unlike a bare log-space, a non-positive endpoint
// is reported as [ErrNonPositiveFrequency] instead of producing NaN values.
func LogspaceFs(fsMax, fsMin float64, npts int) ([]float64, error) {
	if npts < 0 {
		return nil, fmt.Errorf("alias: LogspaceFs: %w: %d", ErrPoints, npts)
	}
	if !(fsMax > 0) || !(fsMin > 0) {
		return nil, fmt.Errorf("alias: LogspaceFs: %w: fsMax=%g fsMin=%g", ErrNonPositiveFrequency, fsMax, fsMin)
	}

	switch npts {
	case 0:
		return []float64{}, nil
	case 1:
		return []float64{fsMax}, nil
	}

	out := floats.LogSpan(make([]float64, npts), fsMax, fsMin)
	// exp(log(x)) is not always exact; pin the endpoints to the requested values.
	out[0] = fsMax
	out[npts-1] = fsMin
	return out, nil
}

// floorMod is the remainder of floored division: the result has the sign of
// y (or is zero).
func floorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}
