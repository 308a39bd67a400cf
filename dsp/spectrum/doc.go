// Package spectrum computes voltage and power spectra of sampled signals.
//
// The voltage spectrum is the unnormalized forward DFT of a sample sequence,
// X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N). The power spectrum is |X[k]|^2.
// Both accept real or complex input, either as a single sequence or batched
// along the last axis of a [block.Array].
//
// Power-of-two lengths are transformed with algo-fft plans; every other length
// goes through the gonum FFTPACK port. No plan or buffer outlives a call.
//
// The Bin* helpers operate on bins that were already transformed.
package spectrum
