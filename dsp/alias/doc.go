// Package alias predicts where a tone appears when it is sampled below its
// Nyquist rate.
//
// A signal at f0 sampled at fs is observed at the alias of f0 folded into the
// first Nyquist zone [0, fs/2]. [TheoryCurve] evaluates that fold over a
// sweep of sampling frequencies, and [LogspaceFs] builds such a sweep.
//
// Frequencies are unit agnostic: f0 and fs only need to share a unit.
package alias
