// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the whole-buffer conditioning stages: sample
// rate conversion, noise gating, silence trimming, peak normalization
// and dynamic range compression.
//
// Every function is a pure transform over a mono []float32 signal with
// samples in [-1, 1]. None of them mutate their input; outputs are
// fresh slices, sub-slices of the input, or the input itself when the
// stage is an identity. An empty buffer is a valid signal (silence)
// and passes through every stage without error.
//
// Thresholds are expressed in decibels relative to full scale and
// converted with DBToLinear (10^(db/20)), so -20 dB is a linear
// amplitude of 0.1 and -50 dB roughly 0.0032.
package dsp
