// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// Resample converts a mono signal from srcRate to dstRate using linear
// interpolation over evenly spaced time points spanning the original
// duration. The input is returned unchanged when the rates already
// match, the buffer is empty, or the derived output length would be a
// degenerate zero/one-sample buffer.
//
// Linear interpolation is not anti-aliased; for large rate ratios it
// introduces artifacts. Speech-bandwidth audio near the target rate is
// the intended input, and determinism with no filter state matters
// more here than stopband quality.
func Resample(samples []float32, srcRate, dstRate int) []float32 {
	if srcRate == dstRate || len(samples) == 0 {
		return samples
	}

	duration := float64(len(samples)) / float64(srcRate)
	targetLen := int(math.Round(duration * float64(dstRate)))
	if targetLen <= 1 {
		return samples
	}

	out := make([]float32, targetLen)
	// Output point i sits at source index i*len/targetLen; both grids
	// start at t=0 and exclude the endpoint, so the position never
	// passes the last source sample by more than a fraction.
	step := float64(len(samples)) / float64(targetLen)

	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}
		frac := float32(pos - float64(j))
		out[i] = samples[j] + (samples[j+1]-samples[j])*frac
	}

	return out
}
