// SPDX-License-Identifier: EPL-2.0

package dsp

// TrimSilence removes leading and trailing spans whose magnitude stays
// below the threshold, returning the inclusive span between the first
// and last sample that meets it. A signal with no such sample trims to
// an empty buffer: that is the "pure silence" terminal state, a normal
// outcome callers must branch on, not an error.
func TrimSilence(samples []float32, thresholdDB float64) []float32 {
	if len(samples) == 0 {
		return samples
	}

	threshold := float32(DBToLinear(thresholdDB))

	start := -1
	for i, s := range samples {
		if abs(s) >= threshold {
			start = i
			break
		}
	}
	if start < 0 {
		return []float32{}
	}

	end := len(samples) - 1
	for ; end > start; end-- {
		if abs(samples[end]) >= threshold {
			break
		}
	}

	return samples[start : end+1]
}
