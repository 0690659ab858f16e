// SPDX-License-Identifier: EPL-2.0

package dsp

// Gate zeroes every sample whose magnitude falls strictly below the
// threshold and passes the rest through unchanged. The output has the
// same length as the input.
//
// This is a hard gate with no attack/release envelope. It runs ahead
// of trimming and compression, not in a playback path, so the abrupt
// transitions it leaves are harmless.
func Gate(samples []float32, thresholdDB float64) []float32 {
	if len(samples) == 0 {
		return samples
	}

	threshold := float32(DBToLinear(thresholdDB))
	gated := make([]float32, len(samples))

	for i, s := range samples {
		if abs(s) < threshold {
			continue // stays 0
		}
		gated[i] = s
	}

	return gated
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
