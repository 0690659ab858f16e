// SPDX-License-Identifier: EPL-2.0

package dsp

// Compress soft-limits the dynamic range: samples whose magnitude
// exceeds the threshold are pulled toward it, keeping threshold plus
// the excess divided by ratio, with the original sign. Samples at or
// below the threshold are untouched. The ratio is floored at 1.0 so a
// misconfigured value can never expand the signal.
func Compress(samples []float32, thresholdDB, ratio float64) []float32 {
	if len(samples) == 0 {
		return samples
	}
	if ratio < 1.0 {
		ratio = 1.0
	}

	threshold := float32(DBToLinear(thresholdDB))
	r := float32(ratio)
	compressed := make([]float32, len(samples))

	for i, s := range samples {
		a := abs(s)
		if a <= threshold {
			compressed[i] = s
			continue
		}
		reduced := threshold + (a-threshold)/r
		if s < 0 {
			reduced = -reduced
		}
		compressed[i] = reduced
	}

	return compressed
}
