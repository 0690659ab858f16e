// SPDX-License-Identifier: EPL-2.0

package dsp

// NormalizePeak rescales the signal so its loudest sample reaches full
// scale (magnitude 1.0). A silent or empty signal has no peak to scale
// by and is returned unchanged. Results are clamped to [-1, 1] to
// absorb floating-point rounding overshoot.
func NormalizePeak(samples []float32) []float32 {
	peak := float32(0)
	for _, s := range samples {
		if a := abs(s); a > peak {
			peak = a
		}
	}
	if peak <= 0 {
		return samples
	}

	normalized := make([]float32, len(samples))
	for i, s := range samples {
		normalized[i] = clamp(s / peak)
	}

	return normalized
}

func clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
