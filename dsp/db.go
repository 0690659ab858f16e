// SPDX-License-Identifier: EPL-2.0

package dsp

import "math"

// DBToLinear converts a decibel value relative to full scale into a
// linear amplitude: 0 dB -> 1.0, -20 dB -> 0.1.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20.0)
}
