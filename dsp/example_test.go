// SPDX-License-Identifier: EPL-2.0

package dsp_test

import (
	"fmt"

	"github.com/asr-tools/speechprep/dsp"
)

func ExampleResample() {
	samples := []float32{0, 1, 2, 3}
	out := dsp.Resample(samples, 4000, 8000)
	fmt.Println(out)
	// Output: [0 0.5 1 1.5 2 2.5 3 3]
}

func ExampleTrimSilence() {
	samples := []float32{0, 0, 0.5, -0.2, 0}
	out := dsp.TrimSilence(samples, -20)
	fmt.Println(out)
	// Output: [0.5 -0.2]
}

func ExampleCompress() {
	// -20 dB threshold is a linear amplitude of 0.1; the sample at
	// full scale keeps the threshold plus a quarter of the excess.
	out := dsp.Compress([]float32{0.05, 1.0}, -20, 4)
	fmt.Printf("%.3f %.3f\n", out[0], out[1])
	// Output: 0.050 0.325
}
