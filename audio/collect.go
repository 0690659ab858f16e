// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src into a single buffer, reading bufSize samples at a
// time. A source with no samples yields an empty (non-nil) slice rather
// than an error; decode failures mid-stream propagate unchanged.
func Collect(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}

	samples := make([]float32, 0, bufSize)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			return samples, nil
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
		if n == 0 {
			// A well-behaved source returns io.EOF with n == 0;
			// treat a bare zero read as end of stream too.
			return samples, nil
		}
	}
}
