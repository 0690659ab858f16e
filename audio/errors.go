// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat marks input the pipeline recognizes but does
	// not handle: unknown format tags, compressed codecs, bit depths
	// outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrDecode marks input that failed to parse as its declared
	// container: bad magic, malformed chunk structure, truncated data.
	ErrDecode = errors.New("malformed audio data")
)
