// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/asr-tools/speechprep/audio"
)

var (
	ErrNotAIFF  = fmt.Errorf("not an AIFF stream: %w", audio.ErrDecode)
	ErrBitDepth = fmt.Errorf("unsupported aiff bit depth: %w", audio.ErrUnsupportedFormat)
)
