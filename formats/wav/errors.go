// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/asr-tools/speechprep/audio"
)

// Each sentinel wraps one of the audio package taxonomy roots, so
// errors.Is matches both the specific cause and the broad class.
var (
	ErrNotWAV   = fmt.Errorf("not a RIFF/WAVE stream: %w", audio.ErrDecode)
	ErrNotPCM   = fmt.Errorf("compressed wav codec: %w", audio.ErrUnsupportedFormat)
	ErrBitDepth = fmt.Errorf("unsupported wav bit depth: %w", audio.ErrUnsupportedFormat)
)
