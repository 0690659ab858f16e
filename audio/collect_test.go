// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"testing"

	"github.com/asr-tools/speechprep/audio"
	"github.com/asr-tools/speechprep/internal/audiotest"
)

func TestCollect_DrainsEverything(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 1000, 0.5)

	samples, err := audio.Collect(src, 256)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 1000 {
		t.Fatalf("Collect() len = %d, want 1000", len(samples))
	}
	for i, s := range samples {
		if s != 0.5 {
			t.Fatalf("samples[%d] = %v, want 0.5", i, s)
		}
	}
}

func TestCollect_EmptySource(t *testing.T) {
	t.Parallel()

	samples, err := audio.Collect(audiotest.NewSilentSource(8000, 1, 0), 256)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("Collect() len = %d, want 0", len(samples))
	}
}

func TestCollect_DefaultBufSize(t *testing.T) {
	t.Parallel()

	samples, err := audio.Collect(audiotest.NewConstantSource(8000, 1, 10, 0.1), 0)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 10 {
		t.Errorf("Collect() len = %d, want 10", len(samples))
	}
}

func TestCollect_InterleavedMultiChannel(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 100, func(_, channel int) float32 {
		return float32(channel)
	})

	samples, err := audio.Collect(src, 64)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(samples) != 200 {
		t.Fatalf("Collect() len = %d, want 200 interleaved values", len(samples))
	}
	for i, s := range samples {
		if s != float32(i%2) {
			t.Fatalf("samples[%d] = %v, want %v", i, s, float32(i%2))
		}
	}
}
