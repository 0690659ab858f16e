// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/asr-tools/speechprep/audio"
)

// fakeReader serves canned 16-bit integer samples through PCMBuffer.
type fakeReader struct {
	data []int
	pos  int
}

func (f *fakeReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeReader{data: []int{0, 16384, -16384, -32768}},
		sampleRate: 44100,
		channels:   2,
	}

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_ShortReadSignalsEOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeReader{data: []int{100, -100}},
		sampleRate: 44100,
		channels:   1,
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (2, io.EOF)", n, err)
	}
}

func TestDecoder_NotAIFF(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not a FORM/AIFF container")))
	if !errors.Is(err, ErrNotAIFF) {
		t.Errorf("Decode() error = %v, want ErrNotAIFF", err)
	}
	if !errors.Is(err, audio.ErrDecode) {
		t.Errorf("Decode() error = %v, should wrap audio.ErrDecode", err)
	}
}
