// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/asr-tools/speechprep/audio"
)

func TestEncodeWAV16_Header(t *testing.T) {
	t.Parallel()

	out := EncodeWAV16([]int16{1, -2, 3}, 16000)

	if len(out) != 44+6 {
		t.Fatalf("len = %d, want 50", len(out))
	}
	if string(out[0:4]) != "RIFF" || string(out[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if string(out[12:16]) != "fmt " || string(out[36:40]) != "data" {
		t.Error("missing fmt/data chunks")
	}
	if got := binary.LittleEndian.Uint32(out[4:8]); got != 36+6 {
		t.Errorf("riff size = %d, want 42", got)
	}
	if got := binary.LittleEndian.Uint16(out[20:22]); got != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(out[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(out[24:28]); got != 16000 {
		t.Errorf("sample rate = %d, want 16000", got)
	}
	if got := binary.LittleEndian.Uint32(out[28:32]); got != 32000 {
		t.Errorf("byte rate = %d, want 32000", got)
	}
	if got := binary.LittleEndian.Uint16(out[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != 6 {
		t.Errorf("data size = %d, want 6", got)
	}
	if got := int16(binary.LittleEndian.Uint16(out[46:48])); got != -2 {
		t.Errorf("second sample = %d, want -2", got)
	}
}

func TestEncodeWAV16_Empty(t *testing.T) {
	t.Parallel()

	out := EncodeWAV16(nil, 16000)
	if len(out) != 44 {
		t.Errorf("len = %d, want bare 44-byte header", len(out))
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != 0 {
		t.Errorf("data size = %d, want 0", got)
	}
}

func TestWriteWAV16_MatchesEncode(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 10000)
	for i := range samples {
		samples[i] = int16(i)
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 16000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if !bytes.Equal(buf.Bytes(), EncodeWAV16(samples, 16000)) {
		t.Error("WriteWAV16 output differs from EncodeWAV16")
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 32767, -32768}
	out := EncodeWAV16(samples, 16000)

	src, err := Decoder{}.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}

	decoded, err := audio.Collect(src, 64)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(decoded) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(decoded), len(samples))
	}
	for i, v := range samples {
		want := float32(v) / 32768.0
		if decoded[i] != want {
			t.Errorf("decoded[%d] = %v, want %v", i, decoded[i], want)
		}
	}
}
