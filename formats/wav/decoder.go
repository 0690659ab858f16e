// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/asr-tools/speechprep/audio"
	"github.com/asr-tools/speechprep/utils"
)

// wavReader is the slice of gowav.Decoder the source needs; an
// interface so tests can substitute a fake.
type wavReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source adapts a go-audio wav decoder to audio.Source. The stored
// sample width is resolved to a conversion function once at decode
// time; ReadSamples never inspects the width again.
type source struct {
	dec        wavReader
	sampleRate int
	channels   int
	conv       func(int) float32
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, fmt.Errorf("reading wav samples: %w", err)
	}

	for i := 0; i < n; i++ {
		dst[i] = s.conv(s.intBuf.Data[i])
	}

	if n == 0 {
		return 0, io.EOF
	}
	if n < len(dst) {
		// go-audio returns a short count only when the data chunk is
		// exhausted.
		return n, io.EOF
	}
	return n, nil
}

type Decoder struct{}

// Decode parses a chunked PCM WAV container. Supported sample widths
// are unsigned 8-bit, signed 16-bit and signed 32-bit; anything else,
// including 24-bit, fails with ErrBitDepth. Compressed codecs fail
// with ErrNotPCM.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek between chunks.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav input: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	if dec.WavAudioFormat != 1 {
		return nil, fmt.Errorf("codec %d: %w", dec.WavAudioFormat, ErrNotPCM)
	}

	conv, err := sampleConv(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels <= 0 {
		return nil, ErrNotWAV
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		conv:       conv,
	}, nil
}

func sampleConv(bitDepth int) (func(int) float32, error) {
	switch bitDepth {
	case 8:
		return func(v int) float32 { return utils.Float32FromUint8(uint8(v)) }, nil
	case 16:
		return func(v int) float32 { return utils.Float32FromInt16(int16(v)) }, nil
	case 32:
		return func(v int) float32 { return utils.Float32FromInt32(int32(v)) }, nil
	default:
		return nil, fmt.Errorf("%d-bit: %w", bitDepth, ErrBitDepth)
	}
}
