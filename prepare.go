// SPDX-License-Identifier: EPL-2.0

package speechprep

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/asr-tools/speechprep/audio"
	"github.com/asr-tools/speechprep/dsp"
	"github.com/asr-tools/speechprep/formats/aiff"
	"github.com/asr-tools/speechprep/formats/mp3"
	"github.com/asr-tools/speechprep/formats/vorbis"
	"github.com/asr-tools/speechprep/formats/wav"
	"github.com/asr-tools/speechprep/utils"
)

const (
	// TargetSampleRate is the fixed output rate of the pipeline in Hz.
	TargetSampleRate = 16000

	// DefaultNoiseGateDB is the default gate threshold relative to
	// full scale.
	DefaultNoiseGateDB = -50.0

	// DefaultCompressorRatio is the default dynamic range compression
	// ratio. Values below 1.0 are clamped to 1.0.
	DefaultCompressorRatio = 4.0

	// DefaultCompressorThresholdDB is the default compressor threshold
	// relative to full scale.
	DefaultCompressorThresholdDB = -20.0

	// Trimming is always this much stricter than the gate, so edges
	// are removed more aggressively than interior samples are zeroed.
	trimSilenceDBOffset = 5.0

	readBufferSize = 4096
)

// Params are the caller-tunable knobs of PrepareAudio. A Params value
// is immutable for the duration of a call; the zero value is not
// useful, start from DefaultParams.
type Params struct {
	NoiseGateDB           float64
	CompressorRatio       float64
	CompressorThresholdDB float64
}

func DefaultParams() Params {
	return Params{
		NoiseGateDB:           DefaultNoiseGateDB,
		CompressorRatio:       DefaultCompressorRatio,
		CompressorThresholdDB: DefaultCompressorThresholdDB,
	}
}

// defaultRegistry maps the advisory format tags PrepareAudio accepts.
var defaultRegistry = func() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("vorbis", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}()

// Formats returns the format tags PrepareAudio accepts.
func Formats() []string {
	return defaultRegistry.Formats()
}

// PrepareAudio conditions a raw audio container for speech
// recognition: decode, collapse to mono, resample to TargetSampleRate,
// gate noise, trim silent edges, normalize the peak, compress the
// dynamic range, and encode as mono 16-bit PCM WAV.
//
// The format tag is advisory ("wav" when empty) and must
// name a supported container. A nil, nil return means the input held
// no usable audio (empty, or fully gated and trimmed away); that is a
// normal outcome, not an error. Errors are terminal and wrap
// audio.ErrUnsupportedFormat or audio.ErrDecode.
func PrepareAudio(data []byte, format string, p Params) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	tag := normalizeTag(format)
	dec, ok := defaultRegistry.Get(tag)
	if !ok {
		return nil, fmt.Errorf("format %q: %w", format, audio.ErrUnsupportedFormat)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s input: %w", tag, err)
	}
	defer src.Close()

	mono := audio.NewMonoMixer(src)
	samples, err := audio.Collect(mono, readBufferSize)
	if err != nil {
		return nil, fmt.Errorf("draining %s input: %w", tag, err)
	}

	samples = dsp.Resample(samples, src.SampleRate(), TargetSampleRate)

	gated := dsp.Gate(samples, p.NoiseGateDB)
	trimmed := dsp.TrimSilence(gated, p.NoiseGateDB+trimSilenceDBOffset)
	if len(trimmed) == 0 {
		// Pure silence: nothing to transcribe.
		return nil, nil
	}

	shaped := dsp.Compress(dsp.NormalizePeak(trimmed), p.CompressorThresholdDB, p.CompressorRatio)

	pcm16 := make([]int16, len(shaped))
	for i, s := range shaped {
		pcm16[i] = utils.Float32ToInt16(s)
	}

	return wav.EncodeWAV16(pcm16, TargetSampleRate), nil
}

// normalizeTag lowercases the caller's advisory tag and strips a
// leading dot so file extensions work as-is. Empty means WAV.
func normalizeTag(format string) string {
	tag := strings.ToLower(strings.TrimSpace(format))
	tag = strings.TrimPrefix(tag, ".")
	if tag == "" {
		return "wav"
	}
	return tag
}
