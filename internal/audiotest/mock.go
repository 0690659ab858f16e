// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides mock audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates deterministic audio data. It implements the
// audio.Source interface without importing it.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // frames to generate in total
	generated   int // frames generated so far
	waveform    func(frame, channel int) float32
}

// NewMockSource creates a source producing totalFrames frames, with
// each sample value supplied by waveform(frame, channel).
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource generates all-zero frames.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return 0
	})
}

// NewConstantSource generates the same value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// NewSineSource generates a sine wave at the given frequency and
// amplitude on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64, amplitude float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return amplitude * float32(math.Sin(2*math.Pi*frequency*t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	remaining := m.totalFrames - m.generated
	if frames > remaining {
		frames = remaining
	}
	if frames == 0 {
		return 0, nil
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
