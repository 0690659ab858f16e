// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

const headerSize = 44

// EncodeWAV16 renders mono 16-bit little-endian PCM samples into a
// canonical single-data-chunk WAV byte buffer at sampleRate.
func EncodeWAV16(samples []int16, sampleRate int) []byte {
	out := make([]byte, headerSize+len(samples)*2)
	putHeader(out, sampleRate, len(samples))

	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[headerSize+2*i:], uint16(s))
	}

	return out
}

// WriteWAV16 writes the same container as EncodeWAV16 to a stream.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	header := make([]byte, headerSize)
	putHeader(header, sampleRate, len(samples))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	const chunkFrames = 8192
	buf := make([]byte, 0, chunkFrames*2)

	for start := 0; start < len(samples); start += chunkFrames {
		end := min(start+chunkFrames, len(samples))

		buf = buf[:(end-start)*2]
		for i, s := range samples[start:end] {
			binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}

// putHeader fills the 44-byte RIFF/fmt/data header for mono 16-bit PCM.
func putHeader(dst []byte, sampleRate, sampleCount int) {
	const (
		numChannels   = 1
		bitsPerSample = 16
		bytesPerFrame = numChannels * bitsPerSample / 8
	)
	dataSize := uint32(sampleCount * 2)

	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], 36+dataSize)
	copy(dst[8:12], "WAVE")

	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(dst[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(dst[22:24], numChannels)
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(sampleRate*bytesPerFrame))
	binary.LittleEndian.PutUint16(dst[32:34], bytesPerFrame)
	binary.LittleEndian.PutUint16(dst[34:36], bitsPerSample)

	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}
