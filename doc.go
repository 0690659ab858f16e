// SPDX-License-Identifier: EPL-2.0

// Package speechprep turns raw audio containers into clean, mono,
// 16 kHz, 16-bit PCM WAV suitable for speech recognition front-ends.
//
// # Pipeline
//
// PrepareAudio runs a fixed, single-pass signal chain:
//
//	decode -> mono mixdown -> resample to 16 kHz -> noise gate ->
//	silence trim -> peak normalize -> compress -> encode WAV
//
// The chain is strictly linear; its only branch is the early exit when
// gating and trimming leave nothing, in which case PrepareAudio
// returns nil bytes with a nil error. Callers must treat that as
// "nothing to transcribe", never as a failure.
//
// # Quick Start
//
//	out, err := speechprep.PrepareAudio(raw, "wav", speechprep.DefaultParams())
//	if err != nil {
//	    // malformed or unsupported input
//	}
//	if out == nil {
//	    // no usable audio in the recording
//	}
//	// out is a mono 16-bit 16 kHz WAV
//
// # Supported Input Formats
//
// The format tag selects a decoder from the built-in registry:
//   - WAV (PCM 8/16/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is always a mono 16-bit WAV regardless of input container.
//
// # Custom Pipelines
//
// The building blocks are exported for callers that need a different
// chain: the audio subpackage holds the Source interface, decoder
// Registry and MonoMixer; the dsp subpackage holds the buffer stages
// (Resample, Gate, TrimSilence, NormalizePeak, Compress).
//
// # Concurrency
//
// PrepareAudio is a pure function over its inputs. Each call owns its
// buffers exclusively and nothing is shared or cached between calls,
// so any number of goroutines may call it concurrently.
package speechprep
