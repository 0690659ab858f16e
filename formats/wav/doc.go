// SPDX-License-Identifier: EPL-2.0

// Package wav decodes chunked PCM WAV containers behind audio.Source
// and encodes mono 16-bit PCM WAV output.
//
// Decoding supports unsigned 8-bit, signed 16-bit and signed 32-bit
// samples at any channel count; the go-audio riff parser handles
// non-canonical chunk layouts. Encoding always produces the canonical
// 44-byte-header mono 16-bit form, which is all the pipeline emits.
package wav
