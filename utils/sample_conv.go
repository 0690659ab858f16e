// SPDX-License-Identifier: EPL-2.0

// Package utils holds the sample-width conversions shared by the
// format decoders and the encoder: mapping stored integer PCM widths
// to float32 in [-1, 1] and back to 16-bit output.
package utils

// Float32FromUint8 maps an unsigned 8-bit sample (silence at 128) into
// [-1, 1].
func Float32FromUint8(v uint8) float32 {
	return clamp((float32(v) - 128.0) / 128.0)
}

// Float32FromInt16 maps a signed 16-bit sample into [-1, 1].
func Float32FromInt16(v int16) float32 {
	return clamp(float32(v) / 32768.0)
}

// Float32FromInt32 maps a signed 32-bit sample into [-1, 1].
func Float32FromInt32(v int32) float32 {
	return clamp(float32(v) / 2147483648.0)
}

// Float32ToInt16 converts a float32 sample to signed 16-bit PCM,
// clamping out-of-range input first.
func Float32ToInt16(x float32) int16 {
	// 32767 on both sides so full-scale positive input cannot overflow.
	return int16(clamp(x) * 32767.0)
}

func clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
