// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams behind audio.Source using
// jfreymuth/oggvorbis, which already produces interleaved float32 in
// [-1, 1], so no sample-width mapping is needed.
package vorbis
