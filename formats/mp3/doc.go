// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III streams behind audio.Source
// using hajimehoshi/go-mp3. Output is always stereo interleaved, which
// the mono mixer downstream collapses.
package mp3
