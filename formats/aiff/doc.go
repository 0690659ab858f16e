// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF containers behind audio.Source
// using go-audio/aiff.
package aiff
