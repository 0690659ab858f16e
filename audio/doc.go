// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the conditioning
// pipeline is built from.
//
// # Source Interface
//
// The Source interface is the decode-side foundation:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Every format decoder returns a Source, and processing stages that
// operate per-frame (such as MonoMixer) wrap one, so they can be
// chained freely.
//
// # Channel Mixing
//
// MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// Speech recognition front-ends almost always want mono input.
//
// # Collecting
//
// Collect drains a Source into one buffer for the whole-signal stages
// (trimming and peak normalization need to see the entire signal):
//
//	samples, err := audio.Collect(mono, 4096)
//
// # Format Registry
//
// Registry maps caller-supplied format tags to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
//
// # Errors
//
// ErrUnsupportedFormat and ErrDecode are the two failure classes every
// decoder error wraps. Match them with errors.Is when the specific
// cause does not matter.
package audio
