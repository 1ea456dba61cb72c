// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample sources that feed a capture stage and the
// adapters that shape them into render-callback input.
//
// # Source Interface
//
// Every decoder returns a Source that yields interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Render Input Layout
//
// A real-time render callback receives its input as buses of planar channels
// ([][][]float32). The Deinterleaver converts interleaved reads into that
// layout without allocating:
//
//	d := audio.NewDeinterleaver(src.Channels(), 128)
//	n, _ := src.ReadSamples(buf)
//	inputs, _ := d.Split(buf[:n])
//	proc.Process(inputs)
//
// # Channel Mixing
//
// Capture consumes only the first channel. MonoMixer averages all channels
// first when the whole signal should be kept:
//
//	mono := audio.NewMonoMixer(source)
//
// # Format Registry
//
// Decoders are looked up by format key or file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("take.wav")
//
// # Sample Format
//
// Samples are float32 nominally in [-1.0, 1.0]. Values may exceed that range;
// conversion to PCM16 saturates rather than wraps.
package audio
