// SPDX-License-Identifier: EPL-2.0

// Package audcap is a real-time audio capture stage: it accumulates mono
// float32 samples from a render callback into fixed frames of 4096 samples
// and hands each full frame, encoded as little-endian PCM16, to a consumer
// outside the real-time context.
//
// # Packages
//
//   - processor: the frame accumulator and PCM16 encoder (the render node)
//   - host: a minimal render clock and name registry for processors
//   - sink: the consumer that drains emitted frames to a writer
//   - audio: sources, decoder registry, deinterleaving and mono downmix
//   - formats/...: WAV, MP3, Ogg Vorbis and AIFF decoders, WAV frame writer
//   - utils: saturating float32 to PCM16 conversion
//
// # Quick Start
//
// Register the processor with a host, attach it, and drive it from a
// decoded file with Replay:
//
//	pool := processor.NewFramePool(processor.DefaultFrameSize, 32)
//	out := processor.NewChanOutput(16, pool)
//
//	reg := host.NewRegistry()
//	_ = processor.Register(reg, out, processor.WithPool(pool))
//	h := host.New(reg, logger)
//	_, _ = h.Attach(processor.Name)
//
//	go sink.New(out.Frames(), wavWriter, sink.WithPool(pool)).Run(ctx)
//
//	dec, _ := audcap.NewDecoderRegistry().ForPath("input.wav")
//	src, _ := dec.Decode(file)
//	n, err := audcap.Replay(ctx, src, h, audcap.DefaultTick)
//	out.Close()
//
// Live capture from a microphone lives in the audcap command.
package audcap
