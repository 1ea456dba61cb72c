// SPDX-License-Identifier: EPL-2.0

// Package processor implements the capture stage that runs inside a
// real-time render callback.
//
// A Processor accumulates mono float32 samples into a fixed frame of N
// samples (DefaultFrameSize = 4096). Each time the frame fills it is encoded
// to PCM16 little-endian bytes (2*N bytes) and handed to an Output, then
// accumulation restarts. Input chunks may be any length; samples are never
// dropped or repeated at chunk boundaries.
//
// # Conversion
//
// Each sample s becomes clamp(q(s*32768), -32768, 32767) where q truncates
// toward zero (utils.Truncate, the default) or rounds to nearest
// (utils.RoundNearest). Out-of-range input saturates. 1.0 encodes to 32767
// and -1.0 to -32768 in both modes; NaN encodes to 0.
//
// # Real-time Rules
//
// Process and Write never block, lock, log, or perform I/O. With a FramePool
// whose frames are recycled by the consumer they do not allocate either.
// Output implementations must return immediately; ChanOutput drops frames
// when its queue is full instead of waiting.
//
// # Wiring
//
//	out := processor.NewChanOutput(8, pool)
//	reg := host.NewRegistry()
//	_ = processor.Register(reg, out, processor.WithPool(pool))
//
//	// consumer goroutine
//	for frame := range out.Frames() {
//	    _ = w.WriteFrame(frame)
//	    pool.Put(frame)
//	}
package processor
