// SPDX-License-Identifier: EPL-2.0

// Package wav reads PCM 16-bit WAV files as capture sources and stores
// emitted PCM16 frames as WAV, both through github.com/go-audio/wav.
//
// # Decoding
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are returned as float32 v/32768, so a decoded file fed back
// through a truncating capture stage reproduces its PCM16 values exactly.
// Inputs that are not seekable are buffered in memory first.
//
// # Writing Captured Frames
//
// Writer accepts the little-endian PCM16 frames a capture stage emits and
// patches the header sizes on Close:
//
//	f, _ := os.Create("capture.wav")
//	w := wav.NewWriter(f, 48000)
//	for frame := range out.Frames() {
//	    if err := w.WriteFrame(frame); err != nil {
//	        break
//	    }
//	}
//	_ = w.Close()
//
// # Errors
//
//   - ErrNotWavFile: the input is not RIFF/WAVE or is truncated
//   - ErrOnlyPCM16bitSupported: the file is not integer PCM at 16 bits
//   - ErrUnsupportedWavLayout: zero channels or sample rate
//   - ErrOddFrameLength, ErrWriterClosed: misuse of Writer
package wav
