// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Writer streams emitted PCM16 frames into a mono 16-bit WAV file. The
// header sizes are patched on Close, which is why the destination must be
// seekable.
type Writer struct {
	enc     *gowav.Encoder
	buf     *goaudio.IntBuffer
	frames  int
	samples int
	closed  bool
}

// NewWriter starts a mono PCM16 WAV at sampleRate on w.
func NewWriter(w io.WriteSeeker, sampleRate int) *Writer {
	return &Writer{
		enc: gowav.NewEncoder(w, sampleRate, 16, 1, 1),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}
}

// WriteFrame appends one little-endian PCM16 frame.
func (w *Writer) WriteFrame(frame []byte) error {
	if w.closed {
		return ErrWriterClosed
	}
	if len(frame)%2 != 0 {
		return ErrOddFrameLength
	}

	n := len(frame) / 2
	if cap(w.buf.Data) < n {
		w.buf.Data = make([]int, n)
	}
	w.buf.Data = w.buf.Data[:n]

	for i := range n {
		w.buf.Data[i] = int(int16(binary.LittleEndian.Uint16(frame[2*i:])))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing WAV frame: %w", err)
	}

	w.frames++
	w.samples += n

	return nil
}

// Frames returns the number of frames written.
func (w *Writer) Frames() int { return w.frames }

// Samples returns the number of samples written.
func (w *Writer) Samples() int { return w.samples }

// Close finalizes the header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.samples == 0 {
		// forces the header out so an empty capture is still a valid file
		w.buf.Data = w.buf.Data[:0]
		if err := w.enc.Write(w.buf); err != nil {
			return fmt.Errorf("writing WAV header: %w", err)
		}
	}

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}

	return nil
}
