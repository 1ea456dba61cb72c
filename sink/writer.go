// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"io"
)

// FrameWriter stores or forwards one PCM16LE frame. The frame must not be
// retained after WriteFrame returns.
type FrameWriter interface {
	WriteFrame(frame []byte) error
}

// RawWriter writes frames back to back as headerless PCM16LE.
type RawWriter struct {
	w     io.Writer
	bytes int64
}

func NewRawWriter(w io.Writer) *RawWriter {
	return &RawWriter{w: w}
}

func (r *RawWriter) WriteFrame(frame []byte) error {
	n, err := r.w.Write(frame)
	r.bytes += int64(n)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}

	return nil
}

// Bytes reports the total bytes written.
func (r *RawWriter) Bytes() int64 { return r.bytes }
