// SPDX-License-Identifier: EPL-2.0

package processor

// FramePool is a bounded free list of PCM16 frame buffers, each exactly
// 2*frameSize bytes. Get and Put never block: an empty pool allocates a new
// frame and a full pool discards the returned one.
type FramePool struct {
	frameBytes int
	free       chan []byte
}

// NewFramePool creates a pool for frames of frameSize samples holding at most
// capacity idle frames, all allocated up front.
func NewFramePool(frameSize, capacity int) *FramePool {
	if frameSize < 1 {
		panic("processor: frame size must be positive")
	}

	p := &FramePool{
		frameBytes: 2 * frameSize,
		free:       make(chan []byte, max(capacity, 1)),
	}
	for range cap(p.free) {
		p.free <- make([]byte, p.frameBytes)
	}

	return p
}

// FrameSize returns the number of samples per pooled frame.
func (p *FramePool) FrameSize() int { return p.frameBytes / 2 }

// Get returns a frame of exactly 2*FrameSize() bytes. Its contents are
// undefined.
func (p *FramePool) Get() []byte {
	select {
	case b := <-p.free:
		return b
	default:
		return make([]byte, p.frameBytes)
	}
}

// Put returns a frame to the pool. Buffers of the wrong size are ignored.
func (p *FramePool) Put(b []byte) {
	if cap(b) < p.frameBytes {
		return
	}

	select {
	case p.free <- b[:p.frameBytes]:
	default:
	}
}

// Idle returns the number of frames currently available without allocating.
func (p *FramePool) Idle() int { return len(p.free) }
