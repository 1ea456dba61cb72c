// SPDX-License-Identifier: EPL-2.0

package processor

import (
	"sync"
	"sync/atomic"
)

// Output receives every completed PCM16 frame. Emit is called on the render
// goroutine and must return immediately. Ownership of frame passes to the
// Output; the processor never touches it again.
type Output interface {
	Emit(frame []byte)
}

// OutputFunc adapts a function to Output.
type OutputFunc func(frame []byte)

func (f OutputFunc) Emit(frame []byte) { f(frame) }

// ChanOutput hands frames to a consumer goroutine through a bounded queue.
// When the queue is full the frame is dropped and counted, never waited on.
type ChanOutput struct {
	frames  chan []byte
	pool    *FramePool
	dropped atomic.Uint64
	sent    atomic.Uint64
	once    sync.Once
}

// NewChanOutput creates a queue holding up to depth frames. Dropped frames
// go back to pool when it is not nil.
func NewChanOutput(depth int, pool *FramePool) *ChanOutput {
	return &ChanOutput{
		frames: make(chan []byte, max(depth, 1)),
		pool:   pool,
	}
}

func (o *ChanOutput) Emit(frame []byte) {
	select {
	case o.frames <- frame:
		o.sent.Add(1)
	default:
		o.drop(frame)
	}
}

// Put queues frame, waiting for room until done is closed. It is for offline
// drivers such as file replay, which run faster than real time; a render
// callback must use Emit. A nil done waits indefinitely. Put reports whether
// the frame was queued; a frame given up on is counted as dropped.
func (o *ChanOutput) Put(done <-chan struct{}, frame []byte) bool {
	select {
	case o.frames <- frame:
		o.sent.Add(1)
		return true
	case <-done:
		o.drop(frame)
		return false
	}
}

func (o *ChanOutput) drop(frame []byte) {
	o.dropped.Add(1)
	if o.pool != nil {
		o.pool.Put(frame)
	}
}

// Frames is the consumer side of the queue. It is closed by Close.
func (o *ChanOutput) Frames() <-chan []byte { return o.frames }

// Dropped returns how many frames were discarded because the queue was full.
func (o *ChanOutput) Dropped() uint64 { return o.dropped.Load() }

// Sent returns how many frames were queued.
func (o *ChanOutput) Sent() uint64 { return o.sent.Load() }

// Len returns the number of frames waiting in the queue.
func (o *ChanOutput) Len() int { return len(o.frames) }

// Cap returns the queue depth.
func (o *ChanOutput) Cap() int { return cap(o.frames) }

// Close closes the queue. Call it only after the render callback has stopped
// invoking Emit. Calling Close more than once is safe.
func (o *ChanOutput) Close() {
	o.once.Do(func() { close(o.frames) })
}
