// SPDX-License-Identifier: EPL-2.0

package processor

import (
	"sync"
	"testing"
	"time"
)

func TestChanOutput_DeliversInOrder(t *testing.T) {
	t.Parallel()

	out := NewChanOutput(4, nil)
	out.Emit([]byte{1})
	out.Emit([]byte{2})
	out.Close()

	var got []byte
	for f := range out.Frames() {
		got = append(got, f...)
	}

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("received %v, want [1 2]", got)
	}
	if out.Sent() != 2 || out.Dropped() != 0 {
		t.Errorf("Sent()=%d Dropped()=%d, want 2/0", out.Sent(), out.Dropped())
	}
}

func TestChanOutput_DropsWhenFull(t *testing.T) {
	t.Parallel()

	pool := NewFramePool(2, 1)
	_ = pool.Get() // drain so a recycled drop is observable

	out := NewChanOutput(1, pool)
	out.Emit(make([]byte, 4))
	out.Emit(make([]byte, 4))
	out.Emit(make([]byte, 4))

	if out.Len() != 1 || out.Cap() != 1 {
		t.Errorf("Len()=%d Cap()=%d, want 1/1", out.Len(), out.Cap())
	}
	if out.Dropped() != 2 {
		t.Errorf("Dropped() = %d, want 2", out.Dropped())
	}
	if pool.Idle() != 1 {
		t.Errorf("pool Idle() = %d, want dropped frame recycled", pool.Idle())
	}
}

func TestChanOutput_EmitNeverBlocks(t *testing.T) {
	t.Parallel()

	out := NewChanOutput(1, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 1000 {
			out.Emit(nil)
		}
	}()
	<-done

	if out.Sent()+out.Dropped() != 1000 {
		t.Errorf("Sent()+Dropped() = %d, want 1000", out.Sent()+out.Dropped())
	}
}

func TestChanOutput_CloseTwice(t *testing.T) {
	t.Parallel()

	out := NewChanOutput(1, nil)
	out.Close()
	out.Close()

	if _, ok := <-out.Frames(); ok {
		t.Error("Frames() still open after Close()")
	}
}

func TestChanOutput_ConcurrentConsumer(t *testing.T) {
	t.Parallel()

	const frames = 500

	out := NewChanOutput(8, nil)
	p := New(out, WithFrameSize(16))

	var (
		wg       sync.WaitGroup
		received int
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range out.Frames() {
			received++
		}
	}()

	for range frames {
		p.Write(make([]float32, 16))
	}
	out.Close()
	wg.Wait()

	if uint64(received)+out.Dropped() != frames {
		t.Errorf("received %d + dropped %d, want %d", received, out.Dropped(), frames)
	}
}

func TestChanOutput_PutWaitsForConsumer(t *testing.T) {
	t.Parallel()

	const frames = 500

	out := NewChanOutput(2, nil)
	p := New(OutputFunc(func(frame []byte) { out.Put(nil, frame) }), WithFrameSize(16))

	var (
		wg       sync.WaitGroup
		received int
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range out.Frames() {
			received++
		}
	}()

	for range frames {
		p.Write(make([]float32, 16))
	}
	out.Close()
	wg.Wait()

	if received != frames || out.Dropped() != 0 {
		t.Errorf("received %d, dropped %d, want %d and 0", received, out.Dropped(), frames)
	}
	if out.Sent() != frames {
		t.Errorf("Sent() = %d, want %d", out.Sent(), frames)
	}
}

func TestChanOutput_PutGivesUpWhenDone(t *testing.T) {
	t.Parallel()

	pool := NewFramePool(16, 4)
	out := NewChanOutput(1, pool)
	done := make(chan struct{})

	if !out.Put(done, pool.Get()) {
		t.Fatal("Put() on empty queue = false, want true")
	}

	// Nobody reads the queue; Put must return once done closes.
	result := make(chan bool, 1)
	go func() { result <- out.Put(done, pool.Get()) }()

	select {
	case ok := <-result:
		t.Fatalf("Put() on full queue returned %v before done closed", ok)
	case <-time.After(20 * time.Millisecond):
	}

	close(done)

	select {
	case ok := <-result:
		if ok {
			t.Error("Put() after done = true, want false")
		}
	case <-time.After(time.Second):
		t.Fatal("Put() still waiting after done closed")
	}

	if out.Sent() != 1 || out.Dropped() != 1 {
		t.Errorf("sent %d, dropped %d, want 1 and 1", out.Sent(), out.Dropped())
	}
	if got := pool.Idle(); got != 3 {
		t.Errorf("pool idle = %d, want 3 (abandoned frame recycled)", got)
	}
}

func TestFramePool(t *testing.T) {
	t.Parallel()

	pool := NewFramePool(64, 2)

	if pool.FrameSize() != 64 || pool.Idle() != 2 {
		t.Fatalf("FrameSize()=%d Idle()=%d, want 64/2", pool.FrameSize(), pool.Idle())
	}

	a, b, c := pool.Get(), pool.Get(), pool.Get()
	for _, f := range [][]byte{a, b, c} {
		if len(f) != 128 {
			t.Errorf("Get() len = %d, want 128", len(f))
		}
	}
	if pool.Idle() != 0 {
		t.Errorf("Idle() = %d after draining, want 0", pool.Idle())
	}

	pool.Put(make([]byte, 10)) // wrong size, ignored
	if pool.Idle() != 0 {
		t.Errorf("Put() accepted a short buffer")
	}

	pool.Put(a)
	pool.Put(b)
	pool.Put(c) // over capacity, discarded
	if pool.Idle() != 2 {
		t.Errorf("Idle() = %d, want 2", pool.Idle())
	}
}

func TestNewFramePool_PanicsOnBadSize(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewFramePool(0, 1) did not panic")
		}
	}()

	NewFramePool(0, 1)
}
