// SPDX-License-Identifier: EPL-2.0

// Package mic feeds a capture processor from the default input device via
// PortAudio.
package mic

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/ik5/audcap/host"
	"go.uber.org/zap"
)

// ErrOpenStream wraps PortAudio initialization and stream errors.
var ErrOpenStream = errors.New("opening input stream")

type stream interface {
	Start() error
	Stop() error
	Close() error
}

// opener opens a mono input stream that calls cb once per buffer.
type opener func(sampleRate float64, framesPerBuffer int, cb func(in []float32)) (stream, error)

type backend struct {
	open      opener
	terminate func() error
}

func portaudioBackend() (backend, error) {
	if err := portaudio.Initialize(); err != nil {
		return backend{}, err
	}

	return backend{
		open: func(rate float64, frames int, cb func(in []float32)) (stream, error) {
			return portaudio.OpenDefaultStream(1, 0, rate, frames, cb)
		},
		terminate: portaudio.Terminate,
	}, nil
}

// Capture delivers every PortAudio input buffer to a processor as bus 0,
// channel 0. The callback does not allocate, lock or log.
type Capture struct {
	proc      host.Processor
	inputs    [][][]float32
	stream    stream
	terminate func() error
	log       *zap.Logger

	done     chan struct{}
	doneOnce sync.Once
	closed   bool
}

// New opens the default input device as a mono stream of framesPerBuffer
// frames at sampleRate.
func New(p host.Processor, sampleRate, framesPerBuffer int, log *zap.Logger) (*Capture, error) {
	be, err := portaudioBackend()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenStream, err)
	}

	return newCapture(be, p, sampleRate, framesPerBuffer, log)
}

func newCapture(be backend, p host.Processor, sampleRate, framesPerBuffer int, log *zap.Logger) (*Capture, error) {
	if log == nil {
		log = zap.NewNop()
	}

	c := &Capture{
		proc:      p,
		inputs:    [][][]float32{{nil}},
		terminate: be.terminate,
		log:       log,
		done:      make(chan struct{}),
	}

	s, err := be.open(float64(sampleRate), framesPerBuffer, c.callback)
	if err != nil {
		_ = be.terminate()
		return nil, fmt.Errorf("%w: %w", ErrOpenStream, err)
	}
	c.stream = s

	log.Info("input stream opened",
		zap.Int("sample_rate", sampleRate),
		zap.Int("frames_per_buffer", framesPerBuffer),
	)

	return c, nil
}

func (c *Capture) callback(in []float32) {
	c.inputs[0][0] = in
	if !c.proc.Process(c.inputs) {
		c.doneOnce.Do(func() { close(c.done) })
	}
}

// Done is closed once the processor asks to stop.
func (c *Capture) Done() <-chan struct{} { return c.done }

func (c *Capture) Start() error {
	if err := c.stream.Start(); err != nil {
		return fmt.Errorf("%w: start: %w", ErrOpenStream, err)
	}
	c.log.Debug("input stream started")

	return nil
}

// Stop waits for the in-flight callback to return; no callback runs after it.
func (c *Capture) Stop() error {
	if err := c.stream.Stop(); err != nil {
		return fmt.Errorf("%w: stop: %w", ErrOpenStream, err)
	}
	c.log.Debug("input stream stopped")

	return nil
}

// Close closes the stream and terminates PortAudio. It is safe to call twice.
func (c *Capture) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	return errors.Join(c.stream.Close(), c.terminate())
}
