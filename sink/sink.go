// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"context"
	"fmt"

	"github.com/ik5/audcap/processor"
	"go.uber.org/zap"
)

// Sink drains a frame queue into a FrameWriter.
type Sink struct {
	frames  <-chan []byte
	w       FrameWriter
	pool    *processor.FramePool
	log     *zap.Logger
	metrics *Metrics
	written uint64
}

type Option func(*Sink)

// WithPool returns written frames to pool.
func WithPool(pool *processor.FramePool) Option {
	return func(s *Sink) { s.pool = pool }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Sink) {
		if log != nil {
			s.log = log
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Sink) { s.metrics = m }
}

func New(frames <-chan []byte, w FrameWriter, opts ...Option) *Sink {
	s := &Sink{
		frames: frames,
		w:      w,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run writes frames until the queue is closed (nil), ctx ends (ctx.Err()),
// or a write fails. Run must not be called concurrently.
func (s *Sink) Run(ctx context.Context) error {
	s.log.Debug("sink started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info("sink stopped", zap.Uint64("frames", s.written), zap.Error(ctx.Err()))
			return ctx.Err()

		case frame, ok := <-s.frames:
			if !ok {
				s.log.Info("frame queue closed", zap.Uint64("frames", s.written))
				return nil
			}

			if err := s.write(frame); err != nil {
				s.log.Error("frame write failed",
					zap.Uint64("frame", s.written),
					zap.Int("bytes", len(frame)),
					zap.Error(err),
				)
				return fmt.Errorf("%w %d: %w", ErrWriteFrame, s.written, err)
			}
		}
	}
}

func (s *Sink) write(frame []byte) error {
	err := s.w.WriteFrame(frame)
	size := len(frame)
	if s.pool != nil {
		s.pool.Put(frame)
	}

	if err != nil {
		if s.metrics != nil {
			s.metrics.WriteErrors.Inc()
		}
		return err
	}

	s.written++
	if s.metrics != nil {
		s.metrics.FramesWritten.Inc()
		s.metrics.BytesWritten.Add(float64(size))
	}

	return nil
}

// Written reports the frames written so far. Only valid after Run returns.
func (s *Sink) Written() uint64 { return s.written }
