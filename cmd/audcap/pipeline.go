// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audcap"
	"github.com/ik5/audcap/audio"
	"github.com/ik5/audcap/formats/wav"
	"github.com/ik5/audcap/host"
	"github.com/ik5/audcap/internal/config"
	"github.com/ik5/audcap/processor"
	"github.com/ik5/audcap/sink"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var errUnknownOutput = errors.New("output must end in .wav, .pcm or .raw")

// pipeline wires processor -> queue -> sink for one output file.
type pipeline struct {
	host *host.Host
	out  *processor.ChanOutput
	sink *sink.Sink
	log  *zap.Logger

	name     string
	closeOut func() error
	stopped  chan struct{}
	stop     context.CancelFunc
	done     chan error
}

// newPipeline builds the pipeline writing to outPath.
func newPipeline(cfg config.CaptureConfig, outPath string, sampleRate int, offline bool, log *zap.Logger, reg prometheus.Registerer) (*pipeline, error) {
	fw, closeOut, err := openOutput(outPath, sampleRate)
	if err != nil {
		return nil, err
	}

	p, err := buildPipeline(cfg, fw, offline, log, reg)
	if err != nil {
		return nil, errors.Join(err, closeOut())
	}
	p.name = outPath
	p.closeOut = closeOut

	return p, nil
}

// buildPipeline wires the processor to fw. Offline pipelines wait for queue
// room instead of dropping frames, since nothing paces them, and give up
// once the sink has stopped.
func buildPipeline(cfg config.CaptureConfig, fw sink.FrameWriter, offline bool, log *zap.Logger, reg prometheus.Registerer) (*pipeline, error) {
	pool := processor.NewFramePool(cfg.FrameSize, cfg.PoolSize)
	out := processor.NewChanOutput(cfg.QueueDepth, pool)
	stopped := make(chan struct{})

	var emit processor.Output = out
	if offline {
		emit = processor.OutputFunc(func(frame []byte) { out.Put(stopped, frame) })
	}

	procs := host.NewRegistry()
	err := processor.Register(procs, emit,
		processor.WithFrameSize(cfg.FrameSize),
		processor.WithRounding(cfg.RoundingMode()),
		processor.WithPool(pool),
	)
	if err != nil {
		return nil, err
	}

	h := host.New(procs, log)
	if _, err := h.Attach(processor.Name); err != nil {
		return nil, err
	}

	var metrics *sink.Metrics
	if reg != nil {
		metrics = sink.NewMetrics(reg, out)
	}

	return &pipeline{
		host: h,
		out:  out,
		sink: sink.New(out.Frames(), fw,
			sink.WithPool(pool),
			sink.WithLogger(log.Named("sink")),
			sink.WithMetrics(metrics),
		),
		log:      log,
		closeOut: func() error { return nil },
		stopped:  stopped,
		stop:     func() {},
		done:     make(chan error, 1),
	}, nil
}

func openOutput(path string, sampleRate int) (sink.FrameWriter, func() error, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".pcm", ".raw":
	default:
		return nil, nil, fmt.Errorf("%w: %s", errUnknownOutput, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}

	if ext == ".wav" {
		w := wav.NewWriter(f, sampleRate)
		return w, func() error { return errors.Join(w.Close(), f.Close()) }, nil
	}

	return sink.NewRawWriter(f), f.Close, nil
}

// start runs the sink until finish closes the queue. Cancellation of ctx
// does not stop it, so frames already queued still reach the output. The
// returned context is done when ctx is or when the sink stops early; the
// render side must stop on it.
func (p *pipeline) start(ctx context.Context) context.Context {
	renderCtx, cancel := context.WithCancel(ctx)
	p.stop = cancel

	sinkCtx := context.WithoutCancel(ctx)
	go func() {
		err := p.sink.Run(sinkCtx)
		close(p.stopped)
		cancel()
		p.done <- err
	}()

	return renderCtx
}

// finish closes the queue, waits for the sink and finalizes the output.
// It must only be called once the render side has stopped.
func (p *pipeline) finish() error {
	p.out.Close()
	err := <-p.done
	p.stop()

	err = errors.Join(err, p.closeOut())

	p.log.Info("capture finished",
		zap.String("output", p.name),
		zap.Uint64("frames_written", p.sink.Written()),
		zap.Uint64("frames_dropped", p.out.Dropped()),
		zap.Uint64("ticks", p.host.Ticks()),
	)

	return err
}

// replayInto drives src through p and finalizes the output. An interrupted
// replay keeps what was written; a sink failure is returned.
func replayInto(ctx context.Context, p *pipeline, src audio.Source, tick int) error {
	n, err := audcap.Replay(p.start(ctx), src, p.host, tick)
	p.log.Info("replay done", zap.Int("samples", n))

	if errors.Is(err, context.Canceled) {
		err = nil
	}

	return errors.Join(err, p.finish())
}
