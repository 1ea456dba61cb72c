// SPDX-License-Identifier: EPL-2.0

package processor

import (
	"fmt"

	"github.com/ik5/audcap/host"
	"github.com/ik5/audcap/utils"
)

// Name is the identifier the processor is registered under with a host.
const Name = "audio-processor"

// Processor accumulates mono samples into fixed-size frames and emits each
// full frame as PCM16. It must be driven from a single goroutine.
type Processor struct {
	buf      []float32
	index    int
	out      Output
	pool     *FramePool
	rounding utils.Rounding
	emitted  uint64
}

// New creates a processor that emits to out. It panics on a nil out, a
// non-positive frame size, or a pool whose frame size differs.
func New(out Output, opts ...Option) *Processor {
	cfg := config{frameSize: DefaultFrameSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	if out == nil {
		panic("processor: nil output")
	}
	if cfg.frameSize < 1 {
		panic(fmt.Sprintf("processor: invalid frame size %d", cfg.frameSize))
	}
	if cfg.pool != nil && cfg.pool.FrameSize() != cfg.frameSize {
		panic(fmt.Sprintf("processor: pool frame size %d does not match %d", cfg.pool.FrameSize(), cfg.frameSize))
	}

	return &Processor{
		buf:      make([]float32, cfg.frameSize),
		out:      out,
		pool:     cfg.pool,
		rounding: cfg.rounding,
	}
}

// Register makes the processor available in reg under Name. Every instance
// created by the host shares out and opts.
func Register(reg *host.Registry, out Output, opts ...Option) error {
	err := reg.Register(Name, func() (host.Processor, error) {
		return New(out, opts...), nil
	})
	if err != nil {
		return fmt.Errorf("registering %s: %w", Name, err)
	}

	return nil
}

// Process consumes channel 0 of bus 0 and ignores everything else. Missing
// buses or channels are treated as silence: nothing is stored or emitted.
// It always returns true; stopping is up to the caller.
func (p *Processor) Process(inputs [][][]float32) bool {
	if len(inputs) == 0 || len(inputs[0]) == 0 {
		return true
	}

	p.Write(inputs[0][0])

	return true
}

// Write appends samples to the current frame, emitting a frame every time
// it fills. Any length is accepted, including zero and more than one frame.
func (p *Processor) Write(samples []float32) {
	for len(samples) > 0 {
		n := copy(p.buf[p.index:], samples)
		samples = samples[n:]
		p.index += n

		if p.index == len(p.buf) {
			p.flush()
			p.index = 0
		}
	}
}

func (p *Processor) flush() {
	var frame []byte
	if p.pool != nil {
		frame = p.pool.Get()
	} else {
		frame = make([]byte, 2*len(p.buf))
	}

	utils.EncodePCM16LE(frame, p.buf, p.rounding)
	p.emitted++
	p.out.Emit(frame)
}

// Buffered returns the number of samples accumulated since the last frame.
func (p *Processor) Buffered() int { return p.index }

// FrameSize returns the number of samples per frame.
func (p *Processor) FrameSize() int { return len(p.buf) }

// Emitted returns the number of frames emitted so far.
func (p *Processor) Emitted() uint64 { return p.emitted }

// Rounding returns the quantization mode in use.
func (p *Processor) Rounding() utils.Rounding { return p.rounding }
