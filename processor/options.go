// SPDX-License-Identifier: EPL-2.0

package processor

import "github.com/ik5/audcap/utils"

// DefaultFrameSize is the number of samples per emitted frame.
const DefaultFrameSize = 4096

type config struct {
	frameSize int
	rounding  utils.Rounding
	pool      *FramePool
}

// Option configures a Processor.
type Option func(*config)

// WithFrameSize sets the number of samples per frame.
func WithFrameSize(n int) Option {
	return func(c *config) { c.frameSize = n }
}

// WithRounding selects the float to PCM16 quantization.
func WithRounding(r utils.Rounding) Option {
	return func(c *config) { c.rounding = r }
}

// WithPool makes the processor take frame buffers from pool instead of
// allocating one per emission. The pool's frame size must match.
func WithPool(p *FramePool) Option {
	return func(c *config) { c.pool = p }
}
