// SPDX-License-Identifier: EPL-2.0

package audcap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcap/audio"
	"github.com/ik5/audcap/host"
)

// DefaultTick is the number of sample frames a typical host delivers per
// render callback.
const DefaultTick = 128

// maxEmptyReads bounds consecutive (0, nil) reads before Replay gives up.
const maxEmptyReads = 100

// Replay drives p from src the way a render clock would: tick sample frames
// per call, de-interleaved into one input bus. The last call may carry fewer
// frames. It returns the number of sample frames delivered.
//
// Replay stops without error at the end of src or when p returns false, and
// with ctx.Err() when ctx ends between ticks.
func Replay(ctx context.Context, src audio.Source, p host.Processor, tick int) (int, error) {
	if tick < 1 {
		return 0, ErrInvalidTick
	}

	channels := src.Channels()
	if channels < 1 {
		return 0, audio.ErrInvalidChannels
	}

	split := audio.NewDeinterleaver(channels, tick)
	buf := make([]float32, tick*channels)

	var (
		delivered int
		filled    int
		empty     int
	)
	for {
		if err := ctx.Err(); err != nil {
			return delivered, err
		}

		n, err := src.ReadSamples(buf[filled:])
		filled += n

		if n == 0 && err == nil {
			empty++
			if empty >= maxEmptyReads {
				return delivered, fmt.Errorf("%w: %w", ErrReadSource, io.ErrNoProgress)
			}
			continue
		}
		empty = 0

		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return delivered, fmt.Errorf("%w: %w", ErrReadSource, err)
		}

		// Deliver full ticks, or whatever whole frames remain at the end.
		if filled == len(buf) || eof {
			whole := filled - filled%channels
			if whole > 0 {
				inputs, serr := split.Split(buf[:whole])
				if serr != nil {
					return delivered, serr
				}

				delivered += whole / channels
				if !p.Process(inputs) {
					return delivered, nil
				}
			}

			filled = copy(buf, buf[whole:filled])
		}

		if eof {
			return delivered, nil
		}
	}
}
