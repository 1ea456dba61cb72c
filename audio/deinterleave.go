// SPDX-License-Identifier: EPL-2.0

package audio

// Deinterleaver turns interleaved samples into the planar input layout a
// render callback receives: a list of buses, each a list of per-channel
// sample slices of equal length. Only a single bus is produced.
//
// Buffers are allocated once for maxFrames frames and reused by Split, so the
// returned slices are only valid until the next call.
type Deinterleaver struct {
	channels int
	planes   [][]float32
	inputs   [][][]float32
}

// NewDeinterleaver panics if channels or maxFrames is not positive.
func NewDeinterleaver(channels, maxFrames int) *Deinterleaver {
	if channels < 1 {
		panic(ErrInvalidChannels)
	}
	if maxFrames < 1 {
		panic("audio: maxFrames must be positive")
	}

	planes := make([][]float32, channels)
	backing := make([]float32, channels*maxFrames)
	for c := range planes {
		planes[c] = backing[c*maxFrames : (c+1)*maxFrames : (c+1)*maxFrames]
	}

	return &Deinterleaver{
		channels: channels,
		planes:   planes,
		inputs:   [][][]float32{make([][]float32, channels)},
	}
}

func (d *Deinterleaver) Channels() int  { return d.channels }
func (d *Deinterleaver) MaxFrames() int { return cap(d.planes[0]) }

// Split de-interleaves src (whole frames only) into the reusable bus.
// src must hold a multiple of Channels() values and at most MaxFrames() frames.
func (d *Deinterleaver) Split(src []float32) ([][][]float32, error) {
	if len(src)%d.channels != 0 {
		return nil, ErrInvalidDstSize
	}

	frames := len(src) / d.channels
	if frames > d.MaxFrames() {
		return nil, ErrInvalidDstSize
	}

	bus := d.inputs[0]
	if d.channels == 1 {
		bus[0] = d.planes[0][:frames]
		copy(bus[0], src)
		return d.inputs, nil
	}

	for c := range d.channels {
		plane := d.planes[c][:frames]
		for f := range frames {
			plane[f] = src[f*d.channels+c]
		}
		bus[c] = plane
	}

	return d.inputs, nil
}
