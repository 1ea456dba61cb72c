// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audcap/audio"
	"github.com/jfreymuth/oggvorbis"
)

const defaultBufSize = 4096

// valueReader is the part of oggvorbis.Reader the source needs. Read
// returns the number of interleaved values decoded, not frames.
type valueReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        valueReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return defaultBufSize }

// ReadSamples decodes straight into dst, trimmed to whole frames so that
// interleaving stays aligned across calls.
func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	return s.dec.Read(dst[:whole])
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newSource(dec)
}

func newSource(dec valueReader) (*source, error) {
	if dec.Channels() < 1 || dec.SampleRate() < 1 {
		return nil, ErrUnsupportedVorbisLayout
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
