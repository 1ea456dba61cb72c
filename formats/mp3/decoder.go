// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audcap/audio"
	"github.com/ik5/audcap/utils"
)

// go-mp3 always decodes to interleaved stereo.
const outputChannels = 2

// pcmReader is the part of gomp3.Decoder the source needs.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

// ReadSamples fills dst from the decoder, gathering reads until dst is full
// or the decoder reports an error, so that samples never split across calls.
func (s *source) ReadSamples(dst []float32) (int, error) {
	need := 2 * len(dst)
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	var (
		got int
		err error
	)
	for got < need && err == nil {
		var n int
		n, err = s.dec.Read(buf[got:])
		if n == 0 && err == nil {
			break
		}
		got += n
	}

	// An odd trailing byte can only remain at the end of the stream.
	return utils.DecodePCM16LE(dst, buf[:got&^1]), err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}

func newSource(dec pcmReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}
}
