// SPDX-License-Identifier: EPL-2.0

package audcap

import (
	"github.com/ik5/audcap/audio"
	"github.com/ik5/audcap/formats/aiff"
	"github.com/ik5/audcap/formats/mp3"
	"github.com/ik5/audcap/formats/vorbis"
	"github.com/ik5/audcap/formats/wav"
)

// NewDecoderRegistry returns a registry with every bundled decoder, keyed
// by the file extensions it accepts.
func NewDecoderRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}
