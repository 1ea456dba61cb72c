// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into capture sources using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit PCM at the stream's
// sample rate; the source converts it to float32 v/32768. Wrap the source
// in audio.NewMonoMixer to capture both channels instead of only the left.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//
// Decoding only; MP3 output is not supported.
package mp3
