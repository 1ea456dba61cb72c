// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds deterministic sources and capture helpers shared by
// tests across the module.
package audiotest

import (
	"io"
	"math"
	"sync"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewRampSource produces Ramp(i) on channel 0 and its negation on every
// other channel, which makes channel mix-ups visible in assertions.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		if channel == 0 {
			return Ramp(sample)
		}
		return -Ramp(sample)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// Ramp is a deterministic sample sequence whose values are exact multiples
// of 1/32768, so they survive PCM16 truncation unchanged. The period is
// coprime with common frame sizes so misaligned frames are detectable.
func Ramp(i int) float32 {
	return float32(i%4093-2046) / 32768
}

// RampPCM16 is the PCM16 value Ramp(i) encodes to.
func RampPCM16(i int) int16 {
	return int16(i%4093 - 2046)
}

// RampSamples returns Ramp(start) .. Ramp(start+n-1).
func RampSamples(start, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = Ramp(start + i)
	}

	return out
}

// Capture is an in-memory output channel that records every emitted frame.
// It is safe for concurrent use.
type Capture struct {
	mu     sync.Mutex
	frames [][]byte
}

// Emit records frame. Ownership of frame passes to the capture.
func (c *Capture) Emit(frame []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frames = append(c.frames, frame)
}

// Frames returns the recorded frames in emission order.
func (c *Capture) Frames() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([][]byte, len(c.frames))
	copy(out, c.frames)

	return out
}

// Len returns the number of recorded frames.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.frames)
}

// Samples decodes every recorded frame as little-endian PCM16 and
// concatenates the result.
func (c *Capture) Samples() []int16 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []int16
	for _, f := range c.frames {
		for i := 0; i+1 < len(f); i += 2 {
			out = append(out, int16(uint16(f[i])|uint16(f[i+1])<<8))
		}
	}

	return out
}
