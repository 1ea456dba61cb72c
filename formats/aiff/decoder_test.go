// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates aiff.Decoder, including its empty read at the
// end of the sound chunk.
type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	err        error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

// createAIFFFile encodes samples with go-audio's AIFF encoder.
func createAIFFFile(t *testing.T, rate, bitDepth, channels int, samples []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	enc := aiff.NewEncoder(f, rate, bitDepth, channels)
	buf := &goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{SampleRate: rate, NumChannels: channels},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	return data
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, -16384, 32767, -32768, 1}
	data := createAIFFFile(t, 22050, 16, 2, samples)

	tests := []struct {
		name string
		r    io.Reader
	}{
		{name: "seekable", r: bytes.NewReader(data)},
		{name: "stream", r: io.MultiReader(bytes.NewReader(data))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(tt.r)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != 22050 || src.Channels() != 2 {
				t.Errorf("format = %d Hz/%d ch, want 22050 Hz/2 ch", src.SampleRate(), src.Channels())
			}

			var got []float32
			dst := make([]float32, 4)
			for {
				n, err := src.ReadSamples(dst)
				got = append(got, dst[:n]...)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != len(samples) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
			}
			for i, v := range samples {
				if want := float32(v) / 32768; got[i] != want {
					t.Errorf("sample %d = %v, want %v", i, got[i], want)
				}
			}
		})
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("This is not AIFF data")},
		{name: "empty", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestNewSource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		bitDepth int
		want     error
	}{
		{name: "12-bit", rate: 44100, channels: 1, bitDepth: 12, want: ErrUnsupportedBitDepth},
		{name: "zero channels", rate: 44100, channels: 0, bitDepth: 16, want: ErrUnsupportedAiffLayout},
		{name: "zero rate", rate: 0, channels: 1, bitDepth: 16, want: ErrUnsupportedAiffLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newSource(&mockAiffReader{sampleRate: tt.rate, channels: tt.channels}, tt.bitDepth)
			if !errors.Is(err, tt.want) {
				t.Errorf("newSource() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		input    int
		expected float32
	}{
		{"8-bit max", 8, 127, 127.0 / 128.0},
		{"8-bit min", 8, -128, -1.0},
		{"16-bit max", 16, 32767, 32767.0 / 32768.0},
		{"16-bit min", 16, -32768, -1.0},
		{"24-bit", 24, 8388607, 8388607.0 / 8388608.0},
		{"32-bit", 32, 2147483647, 2147483647.0 / 2147483648.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := newSource(&mockAiffReader{sampleRate: 44100, channels: 1, samples: []int{tt.input}}, tt.bitDepth)
			if err != nil {
				t.Fatalf("newSource() error = %v", err)
			}

			dst := make([]float32, 1)
			if n, _ := src.ReadSamples(dst); n != 1 {
				t.Fatalf("ReadSamples() n = %d, want 1", n)
			}

			if dst[0] != tt.expected {
				t.Errorf("ReadSamples() dst[0] = %v, want %v", dst[0], tt.expected)
			}
		})
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src, err := newSource(&mockAiffReader{sampleRate: 8000, channels: 1, samples: []int{1, 2, 3}}, 16)
	if err != nil {
		t.Fatalf("newSource() error = %v", err)
	}

	dst := make([]float32, 4)
	if n, err := src.ReadSamples(dst); n != 3 || err != nil {
		t.Errorf("first read = (%d, %v), want (3, nil)", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("second read = (%d, %v), want (0, EOF)", n, err)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("empty read = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	mock := &mockAiffReader{sampleRate: 8000, channels: 1, err: io.ErrUnexpectedEOF}
	src, err := newSource(mock, 16)
	if err != nil {
		t.Fatalf("newSource() error = %v", err)
	}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src, err := newSource(&mockAiffReader{sampleRate: 8000, channels: 1, samples: make([]int, 10000)}, 16)
	if err != nil {
		t.Fatalf("newSource() error = %v", err)
	}

	if src.BufSize() != defaultBufSize {
		t.Errorf("BufSize() before read = %d, want %d", src.BufSize(), defaultBufSize)
	}

	_, _ = src.ReadSamples(make([]float32, 8192))
	if src.BufSize() != 8192 {
		t.Errorf("BufSize() after read = %d, want 8192", src.BufSize())
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	mock := &mockAiffReader{sampleRate: 44100, channels: 2, samples: make([]int, 4096)}
	src, _ := newSource(mock, 16)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		mock.offset = 0
		_, _ = src.ReadSamples(dst)
	}
}
