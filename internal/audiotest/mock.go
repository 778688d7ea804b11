// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic sources for tests. They satisfy
// audio.Source without importing the audio package.
package audiotest

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/sample"
)

// Waveform returns the value of channel ch at frame i.
type Waveform func(i, ch int) float32

// MockSource generates interleaved float audio from a Waveform.
type MockSource struct {
	format dither.BufferFormat
	frames int
	pos    int
	wave   Waveform
	closed bool
}

// NewMockSource returns a source of frames frames of wave.
func NewMockSource(sampleRate, channels, frames int, wave func(i, ch int) float32) *MockSource {
	return &MockSource{
		format: dither.BufferFormat{
			Format:     sample.FormatFloat,
			Channels:   channels,
			Order:      sample.Interleaved,
			SampleRate: sampleRate,
		},
		frames: frames,
		wave:   wave,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource returns a full scale sine of frequency Hz on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	w := 2 * math.Pi * frequency / float64(sampleRate)
	return NewMockSource(sampleRate, channels, frames, func(i, _ int) float32 {
		return float32(math.Sin(w * float64(i)))
	})
}

func (m *MockSource) Format() dither.BufferFormat { return m.format }
func (m *MockSource) SampleRate() int             { return m.format.SampleRate }
func (m *MockSource) Channels() int               { return m.format.Channels }
func (m *MockSource) BufSize() int                { return 4096 }
func (m *MockSource) Closed() bool                { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() { m.pos = 0 }

func (m *MockSource) ReadFrames(dst sample.Buffer, frames int) (int, error) {
	if frames <= 0 {
		return 0, nil
	}
	if have := m.format.Frames(dst); have < frames {
		return 0, fmt.Errorf("%w: dst holds %d of %d frames", dither.ErrBufferTooShort, have, frames)
	}
	n, err := m.ReadSamples(dst.Floats[0][:frames*m.format.Channels])
	return n / m.format.Channels, err
}

// ReadSamples fills dst with whole frames and returns the number of values
// written.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= m.frames {
		return 0, io.EOF
	}

	ch := m.format.Channels
	n := min(len(dst)/ch, m.frames-m.pos)
	for i := range n {
		for c := range ch {
			dst[i*ch+c] = m.wave(m.pos+i, c)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * ch, io.EOF
	}
	return n * ch, nil
}
