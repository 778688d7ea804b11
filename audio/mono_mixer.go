// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/sample"
)

// MonoMixer averages the channels of src into one. Integer sources are
// converted to float first.
type MonoMixer struct {
	src      Source
	channels int
	scratch  []float32
}

func NewMonoMixer(src Source) (*MonoMixer, error) {
	src, err := AsFloat(src)
	if err != nil {
		return nil, fmt.Errorf("mono mixer: %w", err)
	}

	ch := src.Format().Channels
	if ch < 1 {
		return nil, fmt.Errorf("mono mixer: %w", dither.ErrInvalidChannels)
	}
	return &MonoMixer{src: src, channels: ch}, nil
}

func (m *MonoMixer) SampleRate() int { return m.src.Format().SampleRate }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Format() dither.BufferFormat {
	f := FloatFormat(m.src.Format())
	f.Channels = 1
	return f
}

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *MonoMixer) ReadFrames(dst sample.Buffer, frames int) (int, error) {
	buf, err := floatFrames(dst, 1, frames)
	if err != nil {
		return 0, err
	}
	return m.ReadSamples(buf)
}

// ReadSamples fills dst with mono samples, one per source frame.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.channels == 1 {
		return ReadSamples(m.src, dst)
	}

	ch := m.channels
	need := len(dst) * ch
	if cap(m.scratch) < need {
		m.scratch = make([]float32, need)
	}
	in := m.scratch[:need]

	n, err := ReadSamples(m.src, in)
	frames := n / ch

	gain := 1 / float32(ch)
	for i := range frames {
		var sum float32
		for _, v := range in[i*ch : (i+1)*ch] {
			sum += v
		}
		dst[i] = sum * gain
	}

	return frames, err
}
