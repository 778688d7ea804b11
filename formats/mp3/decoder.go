// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audsad/audio"
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/sample"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels  = 2
	frameSize = channels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec     mp3Reader
	format  dither.BufferFormat
	bufSize int
}

func newSource(dec mp3Reader, bufSize int) *source {
	if bufSize <= 0 {
		bufSize = 2048
	}
	return &source{
		dec: dec,
		format: dither.BufferFormat{
			Format:     sample.FormatS16LE,
			Channels:   channels,
			Order:      sample.Interleaved,
			SampleRate: dec.SampleRate(),
		},
		bufSize: bufSize,
	}
}

func (s *source) Format() dither.BufferFormat { return s.format }
func (s *source) Close() error                { return nil }
func (s *source) BufSize() int                { return s.bufSize }

// ReadFrames decodes straight into dst, which already has the decoder's
// byte layout.
func (s *source) ReadFrames(dst sample.Buffer, frames int) (int, error) {
	if frames <= 0 {
		return 0, nil
	}
	if n := s.format.Frames(dst); n < frames {
		return 0, fmt.Errorf("%w: dst holds %d of %d frames", dither.ErrBufferTooShort, n, frames)
	}

	p := dst.Planes[0][:frames*frameSize]
	n, err := io.ReadFull(s.dec, p)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.EOF
	}
	if err != nil && err != io.EOF {
		return n / frameSize, fmt.Errorf("decoding mp3: %w", err)
	}

	return n / frameSize, err
}

// Decoder decodes MPEG-1/2 Layer III streams with github.com/hajimehoshi/go-mp3.
// Sources report s16le interleaved stereo whatever the stream's channel mode.
type Decoder struct {
	// BufSize is the preferred read size in frames. Zero means 2048.
	BufSize int
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec, d.BufSize), nil
}
