// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audsad/audio"
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
	"github.com/jfreymuth/oggvorbis"
	jvorbis "github.com/jfreymuth/vorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of values (frames * channels) decoded.
	Read([]float32) (int, error)
	CommentHeader() jvorbis.CommentHeader
}

type source struct {
	dec     oggReader
	format  dither.BufferFormat
	gain    replaygain.Info
	bufSize int
	done    bool
}

func newSource(dec oggReader, bufSize int) (*source, error) {
	if dec.Channels() < 1 {
		return nil, fmt.Errorf("%w: %d channels", dither.ErrInvalidChannels, dec.Channels())
	}
	if bufSize <= 0 {
		bufSize = 4096
	}

	return &source{
		dec: dec,
		format: dither.BufferFormat{
			Format:     sample.FormatFloat,
			Channels:   dec.Channels(),
			Order:      sample.Interleaved,
			SampleRate: dec.SampleRate(),
		},
		gain:    replaygain.FromComments(dec.CommentHeader().Comments),
		bufSize: bufSize,
	}, nil
}

func (s *source) Format() dither.BufferFormat { return s.format }
func (s *source) BufSize() int                { return s.bufSize }

// ReplayGain reports the REPLAYGAIN_* comments of the stream.
func (s *source) ReplayGain() replaygain.Info { return s.gain }

func (s *source) Close() error {
	s.done = true
	return nil
}

// ReadFrames decodes until dst holds frames frames or the stream ends.
func (s *source) ReadFrames(dst sample.Buffer, frames int) (int, error) {
	if frames <= 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	ch := s.format.Channels
	if n := s.format.Frames(dst); n < frames {
		return 0, fmt.Errorf("%w: dst holds %d of %d frames", dither.ErrBufferTooShort, n, frames)
	}

	p := dst.Floats[0][:frames*ch]
	total := 0
	for total < len(p) {
		n, err := s.dec.Read(p[total:])
		total += n

		if err == io.EOF {
			s.done = true
			return total / ch, io.EOF
		}
		if err != nil {
			return total / ch, fmt.Errorf("decoding vorbis: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return total / ch, nil
}

// Decoder decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
// Sources yield interleaved float samples and report the stream's
// ReplayGain comments through audio.GainReporter.
type Decoder struct {
	// BufSize is the preferred read size in frames. Zero means 4096.
	BufSize int
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec, d.BufSize)
}
