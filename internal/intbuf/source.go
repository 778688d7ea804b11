// SPDX-License-Identifier: EPL-2.0

// Package intbuf adapts go-audio decoders, which fill interleaved
// audio.IntBuffer values, to audio.Source.
package intbuf

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/sample"
)

// DefaultBufSize is the read size in frames used when none is configured.
const DefaultBufSize = 4096

// PCMReader is the part of the go-audio wav and aiff decoders a Source
// needs.
type PCMReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams integer PCM from a PCMReader in its native sample format.
type Source struct {
	dec    PCMReader
	format dither.BufferFormat
	acc    sample.Accessor
	// bias is added to every decoded value to centre it on zero.
	bias    int32
	signed8 bool

	intBuf  *goaudio.IntBuffer
	bufSize int
	done    bool
}

// Option configures a Source.
type Option func(*Source)

// WithBias shifts every decoded value by bias. go-audio reports unsigned
// 8-bit WAV samples raw, so they need -128.
func WithBias(bias int32) Option {
	return func(s *Source) { s.bias = bias }
}

// WithSigned8 reinterprets decoded 8-bit values as two's complement bytes.
func WithSigned8() Option {
	return func(s *Source) { s.signed8 = true }
}

func WithBufSize(frames int) Option {
	return func(s *Source) {
		if frames > 0 {
			s.bufSize = frames
		}
	}
}

// New returns a Source reading format.Channels interleaved channels of
// format.Format from dec.
func New(dec PCMReader, format dither.BufferFormat, opts ...Option) (*Source, error) {
	if format.Channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", dither.ErrInvalidChannels, format.Channels)
	}
	format.Order = sample.Interleaved

	acc, err := sample.Lookup(format.Format, format.Order)
	if err != nil {
		return nil, err
	}

	s := &Source{
		dec:     dec,
		format:  format,
		acc:     acc,
		bufSize: DefaultBufSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Source) Format() dither.BufferFormat { return s.format }
func (s *Source) BufSize() int                { return s.bufSize }

// Close stops the stream. The reader handed to the decoder is not closed.
func (s *Source) Close() error {
	s.done = true
	return nil
}

// ReadFrames decodes up to frames frames into dst. A short read from the
// decoder marks the end of the stream; a trailing partial frame is dropped.
func (s *Source) ReadFrames(dst sample.Buffer, frames int) (int, error) {
	if frames <= 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}
	if n := s.format.Frames(dst); n < frames {
		return 0, fmt.Errorf("%w: dst holds %d of %d frames", dither.ErrBufferTooShort, n, frames)
	}

	ch := s.format.Channels
	want := frames * ch
	if s.intBuf == nil || cap(s.intBuf.Data) < want {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, want),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:want]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err == io.EOF {
		err = nil
		s.done = true
	}
	if err != nil {
		return 0, fmt.Errorf("reading pcm: %w", err)
	}
	if n < want {
		s.done = true
	}

	got := n / ch
	for i := range got {
		for c := range ch {
			v := s.intBuf.Data[i*ch+c]
			if s.signed8 {
				v = int(int8(v))
			}
			s.acc.Put(dst, int32(v)+s.bias, ch, c, i)
		}
	}

	if s.done {
		return got, io.EOF
	}
	return got, nil
}
