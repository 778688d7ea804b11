// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audsad/audio"
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// frameReader is the part of flac.Stream a source reads audio from.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

// source hands out FLAC audio block by block. FLAC stores every channel in
// its own subframe, so the source uses separated planes.
type source struct {
	dec    frameReader
	format dither.BufferFormat
	acc    sample.Accessor
	// shift widens odd bit depths (12, 20, ...) to the container format.
	shift   int
	gain    replaygain.Info
	bufSize int

	cur  *frame.Frame
	pos  int
	done bool
}

func newSource(dec frameReader, info *meta.StreamInfo, gain replaygain.Info) (*source, error) {
	if info == nil || info.NChannels < 1 {
		return nil, fmt.Errorf("%w: missing stream info", ErrNotFlacFile)
	}

	bits := int(info.BitsPerSample)
	f, err := sampleFormat(bits)
	if err != nil {
		return nil, err
	}

	format := dither.BufferFormat{
		Format:     f,
		Channels:   int(info.NChannels),
		Order:      sample.Separated,
		SampleRate: int(info.SampleRate),
	}
	acc, err := sample.Lookup(format.Format, format.Order)
	if err != nil {
		return nil, err
	}

	bufSize := int(info.BlockSizeMax)
	if bufSize <= 0 {
		bufSize = 4096
	}

	return &source{
		dec:     dec,
		format:  format,
		acc:     acc,
		shift:   f.Bits() - bits,
		gain:    gain,
		bufSize: bufSize,
	}, nil
}

func (s *source) Format() dither.BufferFormat { return s.format }
func (s *source) BufSize() int                { return s.bufSize }

// ReplayGain reports the REPLAYGAIN_* tags of the VORBIS_COMMENT block.
func (s *source) ReplayGain() replaygain.Info { return s.gain }

func (s *source) Close() error {
	s.done = true
	s.cur = nil
	return nil
}

func (s *source) ReadFrames(dst sample.Buffer, frames int) (int, error) {
	if frames <= 0 {
		return 0, nil
	}
	if n := s.format.Frames(dst); n < frames {
		return 0, fmt.Errorf("%w: dst holds %d of %d frames", dither.ErrBufferTooShort, n, frames)
	}

	ch := s.format.Channels
	written := 0
	for written < frames {
		if s.cur == nil || s.pos >= int(s.cur.BlockSize) {
			if s.done {
				return written, io.EOF
			}
			if err := s.next(); err != nil {
				if err == io.EOF {
					s.done = true
					return written, io.EOF
				}
				return written, err
			}
			continue
		}

		n := min(frames-written, int(s.cur.BlockSize)-s.pos)
		for c := range ch {
			src := s.cur.Subframes[c].Samples[s.pos : s.pos+n]
			for i, v := range src {
				s.acc.Put(dst, v<<s.shift, ch, c, written+i)
			}
		}
		s.pos += n
		written += n
	}

	return written, nil
}

func (s *source) next() error {
	fr, err := s.dec.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("decoding flac frame: %w", err)
	}

	if len(fr.Subframes) != s.format.Channels {
		return fmt.Errorf("%w: %d subframes for %d channels", ErrCorruptFrame, len(fr.Subframes), s.format.Channels)
	}
	for _, sub := range fr.Subframes {
		if len(sub.Samples) < int(fr.BlockSize) {
			return fmt.Errorf("%w: subframe holds %d of %d samples", ErrCorruptFrame, len(sub.Samples), fr.BlockSize)
		}
	}

	s.cur = fr
	s.pos = 0
	return nil
}

// sampleFormat picks the narrowest signed container for bits.
func sampleFormat(bits int) (sample.Format, error) {
	switch {
	case bits < 4 || bits > 32:
		return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bits)
	case bits <= 8:
		return sample.FormatS8, nil
	case bits <= 16:
		return sample.FormatS16, nil
	case bits <= 24:
		return sample.FormatS24, nil
	}
	return sample.FormatS32, nil
}

// Decoder decodes FLAC streams with github.com/mewkiz/flac. Sources report
// separated signed integer planes of 8, 16, 24 or 32 bits and expose
// ReplayGain tags through audio.GainReporter.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	src, err := newSource(stream, stream.Info, gainFromBlocks(stream.Blocks))
	if err != nil {
		return nil, err
	}
	return src, nil
}

func gainFromBlocks(blocks []*meta.Block) replaygain.Info {
	for _, b := range blocks {
		if vc, ok := b.Body.(*meta.VorbisComment); ok {
			return replaygain.FromPairs(vc.Tags)
		}
	}
	return replaygain.Info{}
}
