// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audsad/audio"
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/internal/intbuf"
	"github.com/ik5/audsad/sample"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder reads uncompressed AIFF files through github.com/go-audio/aiff.
// Sources report s8, s16, s24 or s32 interleaved samples.
type Decoder struct {
	// BufSize is the preferred read size in frames. Zero means 4096.
	BufSize int
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := intbuf.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	return newSource(dec, int(dec.BitDepth), d.BufSize)
}

func newSource(dec aiffReader, bitDepth, bufSize int) (audio.Source, error) {
	f, err := sampleFormat(bitDepth)
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	opts := []intbuf.Option{intbuf.WithBufSize(bufSize)}
	if f == sample.FormatS8 {
		opts = append(opts, intbuf.WithSigned8())
	}

	src, err := intbuf.New(dec, dither.BufferFormat{
		Format:     f,
		Channels:   format.NumChannels,
		Order:      sample.Interleaved,
		SampleRate: format.SampleRate,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}
	return src, nil
}

// sampleFormat maps an AIFF sample size to the native sample format.
// AIFF stores every depth signed, 8 bits included.
func sampleFormat(bits int) (sample.Format, error) {
	switch bits {
	case 8:
		return sample.FormatS8, nil
	case 16:
		return sample.FormatS16, nil
	case 24:
		return sample.FormatS24, nil
	case 32:
		return sample.FormatS32, nil
	}
	return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bits)
}
