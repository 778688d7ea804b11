// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/audsad/audio"
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/internal/intbuf"
	"github.com/ik5/audsad/sample"
)

// formatPCM is the fmt chunk tag of linear integer PCM.
const formatPCM = 1

// Decoder reads integer PCM WAV files through github.com/go-audio/wav.
//
// The resulting source reports the file's own sample format: u8 for 8-bit
// files and s16, s24 or s32 otherwise, always interleaved.
type Decoder struct {
	// BufSize is the preferred read size in frames. Zero means 4096.
	BufSize int
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intbuf.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	f, err := sampleFormat(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	format := dither.BufferFormat{
		Format:     f,
		Channels:   int(dec.NumChans),
		Order:      sample.Interleaved,
		SampleRate: int(dec.SampleRate),
	}

	opts := []intbuf.Option{intbuf.WithBufSize(d.BufSize)}
	if f == sample.FormatU8 {
		opts = append(opts, intbuf.WithBias(-128))
	}

	src, err := intbuf.New(dec, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	return src, nil
}

// sampleFormat maps a WAV bit depth to the sample format go-audio decodes
// it to. 8-bit WAV data is unsigned, every other depth is signed.
func sampleFormat(bits int) (sample.Format, error) {
	switch bits {
	case 8:
		return sample.FormatU8, nil
	case 16:
		return sample.FormatS16, nil
	case 24:
		return sample.FormatS24, nil
	case 32:
		return sample.FormatS32, nil
	}
	return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bits)
}
