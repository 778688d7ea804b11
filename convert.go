// SPDX-License-Identifier: EPL-2.0

package audsad

import (
	"fmt"
	"io"

	"github.com/ik5/audsad/audio"
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/formats/wav"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

// Options configure Convert and ConvertWAV.
type Options struct {
	// ReplayGain selects the gain applied to sources that carry ReplayGain
	// metadata.
	ReplayGain replaygain.Mode
	// Converter options for the final conversion, e.g. dither.WithSeed.
	Converter []dither.Option
}

// Pipeline builds the conversion chain from src to out without reading
// from it. Zero Channels and SampleRate in out keep the source's values.
//
// A source that already matches out's channels and rate is converted in a
// single step, so integer input reaches the output without passing through
// float. Otherwise the stream is taken to float (with ReplayGain applied),
// resampled, mixed down to mono when out.Channels is 1, and converted to
// out.
func Pipeline(src audio.Source, out dither.BufferFormat, opts Options) (*audio.DitherStage, error) {
	in := src.Format()
	if out.Channels == 0 {
		out.Channels = in.Channels
	}
	if out.SampleRate == 0 {
		out.SampleRate = in.SampleRate
	}

	resample := out.SampleRate != in.SampleRate
	mono := out.Channels == 1 && in.Channels > 1
	if !resample && !mono {
		return audio.NewDitherStage(src, out, opts.ReplayGain, opts.Converter...)
	}

	var (
		pipe audio.Source
		err  error
	)
	pipe, err = audio.NewDitherStage(src, audio.FloatFormat(in), opts.ReplayGain)
	if err != nil {
		return nil, err
	}
	if resample {
		if pipe, err = audio.NewResampler(pipe, out.SampleRate); err != nil {
			return nil, err
		}
	}
	if mono {
		if pipe, err = audio.NewMonoMixer(pipe); err != nil {
			return nil, err
		}
	}

	return audio.NewDitherStage(pipe, out, replaygain.Mode{}, opts.Converter...)
}

// Convert reads the whole of src converted to out and returns the buffer
// together with its frame count. src is closed when Convert returns.
func Convert(src audio.Source, out dither.BufferFormat, opts Options) (sample.Buffer, dither.BufferFormat, int, error) {
	stage, err := Pipeline(src, out, opts)
	if err != nil {
		_ = src.Close()
		return sample.Buffer{}, out, 0, err
	}
	defer stage.Close()

	buf, frames, err := audio.ReadAll(stage)
	if err != nil {
		return sample.Buffer{}, stage.Format(), 0, fmt.Errorf("converting: %w", err)
	}
	return buf, stage.Format(), frames, nil
}

// ConvertWAV decodes a PCM WAV file from r and writes it to w with bits
// bits per sample, keeping its channels and rate. 8-bit output is
// unsigned, as WAV requires. It returns the number of frames written.
func ConvertWAV(r io.Reader, w io.Writer, bits int, opts Options) (int, error) {
	f, err := sample.IntFormat(bits, bits > 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedWAVBits, bits)
	}

	src, err := wav.Decoder{}.Decode(r)
	if err != nil {
		return 0, err
	}

	buf, format, frames, err := Convert(src, dither.BufferFormat{Format: f}, opts)
	if err != nil {
		return 0, err
	}

	if err := wav.WritePCM(w, format, buf, frames); err != nil {
		return 0, err
	}
	return frames, nil
}
