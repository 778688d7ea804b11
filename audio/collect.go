// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

// ReadAll drains src into a single buffer laid out as src.Format() and
// returns it with its frame count. Reaching io.EOF is not an error.
func ReadAll(src Source) (sample.Buffer, int, error) {
	f := src.Format()

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	chunk := f.Alloc(size)
	all := f.Alloc(0)
	total := 0

	for {
		n, err := src.ReadFrames(chunk, size)
		if n > 0 {
			appendFrames(&all, chunk, f, n)
			total += n
		}

		if errors.Is(err, io.EOF) {
			return all, total, nil
		}
		if err != nil {
			return all, total, fmt.Errorf("%w", err)
		}
	}
}

func appendFrames(dst *sample.Buffer, src sample.Buffer, f dither.BufferFormat, frames int) {
	per := frames
	if f.Order == sample.Interleaved {
		per *= f.Channels
	}

	if f.Format.IsFloat() {
		for i := range dst.Floats {
			dst.Floats[i] = append(dst.Floats[i], src.Floats[i][:per]...)
		}
		return
	}

	w := f.Format.Width()
	for i := range dst.Planes {
		dst.Planes[i] = append(dst.Planes[i], src.Planes[i][:per*w]...)
	}
}

// ResampleToMono is a high-level convenience function that resamples audio
// to a target sample rate, converts it to mono and collects the whole
// stream in the out sample format.
//
// This function creates a processing pipeline:
//  1. Resamples the source audio to targetRate using cubic interpolation
//  2. Converts the resampled audio to mono by averaging channels
//  3. Converts to out with rounding and dither (see dither.New for opts)
//  4. Reads all frames from the pipeline
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm, frames, err := audio.ResampleToMono(src, 8000, sample.FormatS16)
//	// pcm now holds frames mono 16-bit frames at 8kHz
func ResampleToMono(src Source, targetRate int, out sample.Format, opts ...dither.Option) (sample.Buffer, int, error) {
	resampler, err := NewResampler(src, targetRate)
	if err != nil {
		return sample.Buffer{}, 0, err
	}
	mono, err := NewMonoMixer(resampler)
	if err != nil {
		return sample.Buffer{}, 0, err
	}

	stage, err := NewDitherStage(mono, dither.BufferFormat{Format: out, Order: sample.Interleaved}, replaygain.Mode{}, opts...)
	if err != nil {
		return sample.Buffer{}, 0, err
	}
	defer stage.Close()

	return ReadAll(stage)
}
