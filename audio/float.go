// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

// FloatFormat is the interleaved float layout with f's channels and rate.
func FloatFormat(f dither.BufferFormat) dither.BufferFormat {
	return dither.BufferFormat{
		Format:     sample.FormatFloat,
		Channels:   f.Channels,
		Order:      sample.Interleaved,
		SampleRate: f.SampleRate,
	}
}

func isFloatInterleaved(f dither.BufferFormat) bool {
	return f.Format.IsFloat() && f.Order == sample.Interleaved
}

// AsFloat returns src itself when it already yields interleaved float
// samples and otherwise wraps it in a DitherStage producing them.
func AsFloat(src Source) (Source, error) {
	if isFloatInterleaved(src.Format()) {
		return src, nil
	}
	return NewDitherStage(src, FloatFormat(src.Format()), replaygain.Mode{})
}

// ReadSamples reads interleaved float32 samples in [-1,1] from a source
// whose format is interleaved float. Returns number of float32 values
// written (not frames).
func ReadSamples(src Source, dst []float32) (int, error) {
	f := src.Format()
	if !isFloatInterleaved(f) {
		return 0, ErrFormatMismatch
	}
	if len(dst)%f.Channels != 0 {
		return 0, ErrInvalidDstSize
	}

	n, err := src.ReadFrames(sample.NewInterleavedFloat(dst), len(dst)/f.Channels)
	return n * f.Channels, err
}

// floatFrames returns the float32 slice a float stage should fill for
// frames frames of dst.
func floatFrames(dst sample.Buffer, channels, frames int) ([]float32, error) {
	if len(dst.Floats) != 1 {
		return nil, ErrFormatMismatch
	}
	if len(dst.Floats[0]) < frames*channels {
		return nil, ErrInvalidDstSize
	}
	return dst.Floats[0][:frames*channels], nil
}
