// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"

	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

// DitherStage converts a Source to another sample format through a
// dither.Converter. Channel count and sample rate are preserved.
type DitherStage struct {
	src  Source
	conv *dither.Converter
	in   dither.BufferFormat
	out  dither.BufferFormat

	tmp       sample.Buffer
	tmpFrames int
}

// NewDitherStage wraps src so that it yields samples in out. Zero Channels
// and SampleRate in out are taken from src.
//
// When mode selects a gain and src implements GainReporter, the stream's
// ReplayGain is applied to the converter.
func NewDitherStage(src Source, out dither.BufferFormat, mode replaygain.Mode, opts ...dither.Option) (*DitherStage, error) {
	in := src.Format()
	if out.Channels == 0 {
		out.Channels = in.Channels
	}
	if out.SampleRate == 0 {
		out.SampleRate = in.SampleRate
	}

	conv, err := dither.New(in, out, opts...)
	if err != nil {
		return nil, fmt.Errorf("dither stage: %w", err)
	}

	if gr, ok := src.(GainReporter); ok && mode.Mode != replaygain.ModeNone {
		if err := conv.ApplyReplayGain(gr.ReplayGain(), mode); err != nil {
			return nil, fmt.Errorf("dither stage: %w", err)
		}
	}

	return &DitherStage{
		src:  src,
		conv: conv,
		in:   in,
		out:  out,
	}, nil
}

func (d *DitherStage) Format() dither.BufferFormat { return d.out }
func (d *DitherStage) BufSize() int                { return d.src.BufSize() }

// Converter exposes the underlying converter so settings can be changed
// between reads.
func (d *DitherStage) Converter() *dither.Converter { return d.conv }

// Close closes the converter and the source, returning both errors.
func (d *DitherStage) Close() error {
	err := errors.Join(d.conv.Close(), d.src.Close())
	if err != nil {
		return fmt.Errorf("closing dither stage: %w", err)
	}
	return nil
}

func (d *DitherStage) ReadFrames(dst sample.Buffer, frames int) (int, error) {
	if frames <= 0 {
		return 0, nil
	}
	if d.out.Frames(dst) < frames {
		return 0, fmt.Errorf("%w: room for %d of %d frames", ErrInvalidDstSize, d.out.Frames(dst), frames)
	}

	// Grow the staging buffer only; shrinking would thrash on uneven reads.
	if d.tmpFrames < frames {
		d.tmp = d.in.Alloc(frames)
		d.tmpFrames = frames
	}

	n, err := d.src.ReadFrames(d.tmp, frames)
	if n > 0 {
		if cerr := d.conv.ProcessBuffer(d.tmp, dst, n); cerr != nil {
			return 0, fmt.Errorf("%w", cerr)
		}
	}

	return n, err
}
