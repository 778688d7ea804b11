// SPDX-License-Identifier: EPL-2.0

package dither

import (
	"fmt"

	"github.com/ik5/audsad/sample"
)

// BufferFormat describes the PCM layout of a buffer handed to a Converter.
type BufferFormat struct {
	Format sample.Format
	// FracBits is the number of fractional bits of sample.FormatFixed32 and
	// is ignored for every other format.
	FracBits   int
	Channels   int
	Order      sample.Order
	SampleRate int
}

// bits returns the integer precision of f, or 0 for float and fixed-point.
func (f BufferFormat) bits() int {
	if f.Format.IsFloat() || f.Format.IsFixed() {
		return 0
	}
	return f.Format.Bits()
}

// fracBits returns FracBits for fixed-point formats and 0 otherwise.
func (f BufferFormat) fracBits() int {
	if !f.Format.IsFixed() {
		return 0
	}
	return f.FracBits
}

func (f BufferFormat) String() string {
	s := f.Format.String()
	if f.Format.IsFixed() {
		s = fmt.Sprintf("%s(q%d)", s, f.FracBits)
	}
	return fmt.Sprintf("%s %dch %v %dHz", s, f.Channels, f.Order, f.SampleRate)
}

// Frames reports how many complete frames b holds in format f.
func (f BufferFormat) Frames(b sample.Buffer) int {
	return b.Frames(f.Format, f.Order, f.Channels)
}

// Alloc returns a buffer of frames frames in format f.
func (f BufferFormat) Alloc(frames int) sample.Buffer {
	return sample.Alloc(f.Format, f.Order, f.Channels, frames)
}
