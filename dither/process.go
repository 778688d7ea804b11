// SPDX-License-Identifier: EPL-2.0

package dither

import (
	"fmt"
	"math"

	"github.com/ik5/audsad/sample"
)

// workingBits is the intermediate precision narrower integer input is
// widened to before rounding, leaving headroom for scaling.
const workingBits = 29

// adaptCoefficient is how far the adaptive scaler moves toward the
// non-clipping gain on every overflowing sample.
const adaptCoefficient = 0.1

// sampleLimit bounds scaled intermediate samples, leaving room for the
// rounding bias and dither noise in an int64.
const sampleLimit = 1 << 62

// ProcessBuffer converts frames frames from in to out.
//
// Both buffers must be laid out as the converter's input and output
// formats. Values that do not fit the output are clamped, never wrapped.
func (c *Converter) ProcessBuffer(in, out sample.Buffer, frames int) error {
	if c.closed {
		return ErrClosed
	}
	if frames < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameCount, frames)
	}
	if n := c.in.Frames(in); n < frames {
		return fmt.Errorf("%w: input holds %d of %d frames", ErrBufferTooShort, n, frames)
	}
	if n := c.out.Frames(out); n < frames {
		return fmt.Errorf("%w: output holds %d of %d frames", ErrBufferTooShort, n, frames)
	}

	scale := c.scale * c.rgScale
	before := scale

	inFloat := c.in.Format.IsFloat()
	outFloat := c.out.Format.IsFloat()
	channels := c.channels

	switch {
	case inFloat && outFloat:
		for i := range frames {
			for ch := range channels {
				x := float64(floatAt(in, c.in.Order, channels, ch, i))
				setFloat(out, c.out.Order, channels, ch, i, float32(c.floatToFloat(x, scale)))
			}
		}

	case inFloat:
		if c.put == nil {
			return ErrCorruptedState
		}
		for i := range frames {
			for ch := range channels {
				x := float64(floatAt(in, c.in.Order, channels, ch, i))
				c.put.Put(out, c.floatToInt(x, &scale), channels, ch, i)
			}
		}

	case outFloat:
		if c.get == nil {
			return ErrCorruptedState
		}
		for i := range frames {
			for ch := range channels {
				v := c.get.Get(in, channels, ch, i)
				setFloat(out, c.out.Order, channels, ch, i, float32(c.fixedToFloat(v, scale)))
			}
		}

	default:
		if c.get == nil || c.put == nil {
			return ErrCorruptedState
		}
		for i := range frames {
			for ch := range channels {
				v := c.get.Get(in, channels, ch, i)
				c.put.Put(out, c.fixedToInt(v, &scale), channels, ch, i)
			}
		}
	}

	if c.adaptive && scale != before && c.scale != 0 {
		c.rgScale = scale / c.scale
	}

	return nil
}

func floatAt(b sample.Buffer, o sample.Order, channels, ch, i int) float32 {
	if o == sample.Interleaved {
		return b.Floats[0][i*channels+ch]
	}
	return b.Floats[ch][i]
}

func setFloat(b sample.Buffer, o sample.Order, channels, ch, i int, v float32) {
	if o == sample.Interleaved {
		b.Floats[0][i*channels+ch] = v
		return
	}
	b.Floats[ch][i] = v
}

// adapt pulls *scale toward the gain at which level would just reach full
// scale.
func adapt(scale *float64, level float64) {
	if level*(*scale) > 1.0 {
		*scale -= (*scale - 1.0/level) * adaptCoefficient
	}
}

func (c *Converter) floatToFloat(x, scale float64) float64 {
	if c.hardLimit {
		return HardLimit(x, scale)
	}
	return x * scale
}

func (c *Converter) fixedToFloat(v int32, scale float64) float64 {
	var x float64
	if c.inFrac == 0 {
		x = float64(v) / float64(int64(1)<<(c.inBits-1))
	} else {
		x = float64(v) / float64(int64(1)<<c.inFrac)
	}
	return c.floatToFloat(x, scale)
}

func (c *Converter) floatToInt(x float64, scale *float64) int32 {
	maxint := float64(int64(1) << (c.outBits - 1))

	switch {
	case c.adaptive:
		adapt(scale, math.Abs(x))
		x *= *scale
	case c.hardLimit:
		x = HardLimit(x, *scale)
	default:
		x *= *scale
	}

	x *= maxint
	if x < 0 {
		x -= 0.5
	} else {
		x += 0.5
	}

	if c.dither {
		x += c.noise.TriangularFloat()
	}

	switch {
	case math.IsNaN(x):
		return 0
	case x >= maxint:
		return int32(maxint - 1)
	case x <= -maxint-1:
		return int32(-maxint)
	}
	return int32(clamp(int64(x), int64(-maxint), int64(maxint-1)))
}

func (c *Converter) fixedToInt(v int32, scale *float64) int32 {
	maxint := int64(1) << (c.outBits - 1)
	s := int64(v)

	var shift, width int
	var loss bool

	if c.inFrac == 0 {
		width = c.inBits
		if c.inBits < workingBits {
			shift = workingBits - c.inBits
			s <<= shift
			width = workingBits
		}
		shift += c.inBits - c.outBits
		loss = c.inBits > c.outBits
	} else {
		width = c.inFrac + 1
		shift = c.inFrac + 1 - c.outBits
		loss = true
	}

	fullScale := float64(int64(1) << (width - 1))

	switch {
	case c.adaptive:
		adapt(scale, math.Abs(float64(s))/fullScale)
		if *scale != 1 {
			s = saturate(float64(s) * *scale)
		}
	case c.hardLimit:
		s = saturate(HardLimit(float64(s)/fullScale, *scale) * fullScale)
		loss = true
	case *scale != 1:
		s = saturate(float64(s) * *scale)
	}

	if *scale != 1 {
		loss = true
	}

	if shift > 0 {
		if loss {
			s += int64(1) << (shift - 1)
			if c.dither {
				s += int64(c.noise.Triangular(shift + 1))
			}
		}
		s >>= shift
	} else if shift < 0 {
		lim := maxint >> -shift
		switch {
		case s >= lim:
			return int32(maxint - 1)
		case s < -lim:
			return int32(-maxint)
		}
		s <<= -shift
	}

	return int32(clamp(s, -maxint, maxint-1))
}

// saturate converts a scaled sample back to an integer, pinning it to
// ±sampleLimit. NaN becomes 0.
func saturate(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= sampleLimit:
		return sampleLimit
	case x <= -sampleLimit:
		return -sampleLimit
	}
	return int64(x)
}

func clamp(v, lo, hi int64) int64 {
	return max(lo, min(hi, v))
}
