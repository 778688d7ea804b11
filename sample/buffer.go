// SPDX-License-Identifier: EPL-2.0

package sample

// Buffer holds PCM data. Integer and fixed-point samples live in Planes as
// raw bytes, float samples in Floats. Interleaved buffers use a single plane,
// separated buffers one plane per channel.
type Buffer struct {
	Planes [][]byte
	Floats [][]float32
}

func NewInterleaved(data []byte) Buffer {
	return Buffer{Planes: [][]byte{data}}
}

func NewSeparated(planes ...[]byte) Buffer {
	return Buffer{Planes: planes}
}

func NewInterleavedFloat(data []float32) Buffer {
	return Buffer{Floats: [][]float32{data}}
}

func NewSeparatedFloat(planes ...[]float32) Buffer {
	return Buffer{Floats: planes}
}

// Alloc returns a zeroed buffer large enough for frames frames.
// Unsigned formats are zeroed at their storage minimum, not at silence.
func Alloc(f Format, o Order, channels, frames int) Buffer {
	planes := 1
	perPlane := frames * channels
	if o == Separated {
		planes = channels
		perPlane = frames
	}

	if f.IsFloat() {
		b := Buffer{Floats: make([][]float32, planes)}
		for i := range b.Floats {
			b.Floats[i] = make([]float32, perPlane)
		}
		return b
	}

	b := Buffer{Planes: make([][]byte, planes)}
	for i := range b.Planes {
		b.Planes[i] = make([]byte, perPlane*f.Width())
	}
	return b
}

// Frames reports how many complete frames b can address when interpreted
// with the given format, order and channel count.
func (b Buffer) Frames(f Format, o Order, channels int) int {
	if channels < 1 {
		return 0
	}

	if f.IsFloat() {
		switch o {
		case Interleaved:
			if len(b.Floats) < 1 {
				return 0
			}
			return len(b.Floats[0]) / channels
		case Separated:
			if len(b.Floats) < channels {
				return 0
			}
			n := len(b.Floats[0])
			for _, p := range b.Floats[1:channels] {
				n = min(n, len(p))
			}
			return n
		}
		return 0
	}

	w := f.Width()
	if w == 0 {
		return 0
	}
	switch o {
	case Interleaved:
		if len(b.Planes) < 1 {
			return 0
		}
		return len(b.Planes[0]) / (w * channels)
	case Separated:
		if len(b.Planes) < channels {
			return 0
		}
		n := len(b.Planes[0])
		for _, p := range b.Planes[1:channels] {
			n = min(n, len(p))
		}
		return n / w
	}
	return 0
}

// Slice returns a view of frames [from, to) of b.
func (b Buffer) Slice(f Format, o Order, channels, from, to int) Buffer {
	var out Buffer
	if f.IsFloat() {
		out.Floats = make([][]float32, len(b.Floats))
		for i, p := range b.Floats {
			if o == Interleaved {
				out.Floats[i] = p[from*channels : to*channels]
			} else {
				out.Floats[i] = p[from:to]
			}
		}
		return out
	}

	w := f.Width()
	out.Planes = make([][]byte, len(b.Planes))
	for i, p := range b.Planes {
		if o == Interleaved {
			out.Planes[i] = p[from*channels*w : to*channels*w]
		} else {
			out.Planes[i] = p[from*w : to*w]
		}
	}
	return out
}
