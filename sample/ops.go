// SPDX-License-Identifier: EPL-2.0

package sample

import "fmt"

// Accessor reads and writes single samples of one (format, order) pair.
// Values are centred signed integers: unsigned formats are offset so that 0
// is silence. Bounds are the caller's responsibility.
type Accessor interface {
	Get(b Buffer, channels, ch, i int) int32
	Put(b Buffer, v int32, channels, ch, i int)
}

type codec struct {
	width  int
	decode func(p []byte) int32
	encode func(p []byte, v int32)
}

type ops struct {
	codec
	order Order
}

func (o ops) slot(b Buffer, channels, ch, i int) []byte {
	if o.order == Interleaved {
		off := (i*channels + ch) * o.width
		return b.Planes[0][off : off+o.width]
	}
	off := i * o.width
	return b.Planes[ch][off : off+o.width]
}

func (o ops) Get(b Buffer, channels, ch, i int) int32 {
	return o.decode(o.slot(b, channels, ch, i))
}

func (o ops) Put(b Buffer, v int32, channels, ch, i int) {
	o.encode(o.slot(b, channels, ch, i), v)
}

// expand24 sign-extends the low 24 bits of x.
func expand24(x uint32) int32 {
	return int32(x<<8) >> 8
}

func codecFor(f Format) (codec, bool) {
	bo := f.ByteOrder()

	switch f {
	case FormatS8:
		return codec{1,
			func(p []byte) int32 { return int32(int8(p[0])) },
			func(p []byte, v int32) { p[0] = byte(v) },
		}, true
	case FormatU8:
		return codec{1,
			func(p []byte) int32 { return int32(p[0]) - 128 },
			func(p []byte, v int32) { p[0] = byte(v + 128) },
		}, true
	case FormatS16, FormatS16LE, FormatS16BE:
		return codec{2,
			func(p []byte) int32 { return int32(int16(bo.Uint16(p))) },
			func(p []byte, v int32) { bo.PutUint16(p, uint16(v)) },
		}, true
	case FormatU16, FormatU16LE, FormatU16BE:
		return codec{2,
			func(p []byte) int32 { return int32(bo.Uint16(p)) - 32768 },
			func(p []byte, v int32) { bo.PutUint16(p, uint16(v+32768)) },
		}, true
	case FormatS24, FormatS24LE, FormatS24BE:
		return codec{4,
			func(p []byte) int32 { return expand24(bo.Uint32(p)) },
			func(p []byte, v int32) { bo.PutUint32(p, uint32(v)&0x00ffffff) },
		}, true
	case FormatU24, FormatU24LE, FormatU24BE:
		return codec{4,
			func(p []byte) int32 { return int32(bo.Uint32(p)&0x00ffffff) - 8388608 },
			func(p []byte, v int32) { bo.PutUint32(p, uint32(v+8388608)&0x00ffffff) },
		}, true
	case FormatS32, FormatS32LE, FormatS32BE, FormatFixed32:
		return codec{4,
			func(p []byte) int32 { return int32(bo.Uint32(p)) },
			func(p []byte, v int32) { bo.PutUint32(p, uint32(v)) },
		}, true
	case FormatU32, FormatU32LE, FormatU32BE:
		return codec{4,
			func(p []byte) int32 { return int32(bo.Uint32(p) ^ 0x80000000) },
			func(p []byte, v int32) { bo.PutUint32(p, uint32(v)^0x80000000) },
		}, true
	}

	return codec{}, false
}

var table = buildTable()

func buildTable() [formatMax][orderMax]Accessor {
	var t [formatMax][orderMax]Accessor
	for f := range formatMax {
		c, ok := codecFor(f)
		if !ok {
			continue
		}
		for o := range orderMax {
			t[f][o] = ops{codec: c, order: o}
		}
	}
	return t
}

// Lookup returns the accessor for f laid out in order o. Float buffers are
// addressed directly and have no accessor.
func Lookup(f Format, o Order) (Accessor, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedOrder, o)
	}
	if !f.Valid() || table[f][o] == nil {
		return nil, fmt.Errorf("%w: %v/%v", ErrUnsupportedFormat, f, o)
	}
	return table[f][o], nil
}

// PutInts stores vals (interleaved, centred) into an interleaved buffer of format f.
func PutInts(f Format, channels int, vals []int32) (Buffer, error) {
	acc, err := Lookup(f, Interleaved)
	if err != nil {
		return Buffer{}, err
	}
	b := NewInterleaved(make([]byte, len(vals)*f.Width()))
	for n, v := range vals {
		acc.Put(b, v, channels, n%channels, n/channels)
	}
	return b, nil
}

// Ints reads frames frames from an interleaved buffer of format f.
func Ints(f Format, b Buffer, channels, frames int) ([]int32, error) {
	acc, err := Lookup(f, Interleaved)
	if err != nil {
		return nil, err
	}
	out := make([]int32, frames*channels)
	for n := range out {
		out[n] = acc.Get(b, channels, n%channels, n/channels)
	}
	return out, nil
}
