// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Format identifies how a single PCM sample is stored.
type Format int

const (
	FormatS8 Format = iota
	FormatU8
	FormatS16
	FormatS16LE
	FormatS16BE
	FormatU16
	FormatU16LE
	FormatU16BE
	FormatS24
	FormatS24LE
	FormatS24BE
	FormatU24
	FormatU24LE
	FormatU24BE
	FormatS32
	FormatS32LE
	FormatS32BE
	FormatU32
	FormatU32LE
	FormatU32BE
	// FormatFixed32 is a native-endian 32-bit fixed-point value; the number
	// of fractional bits is carried next to the format by the caller.
	FormatFixed32
	// FormatFloat is a native float32 in [-1, 1].
	FormatFloat

	formatMax
)

// Order is the channel layout of a buffer.
type Order int

const (
	// Interleaved stores all channels of a frame next to each other (LRLR...).
	Interleaved Order = iota
	// Separated stores every channel in its own plane.
	Separated

	orderMax
)

type formatInfo struct {
	name   string
	bits   int
	width  int
	signed bool
	order  binary.ByteOrder
}

var formats = [formatMax]formatInfo{
	FormatS8:      {"s8", 8, 1, true, binary.NativeEndian},
	FormatU8:      {"u8", 8, 1, false, binary.NativeEndian},
	FormatS16:     {"s16", 16, 2, true, binary.NativeEndian},
	FormatS16LE:   {"s16le", 16, 2, true, binary.LittleEndian},
	FormatS16BE:   {"s16be", 16, 2, true, binary.BigEndian},
	FormatU16:     {"u16", 16, 2, false, binary.NativeEndian},
	FormatU16LE:   {"u16le", 16, 2, false, binary.LittleEndian},
	FormatU16BE:   {"u16be", 16, 2, false, binary.BigEndian},
	FormatS24:     {"s24", 24, 4, true, binary.NativeEndian},
	FormatS24LE:   {"s24le", 24, 4, true, binary.LittleEndian},
	FormatS24BE:   {"s24be", 24, 4, true, binary.BigEndian},
	FormatU24:     {"u24", 24, 4, false, binary.NativeEndian},
	FormatU24LE:   {"u24le", 24, 4, false, binary.LittleEndian},
	FormatU24BE:   {"u24be", 24, 4, false, binary.BigEndian},
	FormatS32:     {"s32", 32, 4, true, binary.NativeEndian},
	FormatS32LE:   {"s32le", 32, 4, true, binary.LittleEndian},
	FormatS32BE:   {"s32be", 32, 4, true, binary.BigEndian},
	FormatU32:     {"u32", 32, 4, false, binary.NativeEndian},
	FormatU32LE:   {"u32le", 32, 4, false, binary.LittleEndian},
	FormatU32BE:   {"u32be", 32, 4, false, binary.BigEndian},
	FormatFixed32: {"fixed32", 32, 4, true, binary.NativeEndian},
	FormatFloat:   {"float", 32, 4, true, binary.NativeEndian},
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool { return f >= 0 && f < formatMax }

// Bits is the nominal precision of the format: 8, 16, 24 or 32.
func (f Format) Bits() int {
	if !f.Valid() {
		return 0
	}
	return formats[f].bits
}

// Width is the number of bytes a single stored sample occupies.
// 24-bit samples live in 32-bit words with the high byte unused.
func (f Format) Width() int {
	if !f.Valid() {
		return 0
	}
	return formats[f].width
}

func (f Format) Signed() bool  { return f.Valid() && formats[f].signed }
func (f Format) IsFloat() bool { return f == FormatFloat }
func (f Format) IsFixed() bool { return f == FormatFixed32 }

// ByteOrder returns the byte order the format is stored in.
func (f Format) ByteOrder() binary.ByteOrder {
	if !f.Valid() {
		return binary.NativeEndian
	}
	return formats[f].order
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formats[f].name
}

// ParseFormat looks a format up by its short name (e.g. "s16le", "u8", "float").
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f := range formatMax {
		if formats[f].name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// IntFormat returns the native-endian integer format for bits (8, 16, 24, 32).
func IntFormat(bits int, signed bool) (Format, error) {
	var f Format
	switch bits {
	case 8:
		f = FormatS8
	case 16:
		f = FormatS16
	case 24:
		f = FormatS24
	case 32:
		f = FormatS32
	default:
		return 0, fmt.Errorf("%w: %d-bit", ErrUnsupportedFormat, bits)
	}
	if !signed {
		switch f {
		case FormatS8:
			f = FormatU8
		case FormatS16:
			f = FormatU16
		case FormatS24:
			f = FormatU24
		case FormatS32:
			f = FormatU32
		}
	}
	return f, nil
}

func (o Order) Valid() bool { return o >= 0 && o < orderMax }

func (o Order) String() string {
	switch o {
	case Interleaved:
		return "interleaved"
	case Separated:
		return "separated"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}
