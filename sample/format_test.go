// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestFormat_Properties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		bits   int
		width  int
		signed bool
		order  binary.ByteOrder
	}{
		{FormatS8, 8, 1, true, binary.NativeEndian},
		{FormatU8, 8, 1, false, binary.NativeEndian},
		{FormatS16BE, 16, 2, true, binary.BigEndian},
		{FormatU16LE, 16, 2, false, binary.LittleEndian},
		{FormatS24, 24, 4, true, binary.NativeEndian},
		{FormatU32BE, 32, 4, false, binary.BigEndian},
		{FormatFixed32, 32, 4, true, binary.NativeEndian},
		{FormatFloat, 32, 4, true, binary.NativeEndian},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.format.Bits(); got != tt.bits {
				t.Errorf("Bits() = %d, want %d", got, tt.bits)
			}
			if got := tt.format.Width(); got != tt.width {
				t.Errorf("Width() = %d, want %d", got, tt.width)
			}
			if got := tt.format.Signed(); got != tt.signed {
				t.Errorf("Signed() = %v, want %v", got, tt.signed)
			}
			if got := tt.format.ByteOrder(); got != tt.order {
				t.Errorf("ByteOrder() = %v, want %v", got, tt.order)
			}
		})
	}
}

func TestFormat_Invalid(t *testing.T) {
	t.Parallel()

	f := Format(99)
	if f.Valid() {
		t.Error("Format(99).Valid() = true")
	}
	if f.Bits() != 0 || f.Width() != 0 {
		t.Errorf("Format(99) Bits/Width = %d/%d, want 0/0", f.Bits(), f.Width())
	}
	if f.String() != "Format(99)" {
		t.Errorf("String() = %q", f.String())
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for f := range formatMax {
		got, err := ParseFormat(" " + f.String() + " ")
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
	}

	if _, err := ParseFormat("s12"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ParseFormat(s12) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestIntFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits   int
		signed bool
		want   Format
	}{
		{8, true, FormatS8},
		{8, false, FormatU8},
		{16, true, FormatS16},
		{24, false, FormatU24},
		{32, true, FormatS32},
		{32, false, FormatU32},
	}

	for _, tt := range tests {
		got, err := IntFormat(tt.bits, tt.signed)
		if err != nil || got != tt.want {
			t.Errorf("IntFormat(%d, %v) = %v, %v; want %v", tt.bits, tt.signed, got, err, tt.want)
		}
	}

	if _, err := IntFormat(12, true); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("IntFormat(12) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestBuffer_Frames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		buf      Buffer
		format   Format
		order    Order
		channels int
		want     int
	}{
		{"interleaved s16", NewInterleaved(make([]byte, 17)), FormatS16, Interleaved, 2, 4},
		{"separated s24", NewSeparated(make([]byte, 40), make([]byte, 36)), FormatS24, Separated, 2, 9},
		{"separated missing plane", NewSeparated(make([]byte, 40)), FormatS24, Separated, 2, 0},
		{"interleaved float", NewInterleavedFloat(make([]float32, 9)), FormatFloat, Interleaved, 2, 4},
		{"separated float", NewSeparatedFloat(make([]float32, 5), make([]float32, 3)), FormatFloat, Separated, 2, 3},
		{"empty", Buffer{}, FormatS8, Interleaved, 1, 0},
		{"zero channels", NewInterleaved(make([]byte, 8)), FormatS8, Interleaved, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.buf.Frames(tt.format, tt.order, tt.channels); got != tt.want {
				t.Errorf("Frames() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuffer_Slice(t *testing.T) {
	t.Parallel()

	buf := NewInterleaved([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	s := buf.Slice(FormatS16, Interleaved, 2, 1, 2)
	if len(s.Planes[0]) != 4 || s.Planes[0][0] != 4 {
		t.Errorf("Slice() = % x, want 04 05 06 07", s.Planes[0])
	}

	fb := NewSeparatedFloat([]float32{1, 2, 3}, []float32{4, 5, 6})
	fs := fb.Slice(FormatFloat, Separated, 2, 1, 3)
	if len(fs.Floats[1]) != 2 || fs.Floats[1][0] != 5 {
		t.Errorf("Slice() float = %v, want [5 6]", fs.Floats[1])
	}
}
