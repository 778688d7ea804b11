// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/sample"
)

// Writer encodes integer PCM buffers into a WAV file with
// github.com/go-audio/wav. The RIFF sizes are patched on Close, so the
// destination has to seek.
type Writer struct {
	enc    *wav.Encoder
	format dither.BufferFormat
	acc    sample.Accessor
	bias   int
	buf    *goaudio.IntBuffer
	closed bool
}

// NewWriter prepares a WAV writer for buffers laid out as format. Any
// integer sample format of 8, 16, 24 or 32 bits is accepted in either
// order; the file always stores little-endian interleaved data, unsigned
// for 8 bits and signed otherwise.
func NewWriter(ws io.WriteSeeker, format dither.BufferFormat) (*Writer, error) {
	bits, err := checkFormat(format)
	if err != nil {
		return nil, err
	}

	acc, err := sample.Lookup(format.Format, format.Order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	w := &Writer{
		enc:    wav.NewEncoder(ws, format.SampleRate, bits, format.Channels, formatPCM),
		format: format,
		acc:    acc,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: format.Channels, SampleRate: format.SampleRate},
			SourceBitDepth: bits,
		},
	}
	if bits == 8 {
		w.bias = 128
	}
	return w, nil
}

func (w *Writer) Format() dither.BufferFormat { return w.format }

// Write appends frames frames of buf.
func (w *Writer) Write(buf sample.Buffer, frames int) error {
	if w.closed {
		return ErrWriterClosed
	}
	if frames <= 0 {
		return nil
	}
	if n := w.format.Frames(buf); n < frames {
		return fmt.Errorf("%w: buffer holds %d of %d frames", dither.ErrBufferTooShort, n, frames)
	}

	ch := w.format.Channels
	want := frames * ch
	if cap(w.buf.Data) < want {
		w.buf.Data = make([]int, want)
	}
	w.buf.Data = w.buf.Data[:want]

	for i := range frames {
		for c := range ch {
			w.buf.Data[i*ch+c] = int(w.acc.Get(buf, ch, c, i)) + w.bias
		}
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	return nil
}

// Close finalises the headers. The underlying writer is left open.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalising wav: %w", err)
	}
	return nil
}

// WritePCM writes a complete WAV file holding frames frames of buf to a
// plain io.Writer. The data size is known up front, so no seeking is
// needed.
func WritePCM(w io.Writer, format dither.BufferFormat, buf sample.Buffer, frames int) error {
	bits, err := checkFormat(format)
	if err != nil {
		return err
	}
	if frames < 0 {
		return fmt.Errorf("%w: %d", dither.ErrInvalidFrameCount, frames)
	}
	if n := format.Frames(buf); n < frames {
		return fmt.Errorf("%w: buffer holds %d of %d frames", dither.ErrBufferTooShort, n, frames)
	}

	acc, err := sample.Lookup(format.Format, format.Order)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	ch := format.Channels
	width := bits / 8
	blockAlign := ch * width
	dataSize := uint32(frames * blockAlign)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(ch))
	binary.LittleEndian.PutUint32(header[24:28], uint32(format.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(format.SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(bits))
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	// Write 8KB-ish chunks of whole frames.
	chunkFrames := max(1, 8192/blockAlign)
	out := make([]byte, min(frames, chunkFrames)*blockAlign)

	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)
		p := out[:(end-start)*blockAlign]

		off := 0
		for i := start; i < end; i++ {
			for c := range ch {
				putLE(p[off:off+width], acc.Get(buf, ch, c, i), bits)
				off += width
			}
		}

		if _, err := w.Write(p); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}

func putLE(p []byte, v int32, bits int) {
	switch bits {
	case 8:
		p[0] = byte(v + 128)
	case 16:
		binary.LittleEndian.PutUint16(p, uint16(v))
	case 24:
		p[0] = byte(v)
		p[1] = byte(v >> 8)
		p[2] = byte(v >> 16)
	case 32:
		binary.LittleEndian.PutUint32(p, uint32(v))
	}
}

func checkFormat(format dither.BufferFormat) (int, error) {
	if format.Format.IsFloat() || format.Format.IsFixed() || !format.Format.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, format.Format)
	}
	if format.Channels < 1 {
		return 0, fmt.Errorf("%w: %d channels", ErrUnsupportedWavLayout, format.Channels)
	}
	if format.SampleRate < 1 {
		return 0, fmt.Errorf("%w: sample rate %d", ErrUnsupportedWavLayout, format.SampleRate)
	}

	bits := format.Format.Bits()
	switch bits {
	case 8, 16, 24, 32:
		return bits, nil
	}
	return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bits)
}
