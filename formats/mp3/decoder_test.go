// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audsad/audio"
	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	maxRead      int // bytes per Read call, 0 for unlimited
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrClosedPipe
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	bytesToRead := min(len(buf), (len(m.samples)-m.offset)*2)
	if m.maxRead > 0 {
		bytesToRead = min(bytesToRead, m.maxRead)
	}

	// Ensure we read complete samples (even number of bytes)
	samplesToRead := bytesToRead / 2

	for i := range samplesToRead {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(m.samples[m.offset+i]))
	}
	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead * 2, io.EOF
	}
	return samplesToRead * 2, nil
}

func readInts(t *testing.T, src audio.Source, dst sample.Buffer, frames int) ([]int32, error) {
	t.Helper()

	n, err := src.ReadFrames(dst, frames)
	vals, verr := sample.Ints(src.Format().Format, dst, channels, n)
	if verr != nil {
		t.Fatalf("sample.Ints() error = %v", verr)
	}
	return vals, err
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not MP3 data"), {}} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Format(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100}, 0)

	f := src.Format()
	if f.Format != sample.FormatS16LE || f.Channels != 2 || f.Order != sample.Interleaved || f.SampleRate != 44100 {
		t.Errorf("Format() = %v, want s16le 2ch interleaved 44100Hz", f)
	}
	if src.BufSize() != 2048 {
		t.Errorf("BufSize() = %d, want 2048", src.BufSize())
	}
	if newSource(&mockMP3Reader{}, 512).BufSize() != 512 {
		t.Error("BufSize override not applied")
	}
}

func TestSource_ReadFrames(t *testing.T) {
	t.Parallel()

	testSamples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}
	src := newSource(&mockMP3Reader{sampleRate: 8000, samples: testSamples}, 0)

	dst := src.Format().Alloc(4)
	got, err := readInts(t, src, dst, 4)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadFrames() error = %v", err)
	}
	if len(got) != len(testSamples) {
		t.Fatalf("read %d samples, want %d", len(got), len(testSamples))
	}
	for i := range testSamples {
		if got[i] != int32(testSamples[i]) {
			t.Errorf("sample %d = %d, want %d", i, got[i], testSamples[i])
		}
	}
}

func TestSource_ShortReadsAreFilled(t *testing.T) {
	t.Parallel()

	testSamples := make([]int16, 40)
	for i := range testSamples {
		testSamples[i] = int16(i)
	}

	// The decoder hands out 6 bytes per call, which splits frames.
	src := newSource(&mockMP3Reader{sampleRate: 8000, samples: testSamples, maxRead: 6}, 0)

	dst := src.Format().Alloc(8)
	got, err := readInts(t, src, dst, 8)
	if err != nil {
		t.Fatalf("ReadFrames() error = %v", err)
	}
	if len(got) != 16 {
		t.Fatalf("read %d samples, want 16", len(got))
	}
	for i := range got {
		if got[i] != int32(i) {
			t.Errorf("sample %d = %d, want %d", i, got[i], i)
		}
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 8000, samples: []int16{1, 2, 3, 4, 5, 6}}, 0)
	dst := src.Format().Alloc(2)

	n, err := src.ReadFrames(dst, 2)
	if n != 2 || err != nil {
		t.Fatalf("first ReadFrames() = %d, %v, want 2, nil", n, err)
	}
	n, err = src.ReadFrames(dst, 2)
	if n != 1 || err != io.EOF {
		t.Fatalf("second ReadFrames() = %d, %v, want 1, io.EOF", n, err)
	}
	n, err = src.ReadFrames(dst, 2)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadFrames() after EOF = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 8000, returnErrors: true}, 0)
	if _, err := src.ReadFrames(src.Format().Alloc(2), 2); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("ReadFrames() error = %v, want io.ErrClosedPipe", err)
	}

	src = newSource(&mockMP3Reader{sampleRate: 8000, samples: []int16{1, 2}}, 0)
	if _, err := src.ReadFrames(src.Format().Alloc(1), 2); !errors.Is(err, dither.ErrBufferTooShort) {
		t.Errorf("ReadFrames() error = %v, want ErrBufferTooShort", err)
	}
	if n, err := src.ReadFrames(src.Format().Alloc(1), 0); n != 0 || err != nil {
		t.Errorf("ReadFrames(0) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src := newSource(&mockMP3Reader{sampleRate: 44100}, 0)
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_DitherTo8Bit(t *testing.T) {
	t.Parallel()

	samples := []int16{256, -256, 32767, -32768}
	src := newSource(&mockMP3Reader{sampleRate: 44100, samples: samples}, 0)

	out := src.Format()
	out.Format = sample.FormatS8
	stage, err := audio.NewDitherStage(src, out, replaygain.Mode{}, dither.WithDither(false))
	if err != nil {
		t.Fatalf("NewDitherStage() error = %v", err)
	}

	dst := out.Alloc(2)
	n, err := stage.ReadFrames(dst, 2)
	if n != 2 || (err != nil && err != io.EOF) {
		t.Fatalf("ReadFrames() = %d, %v", n, err)
	}

	got, _ := sample.Ints(sample.FormatS8, dst, 2, 2)
	want := []int32{1, -1, 127, -128}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func BenchmarkSource_ReadFrames(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ReportAllocs()

	for b.Loop() {
		src := newSource(&mockMP3Reader{sampleRate: 44100, samples: samples}, 0)
		dst := src.Format().Alloc(4096)
		for {
			if _, err := src.ReadFrames(dst, 4096); err != nil {
				break
			}
		}
	}
}
