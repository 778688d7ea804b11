// SPDX-License-Identifier: EPL-2.0

package audsad

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audsad/dither"
	"github.com/ik5/audsad/formats/flac"
	"github.com/ik5/audsad/formats/vorbis"
	"github.com/ik5/audsad/formats/wav"
	"github.com/ik5/audsad/internal/audiotest"
	"github.com/ik5/audsad/replaygain"
	"github.com/ik5/audsad/sample"
)

func s16(channels, rate int) dither.BufferFormat {
	return dither.BufferFormat{Format: sample.FormatS16, Channels: channels, Order: sample.Interleaved, SampleRate: rate}
}

func noDither() Options {
	return Options{Converter: []dither.Option{dither.WithDither(false)}}
}

func TestConvert_IntegerPath(t *testing.T) {
	t.Parallel()

	src := audiotest.NewPCMSource(s16(2, 44100), []int32{256, -256, 32767, -32768, 0, 383})

	buf, format, frames, err := Convert(src, dither.BufferFormat{Format: sample.FormatS8}, noDither())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if frames != 3 {
		t.Fatalf("Convert() frames = %d, want 3", frames)
	}
	if format.Channels != 2 || format.SampleRate != 44100 {
		t.Errorf("Convert() format = %v, want 2ch 44100Hz", format)
	}

	got, _ := sample.Ints(sample.FormatS8, buf, 2, frames)
	want := []int32{1, -1, 127, -128, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
	if !src.Closed() {
		t.Error("Convert() left the source open")
	}
}

func TestConvert_ReplayGain(t *testing.T) {
	t.Parallel()

	src := audiotest.NewPCMSource(s16(1, 8000), []int32{16384, -16384, 8192}).
		WithReplayGain(replaygain.Info{Present: true, TrackGain: -6.0206, TrackPeak: 0.5})

	opts := noDither()
	opts.ReplayGain = replaygain.Mode{Mode: replaygain.ModeTrack}

	buf, _, frames, err := Convert(src, s16(1, 8000), opts)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	got, _ := sample.Ints(sample.FormatS16, buf, 1, frames)
	want := []int32{8192, -8192, 4096}
	for i := range want {
		if d := got[i] - want[i]; d < -1 || d > 1 {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestConvert_ResampleToMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 2, 44100, 440)

	_, format, frames, err := Convert(src, dither.BufferFormat{Format: sample.FormatS16, Channels: 1, SampleRate: 8000}, Options{})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if format.Channels != 1 || format.SampleRate != 8000 {
		t.Errorf("Convert() format = %v, want 1ch 8000Hz", format)
	}
	if frames < 7800 || frames > 8200 {
		t.Errorf("Convert() frames = %d, want about 8000", frames)
	}
}

func TestConvert_ReplayGainBeforeResampling(t *testing.T) {
	t.Parallel()

	vals := make([]int32, 2*1600)
	for i := range vals {
		vals[i] = 16384
	}
	src := audiotest.NewPCMSource(s16(2, 16000), vals).
		WithReplayGain(replaygain.Info{Present: true, AlbumGain: -6.0206, AlbumPeak: 0.5})

	opts := noDither()
	opts.ReplayGain = replaygain.Mode{Mode: replaygain.ModeAlbum}

	buf, _, frames, err := Convert(src, s16(1, 8000), opts)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	got, _ := sample.Ints(sample.FormatS16, buf, 1, frames)
	// Skip the interpolator's ramp-in.
	for i := 8; i < len(got)-8; i++ {
		if d := got[i] - 8192; d < -64 || d > 64 {
			t.Fatalf("sample %d = %d, want about 8192", i, got[i])
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	src := audiotest.NewPCMSource(s16(2, 8000), []int32{1, 2})
	if _, _, _, err := Convert(src, dither.BufferFormat{Format: sample.FormatS16, Channels: 3}, Options{}); !errors.Is(err, dither.ErrChannelMismatch) {
		t.Errorf("3 channel output error = %v, want ErrChannelMismatch", err)
	}
	if !src.Closed() {
		t.Error("Convert() left the source open after an error")
	}

	src = audiotest.NewPCMSource(s16(2, 8000), []int32{1, 2})
	if _, _, _, err := Convert(src, dither.BufferFormat{Format: sample.Format(-1)}, Options{}); !errors.Is(err, dither.ErrUnsupportedOutputFormat) {
		t.Errorf("invalid output error = %v, want ErrUnsupportedOutputFormat", err)
	}
}

func wavFile(t *testing.T, format dither.BufferFormat, vals []int32) []byte {
	t.Helper()

	buf, err := sample.PutInts(format.Format, format.Channels, vals)
	if err != nil {
		t.Fatal(err)
	}

	out := new(bytes.Buffer)
	if err := wav.WritePCM(out, format, buf, len(vals)/format.Channels); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}
	return out.Bytes()
}

func TestConvertWAV(t *testing.T) {
	t.Parallel()

	in := wavFile(t, s16(1, 22050), []int32{2560, -2560, 0, 32767})

	out := new(bytes.Buffer)
	frames, err := ConvertWAV(bytes.NewReader(in), out, 8, noDither())
	if err != nil {
		t.Fatalf("ConvertWAV() error = %v", err)
	}
	if frames != 4 {
		t.Errorf("ConvertWAV() frames = %d, want 4", frames)
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	f := src.Format()
	if f.Format != sample.FormatU8 || f.Channels != 1 || f.SampleRate != 22050 {
		t.Fatalf("output format = %v, want u8 1ch 22050Hz", f)
	}

	dst := f.Alloc(4)
	n, _ := src.ReadFrames(dst, 4)
	got, _ := sample.Ints(f.Format, dst, 1, n)
	want := []int32{10, -10, 0, 127}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestConvertWAV_Errors(t *testing.T) {
	t.Parallel()

	in := wavFile(t, s16(1, 8000), []int32{1})

	if _, err := ConvertWAV(bytes.NewReader(in), new(bytes.Buffer), 12, Options{}); !errors.Is(err, ErrUnsupportedWAVBits) {
		t.Errorf("12-bit error = %v, want ErrUnsupportedWAVBits", err)
	}
	if _, err := ConvertWAV(bytes.NewReader([]byte("not a wav")), new(bytes.Buffer), 16, Options{}); !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("bad input error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoderFor(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if n := len(reg.Formats()); n != 8 {
		t.Errorf("NewRegistry() holds %d formats, want 8", n)
	}

	dec, err := DecoderFor(reg, "/music/Track 01.FLAC")
	if err != nil {
		t.Fatalf("DecoderFor() error = %v", err)
	}
	if _, ok := dec.(flac.Decoder); !ok {
		t.Errorf("DecoderFor(.FLAC) = %T, want flac.Decoder", dec)
	}

	dec, err = DecoderFor(reg, "a.oga")
	if _, ok := dec.(vorbis.Decoder); err != nil || !ok {
		t.Errorf("DecoderFor(.oga) = %T, %v, want vorbis.Decoder", dec, err)
	}

	for _, name := range []string{"notes.txt", "noext"} {
		if _, err := DecoderFor(reg, name); !errors.Is(err, ErrUnknownExtension) {
			t.Errorf("DecoderFor(%q) error = %v, want ErrUnknownExtension", name, err)
		}
	}
}
