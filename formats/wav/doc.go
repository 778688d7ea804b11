// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files.
//
// Decoding and seekable encoding go through github.com/go-audio/wav. The
// decoder hands out samples in the file's own format so that bit depth
// reduction happens in one place, the dither stage:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	stage, err := audio.NewDitherStage(src, out, replaygain.Mode{})
//
// # Sample Formats
//
//   - 8-bit files decode to u8 (WAV stores 8-bit data unsigned)
//   - 16, 24 and 32-bit files decode to s16, s24 and s32
//   - float and compressed files fail with ErrUnsupportedEncoding
//
// # Writing WAV Files
//
// Writer streams buffers of any integer format into an io.WriteSeeker and
// patches the RIFF sizes on Close. WritePCM writes a whole buffer to a
// plain io.Writer such as stdout, computing the sizes up front:
//
//	w, _ := wav.NewWriter(file, format)
//	_ = w.Write(buf, frames)
//	_ = w.Close()
//
// Neither closes the underlying file.
package wav
