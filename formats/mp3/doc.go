// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Output Format
//
// go-mp3 always produces 16-bit little-endian stereo, mono streams
// included, so sources report:
//   - Sample format: s16le, interleaved
//   - Channels: 2
//   - Sample rate: that of the stream (typically 44.1kHz or 48kHz)
//
// The PCM is decoded straight into the caller's buffer without a
// conversion pass. Use the audio package to change format, rate or
// channel count:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	mono, _ := audio.NewMonoMixer(src)
//	stage, _ := audio.NewDitherStage(mono, dither.BufferFormat{
//	    Format:   sample.FormatU8,
//	    Channels: 1,
//	}, replaygain.Mode{})
//
// # Limitations
//
// MP3 files carry ReplayGain in ID3v2 or APE tags, which go-mp3 does not
// parse; MP3 sources therefore never report ReplayGain metadata.
package mp3
