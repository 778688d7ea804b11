// SPDX-License-Identifier: EPL-2.0

// Package audsad converts PCM audio between sample formats with correct
// rounding, triangular dither, ReplayGain scaling and an optional soft
// limiter.
//
// The work is done by the subpackages:
//   - sample: sample formats, channel layouts and per-format accessors
//   - noise: the pseudorandom generator and triangular dither noise
//   - replaygain: gain metadata, tag parsing and scale resolution
//   - dither: the Converter that turns one buffer format into another
//   - audio: streaming sources, the DitherStage, resampling and mono mixing
//   - formats/...: WAV, AIFF, MP3, Ogg Vorbis and FLAC decoders, WAV output
//   - analysis: per-channel level statistics of converted buffers
//
// This package ties them together for the common cases.
//
// # Quick Start
//
// Decode a file, convert it to 16-bit mono at 8kHz and write it as WAV:
//
//	reg := audsad.NewRegistry()
//	dec, _ := audsad.DecoderFor(reg, "input.flac")
//	src, _ := dec.Decode(file)
//
//	buf, format, frames, _ := audsad.Convert(src, dither.BufferFormat{
//	    Format:     sample.FormatS16LE,
//	    Channels:   1,
//	    SampleRate: 8000,
//	}, audsad.Options{
//	    ReplayGain: replaygain.Mode{Mode: replaygain.ModeTrack, ClippingPrevention: true},
//	})
//
//	wav.WritePCM(out, format, buf, frames)
//
// Convert reads the whole stream into memory. For long inputs build the
// chain with Pipeline and read from it in chunks.
//
// # Bit depth only
//
// When the output keeps the source's channels and rate, integer input is
// converted in one step and never passes through float:
//
//	n, err := audsad.ConvertWAV(in, out, 16, audsad.Options{})
package audsad
