// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files.
//
// # Output Format
//
// Vorbis decodes to floating point, so sources report interleaved float
// samples in [-1, 1] with the stream's channel count and sample rate.
// Converting them to integer PCM goes through the dither stage, which
// rounds and dithers:
//
//	src, _ := vorbis.Decoder{}.Decode(file)
//	stage, _ := audio.NewDitherStage(src, dither.BufferFormat{
//	    Format:   sample.FormatS16LE,
//	    Channels: src.Format().Channels,
//	}, replaygain.Mode{Mode: replaygain.ModeTrack, ClippingPrevention: true})
//
// # ReplayGain
//
// REPLAYGAIN_TRACK_GAIN, REPLAYGAIN_TRACK_PEAK, REPLAYGAIN_ALBUM_GAIN and
// REPLAYGAIN_ALBUM_PEAK comments (and the older RG_* names) are parsed when
// the stream is opened. Sources implement audio.GainReporter, so a dither
// stage built on them applies the gain selected by its replaygain.Mode.
package vorbis
