// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Output Format
//
// The decoder keeps the file's precision and hands out interleaved
// integer samples:
//   - 8-bit files as s8 (AIFF stores 8-bit data signed, unlike WAV)
//   - 16, 24 and 32-bit files as s16, s24 and s32
//
// Feed the source through audio.NewDitherStage to reach any other format:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	stage, err := audio.NewDitherStage(src, dither.BufferFormat{
//	    Format:   sample.FormatS16LE,
//	    Channels: src.Format().Channels,
//	}, replaygain.Mode{})
//
// # Limitations
//
// AIFF-C compressed files and other sample sizes are rejected with
// ErrNotAiffFile or ErrUnsupportedBitDepth. Non-seekable readers are
// buffered in memory since go-audio needs to seek.
package aiff
