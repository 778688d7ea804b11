// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to parse the stream and decode
// frames on demand.
//
// # Output Format
//
// FLAC keeps each channel in its own subframe, so sources report separated
// planes instead of interleaved frames. Samples are stored in the narrowest
// signed container that holds the stream's bit depth:
//
//	4-8 bits    sample.FormatS8
//	9-16 bits   sample.FormatS16
//	17-24 bits  sample.FormatS24
//	25-32 bits  sample.FormatS32
//
// Depths that do not fill their container (12 or 20 bits, say) are shifted
// left so full scale stays full scale.
//
// # ReplayGain
//
// REPLAYGAIN_* tags in the VORBIS_COMMENT metadata block are exposed through
// audio.GainReporter.
package flac
