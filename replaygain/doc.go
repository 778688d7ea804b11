// SPDX-License-Identifier: EPL-2.0

// Package replaygain turns ReplayGain metadata into a linear scale factor.
//
// Info holds the track and album gain/peak pairs read from a file's tags,
// Mode holds the listener's preferences. Info.Resolve combines them:
//
//	info := replaygain.FromComments(comments)
//	res := info.Resolve(replaygain.Mode{Mode: replaygain.ModeAlbum, ClippingPrevention: true})
//	// res.Scale is the amplitude multiplier, res.HardLimit the limiter switch
//
// The result is bounded by MaxScale regardless of the metadata.
package replaygain
