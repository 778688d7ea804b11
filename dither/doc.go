// SPDX-License-Identifier: EPL-2.0

// Package dither converts PCM buffers between sample formats.
//
// A Converter is created for one input/output BufferFormat pair and then
// fed buffers with ProcessBuffer. Every sample is read through the
// sample package accessors (or directly for float buffers), scaled by the
// manual and ReplayGain scale, optionally soft-limited, rounded to nearest
// and, when precision is lost, dithered with triangular noise before it is
// narrowed and clamped to the output range.
//
//	in := dither.BufferFormat{Format: sample.FormatS16, Channels: 2, SampleRate: 44100}
//	out := dither.BufferFormat{Format: sample.FormatS8, Channels: 2, SampleRate: 44100}
//
//	c, err := dither.New(in, out)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	err = c.ProcessBuffer(src, dst, frames)
//
// # Noise
//
// Each Converter owns its noise generator, so converters may run on
// separate goroutines without sharing state. WithSeed and WithRand make the
// output reproducible; InitRand does the same for every converter created
// afterwards without an explicit source.
//
// # Precision
//
// Integer input narrower than 29 bits is widened to 29 bits before scaling
// so gain and rounding happen with headroom. Widening conversions (for
// example 8 to 16 bit) at unity scale are exact and receive no dither.
// Fixed-point input treats 2^FracBits as full scale.
package dither
