// SPDX-License-Identifier: EPL-2.0

// Package sample describes raw PCM sample storage and provides accessors
// that read and write individual samples regardless of bit width,
// signedness, byte order or channel layout.
//
// # Formats
//
// Integer formats come in 8, 16, 24 and 32-bit widths, signed or unsigned,
// in native, little-endian or big-endian byte order. 24-bit samples are
// stored in 32-bit words with the high byte unused. FormatFixed32 is a
// native 32-bit fixed-point value and FormatFloat a native float32.
//
// # Accessors
//
// Lookup resolves the Accessor for a (Format, Order) pair:
//
//	acc, err := sample.Lookup(sample.FormatS16LE, sample.Interleaved)
//	v := acc.Get(buf, channels, ch, frame)
//	acc.Put(buf, v, channels, ch, frame)
//
// Values read through an Accessor are always centred signed integers, so
// unsigned silence (e.g. 128 for FormatU8) reads as 0. Float buffers have
// no accessor; they are addressed directly through Buffer.Floats.
package sample
