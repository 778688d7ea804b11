// SPDX-License-Identifier: EPL-2.0

// Package noise generates triangular-PDF dither noise.
//
// A Generator draws from a Source (by default a randomly seeded PRNG) and
// returns the difference of two uniform draws scaled to the requested
// peak-to-peak bit amplitude:
//
//	g := noise.NewGenerator(noise.NewPRNG(42))
//	n := g.Triangular(9)      // in (-256, 256)
//	f := g.TriangularFloat()  // in (-1, 1)
//
// Generators hold no shared state. Each converter owns its own, so streams
// converted in parallel never contend for random numbers.
package noise
