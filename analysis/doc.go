// SPDX-License-Identifier: EPL-2.0

// Package analysis reports per-channel level statistics of PCM buffers in
// any format the dither package understands. It is used to check the output
// of a conversion: DC offset, noise floor, peak and RMS level, and how many
// samples hit the limits of the output format.
package analysis
