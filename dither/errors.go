// SPDX-License-Identifier: EPL-2.0

package dither

import "errors"

var (
	ErrUnsupportedInputFormat  = errors.New("unsupported input sample format")
	ErrUnsupportedOutputFormat = errors.New("unsupported output sample format")
	ErrCorruptedState          = errors.New("converter state is corrupted")
	ErrInvalidChannels         = errors.New("channel count must be at least 1")
	ErrChannelMismatch         = errors.New("input and output channel counts differ")
	ErrBufferTooShort          = errors.New("buffer too short for frame count")
	ErrInvalidFrameCount       = errors.New("frame count must not be negative")
	ErrClosed                  = errors.New("converter is closed")
)
