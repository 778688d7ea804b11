// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrFormatMismatch = errors.New("buffer does not match the stream format")

	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
